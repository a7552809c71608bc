package services

import (
	"context"
	"time"

	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	monthlyPrice = 29.99
	yearlyPrice  = 299.99
)

type BillingService interface {
	PurchaseSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, paymentMethodID string) (string, error)
	PaymentHistory(ctx context.Context, userID string) ([]models.Payment, error)
}

type BillingServiceImpl struct {
	billingRepo repositories.BillingRepository
	userRepo    repositories.UserRepository
	latency     latency
}

func NewBillingService(billingRepo repositories.BillingRepository, userRepo repositories.UserRepository, mockLatency time.Duration) *BillingServiceImpl {
	return &BillingServiceImpl{
		billingRepo: billingRepo,
		userRepo:    userRepo,
		latency:     latency{delay: mockLatency},
	}
}

// PurchaseSubscription always succeeds in the mock design. It records a
// subscription and a payment, and moves the user's plan/expiry together.
func (s *BillingServiceImpl) PurchaseSubscription(ctx context.Context, userID string, plan models.SubscriptionPlan, paymentMethodID string) (string, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return "", err
	}

	var duration time.Duration
	var price float64
	switch plan {
	case models.PlanMonthly:
		duration = 30 * 24 * time.Hour
		price = monthlyPrice
	case models.PlanYearly:
		duration = 365 * 24 * time.Hour
		price = yearlyPrice
	default:
		return "", apperrors.ErrInvalidSubscriptionPlan
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:        "sub-" + uuid.NewString(),
		UserID:    userID,
		Plan:      plan,
		StartDate: now,
		EndDate:   now.Add(duration),
	}
	if err := s.billingRepo.CreateSubscription(sub); err != nil {
		return "", apperrors.InternalError(err)
	}

	payment := &models.Payment{
		ID:          "payment-" + uuid.NewString(),
		UserID:      userID,
		Amount:      price,
		Description: string(plan) + " subscription",
		Date:        now,
		Status:      models.PaymentStatusCompleted,
	}
	if err := s.billingRepo.CreatePayment(payment); err != nil {
		return "", apperrors.InternalError(err)
	}

	// Plan and expiry move together; this is the only mutation path.
	if err := s.userRepo.SetSubscription(userID, plan, sub.EndDate); err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.InternalError(err)
		}
		// Unknown user still gets a subscription id back; the mock payment
		// provider has no user registry.
		logger.CtxWarn(ctx, "Subscription purchased for unknown user", "user_id", userID)
	}

	logger.CtxInfo(ctx, "Subscription purchased", "user_id", userID, "plan", plan, "subscription_id", sub.ID)
	return sub.ID, nil
}

func (s *BillingServiceImpl) PaymentHistory(ctx context.Context, userID string) ([]models.Payment, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	payments, err := s.billingRepo.PaymentsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}
