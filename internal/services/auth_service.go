package services

import (
	"context"
	"time"

	"inflo_backend/internal/auth"
	"inflo_backend/internal/dto"
	"inflo_backend/internal/fixtures"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/internal/sms"
	"inflo_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const trialDuration = 7 * 24 * time.Hour

type AuthService interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (string, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error)
	UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	billingRepo      repositories.BillingRepository
	notificationRepo repositories.NotificationRepository
	smsProvider      sms.Provider

	otpCode   string
	jwtSecret string
	tokenTTL  time.Duration
	latency   latency
}

func NewAuthService(
	userRepo repositories.UserRepository,
	billingRepo repositories.BillingRepository,
	notificationRepo repositories.NotificationRepository,
	smsProvider sms.Provider,
	otpCode, jwtSecret string,
	tokenTTL, mockLatency time.Duration,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		billingRepo:      billingRepo,
		notificationRepo: notificationRepo,
		smsProvider:      smsProvider,
		otpCode:          otpCode,
		jwtSecret:        jwtSecret,
		tokenTTL:         tokenTTL,
		latency:          latency{delay: mockLatency},
	}
}

// SendOTP never fails in the mock design: the configured code is "delivered"
// through the provider seam regardless of the number.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, phone string) error {
	if err := s.latency.simulate(ctx); err != nil {
		return err
	}
	return s.smsProvider.SendOTP(phone, s.otpCode)
}

// VerifyOTP returns a signed token when the code matches the configured one.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return "", err
	}

	if code != s.otpCode {
		logger.CtxWarn(ctx, "OTP verification failed", "phone", phone)
		return "", apperrors.ErrInvalidOTP
	}

	// No user exists yet at this point of onboarding; the token carries
	// only the verified phone.
	token, err := auth.GenerateToken("", phone, "", s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

// CreateUser populates a full user record from the submitted profile: a
// generated ID, a completed-onboarding flag and a default 7-day trial.
func (s *AuthServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:                   "user-" + uuid.NewString(),
		Role:                 req.Role,
		PhoneNumber:          req.PhoneNumber,
		Email:                req.Email,
		Name:                 req.Name,
		DateOfBirth:          req.DateOfBirth,
		Category:             req.Category,
		InstagramLink:        req.InstagramLink,
		Address:              req.Address,
		BrandName:            req.BrandName,
		BrandLogo:            req.BrandLogo,
		IsOnboardingComplete: true,
		CreatedAt:            time.Now(),
	}
	user.SetSubscription(models.PlanTrial, time.Now().Add(trialDuration))

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", apperrors.ErrAlreadyExists(err)
	}

	for _, n := range fixtures.Notifications(user.ID) {
		notif := n
		if err := s.notificationRepo.Create(&notif); err != nil {
			logger.CtxWarn(ctx, "Failed to seed notification", "user_id", user.ID, "notification_id", notif.ID, "error", err)
		}
	}
	for _, p := range fixtures.Payments(user.ID) {
		payment := p
		if err := s.billingRepo.CreatePayment(&payment); err != nil {
			logger.CtxWarn(ctx, "Failed to seed payment history", "user_id", user.ID, "payment_id", payment.ID, "error", err)
		}
	}

	token, err := auth.GenerateToken(user.ID, user.PhoneNumber, string(user.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User created", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

func (s *AuthServiceImpl) UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(id, upd)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
