package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"inflo_backend/internal/auth"
	"inflo_backend/internal/dto"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/internal/sms"
	"inflo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func newAuthService() (*AuthServiceImpl, repositories.UserRepository) {
	userRepo := repositories.NewUserRepository()
	svc := NewAuthService(
		userRepo,
		repositories.NewBillingRepository(),
		repositories.NewNotificationRepository(),
		sms.NewMockProvider(),
		"1234", testSecret,
		time.Hour, 0,
	)
	return svc, userRepo
}

func TestVerifyOTP_CorrectCode(t *testing.T) {
	svc, _ := newAuthService()

	token, err := svc.VerifyOTP(context.Background(), "+15550000001", "1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "+15550000001", claims.Phone)
	assert.Empty(t, claims.UserID)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.VerifyOTP(context.Background(), "+15550000001", "0000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
}

func TestCreateUser_TrialDefaults(t *testing.T) {
	svc, userRepo := newAuthService()

	before := time.Now()
	user, token, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Role:        models.UserRoleCreator,
		PhoneNumber: "+15550000002",
		Name:        "Unit Creator",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, user.IsOnboardingComplete)
	assert.Equal(t, models.PlanTrial, user.SubscriptionPlan)
	require.NotNil(t, user.SubscriptionExpiry)

	// 7-day trial, measured from creation.
	expected := before.Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, *user.SubscriptionExpiry, time.Minute)

	claims, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleCreator), claims.Role)

	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

type failingNotificationRepo struct{}

func (failingNotificationRepo) Create(*models.Notification) error { return errors.New("store full") }
func (failingNotificationRepo) ListByUser(string) ([]models.Notification, error) {
	return nil, nil
}
func (failingNotificationRepo) MarkRead(string) error { return nil }

type failingBillingRepo struct{}

func (failingBillingRepo) CreateSubscription(*models.Subscription) error { return nil }
func (failingBillingRepo) CreatePayment(*models.Payment) error           { return errors.New("store full") }
func (failingBillingRepo) PaymentsByUser(string) ([]models.Payment, error) {
	return nil, nil
}

func TestCreateUser_SeedFailuresDoNotFailSignup(t *testing.T) {
	svc := NewAuthService(
		repositories.NewUserRepository(),
		failingBillingRepo{},
		failingNotificationRepo{},
		sms.NewMockProvider(),
		"1234", testSecret,
		time.Hour, 0,
	)

	user, token, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Role:        models.UserRoleCreator,
		PhoneNumber: "+15550000005",
		Name:        "Seedless Creator",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, user.IsOnboardingComplete)
}

func TestUpdateUser_PartialMerge(t *testing.T) {
	svc, _ := newAuthService()

	user, _, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Role:        models.UserRoleBrand,
		PhoneNumber: "+15550000003",
		BrandName:   "Old Brand",
	})
	require.NoError(t, err)

	newName := "New Brand"
	updated, err := svc.UpdateUser(context.Background(), user.ID, &models.UserUpdate{BrandName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Brand", updated.BrandName)
	assert.Equal(t, user.PhoneNumber, updated.PhoneNumber)
	assert.Equal(t, user.Role, updated.Role)
}

func TestGetUser_Unknown(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.GetUser(context.Background(), "user-missing")
	require.Error(t, err)
}

func TestLatency_CancelledContext(t *testing.T) {
	userRepo := repositories.NewUserRepository()
	svc := NewAuthService(
		userRepo,
		repositories.NewBillingRepository(),
		repositories.NewNotificationRepository(),
		sms.NewMockProvider(),
		"1234", testSecret,
		time.Hour, 50*time.Millisecond,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.VerifyOTP(ctx, "+15550000004", "1234")
	assert.ErrorIs(t, err, context.Canceled)
}
