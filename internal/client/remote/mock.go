package remote

import (
	"context"
	"sync"
	"time"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/fixtures"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/internal/services"
	"inflo_backend/internal/sms"
)

// MockService runs the whole backend in-process against fixture data. It is
// the default mode: no server required, deterministic when seeded.
type MockService struct {
	auth          services.AuthService
	campaigns     services.CampaignService
	creators      services.CreatorService
	billing       services.BillingService
	content       services.ContentService
	notifications services.NotificationService

	mu     sync.Mutex
	userID string
}

type MockOptions struct {
	OTPCode string
	Seed    int64
	Latency time.Duration
}

func NewMockService(opts MockOptions) *MockService {
	if opts.OTPCode == "" {
		opts.OTPCode = "1234"
	}

	userRepo := repositories.NewUserRepository()
	campaignRepo := repositories.NewCampaignRepository(fixtures.Campaigns())
	creatorRepo := repositories.NewCreatorRepository(fixtures.Creators())
	billingRepo := repositories.NewBillingRepository()
	contentRepo := repositories.NewContentRepository()
	notificationRepo := repositories.NewNotificationRepository()

	// The JWT secret only matters server-side; the mock issues tokens the
	// client never has to present back.
	return &MockService{
		auth: services.NewAuthService(
			userRepo, billingRepo, notificationRepo,
			sms.NewMockProvider(),
			opts.OTPCode, "inflo-mock-secret",
			time.Hour, opts.Latency,
		),
		campaigns:     services.NewCampaignService(campaignRepo, opts.Seed, opts.Latency),
		creators:      services.NewCreatorService(creatorRepo, opts.Latency),
		billing:       services.NewBillingService(billingRepo, userRepo, opts.Latency),
		content:       services.NewContentService(contentRepo, opts.Latency),
		notifications: services.NewNotificationService(notificationRepo, opts.Latency),
	}
}

func (m *MockService) currentUserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID
}

func (m *MockService) SendOTP(ctx context.Context, phone string) error {
	return m.auth.SendOTP(ctx, phone)
}

func (m *MockService) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	return m.auth.VerifyOTP(ctx, phone, code)
}

func (m *MockService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) {
	user, token, err := m.auth.CreateUser(ctx, req)
	if err != nil {
		return nil, "", err
	}
	m.mu.Lock()
	m.userID = user.ID
	m.mu.Unlock()
	return user, token, nil
}

func (m *MockService) UpdateUser(ctx context.Context, upd *models.UserUpdate) (*models.User, error) {
	return m.auth.UpdateUser(ctx, m.currentUserID(), upd)
}

func (m *MockService) GetCampaigns(ctx context.Context, filters services.CampaignFilters) ([]models.Campaign, error) {
	return m.campaigns.List(ctx, filters)
}

func (m *MockService) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	return m.campaigns.Create(ctx, m.currentUserID(), req)
}

func (m *MockService) ApplyCampaign(ctx context.Context, campaignID, creatorID string) error {
	return m.campaigns.Apply(ctx, campaignID, creatorID)
}

func (m *MockService) ApproveCampaignApplication(ctx context.Context, campaignID, creatorID string) (string, error) {
	return m.campaigns.Approve(ctx, campaignID, creatorID)
}

func (m *MockService) GetCreators(ctx context.Context, filters services.CreatorFilters) ([]models.CreatorProfile, error) {
	return m.creators.List(ctx, filters)
}

func (m *MockService) PurchaseSubscription(ctx context.Context, plan models.SubscriptionPlan, paymentMethodID string) (string, error) {
	return m.billing.PurchaseSubscription(ctx, m.currentUserID(), plan, paymentMethodID)
}

func (m *MockService) GetPaymentHistory(ctx context.Context) ([]models.Payment, error) {
	return m.billing.PaymentHistory(ctx, m.currentUserID())
}

func (m *MockService) UploadImage(ctx context.Context, fileName string) (string, error) {
	return m.content.UploadImage(ctx, fileName)
}

func (m *MockService) SubmitContent(ctx context.Context, campaignID, imageURL, description string) (*models.ContentSubmission, error) {
	return m.content.SubmitContent(ctx, campaignID, m.currentUserID(), imageURL, description)
}
