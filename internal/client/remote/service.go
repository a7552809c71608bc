package remote

import (
	"context"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"
)

// Service is the single seam through which the client reads and mutates
// remote state. MockService serves fixtures in-process; HTTPService talks to
// a running inflo server. The two are interchangeable.
type Service interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (string, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error)
	UpdateUser(ctx context.Context, upd *models.UserUpdate) (*models.User, error)

	GetCampaigns(ctx context.Context, filters services.CampaignFilters) ([]models.Campaign, error)
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	ApplyCampaign(ctx context.Context, campaignID, creatorID string) error
	ApproveCampaignApplication(ctx context.Context, campaignID, creatorID string) (string, error)

	GetCreators(ctx context.Context, filters services.CreatorFilters) ([]models.CreatorProfile, error)

	PurchaseSubscription(ctx context.Context, plan models.SubscriptionPlan, paymentMethodID string) (string, error)
	GetPaymentHistory(ctx context.Context) ([]models.Payment, error)

	UploadImage(ctx context.Context, fileName string) (string, error)
	SubmitContent(ctx context.Context, campaignID, imageURL, description string) (*models.ContentSubmission, error)
}
