package services

import (
	"context"
	"fmt"
	"time"

	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const mockCDNBase = "https://mock-cdn.inflo.app/uploads"

type ContentService interface {
	UploadImage(ctx context.Context, fileName string) (string, error)
	SubmitContent(ctx context.Context, campaignID, creatorID, imageURL, description string) (*models.ContentSubmission, error)
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
	latency     latency
}

func NewContentService(contentRepo repositories.ContentRepository, mockLatency time.Duration) *ContentServiceImpl {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		latency:     latency{delay: mockLatency},
	}
}

// UploadImage returns a mock CDN URL; nothing is stored.
func (s *ContentServiceImpl) UploadImage(ctx context.Context, fileName string) (string, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d.jpg", mockCDNBase, time.Now().UnixMilli()), nil
}

func (s *ContentServiceImpl) SubmitContent(ctx context.Context, campaignID, creatorID, imageURL, description string) (*models.ContentSubmission, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	submission := &models.ContentSubmission{
		ID:          "submission-" + uuid.NewString(),
		CampaignID:  campaignID,
		CreatorID:   creatorID,
		ImageURL:    imageURL,
		Description: description,
		Status:      models.SubmissionStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.contentRepo.CreateSubmission(submission); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Content submitted", "campaign_id", campaignID, "creator_id", creatorID)
	return submission, nil
}
