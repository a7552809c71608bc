package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const affiliateLinkBase = "https://inflo.app/ref"

type CampaignFilters struct {
	Status          models.CampaignStatus
	BrandID         string
	Category        string
	MinBudget       float64
	CreatorRelevant bool
}

type CampaignService interface {
	List(ctx context.Context, filters CampaignFilters) ([]models.Campaign, error)
	Create(ctx context.Context, brandID string, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	Apply(ctx context.Context, campaignID, creatorID string) error
	Approve(ctx context.Context, campaignID, creatorID string) (string, error)
	UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error)
}

type CampaignServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	latency      latency

	rngMu sync.Mutex // rand.Rand is not safe for concurrent use
	rng   *rand.Rand
}

func NewCampaignService(campaignRepo repositories.CampaignRepository, seed int64, mockLatency time.Duration) *CampaignServiceImpl {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		latency:      latency{delay: mockLatency},
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// List returns campaigns matching the filters. CreatorRelevant shuffles the
// result for variety, same as the prototype's discover feed.
func (s *CampaignServiceImpl) List(ctx context.Context, filters CampaignFilters) ([]models.Campaign, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.List(repositories.CampaignFilter{
		Status:    filters.Status,
		BrandID:   filters.BrandID,
		Category:  filters.Category,
		MinBudget: filters.MinBudget,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if filters.CreatorRelevant {
		s.rngMu.Lock()
		s.rng.Shuffle(len(campaigns), func(i, j int) {
			campaigns[i], campaigns[j] = campaigns[j], campaigns[i]
		})
		s.rngMu.Unlock()
	}
	return campaigns, nil
}

func (s *CampaignServiceImpl) Create(ctx context.Context, brandID string, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		ID:                  "campaign-" + uuid.NewString(),
		BrandID:             brandID,
		Title:               req.Title,
		Description:         req.Description,
		ImageURL:            req.ImageURL,
		Requirements:        req.Requirements,
		MinFollowers:        req.MinFollowers,
		Deliverables:        req.Deliverables,
		AffiliatePercentage: req.AffiliatePercentage,
		Budget:              req.Budget,
		Timeline:            req.Timeline,
		Status:              models.CampaignStatusActive,
		Applicants:          []string{},
		ApprovedCreators:    []string{},
		CreatedAt:           time.Now(),
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Campaign created", "campaign_id", campaign.ID, "brand_id", brandID)
	return campaign, nil
}

// Apply records a creator application. An unknown campaign is silently
// ignored: the prototype treats it as a tolerated no-op, not an error.
func (s *CampaignServiceImpl) Apply(ctx context.Context, campaignID, creatorID string) error {
	if err := s.latency.simulate(ctx); err != nil {
		return err
	}

	err := s.campaignRepo.AddApplicant(campaignID, creatorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			logger.CtxWarn(ctx, "Apply to unknown campaign ignored", "campaign_id", campaignID)
			return nil
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Creator applied to campaign", "campaign_id", campaignID, "creator_id", creatorID)
	return nil
}

// Approve adds the creator to the approved list and returns the affiliate
// link. Prior application is not required.
func (s *CampaignServiceImpl) Approve(ctx context.Context, campaignID, creatorID string) (string, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return "", err
	}

	err := s.campaignRepo.AddApprovedCreator(campaignID, creatorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return "", apperrors.ErrCampaignNotFound
		}
		return "", apperrors.InternalError(err)
	}

	affiliateLink := fmt.Sprintf("%s/%s/%s", affiliateLinkBase, campaignID, creatorID)
	logger.CtxInfo(ctx, "Creator approved", "campaign_id", campaignID, "creator_id", creatorID)
	return affiliateLink, nil
}

// UpdateStatus transitions the campaign lifecycle. Campaigns are never
// deleted, only status-transitioned.
func (s *CampaignServiceImpl) UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.Update(campaignID, &models.CampaignUpdate{Status: &status})
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return campaign, nil
}
