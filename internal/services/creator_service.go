package services

import (
	"context"
	"time"

	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"
)

type CreatorFilters struct {
	Category     string
	MinFollowers int
}

type CreatorService interface {
	List(ctx context.Context, filters CreatorFilters) ([]models.CreatorProfile, error)
}

type CreatorServiceImpl struct {
	creatorRepo repositories.CreatorRepository
	latency     latency
}

func NewCreatorService(creatorRepo repositories.CreatorRepository, mockLatency time.Duration) *CreatorServiceImpl {
	return &CreatorServiceImpl{
		creatorRepo: creatorRepo,
		latency:     latency{delay: mockLatency},
	}
}

func (s *CreatorServiceImpl) List(ctx context.Context, filters CreatorFilters) ([]models.CreatorProfile, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	creators, err := s.creatorRepo.List(repositories.CreatorFilter{
		Category:     filters.Category,
		MinFollowers: filters.MinFollowers,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return creators, nil
}
