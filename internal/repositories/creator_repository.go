package repositories

import (
	"errors"
	"strings"
	"sync"

	"inflo_backend/internal/models"
)

var ErrCreatorNotFound = errors.New("creator not found")

type CreatorFilter struct {
	Category     string
	MinFollowers int
}

type CreatorRepository interface {
	FindByID(id string) (*models.CreatorProfile, error)
	List(filter CreatorFilter) ([]models.CreatorProfile, error)
}

type CreatorRepositoryImpl struct {
	mu       sync.RWMutex
	creators []models.CreatorProfile
}

func NewCreatorRepository(seed []models.CreatorProfile) *CreatorRepositoryImpl {
	return &CreatorRepositoryImpl{
		creators: append([]models.CreatorProfile(nil), seed...),
	}
}

func (r *CreatorRepositoryImpl) FindByID(id string) (*models.CreatorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.creators {
		if r.creators[i].ID == id {
			copied := r.creators[i]
			return &copied, nil
		}
	}
	return nil, ErrCreatorNotFound
}

func (r *CreatorRepositoryImpl) List(filter CreatorFilter) ([]models.CreatorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.CreatorProfile
	for _, c := range r.creators {
		if filter.Category != "" && !strings.EqualFold(c.Category, filter.Category) {
			continue
		}
		if filter.MinFollowers > 0 && c.FollowerCount < filter.MinFollowers {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
