package repositories

import (
	"errors"
	"strings"
	"sync"

	"inflo_backend/internal/models"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignFilter struct {
	Status    models.CampaignStatus
	BrandID   string
	Category  string
	MinBudget float64
}

type CampaignRepository interface {
	FindByID(id string) (*models.Campaign, error)
	List(filter CampaignFilter) ([]models.Campaign, error)
	Create(campaign *models.Campaign) error
	Update(id string, upd *models.CampaignUpdate) (*models.Campaign, error)
	AddApplicant(campaignID, creatorID string) error
	AddApprovedCreator(campaignID, creatorID string) error
}

// CampaignRepositoryImpl keeps campaigns in insertion order so listings are
// stable unless the caller asks for a shuffle.
type CampaignRepositoryImpl struct {
	mu        sync.RWMutex
	campaigns []*models.Campaign
	byID      map[string]*models.Campaign
}

func NewCampaignRepository(seed []models.Campaign) *CampaignRepositoryImpl {
	r := &CampaignRepositoryImpl{
		byID: make(map[string]*models.Campaign),
	}
	for i := range seed {
		c := seed[i]
		r.campaigns = append(r.campaigns, &c)
		r.byID[c.ID] = &c
	}
	return r
}

func (r *CampaignRepositoryImpl) FindByID(id string) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	copied := cloneCampaign(c)
	return &copied, nil
}

func (r *CampaignRepositoryImpl) List(filter CampaignFilter) ([]models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Campaign
	for _, c := range r.campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.BrandID != "" && c.BrandID != filter.BrandID {
			continue
		}
		// Category matches against the title, same as the prototype service
		if filter.Category != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.MinBudget > 0 && c.Budget < filter.MinBudget {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	return out, nil
}

func (r *CampaignRepositoryImpl) Create(campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := cloneCampaign(campaign)
	r.campaigns = append(r.campaigns, &copied)
	r.byID[copied.ID] = &copied
	return nil
}

func (r *CampaignRepositoryImpl) Update(id string, upd *models.CampaignUpdate) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	upd.ApplyTo(c)
	copied := cloneCampaign(c)
	return &copied, nil
}

func (r *CampaignRepositoryImpl) AddApplicant(campaignID, creatorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[campaignID]
	if !ok {
		return ErrCampaignNotFound
	}
	c.AddApplicant(creatorID)
	return nil
}

func (r *CampaignRepositoryImpl) AddApprovedCreator(campaignID, creatorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[campaignID]
	if !ok {
		return ErrCampaignNotFound
	}
	c.AddApprovedCreator(creatorID)
	return nil
}

func cloneCampaign(c *models.Campaign) models.Campaign {
	copied := *c
	copied.Deliverables = append([]string(nil), c.Deliverables...)
	copied.Applicants = append([]string(nil), c.Applicants...)
	copied.ApprovedCreators = append([]string(nil), c.ApprovedCreators...)
	return copied
}
