package repositories

import (
	"sync"

	"inflo_backend/internal/models"
)

type ContentRepository interface {
	CreateSubmission(sub *models.ContentSubmission) error
	SubmissionsByCampaign(campaignID string) ([]models.ContentSubmission, error)
}

type ContentRepositoryImpl struct {
	mu          sync.RWMutex
	submissions []models.ContentSubmission
}

func NewContentRepository() *ContentRepositoryImpl {
	return &ContentRepositoryImpl{}
}

func (r *ContentRepositoryImpl) CreateSubmission(sub *models.ContentSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, *sub)
	return nil
}

func (r *ContentRepositoryImpl) SubmissionsByCampaign(campaignID string) ([]models.ContentSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.ContentSubmission
	for _, s := range r.submissions {
		if s.CampaignID == campaignID {
			out = append(out, s)
		}
	}
	return out, nil
}
