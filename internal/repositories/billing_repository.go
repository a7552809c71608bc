package repositories

import (
	"sync"

	"inflo_backend/internal/models"
)

type BillingRepository interface {
	CreateSubscription(sub *models.Subscription) error
	CreatePayment(payment *models.Payment) error
	PaymentsByUser(userID string) ([]models.Payment, error)
}

type BillingRepositoryImpl struct {
	mu            sync.RWMutex
	subscriptions []models.Subscription
	payments      []models.Payment
}

func NewBillingRepository() *BillingRepositoryImpl {
	return &BillingRepositoryImpl{}
}

func (r *BillingRepositoryImpl) CreateSubscription(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions = append(r.subscriptions, *sub)
	return nil
}

func (r *BillingRepositoryImpl) CreatePayment(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *BillingRepositoryImpl) PaymentsByUser(userID string) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
