package repositories

import (
	"errors"
	"sync"
	"time"

	"inflo_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	Create(user *models.User) error
	Update(id string, upd *models.UserUpdate) (*models.User, error)
	SetSubscription(id string, plan models.SubscriptionPlan, expiry time.Time) error
	FindExpiredTrials(now time.Time) ([]models.User, error)
	MarkTrialExpired(id string) error
	CountAll() int
}

// UserRepositoryImpl keeps users in process memory. The mock API layer has
// no durable persistence; mutations live for the lifetime of the process.
type UserRepositoryImpl struct {
	mu            sync.RWMutex
	users         map[string]*models.User
	trialNotified map[string]bool
}

func NewUserRepository() *UserRepositoryImpl {
	return &UserRepositoryImpl{
		users:         make(map[string]*models.User),
		trialNotified: make(map[string]bool),
	}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepositoryImpl) FindByPhone(phone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.PhoneNumber == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return ErrUserAlreadyExists
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepositoryImpl) Update(id string, upd *models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	upd.ApplyTo(user)
	copied := *user
	return &copied, nil
}

func (r *UserRepositoryImpl) SetSubscription(id string, plan models.SubscriptionPlan, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.SetSubscription(plan, expiry)
	delete(r.trialNotified, id)
	return nil
}

// FindExpiredTrials returns trial users whose expiry has passed and who have
// not been swept yet.
func (r *UserRepositoryImpl) FindExpiredTrials(now time.Time) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var expired []models.User
	for id, user := range r.users {
		if user.SubscriptionPlan != models.PlanTrial {
			continue
		}
		if user.SubscriptionExpiry == nil || user.SubscriptionExpiry.After(now) {
			continue
		}
		if r.trialNotified[id] {
			continue
		}
		expired = append(expired, *user)
	}
	return expired, nil
}

func (r *UserRepositoryImpl) MarkTrialExpired(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	r.trialNotified[id] = true
	return nil
}

func (r *UserRepositoryImpl) CountAll() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
