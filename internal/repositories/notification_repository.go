package repositories

import (
	"errors"
	"sync"

	"inflo_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string) ([]models.Notification, error)
	MarkRead(id string) error
}

type NotificationRepositoryImpl struct {
	mu            sync.RWMutex
	notifications []*models.Notification
}

func NewNotificationRepository() *NotificationRepositoryImpl {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *n
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *NotificationRepositoryImpl) ListByUser(userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

// MarkRead is idempotent; marking an already-read notification is a no-op.
func (r *NotificationRepositoryImpl) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}
