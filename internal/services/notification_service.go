package services

import (
	"context"
	"time"

	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"
)

type NotificationService interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	latency          latency
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, mockLatency time.Duration) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		latency:          latency{delay: mockLatency},
	}
}

func (s *NotificationServiceImpl) List(ctx context.Context, userID string) ([]models.Notification, error) {
	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	if err := s.latency.simulate(ctx); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(id); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
