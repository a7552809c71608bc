package workers

import (
	"context"
	"os"
	"testing"
	"time"

	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func seedTrialUser(t *testing.T, repo repositories.UserRepository, id string, expiry time.Time) {
	user := &models.User{
		ID:                   id,
		Role:                 models.UserRoleCreator,
		PhoneNumber:          "+1555" + id,
		IsOnboardingComplete: true,
		CreatedAt:            time.Now().Add(-8 * 24 * time.Hour),
	}
	user.SetSubscription(models.PlanTrial, expiry)
	require.NoError(t, repo.Create(user))
}

func TestSweep_NotifiesExpiredTrialsOnce(t *testing.T) {
	userRepo := repositories.NewUserRepository()
	notificationRepo := repositories.NewNotificationRepository()
	w := NewTrialWorker(userRepo, notificationRepo, time.Minute)

	seedTrialUser(t, userRepo, "user-expired", time.Now().Add(-time.Hour))
	seedTrialUser(t, userRepo, "user-active", time.Now().Add(time.Hour))

	w.sweep(context.Background())

	expired, err := notificationRepo.ListByUser("user-expired")
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "notif-trial-user-expired", expired[0].ID)

	active, err := notificationRepo.ListByUser("user-active")
	require.NoError(t, err)
	assert.Empty(t, active)

	// A second sweep must not notify again.
	w.sweep(context.Background())
	expired, err = notificationRepo.ListByUser("user-expired")
	require.NoError(t, err)
	assert.Len(t, expired, 1)
}

func TestSweep_SkipsPaidPlans(t *testing.T) {
	userRepo := repositories.NewUserRepository()
	notificationRepo := repositories.NewNotificationRepository()
	w := NewTrialWorker(userRepo, notificationRepo, time.Minute)

	user := &models.User{
		ID:          "user-paid",
		Role:        models.UserRoleCreator,
		PhoneNumber: "+15551112233",
		CreatedAt:   time.Now(),
	}
	// Paid plan already past its end date still is not a trial expiry.
	user.SetSubscription(models.PlanMonthly, time.Now().Add(-time.Hour))
	require.NoError(t, userRepo.Create(user))

	w.sweep(context.Background())

	notifications, err := notificationRepo.ListByUser("user-paid")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	userRepo := repositories.NewUserRepository()
	notificationRepo := repositories.NewNotificationRepository()
	w := NewTrialWorker(userRepo, notificationRepo, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
