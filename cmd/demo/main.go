package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"inflo_backend/internal/client/engagement"
	"inflo_backend/internal/client/remote"
	"inflo_backend/internal/client/store"
	"inflo_backend/internal/dto"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"
)

// demo walks the full creator journey against the mock facade or a running
// server: OTP login, profile creation, swiping the campaign deck, and a
// subscription purchase.
func main() {
	mode := flag.String("mode", "mock", "remote mode: mock or http")
	serverURL := flag.String("server", "http://localhost:3000", "server base URL for http mode")
	snapshot := flag.String("snapshot", "inflo-storage.json", "session snapshot path")
	flag.Parse()

	logger.Init("development")

	var svc remote.Service
	switch *mode {
	case "mock":
		svc = remote.NewMockService(remote.MockOptions{Seed: 42, Latency: 50 * time.Millisecond})
	case "http":
		svc = remote.NewHTTPService(remote.HTTPOptions{BaseURL: *serverURL, Timeout: 5 * time.Second, RetryAttempts: 3})
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	session := store.New(store.NewPersister(*snapshot))
	if err := session.Load(); err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, svc, session); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run(ctx context.Context, svc remote.Service, session *store.Store) error {
	phone := "+15551234567"

	if err := svc.SendOTP(ctx, phone); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	if _, err := svc.VerifyOTP(ctx, phone, "1234"); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	session.SetAuthenticated(true)
	fmt.Println("phone verified")

	user, _, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Role:          models.UserRoleCreator,
		PhoneNumber:   phone,
		Name:          "Demo Creator",
		Category:      "Fashion",
		InstagramLink: "https://instagram.com/democreator",
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	session.SetUser(user)
	fmt.Printf("user created: %s (trial until %s)\n", user.ID, user.SubscriptionExpiry.Format(time.DateOnly))

	deck := engagement.NewDeck(svc, session, user.ID)
	if err := deck.LoadCampaigns(ctx, services.CampaignFilters{
		Status:          models.CampaignStatusActive,
		CreatorRelevant: true,
	}); err != nil {
		return fmt.Errorf("load deck: %w", err)
	}
	fmt.Printf("deck loaded: %d campaigns\n", deck.Remaining())

	// Alternate swipes until the deck runs out.
	accept := true
	for deck.State() == engagement.StatePresenting {
		card, _ := deck.Current()
		if accept {
			if err := deck.Accept(ctx); err != nil {
				return fmt.Errorf("accept %s: %w", card.Campaign.ID, err)
			}
			fmt.Printf("applied to %q\n", card.Campaign.Title)
		} else {
			if err := deck.Reject(ctx); err != nil {
				return err
			}
			fmt.Printf("passed on %q\n", card.Campaign.Title)
		}
		accept = !accept
	}
	fmt.Printf("deck exhausted, applications: %v\n", session.AppliedCampaigns())

	subID, err := svc.PurchaseSubscription(ctx, models.PlanMonthly, "pm-demo")
	if err != nil {
		return fmt.Errorf("purchase subscription: %w", err)
	}
	fmt.Printf("subscribed: %s\n", subID)

	payments, err := svc.GetPaymentHistory(ctx)
	if err != nil {
		return fmt.Errorf("payment history: %w", err)
	}
	for _, p := range payments {
		fmt.Printf("payment %.2f %s (%s)\n", p.Amount, p.Description, p.Status)
	}
	return nil
}
