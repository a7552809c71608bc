package fixtures

import (
	"time"

	"inflo_backend/internal/models"
)

// Seed data for the mock API layer. Mutations against the repositories
// seeded from here simulate server-side persistence for the lifetime of
// the process.

func Campaigns() []models.Campaign {
	now := time.Now()
	return []models.Campaign{
		{
			ID:                  "1",
			BrandID:             "brand1",
			Title:               "Summer Fashion Collection",
			Description:         "Promote our latest summer fashion collection with trendy outfits. Looking for fashion influencers who can showcase our styles.",
			ImageURL:            "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop",
			Requirements:        "Fashion-focused content creators with minimum 10K followers",
			MinFollowers:        10000,
			Deliverables:        []string{"Instagram Post", "Instagram Story", "Reel"},
			AffiliatePercentage: 15,
			Budget:              5000,
			Timeline:            "2 weeks",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
		{
			ID:                  "2",
			BrandID:             "brand2",
			Title:               "Tech Gadget Review",
			Description:         "Review our latest smart home gadgets and AI-powered devices. Perfect for tech enthusiasts.",
			ImageURL:            "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
			Requirements:        "Tech reviewers with authentic engagement",
			MinFollowers:        5000,
			Deliverables:        []string{"YouTube Video", "Instagram Post"},
			AffiliatePercentage: 20,
			Budget:              3000,
			Timeline:            "1 week",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
		{
			ID:                  "3",
			BrandID:             "brand3",
			Title:               "Fitness Challenge",
			Description:         "Join our 30-day fitness challenge and inspire others to live healthier lives.",
			ImageURL:            "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
			Requirements:        "Fitness influencers with motivational content",
			MinFollowers:        15000,
			Deliverables:        []string{"Instagram Posts", "Stories", "Live Session"},
			AffiliatePercentage: 12,
			Budget:              8000,
			Timeline:            "1 month",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
		{
			ID:                  "4",
			BrandID:             "brand4",
			Title:               "Sustainable Living Products",
			Description:         "Showcase eco-friendly products and sustainable living tips to promote environmental awareness.",
			ImageURL:            "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?w=400&h=300&fit=crop",
			Requirements:        "Eco-conscious creators passionate about sustainability",
			MinFollowers:        8000,
			Deliverables:        []string{"Instagram Posts", "Stories", "Blog Post"},
			AffiliatePercentage: 18,
			Budget:              4500,
			Timeline:            "3 weeks",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
		{
			ID:                  "5",
			BrandID:             "brand5",
			Title:               "Food & Recipe Challenge",
			Description:         "Create delicious content featuring our organic ingredients and kitchen tools.",
			ImageURL:            "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop",
			Requirements:        "Food bloggers and cooking enthusiasts",
			MinFollowers:        12000,
			Deliverables:        []string{"Recipe Videos", "Instagram Posts", "Stories"},
			AffiliatePercentage: 16,
			Budget:              6000,
			Timeline:            "2 weeks",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
		{
			ID:                  "6",
			BrandID:             "brand6",
			Title:               "Travel Adventure Gear",
			Description:         "Test and showcase our travel gear in real adventure scenarios.",
			ImageURL:            "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=400&h=300&fit=crop",
			Requirements:        "Travel bloggers and adventure seekers",
			MinFollowers:        20000,
			Deliverables:        []string{"Travel Videos", "Instagram Posts", "Blog Review"},
			AffiliatePercentage: 14,
			Budget:              10000,
			Timeline:            "1 month",
			Status:              models.CampaignStatusActive,
			Applicants:          []string{},
			ApprovedCreators:    []string{},
			CreatedAt:           now,
		},
	}
}

func Creators() []models.CreatorProfile {
	return []models.CreatorProfile{
		{
			ID:                 "creator1",
			Name:               "Sarah Fashion",
			Category:           "Fashion",
			FollowerCount:      25000,
			ImageURL:           "https://images.unsplash.com/photo-1494790108755-2616b9c0bbc8?w=200&h=200&fit=crop",
			InstagramLink:      "@sarahfashion",
			Rating:             4.8,
			CompletedCampaigns: 12,
		},
		{
			ID:                 "creator2",
			Name:               "Tech Mike",
			Category:           "Technology",
			FollowerCount:      15000,
			ImageURL:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop",
			InstagramLink:      "@techmike",
			Rating:             4.9,
			CompletedCampaigns: 8,
		},
		{
			ID:                 "creator3",
			Name:               "Fitness Anna",
			Category:           "Fitness",
			FollowerCount:      30000,
			ImageURL:           "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop",
			InstagramLink:      "@fitnessanna",
			Rating:             4.7,
			CompletedCampaigns: 20,
		},
		{
			ID:                 "creator4",
			Name:               "Eco Emma",
			Category:           "Lifestyle",
			FollowerCount:      18000,
			ImageURL:           "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200&h=200&fit=crop",
			InstagramLink:      "@ecoemma",
			Rating:             4.6,
			CompletedCampaigns: 15,
		},
		{
			ID:                 "creator5",
			Name:               "Chef Carlos",
			Category:           "Food",
			FollowerCount:      22000,
			ImageURL:           "https://images.unsplash.com/photo-1566492031773-4f4e44671d66?w=200&h=200&fit=crop",
			InstagramLink:      "@chefcarlos",
			Rating:             4.9,
			CompletedCampaigns: 18,
		},
	}
}

// Payments returns the canned payment history attached to every user.
func Payments(userID string) []models.Payment {
	return []models.Payment{
		{
			ID:          "payment-1",
			UserID:      userID,
			Amount:      29.99,
			Description: "Monthly Subscription",
			Date:        time.Now().AddDate(0, 0, -30),
			Status:      models.PaymentStatusCompleted,
		},
	}
}

// Notifications returns the starter notifications for a freshly created user.
func Notifications(userID string) []models.Notification {
	return []models.Notification{
		{
			ID:        "notif-welcome-" + userID,
			UserID:    userID,
			Title:     "Welcome to Inflo",
			Body:      "Your 7-day trial has started. Swipe through campaigns to get going.",
			Read:      false,
			CreatedAt: time.Now(),
		},
	}
}
