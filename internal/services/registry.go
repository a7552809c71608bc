package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	CampaignService     CampaignService
	CreatorService      CreatorService
	BillingService      BillingService
	ContentService      ContentService
	NotificationService NotificationService
}
