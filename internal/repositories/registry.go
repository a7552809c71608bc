package repositories

// Repositories bundles every in-memory store for service wiring.
type Repositories struct {
	Users         UserRepository
	Campaigns     CampaignRepository
	Creators      CreatorRepository
	Billing       BillingRepository
	Content       ContentRepository
	Notifications NotificationRepository
}
