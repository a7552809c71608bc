package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	CampaignHandler     *CampaignHandler
	CreatorHandler      *CreatorHandler
	BillingHandler      *BillingHandler
	ContentHandler      *ContentHandler
	NotificationHandler *NotificationHandler
}
