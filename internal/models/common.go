package models

type UserRole string

const (
	UserRoleCreator UserRole = "creator"
	UserRoleBrand   UserRole = "brand"
)

type SubscriptionPlan string

const (
	PlanTrial   SubscriptionPlan = "trial"
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)
