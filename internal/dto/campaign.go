package dto

import "inflo_backend/internal/models"

type CampaignListQuery struct {
	Status          string  `form:"status" validate:"omitempty,oneof=draft active paused completed"`
	BrandID         string  `form:"brandId"`
	Category        string  `form:"category"`
	MinBudget       float64 `form:"minBudget" validate:"omitempty,min=0"`
	CreatorRelevant bool    `form:"creatorRelevant"`
}

type CreateCampaignRequest struct {
	Title               string   `json:"title" validate:"required,min=3"`
	Description         string   `json:"description" validate:"required"`
	ImageURL            string   `json:"imageUrl" validate:"omitempty,url"`
	Requirements        string   `json:"requirements,omitempty"`
	MinFollowers        int      `json:"minFollowers" validate:"min=0"`
	Deliverables        []string `json:"deliverables" validate:"required,min=1"`
	AffiliatePercentage float64  `json:"affiliatePercentage" validate:"min=0,max=100"`
	Budget              float64  `json:"budget" validate:"min=0"`
	Timeline            string   `json:"timeline,omitempty"`
}

type ApplyCampaignRequest struct {
	CreatorID string `json:"creatorId" validate:"required"`
	Message   string `json:"message,omitempty"`
}

type ApproveApplicationRequest struct {
	CreatorID string `json:"creatorId" validate:"required"`
}

type ApproveApplicationResponse struct {
	Success       bool   `json:"success"`
	AffiliateLink string `json:"affiliateLink"`
}

type UpdateCampaignStatusRequest struct {
	Status models.CampaignStatus `json:"status" validate:"required,oneof=active paused completed"`
}
