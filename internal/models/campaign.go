package models

import "time"

// Campaign is a sponsored-content opportunity. A creator ID appears in
// Applicants at most once; campaigns are never deleted, only
// status-transitioned.
type Campaign struct {
	ID                  string         `json:"id"`
	BrandID             string         `json:"brandId"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	ImageURL            string         `json:"imageUrl"`
	Requirements        string         `json:"requirements"`
	MinFollowers        int            `json:"minFollowers"`
	Deliverables        []string       `json:"deliverables"`
	AffiliatePercentage float64        `json:"affiliatePercentage"`
	Budget              float64        `json:"budget"`
	Timeline            string         `json:"timeline"`
	Status              CampaignStatus `json:"status"`
	Applicants          []string       `json:"applicants"`
	ApprovedCreators    []string       `json:"approvedCreators"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// AddApplicant records a creator application. Idempotent.
func (c *Campaign) AddApplicant(creatorID string) bool {
	for _, id := range c.Applicants {
		if id == creatorID {
			return false
		}
	}
	c.Applicants = append(c.Applicants, creatorID)
	return true
}

// AddApprovedCreator records an approval. Prior application is not required.
// Idempotent.
func (c *Campaign) AddApprovedCreator(creatorID string) bool {
	for _, id := range c.ApprovedCreators {
		if id == creatorID {
			return false
		}
	}
	c.ApprovedCreators = append(c.ApprovedCreators, creatorID)
	return true
}

// CampaignUpdate is a partial campaign record for shallow-merge updates.
// Membership lists are not updatable this way; they go through
// AddApplicant / AddApprovedCreator.
type CampaignUpdate struct {
	Title               *string         `json:"title,omitempty"`
	Description         *string         `json:"description,omitempty"`
	ImageURL            *string         `json:"imageUrl,omitempty"`
	Requirements        *string         `json:"requirements,omitempty"`
	MinFollowers        *int            `json:"minFollowers,omitempty"`
	Deliverables        []string        `json:"deliverables,omitempty"`
	AffiliatePercentage *float64        `json:"affiliatePercentage,omitempty"`
	Budget              *float64        `json:"budget,omitempty"`
	Timeline            *string         `json:"timeline,omitempty"`
	Status              *CampaignStatus `json:"status,omitempty"`
}

// ApplyTo shallow-merges the set fields into c.
func (upd *CampaignUpdate) ApplyTo(c *Campaign) {
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		c.ImageURL = *upd.ImageURL
	}
	if upd.Requirements != nil {
		c.Requirements = *upd.Requirements
	}
	if upd.MinFollowers != nil {
		c.MinFollowers = *upd.MinFollowers
	}
	if upd.Deliverables != nil {
		c.Deliverables = upd.Deliverables
	}
	if upd.AffiliatePercentage != nil {
		c.AffiliatePercentage = *upd.AffiliatePercentage
	}
	if upd.Budget != nil {
		c.Budget = *upd.Budget
	}
	if upd.Timeline != nil {
		c.Timeline = *upd.Timeline
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
}
