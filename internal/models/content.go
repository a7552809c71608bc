package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ContentSubmission is a creator's deliverable for an approved campaign.
type ContentSubmission struct {
	ID          string           `json:"id"`
	CampaignID  string           `json:"campaignId"`
	CreatorID   string           `json:"creatorId"`
	ImageURL    string           `json:"imageUrl"`
	Description string           `json:"description"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submittedAt"`
}
