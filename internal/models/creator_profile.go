package models

// CreatorProfile is read-only from the client core's perspective: it is
// populated wholesale from the remote service, never mutated field-by-field.
type CreatorProfile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	FollowerCount      int     `json:"followerCount"`
	ImageURL           string  `json:"imageUrl"`
	InstagramLink      string  `json:"instagramLink"`
	Rating             float64 `json:"rating"`
	CompletedCampaigns int     `json:"completedCampaigns"`
}
