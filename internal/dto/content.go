package dto

type UploadImageRequest struct {
	FileName string `json:"fileName" validate:"required"`
}

type UploadImageResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type SubmitContentRequest struct {
	CampaignID  string `json:"campaignId" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Description string `json:"description,omitempty"`
}
