package dto

type CreatorListQuery struct {
	Category     string `form:"category"`
	MinFollowers int    `form:"minFollowers" validate:"omitempty,min=0"`
}
