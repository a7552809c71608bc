package models

import "time"

// User is created on first successful profile submission and mutated by
// partial-update merge. SubscriptionPlan and SubscriptionExpiry are always
// set together, via SetSubscription.
type User struct {
	ID                   string           `json:"id"`
	Role                 UserRole         `json:"role"`
	PhoneNumber          string           `json:"phoneNumber,omitempty"`
	Email                string           `json:"email,omitempty"`
	Name                 string           `json:"name,omitempty"`
	DateOfBirth          string           `json:"dateOfBirth,omitempty"`
	Category             string           `json:"category,omitempty"`
	InstagramLink        string           `json:"instagramLink,omitempty"`
	Address              string           `json:"address,omitempty"`
	BrandName            string           `json:"brandName,omitempty"`
	BrandLogo            string           `json:"brandLogo,omitempty"`
	IsOnboardingComplete bool             `json:"isOnboardingComplete"`
	SubscriptionPlan     SubscriptionPlan `json:"subscriptionPlan,omitempty"`
	SubscriptionExpiry   *time.Time       `json:"subscriptionExpiry,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// SetSubscription is the single mutation path for the plan/expiry pair.
func (u *User) SetSubscription(plan SubscriptionPlan, expiry time.Time) {
	u.SubscriptionPlan = plan
	u.SubscriptionExpiry = &expiry
}

// UserUpdate is a partial user record: nil fields are left untouched on merge.
type UserUpdate struct {
	PhoneNumber          *string           `json:"phoneNumber,omitempty"`
	Email                *string           `json:"email,omitempty"`
	Name                 *string           `json:"name,omitempty"`
	DateOfBirth          *string           `json:"dateOfBirth,omitempty"`
	Category             *string           `json:"category,omitempty"`
	InstagramLink        *string           `json:"instagramLink,omitempty"`
	Address              *string           `json:"address,omitempty"`
	BrandName            *string           `json:"brandName,omitempty"`
	BrandLogo            *string           `json:"brandLogo,omitempty"`
	IsOnboardingComplete *bool             `json:"isOnboardingComplete,omitempty"`
}

// ApplyTo shallow-merges the set fields into u.
func (upd *UserUpdate) ApplyTo(u *User) {
	if upd.PhoneNumber != nil {
		u.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.DateOfBirth != nil {
		u.DateOfBirth = *upd.DateOfBirth
	}
	if upd.Category != nil {
		u.Category = *upd.Category
	}
	if upd.InstagramLink != nil {
		u.InstagramLink = *upd.InstagramLink
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	if upd.BrandName != nil {
		u.BrandName = *upd.BrandName
	}
	if upd.BrandLogo != nil {
		u.BrandLogo = *upd.BrandLogo
	}
	if upd.IsOnboardingComplete != nil {
		u.IsOnboardingComplete = *upd.IsOnboardingComplete
	}
}
