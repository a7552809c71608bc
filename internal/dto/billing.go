package dto

import "inflo_backend/internal/models"

type PurchaseSubscriptionRequest struct {
	Plan            models.SubscriptionPlan `json:"plan" validate:"required,oneof=monthly yearly"`
	PaymentMethodID string                  `json:"paymentMethodId" validate:"required"`
}

type PurchaseSubscriptionResponse struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId"`
}
