package handlers

import (
	"net/http"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/middleware"
	"inflo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	*BaseHandler
	billingService services.BillingService
	jwtSecret      string
}

func NewBillingHandler(base *BaseHandler, billingService services.BillingService, jwtSecret string) *BillingHandler {
	return &BillingHandler{
		BaseHandler:    base,
		billingService: billingService,
		jwtSecret:      jwtSecret,
	}
}

func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billing := rg.Group("/billing")
	billing.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		billing.POST("/subscribe", h.PurchaseSubscription)
		billing.GET("/payments", h.PaymentHistory)
	}
}

func (h *BillingHandler) PurchaseSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PurchaseSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subscriptionID, err := h.billingService.PurchaseSubscription(c.Request.Context(), userID, req.Plan, req.PaymentMethodID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseSubscriptionResponse{Success: true, SubscriptionID: subscriptionID})
}

func (h *BillingHandler) PaymentHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	payments, err := h.billingService.PaymentHistory(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
