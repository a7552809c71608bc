package handlers

import (
	"net/http"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/middleware"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	*BaseHandler
	campaignService services.CampaignService
	jwtSecret       string
}

func NewCampaignHandler(base *BaseHandler, campaignService services.CampaignService, jwtSecret string) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:     base,
		campaignService: campaignService,
		jwtSecret:       jwtSecret,
	}
}

func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	campaigns := rg.Group("/campaigns")
	{
		// Listing is open: the discover feed is shown before login completes.
		campaigns.GET("", h.List)
	}

	authed := rg.Group("/campaigns")
	authed.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		authed.POST("", middleware.RoleMiddleware(models.UserRoleBrand), h.Create)
		authed.POST("/:id/apply", middleware.RoleMiddleware(models.UserRoleCreator), h.Apply)
		authed.POST("/:id/approve", middleware.RoleMiddleware(models.UserRoleBrand), h.Approve)
		authed.PATCH("/:id/status", middleware.RoleMiddleware(models.UserRoleBrand), h.UpdateStatus)
	}
}

func (h *CampaignHandler) List(c *gin.Context) {
	var query dto.CampaignListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	campaigns, err := h.campaignService.List(c.Request.Context(), services.CampaignFilters{
		Status:          models.CampaignStatus(query.Status),
		BrandID:         query.BrandID,
		Category:        query.Category,
		MinBudget:       query.MinBudget,
		CreatorRelevant: query.CreatorRelevant,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) Create(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), brandID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "campaign": campaign})
}

func (h *CampaignHandler) Apply(c *gin.Context) {
	var req dto.ApplyCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.campaignService.Apply(c.Request.Context(), c.Param("id"), req.CreatorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CampaignHandler) Approve(c *gin.Context) {
	var req dto.ApproveApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	affiliateLink, err := h.campaignService.Approve(c.Request.Context(), c.Param("id"), req.CreatorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApproveApplicationResponse{Success: true, AffiliateLink: affiliateLink})
}

func (h *CampaignHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateCampaignStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}
