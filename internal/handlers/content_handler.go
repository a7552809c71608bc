package handlers

import (
	"net/http"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/middleware"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
	jwtSecret      string
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService, jwtSecret string) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
		jwtSecret:      jwtSecret,
	}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	content := rg.Group("/content")
	content.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		content.POST("/upload", h.UploadImage)
		content.POST("/submit", middleware.RoleMiddleware(models.UserRoleCreator), h.SubmitContent)
	}
}

func (h *ContentHandler) UploadImage(c *gin.Context) {
	var req dto.UploadImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	url, err := h.contentService.UploadImage(c.Request.Context(), req.FileName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadImageResponse{Success: true, URL: url})
}

func (h *ContentHandler) SubmitContent(c *gin.Context) {
	creatorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitContentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	submission, err := h.contentService.SubmitContent(c.Request.Context(), req.CampaignID, creatorID, req.ImageURL, req.Description)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": submission})
}
