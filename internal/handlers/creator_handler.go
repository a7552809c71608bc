package handlers

import (
	"net/http"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	*BaseHandler
	creatorService services.CreatorService
}

func NewCreatorHandler(base *BaseHandler, creatorService services.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		BaseHandler:    base,
		creatorService: creatorService,
	}
}

func (h *CreatorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/creators", h.List)
}

func (h *CreatorHandler) List(c *gin.Context) {
	var query dto.CreatorListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	creators, err := h.creatorService.List(c.Request.Context(), services.CreatorFilters{
		Category:     query.Category,
		MinFollowers: query.MinFollowers,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, creators)
}
