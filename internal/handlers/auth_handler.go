package handlers

import (
	"net/http"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/middleware"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	jwtSecret   string
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOTP)
		auth.POST("/verify-otp", h.VerifyOTP)
	}

	rg.POST("/users", h.CreateUser)

	me := rg.Group("/users/me")
	me.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		me.GET("", h.GetCurrentUser)
		me.PATCH("", h.UpdateCurrentUser)
	}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.SendOTP(c.Request.Context(), req.PhoneNumber); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.authService.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyOTPResponse{Success: true, Token: token})
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, token, err := h.authService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{Success: true, User: user, Token: token})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var upd models.UserUpdate
	if !h.BindAndValidateJSON(c, &upd) {
		return
	}

	user, err := h.authService.UpdateUser(c.Request.Context(), userID, &upd)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
