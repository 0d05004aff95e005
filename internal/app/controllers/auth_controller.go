package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
	"membership-http-service/internal/error/validation"
)

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	Register()
	Detail()
	Token()
	TokenRefresh()
}

// AuthController handles registration and token requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the account registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"ada"`
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"S3cret!pass"`
}

// TokenRequest is the credential payload for token issuance
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"ada"`
	Password string `json:"password" binding:"required" example:"S3cret!pass"`
}

// TokenRefreshRequest exchanges a refresh token for a new access token
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// HandleAuthFunc returns a Gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "detail":
			controller.Detail()
		case "token":
			controller.Token()
		case "tokenRefresh":
			controller.TokenRefresh()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Register creates a new account
// @Summary      Register account
// @Description  Creates an authentication account; the password is stored only as a hash
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, bindErrors(err))
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.Register(user); err != nil {
		if verrs, ok := validation.AsErrors(err); ok {
			response.Fail(c.Ctx, code.ErrValidation, verrs)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to register: "+err.Error(), nil)
		return
	}

	// The password hash stays out of the response via the model's json tag
	response.Created(c.Ctx, user)
}

// 2. Detail returns the calling account
// @Summary      Account detail
// @Description  Returns the authenticated caller's own account record
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /detail [get]
func (c *AuthController) Detail() {
	userID, exists := c.Ctx.Get("userID")
	if !exists {
		response.Unauthorized(c.Ctx)
		return
	}

	id, ok := userID.(uint)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch account: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 3. Token issues an access and refresh token pair
// @Summary      Obtain tokens
// @Description  Verifies credentials and returns an access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /token [post]
func (c *AuthController) Token() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, bindErrors(err))
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByUsername(req.Username)
	if err != nil || !user.IsActive || !userService.CheckPassword(req.Password, user.Password) {
		response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	access, err := jwtService.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "failed to issue token", nil)
		return
	}
	refresh, err := jwtService.GenerateRefreshToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "failed to issue token", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

// 4. TokenRefresh exchanges a refresh token for a new access token
// @Summary      Refresh token
// @Description  Validates a refresh token and returns a new access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRefreshRequest true "Refresh token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /token/refresh [post]
func (c *AuthController) TokenRefresh() {
	var req TokenRefreshRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, bindErrors(err))
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	claims, err := jwtService.ExtractClaims(req.Refresh)
	if err != nil || claims.TokenType != services.TokenTypeRefresh {
		response.Unauthorized(c.Ctx)
		return
	}

	access, err := jwtService.GenerateToken(claims.UserID, claims.Username, claims.Role == services.RoleAdmin)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "failed to issue token", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"access": access,
	})
}
