package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

// UserHandler defines the interface for account and session operations
type UserHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GetProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	DeleteProfile(ctx *gin.Context)
}

type userHandler struct {
	accountService users.AccountService
	profileService users.ProfileService
	tokenIssuer    auth.TokenIssuer
	sessionStore   auth.SessionStore
	metrics        *Metrics
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(accountService users.AccountService, profileService users.ProfileService, tokenIssuer auth.TokenIssuer, sessionStore auth.SessionStore, metrics *Metrics) UserHandler {
	return &userHandler{
		accountService: accountService,
		profileService: profileService,
		tokenIssuer:    tokenIssuer,
		sessionStore:   sessionStore,
		metrics:        metrics,
	}
}

// Register handles the POST request to create an account
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RegisterRequest true "Account data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (handler *userHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid account data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}

	user, err := handler.accountService.Register(ctx, request.Name, request.Email, request.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles the POST request to sign in and obtain a bearer token
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *userHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid credentials data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}

	user, err := handler.accountService.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserBlocked):
			handler.metrics.observeLogin("blocked")
		case errors.Is(err, users.ErrInvalidCredentials):
			handler.metrics.observeLogin("invalid")
		}
		abortWithError(ctx, err)
		return
	}

	token, session, err := handler.tokenIssuer.Issue(user)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	handler.metrics.observeLogin("success")
	ctx.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(user),
	})
}

// Logout handles the POST request to sign out the current token
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (handler *userHandler) Logout(ctx *gin.Context) {
	session := currentSession(ctx)
	if err := handler.sessionStore.Revoke(ctx, session.TokenID, session.TTL(time.Now())); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "signed out"})
}

// GetProfile handles the GET request for the signed-in account
// @Summary Get own profile
// @Tags Users
// @Produce json
// @Success 200 {object} UserResponse
// @Router /users/me [get]
func (handler *userHandler) GetProfile(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newUserResponse(currentUser(ctx)))
}

// UpdateProfile handles the PUT request to replace name, email and password
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param requestBody body UpdateProfileRequest true "Profile data"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/me [put]
func (handler *userHandler) UpdateProfile(ctx *gin.Context) {
	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid profile data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return
	}

	user, err := handler.profileService.Edit(ctx, currentUser(ctx).ID, request.Name, request.Email, request.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteProfile handles the DELETE request to remove the signed-in account
// @Summary Delete own account with all habits and records
// @Tags Users
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 403 {object} ErrorResponse
// @Router /users/me [delete]
func (handler *userHandler) DeleteProfile(ctx *gin.Context) {
	user := currentUser(ctx)
	if err := handler.profileService.Delete(ctx, user.ID); err != nil {
		abortWithError(ctx, err)
		return
	}

	session := currentSession(ctx)
	if err := handler.sessionStore.Revoke(ctx, session.TokenID, session.TTL(time.Now())); err != nil {
		_ = ctx.Error(err)
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted user %s", user.Email)})
}
