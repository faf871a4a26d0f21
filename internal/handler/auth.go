package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/logger"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		constants.ResponseFieldData: user,
		"token":                     token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.GetLogger().Warn("Login failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldData: user,
		"token":                     token,
	})
}

// ForgotPassword handles POST /auth/forgotPassword.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Reset code sent to email"))
}

// VerifyResetCode handles POST /auth/verifyResetCode.
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req dto.VerifyResetCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.VerifyResetCode(c.Request.Context(), req.ResetCode); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Reset code verified"))
}

// ResetPassword handles PUT /auth/resetPassword.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
