package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/layer-3/vouch/adapters/qrcode"
	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/service"
)

// AuthHandlers contains HTTP handlers for auth endpoints
type AuthHandlers struct {
	authService *service.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authService *service.AuthService) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
	}
}

// Signup handles new user registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Age      int    `json:"age"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	profile, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password, req.Age)
	if err != nil {
		if errors.Is(err, core.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User with email " + req.Email + " already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    profile,
	})
}

// Login handles the password step of authentication. Accounts with the
// second factor enabled get a step-2 challenge token instead of a
// session token.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Authentication failed"})
		return
	}

	if result.TwoFAEnabled {
		c.JSON(http.StatusOK, gin.H{
			"message":                     "Please complete 2-factor authentication",
			"twofaEnabled":                true,
			"loginStep2VerificationToken": result.ChallengeToken,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"twofaEnabled": false,
		"token":        result.SessionToken,
	})
}

// LoginStep2 completes a two-step login with a one-time passcode
func (h *AuthHandlers) LoginStep2(c *gin.Context) {
	var req struct {
		ChallengeToken string `json:"loginStep2VerificationToken" binding:"required"`
		Code           string `json:"twofaToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	token, err := h.authService.CompleteSecondFactor(c.Request.Context(), req.ChallengeToken, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, gin.H{"message": "OTP verification failed: Invalid token"})
		case errors.Is(err, core.ErrInvalidToken), errors.Is(err, core.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authorized to perform login step-2"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Authentication failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP verification successful",
		"token":   token,
	})
}

// Profile returns the authenticated user's profile
func (h *AuthHandlers) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Success",
		"user":    user.Profile(),
	})
}

// Generate2FASecret starts second-factor enrollment for the
// authenticated user and returns the secret with a scannable QR code.
func (h *AuthHandlers) Generate2FASecret(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found in context"})
		return
	}

	enrollment, err := h.authService.BeginEnrollment(c.Request.Context(), user.Email)
	if err != nil {
		if errors.Is(err, core.ErrTwoFAAlreadyEnabled) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":      "2FA already verified and enabled",
				"twofaEnabled": true,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate 2FA secret"})
		return
	}

	qrImage, err := qrcode.DataURL(enrollment.URI)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to render QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "2FA secret generation successful",
		"secret":         enrollment.Secret,
		"otpauthUrl":     enrollment.URI,
		"qrImageDataUrl": qrImage,
		"twofaEnabled":   false,
	})
}

// VerifyOTP confirms second-factor enrollment with a code from the
// authenticator app
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found in context"})
		return
	}

	var req struct {
		Code string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	alreadyEnabled, err := h.authService.ConfirmEnrollment(c.Request.Context(), user.Email, req.Code)
	if err != nil {
		if errors.Is(err, core.ErrInvalidOTP) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":      "OTP verification failed: Invalid token",
				"twofaEnabled": false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify OTP"})
		return
	}

	if alreadyEnabled {
		c.JSON(http.StatusOK, gin.H{
			"message":      "2FA already verified and enabled",
			"twofaEnabled": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "OTP verification successful",
		"twofaEnabled": true,
	})
}

// Disable2FA turns the second factor off for the authenticated user
func (h *AuthHandlers) Disable2FA(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found in context"})
		return
	}

	if err := h.authService.DisableTwoFA(c.Request.Context(), user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "2FA disabled successfully",
		"twofaEnabled": false,
	})
}

// NotFound is the JSON catch-all for unknown routes
func (h *AuthHandlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "An error occurred or " + c.Request.URL.Path + " not found",
	})
}
