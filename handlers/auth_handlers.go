package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"spleux/api/config"
	"spleux/api/models"
	"spleux/api/utils"
)

type AuthHandlers struct {
	Config *config.Config
	Log    *zap.Logger
}

func NewAuthHandlers(cfg *config.Config, log *zap.Logger) *AuthHandlers {
	return &AuthHandlers{Config: cfg, Log: log}
}

// Login checks the submitted credentials against the single configured
// admin identity and issues a 24-hour token. A wrong email and a wrong
// password produce the same response, so the endpoint cannot be used to
// probe which half was wrong.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if !h.Config.AdminConfigured() {
		h.Log.Error("admin credentials or JWT secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	// Evaluate both checks regardless of the email result so a wrong
	// email costs the same as a wrong password.
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.Config.AdminEmail)) == 1
	pwErr := bcrypt.CompareHashAndPassword(h.Config.AdminPasswordHash, []byte(req.Password))
	if !emailOK || pwErr != nil {
		h.Log.Warn("login failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(h.Config.AdminEmail, h.Config.AdminName, []byte(h.Config.JWTSecret))
	if err != nil {
		h.Log.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authentication token"})
		return
	}

	h.Log.Info("admin logged in", zap.String("email", h.Config.AdminEmail))
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": models.AdminUser{
			Email: h.Config.AdminEmail,
			Name:  h.Config.AdminName,
		},
	})
}

// Verify echoes the identity from an already-validated token. The auth
// middleware did the actual verification; reaching this handler means
// the token was good.
func (h *AuthHandlers) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": models.AdminUser{
			Email: c.GetString("user_email"),
			Name:  c.GetString("user_name"),
		},
	})
}
