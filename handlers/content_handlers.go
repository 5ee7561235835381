package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spleux/api/config"
	"spleux/api/models"
	"spleux/api/store"
)

type ContentHandlers struct {
	Store  *store.ContentStore
	GitHub *store.GitHubStore // nil when GitHub is not configured
	Config *config.Config
	Log    *zap.Logger
}

func NewContentHandlers(contentStore *store.ContentStore, github *store.GitHubStore, cfg *config.Config, log *zap.Logger) *ContentHandlers {
	return &ContentHandlers{
		Store:  contentStore,
		GitHub: github,
		Config: cfg,
		Log:    log,
	}
}

// GetContent serves the current content document. Remote failures are
// absorbed by the store's local fallback; the only visible failure is a
// deployment with no readable seed file either.
func (h *ContentHandlers) GetContent(c *gin.Context) {
	doc, err := h.Store.Get(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to load content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	// The admin expects to see a just-saved edit; never let a proxy cache this.
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.JSON(http.StatusOK, doc)
}

// UpdateContent replaces the whole content document. The body is bound
// against the full document shape, so a partial document is rejected
// here with 400 before anything touches storage.
func (h *ContentHandlers) UpdateContent(c *gin.Context) {
	var doc models.ContentDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content document", "details": err.Error()})
		return
	}

	err := h.Store.Update(c.Request.Context(), &doc)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Content updated successfully and committed to GitHub. Deployment will start automatically.",
		})
	case errors.Is(err, store.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "GitHub configuration missing. Please set GITHUB_TOKEN, GITHUB_REPO_OWNER, and GITHUB_REPO_NAME in environment variables.",
		})
	case errors.Is(err, store.ErrConflict):
		h.Log.Warn("content update conflict", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to update content: " + err.Error()})
	default:
		h.Log.Error("content update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content: " + err.Error()})
	}
}

// RefreshContent drops the local content cache so the next read hits the
// file again.
func (h *ContentHandlers) RefreshContent(c *gin.Context) {
	h.Store.Invalidate()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Content cache refreshed",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GitHubHealth reports whether remote content storage is configured and
// the repository reachable with the configured token.
func (h *ContentHandlers) GitHubHealth(c *gin.Context) {
	if h.GitHub == nil || !h.Config.GitHubConfigured() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing GitHub configuration",
			"missing": gin.H{
				"GITHUB_TOKEN":      h.Config.GitHubToken == "",
				"GITHUB_REPO_OWNER": h.Config.GitHubRepoOwner == "",
				"GITHUB_REPO_NAME":  h.Config.GitHubRepoName == "",
			},
		})
		return
	}

	repo, err := h.GitHub.CheckAccess(c.Request.Context())
	if err != nil {
		h.Log.Error("GitHub health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "GitHub configuration is working",
		"repo": gin.H{
			"name":      repo.GetName(),
			"full_name": repo.GetFullName(),
			"private":   repo.GetPrivate(),
		},
	})
}
