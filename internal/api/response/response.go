package response

import (
	"github.com/gin-gonic/gin"

	"parkpost/internal/api/models"
	"parkpost/internal/auth"
)

// RenderView renders an HTML view with the shape every template expects:
// the validation error list, the caller's history and the session
// identity (nil when anonymous). Nil slices become empty ones so
// templates can range unconditionally.
func RenderView(c *gin.Context, status int, view string, errs []string, history []models.HistoryEntry) {
	if errs == nil {
		errs = []string{}
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}

	c.HTML(status, view, gin.H{
		"errors":  errs,
		"history": history,
		"user":    auth.CurrentUser(c),
	})
}
