package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkpost/internal/api/models"
	"parkpost/internal/api/response"
	"parkpost/internal/api/service"
	"parkpost/internal/auth"
)

// PageController serves the landing and parking views and the
// reservation action.
type PageController struct {
	historyService service.HistoryService
}

// NewPageController creates a new PageController.
func NewPageController(historyService service.HistoryService) *PageController {
	return &PageController{historyService: historyService}
}

// Homepage renders the landing view with the caller's history. The route
// sits behind RequireAuth.
func (pc *PageController) Homepage(c *gin.Context) {
	pc.renderWithHistory(c, "homepage.html")
}

// Park renders the parking view. Anonymous callers see empty history.
func (pc *PageController) Park(c *gin.Context) {
	pc.renderWithHistory(c, "park.html")
}

// Landing renders the landing view for the navigation form posts.
func (pc *PageController) Landing(c *gin.Context) {
	pc.renderWithHistory(c, "homepage.html")
}

// Reserve handles POST /reserve: record a reservation for the session
// identity and re-render the parking view with the updated history.
func (pc *PageController) Reserve(c *gin.Context) {
	var req models.ReserveRequest
	if err := c.ShouldBind(&req); err != nil || req.Park == "" {
		c.String(http.StatusBadRequest, "no park data receive")
		return
	}

	if err := pc.historyService.Reserve(c.Request.Context(), auth.CurrentUser(c), &req); err != nil {
		if errors.Is(err, service.ErrBadReservation) {
			c.String(http.StatusBadRequest, "malformed park data")
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to record reservation", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	pc.renderWithHistory(c, "park.html")
}

func (pc *PageController) renderWithHistory(c *gin.Context, view string) {
	history, err := pc.historyService.UserHistory(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load history", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	response.RenderView(c, http.StatusOK, view, nil, history)
}
