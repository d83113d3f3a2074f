package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkpost/internal/api/models"
	"parkpost/internal/api/response"
	"parkpost/internal/api/service"
	"parkpost/internal/auth"
)

// UserController handles the authentication pages and actions.
type UserController struct {
	userService    service.UserService
	historyService service.HistoryService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService, historyService service.HistoryService) *UserController {
	return &UserController{
		userService:    userService,
		historyService: historyService,
	}
}

// EntryPage serves GET / and GET /login: the entry view for anonymous
// callers, a redirect to the landing page for authenticated ones.
func (uc *UserController) EntryPage(c *gin.Context) {
	if auth.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/homepage")
		return
	}
	response.RenderView(c, http.StatusOK, "login.html", nil, nil)
}

// CreateAccountPage serves the registration view.
func (uc *UserController) CreateAccountPage(c *gin.Context) {
	history, err := uc.historyService.UserHistory(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load history", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	response.RenderView(c, http.StatusOK, "create-account.html", nil, history)
}

// Login handles POST /login. Validation and authentication failures
// re-render the entry view with the single generic message; only
// infrastructure failures escalate.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RenderView(c, http.StatusOK, "login.html", []string{service.MsgInvalidCredentials}, nil)
		return
	}

	token, errs, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "login failed", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if len(errs) > 0 {
		response.RenderView(c, http.StatusOK, "login.html", errs, nil)
		return
	}

	auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/homepage")
}

// Register handles POST /register. All violated rules render together on
// the entry view; a created account is logged in immediately.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RenderView(c, http.StatusOK, "login.html", []string{"Invalid registration data."}, nil)
		return
	}

	token, errs, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "registration failed", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if len(errs) > 0 {
		response.RenderView(c, http.StatusOK, "login.html", errs, nil)
		return
	}

	auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/homepage")
}

// Logout clears the session cookie and returns to the entry page. The
// token itself is not revoked; it simply stops being presented.
func (uc *UserController) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
