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

// PostController handles the create-post page and action. Both routes
// sit behind RequireAuth.
type PostController struct {
	postService    service.PostService
	historyService service.HistoryService
}

// NewPostController creates a new PostController.
func NewPostController(postService service.PostService, historyService service.HistoryService) *PostController {
	return &PostController{
		postService:    postService,
		historyService: historyService,
	}
}

// CreatePostPage serves the compose view.
func (pc *PostController) CreatePostPage(c *gin.Context) {
	history, err := pc.historyService.UserHistory(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load history", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	response.RenderView(c, http.StatusOK, "create-post.html", nil, history)
}

// CreatePost validates and inserts the post, stamped with the session
// identity, then redirects to the landing page. Validation errors
// re-render the compose view.
func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "bad form data")
		return
	}

	post, errs, err := pc.postService.CreatePost(c.Request.Context(), auth.CurrentUser(c), &req)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to create post", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if len(errs) > 0 {
		history, herr := pc.historyService.UserHistory(c.Request.Context(), auth.CurrentUser(c))
		if herr != nil {
			slog.ErrorContext(c.Request.Context(), "failed to load history", slog.String("error", herr.Error()))
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		response.RenderView(c, http.StatusOK, "create-post.html", errs, history)
		return
	}

	slog.InfoContext(c.Request.Context(), "post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID),
	)
	c.Redirect(http.StatusFound, "/homepage")
}
