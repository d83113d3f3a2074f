package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"parkpost/internal/api/controller"
	"parkpost/internal/auth"
)

var tracer = otel.Tracer("server")

// Server wires the gin engine: middleware chain, templates and the route
// table.
type Server struct {
	engine *gin.Engine
}

// New builds the engine. The session middleware runs before every handler
// so each request carries either a verified identity or an anonymous
// marker; owner-scoped routes add the RequireAuth gate on top.
func New(
	codec *auth.TokenCodec,
	users *controller.UserController,
	pages *controller.PageController,
	posts *controller.PostController,
	templateGlob string,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestMiddleware())
	engine.Use(auth.SessionMiddleware(codec))

	engine.LoadHTMLGlob(templateGlob)
	engine.Static("/public", "./web/public")

	engine.GET("/", users.EntryPage)
	engine.GET("/login", users.EntryPage)
	engine.POST("/login", users.Login)
	engine.POST("/register", users.Register)
	engine.GET("/logout", users.Logout)
	engine.GET("/create-account", users.CreateAccountPage)

	engine.GET("/park", pages.Park)
	engine.POST("/park", pages.Landing)
	engine.POST("/navigate-to-home", pages.Landing)
	engine.POST("/navigate-to-reserve", pages.Landing)

	authed := engine.Group("/", auth.RequireAuth())
	authed.GET("/homepage", pages.Homepage)
	authed.GET("/create-post", posts.CreatePostPage)
	authed.POST("/create-post", posts.CreatePost)
	authed.POST("/reserve", pages.Reserve)
	authed.POST("/view-history", pages.Landing)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestMiddleware tags every request with an id, opens a span and logs
// the outcome.
func requestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		ctx, span := tracer.Start(c.Request.Context(), "server.request", trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.String("request.id", requestID),
		))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		slog.InfoContext(ctx, "request completed",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
