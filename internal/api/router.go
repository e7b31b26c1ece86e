package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/internal/actions"
	"github.com/snapgram/snapgram/internal/cache"
	"github.com/snapgram/snapgram/internal/db"
	"github.com/snapgram/snapgram/internal/models"
	"github.com/snapgram/snapgram/pkg/logging"
)

// sessionHeader carries the opaque session identity resolved by the upstream
// auth layer. Token issuance and verification live outside this service.
const sessionHeader = "X-Session-User"

// userFinder is the read-side user lookup the presentation layer consumes
type userFinder interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// postFinder is the read-side post lookup the presentation layer consumes
type postFinder interface {
	FindPost(ctx context.Context, id string) (*models.Post, error)
}

// Router wires the action orchestrator to HTTP routes
type Router struct {
	actions *actions.Service
	users   userFinder
	posts   postFinder
	db      *db.DB
	cache   *cache.Cache
	logger  *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache) *Router {
	repo := db.NewRepository(database.DB)
	users := db.NewUserRepository(repo)
	posts := db.NewPostRepository(repo)

	service := actions.NewService(
		users,
		posts,
		db.NewCommentRepository(repo),
		db.NewRelationRepository(repo),
		redisCache,
		logging.WithComponent("actions"),
	)

	return &Router{
		actions: service,
		users:   users,
		posts:   posts,
		db:      database,
		cache:   redisCache,
		logger:  logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// Read side consumed by the presentation layer
	engine.GET("/users/:username", r.getUser)
	engine.GET("/posts/:id", r.getPost)

	authed := engine.Group("/", sessionMiddleware())
	authed.POST("/posts", r.createPost)
	authed.PUT("/posts/:id", r.updatePost)
	authed.DELETE("/posts/:id", r.deletePost)
	authed.POST("/posts/:id/like", r.likePost)
	authed.POST("/posts/:id/bookmark", r.bookmarkPost)
	authed.POST("/posts/:id/comments", r.createComment)
	authed.DELETE("/comments/:id", r.deleteComment)
	authed.PUT("/profile", r.updateProfile)
	authed.POST("/users/:id/follow", r.followUser)
}

// sessionMiddleware places the session identity on the request context. The
// identity resolver inside the orchestrator fails closed when it is absent.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(sessionHeader)
		if userID != "" {
			ctx := actions.WithActingUser(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func (r *Router) healthHandler(c *gin.Context) {
	status := gin.H{"status": "ok"}
	code := http.StatusOK

	if err := r.db.Health(c.Request.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if r.cache != nil {
		if err := r.cache.Health(c.Request.Context()); err != nil {
			status["cache"] = err.Error()
		}
	}

	c.JSON(code, status)
}
