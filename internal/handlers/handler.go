package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pulseboard/internal/logger"
	"pulseboard/internal/metrics"
	"pulseboard/internal/service"
)

// Rate-limit windows per spec: auth endpoints 100 req / 15 min per client,
// post writes 20 req / min per client.
const (
	authLimitRequests = 100
	authLimitWindow   = 15 * time.Minute
	postLimitRequests = 20
	postLimitWindow   = time.Minute
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.HTTPMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health and metrics endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", metrics.GinHandler())

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)

	// Live feed over WebSocket (HTTP upgrade) — same port
	router.GET("/ws", h.authOptional, h.wsFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth", rateLimitByClient(authLimitRequests, authLimitWindow))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.authRequired, h.me)
	}
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	postLimiter := rateLimitByClient(postLimitRequests, postLimitWindow)

	posts := r.Group("/posts")
	{
		posts.POST("", postLimiter, h.authRequired, h.createPost)
		posts.GET("", h.authOptional, h.feed)
		posts.PUT("/:id", postLimiter, h.authRequired, h.updatePost)
		posts.DELETE("/:id", h.authRequired, h.deletePost)
	}

	r.GET("/my-posts", h.authRequired, h.myPosts)
}
