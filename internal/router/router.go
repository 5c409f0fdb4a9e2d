package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"threadboard/internal/app/health"
	"threadboard/internal/app/layout"
	"threadboard/internal/app/message"
	"threadboard/internal/app/thread"
	"threadboard/internal/middleware"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterThreadRoutes(handler thread.Handler) {
	thread.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterMessageRoutes(handler message.Handler) {
	message.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterLayoutRoutes(handler layout.Handler) {
	layout.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
