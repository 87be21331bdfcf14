package http_init

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	http_access_middleware "github.com/meulencv/wenomadus/internal/delivery/http/middleware/access"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

// NewControllerPool mounts every controller under /api/v1. mode "RO" makes
// the API read-only.
func NewControllerPool(mode string) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	rg := engine.Group(apiPrefix)
	rg.Use(http_access_middleware.ReadOnlyBadGatewayMiddleware(mode))
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

// Mount exposes h outside the API prefix, e.g. /metrics.
func (pool *ControllerPool) Mount(path string, h http.Handler) {
	pool.engine.GET(path, gin.WrapH(h))
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// Handler is the assembled router. Register must run first.
func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}
