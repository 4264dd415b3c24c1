package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-signup/internal/common/logger"
	"activity-signup/internal/registry"
)

// NewRouter wires the HTTP surface. Activity names are taken verbatim from
// the path segment (URL-decoded, so names with spaces work) and matched
// exactly against registry keys.
func NewRouter(reg *registry.Registry, log logger.Logger) *gin.Engine {
	h := NewHandler(reg, log)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log), HTTPMetrics())

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/activities", h.ListActivities)
	router.POST("/activities/:name/signup", h.Signup)
	router.DELETE("/activities/:name/unregister", h.Unregister)

	return router
}
