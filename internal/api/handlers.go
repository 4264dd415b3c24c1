// Package api maps the HTTP surface onto the activity registry.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "activity-signup/internal/common/errors"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/common/metrics"
	"activity-signup/internal/registry"
)

type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
}

func NewHandler(reg *registry.Registry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Health answers liveness probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListActivities returns the full activity catalog with current participants.
func (h *Handler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// Signup adds the email query parameter to the named activity.
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")

	email := c.Query("email")
	if email == "" {
		metrics.SignupRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		h.renderError(c, apierrors.NewEmailRequiredError())
		return
	}

	msg, err := h.registry.Signup(name, email)
	if err != nil {
		metrics.SignupRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		h.renderError(c, err)
		return
	}

	metrics.SignupRequests.WithLabelValues(name, metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Unregister removes the email query parameter from the named activity.
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")

	email := c.Query("email")
	if email == "" {
		metrics.UnregisterRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		h.renderError(c, apierrors.NewEmailRequiredError())
		return
	}

	msg, err := h.registry.Unregister(name, email)
	if err != nil {
		metrics.UnregisterRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		h.renderError(c, err)
		return
	}

	metrics.UnregisterRequests.WithLabelValues(name, metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// renderError converts any error to the API's {"detail": ...} payload.
func (h *Handler) renderError(c *gin.Context, err error) {
	apiErr := apierrors.AsAPIError(err)

	h.logger.Warn("request rejected", map[string]interface{}{
		"path":      c.Request.URL.Path,
		"errorCode": string(apiErr.Code),
		"status":    apiErr.Status,
	})
	c.JSON(apiErr.Status, gin.H{"detail": apiErr.Detail})
}
