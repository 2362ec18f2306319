package monitor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/afyalink/internal/domain/cohort"
)

// Handler exposes the monitors over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/check-activity-decline", h.handleActivity)
	api.GET("/monitoring-metrics", h.handleMetrics)
}

func (h *Handler) handleActivity(c echo.Context) error {
	report, err := h.service.CheckActivity(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) handleMetrics(c echo.Context) error {
	report, err := h.service.MonitoringMetrics(c.Request().Context())
	if err != nil {
		if errors.Is(err, cohort.ErrNoDataset) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no dataset loaded, generate data first"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
