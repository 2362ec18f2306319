package anomaly

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/anomalies", h.ListAnomalies)
	api.GET("/anomalies/summary", h.AnomalySummary)
}

func (h *Handler) ListAnomalies(c echo.Context) error {
	f := Filter{AlertType: c.QueryParam("type")}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		f.Limit = limit
	}
	if raw := c.QueryParam("severity"); raw != "" {
		severity, err := strconv.Atoi(raw)
		if err != nil || severity < 0 || severity > 5 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid severity")
		}
		f.Severity = severity
	}

	anomalies, err := h.svc.Anomalies(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"count":     len(anomalies),
		"anomalies": anomalies,
	})
}

func (h *Handler) AnomalySummary(c echo.Context) error {
	rep, err := h.svc.Summary()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, rep)
}
