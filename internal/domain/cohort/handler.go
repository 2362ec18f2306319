package cohort

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/afyalink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/generate", h.Generate)
	api.POST("/reload-data", h.Reload)

	api.GET("/patients", h.ListPatients)
	api.GET("/screenings", h.ListScreenings)
	api.GET("/bp-logs", h.ListBPLogs)
	api.GET("/glucose-logs", h.ListGlucoseLogs)
	api.GET("/diagnoses", h.ListDiagnoses)
	api.GET("/lifestyles", h.ListLifestyles)
	api.GET("/compliances", h.ListCompliances)
	api.GET("/medical-reviews", h.ListReviews)
	api.GET("/visits", h.ListVisits)
	api.GET("/health-metrics", h.ListVitals)
}

// generateRequest overrides the configured defaults field by field.
type generateRequest struct {
	NumPatients *int     `json:"num_patients"`
	Days        *int     `json:"days"`
	Frequency   *string  `json:"frequency"`
	AnomalyRate *float64 `json:"anomaly_rate"`
	RepeatRate  *float64 `json:"repeat_rate"`
	Seed        *int64   `json:"seed"`
}

func (h *Handler) Generate(c echo.Context) error {
	cfg := h.svc.Defaults()

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.NumPatients != nil {
		cfg.NumPatients = *req.NumPatients
	}
	if req.Days != nil {
		cfg.End = time.Now().UTC().Truncate(time.Hour)
		cfg.Start = cfg.End.AddDate(0, 0, -*req.Days)
	}
	if req.Frequency != nil {
		cfg.Frequency = *req.Frequency
	}
	if req.AnomalyRate != nil {
		cfg.AnomalyRate = *req.AnomalyRate
	}
	if req.RepeatRate != nil {
		cfg.RepeatRate = *req.RepeatRate
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}

	sum, err := h.svc.Regenerate(c.Request().Context(), cfg)
	if err != nil {
		if errors.Is(err, ErrGenerationInProgress) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "generated",
		"summary": sum,
	})
}

func (h *Handler) Reload(c echo.Context) error {
	if err := h.svc.Reload(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "reloaded",
		"summary": d.Summary(),
	})
}

func (h *Handler) ListPatients(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Patients)
}

func (h *Handler) ListScreenings(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Screenings)
}

func (h *Handler) ListBPLogs(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, filterByPatient(c, d.BPLogs, func(l BPLog) string { return l.PatientID }))
}

func (h *Handler) ListGlucoseLogs(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, filterByPatient(c, d.GlucoseLogs, func(l GlucoseLog) string { return l.PatientID }))
}

func (h *Handler) ListDiagnoses(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Diagnoses)
}

func (h *Handler) ListLifestyles(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Lifestyles)
}

func (h *Handler) ListCompliances(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Compliances)
}

func (h *Handler) ListReviews(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Reviews)
}

func (h *Handler) ListVisits(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, d.Visits)
}

func (h *Handler) ListVitals(c echo.Context) error {
	d, err := h.svc.Dataset()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return paged(c, filterByPatient(c, d.Vitals, func(s VitalsSample) string { return s.PatientID }))
}

func paged[T any](c echo.Context, items []T) error {
	params := pagination.FromContext(c)
	w := params.Window(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[w.Start:w.End], len(items), params))
}

func filterByPatient[T any](c echo.Context, items []T, key func(T) string) []T {
	patientID := c.QueryParam("patient_id")
	if patientID == "" {
		return items
	}
	out := make([]T, 0)
	for _, it := range items {
		if key(it) == patientID {
			out = append(out, it)
		}
	}
	return out
}
