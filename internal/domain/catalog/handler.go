package catalog

import (
	"net/http"

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
	api.GET("/sites", h.ListSites)
	api.GET("/users", h.ListUsers)
	api.GET("/users/count", h.CountUsers)
}

// siteSummary mirrors the dashboard site picker payload.
type siteSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) ListSites(c echo.Context) error {
	sites := h.svc.Sites()
	if len(sites) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no sites available")
	}
	out := make([]siteSummary, len(sites))
	for i, s := range sites {
		out[i] = siteSummary{ID: s.SiteID, Name: s.Name}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListUsers(c echo.Context) error {
	params := pagination.FromContext(c)
	users := h.svc.Users()

	w := params.Window(len(users))
	return c.JSON(http.StatusOK, pagination.NewResponse(users[w.Start:w.End], len(users), params))
}

func (h *Handler) CountUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"count": h.svc.UserCount()})
}
