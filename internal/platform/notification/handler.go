package notification

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes notification operations over HTTP.
type Handler struct {
	manager *Manager
}

func NewHandler(mgr *Manager) *Handler {
	return &Handler{manager: mgr}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/notifications/send", h.handleSend)
	g.POST("/notifications/send-template", h.handleSendTemplate)
	g.GET("/notifications/stats", h.handleStats)
	g.GET("/notifications/:id", h.handleGet)
	g.GET("/notifications", h.handleList)
	g.POST("/notifications/:id/retry", h.handleRetry)
}

type sendRequest struct {
	Type      Type   `json:"type"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Severity  string `json:"severity"`
}

func (h *Handler) handleSend(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	n := &Notification{
		Type:      req.Type,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Body:      req.Body,
		Severity:  req.Severity,
	}

	// A failed delivery is still logged; return it with its error and ID
	// so the caller can retry.
	_ = h.manager.Send(c.Request().Context(), n)
	return c.JSON(http.StatusCreated, n)
}

type sendTemplateRequest struct {
	TemplateID string            `json:"template_id"`
	Recipient  string            `json:"recipient"`
	Data       map[string]string `json:"data"`
}

func (h *Handler) handleSendTemplate(c echo.Context) error {
	var req sendTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	n, err := h.manager.SendFromTemplate(c.Request().Context(), req.TemplateID, req.Recipient, req.Data)
	if err != nil && n == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *Handler) handleGet(c echo.Context) error {
	n, err := h.manager.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) handleList(c echo.Context) error {
	recipient := c.QueryParam("recipient")
	if recipient == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "recipient query parameter is required"})
	}
	return c.JSON(http.StatusOK, h.manager.ListByRecipient(recipient, 100))
}

func (h *Handler) handleRetry(c echo.Context) error {
	id := c.Param("id")
	if err := h.manager.Retry(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	n, _ := h.manager.Get(id)
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.Stats())
}
