package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/afyalink/afyalink/internal/domain/catalog"
)

// Handler serves signin and register backed by the user roster.
type Handler struct {
	catalog *catalog.Service
	issuer  *TokenIssuer
	logger  zerolog.Logger
}

func NewHandler(cat *catalog.Service, issuer *TokenIssuer, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog: cat,
		issuer:  issuer,
		logger:  logger.With().Str("component", "auth").Logger(),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/register", h.handleRegister)
	g.POST("/auth/signin", h.handleSignin)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	SiteID   int    `json:"site_id"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, email and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "hash password"})
	}

	user, err := h.catalog.RegisterUser(req.Name, req.Email, string(hash), req.Role, req.SiteID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Str("email", user.Email).Msg("user registered")
	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleSignin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user, err := h.catalog.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, catalog.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "issue token"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
