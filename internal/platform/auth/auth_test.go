package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/afyalink/afyalink/internal/domain/catalog"
	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer([]byte("test-secret"), "afyalink", time.Hour)
}

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := catalog.NewService(store)
	if err := cat.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cat
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()
	user := catalog.User{Email: "nurse@afyalink.org", Role: "nurse"}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "nurse@afyalink.org" || claims.Role != "nurse" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Subject != user.Email || claims.Issuer != "afyalink" {
		t.Fatalf("registered claims = %+v", claims.RegisteredClaims)
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().Issue(catalog.User{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenIssuer([]byte("different"), "afyalink", time.Hour)
	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerify_RejectsExpired(t *testing.T) {
	expired := NewTokenIssuer([]byte("test-secret"), "afyalink", -time.Minute)
	token, err := expired.Issue(catalog.User{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := testIssuer().Verify(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	if _, err := testIssuer().Verify("not.a.token"); err == nil {
		t.Fatal("expected verification failure")
	}
}

func doRequest(mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	issuer := testIssuer()
	token, err := issuer.Issue(catalog.User{Email: "a@b.c", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	strict := Middleware(issuer, false)
	if rec := doRequest(strict, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", rec.Code)
	}
	if rec := doRequest(strict, "Token abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("malformed header: status %d", rec.Code)
	}
	if rec := doRequest(strict, "Bearer bogus"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bogus token: status %d", rec.Code)
	}
	if rec := doRequest(strict, "Bearer "+token); rec.Code != http.StatusOK {
		t.Fatalf("valid token: status %d", rec.Code)
	}

	bypass := Middleware(issuer, true)
	if rec := doRequest(bypass, ""); rec.Code != http.StatusOK {
		t.Fatalf("dev bypass without header: status %d", rec.Code)
	}
	// A header that is present is still verified under the bypass.
	if rec := doRequest(bypass, "Bearer bogus"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("dev bypass with bad token: status %d", rec.Code)
	}
}

func TestMiddleware_ClaimsInContext(t *testing.T) {
	issuer := testIssuer()
	token, err := issuer.Issue(catalog.User{Email: "a@b.c", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, claims.Role)
	}, Middleware(issuer, false))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "admin" {
		t.Fatalf("status %d body %q", rec.Code, rec.Body.String())
	}
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RegisterAndSignin(t *testing.T) {
	cat := testCatalog(t)
	issuer := testIssuer()
	h := NewHandler(cat, issuer, zerolog.Nop())

	e := echo.New()
	h.RegisterRoutes(e.Group(""))

	rec := postJSON(e, "/auth/register", `{"name":"Achieng Otieno","email":"achieng@example.org","password":"s3cret","role":"nurse","site_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}

	// Duplicate email rejected.
	rec = postJSON(e, "/auth/register", `{"name":"Achieng Otieno","email":"achieng@example.org","password":"s3cret"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d", rec.Code)
	}

	rec = postJSON(e, "/auth/signin", `{"email":"achieng@example.org","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin: status %d body %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp["token_type"] != "bearer" || resp["access_token"] == "" {
		t.Fatalf("unexpected signin response: %+v", resp)
	}

	claims, err := issuer.Verify(resp["access_token"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "achieng@example.org" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestHandler_SigninRejectsBadCredentials(t *testing.T) {
	cat := testCatalog(t)
	h := NewHandler(cat, testIssuer(), zerolog.Nop())

	e := echo.New()
	h.RegisterRoutes(e.Group(""))

	rec := postJSON(e, "/auth/signin", `{"email":"nobody@example.org","password":"x"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: status %d", rec.Code)
	}

	if rec := postJSON(e, "/auth/register", `{"name":"A","email":"a@example.org","password":"right"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d", rec.Code)
	}
	rec = postJSON(e, "/auth/signin", `{"email":"a@example.org","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d", rec.Code)
	}
}

func TestHandler_RegisterValidatesInput(t *testing.T) {
	cat := testCatalog(t)
	h := NewHandler(cat, testIssuer(), zerolog.Nop())

	e := echo.New()
	h.RegisterRoutes(e.Group(""))

	rec := postJSON(e, "/auth/register", `{"email":"a@example.org"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: status %d", rec.Code)
	}
}
