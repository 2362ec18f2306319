package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxFor(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxFor(t, "/"))

	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", p.Offset)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := FromContext(ctxFor(t, "/?limit=50&offset=10"))

	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset)
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	p := FromContext(ctxFor(t, "/?limit=5000"))

	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := FromContext(ctxFor(t, "/?offset=-5"))

	if p.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", p.Offset)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name          string
		params        Params
		total         int
		start, end    int
		hasMore       bool
	}{
		{"first page", Params{Limit: 10, Offset: 0}, 25, 0, 10, true},
		{"middle page", Params{Limit: 10, Offset: 10}, 25, 10, 20, true},
		{"last partial page", Params{Limit: 10, Offset: 20}, 25, 20, 25, false},
		{"offset past end", Params{Limit: 10, Offset: 40}, 25, 25, 25, false},
		{"empty total", Params{Limit: 10, Offset: 0}, 0, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := tc.params.Window(tc.total)
			if w.Start != tc.start || w.End != tc.end || w.HasMore != tc.hasMore {
				t.Errorf("got window %+v", w)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2, 3}, 30, Params{Limit: 3, Offset: 0})
	if !resp.HasMore {
		t.Error("expected has_more")
	}
	if resp.Total != 30 {
		t.Errorf("expected total 30, got %d", resp.Total)
	}

	resp = NewResponse([]int{1}, 1, Params{Limit: 20, Offset: 0})
	if resp.HasMore {
		t.Error("expected no more pages")
	}
}
