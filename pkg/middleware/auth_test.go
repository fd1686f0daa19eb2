package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"audir/pkg/identity"
)

func request(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *identity.Identity) {
	t.Helper()
	e := echo.New()
	var seen *identity.Identity
	handler := func(c echo.Context) error {
		if id, ok := identity.From(c); ok {
			seen = &id
		}
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := RequireIdentity("secret")(handler)(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec, seen
}

func TestMissingTokenRejected(t *testing.T) {
	for _, h := range []string{"", "Bearer ", "Basic abc", "token-without-scheme"} {
		rec, seen := request(t, h)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status %d, want 401", h, rec.Code)
		}
		if seen != nil {
			t.Errorf("header %q: handler ran with identity", h)
		}
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	rec, seen := request(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	if seen != nil {
		t.Fatalf("handler ran with identity")
	}
}

func TestValidTokenStoresIdentity(t *testing.T) {
	want := identity.Identity{TenantID: 2, UserID: 9, Role: "Auditor", Department: "Quality", DisplayName: "Rita Kwan"}
	token, err := identity.Sign(want, "secret", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, seen := request(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if seen == nil {
		t.Fatalf("identity not stored")
	}
	if *seen != want {
		t.Fatalf("identity = %+v, want %+v", *seen, want)
	}
}
