package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) add(token string, role domain.Role) {
	now := time.Now().UTC()
	s.sessions[token] = &domain.Session{
		Token: token,
		Principal: domain.Principal{
			UserID: "user-1",
			Email:  "a@example.com",
			Role:   role,
			Status: domain.StatusActive,
		},
		CreatedAt:   now,
		RefreshedAt: now,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func (s *stubSessionStore) Issue(context.Context, domain.Principal) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func gateConfig() GateConfig {
	return GateConfig{SignInPath: "/auth/signin", DashboardPath: "/dashboard"}
}

func gateRequest(t *testing.T, store *stubSessionStore, path, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Gate(store, gateConfig())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	return rec, called
}

func TestGate_NoSessionRedirectsToSignIn(t *testing.T) {
	rec, called := gateRequest(t, newStubSessionStore(), "/dashboard/consumer", "")

	if called {
		t.Fatalf("handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	want := "/auth/signin?callbackUrl=%2Fdashboard%2Fconsumer"
	if got := rec.Header().Get(echo.HeaderLocation); got != want {
		t.Fatalf("expected redirect to %q, got %q", want, got)
	}
}

func TestGate_RoleMismatchRedirectsToOwnArea(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleConsumer)

	rec, called := gateRequest(t, store, "/dashboard/admin", "tok")

	if called {
		t.Fatalf("handler must not run for another role's area")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/dashboard/consumer" {
		t.Fatalf("expected redirect to own dashboard, got %q", got)
	}
}

func TestGate_GenericEntryPointRedirectsToRole(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleAdjudicator)

	rec, _ := gateRequest(t, store, "/dashboard", "tok")

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/dashboard/adjudicator" {
		t.Fatalf("expected redirect to role dashboard, got %q", got)
	}
}

func TestGate_MatchingRolePasses(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleBusiness)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/business", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Gate(store, gateConfig())(func(c echo.Context) error {
		p, ok := c.Get(PrincipalKey).(domain.Principal)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.Role != domain.RoleBusiness {
			t.Fatalf("unexpected role: %s", p.Role)
		}
		if c.Get(SessionTokenKey) != "tok" {
			t.Fatalf("session token not set")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_NonDashboardProtectedPathPasses(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleConsumer)

	rec, called := gateRequest(t, store, "/cases", "tok")

	if !called {
		t.Fatalf("handler should run for a valid session on /cases")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_BearerTokenAccepted(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleConsumer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/consumer", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Gate(store, gateConfig())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if !called {
		t.Fatalf("bearer session not accepted")
	}
}

func TestRequireSession_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireSession(newStubSessionStore())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRequireSession_ValidToken(t *testing.T) {
	store := newStubSessionStore()
	store.add("tok", domain.RoleAdmin)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RequireSession(store)(func(c echo.Context) error {
		called = true
		p, _ := c.Get(PrincipalKey).(domain.Principal)
		if p.Role != domain.RoleAdmin {
			t.Fatalf("unexpected role: %s", p.Role)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
