package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/resolvia/dispute-portal/internal/api/metrics"
	"github.com/resolvia/dispute-portal/internal/api/middleware"
	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

const defaultCallbackURL = "/dashboard"

// AuthHandler exposes registration, sign-in, sign-out and the current
// principal.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	strategy string
	maxAge   time.Duration
	secure   bool
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, strategy string, maxAge time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, strategy: strategy, maxAge: maxAge, secure: secureCookies}
}

// Register creates a new user account. It never signs the user in;
// registration and sign-in are separate steps.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		BusinessName:   req.BusinessName,
		BusinessNumber: req.BusinessNumber,
	})
	if err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues(registrationFailureReason(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		User: registeredUser{
			ID:        user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Status:    string(user.Status),
		},
	})
}

// SignIn exchanges credentials for a session. The token is set as an
// HttpOnly cookie; API clients may instead carry it as a bearer header.
// With "redirect": true the response is a 302 to the callback URL.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	principal, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(signinFailureResult(err)).Inc()
		return err
	}

	token, err := h.sessions.Issue(c.Request().Context(), principal)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues("internal").Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	metrics.SessionsIssuedTotal.WithLabelValues(h.strategy).Inc()

	c.SetCookie(h.sessionCookie(token, h.maxAge))

	target := sanitizeCallback(req.CallbackURL)
	if req.Redirect {
		return c.Redirect(http.StatusFound, target)
	}

	return c.JSON(http.StatusOK, signInResponse{
		Token:       token,
		RedirectURL: target,
		User: principalView{
			ID:        principal.UserID,
			Email:     principal.Email,
			Role:      string(principal.Role),
			FirstName: principal.FirstName,
			LastName:  principal.LastName,
			Status:    string(principal.Status),
			Verified:  principal.Verified,
		},
	})
}

// SignOut revokes the session (immediately effective for the server-held
// strategy) and clears the cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204  "session destroyed"
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if token, ok := c.Get(middleware.SessionTokenKey).(string); ok && token != "" {
		if err := h.sessions.Revoke(c.Request().Context(), token); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated principal.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Success      200  {object}  principalView
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principalView{
		ID:        p.UserID,
		Email:     p.Email,
		Role:      string(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Status:    string(p.Status),
		Verified:  p.Verified,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(maxAge / time.Second)
	}
	return cookie
}

// sanitizeCallback only accepts same-site relative paths; anything else
// falls back to the dashboard to rule out open redirects.
func sanitizeCallback(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return defaultCallbackURL
	}
	return raw
}

func registrationFailureReason(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, domain.ErrEmailExists):
		return "duplicate_email"
	default:
		return "internal"
	}
}

func signinFailureResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountSuspended):
		return "suspended"
	default:
		return "internal"
	}
}
