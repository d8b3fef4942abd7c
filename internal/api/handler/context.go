package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resolvia/dispute-portal/internal/api/middleware"
	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the session middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake and fails closed with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
