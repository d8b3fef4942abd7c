package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resolvia/dispute-portal/internal/api/metrics"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

// RulingHandler serves the public rulings directory. No session is required;
// published decisions are public record.
type RulingHandler struct {
	service ports.RulingService
	cache   ports.RulingCache
	log     zerolog.Logger
}

func NewRulingHandler(service ports.RulingService, cache ports.RulingCache, log zerolog.Logger) *RulingHandler {
	return &RulingHandler{service: service, cache: cache, log: log}
}

// List handles GET /rulings.
//
// @Summary      List published rulings
// @Tags         rulings
// @Produce      json
// @Param        category  query     string  false  "Filter by case category"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  ports.RulingListResult
// @Failure      500       {object}  errorResponse
// @Router       /rulings [get]
func (h *RulingHandler) List(c echo.Context) error {
	q := ports.RulingQuery{
		Category: c.QueryParam("category"),
		Page:     intParam(c, "page", 1),
		Limit:    intParam(c, "limit", 0),
	}

	// Cache failures only cost the shortcut, never the request.
	if h.cache != nil {
		cached, err := h.cache.Get(c.Request().Context(), q.Category, q.Page, q.Limit)
		if err != nil {
			h.log.Warn().Err(err).Msg("ruling cache read failed")
		} else if cached != nil {
			metrics.RulingCacheTotal.WithLabelValues("hit").Inc()
			return c.JSONBlob(http.StatusOK, cached)
		}
		metrics.RulingCacheTotal.WithLabelValues("miss").Inc()
	}

	result, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if h.cache != nil {
		if err := h.cache.Set(c.Request().Context(), q.Category, q.Page, q.Limit, payload); err != nil {
			h.log.Warn().Err(err).Msg("ruling cache write failed")
		}
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// Get handles GET /rulings/:order_number.
//
// @Summary      Get a published ruling
// @Tags         rulings
// @Produce      json
// @Param        order_number  path      string  true  "Order number"
// @Success      200           {object}  ports.RulingDetail
// @Failure      404           {object}  errorResponse
// @Router       /rulings/{order_number} [get]
func (h *RulingHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("order_number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
