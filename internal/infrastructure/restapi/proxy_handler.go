package restapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/reservoir"
)

// ReservoirForwarder relays a request to a chain's Reservoir API.
type ReservoirForwarder interface {
	Forward(ctx context.Context, routePrefix string, req reservoir.Request) (reservoir.Response, error)
}

// ProxyHandler exposes the Reservoir proxy under /api/reservoir.
type ProxyHandler struct {
	forwarder ReservoirForwarder
	logger    port.Logger
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(forwarder ReservoirForwarder, logger port.Logger) *ProxyHandler {
	return &ProxyHandler{forwarder: forwarder, logger: logger}
}

// ForwardHandler relays any method to the chain selected by :routePrefix.
func (h *ProxyHandler) ForwardHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	routePrefix := c.Param("routePrefix")
	resp, err := h.forwarder.Forward(c.Request.Context(), routePrefix, reservoir.Request{
		Method:      c.Request.Method,
		Path:        c.Param("path"),
		RawQuery:    c.Request.URL.RawQuery,
		ContentType: c.ContentType(),
		Accept:      c.GetHeader("Accept"),
		Body:        body,
	})
	if err != nil {
		status := proxyErrorStatus(err)
		if status == http.StatusBadGateway {
			h.logger.Error("Reservoir proxy failed", "route_prefix", routePrefix, "error", err)
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func proxyErrorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrChainNotFound), errors.Is(err, reservoir.ErrProxyDisabled):
		return http.StatusNotFound
	case errors.Is(err, reservoir.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
