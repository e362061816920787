package reservoir

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/pkg/metrics"
)

// APIKeyHeader carries the Reservoir API key upstream.
const APIKeyHeader = "x-api-key"

var (
	// ErrRateLimited means the per-chain limiter rejected the request.
	ErrRateLimited = errors.New("rate limited")
	// ErrProxyDisabled means the chain talks to Reservoir directly.
	ErrProxyDisabled = errors.New("proxy disabled for chain")
	// ErrUpstream wraps transport failures towards Reservoir.
	ErrUpstream = errors.New("reservoir upstream failure")
)

// Request is the part of an inbound request that is forwarded.
type Request struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Accept      string
	Body        []byte
}

// Response is the upstream answer relayed to the caller.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Options configures the proxy.
type Options struct {
	Timeout            time.Duration
	RateLimitPerSecond float64
	Burst              int
}

// Proxy forwards marketplace requests to the chain's Reservoir API and adds
// the server-side API key.
type Proxy struct {
	client   *fasthttp.Client
	chains   port.ChainProvider
	limiters map[string]*rate.Limiter
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewProxy creates a proxy with one token bucket per enabled chain. m may be nil.
func NewProxy(chains port.ChainProvider, opts Options, logger *zap.Logger, m *metrics.Metrics) *Proxy {
	limiters := make(map[string]*rate.Limiter)
	for _, chain := range chains.Chains() {
		limiters[chain.RoutePrefix] = rate.NewLimiter(rate.Limit(opts.RateLimitPerSecond), opts.Burst)
	}
	return &Proxy{
		client:   &fasthttp.Client{},
		chains:   chains,
		limiters: limiters,
		timeout:  opts.Timeout,
		logger:   logger.Named("ReservoirProxy"),
		metrics:  m,
	}
}

// Forward relays req to the Reservoir API of the chain with routePrefix.
// Client-supplied API keys are never forwarded.
func (p *Proxy) Forward(ctx context.Context, routePrefix string, in Request) (Response, error) {
	chain, ok := p.chains.ChainByRoutePrefix(routePrefix)
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", entity.ErrChainNotFound, routePrefix)
	}
	if !chain.ProxyEnabled() {
		return Response{}, fmt.Errorf("%w: %s", ErrProxyDisabled, routePrefix)
	}
	if limiter, ok := p.limiters[routePrefix]; ok && !limiter.Allow() {
		if p.metrics != nil {
			p.metrics.ProxyRateLimited.WithLabelValues(routePrefix).Inc()
		}
		return Response{}, fmt.Errorf("%w: %s", ErrRateLimited, routePrefix)
	}

	targetURL := UpstreamURL(chain.ReservoirBaseURL, in.Path, in.RawQuery)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(targetURL)
	method := in.Method
	if method == "" {
		method = fasthttp.MethodGet
	}
	req.Header.SetMethod(method)
	if in.ContentType != "" {
		req.Header.SetContentType(in.ContentType)
	}
	if in.Accept != "" {
		req.Header.Set("Accept", in.Accept)
	}
	req.Header.Del(APIKeyHeader)
	if chain.APIKey != "" {
		req.Header.Set(APIKeyHeader, chain.APIKey)
	}
	if len(in.Body) > 0 {
		req.SetBody(in.Body)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	p.logger.Debug("Forwarding request to Reservoir",
		zap.String("chain", routePrefix),
		zap.String("method", method),
		zap.String("path", in.Path),
	)

	started := time.Now()
	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = p.client.DoDeadline(req, resp, deadline)
	} else {
		err = p.client.DoTimeout(req, resp, p.timeout)
	}
	if p.metrics != nil {
		p.metrics.ProxyDuration.WithLabelValues(routePrefix).Observe(time.Since(started).Seconds())
	}
	if err != nil {
		p.record(routePrefix, "error")
		p.logger.Error("Failed to execute request to Reservoir", zap.String("chain", routePrefix), zap.String("path", in.Path), zap.Error(err))
		return Response{}, fmt.Errorf("%w: %s: %v", ErrUpstream, routePrefix, err)
	}

	p.record(routePrefix, strconv.Itoa(resp.StatusCode()))
	return Response{
		StatusCode:  resp.StatusCode(),
		ContentType: string(resp.Header.ContentType()),
		Body:        append([]byte(nil), resp.Body()...),
	}, nil
}

func (p *Proxy) record(routePrefix, status string) {
	if p.metrics != nil {
		p.metrics.ProxyRequests.WithLabelValues(routePrefix, status).Inc()
	}
}

// UpstreamURL joins the Reservoir base URL, the forwarded path and the query.
func UpstreamURL(baseURL, path, rawQuery string) string {
	target := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}
