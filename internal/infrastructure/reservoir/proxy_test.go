package reservoir

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/app/provider"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/pkg/logger"
	"github.com/NFTEarth/exchange-2024/internal/pkg/metrics"
)

type seenRequest struct {
	method      string
	path        string
	query       string
	apiKey      string
	contentType string
	body        string
}

func newUpstream(t *testing.T, seen chan<- seenRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen <- seenRequest{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			apiKey:      r.Header.Get(APIKeyHeader),
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testChain(id uint64, prefix, baseURL, apiKey string) entity.MarketplaceChain {
	return entity.MarketplaceChain{
		BaseChain:        entity.BaseChain{ID: id, Name: prefix},
		LightIconURL:     "/icons/light.svg",
		DarkIconURL:      "/icons/dark.svg",
		ReservoirBaseURL: baseURL,
		ProxyAPI:         "/api/reservoir/" + prefix,
		RoutePrefix:      prefix,
		APIKey:           apiKey,
	}
}

func newChains(t *testing.T, chains ...entity.MarketplaceChain) port.ChainProvider {
	t.Helper()
	p, err := provider.NewChainProvider(provider.Tables{Chains: chains}, logger.NewSlogAdapter())
	require.NoError(t, err)
	return p
}

func TestForward_InjectsKeyAndRelays(t *testing.T) {
	seen := make(chan seenRequest, 1)
	upstream := newUpstream(t, seen)
	m := metrics.New()
	proxy := NewProxy(newChains(t, testChain(10, "optimism", upstream.URL+"/", "secret")),
		Options{Timeout: 2 * time.Second, RateLimitPerSecond: 100, Burst: 10}, zap.NewNop(), m)

	resp, err := proxy.Forward(context.Background(), "optimism", Request{
		Method:      http.MethodPost,
		Path:        "/execute/list/v5",
		RawQuery:    "limit=20",
		ContentType: "application/json",
		Body:        []byte(`{"order":1}`),
	})
	require.NoError(t, err)

	got := <-seen
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/execute/list/v5", got.path)
	assert.Equal(t, "limit=20", got.query)
	assert.Equal(t, "secret", got.apiKey)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, `{"order":1}`, got.body)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.InDelta(t, 1, testutil.ToFloat64(m.ProxyRequests.WithLabelValues("optimism", "202")), 0)
}

func TestForward_NoKeyConfigured(t *testing.T) {
	seen := make(chan seenRequest, 1)
	upstream := newUpstream(t, seen)
	proxy := NewProxy(newChains(t, testChain(10, "optimism", upstream.URL, "")),
		Options{Timeout: 2 * time.Second, RateLimitPerSecond: 100, Burst: 10}, zap.NewNop(), nil)

	_, err := proxy.Forward(context.Background(), "optimism", Request{Path: "collections/v7"})
	require.NoError(t, err)

	got := <-seen
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/collections/v7", got.path)
	assert.Empty(t, got.apiKey)
}

func TestForward_Errors(t *testing.T) {
	seen := make(chan seenRequest, 4)
	upstream := newUpstream(t, seen)

	t.Run("unknown chain", func(t *testing.T) {
		proxy := NewProxy(newChains(t, testChain(10, "optimism", upstream.URL, "")),
			Options{Timeout: time.Second, RateLimitPerSecond: 100, Burst: 10}, zap.NewNop(), nil)
		_, err := proxy.Forward(context.Background(), "solana", Request{Path: "/x"})
		assert.ErrorIs(t, err, entity.ErrChainNotFound)
	})

	t.Run("proxy disabled", func(t *testing.T) {
		chain := testChain(10, "optimism", upstream.URL, "")
		chain.ProxyAPI = ""
		proxy := NewProxy(newChains(t, chain),
			Options{Timeout: time.Second, RateLimitPerSecond: 100, Burst: 10}, zap.NewNop(), nil)
		_, err := proxy.Forward(context.Background(), "optimism", Request{Path: "/x"})
		assert.ErrorIs(t, err, ErrProxyDisabled)
	})

	t.Run("rate limited", func(t *testing.T) {
		m := metrics.New()
		proxy := NewProxy(newChains(t, testChain(10, "optimism", upstream.URL, "")),
			Options{Timeout: time.Second, RateLimitPerSecond: 0.001, Burst: 1}, zap.NewNop(), m)
		_, err := proxy.Forward(context.Background(), "optimism", Request{Path: "/x"})
		require.NoError(t, err)
		<-seen
		_, err = proxy.Forward(context.Background(), "optimism", Request{Path: "/x"})
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.InDelta(t, 1, testutil.ToFloat64(m.ProxyRateLimited.WithLabelValues("optimism")), 0)
	})

	t.Run("upstream unreachable", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		deadURL := dead.URL
		dead.Close()

		proxy := NewProxy(newChains(t, testChain(10, "optimism", deadURL, "")),
			Options{Timeout: time.Second, RateLimitPerSecond: 100, Burst: 10}, zap.NewNop(), nil)
		_, err := proxy.Forward(context.Background(), "optimism", Request{Path: "/x"})
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestUpstreamURL(t *testing.T) {
	assert.Equal(t, "https://api.reservoir.tools/tokens/v7?limit=1",
		UpstreamURL("https://api.reservoir.tools/", "/tokens/v7", "limit=1"))
	assert.Equal(t, "https://api-optimism.reservoir.tools/search",
		UpstreamURL("https://api-optimism.reservoir.tools", "search", ""))
}
