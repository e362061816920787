package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrPriceNotFound means CoinGecko answered but did not quote the requested coin.
var ErrPriceNotFound = errors.New("price not found")

// CoinGeckoOptions configures the CoinGecko client.
type CoinGeckoOptions struct {
	BaseURL         string
	APIKey          string
	VsCurrency      string
	Timeout         time.Duration
	CacheTTL        time.Duration
	CleanupInterval time.Duration
}

// simplePriceResponse is the /simple/price payload: coin id -> vs currency -> price.
type simplePriceResponse map[string]map[string]float64

type coinGeckoClientImpl struct {
	client     *fasthttp.Client
	baseURL    string
	apiKey     string
	vsCurrency string
	timeout    time.Duration
	cache      *cache.Cache
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewCoinGeckoClient creates a price client backed by the CoinGecko simple price API.
// m may be nil.
func NewCoinGeckoClient(opts CoinGeckoOptions, logger *zap.Logger, m *metrics.Metrics) port.PriceClient {
	return &coinGeckoClientImpl{
		client:     &fasthttp.Client{},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		vsCurrency: strings.ToLower(opts.VsCurrency),
		timeout:    opts.Timeout,
		cache:      cache.New(opts.CacheTTL, opts.CleanupInterval),
		logger:     logger.Named("CoinGeckoClient"),
		metrics:    m,
	}
}

// GetPriceUSD implements port.PriceClient. Successful lookups are cached.
func (c *coinGeckoClientImpl) GetPriceUSD(ctx context.Context, coinGeckoID string) (float64, error) {
	if coinGeckoID == "" {
		return 0, fmt.Errorf("coinGeckoID cannot be empty")
	}

	cacheKey := coinGeckoID + ":" + c.vsCurrency
	if cached, ok := c.cache.Get(cacheKey); ok {
		c.observe("hit")
		return cached.(float64), nil
	}

	price, err := c.fetchPrice(ctx, coinGeckoID)
	if err != nil {
		c.observe("error")
		return 0, err
	}
	c.observe("miss")
	c.cache.SetDefault(cacheKey, price)
	return price, nil
}

func (c *coinGeckoClientImpl) fetchPrice(ctx context.Context, coinGeckoID string) (float64, error) {
	query := url.Values{}
	query.Set("ids", coinGeckoID)
	query.Set("vs_currencies", c.vsCurrency)
	requestURL := c.baseURL + "/simple/price?" + query.Encode()

	c.logger.Debug("Requesting price from CoinGecko", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", c.apiKey)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			c.logger.Error("Failed to execute request to CoinGecko", zap.String("url", requestURL), zap.Error(err))
			return 0, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		c.logger.Error("Failed to execute request to CoinGecko (with default timeout)", zap.String("url", requestURL), zap.Error(err))
		return 0, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("CoinGecko API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody),
		)
		return 0, fmt.Errorf("CoinGecko API request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	var payload simplePriceResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		c.logger.Error("Failed to unmarshal CoinGecko response", zap.ByteString("responseBody", rawBody), zap.Error(err))
		return 0, fmt.Errorf("failed to unmarshal CoinGecko response: %w", err)
	}

	price, ok := payload[coinGeckoID][c.vsCurrency]
	if !ok {
		c.logger.Warn("CoinGecko did not quote coin", zap.String("coinGeckoID", coinGeckoID), zap.String("vsCurrency", c.vsCurrency))
		return 0, fmt.Errorf("%w: %s/%s", ErrPriceNotFound, coinGeckoID, c.vsCurrency)
	}
	return price, nil
}

func (c *coinGeckoClientImpl) observe(result string) {
	if c.metrics != nil {
		c.metrics.PriceLookups.WithLabelValues(result).Inc()
	}
}
