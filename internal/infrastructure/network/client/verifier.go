package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/errgroup"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/alchemy"
)

// ErrChainIDMismatch means an endpoint answered for a different chain.
var ErrChainIDMismatch = errors.New("chain id mismatch")

// EndpointResult is the outcome of probing one RPC URL.
type EndpointResult struct {
	URL     string `json:"url"` // API keys are redacted
	ChainID uint64 `json:"chainId,omitempty"`
	Err     error  `json:"-"`
	Error   string `json:"error,omitempty"` // redacted Err
}

// ChainReport collects the endpoint results of one marketplace chain.
type ChainReport struct {
	ChainID     uint64           `json:"chainId"`
	RoutePrefix string           `json:"routePrefix"`
	Endpoints   []EndpointResult `json:"endpoints"`
}

// Healthy reports whether at least one endpoint answered with the expected id
// and none answered with a different one.
func (r ChainReport) Healthy() bool {
	matched := false
	for _, ep := range r.Endpoints {
		if errors.Is(ep.Err, ErrChainIDMismatch) {
			return false
		}
		if ep.Err == nil {
			matched = true
		}
	}
	return matched
}

// VerifierOptions configures a Verifier.
type VerifierOptions struct {
	// AlchemyAPIKey adds the Alchemy endpoint of supported chains when set.
	AlchemyAPIKey string
	MaxConcurrent int
	Attempts      uint
	RetryDelay    time.Duration
}

// Verifier checks that every chain's RPC endpoints serve the chain id the table claims.
type Verifier struct {
	dialer        port.ChainIDDialer
	logger        port.Logger
	alchemyAPIKey string
	maxConcurrent int
	attempts      uint
	retryDelay    time.Duration
}

// NewVerifier creates a verifier.
func NewVerifier(dialer port.ChainIDDialer, logger port.Logger, opts VerifierOptions) *Verifier {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	return &Verifier{
		dialer:        dialer,
		logger:        logger,
		alchemyAPIKey: opts.AlchemyAPIKey,
		maxConcurrent: opts.MaxConcurrent,
		attempts:      opts.Attempts,
		retryDelay:    opts.RetryDelay,
	}
}

// Candidates returns the RPC URLs probed for a chain: Alchemy first when
// configured, then the base chain's public endpoints.
func (v *Verifier) Candidates(chain entity.MarketplaceChain) []string {
	urls := make([]string, 0, len(chain.RPCURLs)+1)
	if url, ok := alchemy.RPCURL(int64(chain.ID), v.alchemyAPIKey); ok {
		urls = append(urls, url)
	}
	return append(urls, chain.RPCURLs...)
}

// Verify probes every candidate of every chain. Reports keep the order of chains.
// The returned error is only set when ctx is cancelled.
func (v *Verifier) Verify(ctx context.Context, chains []entity.MarketplaceChain) ([]ChainReport, error) {
	reports := make([]ChainReport, len(chains))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(v.maxConcurrent)

	for i, chain := range chains {
		reports[i] = ChainReport{ChainID: chain.ID, RoutePrefix: chain.RoutePrefix}
		candidates := v.Candidates(chain)
		reports[i].Endpoints = make([]EndpointResult, len(candidates))

		for j, url := range candidates {
			eg.Go(func() error {
				reports[i].Endpoints[j] = v.probe(egCtx, chain.ID, url)
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return reports, err
	}
	for _, report := range reports {
		if report.Healthy() {
			v.logger.Info("Chain RPC verified", "route_prefix", report.RoutePrefix, "chain_id", report.ChainID)
		} else {
			v.logger.Error("Chain RPC verification failed", "route_prefix", report.RoutePrefix, "chain_id", report.ChainID)
		}
	}
	return reports, ctx.Err()
}

func (v *Verifier) probe(ctx context.Context, expected uint64, url string) EndpointResult {
	result := EndpointResult{URL: redact(url, v.alchemyAPIKey)}

	got, err := retry.DoWithData(func() (uint64, error) {
		return v.fetchChainID(ctx, url)
	},
		retry.Context(ctx),
		retry.Attempts(v.attempts),
		retry.Delay(v.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		result.Err = err
		result.Error = redactErr(err, v.alchemyAPIKey)
		v.logger.Warn("RPC endpoint unreachable", "url", result.URL, "error", result.Error)
		return result
	}

	result.ChainID = got
	if got != expected {
		result.Err = fmt.Errorf("%w: expected %d, got %d", ErrChainIDMismatch, expected, got)
		result.Error = result.Err.Error()
		v.logger.Error("RPC endpoint serves another chain", "url", result.URL, "expected", expected, "got", got)
		return result
	}
	v.logger.Debug("RPC endpoint ok", "url", result.URL, "chain_id", got)
	return result
}

func (v *Verifier) fetchChainID(ctx context.Context, url string) (uint64, error) {
	client, err := v.dialer.Dial(ctx, url)
	if err != nil {
		return 0, err
	}
	defer client.Close()
	return client.ChainID(ctx)
}

func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "***")
}

func redactErr(err error, secret string) string {
	return redact(err.Error(), secret)
}
