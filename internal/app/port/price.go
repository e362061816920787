package port

import "context"

// PriceClient resolves USD prices for CoinGecko coin ids.
type PriceClient interface {
	// GetPriceUSD returns the price of one unit of the coin in the configured vs currency.
	GetPriceUSD(ctx context.Context, coinGeckoID string) (float64, error)
}
