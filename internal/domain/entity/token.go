package entity

// ZeroAddress represents the Ethereum zero address. Native currencies use it as their contract.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Currency is a token the marketplace accepts for listings and bids.
type Currency struct {
	Contract    string `json:"contract" yaml:"contract"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	Decimals    uint8  `json:"decimals" yaml:"decimals"`
	CoinGeckoID string `json:"coinGeckoId,omitempty" yaml:"coinGeckoId,omitempty"`
}

// IsNative reports whether the currency is the chain's gas token.
func (c Currency) IsNative() bool {
	return c.Contract == ZeroAddress
}
