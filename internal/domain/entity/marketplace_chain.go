package entity

// MarketplaceChain is a BaseChain extended with everything the marketplace needs
// to talk to the Reservoir indexer and render the chain in the UI.
type MarketplaceChain struct {
	BaseChain

	LightIconURL     string `json:"lightIconUrl" yaml:"lightIconUrl"`
	DarkIconURL      string `json:"darkIconUrl" yaml:"darkIconUrl"`
	ReservoirBaseURL string `json:"reservoirBaseUrl" yaml:"reservoirBaseUrl"`
	// ProxyAPI is a same-origin path that forwards to ReservoirBaseURL and adds APIKey server side.
	ProxyAPI    string `json:"proxyApi,omitempty" yaml:"proxyApi,omitempty"`
	RoutePrefix string `json:"routePrefix" yaml:"routePrefix"`
	// APIKey is a secret and must never reach a client.
	APIKey            string     `json:"-" yaml:"-"`
	CoingeckoID       string     `json:"coingeckoId,omitempty" yaml:"coingeckoId,omitempty"`
	CollectionSetID   string     `json:"collectionSetId,omitempty" yaml:"collectionSetId,omitempty"`
	Community         string     `json:"community,omitempty" yaml:"community,omitempty"`
	WSSURL            string     `json:"wssUrl,omitempty" yaml:"wssUrl,omitempty"`
	ListingCurrencies []Currency `json:"listingCurrencies,omitempty" yaml:"listingCurrencies,omitempty"`
	OracleBidsEnabled *bool      `json:"oracleBidsEnabled,omitempty" yaml:"oracleBidsEnabled,omitempty"`
	// CheckPollingIntervalMs is how often the SDK polls order status, in milliseconds.
	CheckPollingIntervalMs int64 `json:"checkPollingInterval,omitempty" yaml:"checkPollingInterval,omitempty"`
}

// ChainOverride holds the marketplace-specific fields layered on top of a BaseChain.
// Name and ID, when set, replace the base values.
type ChainOverride struct {
	ID   uint64
	Name string

	LightIconURL           string
	DarkIconURL            string
	ReservoirBaseURL       string
	ProxyAPI               string
	RoutePrefix            string
	APIKey                 string
	CoingeckoID            string
	CollectionSetID        string
	Community              string
	WSSURL                 string
	ListingCurrencies      []Currency
	OracleBidsEnabled      *bool
	CheckPollingIntervalMs int64
}

// Extend merges override on top of base. Every non-zero override field wins;
// everything else comes from base. The result shares no slices or pointers with its inputs.
func Extend(base BaseChain, override ChainOverride) MarketplaceChain {
	chain := MarketplaceChain{BaseChain: base.Clone()}
	if override.ID != 0 {
		chain.ID = override.ID
	}
	if override.Name != "" {
		chain.Name = override.Name
	}

	chain.LightIconURL = override.LightIconURL
	chain.DarkIconURL = override.DarkIconURL
	chain.ReservoirBaseURL = override.ReservoirBaseURL
	chain.ProxyAPI = override.ProxyAPI
	chain.RoutePrefix = override.RoutePrefix
	chain.APIKey = override.APIKey
	chain.CoingeckoID = override.CoingeckoID
	chain.CollectionSetID = override.CollectionSetID
	chain.Community = override.Community
	chain.WSSURL = override.WSSURL
	chain.CheckPollingIntervalMs = override.CheckPollingIntervalMs
	if override.ListingCurrencies != nil {
		chain.ListingCurrencies = append([]Currency(nil), override.ListingCurrencies...)
	}
	if override.OracleBidsEnabled != nil {
		enabled := *override.OracleBidsEnabled
		chain.OracleBidsEnabled = &enabled
	}
	return chain
}

// Clone returns a deep copy of the chain.
func (c MarketplaceChain) Clone() MarketplaceChain {
	out := c
	out.BaseChain = c.BaseChain.Clone()
	if c.ListingCurrencies != nil {
		out.ListingCurrencies = append([]Currency(nil), c.ListingCurrencies...)
	}
	if c.OracleBidsEnabled != nil {
		enabled := *c.OracleBidsEnabled
		out.OracleBidsEnabled = &enabled
	}
	return out
}

// NativeListingCurrency returns the chain's gas token in marketplace currency form.
func (c MarketplaceChain) NativeListingCurrency() Currency {
	return Currency{
		Contract:    ZeroAddress,
		Symbol:      c.BaseChain.NativeCurrency.Symbol,
		Decimals:    c.BaseChain.NativeCurrency.Decimals,
		CoinGeckoID: c.CoingeckoID,
	}
}

// Currencies returns the accepted listing currencies, falling back to the native currency.
func (c MarketplaceChain) Currencies() []Currency {
	if len(c.ListingCurrencies) > 0 {
		return append([]Currency(nil), c.ListingCurrencies...)
	}
	return []Currency{c.NativeListingCurrency()}
}

// ProxyEnabled reports whether clients should go through the key-injecting proxy.
func (c MarketplaceChain) ProxyEnabled() bool {
	return c.ProxyAPI != "" && c.ProxyAPI != c.ReservoirBaseURL
}
