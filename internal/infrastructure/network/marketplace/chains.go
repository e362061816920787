package marketplace

import (
	"fmt"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/envloader"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/definition"
)

// Entry is one row of the marketplace chain table.
type Entry struct {
	Base     entity.BaseChain
	Override entity.ChainOverride
	// EnvPrefix selects NEXT_PUBLIC_<EnvPrefix>_COLLECTION_SET_ID and NEXT_PUBLIC_<EnvPrefix>_COMMUNITY.
	// Empty means the chain reads no deployment filters.
	EnvPrefix string
	Enabled   bool
	Default   bool
}

// Entries returns the full table, disabled chains included. Toggle Enabled to
// add or remove a chain from the marketplace.
func Entries() []Entry {
	return []Entry{
		{
			Base: definition.Optimism,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/optimism-icon-dark.svg",
				DarkIconURL:      "/icons/optimism-icon-light.svg",
				ReservoirBaseURL: "https://api-optimism.reservoir.tools",
				ProxyAPI:         "/api/reservoir/optimism",
				RoutePrefix:      "optimism",
				CoingeckoID:      "optimism",
			},
			EnvPrefix: "OPTIMISM",
			Enabled:   true,
			Default:   true,
		},
		{
			Base: definition.Arbitrum,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/arbitrum-icon-dark.svg",
				DarkIconURL:      "/icons/arbitrum-icon-light.svg",
				ReservoirBaseURL: "https://api-arbitrum.reservoir.tools",
				ProxyAPI:         "/api/reservoir/arbitrum",
				RoutePrefix:      "arbitrum",
				CoingeckoID:      "ethereum",
			},
			EnvPrefix: "ARBITRUM",
			Enabled:   true,
		},
		{
			Base: definition.ArbitrumNova,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/arbitrum-nova-icon-dark.svg",
				DarkIconURL:      "/icons/arbitrum-nova-icon-light.svg",
				ReservoirBaseURL: "https://api-arbitrum-nova.reservoir.tools",
				ProxyAPI:         "/api/reservoir/arbitrum-nova",
				RoutePrefix:      "arbitrum-nova",
				CoingeckoID:      "ethereum",
			},
			EnvPrefix: "ARBITRUM_NOVA",
		},
		{
			Base: definition.Mainnet,
			Override: entity.ChainOverride{
				Name:             "Ethereum",
				LightIconURL:     "/icons/eth-icon-dark.svg",
				DarkIconURL:      "/icons/eth-icon-light.svg",
				ReservoirBaseURL: "https://api.reservoir.tools",
				ProxyAPI:         "/api/reservoir/ethereum",
				RoutePrefix:      "ethereum",
				CoingeckoID:      "ethereum",
			},
			EnvPrefix: "ETH",
			Enabled:   true,
		},
		{
			Base: definition.Polygon,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/polygon-icon-dark.svg",
				DarkIconURL:      "/icons/polygon-icon-light.svg",
				ReservoirBaseURL: "https://api-polygon.reservoir.tools",
				ProxyAPI:         "/api/reservoir/polygon",
				RoutePrefix:      "polygon",
				CoingeckoID:      "matic-network",
			},
			EnvPrefix: "POLYGON",
			Enabled:   true,
		},
		{
			Base: definition.Zora,
			Override: entity.ChainOverride{
				Name:             "Zora",
				LightIconURL:     "/icons/zora-icon-dark.svg",
				DarkIconURL:      "/icons/zora-icon-light.svg",
				ReservoirBaseURL: "https://api-zora.reservoir.tools",
				ProxyAPI:         "/api/reservoir/zora",
				RoutePrefix:      "zora",
				CoingeckoID:      "ethereum",
			},
		},
		{
			Base: definition.BSC,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/bsc-icon-dark.svg",
				DarkIconURL:      "/icons/bsc-icon-light.svg",
				ReservoirBaseURL: "https://api-bsc.reservoir.tools",
				ProxyAPI:         "/api/reservoir/bsc",
				RoutePrefix:      "bsc",
				CoingeckoID:      "binancecoin",
			},
			EnvPrefix: "BSC",
		},
		{
			Base: definition.Base,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/base-icon-dark.svg",
				DarkIconURL:      "/icons/base-icon-light.svg",
				ReservoirBaseURL: "https://api-base.reservoir.tools",
				ProxyAPI:         "/api/reservoir/base",
				RoutePrefix:      "base",
				CoingeckoID:      "base",
			},
			EnvPrefix: "BASE",
		},
		{
			Base: definition.Linea,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/linea-icon-dark.svg",
				DarkIconURL:      "/icons/linea-icon-light.svg",
				ReservoirBaseURL: "https://api-linea.reservoir.tools",
				ProxyAPI:         "/api/reservoir/linea",
				RoutePrefix:      "linea",
				CoingeckoID:      "ethereum",
			},
			EnvPrefix: "LINEA",
			Enabled:   true,
		},
		{
			Base: definition.PolygonZkEVM,
			Override: entity.ChainOverride{
				LightIconURL:     "/icons/polygon-zkevm-icon-dark.svg",
				DarkIconURL:      "/icons/polygon-zkevm-icon-light.svg",
				ReservoirBaseURL: "https://api-polygon-zkevm.reservoir.tools",
				ProxyAPI:         "/api/reservoir/polygon-zkevm",
				RoutePrefix:      "polygon-zkevm",
				CoingeckoID:      "ethereum",
			},
			EnvPrefix: "POLYGON_ZKEVM",
		},
	}
}

// BuildEntry merges the entry's override onto its base chain and fills the
// environment-sourced fields. Absent values stay empty.
func BuildEntry(e Entry, env port.EnvSource) entity.MarketplaceChain {
	override := e.Override
	if key, ok := env.Lookup(envloader.ReservoirAPIKey); ok {
		override.APIKey = key
	}
	if e.EnvPrefix != "" {
		if v, ok := env.Lookup(envloader.CollectionSetIDKey(e.EnvPrefix)); ok {
			override.CollectionSetID = v
		}
		if v, ok := env.Lookup(envloader.CommunityKey(e.EnvPrefix)); ok {
			override.Community = v
		}
	}
	return entity.Extend(e.Base, override)
}

// Build returns the enabled marketplace chains, default chain first.
func Build(env port.EnvSource) ([]entity.MarketplaceChain, error) {
	return BuildEntries(Entries(), env)
}

// DefaultChain returns the chain the marketplace opens on.
func DefaultChain(env port.EnvSource) (entity.MarketplaceChain, error) {
	return DefaultOf(Entries(), env)
}

// BuildEntries returns the enabled chains of entries, default chain first. The
// result is validated; a table with duplicate or incomplete rows is an error.
func BuildEntries(entries []Entry, env port.EnvSource) ([]entity.MarketplaceChain, error) {
	defaultIdx, err := defaultEntry(entries)
	if err != nil {
		return nil, err
	}

	chains := make([]entity.MarketplaceChain, 0, len(entries))
	chains = append(chains, BuildEntry(entries[defaultIdx], env))
	for i, e := range entries {
		if i == defaultIdx || !e.Enabled {
			continue
		}
		chains = append(chains, BuildEntry(e, env))
	}

	if err := entity.ValidateChains(chains); err != nil {
		return nil, fmt.Errorf("invalid marketplace chain table: %w", err)
	}
	return chains, nil
}

// DefaultOf builds the default entry of entries.
func DefaultOf(entries []Entry, env port.EnvSource) (entity.MarketplaceChain, error) {
	idx, err := defaultEntry(entries)
	if err != nil {
		return entity.MarketplaceChain{}, err
	}
	return BuildEntry(entries[idx], env), nil
}

func defaultEntry(entries []Entry) (int, error) {
	idx := -1
	for i, e := range entries {
		if !e.Default {
			continue
		}
		if idx != -1 {
			return -1, fmt.Errorf("%w: both %s and %s are marked default", entity.ErrDefaultChain,
				entries[idx].Override.RoutePrefix, e.Override.RoutePrefix)
		}
		idx = i
	}
	if idx == -1 {
		return -1, fmt.Errorf("%w: no entry is marked default", entity.ErrDefaultChain)
	}
	if !entries[idx].Enabled {
		return -1, fmt.Errorf("%w: %s is disabled", entity.ErrDefaultChain, entries[idx].Override.RoutePrefix)
	}
	return idx, nil
}
