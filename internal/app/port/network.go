package port

import (
	"context"

	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
)

// EnvSource resolves environment values. Implementations are snapshots taken once at startup.
type EnvSource interface {
	// Lookup returns the value and true if the key is set and non-empty.
	Lookup(key string) (string, bool)
}

// ChainProvider defines the read-only view over the marketplace chain tables.
type ChainProvider interface {
	// Chains returns the enabled marketplace chains, default chain first.
	Chains() []entity.MarketplaceChain

	// DefaultChain returns the chain the marketplace opens on.
	DefaultChain() entity.MarketplaceChain

	// ChainByRoutePrefix returns the chain whose route prefix matches.
	ChainByRoutePrefix(routePrefix string) (entity.MarketplaceChain, bool)

	// ChainByID returns the chain with the given numeric id.
	ChainByID(chainID uint64) (entity.MarketplaceChain, bool)

	OFTChains() []entity.OFTChain
	OFTChainByID(chainID uint64) (entity.OFTChain, bool)
	NFTBridge(chainID uint64) (entity.NFTBridge, bool)
	FortuneChains() []entity.AppContracts
	RaffleChains() []entity.AppContracts
}

// ChainIDClient is the part of an RPC client the verifier needs.
type ChainIDClient interface {
	ChainID(ctx context.Context) (uint64, error)
	Close()
}

// ChainIDDialer opens a ChainIDClient for an RPC URL.
type ChainIDDialer interface {
	Dial(ctx context.Context, rpcURL string) (ChainIDClient, error)
}
