package provider

import (
	"fmt"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/bridge"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/marketplace"
)

// LoadTables builds every static table from the code definitions and the env snapshot.
func LoadTables(env port.EnvSource) (Tables, error) {
	chains, err := marketplace.Build(env)
	if err != nil {
		return Tables{}, err
	}
	oftChains, err := bridge.OFTChains()
	if err != nil {
		return Tables{}, fmt.Errorf("failed to build oft chains: %w", err)
	}
	nftBridges, err := bridge.NFTBridges()
	if err != nil {
		return Tables{}, fmt.Errorf("failed to build nft bridges: %w", err)
	}
	fortune, err := bridge.FortuneChains()
	if err != nil {
		return Tables{}, fmt.Errorf("failed to build fortune chains: %w", err)
	}
	raffle, err := bridge.RaffleChains()
	if err != nil {
		return Tables{}, fmt.Errorf("failed to build raffle chains: %w", err)
	}

	return Tables{
		Chains:        chains,
		OFTChains:     oftChains,
		NFTBridges:    nftBridges,
		FortuneChains: fortune,
		RaffleChains:  raffle,
	}, nil
}
