package bridge

import (
	"fmt"

	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/definition"
)

// OFTEntry is one row of the OFT token deployment table.
type OFTEntry struct {
	Chain   entity.OFTChain
	Enabled bool
	Default bool
}

const (
	fortunePriceOracle     = "0x896397f72bd5c207cab95740d48ca76acf960b16"
	fortuneTransferManager = "0xf502c99ebdffd2f5fb92c162ea12d741b98402c2"
)

// OFTEntries returns every known OFT deployment, disabled ones included.
func OFTEntries() []OFTEntry {
	return []OFTEntry{
		{
			Chain: entity.OFTChain{
				ID:                 definition.Base.ID,
				LzID:               184,
				Name:               definition.Base.Name,
				RoutePrefix:        "base",
				Address:            "0xc2106ca72996e49bBADcB836eeC52B765977fd20",
				LPNFTE:             "0xd00CD4363bCF7DC19E84fDB836ce28D24F00716c",
				VeNFTE:             "0xc526C83849Fb4424e4563A3b609a4eBf916cf6d0",
				FeeDistributor:     "0x99032fD0727dEd2a579dcB447e85359ddE9223B6",
				LightIconURL:       "/icons/base-icon-dark.svg",
				DarkIconURL:        "/icons/base-icon-light.svg",
				CoingeckoNetworkID: "base",
			},
			Enabled: true,
			Default: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Polygon.ID,
				LzID:               109,
				Name:               definition.Polygon.Name,
				Address:            "0x492Fa53b88614923937B7197C87E0F7F8EEb7B20",
				LightIconURL:       "/icons/polygon-icon-dark.svg",
				DarkIconURL:        "/icons/polygon-icon-light.svg",
				CoingeckoNetworkID: "polygon-pos",
			},
			Enabled: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Mainnet.ID,
				LzID:               101,
				Name:               definition.Mainnet.Name,
				Address:            "0x8c223a82E07feCB49D602150d7C2B3A4c9630310",
				LightIconURL:       "/icons/eth-icon-dark.svg",
				DarkIconURL:        "/icons/eth-icon-light.svg",
				CoingeckoNetworkID: "ethereum",
			},
			Enabled: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Optimism.ID,
				LzID:               111,
				Name:               definition.Optimism.Name,
				Address:            "0x8637725aDa78db0674a679CeA2A5e0A0869EF4A1",
				LightIconURL:       "/icons/optimism-icon-dark.svg",
				DarkIconURL:        "/icons/optimism-icon-light.svg",
				CoingeckoNetworkID: "optimistic-ethereum",
			},
			Enabled: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Linea.ID,
				LzID:               183,
				Name:               definition.Linea.Name,
				Address:            "0x2140Ea50bc3B6Ac3971F9e9Ea93A1442665670e4",
				LightIconURL:       "/icons/linea-icon-dark.svg",
				DarkIconURL:        "/icons/linea-icon-light.svg",
				CoingeckoNetworkID: "linea",
			},
			Enabled: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Arbitrum.ID,
				LzID:               110,
				Name:               definition.Arbitrum.Name,
				RoutePrefix:        "arbitrum",
				Address:            "0x51B902f19a56F0c8E409a34a215AD2673EDF3284",
				LPNFTE:             "0x82496243c0a1a39c5c6250bf0115c134Ba76698c",
				VeNFTE:             "0xE57bd15448C3b2D1dBAD598775DD2F36F93EBf90",
				FeeDistributor:     "0x9138A2e628f92a42397B3B600E86047AE49aCa98",
				LightIconURL:       "/icons/arbitrum-icon-dark.svg",
				DarkIconURL:        "/icons/arbitrum-icon-light.svg",
				CoingeckoNetworkID: "arbitrum-one",
			},
			Enabled: true,
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.ArbitrumNova.ID,
				LzID:               175,
				Name:               definition.ArbitrumNova.Name,
				Address:            "0x90aec282ed4cdcaab0934519de08b56f1f2ab4d7",
				LightIconURL:       "/icons/arbitrum-nova-icon-dark.svg",
				DarkIconURL:        "/icons/arbitrum-nova-icon-light.svg",
				CoingeckoNetworkID: "arbitrum-nova",
			},
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.BSC.ID,
				LzID:               102,
				Name:               definition.BSC.Name,
				Address:            "0x1912A3504E59d1C1B060bf2d371DEB00b70E8796",
				LightIconURL:       "/icons/bsc-icon-dark.svg",
				DarkIconURL:        "/icons/bsc-icon-light.svg",
				CoingeckoNetworkID: "binance-smart-chain",
			},
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.PolygonZkEVM.ID,
				LzID:               158,
				Name:               definition.PolygonZkEVM.Name,
				Address:            "0xf1B8982eC774AE84e936Bd63f372280bd534E797",
				LightIconURL:       "/icons/polygon-zkevm-icon-dark.svg",
				DarkIconURL:        "/icons/polygon-zkevm-icon-light.svg",
				CoingeckoNetworkID: "zkevm",
			},
		},
		{
			Chain: entity.OFTChain{
				ID:                 definition.Mantle.ID,
				LzID:               181,
				Name:               definition.Mantle.Name,
				Address:            "0x3E173b825ADEeF9661920B91A8d50B075Ad51bA5",
				LightIconURL:       "/icons/mantle-icon-dark.svg",
				DarkIconURL:        "/icons/mantle-icon-light.svg",
				CoingeckoNetworkID: "mantle",
			},
		},
	}
}

// OFTChains returns the enabled OFT deployments, default first, with every
// address in checksum form.
func OFTChains() ([]entity.OFTChain, error) {
	return oftChainsOf(OFTEntries())
}

// DefaultOFTChain returns the deployment the bridge UI opens on.
func DefaultOFTChain() (entity.OFTChain, error) {
	chains, err := OFTChains()
	if err != nil {
		return entity.OFTChain{}, err
	}
	return chains[0], nil
}

func oftChainsOf(entries []OFTEntry) ([]entity.OFTChain, error) {
	defaultIdx := -1
	for i, e := range entries {
		if !e.Default {
			continue
		}
		if defaultIdx != -1 || !e.Enabled {
			return nil, fmt.Errorf("oft chains: %w", entity.ErrDefaultChain)
		}
		defaultIdx = i
	}
	if defaultIdx == -1 {
		return nil, fmt.Errorf("oft chains: %w", entity.ErrDefaultChain)
	}

	ordered := make([]entity.OFTChain, 0, len(entries))
	ordered = append(ordered, entries[defaultIdx].Chain)
	for i, e := range entries {
		if i != defaultIdx && e.Enabled {
			ordered = append(ordered, e.Chain)
		}
	}

	if err := entity.ValidateOFTChains(ordered); err != nil {
		return nil, err
	}

	for i := range ordered {
		normalized, err := normalizeOFT(ordered[i])
		if err != nil {
			return nil, err
		}
		ordered[i] = normalized
	}
	return ordered, nil
}

func normalizeOFT(chain entity.OFTChain) (entity.OFTChain, error) {
	fields := []*string{&chain.Address, &chain.LPNFTE, &chain.VeNFTE, &chain.UniProxy, &chain.FeeDistributor}
	for _, field := range fields {
		normalized, err := entity.NormalizeAddress(*field)
		if err != nil {
			return entity.OFTChain{}, fmt.Errorf("oft chain %d: %w", chain.ID, err)
		}
		*field = normalized
	}
	return chain, nil
}

// NFTBridges returns the NFT bridge contracts keyed by chain id.
func NFTBridges() (map[uint64]entity.NFTBridge, error) {
	raw := map[uint64]entity.NFTBridge{
		definition.Mainnet.ID: {
			Proxy: "0x90aEC282ed4CDcAab0934519DE08B56F1f2aB4d7",
		},
		definition.Optimism.ID: {
			Proxy:         "0x653b58c9D23De54E44dCBFbD94C6759CdDa7f93D",
			ERC721Factory: "0xc2106ca72996e49bBADcB836eeC52B765977fd20",
		},
	}

	bridges := make(map[uint64]entity.NFTBridge, len(raw))
	for chainID, b := range raw {
		if b.Proxy == "" {
			return nil, fmt.Errorf("nft bridge %d: %w: proxy", chainID, entity.ErrMissingField)
		}
		for _, field := range []*string{&b.Proxy, &b.ERC721Factory, &b.ERC1155Factory} {
			normalized, err := entity.NormalizeAddress(*field)
			if err != nil {
				return nil, fmt.Errorf("nft bridge %d: %w", chainID, err)
			}
			*field = normalized
		}
		bridges[chainID] = b
	}
	return bridges, nil
}

// FortuneChains returns the Fortune game deployments.
func FortuneChains() ([]entity.AppContracts, error) {
	return normalizeApps("fortune", []entity.AppContracts{
		{
			ChainID:         definition.Arbitrum.ID,
			Address:         "0xB11eD4D3b3D8Ace516Ceae0a8D4764BbF2B08c50",
			PriceOracle:     fortunePriceOracle,
			TransferManager: fortuneTransferManager,
		},
	})
}

// RaffleChains returns the Raffle deployments.
func RaffleChains() ([]entity.AppContracts, error) {
	return normalizeApps("raffle", []entity.AppContracts{
		{
			ChainID:         definition.Arbitrum.ID,
			Address:         "0x8827e1c62a6bc98fb3c19003729c357a311c6e5e",
			PriceOracle:     fortunePriceOracle,
			TransferManager: fortuneTransferManager,
		},
	})
}

func normalizeApps(app string, apps []entity.AppContracts) ([]entity.AppContracts, error) {
	out := make([]entity.AppContracts, 0, len(apps))
	for _, a := range apps {
		for _, field := range []*string{&a.Address, &a.PriceOracle, &a.TransferManager} {
			if *field == "" {
				return nil, fmt.Errorf("%s %d: %w", app, a.ChainID, entity.ErrMissingField)
			}
			normalized, err := entity.NormalizeAddress(*field)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", app, a.ChainID, err)
			}
			*field = normalized
		}
		out = append(out, a)
	}
	return out, nil
}
