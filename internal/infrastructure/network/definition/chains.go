package definition

import (
	"sort"

	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
)

var ether = entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18}

// Predefined base chain definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Mainnet = entity.BaseChain{
		ID:             1,
		Name:           "Ethereum",
		Network:        "homestead",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://ethereum-rpc.publicnode.com", "https://rpc.ankr.com/eth", "https://ethereum.publicnode.com"},
		BlockExplorer:  entity.BlockExplorer{Name: "Etherscan", URL: "https://etherscan.io"},
	}
	Optimism = entity.BaseChain{
		ID:             10,
		Name:           "OP Mainnet",
		Network:        "optimism",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://mainnet.optimism.io", "https://optimism.publicnode.com", "https://rpc.ankr.com/optimism"},
		BlockExplorer:  entity.BlockExplorer{Name: "Optimism Explorer", URL: "https://optimistic.etherscan.io"},
	}
	BSC = entity.BaseChain{
		ID:             56,
		Name:           "BNB Smart Chain",
		Network:        "bsc",
		NativeCurrency: entity.NativeCurrency{Name: "BNB", Symbol: "BNB", Decimals: 18},
		RPCURLs:        []string{"https://1rpc.io/bnb", "https://bsc-dataseed2.binance.org/", "https://bsc.publicnode.com"},
		BlockExplorer:  entity.BlockExplorer{Name: "BscScan", URL: "https://bscscan.com"},
	}
	Polygon = entity.BaseChain{
		ID:             137,
		Name:           "Polygon",
		Network:        "matic",
		NativeCurrency: entity.NativeCurrency{Name: "MATIC", Symbol: "MATIC", Decimals: 18},
		RPCURLs:        []string{"https://polygon-rpc.com/", "https://rpc.ankr.com/polygon", "https://polygon.publicnode.com"},
		BlockExplorer:  entity.BlockExplorer{Name: "PolygonScan", URL: "https://polygonscan.com"},
	}
	ZkSync = entity.BaseChain{ // zkSync Era
		ID:             324,
		Name:           "zkSync Era",
		Network:        "zksync-era",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://mainnet.era.zksync.io"},
		BlockExplorer:  entity.BlockExplorer{Name: "zkExplorer", URL: "https://explorer.zksync.io"},
	}
	PolygonZkEVM = entity.BaseChain{
		ID:             1101,
		Name:           "Polygon zkEVM",
		Network:        "polygon-zkevm",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://zkevm-rpc.com", "https://rpc.ankr.com/polygon_zkevm"},
		BlockExplorer:  entity.BlockExplorer{Name: "PolygonScan", URL: "https://zkevm.polygonscan.com"},
	}
	Mantle = entity.BaseChain{
		ID:             5000,
		Name:           "Mantle",
		Network:        "mantle",
		NativeCurrency: entity.NativeCurrency{Name: "MNT", Symbol: "MNT", Decimals: 18},
		RPCURLs:        []string{"https://rpc.mantle.xyz"},
		BlockExplorer:  entity.BlockExplorer{Name: "Mantle Explorer", URL: "https://explorer.mantle.xyz"},
	}
	Base = entity.BaseChain{
		ID:             8453,
		Name:           "Base",
		Network:        "base",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://mainnet.base.org", "https://base.publicnode.com", "https://base.llamarpc.com"},
		BlockExplorer:  entity.BlockExplorer{Name: "Basescan", URL: "https://basescan.org"},
	}
	Arbitrum = entity.BaseChain{
		ID:             42161,
		Name:           "Arbitrum One",
		Network:        "arbitrum",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://arb1.arbitrum.io/rpc", "https://arbitrum.llamarpc.com", "https://arbitrum.publicnode.com"},
		BlockExplorer:  entity.BlockExplorer{Name: "Arbiscan", URL: "https://arbiscan.io"},
	}
	ArbitrumNova = entity.BaseChain{
		ID:             42170,
		Name:           "Arbitrum Nova",
		Network:        "arbitrum-nova",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://nova.arbitrum.io/rpc"},
		BlockExplorer:  entity.BlockExplorer{Name: "Arbiscan", URL: "https://nova.arbiscan.io"},
	}
	Avalanche = entity.BaseChain{
		ID:             43114,
		Name:           "Avalanche",
		Network:        "avalanche",
		NativeCurrency: entity.NativeCurrency{Name: "Avalanche", Symbol: "AVAX", Decimals: 18},
		RPCURLs:        []string{"https://api.avax.network/ext/bc/C/rpc", "https://avalanche.public-rpc.com", "https://rpc.ankr.com/avalanche"},
		BlockExplorer:  entity.BlockExplorer{Name: "SnowTrace", URL: "https://snowtrace.io"},
	}
	Linea = entity.BaseChain{
		ID:             59144,
		Name:           "Linea Mainnet",
		Network:        "linea-mainnet",
		NativeCurrency: entity.NativeCurrency{Name: "Linea Ether", Symbol: "ETH", Decimals: 18},
		RPCURLs:        []string{"https://rpc.linea.build", "https://linea.blockpi.network/v1/rpc/public"},
		BlockExplorer:  entity.BlockExplorer{Name: "Etherscan", URL: "https://lineascan.build"},
	}
	Scroll = entity.BaseChain{
		ID:             534352,
		Name:           "Scroll",
		Network:        "scroll",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://rpc.scroll.io", "https://scroll.blockpi.network/v1/rpc/public"},
		BlockExplorer:  entity.BlockExplorer{Name: "Scrollscan", URL: "https://scrollscan.com"},
	}
	Zora = entity.BaseChain{
		ID:             7777777,
		Name:           "Zora",
		Network:        "zora",
		NativeCurrency: ether,
		RPCURLs:        []string{"https://rpc.zora.energy", "https://zora.drpc.org", "https://1rpc.io/zora"},
		BlockExplorer:  entity.BlockExplorer{Name: "Explorer", URL: "https://explorer.zora.energy"},
	}
)

// allKnownDefinitions is a helper to quickly access all hardcoded definitions.
var allKnownDefinitions = map[uint64]entity.BaseChain{
	Mainnet.ID:      Mainnet,
	Optimism.ID:     Optimism,
	BSC.ID:          BSC,
	Polygon.ID:      Polygon,
	ZkSync.ID:       ZkSync,
	PolygonZkEVM.ID: PolygonZkEVM,
	Mantle.ID:       Mantle,
	Base.ID:         Base,
	Arbitrum.ID:     Arbitrum,
	ArbitrumNova.ID: ArbitrumNova,
	Avalanche.ID:    Avalanche,
	Linea.ID:        Linea,
	Scroll.ID:       Scroll,
	Zora.ID:         Zora,
}

// All returns copies of every known base chain ordered by chain id.
func All() []entity.BaseChain {
	defs := make([]entity.BaseChain, 0, len(allKnownDefinitions))
	for _, def := range allKnownDefinitions {
		defs = append(defs, def.Clone())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// ByID returns a copy of the base chain with the given id.
func ByID(chainID uint64) (entity.BaseChain, bool) {
	def, ok := allKnownDefinitions[chainID]
	if !ok {
		return entity.BaseChain{}, false
	}
	return def.Clone(), true
}
