package provider

import (
	"fmt"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
)

// Tables is the raw material a chain provider is built from.
type Tables struct {
	Chains        []entity.MarketplaceChain
	OFTChains     []entity.OFTChain
	NFTBridges    map[uint64]entity.NFTBridge
	FortuneChains []entity.AppContracts
	RaffleChains  []entity.AppContracts
}

type chainProviderImpl struct {
	chains       []entity.MarketplaceChain
	byPrefix     map[string]int
	byID         map[uint64]int
	oftChains    []entity.OFTChain
	oftByID      map[uint64]int
	nftBridges   map[uint64]entity.NFTBridge
	fortune      []entity.AppContracts
	raffle       []entity.AppContracts
	defaultChain entity.MarketplaceChain
}

// NewChainProvider indexes the tables and returns a read-only provider.
// The first chain is the default one.
func NewChainProvider(tables Tables, logger port.Logger) (port.ChainProvider, error) {
	if len(tables.Chains) == 0 {
		return nil, fmt.Errorf("%w: no marketplace chains", entity.ErrDefaultChain)
	}
	if err := entity.ValidateChains(tables.Chains); err != nil {
		return nil, err
	}

	p := &chainProviderImpl{
		chains:     make([]entity.MarketplaceChain, 0, len(tables.Chains)),
		byPrefix:   make(map[string]int, len(tables.Chains)),
		byID:       make(map[uint64]int, len(tables.Chains)),
		oftChains:  append([]entity.OFTChain(nil), tables.OFTChains...),
		oftByID:    make(map[uint64]int, len(tables.OFTChains)),
		nftBridges: make(map[uint64]entity.NFTBridge, len(tables.NFTBridges)),
		fortune:    append([]entity.AppContracts(nil), tables.FortuneChains...),
		raffle:     append([]entity.AppContracts(nil), tables.RaffleChains...),
	}
	for i, chain := range tables.Chains {
		p.chains = append(p.chains, chain.Clone())
		p.byPrefix[chain.RoutePrefix] = i
		p.byID[chain.ID] = i
	}
	p.defaultChain = p.chains[0]
	for i, chain := range p.oftChains {
		p.oftByID[chain.ID] = i
	}
	for id, b := range tables.NFTBridges {
		p.nftBridges[id] = b
	}

	logger.Info("Chain provider initialized",
		"chains", len(p.chains),
		"default", p.defaultChain.RoutePrefix,
		"oft_chains", len(p.oftChains),
		"nft_bridges", len(p.nftBridges),
	)
	return p, nil
}

func (p *chainProviderImpl) Chains() []entity.MarketplaceChain {
	out := make([]entity.MarketplaceChain, 0, len(p.chains))
	for _, chain := range p.chains {
		out = append(out, chain.Clone())
	}
	return out
}

func (p *chainProviderImpl) DefaultChain() entity.MarketplaceChain {
	return p.defaultChain.Clone()
}

func (p *chainProviderImpl) ChainByRoutePrefix(routePrefix string) (entity.MarketplaceChain, bool) {
	idx, ok := p.byPrefix[routePrefix]
	if !ok {
		return entity.MarketplaceChain{}, false
	}
	return p.chains[idx].Clone(), true
}

func (p *chainProviderImpl) ChainByID(chainID uint64) (entity.MarketplaceChain, bool) {
	idx, ok := p.byID[chainID]
	if !ok {
		return entity.MarketplaceChain{}, false
	}
	return p.chains[idx].Clone(), true
}

func (p *chainProviderImpl) OFTChains() []entity.OFTChain {
	return append([]entity.OFTChain(nil), p.oftChains...)
}

func (p *chainProviderImpl) OFTChainByID(chainID uint64) (entity.OFTChain, bool) {
	idx, ok := p.oftByID[chainID]
	if !ok {
		return entity.OFTChain{}, false
	}
	return p.oftChains[idx], true
}

func (p *chainProviderImpl) NFTBridge(chainID uint64) (entity.NFTBridge, bool) {
	b, ok := p.nftBridges[chainID]
	return b, ok
}

func (p *chainProviderImpl) FortuneChains() []entity.AppContracts {
	return append([]entity.AppContracts(nil), p.fortune...)
}

func (p *chainProviderImpl) RaffleChains() []entity.AppContracts {
	return append([]entity.AppContracts(nil), p.raffle...)
}
