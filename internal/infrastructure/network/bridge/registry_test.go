package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/definition"
)

func TestOFTChains_EnabledInOrder(t *testing.T) {
	chains, err := OFTChains()
	require.NoError(t, err)

	ids := make([]uint64, 0, len(chains))
	for _, c := range chains {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint64{8453, 137, 1, 10, 59144, 42161}, ids)
}

func TestOFTEntries_NamesFromBaseChains(t *testing.T) {
	for _, e := range OFTEntries() {
		base, ok := definition.ByID(e.Chain.ID)
		require.True(t, ok, "no base chain for %d", e.Chain.ID)
		assert.Equal(t, base.Name, e.Chain.Name, "oft %d", e.Chain.ID)
	}
}

func TestOFTEntries_RoutePrefixOnlyOnMarketplaceLinks(t *testing.T) {
	prefixes := make(map[uint64]string)
	for _, e := range OFTEntries() {
		if e.Chain.RoutePrefix != "" {
			prefixes[e.Chain.ID] = e.Chain.RoutePrefix
		}
	}
	assert.Equal(t, map[uint64]string{8453: "base", 42161: "arbitrum"}, prefixes)
}

func TestDefaultOFTChain(t *testing.T) {
	def, err := DefaultOFTChain()
	require.NoError(t, err)
	assert.Equal(t, uint64(8453), def.ID)
	assert.Equal(t, uint32(184), def.LzID)
	assert.Equal(t, "base", def.CoingeckoNetworkID)
}

func TestOFTChains_AddressesChecksummed(t *testing.T) {
	chains, err := OFTChains()
	require.NoError(t, err)

	raw := make(map[uint64]entity.OFTChain)
	for _, e := range OFTEntries() {
		raw[e.Chain.ID] = e.Chain
	}

	for _, c := range chains {
		assert.True(t, strings.EqualFold(raw[c.ID].Address, c.Address), c.Name)
		again, err := entity.NormalizeAddress(c.Address)
		require.NoError(t, err)
		assert.Equal(t, again, c.Address, "already checksummed")
	}
}

func TestOFTChains_LzIDsDifferFromChainIDs(t *testing.T) {
	chains, err := OFTChains()
	require.NoError(t, err)

	lz := make(map[uint32]bool)
	for _, c := range chains {
		assert.False(t, lz[c.LzID], "duplicate lz id %d", c.LzID)
		lz[c.LzID] = true
		assert.NotZero(t, c.LzID)
	}
}

func TestOFTChainsOf_Errors(t *testing.T) {
	t.Run("no default", func(t *testing.T) {
		entries := OFTEntries()
		entries[0].Default = false
		_, err := oftChainsOf(entries)
		assert.ErrorIs(t, err, entity.ErrDefaultChain)
	})

	t.Run("bad address", func(t *testing.T) {
		entries := OFTEntries()
		entries[1].Chain.Address = "0x1234"
		_, err := oftChainsOf(entries)
		assert.ErrorIs(t, err, entity.ErrInvalidAddress)
	})

	t.Run("duplicate id", func(t *testing.T) {
		entries := OFTEntries()
		entries[2].Chain.ID = entries[1].Chain.ID
		_, err := oftChainsOf(entries)
		assert.ErrorIs(t, err, entity.ErrDuplicateChainID)
	})

	t.Run("disabled entries are still well formed", func(t *testing.T) {
		entries := OFTEntries()
		for i := range entries {
			entries[i].Enabled = true
		}
		chains, err := oftChainsOf(entries)
		require.NoError(t, err)
		assert.Len(t, chains, len(entries))
	})
}

func TestNFTBridges(t *testing.T) {
	bridges, err := NFTBridges()
	require.NoError(t, err)
	require.Len(t, bridges, 2)

	mainnet, ok := bridges[1]
	require.True(t, ok)
	assert.Equal(t, "0x90aEC282ed4CDcAab0934519DE08B56F1f2aB4d7", mainnet.Proxy)
	assert.Empty(t, mainnet.ERC721Factory)

	optimism, ok := bridges[10]
	require.True(t, ok)
	assert.NotEmpty(t, optimism.ERC721Factory)
	assert.Empty(t, optimism.ERC1155Factory)
}

func TestAppChains(t *testing.T) {
	fortune, err := FortuneChains()
	require.NoError(t, err)
	raffle, err := RaffleChains()
	require.NoError(t, err)

	require.Len(t, fortune, 1)
	require.Len(t, raffle, 1)
	assert.Equal(t, uint64(42161), fortune[0].ChainID)
	assert.Equal(t, uint64(42161), raffle[0].ChainID)
	assert.NotEqual(t, fortune[0].Address, raffle[0].Address)
	assert.Equal(t, fortune[0].PriceOracle, raffle[0].PriceOracle)
	assert.Equal(t, fortune[0].TransferManager, raffle[0].TransferManager)
	assert.True(t, strings.EqualFold("0x8827e1c62a6bc98fb3c19003729c357a311c6e5e", raffle[0].Address))
}
