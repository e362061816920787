package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/envloader"
)

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Info(msg string, _ ...any) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Debug(string, ...any)      {}
func (l *recordingLogger) Warn(string, ...any)       {}
func (l *recordingLogger) Error(string, ...any)      {}

func newTestProvider(t *testing.T) *chainProviderImpl {
	t.Helper()
	tables, err := LoadTables(envloader.FromMap(map[string]string{envloader.ReservoirAPIKey: "k"}))
	require.NoError(t, err)

	p, err := NewChainProvider(tables, &recordingLogger{})
	require.NoError(t, err)
	return p.(*chainProviderImpl)
}

func TestNewChainProvider_Lookups(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, "optimism", p.DefaultChain().RoutePrefix)
	assert.Equal(t, p.DefaultChain(), p.Chains()[0])

	eth, ok := p.ChainByRoutePrefix("ethereum")
	require.True(t, ok)
	assert.Equal(t, uint64(1), eth.ID)
	assert.Equal(t, "k", eth.APIKey)

	arb, ok := p.ChainByID(42161)
	require.True(t, ok)
	assert.Equal(t, "arbitrum", arb.RoutePrefix)

	_, ok = p.ChainByRoutePrefix("zora")
	assert.False(t, ok, "disabled chains are not served")
	_, ok = p.ChainByID(999999)
	assert.False(t, ok)
}

func TestNewChainProvider_BridgeTables(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, uint64(8453), p.OFTChains()[0].ID)
	oft, ok := p.OFTChainByID(42161)
	require.True(t, ok)
	assert.Equal(t, uint32(110), oft.LzID)
	_, ok = p.OFTChainByID(5000)
	assert.False(t, ok)

	_, ok = p.NFTBridge(10)
	assert.True(t, ok)
	_, ok = p.NFTBridge(137)
	assert.False(t, ok)

	assert.Len(t, p.FortuneChains(), 1)
	assert.Len(t, p.RaffleChains(), 1)
}

func TestNewChainProvider_ReturnsCopies(t *testing.T) {
	p := newTestProvider(t)

	chains := p.Chains()
	chains[0].RoutePrefix = "mutated"
	chains[0].RPCURLs[0] = "https://mutated.example"

	def := p.DefaultChain()
	assert.Equal(t, "optimism", def.RoutePrefix)
	assert.NotEqual(t, "https://mutated.example", def.RPCURLs[0])

	ofts := p.OFTChains()
	ofts[0].Name = "mutated"
	assert.NotEqual(t, "mutated", p.OFTChains()[0].Name)
}

func TestNewChainProvider_Errors(t *testing.T) {
	_, err := NewChainProvider(Tables{}, &recordingLogger{})
	assert.ErrorIs(t, err, entity.ErrDefaultChain)

	tables, err := LoadTables(envloader.FromMap(nil))
	require.NoError(t, err)
	tables.Chains = append(tables.Chains, tables.Chains[0])
	_, err = NewChainProvider(tables, &recordingLogger{})
	assert.ErrorIs(t, err, entity.ErrDuplicateRoutePrefix)
}

func TestNewChainProvider_LogsSummary(t *testing.T) {
	tables, err := LoadTables(envloader.FromMap(nil))
	require.NoError(t, err)

	logger := &recordingLogger{}
	_, err = NewChainProvider(tables, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chain provider initialized"}, logger.infos)
}
