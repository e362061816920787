package alchemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkName(t *testing.T) {
	tests := []struct {
		chainID int64
		want    string
		ok      bool
	}{
		{1, "eth-mainnet", true},
		{10, "opt-mainnet", true},
		{137, "polygon-mainnet", true},
		{1101, "polygonzkevm-mainnet", true},
		{42161, "arb-mainnet", true},
		{42170, "", false},
		{999999, "", false},
		{0, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := NetworkName(tt.chainID)
		assert.Equal(t, tt.ok, ok, tt.chainID)
		assert.Equal(t, tt.want, got, tt.chainID)
	}
}

func TestNetworkName_Deterministic(t *testing.T) {
	first, _ := NetworkName(137)
	second, _ := NetworkName(137)
	assert.Equal(t, first, second)
}

func TestRPCURL(t *testing.T) {
	url, ok := RPCURL(42161, "key")
	assert.True(t, ok)
	assert.Equal(t, "https://arb-mainnet.g.alchemy.com/v2/key", url)

	_, ok = RPCURL(42161, "")
	assert.False(t, ok)

	_, ok = RPCURL(59144, "key")
	assert.False(t, ok)
}
