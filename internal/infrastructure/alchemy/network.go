package alchemy

import "fmt"

var networks = map[int64]string{ //nolint:gochecknoglobals // closed mapping
	1:     "eth-mainnet",
	10:    "opt-mainnet",
	137:   "polygon-mainnet",
	1101:  "polygonzkevm-mainnet",
	42161: "arb-mainnet",
}

// NetworkName returns the Alchemy network slug for a chain id.
// Unsupported ids, zero and negative values included, report false.
func NetworkName(chainID int64) (string, bool) {
	name, ok := networks[chainID]
	return name, ok
}

// RPCURL builds the Alchemy JSON-RPC endpoint for a chain.
func RPCURL(chainID int64, apiKey string) (string, bool) {
	name, ok := NetworkName(chainID)
	if !ok || apiKey == "" {
		return "", false
	}
	return fmt.Sprintf("https://%s.g.alchemy.com/v2/%s", name, apiKey), true
}
