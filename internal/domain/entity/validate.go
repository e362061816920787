package entity

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateAddress checks that addr is a 0x-prefixed 20 byte hex string.
func ValidateAddress(addr string) error {
	if !strings.HasPrefix(addr, "0x") || !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return nil
}

// NormalizeAddress validates addr and returns its EIP-55 checksum form.
// The empty string is returned unchanged so optional contracts stay absent.
func NormalizeAddress(addr string) (string, error) {
	if addr == "" {
		return "", nil
	}
	if err := ValidateAddress(addr); err != nil {
		return "", err
	}
	return common.HexToAddress(addr).Hex(), nil
}

// ValidateChains checks the invariants of the marketplace table: unique route
// prefixes, unique ids and the presence of every required field.
func ValidateChains(chains []MarketplaceChain) error {
	prefixes := make(map[string]struct{}, len(chains))
	ids := make(map[uint64]struct{}, len(chains))

	for i, chain := range chains {
		required := []struct {
			name  string
			value string
		}{
			{"name", chain.Name},
			{"routePrefix", chain.RoutePrefix},
			{"reservoirBaseUrl", chain.ReservoirBaseURL},
			{"lightIconUrl", chain.LightIconURL},
			{"darkIconUrl", chain.DarkIconURL},
		}
		for _, field := range required {
			if strings.TrimSpace(field.value) == "" {
				return fmt.Errorf("chain #%d (id %d): %w: %s", i, chain.ID, ErrMissingField, field.name)
			}
		}
		if chain.ID == 0 {
			return fmt.Errorf("chain #%d (%s): %w: id", i, chain.RoutePrefix, ErrMissingField)
		}

		if _, ok := prefixes[chain.RoutePrefix]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoutePrefix, chain.RoutePrefix)
		}
		prefixes[chain.RoutePrefix] = struct{}{}

		if _, ok := ids[chain.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateChainID, chain.ID)
		}
		ids[chain.ID] = struct{}{}
	}
	return nil
}

// ValidateOFTChains checks that ids are unique and every address is well formed.
func ValidateOFTChains(chains []OFTChain) error {
	ids := make(map[uint64]struct{}, len(chains))
	for _, chain := range chains {
		if chain.ID == 0 {
			return fmt.Errorf("oft chain %q: %w: id", chain.Name, ErrMissingField)
		}
		if _, ok := ids[chain.ID]; ok {
			return fmt.Errorf("oft chains: %w: %d", ErrDuplicateChainID, chain.ID)
		}
		ids[chain.ID] = struct{}{}

		if chain.Address == "" {
			return fmt.Errorf("oft chain %d: %w: address", chain.ID, ErrMissingField)
		}
		for _, addr := range []string{chain.Address, chain.LPNFTE, chain.VeNFTE, chain.UniProxy, chain.FeeDistributor} {
			if addr == "" {
				continue
			}
			if err := ValidateAddress(addr); err != nil {
				return fmt.Errorf("oft chain %d: %w", chain.ID, err)
			}
		}
	}
	return nil
}
