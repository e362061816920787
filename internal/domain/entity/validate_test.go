package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChain(id uint64, prefix string) MarketplaceChain {
	return MarketplaceChain{
		BaseChain:        BaseChain{ID: id, Name: prefix},
		LightIconURL:     "/icons/" + prefix + "-icon-dark.svg",
		DarkIconURL:      "/icons/" + prefix + "-icon-light.svg",
		ReservoirBaseURL: "https://api-" + prefix + ".reservoir.tools",
		RoutePrefix:      prefix,
	}
}

func TestValidateChains(t *testing.T) {
	emptyURL := validChain(2, "b")
	emptyURL.ReservoirBaseURL = ""
	emptyPrefix := validChain(2, "b")
	emptyPrefix.RoutePrefix = " "
	noID := validChain(0, "b")

	tests := []struct {
		name    string
		chains  []MarketplaceChain
		wantErr error
	}{
		{"valid", []MarketplaceChain{validChain(1, "a"), validChain(2, "b")}, nil},
		{"empty table", nil, nil},
		{"duplicate prefix", []MarketplaceChain{validChain(1, "a"), validChain(2, "a")}, ErrDuplicateRoutePrefix},
		{"duplicate id", []MarketplaceChain{validChain(1, "a"), validChain(1, "b")}, ErrDuplicateChainID},
		{"missing base url", []MarketplaceChain{validChain(1, "a"), emptyURL}, ErrMissingField},
		{"blank prefix", []MarketplaceChain{emptyPrefix}, ErrMissingField},
		{"missing id", []MarketplaceChain{noID}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChains(tt.chains)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"0xc2106ca72996e49bBADcB836eeC52B765977fd20",
		"0x90aec282ed4cdcaab0934519de08b56f1f2ab4d7",
	}
	for _, addr := range valid {
		assert.NoError(t, ValidateAddress(addr), addr)
	}

	invalid := []string{
		"",
		"c2106ca72996e49bBADcB836eeC52B765977fd20",
		"0xc2106ca72996e49bBADcB836eeC52B765977fd",
		"0xZZ106ca72996e49bBADcB836eeC52B765977fd20",
	}
	for _, addr := range invalid {
		assert.ErrorIs(t, ValidateAddress(addr), ErrInvalidAddress, addr)
	}
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress("0x90aec282ed4cdcaab0934519de08b56f1f2ab4d7")
	require.NoError(t, err)
	assert.Equal(t, "0x90aEC282ed4CDcAab0934519DE08B56F1f2aB4d7", got)

	got, err = NormalizeAddress("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NormalizeAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestValidateOFTChains(t *testing.T) {
	ok := OFTChain{ID: 8453, Name: "Base", Address: "0xc2106ca72996e49bBADcB836eeC52B765977fd20"}
	badSatellite := ok
	badSatellite.VeNFTE = "0xnothex"
	noAddr := ok
	noAddr.Address = ""

	assert.NoError(t, ValidateOFTChains([]OFTChain{ok}))
	assert.ErrorIs(t, ValidateOFTChains([]OFTChain{ok, ok}), ErrDuplicateChainID)
	assert.ErrorIs(t, ValidateOFTChains([]OFTChain{badSatellite}), ErrInvalidAddress)
	assert.ErrorIs(t, ValidateOFTChains([]OFTChain{noAddr}), ErrMissingField)
}
