package entity

// NativeCurrency describes the gas token of a chain.
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// BlockExplorer is the default explorer of a chain.
type BlockExplorer struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// BaseChain is the upstream chain descriptor the marketplace table extends.
// This structure is defined at the domain level to be used across application and infrastructure layers.
type BaseChain struct {
	ID             uint64         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Network        string         `json:"network" yaml:"network"` // short slug, e.g. "optimism", "arbitrum"
	NativeCurrency NativeCurrency `json:"nativeCurrency" yaml:"nativeCurrency"`
	RPCURLs        []string       `json:"rpcUrls" yaml:"rpcUrls"` // primary first
	BlockExplorer  BlockExplorer  `json:"blockExplorer" yaml:"blockExplorer"`
	Testnet        bool           `json:"testnet,omitempty" yaml:"testnet,omitempty"`
}

// Clone returns a copy of the chain that shares no slices with the receiver.
func (c BaseChain) Clone() BaseChain {
	out := c
	if c.RPCURLs != nil {
		out.RPCURLs = append([]string(nil), c.RPCURLs...)
	}
	return out
}
