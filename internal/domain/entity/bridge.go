package entity

// OFTChain describes a deployment of the cross-chain (LayerZero OFT) token and its satellite contracts.
type OFTChain struct {
	ID                 uint64 `json:"id"`
	LzID               uint32 `json:"lzId"` // LayerZero endpoint id, not the EVM chain id
	Name               string `json:"name"`
	RoutePrefix        string `json:"routePrefix,omitempty"`
	Address            string `json:"address"`
	LPNFTE             string `json:"LPNFTE,omitempty"`
	VeNFTE             string `json:"veNFTE,omitempty"`
	UniProxy           string `json:"uniProxy,omitempty"`
	FeeDistributor     string `json:"feeDistributor,omitempty"`
	LightIconURL       string `json:"lightIconUrl"`
	DarkIconURL        string `json:"darkIconUrl"`
	CoingeckoNetworkID string `json:"coingeckoNetworkId"`
}

// NFTBridge holds the NFT bridge proxy and factory contracts of one chain.
type NFTBridge struct {
	Proxy          string `json:"proxy"`
	ERC721Factory  string `json:"ERC721Factory,omitempty"`
	ERC1155Factory string `json:"ERC1155Factory,omitempty"`
}

// AppContracts is the contract triple of an auxiliary on-chain app (Fortune, Raffle).
type AppContracts struct {
	ChainID         uint64 `json:"id"`
	Address         string `json:"address"`
	PriceOracle     string `json:"priceOracle"`
	TransferManager string `json:"transferManager"`
}
