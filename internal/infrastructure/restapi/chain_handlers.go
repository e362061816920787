package restapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
	"github.com/NFTEarth/exchange-2024/internal/domain/entity"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/alchemy"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/httpclient"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PriceResponse is the native currency quote of a chain.
type PriceResponse struct {
	RoutePrefix string  `json:"routePrefix"`
	Symbol      string  `json:"symbol"`
	CoingeckoID string  `json:"coingeckoId"`
	USD         float64 `json:"usd"`
}

// AlchemyNetworkResponse names the Alchemy network of a chain.
type AlchemyNetworkResponse struct {
	ChainID int64  `json:"chainId"`
	Network string `json:"network"`
}

// ChainHandler serves the read-only chain tables.
type ChainHandler struct {
	chains port.ChainProvider
	prices port.PriceClient
	logger port.Logger
}

// NewChainHandler creates a new ChainHandler.
func NewChainHandler(chains port.ChainProvider, prices port.PriceClient, logger port.Logger) *ChainHandler {
	return &ChainHandler{chains: chains, prices: prices, logger: logger}
}

// ListChainsHandler returns every enabled marketplace chain, default first.
func (h *ChainHandler) ListChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.chains.Chains())
}

// DefaultChainHandler returns the chain the marketplace opens on.
func (h *ChainHandler) DefaultChainHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.chains.DefaultChain())
}

// GetChainHandler returns one chain by route prefix.
func (h *ChainHandler) GetChainHandler(c *gin.Context) {
	chain, ok := h.chainFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chain)
}

// CurrenciesHandler returns the listing currencies of a chain.
func (h *ChainHandler) CurrenciesHandler(c *gin.Context) {
	chain, ok := h.chainFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chain.Currencies())
}

// PriceHandler quotes the chain's native currency in USD.
func (h *ChainHandler) PriceHandler(c *gin.Context) {
	chain, ok := h.chainFromPath(c)
	if !ok {
		return
	}
	native := chain.NativeListingCurrency()
	if native.CoinGeckoID == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "chain has no price source"})
		return
	}

	price, err := h.prices.GetPriceUSD(c.Request.Context(), native.CoinGeckoID)
	if err != nil {
		h.logger.Error("Failed to fetch native price", "route_prefix", chain.RoutePrefix, "coingecko_id", native.CoinGeckoID, "error", err)
		if errors.Is(err, httpclient.ErrPriceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "price source unavailable"})
		return
	}

	c.JSON(http.StatusOK, PriceResponse{
		RoutePrefix: chain.RoutePrefix,
		Symbol:      native.Symbol,
		CoingeckoID: native.CoinGeckoID,
		USD:         price,
	})
}

// ChainByIDHandler returns one chain by numeric id.
func (h *ChainHandler) ChainByIDHandler(c *gin.Context) {
	chainID, ok := parseChainID(c)
	if !ok {
		return
	}
	chain, found := h.chains.ChainByID(chainID)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity.ErrChainNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, chain)
}

// OFTChainsHandler returns the OFT token deployments, default first.
func (h *ChainHandler) OFTChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.chains.OFTChains())
}

// NFTBridgeHandler returns the NFT bridge contracts of a chain.
func (h *ChainHandler) NFTBridgeHandler(c *gin.Context) {
	chainID, ok := parseChainID(c)
	if !ok {
		return
	}
	b, found := h.chains.NFTBridge(chainID)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "nft bridge not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// FortuneChainsHandler returns the Fortune deployments.
func (h *ChainHandler) FortuneChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.chains.FortuneChains())
}

// RaffleChainsHandler returns the Raffle deployments.
func (h *ChainHandler) RaffleChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.chains.RaffleChains())
}

// AlchemyNetworkHandler resolves the Alchemy network slug of a chain id.
func (h *ChainHandler) AlchemyNetworkHandler(c *gin.Context) {
	chainID, err := strconv.ParseInt(c.Param("chainId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chain id"})
		return
	}
	network, ok := alchemy.NetworkName(chainID)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unsupported chain"})
		return
	}
	c.JSON(http.StatusOK, AlchemyNetworkResponse{ChainID: chainID, Network: network})
}

func (h *ChainHandler) chainFromPath(c *gin.Context) (entity.MarketplaceChain, bool) {
	chain, ok := h.chains.ChainByRoutePrefix(c.Param("routePrefix"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity.ErrChainNotFound.Error()})
		return entity.MarketplaceChain{}, false
	}
	return chain, true
}

func parseChainID(c *gin.Context) (uint64, bool) {
	chainID, err := strconv.ParseUint(c.Param("chainId"), 10, 64)
	if err != nil || chainID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chain id"})
		return 0, false
	}
	return chainID, true
}
