package restapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions configures the cross-cutting routes.
type RouterOptions struct {
	CORSAllowedOrigins []string
	MetricsHandler     http.Handler // nil disables /metrics
	SwaggerEnabled     bool
	SwaggerSpecPath    string
}

// SetupRouter wires every handler onto a gin engine.
func SetupRouter(chainHandler *ChainHandler, proxyHandler *ProxyHandler, opts RouterOptions) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(corsConfig(opts.CORSAllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/chains", chainHandler.ListChainsHandler)
		v1.GET("/chains/default", chainHandler.DefaultChainHandler)
		v1.GET("/chains/:routePrefix", chainHandler.GetChainHandler)
		v1.GET("/chains/:routePrefix/currencies", chainHandler.CurrenciesHandler)
		v1.GET("/chains/:routePrefix/price", chainHandler.PriceHandler)
		v1.GET("/chain-ids/:chainId", chainHandler.ChainByIDHandler)
		v1.GET("/oft-chains", chainHandler.OFTChainsHandler)
		v1.GET("/nft-bridges/:chainId", chainHandler.NFTBridgeHandler)
		v1.GET("/fortune-chains", chainHandler.FortuneChainsHandler)
		v1.GET("/raffle-chains", chainHandler.RaffleChainsHandler)
		v1.GET("/alchemy/:chainId", chainHandler.AlchemyNetworkHandler)
	}

	router.Any("/api/reservoir/:routePrefix/*path", proxyHandler.ForwardHandler)

	if opts.SwaggerEnabled {
		router.StaticFile("/docs/swagger.yaml", opts.SwaggerSpecPath)
		swaggerURL := ginSwagger.URL("/docs/swagger.yaml")
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
