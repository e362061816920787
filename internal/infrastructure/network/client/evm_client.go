package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/NFTEarth/exchange-2024/internal/app/port"
)

// EVMClient implements port.ChainIDClient on top of go-ethereum's ethclient.
type EVMClient struct {
	ethClient      *ethclient.Client
	rpcCallTimeout time.Duration
}

// ChainID asks the node for its chain id.
func (c *EVMClient) ChainID(ctx context.Context) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	id, err := c.ethClient.ChainID(callCtx)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId failed: %w", err)
	}
	if !id.IsUint64() {
		return 0, fmt.Errorf("eth_chainId returned out of range value %s", id)
	}
	return id.Uint64(), nil
}

// Close releases the underlying RPC connection.
func (c *EVMClient) Close() {
	c.ethClient.Close()
}

type evmDialer struct {
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewEVMDialer returns a port.ChainIDDialer that opens ethclient connections.
func NewEVMDialer(connectionTimeout, rpcCallTimeout time.Duration) port.ChainIDDialer {
	return &evmDialer{connectionTimeout: connectionTimeout, rpcCallTimeout: rpcCallTimeout}
}

func (d *evmDialer) Dial(ctx context.Context, rpcURL string) (port.ChainIDClient, error) {
	dialCtx, cancel := context.WithTimeout(ctx, d.connectionTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	return &EVMClient{ethClient: client, rpcCallTimeout: d.rpcCallTimeout}, nil
}
