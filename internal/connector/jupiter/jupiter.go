package jupiter

import (
	"context"
	"sync"

	solana "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	chain "swapgate/internal/chain/solana"
	"swapgate/internal/connector"
)

// Chain is the chain-client collaborator the connector depends on. The real
// implementation lives in internal/chain/solana; tests swap in a fake.
type Chain interface {
	Ready() bool
	Network() string
	NativeTokenSymbol() string
	GasPrice() float64
	TokenList() []chain.TokenInfo
	TokenBySymbol(symbol string) (chain.TokenInfo, bool)
	Keypair(address string) (solana.PrivateKey, error)
	SendRawTransaction(ctx context.Context, raw []byte, opts chain.SendOptions) (string, error)
	ConfirmTransaction(ctx context.Context, signature string) error
}

// Connector wires the swap pipeline for one chain+network pair. The token
// cache is filled once by Init and read-only afterward; everything else is
// request-scoped, so concurrent calls share no mutable state beyond the
// in-flight trade map.
type Connector struct {
	chain       Chain
	client      *Client
	slippageBps int
	log         zerolog.Logger

	mu        sync.RWMutex
	ready     bool
	byAddress map[string]chain.TokenInfo

	inflightMu sync.Mutex
	inflight   map[string]*inflightTrade
}

func New(chainClient Chain, client *Client, slippageBps int, log zerolog.Logger) *Connector {
	if slippageBps <= 0 {
		slippageBps = DefaultSlippageBps
	}
	return &Connector{
		chain:       chainClient,
		client:      client,
		slippageBps: slippageBps,
		log:         log,
		inflight:    make(map[string]*inflightTrade),
	}
}

// Init seeds the connector's address-indexed token cache from the chain's
// token list. The chain client must have finished its own initialization.
func (c *Connector) Init() error {
	if !c.chain.Ready() {
		return connector.NewServiceUninitialized(c.chain.Network())
	}

	byAddress := make(map[string]chain.TokenInfo)
	for _, token := range c.chain.TokenList() {
		byAddress[token.Address] = token
	}

	c.mu.Lock()
	c.byAddress = byAddress
	c.ready = true
	c.mu.Unlock()

	c.log.Info().Int("tokens", len(byAddress)).Msg("jupiter connector ready")
	return nil
}

func (c *Connector) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// ResolveToken maps a trading-pair symbol to its token descriptor. The symbol
// must resolve on the chain's table and the resulting address must be in the
// connector's own cache: a token the chain knows is not necessarily one the
// aggregator can route.
func (c *Connector) ResolveToken(symbol string) (chain.TokenInfo, error) {
	onChain, ok := c.chain.TokenBySymbol(symbol)
	if !ok {
		return chain.TokenInfo{}, connector.NewTokenNotSupported(symbol)
	}

	c.mu.RLock()
	token, ok := c.byAddress[onChain.Address]
	c.mu.RUnlock()
	if !ok {
		return chain.TokenInfo{}, connector.NewTokenNotSupported(symbol)
	}
	return token, nil
}
