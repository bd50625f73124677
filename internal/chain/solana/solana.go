// Package solana wraps the Solana RPC client behind the narrow surface the
// swap pipeline depends on: token lookup, wallet keys, fee info, and raw
// transaction submit/confirm primitives.
package solana

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

const lamportsPerSol = 1_000_000_000

// SendOptions controls how a raw transaction is submitted.
type SendOptions struct {
	SkipPreflight bool
	MaxRetries    uint
}

// Config carries everything needed to stand up a chain client for one network.
type Config struct {
	Network              string
	RpcURL               string
	Commitment           string // processed|confirmed|finalized
	TokenListPath        string // empty means built-in defaults
	PrivateKeyEnv        string // env var holding the base58 signing key; empty disables signing
	LamportsPerSignature uint64
	ConfirmTimeout       time.Duration
	ConfirmPoll          time.Duration
}

// Client is the chain-side collaborator for the swap pipeline. The token and
// wallet tables are populated once by Init and read-only afterward, so
// concurrent requests need no locking on the hot path.
type Client struct {
	rpc            *rpc.Client
	network        string
	commitment     rpc.CommitmentType
	tokenListPath  string
	privateKeyEnv  string
	lamportsPerSig uint64
	confirmTimeout time.Duration
	confirmPoll    time.Duration
	log            zerolog.Logger

	mu       sync.RWMutex
	ready    bool
	tokens   []TokenInfo
	bySymbol map[string]TokenInfo
	wallets  map[string]solana.PrivateKey
}

func New(cfg Config, log zerolog.Logger) *Client {
	commitment := rpc.CommitmentConfirmed
	switch cfg.Commitment {
	case "processed":
		commitment = rpc.CommitmentProcessed
	case "finalized":
		commitment = rpc.CommitmentFinalized
	}
	confirmTimeout := cfg.ConfirmTimeout
	if confirmTimeout == 0 {
		confirmTimeout = time.Minute
	}
	confirmPoll := cfg.ConfirmPoll
	if confirmPoll == 0 {
		confirmPoll = 2 * time.Second
	}
	lamportsPerSig := cfg.LamportsPerSignature
	if lamportsPerSig == 0 {
		lamportsPerSig = 5000
	}
	return &Client{
		rpc:            rpc.New(cfg.RpcURL),
		network:        cfg.Network,
		commitment:     commitment,
		tokenListPath:  cfg.TokenListPath,
		privateKeyEnv:  cfg.PrivateKeyEnv,
		lamportsPerSig: lamportsPerSig,
		confirmTimeout: confirmTimeout,
		confirmPoll:    confirmPoll,
		log:            log,
	}
}

// Init loads the token list and the env-backed wallet. A missing wallet key is
// tolerated so a price-only deployment can run without signing material.
func (c *Client) Init() error {
	tokens := DefaultTokenList()
	if c.tokenListPath != "" {
		loaded, err := LoadTokenList(c.tokenListPath)
		if err != nil {
			return fmt.Errorf("init token list: %w", err)
		}
		tokens = loaded
	}

	bySymbol := make(map[string]TokenInfo, len(tokens))
	for _, token := range tokens {
		bySymbol[strings.ToUpper(token.Symbol)] = token
	}

	wallets := make(map[string]solana.PrivateKey)
	if c.privateKeyEnv != "" {
		key, err := LoadPrivateKeyFromEnv(c.privateKeyEnv)
		if err != nil {
			c.log.Warn().Err(err).Msg("no signing key loaded; trade path disabled")
		} else {
			wallets[key.PublicKey().String()] = key
			c.log.Info().Str("wallet", key.PublicKey().String()).Msg("signing key loaded")
		}
	}

	c.mu.Lock()
	c.tokens = tokens
	c.bySymbol = bySymbol
	c.wallets = wallets
	c.ready = true
	c.mu.Unlock()

	c.log.Info().Int("tokens", len(tokens)).Str("network", c.network).Msg("chain client ready")
	return nil
}

func (c *Client) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

func (c *Client) Network() string { return c.network }

func (c *Client) NativeTokenSymbol() string { return "SOL" }

// GasPrice reports the flat signature fee in SOL. Solana has no gas-limit fee
// market, so this is the only chain fee surfaced to callers.
func (c *Client) GasPrice() float64 {
	return float64(c.lamportsPerSig) / lamportsPerSol
}

func (c *Client) TokenList() []TokenInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

// TokenBySymbol resolves a symbol case-insensitively against the chain's table.
func (c *Client) TokenBySymbol(symbol string) (TokenInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	token, ok := c.bySymbol[strings.ToUpper(symbol)]
	return token, ok
}

// Keypair returns the signing key for a wallet address previously loaded at Init.
func (c *Client) Keypair(address string) (solana.PrivateKey, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok := c.wallets[address]
	if !ok {
		return nil, fmt.Errorf("no keypair for wallet %s", address)
	}
	return key, nil
}

// SendRawTransaction submits signed transaction bytes to the network.
func (c *Client) SendRawTransaction(ctx context.Context, raw []byte, opts SendOptions) (string, error) {
	maxRetries := opts.MaxRetries
	sig, err := c.rpc.SendRawTransactionWithOpts(ctx, raw, rpc.TransactionOpts{
		SkipPreflight:       opts.SkipPreflight,
		MaxRetries:          &maxRetries,
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return sig.String(), nil
}

// ConfirmTransaction polls signature statuses until the transaction reaches
// confirmed or finalized commitment. The client owns the deadline: when the
// configured confirm timeout elapses the context error is returned as-is so
// callers can tell "not confirmed yet" apart from a node rejection.
func (c *Client) ConfirmTransaction(ctx context.Context, signature string) error {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.confirmPoll)
	defer ticker.Stop()

	for {
		statuses, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
		if err == nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction failed on chain: %v", status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
