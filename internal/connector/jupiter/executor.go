package jupiter

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"

	chain "swapgate/internal/chain/solana"
	"swapgate/internal/connector"
	"swapgate/internal/metrics"
)

// submitMaxRetries bounds node-side resubmission. Preflight simulation is
// skipped deliberately: between quote and execution, latency costs more than
// the safety check buys.
const submitMaxRetries = 2

// ExecutionResult is the outcome of submitting a signed swap transaction.
type ExecutionResult struct {
	TxID      string
	Confirmed bool
}

type inflightTrade struct {
	done chan struct{}
	resp *connector.TradeResponse
	err  error
}

func tradeKey(req *connector.TradeRequest) string {
	return strings.Join([]string{req.Address, req.Base, req.Quote, req.Amount, string(req.Side)}, "|")
}

// Trade estimates and executes a swap. Identical concurrent requests coalesce
// onto one submission: later callers block on the first caller's outcome
// instead of issuing a second transaction for the same intent.
func (c *Connector) Trade(ctx context.Context, req *connector.TradeRequest) (*connector.TradeResponse, error) {
	key := tradeKey(req)

	c.inflightMu.Lock()
	if pending, ok := c.inflight[key]; ok {
		c.inflightMu.Unlock()
		select {
		case <-pending.done:
			return pending.resp, pending.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	pending := &inflightTrade{done: make(chan struct{})}
	c.inflight[key] = pending
	c.inflightMu.Unlock()

	resp, err := c.doTrade(ctx, req)

	pending.resp, pending.err = resp, err
	close(pending.done)
	c.inflightMu.Lock()
	delete(c.inflight, key)
	c.inflightMu.Unlock()

	return resp, err
}

func (c *Connector) doTrade(ctx context.Context, req *connector.TradeRequest) (resp *connector.TradeResponse, err error) {
	// A trade in flight outlives its caller: once accepted, the whole
	// estimate-submit-confirm path runs detached from request cancellation,
	// so an abandoned request never strands a submitted transaction.
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("trade request panicked")
			resp, err = nil, connector.NewUnknown()
		}
	}()

	info, err := c.tradeInfo(ctx, req.Base, req.Quote, req.Amount, req.Side, req.AllowedSlippageBps)
	if err != nil {
		metrics.FailuresTotal.WithLabelValues(c.chain.Network(), "estimate").Inc()
		return nil, err
	}

	result, err := c.execute(ctx, req.Address, info)
	if err != nil {
		stage := "submit"
		if ge, ok := connector.AsGatewayError(err); ok && ge.Code == connector.CodeConfirmationTimeout {
			stage = "confirm"
		}
		metrics.FailuresTotal.WithLabelValues(c.chain.Network(), stage).Inc()
		return nil, err
	}

	metrics.TradesTotal.WithLabelValues(c.chain.Network(), string(req.Side)).Inc()
	metrics.RequestSeconds.WithLabelValues(c.chain.Network(), "trade").Observe(time.Since(start).Seconds())

	return &connector.TradeResponse{
		PriceResponse: *c.assemblePrice(start, info),
		TxHash:        result.TxID,
	}, nil
}

// execute turns an accepted quote into a confirmed chain transaction: build
// upstream, decode, sign locally, submit with bounded retries, then block on
// confirmation. A submission failure is fatal and never re-signed; a
// confirmation timeout still surfaces the transaction id so the caller knows
// the transaction may have landed.
func (c *Connector) execute(ctx context.Context, address string, info *TradeInfo) (*ExecutionResult, error) {
	wallet, err := c.chain.Keypair(address)
	if err != nil {
		return nil, connector.NewSubmissionFailed(fmt.Errorf("transaction not sent: %w", err))
	}

	// The swap body carries the upstream quote verbatim; TradeInfo's derived
	// price is not part of the wire contract and never reaches it.
	swap, err := c.client.BuildSwap(ctx, &SwapRequest{
		QuoteResponse:    info.Quote,
		UserPublicKey:    wallet.PublicKey().String(),
		WrapAndUnwrapSol: true,
	})
	if err != nil {
		return nil, connector.NewSubmissionFailed(err)
	}

	raw, err := base64.StdEncoding.DecodeString(swap.SwapTransaction)
	if err != nil {
		return nil, connector.NewSubmissionFailed(fmt.Errorf("decode tx: %w", err))
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, connector.NewSubmissionFailed(fmt.Errorf("unmarshal tx: %w", err))
	}

	if _, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(wallet.PublicKey()) {
			return &wallet
		}
		return nil
	}); err != nil {
		return nil, connector.NewSubmissionFailed(fmt.Errorf("sign: %w", err))
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return nil, connector.NewSubmissionFailed(fmt.Errorf("serialize: %w", err))
	}

	txid, err := c.chain.SendRawTransaction(ctx, signed, chain.SendOptions{
		SkipPreflight: true,
		MaxRetries:    submitMaxRetries,
	})
	if err != nil {
		return nil, connector.NewSubmissionFailed(err)
	}
	c.log.Info().Str("tx", txid).Msg("transaction submitted")

	if err := c.chain.ConfirmTransaction(ctx, txid); err != nil {
		return &ExecutionResult{TxID: txid}, connector.NewConfirmationTimeout(txid, err)
	}

	c.log.Info().Str("tx", txid).Msg("transaction confirmed")
	return &ExecutionResult{TxID: txid, Confirmed: true}, nil
}
