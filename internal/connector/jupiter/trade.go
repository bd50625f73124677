package jupiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	chain "swapgate/internal/chain/solana"
	"swapgate/internal/connector"
	"swapgate/internal/metrics"
)

// TradeInfo is the resolved, request-scoped context for one estimate or
// execution: both token descriptors, the upstream quote, and the locally
// derived unit price for the requested direction.
type TradeInfo struct {
	BaseToken     chain.TokenInfo
	QuoteToken    chain.TokenInfo
	RequestAmount string
	Quote         *QuoteResponse
	// Price is output-per-input for the requested side, computed here rather
	// than trusted from upstream. A BUY price and a SELL price for the same
	// pair are not comparable.
	Price          decimal.Decimal
	PriceImpactPct decimal.Decimal
}

// tradeInfo resolves both tokens, encodes the amount against the direction's
// input token, and fetches a quote. Resolution misses surface as
// token-not-supported; every later failure is folded into estimation-failed.
func (c *Connector) tradeInfo(ctx context.Context, base, quote, amount string, side connector.Side, slippageBps int) (*TradeInfo, error) {
	if !c.Ready() {
		return nil, connector.NewServiceUninitialized(c.chain.Network())
	}

	baseToken, err := c.ResolveToken(base)
	if err != nil {
		return nil, err
	}
	quoteToken, err := c.ResolveToken(quote)
	if err != nil {
		return nil, err
	}
	if baseToken.Address == quoteToken.Address {
		return nil, connector.NewTradeEstimationFailed(errors.New("base and quote tokens must differ"))
	}

	var inputToken, outputToken chain.TokenInfo
	switch side {
	case connector.Buy:
		inputToken, outputToken = quoteToken, baseToken
	case connector.Sell:
		inputToken, outputToken = baseToken, quoteToken
	default:
		return nil, connector.NewTradeEstimationFailed(fmt.Errorf("unknown trade side %q", side))
	}

	if slippageBps <= 0 {
		slippageBps = c.slippageBps
	}

	human, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, connector.NewTradeEstimationFailed(fmt.Errorf("parse amount %q: %w", amount, err))
	}
	if !human.IsPositive() {
		return nil, connector.NewTradeEstimationFailed(fmt.Errorf("amount %q must be positive", amount))
	}

	raw, err := ToRaw(inputToken, amount)
	if err != nil {
		return nil, connector.NewTradeEstimationFailed(err)
	}

	c.log.Info().
		Str("side", string(side)).
		Str("pair", inputToken.Symbol+"->"+outputToken.Symbol).
		Str("amount", amount).
		Msg("fetching quote")

	upstream, err := c.client.GetQuote(ctx, QuoteParams{
		InputMint:   inputToken.Address,
		OutputMint:  outputToken.Address,
		Amount:      raw,
		SlippageBps: slippageBps,
	})
	if err != nil {
		return nil, connector.NewTradeEstimationFailed(err)
	}

	outHuman, err := ToHuman(outputToken, upstream.OutAmount)
	if err != nil {
		return nil, connector.NewTradeEstimationFailed(err)
	}
	price := outHuman.Div(human)

	// Upstream reports impact as a fraction; callers see a percentage.
	impact := decimal.Zero
	if frac, err := decimal.NewFromString(upstream.PriceImpactPct); err == nil {
		impact = frac.Shift(2)
	} else {
		c.log.Warn().
			Str("priceImpactPct", upstream.PriceImpactPct).
			Err(err).
			Msg("unparseable price impact, reporting zero")
	}

	return &TradeInfo{
		BaseToken:      baseToken,
		QuoteToken:     quoteToken,
		RequestAmount:  amount,
		Quote:          upstream,
		Price:          price,
		PriceImpactPct: impact,
	}, nil
}

// Price runs the quote-only path and shapes the caller-facing estimate.
func (c *Connector) Price(ctx context.Context, req *connector.PriceRequest) (resp *connector.PriceResponse, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("price request panicked")
			resp, err = nil, connector.NewUnknown()
		}
	}()

	info, err := c.tradeInfo(ctx, req.Base, req.Quote, req.Amount, req.Side, req.AllowedSlippageBps)
	if err != nil {
		metrics.FailuresTotal.WithLabelValues(c.chain.Network(), "estimate").Inc()
		return nil, err
	}

	metrics.QuotesTotal.WithLabelValues(c.chain.Network(), string(req.Side)).Inc()
	metrics.RequestSeconds.WithLabelValues(c.chain.Network(), "price").Observe(time.Since(start).Seconds())
	return c.assemblePrice(start, info), nil
}

// assemblePrice shapes the response from a trade info record. Amounts are
// fixed to the base token's precision; Solana has no gas-limit fee market, so
// gas limit and cost are fixed to zero.
func (c *Connector) assemblePrice(start time.Time, info *TradeInfo) *connector.PriceResponse {
	amount := decimal.RequireFromString(info.RequestAmount).StringFixed(int32(info.BaseToken.Decimals))
	return &connector.PriceResponse{
		Network:        c.chain.Network(),
		Timestamp:      start.UnixMilli(),
		Latency:        time.Since(start).Milliseconds(),
		Base:           info.BaseToken.Address,
		Quote:          info.QuoteToken.Address,
		Amount:         amount,
		RawAmount:      info.Quote.InAmount,
		ExpectedAmount: info.Quote.OutAmount,
		Price:          info.Price.String(),
		GasPrice:       c.chain.GasPrice(),
		GasPriceToken:  c.chain.NativeTokenSymbol(),
		GasLimit:       0,
		GasCost:        "0",
	}
}
