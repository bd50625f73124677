// Package jupiter implements the Jupiter aggregator connector: token
// resolution, swap quoting, and the sign-submit-confirm execution pipeline.
package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultSlippageBps is applied when a request leaves slippage unspecified.
const DefaultSlippageBps = 50

// QuoteParams is the outbound query for the aggregator's quote endpoint.
type QuoteParams struct {
	InputMint   string
	OutputMint  string
	Amount      string // raw integer base units
	SlippageBps int
}

// QuoteResponse mirrors the aggregator's quote wire format. It carries only
// upstream fields: locally derived values (unit price) live on TradeInfo, so
// resending this struct to the swap endpoint needs no field stripping.
type QuoteResponse struct {
	InputMint            string      `json:"inputMint"`
	InAmount             string      `json:"inAmount"`
	OutputMint           string      `json:"outputMint"`
	OutAmount            string      `json:"outAmount"`
	OtherAmountThreshold string      `json:"otherAmountThreshold"`
	SwapMode             string      `json:"swapMode,omitempty"`
	SlippageBps          int         `json:"slippageBps"`
	PriceImpactPct       string      `json:"priceImpactPct"`
	RoutePlan            []RoutePlan `json:"routePlan"`
	ContextSlot          int64       `json:"contextSlot,omitempty"`
	TimeTaken            float64     `json:"timeTaken,omitempty"`
}

// RoutePlan describes one step of the aggregator's chosen route.
type RoutePlan struct {
	SwapInfo SwapInfo `json:"swapInfo"`
	Percent  int      `json:"percent"`
}

// SwapInfo details a single AMM hop inside a route step.
type SwapInfo struct {
	AmmKey     string `json:"ammKey"`
	Label      string `json:"label,omitempty"`
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`
	FeeAmount  string `json:"feeAmount"`
	FeeMint    string `json:"feeMint"`
}

// SwapRequest is the body for the aggregator's swap-build endpoint.
type SwapRequest struct {
	QuoteResponse    *QuoteResponse `json:"quoteResponse"`
	UserPublicKey    string         `json:"userPublicKey"`
	WrapAndUnwrapSol bool           `json:"wrapAndUnwrapSol"`
}

// SwapResponse carries the serialized unsigned transaction built upstream.
type SwapResponse struct {
	SwapTransaction      string `json:"swapTransaction"` // base64-encoded
	LastValidBlockHeight int64  `json:"lastValidBlockHeight,omitempty"`
}

// Client talks to the aggregator's HTTP API. Quote and swap-build calls are
// single-shot: transport failures propagate so the caller can fail fast.
type Client struct {
	Base string
	Http *http.Client
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		Base: base,
		Http: &http.Client{Timeout: timeout},
	}
}

// GetQuote fetches a priced swap offer for the given direction and raw amount.
func (c *Client) GetQuote(ctx context.Context, params QuoteParams) (*QuoteResponse, error) {
	q := url.Values{}
	q.Set("inputMint", params.InputMint)
	q.Set("outputMint", params.OutputMint)
	q.Set("amount", params.Amount)
	q.Set("slippageBps", fmt.Sprintf("%d", params.SlippageBps))
	u := c.Base + "/v6/quote?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("jupiter quote status %d: %s", resp.StatusCode, body)
	}
	var out QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	return &out, nil
}

// BuildSwap asks the aggregator for a ready-to-sign transaction for the quote.
func (c *Client) BuildSwap(ctx context.Context, swap *SwapRequest) (*SwapResponse, error) {
	body, err := json.Marshal(swap)
	if err != nil {
		return nil, fmt.Errorf("marshal swap request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Base+"/v6/swap", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("jupiter swap status %d: %s", resp.StatusCode, respBody)
	}
	var out SwapResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode swap response: %w", err)
	}
	return &out, nil
}
