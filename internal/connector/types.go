package connector

import "context"

// Side enumerates trade directions as seen from the base token.
type Side string

const (
	// Buy acquires the base token with the quote token.
	Buy Side = "BUY"
	// Sell disposes of the base token for the quote token.
	Sell Side = "SELL"
)

// PriceRequest asks for a swap estimate on a trading pair.
type PriceRequest struct {
	Chain              string `json:"chain"`
	Network            string `json:"network"`
	Base               string `json:"base"`
	Quote              string `json:"quote"`
	Amount             string `json:"amount"`
	Side               Side   `json:"side"`
	AllowedSlippageBps int    `json:"allowedSlippage,omitempty"` // 0 means connector default
}

// PriceResponse is the estimate returned for a price query.
type PriceResponse struct {
	Network        string  `json:"network"`
	Timestamp      int64   `json:"timestamp"` // unix ms at call start
	Latency        int64   `json:"latency"`   // ms
	Base           string  `json:"base"`  // base token address
	Quote          string  `json:"quote"` // quote token address
	Amount         string  `json:"amount"`
	RawAmount      string  `json:"rawAmount"`
	ExpectedAmount string  `json:"expectedAmount"`
	Price          string  `json:"price"`
	GasPrice       float64 `json:"gasPrice"`
	GasPriceToken  string  `json:"gasPriceToken"`
	GasLimit       int     `json:"gasLimit"`
	GasCost        string  `json:"gasCost"`
}

// TradeRequest executes the estimated swap from the given wallet.
type TradeRequest struct {
	PriceRequest
	Address string `json:"address"` // wallet public key
}

// TradeResponse extends the price shape with the submitted transaction id.
type TradeResponse struct {
	PriceResponse
	TxHash string `json:"txHash"`
}

// AMM is the operation surface every connector exposes to the gateway.
type AMM interface {
	Ready() bool
	Price(ctx context.Context, req *PriceRequest) (*PriceResponse, error)
	Trade(ctx context.Context, req *TradeRequest) (*TradeResponse, error)
}
