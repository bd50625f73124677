package solana

import (
	"encoding/json"
	"fmt"
	"os"
)

// TokenInfo is the chain-native descriptor for one SPL token.
type TokenInfo struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

type tokenListFile struct {
	Tokens []TokenInfo `json:"tokens"`
}

// LoadTokenList reads a token list JSON file ({"tokens": [...]}, the standard
// Solana token-list shape) from disk.
func LoadTokenList(path string) ([]TokenInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token list: %w", err)
	}
	var file tokenListFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode token list: %w", err)
	}
	if len(file.Tokens) == 0 {
		return nil, fmt.Errorf("token list %s is empty", path)
	}
	return file.Tokens, nil
}

// DefaultTokenList covers the mainnet tokens the gateway supports out of the box.
func DefaultTokenList() []TokenInfo {
	return []TokenInfo{
		{Address: "So11111111111111111111111111111111111111112", Symbol: "SOL", Name: "Wrapped SOL", Decimals: 9},
		{Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
		{Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Symbol: "USDT", Name: "USDT", Decimals: 6},
		{Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Symbol: "BONK", Name: "Bonk", Decimals: 5},
		{Address: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Symbol: "WIF", Name: "dogwifhat", Decimals: 6},
	}
}
