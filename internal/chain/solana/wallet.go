package solana

import (
	"fmt"
	"os"

	solana "github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

// LoadPrivateKeyFromEnv reads a base58-encoded signing key from the named env
// var, consulting a .env file first when one exists.
func LoadPrivateKeyFromEnv(envKey string) (solana.PrivateKey, error) {
	_ = godotenv.Load() // best-effort
	b58 := os.Getenv(envKey)
	if b58 == "" {
		return nil, fmt.Errorf("%s not set", envKey)
	}
	key, err := solana.PrivateKeyFromBase58(b58)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envKey, err)
	}
	return key, nil
}
