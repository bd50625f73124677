package solana

import (
	"path/filepath"
	"testing"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

func testClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	client := New(cfg, zerolog.Nop())
	if err := client.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return client
}

func TestNewCommitment(t *testing.T) {
	client := New(Config{Commitment: "finalized"}, zerolog.Nop())
	if client.commitment != rpc.CommitmentFinalized {
		t.Fatalf("expected finalized commitment, got %v", client.commitment)
	}

	client = New(Config{Commitment: "bogus"}, zerolog.Nop())
	if client.commitment != rpc.CommitmentConfirmed {
		t.Fatalf("expected confirmed fallback, got %v", client.commitment)
	}
}

func TestInitDefaults(t *testing.T) {
	client := testClient(t, Config{Network: "mainnet-beta"})

	if !client.Ready() {
		t.Fatalf("expected client ready after init")
	}
	if len(client.TokenList()) == 0 {
		t.Fatalf("expected built-in token list")
	}
	if client.GasPrice() != 5000.0/lamportsPerSol {
		t.Fatalf("unexpected gas price: %v", client.GasPrice())
	}
	if client.NativeTokenSymbol() != "SOL" {
		t.Fatalf("unexpected native token symbol: %s", client.NativeTokenSymbol())
	}
}

func TestTokenBySymbolCaseInsensitive(t *testing.T) {
	client := testClient(t, Config{
		Network:       "devnet",
		TokenListPath: filepath.Join("testdata", "tokens.json"),
	})

	token, ok := client.TokenBySymbol("usdc")
	if !ok {
		t.Fatalf("expected usdc to resolve")
	}
	if token.Decimals != 6 {
		t.Fatalf("expected 6 decimals, got %d", token.Decimals)
	}
	if _, ok := client.TokenBySymbol("NOPE"); ok {
		t.Fatalf("expected NOPE to miss")
	}
}

func TestLoadTokenListMissing(t *testing.T) {
	if _, err := LoadTokenList(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestKeypairFromEnv(t *testing.T) {
	wallet := solana.NewWallet()
	t.Setenv("SOLANA_TEST_KEY", wallet.PrivateKey.String())

	client := testClient(t, Config{Network: "devnet", PrivateKeyEnv: "SOLANA_TEST_KEY"})

	key, err := client.Keypair(wallet.PublicKey().String())
	if err != nil {
		t.Fatalf("Keypair returned error: %v", err)
	}
	if !key.PublicKey().Equals(wallet.PublicKey()) {
		t.Fatalf("loaded key does not match wallet")
	}

	if _, err := client.Keypair(solana.NewWallet().PublicKey().String()); err == nil {
		t.Fatalf("expected error for unknown wallet")
	}
}

func TestInitWithoutKeyStillReady(t *testing.T) {
	t.Setenv("SOLANA_EMPTY_KEY", "")
	client := testClient(t, Config{Network: "devnet", PrivateKeyEnv: "SOLANA_EMPTY_KEY"})
	if !client.Ready() {
		t.Fatalf("expected ready without signing key")
	}
}

func TestConfirmTimeoutDefaults(t *testing.T) {
	client := New(Config{}, zerolog.Nop())
	if client.confirmTimeout != time.Minute {
		t.Fatalf("unexpected default confirm timeout: %v", client.confirmTimeout)
	}
	if client.confirmPoll != 2*time.Second {
		t.Fatalf("unexpected default confirm poll: %v", client.confirmPoll)
	}
}
