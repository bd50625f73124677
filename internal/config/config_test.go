package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "swapgate-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected App.LogLevel: %s", cfg.App.LogLevel)
	}
	if cfg.Server.Addr != ":15888" {
		t.Fatalf("unexpected Server.Addr: %s", cfg.Server.Addr)
	}
	if cfg.Jupiter.BaseURL != "https://quote-api.jup.ag" {
		t.Fatalf("unexpected Jupiter.BaseURL: %s", cfg.Jupiter.BaseURL)
	}
	if cfg.Jupiter.SlippageBps != 75 {
		t.Fatalf("unexpected Jupiter.SlippageBps: %d", cfg.Jupiter.SlippageBps)
	}
	if cfg.Jupiter.TimeoutMs != 5000 {
		t.Fatalf("unexpected Jupiter.TimeoutMs: %d", cfg.Jupiter.TimeoutMs)
	}
	if cfg.Solana.Network != "devnet" {
		t.Fatalf("unexpected Solana.Network: %s", cfg.Solana.Network)
	}
	if cfg.Solana.Commitment != "processed" {
		t.Fatalf("expected processed commitment, got %s", cfg.Solana.Commitment)
	}
	if cfg.Solana.TokenListPath != "tokens.json" {
		t.Fatalf("unexpected Solana.TokenListPath: %s", cfg.Solana.TokenListPath)
	}
	if cfg.Solana.LamportsPerSignature != 5000 {
		t.Fatalf("unexpected Solana.LamportsPerSignature: %d", cfg.Solana.LamportsPerSignature)
	}
	if cfg.Solana.ConfirmTimeoutMs != 30000 {
		t.Fatalf("unexpected Solana.ConfirmTimeoutMs: %d", cfg.Solana.ConfirmTimeoutMs)
	}
	if cfg.Solana.ConfirmPollMs != 1000 {
		t.Fatalf("unexpected Solana.ConfirmPollMs: %d", cfg.Solana.ConfirmPollMs)
	}
	if cfg.Wallet.PrivateKeyEnv != "TEST_PRIVATE_KEY_BASE58" {
		t.Fatalf("unexpected Wallet.PrivateKeyEnv: %s", cfg.Wallet.PrivateKeyEnv)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{}
	cfg.App.Name = "roundtrip"
	cfg.Jupiter.SlippageBps = 25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.App.Name != "roundtrip" || loaded.Jupiter.SlippageBps != 25 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
