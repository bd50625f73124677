// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Server holds the listen address for the gateway HTTP API.
type Server struct {
	Addr string `yaml:"addr"`
}

// Jupiter defines the aggregator endpoint and quoting defaults.
type Jupiter struct {
	BaseURL     string `yaml:"base_url"` // https://quote-api.jup.ag
	SlippageBps int    `yaml:"slippage_bps"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// Solana defines network endpoints and chain-client tuning for one network.
type Solana struct {
	Network              string `yaml:"network"` // e.g. "mainnet-beta"
	RpcURL               string `yaml:"rpc_url"`
	Commitment           string `yaml:"commitment"` // processed|confirmed|finalized
	TokenListPath        string `yaml:"token_list_path"`
	LamportsPerSignature uint64 `yaml:"lamports_per_signature"`
	ConfirmTimeoutMs     int    `yaml:"confirm_timeout_ms"`
	ConfirmPollMs        int    `yaml:"confirm_poll_ms"`
}

// Wallet stores env-backed signing material metadata.
type Wallet struct {
	PrivateKeyEnv string `yaml:"private_key_env"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App     App     `yaml:"app"`
	Server  Server  `yaml:"server"`
	Jupiter Jupiter `yaml:"jupiter"`
	Solana  Solana  `yaml:"solana"`
	Wallet  Wallet  `yaml:"wallet"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
