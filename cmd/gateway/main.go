package main

import (
	"context"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"swapgate/internal/chain/solana"
	"swapgate/internal/config"
	"swapgate/internal/connector"
	"swapgate/internal/connector/jupiter"
	"swapgate/internal/gateway"
	"swapgate/internal/metrics"
	"swapgate/internal/util"
)

func main() {
	cfg, err := config.Load(getEnv("SWAPGATE_CONFIG", "internal/config/config.yaml"))
	if err != nil {
		fallback := util.NewLogger("info")
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := util.NewLogger(cfg.App.LogLevel)

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	chain := solana.New(solana.Config{
		Network:              cfg.Solana.Network,
		RpcURL:               getEnv("SOLANA_RPC_URL", cfg.Solana.RpcURL),
		Commitment:           getEnv("SOLANA_COMMITMENT", cfg.Solana.Commitment),
		TokenListPath:        cfg.Solana.TokenListPath,
		PrivateKeyEnv:        cfg.Wallet.PrivateKeyEnv,
		LamportsPerSignature: cfg.Solana.LamportsPerSignature,
		ConfirmTimeout:       time.Duration(cfg.Solana.ConfirmTimeoutMs) * time.Millisecond,
		ConfirmPoll:          time.Duration(cfg.Solana.ConfirmPollMs) * time.Millisecond,
	}, util.Component(log, "solana"))
	if err := chain.Init(); err != nil {
		log.Fatal().Err(err).Msg("init chain client")
	}

	registry := connector.NewRegistry()
	registry.Register("solana", func(chainName, network string) (connector.AMM, error) {
		if network != chain.Network() {
			return nil, connector.NewUnsupportedChain(chainName + "/" + network)
		}
		client := jupiter.NewClient(
			getEnv("JUPITER_BASE_URL", cfg.Jupiter.BaseURL),
			time.Duration(cfg.Jupiter.TimeoutMs)*time.Millisecond,
		)
		conn := jupiter.New(chain, client, cfg.Jupiter.SlippageBps, util.Component(log, "jupiter"))
		if err := conn.Init(); err != nil {
			return nil, err
		}
		return conn, nil
	})

	server := gateway.NewServer(registry, cfg.Server.Addr, util.Component(log, "gateway"))
	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("gateway stopped")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
