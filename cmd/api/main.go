package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/api/middleware"
	"github.com/promptfi/prompt-market/internal/api/server"
	"github.com/promptfi/prompt-market/internal/catalog"
	"github.com/promptfi/prompt-market/internal/config"
	"github.com/promptfi/prompt-market/internal/ledger"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/metadatastore"
	"github.com/promptfi/prompt-market/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PromptFi marketplace API")

	if err := cfg.Ledger.Validate(); err != nil {
		logger.FatalCtx(ctx, "Invalid ledger config", zap.Error(err))
	}

	// Connect to the chain
	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to RPC node",
			zap.Error(err),
			zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to RPC node",
		zap.String("rpc_url", cfg.Ledger.RPCURL),
		zap.String("chain", string(cfg.Ledger.ChainID)))

	// Initialize ledger client
	ledgerClient, err := ledger.NewClient(cfg.Ledger.ChainID, cfg.Ledger.ContractAddress, ethClient, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}

	// Initialize transaction signer
	var signer ledger.Signer
	if cfg.Ledger.PrivateKey != "" {
		signer, err = ledger.NewKeyedSigner(cfg.Ledger.PrivateKey, cfg.Ledger.ChainID)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create signer", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Transaction signer ready", zap.String("address", signer.Address().Hex()))
	} else {
		logger.WarnCtx(ctx, "No private key configured, write endpoints will fail")
	}

	// Initialize adapters and metadata store
	httpClient := adapter.NewHTTPClient(cfg.Sync.MetadataTimeout)
	jsonAdapter := adapter.NewJSON()
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: cfg.URI.IPFSGateways,
	})
	metadataStore := metadatastore.NewPinataStore(metadatastore.Config{
		APIURL:    cfg.Pinata.APIURL,
		APIKey:    cfg.Pinata.APIKey,
		APISecret: cfg.Pinata.APISecret,
	}, httpClient, jsonAdapter, resolver)

	// Assemble catalog components
	clock := adapter.NewClock()
	synchronizer := catalog.NewSynchronizer(ledgerClient, metadataStore, clock, catalog.Config{
		MetadataTimeout: cfg.Sync.MetadataTimeout,
		WorkerPoolSize:  cfg.Sync.WorkerPoolSize,
	})
	market := catalog.NewMarket(ledgerClient, metadataStore, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Chain:        cfg.Ledger.ChainID,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, synchronizer, market, signer)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
