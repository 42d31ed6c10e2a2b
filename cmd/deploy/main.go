package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/config"
	"github.com/promptfi/prompt-market/internal/ledger"
	"github.com/promptfi/prompt-market/internal/logger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// artifact is the compiled contract output produced by the build pipeline
type artifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDeployConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "deploy",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if cfg.Ledger.RPCURL == "" {
		logger.FatalCtx(ctx, "ledger.rpc_url is required")
	}
	if cfg.Ledger.PrivateKey == "" {
		logger.FatalCtx(ctx, "ledger.private_key is required")
	}

	// Read the compiled contract artifact
	raw, err := os.ReadFile(cfg.ArtifactPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read contract artifact",
			zap.Error(err),
			zap.String("path", cfg.ArtifactPath))
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		logger.FatalCtx(ctx, "Failed to parse contract artifact", zap.Error(err))
	}

	contractABI, err := abi.JSON(strings.NewReader(string(art.ABI)))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to parse contract ABI", zap.Error(err))
	}

	bytecode := common.FromHex(art.Bytecode)
	if len(bytecode) == 0 {
		logger.FatalCtx(ctx, "Contract artifact has no bytecode")
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

	signer, err := ledger.NewKeyedSigner(cfg.Ledger.PrivateKey, cfg.Ledger.ChainID)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create signer", zap.Error(err))
	}

	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to prepare transact opts", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Deploying contract",
		zap.String("chain", string(cfg.Ledger.ChainID)),
		zap.String("deployer", signer.Address().Hex()))

	address, tx, _, err := bind.DeployContract(opts, contractABI, bytecode, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to submit deployment", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Deployment submitted, waiting for inclusion",
		zap.String("tx_hash", tx.Hash().Hex()))

	if _, err := bind.WaitDeployed(ctx, ethClient, tx); err != nil {
		logger.FatalCtx(ctx, "Deployment failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Contract deployed",
		zap.String("address", address.Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))

	// Print for scripts consuming the address
	fmt.Println(address.Hex())
}
