package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfi/prompt-market/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
auth:
  api_keys:
    - key-one
    - key-two
ledger:
  rpc_url: "https://testnet-rpc.monad.xyz"
  chain_id: "eip155:10143"
  contract_address: "0x1234567890abcdef1234567890abcdef12345678"
pinata:
  api_key: test-key
  api_secret: test-secret
uri:
  ipfs_gateways:
    - "https://ipfs.io"
    - "https://gateway.pinata.cloud"
sync:
  metadata_timeout: 12s
  worker_pool_size: 32
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
				assert.Equal(t, "https://testnet-rpc.monad.xyz", cfg.Ledger.RPCURL)
				assert.Equal(t, domain.ChainMonadTestnet, cfg.Ledger.ChainID)
				assert.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", cfg.Ledger.ContractAddress)
				assert.Equal(t, "test-key", cfg.Pinata.APIKey)
				assert.Equal(t, []string{"https://ipfs.io", "https://gateway.pinata.cloud"}, cfg.URI.IPFSGateways)
				assert.Equal(t, 12*time.Second, cfg.Sync.MetadataTimeout)
				assert.Equal(t, 32, cfg.Sync.WorkerPoolSize)
			},
		},
		{
			name:        "defaults without config file",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, domain.ChainMonadTestnet, cfg.Ledger.ChainID)
				assert.Equal(t, domain.DEFAULT_PINATA_API, cfg.Pinata.APIURL)
				assert.Equal(t, []string{domain.DEFAULT_IPFS_GATEWAY}, cfg.URI.IPFSGateways)
				assert.Equal(t, 8*time.Second, cfg.Sync.MetadataTimeout)
				assert.Equal(t, 10, cfg.Sync.WorkerPoolSize)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
server:
  port: not-a-number
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadDeployConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
ledger:
  rpc_url: "https://testnet-rpc.monad.xyz"
  private_key: "deadbeef"
artifact_path: "build/PromptFi.json"
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadDeployConfig(configFile, tmpDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://testnet-rpc.monad.xyz", cfg.Ledger.RPCURL)
	assert.Equal(t, domain.ChainMonadTestnet, cfg.Ledger.ChainID)
	assert.Equal(t, "deadbeef", cfg.Ledger.PrivateKey)
	assert.Equal(t, "build/PromptFi.json", cfg.ArtifactPath)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Env vars need the PROMPTFI_ prefix for viper to pick them up
	envFile := filepath.Join(envDir, ".env")
	envContent := `PROMPTFI_DEBUG=true
PROMPTFI_SERVER_PORT=3001
PROMPTFI_LEDGER_RPC_URL=https://env-rpc.example.com
PROMPTFI_PINATA_API_KEY=env-pinata-key
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// godotenv sets real process env vars, clean them up after
	t.Cleanup(func() {
		for _, key := range []string{"PROMPTFI_DEBUG", "PROMPTFI_SERVER_PORT", "PROMPTFI_LEDGER_RPC_URL", "PROMPTFI_PINATA_API_KEY"} {
			_ = os.Unsetenv(key)
		}
	})

	// Config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(`
debug: false
server:
  port: 8080
ledger:
  rpc_url: "https://file-rpc.example.com"
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Values from the .env file win over the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "https://env-rpc.example.com", cfg.Ledger.RPCURL)
	assert.Equal(t, "env-pinata-key", cfg.Pinata.APIKey)
}

func TestLedgerConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      LedgerConfig
		expectError string
	}{
		{
			name: "valid",
			config: LedgerConfig{
				RPCURL:          "https://testnet-rpc.monad.xyz",
				ChainID:         domain.ChainMonadTestnet,
				ContractAddress: "0x1234567890abcdef1234567890abcdef12345678",
			},
			expectError: "",
		},
		{
			name: "missing rpc url",
			config: LedgerConfig{
				ChainID:         domain.ChainMonadTestnet,
				ContractAddress: "0x1234567890abcdef1234567890abcdef12345678",
			},
			expectError: "ledger.rpc_url is required",
		},
		{
			name: "unsupported chain",
			config: LedgerConfig{
				RPCURL:          "https://testnet-rpc.monad.xyz",
				ChainID:         "eip155:1",
				ContractAddress: "0x1234567890abcdef1234567890abcdef12345678",
			},
			expectError: "unsupported chain: eip155:1",
		},
		{
			name: "missing contract address",
			config: LedgerConfig{
				RPCURL:  "https://testnet-rpc.monad.xyz",
				ChainID: domain.ChainMonadTestnet,
			},
			expectError: "ledger.contract_address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectError)
			}
		})
	}
}
