package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/promptfi/prompt-market/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// LedgerConfig holds blockchain connection configuration
type LedgerConfig struct {
	RPCURL          string       `mapstructure:"rpc_url"`
	ChainID         domain.Chain `mapstructure:"chain_id"`
	ContractAddress string       `mapstructure:"contract_address"`
	// PrivateKey signs server-submitted transactions (hex, no 0x prefix)
	PrivateKey string `mapstructure:"private_key"`
}

// PinataConfig holds the metadata pinning service configuration
type PinataConfig struct {
	APIURL    string `mapstructure:"api_url"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways []string `mapstructure:"ipfs_gateways"`
}

// SyncConfig holds catalog synchronizer configuration
type SyncConfig struct {
	MetadataTimeout time.Duration `mapstructure:"metadata_timeout"`
	WorkerPoolSize  int           `mapstructure:"worker_pool_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig `mapstructure:"server"`
	Auth       AuthConfig   `mapstructure:"auth"`
	Ledger     LedgerConfig `mapstructure:"ledger"`
	Pinata     PinataConfig `mapstructure:"pinata"`
	URI        URIConfig    `mapstructure:"uri"`
	Sync       SyncConfig   `mapstructure:"sync"`
}

// DeployConfig holds configuration for the deploy command
type DeployConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ledger     LedgerConfig `mapstructure:"ledger"`
	// ArtifactPath points at the compiled contract artifact JSON
	ArtifactPath string `mapstructure:"artifact_path"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("ledger.chain_id", string(domain.ChainMonadTestnet))
	v.SetDefault("pinata.api_url", domain.DEFAULT_PINATA_API)
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY})
	v.SetDefault("sync.metadata_timeout", "8s")
	v.SetDefault("sync.worker_pool_size", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadDeployConfig loads configuration for the deploy command
func LoadDeployConfig(configFile string, envPath string) (*DeployConfig, error) {
	v := configureViper("deploy", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("ledger.chain_id", string(domain.ChainMonadTestnet))
	v.SetDefault("artifact_path", "contracts/PromptFi.json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config DeployConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/deploy/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("PROMPTFI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds every config key so AutomaticEnv picks up
// nested keys without a config file present
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Ledger
		"ledger.rpc_url",
		"ledger.chain_id",
		"ledger.contract_address",
		"ledger.private_key",
		// Pinata
		"pinata.api_url",
		"pinata.api_key",
		"pinata.api_secret",
		// URI
		"uri.ipfs_gateways",
		// Sync
		"sync.metadata_timeout",
		"sync.worker_pool_size",
		// Deploy
		"artifact_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Validate checks that the ledger configuration is complete enough to
// connect and sign
func (c *LedgerConfig) Validate() error {
	if c.RPCURL == "" {
		return errors.New("ledger.rpc_url is required")
	}
	if !domain.IsValidChain(c.ChainID) {
		return fmt.Errorf("unsupported chain: %s", c.ChainID)
	}
	if c.ContractAddress == "" {
		return errors.New("ledger.contract_address is required")
	}
	return nil
}
