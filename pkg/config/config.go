package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the registry server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Database   DatabaseConfig   `yaml:"database"`
	Election   ElectionConfig   `yaml:"election"`
	Auth       AuthConfig       `yaml:"auth"`
	EthRPC     EthRPCConfig     `yaml:"eth_rpc"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host               string        `yaml:"host" default:"0.0.0.0"`
	Port               int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout        time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout       time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout     time.Duration `yaml:"request_timeout" default:"30s"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" default:"[\"*\"]"`
}

// GRPCConfig contains the gRPC health server settings
type GRPCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" default:"0.0.0.0"`
	Port    int    `yaml:"port" default:"9091" validate:"min=1,max=65535"`
}

// DatabaseConfig contains database connection settings. When disabled the registry
// keeps its journal in memory and loses state on restart.
type DatabaseConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	Host        string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port        int    `yaml:"port" default:"5432"`
	User        string `yaml:"user" default:"postgres"`
	Password    string `yaml:"password"`
	PasswordEnv string `yaml:"password_env" default:"DEMOCRACY_DB_PASSWORD"`
	Database    string `yaml:"database" default:"democracy_chain"`
	SSLMode     string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// ElectionConfig holds the parameters the registry is deployed with. Deadlines are unix seconds.
type ElectionConfig struct {
	Admin                string `yaml:"admin" validate:"required,eth_addr"`
	RegistrationDeadline uint64 `yaml:"registration_deadline" validate:"required"`
	VotingDeadline       uint64 `yaml:"voting_deadline" validate:"required,gtfield=RegistrationDeadline"`
	// Address overrides the derived registry address.
	Address string `yaml:"address" validate:"omitempty,eth_addr"`
	Network string `yaml:"network" default:"localhost"`
	ChainID uint64 `yaml:"chain_id" default:"31337"`
}

// AdminAddress returns the configured admin wallet.
func (c *ElectionConfig) AdminAddress() common.Address {
	return common.HexToAddress(c.Admin)
}

// RegistryAddress returns the configured registry address, or the zero address
// when it should be derived from the admin.
func (c *ElectionConfig) RegistryAddress() common.Address {
	if c.Address == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.Address)
}

// AuthConfig contains wallet login and session settings
type AuthConfig struct {
	JWTIssuer    string        `yaml:"jwt_issuer" default:"democracy-chain"`
	SessionTTL   time.Duration `yaml:"session_ttl" default:"24h"`
	ChallengeTTL time.Duration `yaml:"challenge_ttl" default:"5m"`
	MasterKeyEnv string        `yaml:"master_key_env" default:"DEMOCRACY_MASTER_KEY" validate:"required"`
}

// EthRPCConfig contains the JSON-RPC read facade settings
type EthRPCConfig struct {
	Enabled        bool          `yaml:"enabled" default:"true"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"30s"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file. Unset fields take their defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ResolvePassword returns the configured password, or the value of PasswordEnv when the
// password is not set in the file.
func (c *DatabaseConfig) ResolvePassword() string {
	if c.Password != "" {
		return c.Password
	}
	if c.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(c.PasswordEnv)
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.ResolvePassword(), c.Database, c.SSLMode,
	)
}
