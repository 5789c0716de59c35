package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
election:
  admin: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
  registration_deadline: 1900000000
  voting_deadline: 1900086400
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "democracy_chain", cfg.Database.Database)
	assert.Equal(t, "localhost", cfg.Election.Network)
	assert.Equal(t, uint64(31337), cfg.Election.ChainID)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "DEMOCRACY_MASTER_KEY", cfg.Auth.MasterKeyEnv)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.GRPC.Enabled)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig + `
server:
  port: 9000
  read_timeout: 3s
database:
  enabled: false
logging:
  format: console
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing admin",
			yaml: "election:\n  registration_deadline: 1\n  voting_deadline: 2\n",
		},
		{
			name: "bad admin address",
			yaml: "election:\n  admin: nope\n  registration_deadline: 1\n  voting_deadline: 2\n",
		},
		{
			name: "voting before registration",
			yaml: "election:\n  admin: \"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\"\n  registration_deadline: 5\n  voting_deadline: 5\n",
		},
		{
			name: "unknown log format",
			yaml: minimalConfig + "logging:\n  format: xml\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", cfg.Election.AdminAddress().Hex())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDatabaseConfig_ResolvePassword(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "from-env")

	cfg := DatabaseConfig{PasswordEnv: "TEST_DB_PASSWORD"}
	assert.Equal(t, "from-env", cfg.ResolvePassword())

	cfg.Password = "inline"
	assert.Equal(t, "inline", cfg.ResolvePassword())
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"}, "registry-server")
	require.NoError(t, err)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"}, "registry-server")
	require.Error(t, err)
}

func TestNewLogger_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.log")
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json", OutputPath: path}, "registry-server")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("registration closing soon")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "registration closing soon", entry["msg"])
	assert.Equal(t, "registry-server", entry["service"])
	assert.Contains(t, entry, "ts")
}

func TestElectionConfig_RegistryAddress(t *testing.T) {
	cfg := ElectionConfig{}
	assert.Equal(t, common.Address{}, cfg.RegistryAddress())

	cfg.Address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), cfg.RegistryAddress())
}
