package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  start_block: 23000000
cursor:
  save_freq: 25
  save_delay: "10s"
protocol_path: "config/protocol.json"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "ws://localhost:8545", cfg.Ethereum.WebSocketURL)
				assert.Equal(t, uint64(23000000), cfg.Ethereum.StartBlock)
				assert.Equal(t, uint64(25), cfg.Cursor.SaveFreq)
				assert.Equal(t, 10*time.Second, cfg.Cursor.SaveDelay)
				assert.Equal(t, "config/protocol.json", cfg.ProtocolPath)
			},
		},
		{
			name: "defaults applied",
			configFile: `
ethereum:
  websocket_url: "ws://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "USDAF_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "ethereum", cfg.Ethereum.Chain)
				assert.Equal(t, uint64(10), cfg.Cursor.SaveFreq)
				assert.Equal(t, 5*time.Second, cfg.Cursor.SaveDelay)
				assert.Equal(t, "config/protocol.json", cfg.ProtocolPath)
			},
		},
		{
			name: "missing websocket url",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
ethereum:
  websocket_url: "ws://localhost:8545"
  start_block: invalid
`,
			expectError: true, // Invalid block number should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEmitterConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadProcessorConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *ProcessorConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  consumer_name: "test-processor"
  ack_wait: "45s"
  max_deliver: 7
ethereum:
  rpc_url: "http://localhost:8545"
pricing:
  base_url: "http://localhost:9000"
  timeout: "15s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ProcessorConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "test-processor", cfg.NATS.ConsumerName)
				assert.Equal(t, 45*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 7, cfg.NATS.MaxDeliver)
				assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
				assert.Equal(t, "http://localhost:9000", cfg.Pricing.BaseURL)
				assert.Equal(t, 15*time.Second, cfg.Pricing.Timeout)
			},
		},
		{
			name: "defaults applied",
			configFile: `
ethereum:
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ProcessorConfig) {
				assert.Equal(t, "USDAF_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "ledger-processor", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Empty(t, cfg.Pricing.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.Pricing.Timeout)
			},
		},
		{
			name: "missing rpc url",
			configFile: `
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadProcessorConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}

	// ReadPort falls back to Port when unset
	assert.Equal(t, "host=replica port=5432 user=user password=pass dbname=db sslmode=disable", config.ReadDSN())

	config.ReadPort = 5433
	assert.Equal(t, "host=replica port=5433 user=user password=pass dbname=db sslmode=disable", config.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses USDAF_INDEXER_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `USDAF_INDEXER_DEBUG=true
USDAF_INDEXER_DATABASE_HOST=env-host
USDAF_INDEXER_DATABASE_PORT=3306
USDAF_INDEXER_DATABASE_USER=env-user
USDAF_INDEXER_DATABASE_PASSWORD=env-pass
USDAF_INDEXER_DATABASE_DBNAME=env-db
USDAF_INDEXER_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
ethereum:
  rpc_url: "http://localhost:8545"
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadProcessorConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values.
	// The .env file is loaded via godotenv.Overload, which sets actual environment
	// variables; viper's AutomaticEnv then picks them up with the prefix.
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
