package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"endpoint_addr_grpc": ":7000",
		"database_dsn": "postgres://json",
		"jwt_secret": "json-secret",
		"token_ttl": "30m",
		"bcrypt_cost": 11,
		"renew_on_verify": false
	}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, "json-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.False(t, cfg.RenewOnVerify)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"jwt_secret": "only-this"}`)
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "only-this", cfg.JWTSecret)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.RenewOnVerify)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
