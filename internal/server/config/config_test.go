package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.RenewOnVerify)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server"}
	defer func() { os.Args = origArgs }()

	t.Setenv("GRPC_ADDRESS", ":6000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RENEW_ON_VERIFY", "false")

	cfg := LoadConfig()

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 45*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.RenewOnVerify)
}

func TestLoadConfig_SubMinuteEnvTTLSurvivesFlagLayer(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server"}
	defer func() { os.Args = origArgs }()

	t.Setenv("TOKEN_TTL", "45s")

	cfg := LoadConfig()

	assert.Equal(t, 45*time.Second, cfg.TokenTTL)
}
