package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: tripbook
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 15s
payment:
  keyId: rzp_test
  keySecret: from-file
pubsub:
  provider: local
  localEndpoint: http://localhost:8081/push
mail:
  templates:
    booking_cancelled: template_cancel
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("PAYMENT_KEYSECRET", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Payment)
	assert.Equal(t, "rzp_test", cfg.Payment.KeyID)
	assert.Equal(t, "from-env", cfg.Payment.KeySecret)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "local", cfg.PubSub.Provider)
	require.NotNil(t, cfg.Mail)
	assert.Equal(t, "template_cancel", cfg.Mail.Templates["booking_cancelled"])
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Redis:   &RedisConfig{Enabled: true},
		Payment: &PaymentConfig{},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Media)
	assert.EqualValues(t, defaultUploadMaxBytes, cfg.Media.MaxBytes)
	require.NotNil(t, cfg.Outbox)
	assert.True(t, cfg.Outbox.Enabled)
	assert.Equal(t, defaultOutboxInterval, cfg.Outbox.Interval)
	assert.Equal(t, defaultOutboxBatchSize, cfg.Outbox.BatchSize)
	assert.Equal(t, defaultOutboxMaxAttempts, cfg.Outbox.MaxAttempts)
	assert.Equal(t, defaultStatsCacheTTL, cfg.Redis.StatsTTL)
	assert.Equal(t, "INR", cfg.Payment.Currency)
}
