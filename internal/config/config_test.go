package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TemplateTTL)
	assert.Equal(t, "configs/workflow.yaml", cfg.Workflow.CatalogPath)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("DYNAMODB_TABLE_PREFIX", "test_")
	t.Setenv("REDIS_TEMPLATE_TTL", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
	assert.True(t, cfg.MercadoPago.Mock)
	assert.Equal(t, "test_", cfg.DynamoDB.TablePrefix)
	assert.Equal(t, 30*time.Second, cfg.Redis.TemplateTTL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9090\n  environment: production\ns3:\n  bucket: photos\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "photos", cfg.S3.Bucket)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, Environment: EnvProduction},
			Auth:   AuthConfig{TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, true},
		{"auth without secret", func(c *Config) { c.Auth.Enabled = true }, true},
		{"auth with secret", func(c *Config) { c.Auth.Enabled = true; c.Auth.JWTSecret = "s" }, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
