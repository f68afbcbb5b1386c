package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	AWS         AWSConfig         `mapstructure:"aws"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Auth        AuthConfig        `mapstructure:"auth"`
	S3          S3Config          `mapstructure:"s3"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Otel        OtelConfig        `mapstructure:"otel"`
	Workflow    WorkflowConfig    `mapstructure:"workflow"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Environment  string        `mapstructure:"environment"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (s ServerConfig) IsDevelopment() bool { return s.Environment == EnvDevelopment }

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	TablePrefix string `mapstructure:"table_prefix"`
}

// RedisConfig configures the workflow template cache. An empty Addr
// disables the cache.
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	TemplateTTL time.Duration `mapstructure:"template_ttl"`
}

type AuthConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// S3Config configures photo uploads. An empty Bucket disables them.
type S3Config struct {
	Bucket     string        `mapstructure:"bucket"`
	Endpoint   string        `mapstructure:"endpoint"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type OtelConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
}

type WorkflowConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing priority. An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// DynamoDB Local does not validate credentials, but the SDK requires them.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table_prefix", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.template_ttl", 10*time.Minute)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 8*time.Hour)
	v.SetDefault("auth.issuer", "oficina-jobs")

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_ttl", 15*time.Minute)

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "oficina-jobs")
	v.SetDefault("otel.endpoint", "")

	v.SetDefault("workflow.catalog_path", "configs/workflow.yaml")
}

// bindEnvVars keeps the plain variable names used by the docker setup.
func bindEnvVars(v *viper.Viper) error {
	binds := map[string][]string{
		"server.port":                    {"PORT"},
		"server.environment":             {"APP_ENV"},
		"aws.region":                     {"AWS_REGION"},
		"aws.access_key_id":              {"AWS_ACCESS_KEY_ID"},
		"aws.secret_access_key":          {"AWS_SECRET_ACCESS_KEY"},
		"dynamodb.endpoint":              {"DYNAMODB_ENDPOINT"},
		"mercadopago.access_token":       {"MERCADOPAGO_ACCESS_TOKEN"},
		"mercadopago.mock":               {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"mercadopago.test_payer_email":   {"MERCADOPAGO_TEST_PAYER_EMAIL"},
		"mercadopago.test_payer_user_id": {"MERCADOPAGO_TEST_PAYER_USER_ID"},
		"auth.jwt_secret":                {"JWT_SECRET"},
		"otel.endpoint":                  {"OTEL_EXPORTER_OTLP_ENDPOINT"},
	}
	for key, envs := range binds {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("server.environment must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Server.Environment)
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required when auth is enabled")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	return nil
}
