package config

import (
	"strings"
	"time"

	"commerce/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultMaxRetries         = 3
	defaultInitialInterval    = 50 * time.Millisecond
	defaultMaxInterval        = time.Second
	defaultMetricsNamespace   = "commerce"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Checkout configuration for cart pricing and order assembly
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Transaction configuration for retrying transient database failures
	Transaction *TransactionConfig `json:"transaction" yaml:"transaction"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SlowQueryThreshold marks SQL statements logged as slow; 0 uses the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// CheckoutConfig defines how cart lines are priced when an order is assembled
type CheckoutConfig struct {
	// PricePolicy is "snapshot" (use the price captured when the line was added)
	// or "live" (re-resolve the current catalog price at checkout)
	PricePolicy string `json:"pricePolicy" yaml:"pricePolicy"`

	// DefaultCurrency is applied to orders placed without an explicit currency
	DefaultCurrency string `json:"defaultCurrency" yaml:"defaultCurrency"`
}

// TransactionConfig defines the bounded retry applied to transient transaction failures
type TransactionConfig struct {
	MaxRetries      int           `json:"maxRetries" yaml:"maxRetries"`
	InitialInterval time.Duration `json:"initialInterval" yaml:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval" yaml:"maxInterval"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus collectors exposed on /metrics
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// New loads config/config.yaml with environment overrides, fills defaults and
// rejects settings the checkout path cannot run with.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if strings.TrimSpace(cfg.Checkout.PricePolicy) == "" {
		cfg.Checkout.PricePolicy = constants.PricePolicySnapshot
	}
	if strings.TrimSpace(cfg.Checkout.DefaultCurrency) == "" {
		cfg.Checkout.DefaultCurrency = constants.DefaultCurrency
	}
	cfg.Checkout.DefaultCurrency = strings.ToUpper(strings.TrimSpace(cfg.Checkout.DefaultCurrency))

	if cfg.Transaction == nil {
		cfg.Transaction = &TransactionConfig{MaxRetries: defaultMaxRetries}
	}
	cfg.Transaction.MaxRetries = max(cfg.Transaction.MaxRetries, 0)
	if cfg.Transaction.InitialInterval <= 0 {
		cfg.Transaction.InitialInterval = defaultInitialInterval
	}
	if cfg.Transaction.MaxInterval <= 0 {
		cfg.Transaction.MaxInterval = defaultMaxInterval
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderNoop}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if strings.TrimSpace(cfg.Metrics.Namespace) == "" {
		cfg.Metrics.Namespace = defaultMetricsNamespace
	}
}

func (c *Config) validate() error {
	switch c.Checkout.PricePolicy {
	case constants.PricePolicySnapshot, constants.PricePolicyLive:
	default:
		return errors.Errorf("checkout.pricePolicy must be %q or %q, got %q",
			constants.PricePolicySnapshot, constants.PricePolicyLive, c.Checkout.PricePolicy)
	}

	if len(c.Checkout.DefaultCurrency) != 3 {
		return errors.Errorf("checkout.defaultCurrency must be a 3-letter code, got %q", c.Checkout.DefaultCurrency)
	}

	if c.Transaction.MaxInterval < c.Transaction.InitialInterval {
		return errors.New("transaction.maxInterval must not be shorter than transaction.initialInterval")
	}

	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d is out of range", c.HTTP.Port)
	}

	return nil
}
