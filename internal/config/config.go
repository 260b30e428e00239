package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"paygate/pkg/e"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `yaml:"env"`
	Http     HTTPConfig     `yaml:"http"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Gateway  GatewayConfig  `yaml:"gateway"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type RedisConfig struct {
	Addrs    []string      `yaml:"addrs"`
	Password string        `yaml:"password"`
	DBRedis  int           `yaml:"db_redis"`
	PromoTTL time.Duration `yaml:"promo_ttl" env-default:"5m"`
}

type PostgresConfig struct {
	PostgresURL string `env:"POSTGRES_URL"`
}

type KafkaConfig struct {
	BrokerList                    []string      `yaml:"brokers"`
	Topic                         string        `yaml:"topic"`
	PaymentTopic                  string        `yaml:"payment_topic"`
	InitialBackoff                time.Duration `yaml:"initial_backoff"`
	MaxRetries                    int           `yaml:"max_retries"`
	TreatUnmarshalErrorAsCritical bool          `yaml:"treatUnmarshalErrorAsCritical"`
	ConsumerGroup                 string        `yaml:"consumer_group"`
}

// GatewayConfig holds the merchant credentials for the payment gateway.
// The shared secret never comes from yaml, only from the environment.
type GatewayConfig struct {
	Endpoint    string        `yaml:"endpoint" env:"GATEWAY_ENDPOINT"`
	PartnerCode string        `yaml:"partner_code" env:"GATEWAY_PARTNER_CODE"`
	AccessKey   string        `yaml:"access_key" env:"GATEWAY_ACCESS_KEY"`
	SecretKey   string        `env:"GATEWAY_SECRET_KEY"`
	RedirectURL string        `yaml:"redirect_url"`
	IpnURL      string        `yaml:"ipn_url"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
}

// Validate fails fast on a missing credential so a request is never built
// with an incomplete set and a silently wrong signature.
func (g GatewayConfig) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"endpoint", g.Endpoint},
		{"partner_code", g.PartnerCode},
		{"access_key", g.AccessKey},
		{"secret_key", g.SecretKey},
		{"redirect_url", g.RedirectURL},
		{"ipn_url", g.IpnURL},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: missing %s", e.ErrConfiguration, r.name)
		}
	}

	return nil
}

func LoadConfig() (*Config, error) {
	configPath := fetchConfigPath()

	if configPath == "" {
		return nil, fmt.Errorf("config file is empty")
	}

	return LoadPath(configPath)
}

func LoadPath(configPath string) (*Config, error) {
	// .env is optional; credentials may already be in the environment
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %v", configPath)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read the config: %w", err)
	}

	cfg.Postgres.PostgresURL = os.Getenv("POSTGRES_URL")
	if v := os.Getenv("GATEWAY_SECRET_KEY"); v != "" {
		cfg.Gateway.SecretKey = v
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configPath")
	flag.Parse()

	if configPath == "" {
		configPath = "local.yaml"
	}
	return configPath
}
