package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP            HTTPConfig            `yaml:"http"`
	GRPC            GRPCConfig            `yaml:"grpc"`
	Database        DatabaseConfig        `yaml:"database"`
	Redis           RedisConfig           `yaml:"redis"`
	Kafka           KafkaConfig           `yaml:"kafka"`
	Booking         BookingConfig         `yaml:"booking"`
	Payment         PaymentConfig         `yaml:"payment"`
	Hotels          HotelsConfig          `yaml:"hotels"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Auth            AuthConfig            `yaml:"auth"`
	Log             LogConfig             `yaml:"log"`
	Worker          WorkerConfig          `yaml:"worker"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ReservationTopic   string   `yaml:"reservation_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	FlightsCacheTTL  int  `yaml:"flights_cache_ttl_seconds"`
	EnforceInventory bool `yaml:"enforce_inventory"`
	CheckoutLockTTL  int  `yaml:"checkout_lock_ttl_seconds"`
}

type PaymentConfig struct {
	BaseURL          string `yaml:"base_url"`
	SecretKey        string `yaml:"secret_key"`
	WebhookSecret    string `yaml:"webhook_secret"`
	Currency         string `yaml:"currency"`
	SuccessURL       string `yaml:"success_url"`
	CancelURL        string `yaml:"cancel_url"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	WebhookTolerance int    `yaml:"webhook_tolerance_seconds"`
}

type HotelsConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	APISecret      string `yaml:"api_secret"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RecommendationsConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type WorkerConfig struct {
	CacheRefreshSchedule string `yaml:"cache_refresh_schedule"`
}

func (p PaymentConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func (h HotelsConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

func (r RecommendationsConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// LoadConfig reads the YAML file at path. Values from an optional .env file
// and the process environment override the secrets in it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080"},
		GRPC: GRPCConfig{Address: ":9090"},
		Booking: BookingConfig{
			FlightsCacheTTL:  60,
			EnforceInventory: true,
			CheckoutLockTTL:  30,
		},
		Payment: PaymentConfig{
			BaseURL:          "https://api.stripe.com",
			Currency:         "eur",
			TimeoutSeconds:   10,
			WebhookTolerance: 300,
		},
		Hotels: HotelsConfig{
			BaseURL:        "https://test.api.amadeus.com",
			TimeoutSeconds: 10,
		},
		Recommendations: RecommendationsConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 5,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 7,
			MaxAgeDays: 7,
		},
		Worker: WorkerConfig{CacheRefreshSchedule: "@every 5m"},
	}
}

func applyEnv(cfg *Config) {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&cfg.Database.Password, "DB_PASSWORD")
	override(&cfg.Payment.SecretKey, "STRIPE_SECRET")
	override(&cfg.Payment.WebhookSecret, "STRIPE_WEBHOOK_SECRET")
	override(&cfg.Hotels.APIKey, "AMADEUS_API_KEY")
	override(&cfg.Hotels.APISecret, "AMADEUS_API_SECRET")
	override(&cfg.Auth.JWTSecret, "JWT_SECRET")
}
