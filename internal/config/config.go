package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type (
	Container struct {
		App      *App
		Token    *Token
		DB       *DB
		HTTP     *HTTP
		Redis    *Redis
		Registry *Registry
		Kafka    *Kafka
		Pricing  *Pricing
		Matching *Matching
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		CacheTTL time.Duration
	}

	Registry struct {
		Host     string
		BasePath string
		Scheme   string
		APIKey   string
		Timeout  time.Duration
	}

	Kafka struct {
		Brokers []string
		Topic   string
	}

	Pricing struct {
		Policy domain.PricingPolicy
	}

	Matching struct {
		CentreWeight   int
		DateWindowDays int
	}
)

// New reads the environment, loading .env first outside production. A
// missing .env file is not an error.
func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "testbuddy-marketplace"),
		Env:  getEnv("APP_ENV", "development"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getEnv("TOKEN_DURATION", "24h"),
	}

	db := &DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	cacheTTL, err := getDuration("REGISTRY_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		CacheTTL: cacheTTL,
	}

	registryTimeout, err := getDuration("REGISTRY_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	registry := &Registry{
		Host:     os.Getenv("REGISTRY_HOST"),
		BasePath: getEnv("REGISTRY_BASE_PATH", "/"),
		Scheme:   getEnv("REGISTRY_SCHEME", "https"),
		APIKey:   os.Getenv("REGISTRY_API_KEY"),
		Timeout:  registryTimeout,
	}

	kafka := &Kafka{
		Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
		Topic:   getEnv("KAFKA_SWAP_TOPIC", "swap-events"),
	}

	policy := domain.PricingPolicy(strings.ToLower(getEnv("PRICING_POLICY", string(domain.PolicyLenient))))
	if policy != domain.PolicyLenient && policy != domain.PolicyStrict {
		return nil, fmt.Errorf("PRICING_POLICY must be %q or %q, got %q", domain.PolicyLenient, domain.PolicyStrict, policy)
	}
	pricing := &Pricing{Policy: policy}

	centreWeight, err := getInt("MATCH_CENTRE_WEIGHT", 60)
	if err != nil {
		return nil, err
	}
	windowDays, err := getInt("MATCH_DATE_WINDOW_DAYS", 14)
	if err != nil {
		return nil, err
	}
	if centreWeight < 0 || centreWeight > 100 {
		return nil, fmt.Errorf("MATCH_CENTRE_WEIGHT must be between 0 and 100, got %d", centreWeight)
	}
	if windowDays <= 0 {
		return nil, fmt.Errorf("MATCH_DATE_WINDOW_DAYS must be positive, got %d", windowDays)
	}
	matching := &Matching{
		CentreWeight:   centreWeight,
		DateWindowDays: windowDays,
	}

	return &Container{
		App:      app,
		Token:    token,
		DB:       db,
		HTTP:     http,
		Redis:    redis,
		Registry: registry,
		Kafka:    kafka,
		Pricing:  pricing,
		Matching: matching,
	}, nil
}

// DSN is the lib/pq connection string.
func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (k *Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
