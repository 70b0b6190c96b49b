package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		BuiltyStatsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr           string
		Password       string
		DB             int
		IdempotencyTTL time.Duration
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	Verification struct {
		Secret string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		EventsTopic     string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		BookingConfirmed BookingConfirmed
	}

	BookingConfirmed struct {
		ProcessTimeout time.Duration
	}

	Storage struct {
		Enabled         bool
		Endpoint        string
		Region          string
		Bucket          string
		AccessKeyID     string
		SecretAccessKey string
		UsePathStyle    bool
		PublicBaseURL   string
	}

	PDF struct {
		Enabled   bool
		RemoteURL string // ws://chrome:9222, пусто = локальный chrome
		Timeout   time.Duration
	}

	Config struct {
		LogLevel     string
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Redis        Redis
		Auth         Auth
		Verification Verification
		Kafka        Kafka
		Storage      Storage
		PDF          PDF
	}
)

// BrokerList splits the comma separated KAFKA_BROKERS list.
func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_BUILTY_STATS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bookingConfirmedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_BOOKING_CONFIRMED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idempotencyTTL, err := osGetEnvDuration("REDIS_IDEMPOTENCY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storageEnabled, err := osGetBool("STORAGE_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storagePathStyle, err := osGetBool("STORAGE_USE_PATH_STYLE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pdfEnabled, err := osGetBool("PDF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pdfTimeout, err := osGetEnvDuration("PDF_RENDER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			BuiltyStatsRefreshInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             redisDB,
			IdempotencyTTL: idempotencyTTL,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
		},
		Verification: Verification{
			Secret: os.Getenv("VERIFICATION_SECRET"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			EventsTopic:     os.Getenv("KAFKA_EVENTS_TOPIC"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				BookingConfirmed: BookingConfirmed{
					ProcessTimeout: bookingConfirmedTimeout,
				},
			},
		},
		Storage: Storage{
			Enabled:         storageEnabled,
			Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
			Region:          os.Getenv("STORAGE_REGION"),
			Bucket:          os.Getenv("STORAGE_BUCKET"),
			AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
			UsePathStyle:    storagePathStyle,
			PublicBaseURL:   os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		},
		PDF: PDF{
			Enabled:   pdfEnabled,
			RemoteURL: os.Getenv("PDF_CHROME_REMOTE_URL"),
			Timeout:   pdfTimeout,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.Redis.IdempotencyTTL == time.Duration(0) {
		return errors.New("REDIS_IDEMPOTENCY_TTL is required")
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET is required and must be at least 32 characters")
	}
	if len(cfg.Verification.Secret) < 32 {
		return errors.New("VERIFICATION_SECRET is required and must be at least 32 characters")
	}

	if cfg.Tasks.BuiltyStatsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_BUILTY_STATS_REFRESH_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Storage.Enabled {
		if cfg.Storage.Bucket == "" {
			return errors.New("STORAGE_BUCKET is required when STORAGE_ENABLED=true")
		}
		if cfg.Storage.Region == "" {
			return errors.New("STORAGE_REGION is required when STORAGE_ENABLED=true")
		}
		if cfg.Storage.PublicBaseURL == "" {
			return errors.New("STORAGE_PUBLIC_BASE_URL is required when STORAGE_ENABLED=true")
		}
	}

	if cfg.PDF.Enabled && cfg.PDF.Timeout == time.Duration(0) {
		return errors.New("PDF_RENDER_TIMEOUT is required when PDF_ENABLED=true")
	}

	return nil
}

// ValidateWorker checks the settings cmd/worker-booking-confirmed needs on top of Load.
func (cfg *Config) ValidateWorker() error {
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.BookingConfirmed.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_BOOKING_CONFIRMED_PROCESS_TIMEOUT is required")
	}
	return nil
}

// LoadDatabase reads only the POSTGRES_* block, used by the operator CLI.
func LoadDatabase() (*Database, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	if err := validateDatabase(cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg.Database, nil
}

// LoadAuth reads only the AUTH_JWT_* block, used by the operator CLI to issue dev tokens.
func LoadAuth() (*Auth, error) {
	auth := Auth{
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
	}
	if len(auth.JWTSecret) < 32 {
		return nil, errors.New("AUTH_JWT_SECRET is required and must be at least 32 characters")
	}
	return &auth, nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
