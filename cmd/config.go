package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	JWTSecret        string
	CustomerTokenTTL time.Duration
	OTPTTL           time.Duration

	SMSGatewayURL   string
	SMSGatewayToken string

	FrontendOrigins []string
	DeliveryFee     kernel.Money
	LowStockCron    string
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads .env when present and then the process environment.
// Unset variables take their defaults; malformed ones are reported together.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	intVar := func(key string, def int) int {
		v, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(getenv(key, def.String()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}

	cfg := Config{
		HTTPPort: getenv("HTTP_PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "campusdelivery"),
		DBSslMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       intVar("REDIS_DB", 0),

		KafkaBrokers:          splitList(getenv("KAFKA_BROKERS", "")),
		KafkaOrderEventsTopic: getenv("KAFKA_ORDER_EVENTS_TOPIC", "order.events"),

		JWTSecret:        getenv("JWT_SECRET", ""),
		CustomerTokenTTL: durationVar("CUSTOMER_TOKEN_TTL", 24*time.Hour),
		OTPTTL:           durationVar("OTP_TTL", 5*time.Minute),

		SMSGatewayURL:   getenv("SMS_GATEWAY_URL", ""),
		SMSGatewayToken: getenv("SMS_GATEWAY_TOKEN", ""),

		FrontendOrigins: splitList(getenv("FRONTEND_ORIGIN", "http://localhost:5173")),
		LowStockCron:    getenv("LOW_STOCK_CRON", "0 */15 * * * *"),
	}

	fee, err := kernel.MoneyFromString(getenv("DELIVERY_FEE", "0.00"))
	if err != nil {
		errs = append(errs, fmt.Errorf("DELIVERY_FEE: %w", err))
	}
	cfg.DeliveryFee = fee

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.OTPTTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be positive"))
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
