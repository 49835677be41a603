package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server      ServerConfig
	DynamoDB    DynamoDBConfig
	Billing     BillingConfig
	MercadoPago MercadoPagoConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DynamoDBConfig points the service at a DynamoDB endpoint. Endpoint is only
// set for local runs (dynamodb-local).
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          TableNames
}

type TableNames struct {
	Orders      string
	Payments    string
	Commissions string
	Withdrawals string
	Settings    string
}

type BillingConfig struct {
	// DefaultCommissionRate applies until a rate is stored in settings.
	DefaultCommissionRate decimal.Decimal
	CurrencySymbol        string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

func Load() (*Config, error) {
	godotenv.Load()

	rate, err := decimal.NewFromString(getEnv("DEFAULT_COMMISSION_RATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_COMMISSION_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("invalid DEFAULT_COMMISSION_RATE: %s is outside 0..100", rate.String())
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Tables: TableNames{
				Orders:      getEnv("ORDERS_TABLE", "orders"),
				Payments:    getEnv("PAYMENTS_TABLE", "payments"),
				Commissions: getEnv("COMMISSIONS_TABLE", "commission_records"),
				Withdrawals: getEnv("WITHDRAWALS_TABLE", "withdrawals"),
				Settings:    getEnv("SETTINGS_TABLE", "settings"),
			},
		},
		Billing: BillingConfig{
			DefaultCommissionRate: rate,
			CurrencySymbol:        getEnv("CURRENCY_SYMBOL", "$"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:        getEnvBool("PAYMENT_GATEWAY_MOCK", false) || getEnvBool("MERCADOPAGO_MOCK", false),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("[config] invalid duration key=%s value=%q, using default=%s", key, value, defaultValue)
	}
	return defaultValue
}
