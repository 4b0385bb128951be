package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds everything the process needs at startup. There are no
// compiled-in fallbacks for secrets: JWT_SECRET must be set.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"wdmecomm"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	TaxRate     string `envconfig:"TAX_RATE" default:"0.085"`
	DeliveryFee string `envconfig:"DELIVERY_FEE" default:"5.00"`

	OpenAIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-4-turbo"`

	UploadsDir string `envconfig:"UPLOADS_DIR" default:"public/uploads"`
	BackupDir  string `envconfig:"BACKUP_DIR" default:"public/backup/uploads"`
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds the postgres connection string. DATABASE_URL wins when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// PricingRates parses the tax rate and delivery fee as exact decimals.
func (c Config) PricingRates() (taxRate, deliveryFee decimal.Decimal, err error) {
	taxRate, err = decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid TAX_RATE %q: %w", c.TaxRate, err)
	}
	deliveryFee, err = decimal.NewFromString(c.DeliveryFee)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid DELIVERY_FEE %q: %w", c.DeliveryFee, err)
	}
	return taxRate, deliveryFee, nil
}
