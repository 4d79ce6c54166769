package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" env-default:"8081"`
	DBDSN           string        `env:"DB_DSN" env-default:":memory:"` // in-process catalog, gone on restart
	TemplateDir     string        `env:"TEMPLATE_DIR" env-default:"./web/templates"`
	StaticDir       string        `env:"STATIC_DIR" env-default:"./web/static"`
	LogFile         string        `env:"LOG_FILE"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	LogEncoding     string        `env:"LOG_ENCODING" env-default:"json"`
	CurrencySymbol  string        `env:"CURRENCY_SYMBOL" env-default:"$"`
	DefaultLocation string        `env:"DEFAULT_LOCATION" env-default:"Local Farm"`
	BodyLimit       int           `env:"BODY_LIMIT" env-default:"33554432"` // 5 images x 5 MiB plus form fields
	DraftTTL        time.Duration `env:"DRAFT_TTL" env-default:"30m"`
	SeedDemo        bool          `env:"SEED_DEMO" env-default:"true"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration with every default applied and no env lookup.
func Defaults() Config {
	return Config{
		Port:            "8081",
		DBDSN:           ":memory:",
		TemplateDir:     "./web/templates",
		StaticDir:       "./web/static",
		LogLevel:        "info",
		LogEncoding:     "json",
		CurrencySymbol:  "$",
		DefaultLocation: "Local Farm",
		BodyLimit:       32 << 20,
		DraftTTL:        30 * time.Minute,
		SeedDemo:        true,
	}
}
