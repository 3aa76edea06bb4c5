package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=fxpulse
//	RATES_BASE_URL=https://api.frankfurter.app
//	RATES_FALLBACK_DAYS=7
//	OUTPUT_FILENAME=extracted_amounts.csv
//	PERSIST_RECORDS=false
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Rates    RatesConfig    // Historical exchange rate source
	Output   OutputConfig   // Extraction output
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// RatesConfig configures the USD→CAD rate lookup.
//
// Fields:
//   - BaseURL: Frankfurter-compatible API root.
//   - Timeout: per-request HTTP timeout.
//   - FallbackDays: how many prior days are searched when a date has no rate.
//   - MaxRetries: retries after a transient source failure.
//   - RequestsPerSecond: outbound pacing, 0 disables it.
//   - SkipClosedDays: do not query weekends and publisher holidays.
type RatesConfig struct {
	BaseURL           string
	Timeout           time.Duration
	FallbackDays      int
	MaxRetries        int
	RequestsPerSecond float64
	SkipClosedDays    bool
}

// OutputConfig names the files written next to the input documents and
// whether the dataset is also stored in PostgreSQL.
type OutputConfig struct {
	Filename        string
	SkippedFilename string
	Persist         bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "fxpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("RATES_BASE_URL", "https://api.frankfurter.app")
	viper.SetDefault("RATES_TIMEOUT", "10s")
	viper.SetDefault("RATES_FALLBACK_DAYS", 7)
	viper.SetDefault("RATES_MAX_RETRIES", 3)
	viper.SetDefault("RATES_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("RATES_SKIP_CLOSED_DAYS", false)

	viper.SetDefault("OUTPUT_FILENAME", "extracted_amounts.csv")
	viper.SetDefault("SKIPPED_FILENAME", "skipped_files.csv")
	viper.SetDefault("PERSIST_RECORDS", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Rates: RatesConfig{
			BaseURL:           viper.GetString("RATES_BASE_URL"),
			Timeout:           viper.GetDuration("RATES_TIMEOUT"),
			FallbackDays:      viper.GetInt("RATES_FALLBACK_DAYS"),
			MaxRetries:        viper.GetInt("RATES_MAX_RETRIES"),
			RequestsPerSecond: viper.GetFloat64("RATES_REQUESTS_PER_SECOND"),
			SkipClosedDays:    viper.GetBool("RATES_SKIP_CLOSED_DAYS"),
		},
		Output: OutputConfig{
			Filename:        viper.GetString("OUTPUT_FILENAME"),
			SkippedFilename: viper.GetString("SKIPPED_FILENAME"),
			Persist:         viper.GetBool("PERSIST_RECORDS"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the application with log.Fatalf when a required
// variable is missing or out of range.
func validateConfig() {
	if problems := checkConfig(AppConfig); len(problems) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", problems)
	}
}

// checkConfig lists the variables that are missing or out of range.
func checkConfig(c Config) []string {
	var problems []string

	if c.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if c.Postgres.Host == "" {
		problems = append(problems, "POSTGRES_HOST")
	}
	if c.Postgres.Port == 0 {
		problems = append(problems, "POSTGRES_PORT")
	}
	if c.Postgres.User == "" {
		problems = append(problems, "POSTGRES_USER")
	}
	if c.Postgres.DBName == "" {
		problems = append(problems, "POSTGRES_DB")
	}
	if c.Rates.BaseURL == "" {
		problems = append(problems, "RATES_BASE_URL")
	}
	if c.Rates.Timeout <= 0 {
		problems = append(problems, "RATES_TIMEOUT")
	}
	if c.Rates.FallbackDays < 1 {
		problems = append(problems, "RATES_FALLBACK_DAYS")
	}
	if c.Rates.MaxRetries < 0 {
		problems = append(problems, "RATES_MAX_RETRIES")
	}
	if c.Rates.RequestsPerSecond < 0 {
		problems = append(problems, "RATES_REQUESTS_PER_SECOND")
	}
	if c.Output.Filename == "" {
		problems = append(problems, "OUTPUT_FILENAME")
	}

	return problems
}
