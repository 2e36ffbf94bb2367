package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string
	LogLevel string

	AnalysisWorkers int
	AnalysisTimeout time.Duration
	HistoryMonths   int
}

// ProcessEnvironmentVariables reads the configuration from the environment.
// A .env file in the working directory is loaded first when present; values
// already set in the environment win over it.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
		AnalysisWorkers:  4,
		AnalysisTimeout:  10 * time.Second,
		HistoryMonths:    6,
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")

	if err := setPositiveInt(&env.AnalysisWorkers, "ANALYSIS_WORKERS"); err != nil {
		return nil, err
	}
	if err := setPositiveInt(&env.HistoryMonths, "HISTORY_MONTHS"); err != nil {
		return nil, err
	}

	if value := os.Getenv("ANALYSIS_TIMEOUT"); len(value) != 0 {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("config.ProcessEnvironmentVariables: ANALYSIS_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("config.ProcessEnvironmentVariables: ANALYSIS_TIMEOUT must be positive, got %s", value)
		}
		env.AnalysisTimeout = timeout
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
// Credentials are escaped so passwords may contain URL delimiters.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func setPositiveInt(target *int, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %s: %w", key, err)
	}
	if parsed < 1 {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %s must be at least 1, got %d", key, parsed)
	}
	*target = parsed
	return nil
}
