package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const envPrefix = "ledger"

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type PostgresConfig struct {
	Address  string `envconfig:"ADDRESS" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5433"`
	DB       string `envconfig:"DB" default:"postgres"`
	Username string `envconfig:"USERNAME" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"testpassword"`
}

type Config struct {
	DataDir          string         `envconfig:"DATA_DIR" default:"data"`
	AccountsFile     string         `envconfig:"ACCOUNTS_FILE" default:"accounts.json"`
	TransactionsFile string         `envconfig:"TRANSACTIONS_FILE" default:"transactions.json"`
	Storage          string         `envconfig:"STORAGE" default:"file"`
	LogLevel         string         `envconfig:"LOG_LEVEL" default:"warn"`
	Postgres         PostgresConfig `envconfig:"POSTGRES"`
}

// ProcessEnvironmentVariables reads an optional .env file and then the
// LEDGER_* environment. Defaults match a local docker compose setup.
func ProcessEnvironmentVariables(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("Config.ProcessEnvironmentVariables.no .env file")
	}

	var env Config
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, err
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StoragePostgres:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.AccountsFile == "" || c.TransactionsFile == "" {
		return fmt.Errorf("config: artifact file names must not be empty")
	}

	return nil
}

func (c *Config) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsFile)
}

func (c *Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}

func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.Postgres.Username + ":" +
		c.Postgres.Password + "@" + c.Postgres.Address + ":" +
		c.Postgres.Port + "/" + c.Postgres.DB + "?sslmode=disable"
}
