package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override, e.g. FR_DATABASE_HOST
const EnvPrefix = "FR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads the configuration for the environment named by FR_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path that has it, applies defaults
// and FR_ environment overrides, and validates the result
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 60) // exports can take a while
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "finance-records.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 10)
	v.SetDefault("database.slowThreshold", 200)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "finance-records")
	v.SetDefault("auth.tokenTTL", 60*24*7)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic", "finance-records.events")
	v.SetDefault("events.writeTimeout", 5)
}

// getEnvironment determines the environment from FR_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the flat variable names used in deployments onto
// nested keys. AutomaticEnv covers the rest (FR_SERVER_PORT, ...).
func processEnvOverrides(v *viper.Viper) {
	flat := map[string]string{
		"FR_DB_DRIVER":        "database.driver",
		"FR_DB_HOST":          "database.host",
		"FR_DB_PORT":          "database.port",
		"FR_DB_USERNAME":      "database.username",
		"FR_DB_PASSWORD":      "database.password",
		"FR_DB_NAME":          "database.database",
		"FR_DB_SSL_MODE":      "database.sslMode",
		"FR_DB_PATH":          "database.path",
		"FR_JWT_SECRET":       "auth.jwtSecret",
		"FR_GOOGLE_CLIENT_ID": "auth.googleClientId",
		"FR_LOG_LEVEL":        "logger.level",
	}
	for env, key := range flat {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("FR_KAFKA_BROKERS"); brokers != "" {
		v.Set("events.brokers", strings.Split(brokers, ","))
		v.Set("events.enabled", true)
	}
}

// processDurations converts the unit-less numbers from the file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowThreshold *= time.Millisecond
	config.Database.RetryDelay *= time.Second

	config.Auth.TokenTTL *= time.Minute
	config.Events.WriteTimeout *= time.Second
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwtSecret must be at least 32 characters (FR_JWT_SECRET)")
	}
	if c.Auth.GoogleClientID == "" {
		return errors.New("auth.googleClientId is required (FR_GOOGLE_CLIENT_ID)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if c.Events.Enabled {
		if len(c.Events.Brokers) == 0 {
			return errors.New("events.brokers is required when events are enabled")
		}
		if c.Events.Topic == "" {
			return errors.New("events.topic is required when events are enabled")
		}
	}
	return nil
}
