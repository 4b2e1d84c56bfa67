package database

import (
	"fmt"

	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the application configuration to the
// database configuration. Zero values keep the defaults of DefaultConfig.
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	setString(&dbConf.Driver, src.Driver)
	setString(&dbConf.Host, src.Host)
	setString(&dbConf.Username, src.Username)
	setString(&dbConf.Password, src.Password)
	setString(&dbConf.Database, src.Database)
	setString(&dbConf.SSLMode, src.SSLMode)
	setString(&dbConf.Path, src.Path)
	setString(&dbConf.LogLevel, src.LogLevel)

	if port := ParsePort(src.Port); port > 0 {
		dbConf.Port = port
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.SlowThreshold > 0 {
		dbConf.SlowThreshold = src.SlowThreshold
	}
	if src.RetryAttempts > 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}

	return dbConf
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// ParsePort converts a port string to an int, returning 0 when it is not a valid port
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
