package database

import (
	"fmt"
	"net/url"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
)

// DSN returns the data source name for the configured driver.
func DSN(cfg *config.DatabaseConfig) string {
	switch cfg.Driver {
	case DriverSQLite:
		return SQLiteDSN(cfg.Path)
	default:
		if cfg.URL != "" {
			return cfg.URL
		}
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)
	}
}

// SQLiteDSN turns a file path into a modernc sqlite URI with the pragmas the
// store relies on.
func SQLiteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + path + "?" + q.Encode()
}
