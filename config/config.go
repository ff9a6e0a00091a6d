package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database connection described by the environment.
// DB_DRIVER selects mysql (default) or sqlite; DB_DSN overrides the
// discrete DB_* variables when set.
func InitDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if os.Getenv("GIN_MODE") == "release" {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("DB_DSN")
		if path == "" {
			path = "rms.db"
		}
		return gorm.Open(sqlite.Open(path), gormCfg)
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getEnv("DB_USER", "root"),
				os.Getenv("DB_PASS"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "rms"),
			)
		}
		return gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
