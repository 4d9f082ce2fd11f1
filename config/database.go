package config

import (
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/markoub/careers/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDatabase opens the database named by DATABASE_URL. A postgres URI
// (or key=value DSN) selects the hosted driver; anything else is taken
// as a SQLite file path for local runs. The choice is made once here
// and never inspected again.
func InitDatabase(url string) error {
	if url == "" {
		return errors.New("DATABASE_URL environment variable is not set")
	}

	var dial gorm.Dialector
	isPostgres := strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.Contains(url, "host=")
	if isPostgres {
		dial = postgres.Open(url)
	} else {
		dial = sqlite.Open(url)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if isPostgres {
		// Connection Pooling settings
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.Position{}, &models.Application{}, &models.AdminUser{}); err != nil {
		return err
	}

	DB = db
	return nil
}
