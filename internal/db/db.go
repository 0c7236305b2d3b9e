package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/streamlinelabs/backend/internal/logging"
	"github.com/streamlinelabs/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const pingTimeout = 5 * time.Second

// Initialize opens the database connection and runs migrations.
// DATABASE_URL may be a postgres:// URL or a SQLite file path.
func Initialize(databaseURL string) (*gorm.DB, error) {
	log := logging.GetLogger()

	var dialector gorm.Dialector
	if isPostgres(databaseURL) {
		log.Info("Connecting to PostgreSQL database...")
		dialector = postgres.Open(databaseURL)
	} else {
		log.Info("Connecting to SQLite database: %s", databaseURL)
		sqlDB, err := sql.Open("sqlite", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        databaseURL,
			Conn:       sqlDB,
		}
	}

	gormConfig := &gorm.Config{
		// Keep SQL out of the logs; errors still surface to callers
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	database, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ping(database); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	log.Info("Running database migrations...")
	if err := database.AutoMigrate(&models.ContactMessage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database connected and migrated successfully")
	return database, nil
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func ping(database *gorm.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}
