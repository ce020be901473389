package mysql

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luismlg/casfid-technical-test/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, tunes the pool and migrates the
// schema. SQL statement logging is only turned on in debug mode.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// AutoMigrate only adds tables and columns; production schema changes
	// go through versioned migrations.
	if err := db.AutoMigrate(&BookModel{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("database connected", slog.String("host", cfg.Database.Host), slog.String("dbname", cfg.Database.DBName))

	return db, nil
}
