package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/mx-space/blog-summarizer/internal/config"
	"github.com/mx-space/blog-summarizer/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDisabled is returned by Connect when no structured store is configured.
var ErrDisabled = errors.New("structured store is not configured")

// Connect opens the MySQL structured store and migrates the summaries table.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	dsn := cfg.Database.DSNValue()
	if dsn == "" {
		return nil, ErrDisabled
	}

	db, err := openDB(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 191,
	}), resolveLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// OpenConn wraps an existing connection pool without migrating.
func OpenConn(conn gorm.ConnPool) (*gorm.DB, error) {
	return openDB(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), logger.Silent)
}

// Ping checks the underlying connection.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool. A nil db is ignored.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}
	return sqlDB.Close()
}

func closeDB(db *gorm.DB) {
	_ = Close(db)
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}

func openDB(dialector gorm.Dialector, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.SummaryModel{})
}
