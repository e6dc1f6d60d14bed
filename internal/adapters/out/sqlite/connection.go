package sqlite

import (
	"fmt"

	"fleet/internal/adapters/out/sqlite/containerrepo"
	"fleet/internal/adapters/out/sqlite/shiprepo"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN keeps the registry in memory for the lifetime of the process.
const DefaultDSN = "file::memory:?cache=shared"

// NewConnection opens the registry database and migrates its schema.
//
// The pool is capped at one connection: an in-memory SQLite database lives only
// as long as the connection that created it, and the fleet has one writer.
func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err = AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the ships and containers tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&shiprepo.ShipDTO{}, &containerrepo.ContainerDTO{})
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
