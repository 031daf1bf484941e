package database

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

// tables lists every catalog table in the order they are created.
var tables = []interface{}{
	&models.Movie{},
	&models.Director{},
	&models.Genre{},
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DriverSQLite, "":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool
	maxOpen := cfg.MaxOpenConns
	if cfg.Driver != config.DriverPostgres {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY under load.
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.WithField("driver", dialector.Name()).Info("Database connection established successfully")

	database := New(db, cfg)

	if err := database.Migrate(ctx); err != nil {
		logrus.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return database, nil
}

// GormConfig is shared by Connect and tests that open their own dialector.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Movies may reference directors and genres that do not exist.
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt: true,
	}
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 10 * time.Second
	}
	return &Database{
		DB:     db,
		config: cfg,
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// Migrate creates missing tables and columns. It never drops anything.
func (d *Database) Migrate(ctx context.Context) error {
	logrus.Info("Running auto migration...")

	if err := d.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}

// Reset drops every catalog table and recreates the empty schema.
func (d *Database) Reset(ctx context.Context) error {
	logrus.Warn("Dropping all catalog tables")

	if err := d.WithContext(ctx).Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return d.Migrate(ctx)
}

// SyncSequences advances postgres id sequences past rows inserted with explicit ids.
// sqlite derives the next rowid from MAX(rowid) and needs nothing.
func (d *Database) SyncSequences(ctx context.Context) error {
	if d.Dialector.Name() != config.DriverPostgres {
		return nil
	}

	for _, table := range []string{"movies", "directors", "genres"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table,
		)
		if err := d.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to sync %s id sequence: %w", table, err)
		}
	}
	return nil
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
