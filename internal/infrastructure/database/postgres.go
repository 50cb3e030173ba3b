package database

import (
	"errors"
	"fmt"
	"net/url"

	"redeem-clinic-api/config"
	"redeem-clinic-api/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	logMode := logger.Silent
	if cfg.Logging {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// RunMigrations applies the SQL migrations under db/migrations. Already
// applied versions are skipped.
func RunMigrations(cfg config.DBConfig) error {
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name,
	)

	m, err := migrate.New("file://db/migrations", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations applied")
	return nil
}

// Sync lets GORM reconcile the schema with the entity definitions. Meant for
// development; production schemas come from the SQL migrations.
func Sync(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Network{},
		&entity.Account{},
		&entity.Adresses{},
		&entity.Establishment{},
		&entity.Scheduling{},
		&entity.Handbook{},
		&entity.Attachment{},
		&entity.AccountContact{},
		&entity.AccountNetwork{},
	)
}
