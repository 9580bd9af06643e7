package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"herbarium/internal/config"
	"herbarium/models"
)

// Initialize opens a PostgreSQL-backed gorm handle using the provided
// configuration and tunes the underlying connection pool. The handle is
// returned to the caller and owned by it; there is no package-level state.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("database URL must not be empty")
	}

	database, err := gorm.Open(postgres.Open(cfg.URL), Options())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return database, nil
}

// Options returns the gorm configuration shared by the PostgreSQL and the
// in-memory backends. TranslateError is required so constraint violations
// surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated regardless
// of driver.
func Options() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// AutoMigrate creates or updates the schema for every model in the catalog.
func AutoMigrate(database *gorm.DB) error {
	if database == nil {
		return fmt.Errorf("database handle is nil")
	}

	return database.AutoMigrate(
		&models.Plant{},
		&models.PlantPart{},
		&models.MedicinalProperty{},
		&models.WesternProperty{},
		&models.AyurvedicProperty{},
		&models.TCMProperty{},
		&models.HerbalAction{},
		&models.CulinaryUse{},
		&models.CutFlowerTrait{},
		&models.Treatment{},
		&models.SeedSaving{},
		&models.GardenPlot{},
		&models.GardenBed{},
		&models.Planting{},
		&models.PlantingPlant{},
		&models.CropRotation{},
	)
}

// Configure opens and migrates the production database in one step.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Close releases the connection pool behind a gorm handle.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
