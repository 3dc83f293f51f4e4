package db

import (
	"fmt"

	"github.com/provlabs/funding-trading-bridge/db/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDbConnect connects to the database according to the passed in parameters
func PostgresDbConnect(host string, port string, database string, user string, password string, level string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable", host, port, database, user, password)
	gormLogLevel := logger.Silent

	if level == "info" {
		gormLogLevel = logger.Info
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(gormLogLevel)})
}

// MigrateModels runs the gorm automigrations with all the db models. This will migrate as needed and do nothing if nothing has changed.
func MigrateModels(db *gorm.DB) error {
	if err := migrateStateModels(db); err != nil {
		return err
	}

	return migrateExchangeModels(db)
}

func migrateStateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ContractState{},
	)
}

func migrateExchangeModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Exchange{},
	)
}
