package database

import (
	"elswallet/config"
	"elswallet/models"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection. SQLite is the default;
// postgres can be selected with DB_DRIVER=postgres.
func ConnectDb() {
	var (
		db  *gorm.DB
		err error
	)

	switch config.AppConfig.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPass,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		// Foreign keys are off by default in sqlite; cascade deletes on the
		// transactions and payment_requests tables need them on.
		dsn := fmt.Sprintf("%s?_foreign_keys=on", config.AppConfig.DBName)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	logrus.Info("Running migrations...")

	err := db.AutoMigrate(
		&models.Wallet{},
		&models.Transaction{},
		&models.PaymentRequest{},
	)
	if err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Info("Migrations completed successfully.")
}
