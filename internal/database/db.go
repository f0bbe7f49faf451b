package database

import (
	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. A failure here
// terminates the process; the API is useless without its store.
func Connect(dsn string, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	log.Info("database connection established")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Company{},
		&models.Application{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	return db
}
