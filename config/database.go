package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/artw-company/l14/models"
)

var Database *gorm.DB

// Connect opens the database and migrates the survey graph schema.
// DB_URL selects postgres; without it a local sqlite file is used so the
// service runs with no external dependencies.
func Connect() error {
	var err error

	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "survey.db"
		}
		log.Printf("Connect: DB_URL not set, using sqlite database at %s", path)
		Database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(
		&models.Survey{},
		&models.Question{},
		&models.Answer{},
		&models.QuestionAnswer{},
	)
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
