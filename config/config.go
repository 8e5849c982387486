package config

import (
	"fmt"
	"log"
	"os"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv loads .env and fails fast on configuration the process cannot
// run without.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate is shared between InitDB and the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SocialAccount{},
		&models.RefreshToken{},
		&models.Food{},
		&models.Recipe{},
		&models.RecipeStep{},
		&models.DetectionResult{},
		&models.Review{},
		&models.Bookmark{},
		&models.UserLog{},
		&models.UserIngredientInput{},
		&models.UserIngredientInputRecipe{},
		&models.SearchLog{},
		&models.SearchRanking{},
	)
}
