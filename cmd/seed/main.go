package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"jonesaica/internal/database"
	"jonesaica/internal/domain/capture"
	"jonesaica/internal/domain/catalog"
	"jonesaica/internal/domain/intake"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "jonesaica.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&catalog.Product{},
		&intake.Lead{},
		&intake.Quote{},
		&capture.VisitorFlag{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	service := catalog.NewService(catalog.NewRepository(db))
	inserted, err := service.Seed(context.Background())
	if err != nil {
		log.Fatal("Seed failed:", err)
	}

	if inserted == 0 {
		log.Println("Catalog already seeded, nothing to do")
		return
	}
	log.Printf("Seeded %d products", inserted)
}
