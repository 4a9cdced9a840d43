package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jonesaica/internal/config"
	"jonesaica/internal/database"
	"jonesaica/internal/domain/capture"
	"jonesaica/internal/domain/catalog"
	"jonesaica/internal/domain/intake"
	"jonesaica/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&catalog.Product{},
		&intake.Lead{},
		&intake.Quote{},
		&capture.VisitorFlag{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	catalogRepo := catalog.NewRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	intakeService := intake.NewService(intake.NewRepository(db), catalogRepo)
	intakeHandler := intake.NewHandler(intakeService)

	capturePolicy := capture.NewPolicy(capture.NewGormFlagStore(db), capture.Config{
		Trigger: capture.Trigger(cfg.CaptureTrigger),
		Delay:   cfg.CaptureDelay,
	})
	captureHandler := capture.NewHandler(capturePolicy)

	if cfg.SeedOnStartup {
		if _, err := catalogService.Seed(context.Background()); err != nil {
			log.Println("startup seed failed:", err)
		}
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Jonesaica Infrastructure Solutions API"})
		})

		catalogHandler.RegisterRoutes(api)
		intakeHandler.RegisterRoutes(api)
		captureHandler.RegisterRoutes(api)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
