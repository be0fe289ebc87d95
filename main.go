package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nadeemahmad9/real-estate/config"
	"github.com/nadeemahmad9/real-estate/db"
	"github.com/nadeemahmad9/real-estate/handlers"
	"github.com/nadeemahmad9/real-estate/logger"
	"github.com/nadeemahmad9/real-estate/routes"
	"github.com/nadeemahmad9/real-estate/store"
	"github.com/nadeemahmad9/real-estate/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(logger.Config{Development: cfg.Development()})
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	if err := db.Connect(ctx, cfg); err != nil {
		zlog.Fatalw("mongodb connect", "error", err)
	}
	defer db.Disconnect(ctx)

	utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	auth := handlers.NewAuthController(store.NewMongoUserStore(db.Collection("users")))
	properties := handlers.NewPropertyController(store.NewMongoPropertyStore(db.Collection("properties")), cfg.CacheTTL)

	routes.RegisterRoutes(e, auth, properties)

	zlog.Infow("server starting", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
