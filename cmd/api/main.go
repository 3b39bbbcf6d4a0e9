package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culinacart/recipes-api/config"
	"github.com/culinacart/recipes-api/internal/api"
	"github.com/culinacart/recipes-api/internal/database"
	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/router"
	"github.com/culinacart/recipes-api/internal/server"
	"github.com/culinacart/recipes-api/internal/service"
)

func main() {
	log := logger.New("api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(db)

	r := router.Setup(
		api.NewAuthHandler(authService, log),
		api.NewRecipeHandler(recipeService, log),
		api.NewHealthHandler(db),
		authService,
		log,
	)

	srv := server.New(cfg, r, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
