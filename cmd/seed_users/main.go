// Command seed_users provisions API users. User creation is deliberately
// not exposed over HTTP; accounts are created or updated here by an
// operator.
package main

import (
	"errors"
	"flag"

	"gorm.io/gorm"

	"github.com/culinacart/recipes-api/config"
	"github.com/culinacart/recipes-api/internal/database"
	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/models"
	"github.com/culinacart/recipes-api/internal/service"
)

func main() {
	log := logger.New("seed")

	username := flag.String("username", "", "username to create or update")
	password := flag.String("password", "", "password to set for the user")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

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

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	var user models.User
	err = db.Where("username = ?", *username).First(&user).Error
	switch {
	case err == nil:
		if err := db.Model(&user).Update("password_hash", hash).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to update user")
		}
		log.Info().Str("username", *username).Msg("updated user password")
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Username: *username, PasswordHash: hash}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to create user")
		}
		log.Info().Str("username", *username).Str("id", user.ID.String()).Msg("created user")
	default:
		log.Fatal().Err(err).Msg("failed to look up user")
	}
}
