package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/stayforge/hotelier/internal/logger"
)

// Config describes the hotel this process manages. Everything has a default
// so the demo runs without any environment at all.
type Config struct {
	HotelID       string `env:"HOTEL_ID" envDefault:"LUXURY-001"`
	HotelName     string `env:"HOTEL_NAME" envDefault:"Grand Luxury Hotel"`
	HotelLocation string `env:"HOTEL_LOCATION" envDefault:"New York"`
	StarRating    int    `env:"HOTEL_STARS" envDefault:"5"`
}

// Load reads an optional .env file and then parses the environment.
func Load(l *logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}

		l.LogInfo("No .env file found, using environment and defaults")
	}

	var conf Config

	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("parse config from environment: %w", err)
	}

	return conf, nil
}
