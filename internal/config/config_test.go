package config

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotelier/internal/logger"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(logger.New(log.Default()))
	require.NoError(t, err)

	assert.Equal(t, "LUXURY-001", conf.HotelID)
	assert.Equal(t, "Grand Luxury Hotel", conf.HotelName)
	assert.Equal(t, "New York", conf.HotelLocation)
	assert.Equal(t, 5, conf.StarRating)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOTEL_ID", "BUDGET-002")
	t.Setenv("HOTEL_NAME", "Downtown Inn")
	t.Setenv("HOTEL_LOCATION", "Boston")
	t.Setenv("HOTEL_STARS", "3")

	conf, err := Load(logger.New(log.Default()))
	require.NoError(t, err)

	assert.Equal(t, "BUDGET-002", conf.HotelID)
	assert.Equal(t, "Downtown Inn", conf.HotelName)
	assert.Equal(t, "Boston", conf.HotelLocation)
	assert.Equal(t, 3, conf.StarRating)
}

func TestLoadRejectsMalformedEnvironment(t *testing.T) {
	t.Setenv("HOTEL_STARS", "many")

	_, err := Load(logger.New(log.Default()))
	assert.Error(t, err)
}
