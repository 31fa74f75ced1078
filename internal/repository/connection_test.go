package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoSettings_Defaults(t *testing.T) {
	opts := MongoSettings{URI: "mongodb://localhost:27017", Database: "nexxo"}.clientOptions()

	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, 10*time.Second, *opts.ConnectTimeout)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 5*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(100), *opts.MaxPoolSize)
	require.NotNil(t, opts.MinPoolSize)
	assert.Equal(t, uint64(10), *opts.MinPoolSize)
}

func TestMongoSettings_Overrides(t *testing.T) {
	settings := MongoSettings{
		URI:                    "mongodb://localhost:27017",
		Database:               "nexxo",
		ConnectTimeout:         2 * time.Second,
		ServerSelectionTimeout: time.Second,
		MaxPoolSize:            20,
		MinPoolSize:            2,
	}

	opts := settings.clientOptions()

	assert.Equal(t, 2*time.Second, *opts.ConnectTimeout)
	assert.Equal(t, time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, uint64(20), *opts.MaxPoolSize)
	assert.Equal(t, uint64(2), *opts.MinPoolSize)
}
