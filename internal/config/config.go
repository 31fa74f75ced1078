package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort              string
	MongoURI              string
	MongoDBName           string
	MongoConnectTimeout   time.Duration
	MongoSelectionTimeout time.Duration
	MongoMaxPoolSize      uint64
	MongoMinPoolSize      uint64
	RedisAddr             string
	RedisPassword         string
	KafkaBrokers          []string
	RequestTimeout        time.Duration
	ShutdownTimeout       time.Duration
}

// Load reads configuration from the environment with sane local defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB_NAME", "nexxo")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("MONGO_SELECTION_TIMEOUT", "5s")
	v.SetDefault("MONGO_MAX_POOL_SIZE", 100)
	v.SetDefault("MONGO_MIN_POOL_SIZE", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return &Config{
		HTTPPort:              v.GetString("HTTP_PORT"),
		MongoURI:              v.GetString("MONGO_URI"),
		MongoDBName:           v.GetString("MONGO_DB_NAME"),
		MongoConnectTimeout:   v.GetDuration("MONGO_CONNECT_TIMEOUT"),
		MongoSelectionTimeout: v.GetDuration("MONGO_SELECTION_TIMEOUT"),
		MongoMaxPoolSize:      v.GetUint64("MONGO_MAX_POOL_SIZE"),
		MongoMinPoolSize:      v.GetUint64("MONGO_MIN_POOL_SIZE"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisPassword:         v.GetString("REDIS_PASSWORD"),
		KafkaBrokers:          strings.Split(v.GetString("KAFKA_BROKERS"), ","),
		RequestTimeout:        v.GetDuration("REQUEST_TIMEOUT"),
		ShutdownTimeout:       v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}
