package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultPort = 8000

// Config holds the environment-derived settings. Missing values never stop
// the process: the site must stay reachable without a database.
type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseName string
}

func Load() Config {
	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			port = p
		}
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "surgeonsite"
	}
	return Config{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: name,
	}
}

// InitializeMongoDatabase connects to MongoDB when DATABASE_URL is set and
// returns nil otherwise, in which case the caller runs with the no-op store.
// A failed ping does not discard the handle: the /test probe reports it.
func InitializeMongoDatabase(cfg Config) (*mongo.Client, *mongo.Database) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Warn().Err(err).Msg("mongo connect failed, running without database")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("mongo ping failed")
	}

	return client, client.Database(cfg.DatabaseName)
}
