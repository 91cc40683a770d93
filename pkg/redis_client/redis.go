package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/opaltrip/opaltrip/pkg/util"
)

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect creates the redis client backing the translation cache. The client
// is handed to its consumers explicitly and closed by the caller on shutdown.
// A failed ping still returns the client so callers can choose to keep
// running with a cache that may recover later.
func Connect() (*redis.Client, error) {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["OPALTRIP_REDIS_ADDRESS"] != "" {
		address = env["OPALTRIP_REDIS_ADDRESS"]
	}

	if env["OPALTRIP_REDIS_PASSWORD"] != "" {
		password = env["OPALTRIP_REDIS_PASSWORD"]
	}

	if env["OPALTRIP_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["OPALTRIP_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return nil, err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return client, err
	}

	return client, nil
}
