package redisdb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/gradetracker/core"
)

type DB struct {
	client    *redis.Client
	keyPrefix string
}

// Open connects to the Redis server described by conf and checks it is reachable.
func Open(ctx context.Context, conf *core.Config) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "pinging redis at %s", conf.Redis.Addr)
	}
	return &DB{client: client, keyPrefix: conf.Redis.KeyPrefix}, nil
}

func (db *DB) Close() error {
	return db.client.Close()
}

func (db *DB) key(path string) string {
	return db.keyPrefix + "snapshot:" + path
}
