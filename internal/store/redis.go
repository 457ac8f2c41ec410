package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// redisClient is the subset of *redis.Client the repository uses.
type redisClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Redis stores each document as a hash under its key, with the document in
// the "data" field.
type Redis struct {
	client redisClient
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Load(ctx context.Context, key string) (*Record, error) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	rec := &Record{Key: key, Data: []byte(fields["data"]), WriterID: fields["writer_id"]}
	if v := fields["version"]; v != "" {
		if rec.Version, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("parse version %q: %w", v, err)
		}
	}
	if u := fields["updated_at"]; u != "" {
		if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, u); err != nil {
			return nil, fmt.Errorf("parse updated_at %q: %w", u, err)
		}
	}
	return rec, nil
}

func (r *Redis) Save(ctx context.Context, rec *Record) error {
	err := r.client.HSet(ctx, rec.Key,
		"data", string(rec.Data),
		"version", strconv.Itoa(rec.Version),
		"writer_id", rec.WriterID,
		"updated_at", rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("write document %q: %w", rec.Key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
