package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownDriver is returned by Open for an unsupported storage driver.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Record is one persisted progress document with its bookkeeping.
type Record struct {
	Key     string
	Version int
	Data    []byte
	// WriterID identifies the process that saved the record. Concurrent
	// processes overwrite each other; the id makes that visible.
	WriterID  string
	UpdatedAt time.Time
}

// DocumentRepo stores progress documents by key.
type DocumentRepo interface {
	// Load returns the record under key, or nil if none exists.
	Load(ctx context.Context, key string) (*Record, error)

	// Save creates or replaces the record under rec.Key.
	Save(ctx context.Context, rec *Record) error

	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver        string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (DocumentRepo, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		if cfg.SQLitePath == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			cfg.SQLitePath = p
		}
		return OpenSQLite(ctx, cfg.SQLitePath)
	case DriverRedis:
		return OpenRedis(ctx, RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewWriterID returns a fresh id for this process's saves.
func NewWriterID() string {
	return uuid.NewString()
}
