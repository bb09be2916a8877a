package storage

import (
	"context"
	"fmt"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Options struct {
	Driver  string
	Path    string
	DSN     string
	History int
}

// OpenKV opens the medium selected by opts.Driver.
func OpenKV(ctx context.Context, opts Options) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		return OpenSQLiteKV(ctx, opts.Path, opts.History)
	case DriverPostgres:
		return OpenPostgresKV(ctx, opts.DSN)
	case DriverMemory:
		return NewMemoryKV(opts.History), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", opts.Driver)
	}
}
