// Package wire assembles the default capability registry. Unlike a classic
// DI singleton, the registry is an explicit value the entry point builds
// once and threads into execution, so the effect algebra stays reentrant and
// trivially testable in isolation.
package wire

import (
	"fmt"
	"io"

	"github.com/example/cardforge/internal/adapters/memory"
	"github.com/example/cardforge/internal/adapters/sqlite"
	"github.com/example/cardforge/internal/capability"
	"github.com/example/cardforge/internal/config"
)

// BuildRegistry wires the reference capabilities from config: a leveled
// logger writing to out, a seeded RNG, a publish/subscribe bus, and a
// storage backend (SQLite when cfg.StoragePath is set, in-memory otherwise).
func BuildRegistry(cfg *config.Config, out io.Writer) (*capability.Registry, error) {
	logger := capability.NewLogger(capability.ParseLevel(cfg.LogLevel), out)

	registry := capability.NewRegistry().
		Register(capability.CapLogger, func() any { return logger }).
		Register(capability.CapRandom, func() any { return capability.NewRandom(cfg.Seed) }).
		Register(capability.CapEvents, func() any { return capability.NewBus(logger) })

	if cfg.StoragePath != "" {
		db, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		registry = registry.Register(capability.CapStorage, func() any { return sqlite.NewStore(db) })
	} else {
		registry = registry.Register(capability.CapStorage, func() any { return memory.NewStore() })
	}

	return registry, nil
}
