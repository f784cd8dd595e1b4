package database

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"userboard/internal/common/config"
	"userboard/internal/common/logger"
)

var (
	mu     sync.Mutex
	shared *gorm.DB
)

// Connect returns the process-wide database handle.
//
// Outside production the first successfully opened handle is cached in
// package state, so repeated initializations during the dev loop reuse one
// connection pool instead of stacking new ones. Concurrent first calls
// serialize on the mutex and all observe the same handle. In production the
// cache is bypassed: the process opens exactly one handle at startup and no
// package state is touched.
//
// Open failures propagate to the caller; there is no retry and no teardown,
// the handle lives as long as the process.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Env.IsProduction() {
		return open(cfg)
	}

	mu.Lock()
	defer mu.Unlock()
	if shared != nil {
		return shared, nil
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}
	shared = db
	return shared, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Silent
	if cfg.Debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialectorFor(cfg.Database.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info().
		Str("env", string(cfg.Env)).
		Msg("Database handle initialized")

	return db, nil
}

// dialectorFor picks the driver from the connection string. SQLite DSNs
// (file: URIs or :memory:) serve the dev and test loop, anything else is
// treated as a Postgres DSN.
func dialectorFor(dsn string) gorm.Dialector {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}
