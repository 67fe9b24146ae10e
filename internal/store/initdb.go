package store

import (
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openmerch/catalogd/config"
	"github.com/openmerch/catalogd/internal/domain"
)

// Open builds the database handle from configuration. It is intended to be
// called once per process lifetime; session/transaction lifecycle stays with
// the caller.
func Open(cfg config.DatabaseConfig, workdir string) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Debug {
		level = gormlogger.Info
	}
	gormConfig := &gorm.Config{
		Logger: gormlogger.New(&zapGormWriter{}, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dialector gorm.Dialector
	switch cfg.Type {
	case "postgres", "":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = path.Join(workdir, "catalogd.db")
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConn > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
	}
	return db, nil
}

// Migrate brings the schema up to date for all registered tables.
func Migrate(db *gorm.DB) error {
	return db.Migrator().AutoMigrate(domain.Tables...)
}

// zapGormWriter routes GORM's logger output to the global zap logger.
type zapGormWriter struct{}

func (zapGormWriter) Printf(format string, args ...interface{}) {
	zap.S().Infof(format, args...)
}
