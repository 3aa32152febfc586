package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UserHub/userhub-directory-services/models"
)

// SQLiteUserDB is the SQLite-backed UserStore, intended for local
// development. The schema is kept in line with the model at open time, so
// the goose migration commands are not needed for this backend.
type SQLiteUserDB struct {
	DB  *gorm.DB
	Log *zerolog.Logger
}

// gormLogWriter routes the ORM's own log lines through zerolog.
type gormLogWriter struct {
	log *zerolog.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.log.Debug().Msgf(format, args...)
}

// NewSQLiteUserDB opens (creating if needed) a SQLite database file and
// migrates its schema.
func NewSQLiteUserDB(path string, log *zerolog.Logger) (*SQLiteUserDB, error) {
	if path == "" {
		log.Error().Msg("database path is not set")
		return nil, fmt.Errorf("database path is not set")
	}

	if err := ensureSQLiteDir(path); err != nil {
		log.Error().Err(err).Msg("Failed to prepare database directory")
		return nil, err
	}

	gormLogger := logger.New(gormLogWriter{log: log}, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database")
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Error().Err(err).Msg("Failed to migrate database schema")
		return nil, fmt.Errorf("error migrating database schema: %w", err)
	}

	return &SQLiteUserDB{
		DB:  db,
		Log: log,
	}, nil
}

// GetUsers retrieves every row of the users table in primary-key order.
func (s *SQLiteUserDB) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by ID.
func (s *SQLiteUserDB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var usr models.User
	if err := s.DB.WithContext(ctx).First(&usr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &usr, nil
}

// Ping reports whether the store is reachable.
func (s *SQLiteUserDB) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteUserDB) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	s.Log.Info().Msg("database connection closed")
	return nil
}

// ensureSQLiteDir creates the parent directory for a SQLite file path.
// In-memory DSNs need no directory.
func ensureSQLiteDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating database directory %q: %w", dir, err)
	}
	return nil
}
