package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/UserHub/userhub-directory-services/models"
)

// UserStore is the persistence surface for the users table. Rows are only
// ever read here; writes happen through external tooling and migrations.
type UserStore interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	Ping(ctx context.Context) error
	Close() error
}

// UserDB is the PostgreSQL-backed UserStore.
type UserDB struct {
	DB  *sqlx.DB
	Log *zerolog.Logger
}

// NewUserDB is a constructor that initializes UserDB with a pooled
// connection and a logger.
func NewUserDB(source string, log *zerolog.Logger) (*UserDB, error) {
	if source == "" {
		log.Error().Msg("database connection string is not set")
		return nil, fmt.Errorf("database connection string is not set")
	}

	// Open the database connection
	db, err := sqlx.Open("postgres", source)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		db.Close()
		return nil, err
	}

	return &UserDB{
		DB:  db,
		Log: log,
	}, nil
}

// Ping reports whether the store is reachable.
func (u *UserDB) Ping(ctx context.Context) error {
	return u.DB.PingContext(ctx)
}

func (u *UserDB) Close() error {
	if err := u.DB.Close(); err != nil {
		return err
	}
	u.Log.Info().Msg("database connection closed")
	return nil
}

// Open selects a UserStore backend from the configured driver.
func Open(driver, source string, log *zerolog.Logger) (UserStore, error) {
	switch driver {
	case "postgres":
		return NewUserDB(source, log)
	case "sqlite", "sqlite3":
		return NewSQLiteUserDB(source, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
