package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/UserHub/userhub-directory-services/models"
)

// GetUsers retrieves every row of the users table in primary-key order.
func (u *UserDB) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, first_name, last_name FROM users ORDER BY id`

	var users []models.User
	if err := u.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by ID.
func (u *UserDB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, first_name, last_name FROM users WHERE id = $1`

	var usr models.User
	if err := u.DB.GetContext(ctx, &usr, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// User does not exist, return nil user and nil error
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &usr, nil
}
