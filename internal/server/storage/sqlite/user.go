package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iudanet/gophchat/internal/models"
)

// LoadUsers returns all users in registration order
func (s *Storage) LoadUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT username, password_hash, avatar, token, created_at
		FROM users
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := []models.User{}
	for rows.Next() {
		var (
			u         models.User
			createdAt time.Time
		)
		if err := rows.Scan(&u.Username, &u.PasswordHash, &u.Avatar, &u.Token, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = createdAt.UTC()
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// SaveUsers replaces the users table with the given snapshot
func (s *Storage) SaveUsers(ctx context.Context, users []models.User) error {
	return s.replaceAll(ctx, "users", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO users (position, username, password_hash, avatar, token, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare user insert: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for i, u := range users {
			if _, err := stmt.ExecContext(ctx, i, u.Username, u.PasswordHash, u.Avatar, u.Token, u.CreatedAt.UTC()); err != nil {
				return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
			}
		}
		return nil
	})
}
