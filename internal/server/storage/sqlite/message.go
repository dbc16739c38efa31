package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iudanet/gophchat/internal/models"
)

// LoadMessages returns the log in insertion order
func (s *Storage) LoadMessages(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, username, avatar, message, image, timestamp
		FROM messages
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	msgs := []models.Message{}
	for rows.Next() {
		var (
			m  models.Message
			ts time.Time
		)
		if err := rows.Scan(&m.ID, &m.Username, &m.Avatar, &m.Message, &m.Image, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Timestamp = ts.UTC()
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return msgs, nil
}

// SaveMessages replaces the messages table with the given snapshot
func (s *Storage) SaveMessages(ctx context.Context, msgs []models.Message) error {
	return s.replaceAll(ctx, "messages", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO messages (position, id, username, avatar, message, image, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare message insert: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for i, m := range msgs {
			if _, err := stmt.ExecContext(ctx, i, m.ID, m.Username, m.Avatar, m.Message, m.Image, m.Timestamp.UTC()); err != nil {
				return fmt.Errorf("failed to insert message %s: %w", m.ID, err)
			}
		}
		return nil
	})
}
