package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ButtonStore persists each user's default button text. The raw markup is
// stored verbatim and re-parsed on use; concurrent writes by the same user
// are last-write-wins.
type ButtonStore struct {
	db *DB
}

// NewButtonStore creates a default-buttons store using the given database.
func NewButtonStore(db *DB) *ButtonStore {
	return &ButtonStore{db: db}
}

// Set stores (or replaces) a user's default button text.
func (s *ButtonStore) Set(userID int64, text string) error {
	_, err := s.db.sql.Exec(
		`INSERT INTO default_buttons (user_id, button_text, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(user_id) DO UPDATE SET
		   button_text = excluded.button_text,
		   updated_at = excluded.updated_at`,
		userID, text,
	)
	if err != nil {
		return fmt.Errorf("saving default buttons for user %d: %w", userID, err)
	}
	s.db.log.Info().Int64("user", userID).Msg("default buttons saved")
	return nil
}

// Get returns a user's default button text. The boolean is false when the
// user has none stored.
func (s *ButtonStore) Get(userID int64) (string, bool, error) {
	var text string
	err := s.db.sql.QueryRow(
		`SELECT button_text FROM default_buttons WHERE user_id = ?`, userID,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("fetching default buttons for user %d: %w", userID, err)
	}
	return text, true, nil
}

// Delete removes a user's default button text and reports whether any
// were stored.
func (s *ButtonStore) Delete(userID int64) (bool, error) {
	res, err := s.db.sql.Exec(`DELETE FROM default_buttons WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("deleting default buttons for user %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting default buttons for user %d: %w", userID, err)
	}
	return n > 0, nil
}
