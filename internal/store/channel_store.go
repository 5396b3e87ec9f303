package store

import (
	"fmt"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// ChannelStore persists dynamically registered channels. Statically
// configured channels never enter the store; merging happens in the
// directory.
type ChannelStore struct {
	db *DB
}

// NewChannelStore creates a channel store using the given database.
func NewChannelStore(db *DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// Add inserts a channel and reports whether a row was actually inserted.
// Adding an already-stored id is a no-op returning false.
func (s *ChannelStore) Add(channelID int64, title string) (bool, error) {
	res, err := s.db.sql.Exec(
		`INSERT INTO channels (channel_id, title) VALUES (?, ?)
		 ON CONFLICT(channel_id) DO NOTHING`,
		channelID, title,
	)
	if err != nil {
		return false, fmt.Errorf("adding channel %d: %w", channelID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("adding channel %d: %w", channelID, err)
	}
	if n > 0 {
		s.db.log.Info().Int64("channel", channelID).Str("title", title).Msg("channel added")
	}
	return n > 0, nil
}

// List returns all stored channels in insertion order.
func (s *ChannelStore) List() ([]domain.Channel, error) {
	rows, err := s.db.sql.Query(`SELECT channel_id, title FROM channels ORDER BY added_at, channel_id`)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		var ch domain.Channel
		if err := rows.Scan(&ch.ID, &ch.Title); err != nil {
			return nil, fmt.Errorf("scanning channel: %w", err)
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// Remove deletes a channel and reports whether it existed.
func (s *ChannelStore) Remove(channelID int64) (bool, error) {
	res, err := s.db.sql.Exec(`DELETE FROM channels WHERE channel_id = ?`, channelID)
	if err != nil {
		return false, fmt.Errorf("removing channel %d: %w", channelID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("removing channel %d: %w", channelID, err)
	}
	if n > 0 {
		s.db.log.Info().Int64("channel", channelID).Msg("channel removed")
	}
	return n > 0, nil
}

// ClearAll deletes every stored channel and returns how many were removed.
func (s *ChannelStore) ClearAll() (int64, error) {
	res, err := s.db.sql.Exec(`DELETE FROM channels`)
	if err != nil {
		return 0, fmt.Errorf("clearing channels: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing channels: %w", err)
	}
	s.db.log.Info().Int64("count", n).Msg("channels cleared")
	return n, nil
}
