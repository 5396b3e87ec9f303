// Package directory merges the two sources of target channels: channels
// registered at runtime through the bot and channels pinned in the config
// file. Stored channels carry their title from registration time; static
// channels are resolved against the Telegram API on each listing.
package directory

import (
	"context"
	"fmt"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
	"github.com/ftkrshna/channelpost/internal/store"
)

// Directory provides the channel views the flows select targets from.
type Directory struct {
	channels  *store.ChannelStore
	transport domain.Transport
	static    []int64
	log       *logging.Logger
}

// New creates a directory over the stored channels plus the statically
// configured ids.
func New(channels *store.ChannelStore, transport domain.Transport, static []int64, log *logging.Logger) *Directory {
	return &Directory{
		channels:  channels,
		transport: transport,
		static:    static,
		log:       log.Sub("directory"),
	}
}

// Stored returns only the channels registered through the bot, in
// insertion order.
func (d *Directory) Stored(ctx context.Context) ([]domain.Channel, error) {
	return d.channels.List()
}

// All returns stored channels followed by resolvable static channels.
// A static id already present in the store is skipped; static ids whose
// chat cannot be fetched, or that no longer resolve to a channel, are
// logged and left out rather than failing the listing.
func (d *Directory) All(ctx context.Context) ([]domain.Channel, error) {
	stored, err := d.channels.List()
	if err != nil {
		return nil, fmt.Errorf("listing stored channels: %w", err)
	}

	seen := make(map[int64]bool, len(stored))
	for _, ch := range stored {
		seen[ch.ID] = true
	}

	merged := stored
	for _, id := range d.static {
		if seen[id] {
			continue
		}
		seen[id] = true

		info, err := d.transport.GetChat(ctx, id)
		if err != nil {
			d.log.Warn().Int64("channel", id).Err(err).Msg("static channel unreachable, skipping")
			continue
		}
		if !info.IsChannel() {
			d.log.Warn().Int64("channel", id).Str("type", info.Type).Msg("static id is not a channel, skipping")
			continue
		}
		merged = append(merged, domain.Channel{ID: id, Title: info.Title, Static: true})
	}
	return merged, nil
}
