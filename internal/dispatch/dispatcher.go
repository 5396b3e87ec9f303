// Package dispatch carries finished content from a confirmed flow to its
// channels. It owns the broadcast fan-out and the per-channel failure
// accounting; it never decides what to send, only delivers it.
package dispatch

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
)

// broadcastConcurrency bounds parallel channel deliveries during a broadcast.
const broadcastConcurrency = 8

// Dispatcher delivers content through the transport.
type Dispatcher struct {
	transport domain.Transport
	log       *logging.Logger
}

// New creates a dispatcher over the given transport.
func New(transport domain.Transport, log *logging.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		log:       log.Sub("dispatch"),
	}
}

// Deliver publishes content to a single channel and returns the new
// message id. Failures come back as a DeliveryError naming the channel.
func (d *Dispatcher) Deliver(ctx context.Context, channelID int64, content domain.PendingContent, layout *domain.ButtonLayout) (int, error) {
	msgID, err := d.transport.SendContent(ctx, channelID, content, layout)
	if err != nil {
		d.log.Error().Int64("channel", channelID).Err(err).Msg("delivery failed")
		return 0, &domain.DeliveryError{ChannelID: channelID, Err: err}
	}
	d.log.Info().Int64("channel", channelID).Int("message", msgID).Str("kind", string(content.Kind)).Msg("delivered")
	return msgID, nil
}

// EditExisting updates a published message in place. With buttonsOnly set
// the body is preserved and only the keyboard changes.
func (d *Dispatcher) EditExisting(ctx context.Context, channelID int64, messageID int, content domain.PendingContent, layout *domain.ButtonLayout, buttonsOnly bool) error {
	var err error
	if buttonsOnly {
		err = d.transport.EditButtons(ctx, channelID, messageID, layout)
	} else {
		err = d.transport.EditContent(ctx, channelID, messageID, content, layout)
	}
	if err != nil {
		d.log.Error().Int64("channel", channelID).Int("message", messageID).Err(err).Msg("edit failed")
		return &domain.DeliveryError{ChannelID: channelID, Err: err}
	}
	d.log.Info().Int64("channel", channelID).Int("message", messageID).Bool("buttons_only", buttonsOnly).Msg("edited")
	return nil
}

// BroadcastFailure records one channel a broadcast could not reach.
type BroadcastFailure struct {
	ChannelID int64
	Title     string
	Err       error
}

// BroadcastResult tallies a broadcast. Every channel is attempted; a
// failure on one never stops the rest.
type BroadcastResult struct {
	Total     int
	Succeeded int
	Failures  []BroadcastFailure
}

// Broadcast delivers content to every channel concurrently and reports the
// outcome per channel.
func (d *Dispatcher) Broadcast(ctx context.Context, channels []domain.Channel, content domain.PendingContent, layout *domain.ButtonLayout) BroadcastResult {
	result := BroadcastResult{Total: len(channels)}
	if len(channels) == 0 {
		return result
	}

	failures := make([]*BroadcastFailure, len(channels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(broadcastConcurrency)
	for i, ch := range channels {
		i, ch := i, ch
		g.Go(func() error {
			if _, err := d.Deliver(ctx, ch.ID, content, layout); err != nil {
				failures[i] = &BroadcastFailure{ChannelID: ch.ID, Title: ch.Title, Err: err}
			}
			return nil
		})
	}
	g.Wait()

	for _, f := range failures {
		if f != nil {
			result.Failures = append(result.Failures, *f)
		}
	}
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].ChannelID < result.Failures[j].ChannelID
	})
	result.Succeeded = result.Total - len(result.Failures)

	d.log.Info().Int("total", result.Total).Int("succeeded", result.Succeeded).Int("failed", len(result.Failures)).Msg("broadcast finished")
	return result
}
