package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/staging"
)

// startBroadcast begins the Broadcast flow. There is no channel
// selection; confirm fans out to the whole directory.
func (e *Engine) startBroadcast(ctx context.Context, userID, chatID int64) {
	if !e.authorized(userID) {
		e.log.Warn().Int64("user", userID).Msg("unauthorized broadcast attempt")
		e.reply(ctx, chatID, unauthorizedText)
		return
	}
	e.newSession(userID, chatID, domain.FlowBroadcast, domain.StateAwaitMessage)
	if _, err := e.transport.SendText(ctx, chatID, promptBroadcastMessage, selectionKeyboard(nil, false, true), false); err != nil {
		e.log.Error().Err(err).Msg("sending broadcast prompt failed")
	}
}

func (e *Engine) receiveBroadcastMessage(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	content, err := staging.Stage(msg)
	if err != nil {
		e.log.Warn().Str("session", sess.ID).Err(err).Msg("unsupported broadcast content")
		e.reply(ctx, msg.ChatID, unsupportedContentText)
		e.sessions.Delete(sess.UserID)
		return
	}
	sess.Content = &content
	sess.State = domain.StateAwaitButtons
	if _, err := e.transport.SendText(ctx, sess.ChatID, defaultButtonsText, selectionKeyboard(nil, true, true), true); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending buttons prompt failed")
	}
}

// receiveBroadcastButtons parses the buttons step. Broadcasts never pick
// up stored default buttons.
func (e *Engine) receiveBroadcastButtons(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	buttonText, ok := e.buttonText(ctx, sess, msg)
	if !ok {
		return
	}
	if markup.IsNone(buttonText) {
		sess.Layout = nil
	} else {
		layout := e.parser.Parse(buttonText)
		sess.Layout = &layout
	}
	e.confirmPreview(ctx, sess, previewSentBroadcastText)
}

// confirmBroadcast fans the post out to every channel in the merged
// directory and reports the per-channel tally.
func (e *Engine) confirmBroadcast(ctx context.Context, sess *domain.Session) {
	channels, err := e.directory.All(ctx)
	if err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("listing channels failed")
		e.reply(ctx, sess.ChatID, "Error processing broadcast confirmation.")
		return
	}
	if len(channels) == 0 {
		e.reply(ctx, sess.ChatID, "No channels available for broadcasting.")
		return
	}

	res := e.dispatcher.Broadcast(ctx, channels, *sess.Content, sess.Layout)

	var b strings.Builder
	fmt.Fprintf(&b, "Broadcast completed: %d/%d channels successful.", res.Succeeded, res.Total)
	if len(res.Failures) > 0 {
		b.WriteString("\nFailed channels:")
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "\n%d: %v", f.ChannelID, f.Err)
		}
	}
	e.reply(ctx, sess.ChatID, b.String())
}
