package engine

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/staging"
)

// startEdit begins the Edit flow at channel selection.
func (e *Engine) startEdit(ctx context.Context, userID, chatID int64) {
	if !e.authorized(userID) {
		e.log.Warn().Int64("user", userID).Msg("unauthorized edit attempt")
		e.reply(ctx, chatID, unauthorizedText)
		return
	}
	channels, err := e.directory.All(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("listing channels failed")
		e.reply(ctx, chatID, "Error displaying channel selection.")
		return
	}
	if len(channels) == 0 {
		e.reply(ctx, chatID, noChannelsText)
		e.sessions.Delete(userID)
		return
	}
	e.newSession(userID, chatID, domain.FlowEdit, domain.StateSelectChannel)
	if _, err := e.transport.SendText(ctx, chatID, selectChannelText, selectionKeyboard(channels, false, true), false); err != nil {
		e.log.Error().Err(err).Msg("sending channel selection failed")
	}
}

// receiveMessageID validates the edit target. The probe fetches the chat,
// confirms the bot's membership, and clears the target's keyboard; the
// platform answering "message is not modified" still proves the message
// exists and is editable.
func (e *Engine) receiveMessageID(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	messageID, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil {
		e.reply(ctx, msg.ChatID, invalidMessageIDText)
		return
	}
	if err := e.probeTarget(ctx, sess.ChannelID, messageID); err != nil {
		e.log.Warn().Str("session", sess.ID).Int("message", messageID).Err(err).Msg("edit target validation failed")
		e.reply(ctx, msg.ChatID, invalidTargetText)
		return
	}
	sess.EditMessageID = messageID
	sess.State = domain.StateAwaitContent
	if _, err := e.transport.SendText(ctx, sess.ChatID, promptEditContent, selectionKeyboard(nil, true, true), false); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending content prompt failed")
	}
}

func (e *Engine) probeTarget(ctx context.Context, channelID int64, messageID int) error {
	if _, err := e.transport.GetChat(ctx, channelID); err != nil {
		return domain.ErrInvalidTarget
	}
	if err := e.transport.EnsureMember(ctx, channelID); err != nil {
		return domain.ErrInvalidTarget
	}
	if err := e.transport.EditButtons(ctx, channelID, messageID, nil); err != nil {
		if errors.Is(err, domain.ErrNotModified) {
			return nil
		}
		return domain.ErrInvalidTarget
	}
	return nil
}

// receiveEditContent stages the replacement content, or records "keep".
func (e *Engine) receiveEditContent(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	if strings.EqualFold(strings.TrimSpace(msg.Text), "keep") {
		sess.KeepContent = true
		sess.Content = nil
	} else {
		content, err := staging.Stage(msg)
		if err != nil {
			e.log.Warn().Str("session", sess.ID).Err(err).Msg("unsupported edit content")
			e.reply(ctx, msg.ChatID, unsupportedEditText)
			e.sessions.Delete(sess.UserID)
			return
		}
		sess.Content = &content
		sess.KeepContent = false
	}
	sess.State = domain.StateAwaitButtons
	if _, err := e.transport.SendText(ctx, sess.ChatID, promptEditButtons, selectionKeyboard(nil, true, true), false); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending buttons prompt failed")
	}
}

// receiveEditButtons records the new keyboard: "keep" preserves it,
// "none" clears it, anything else is parsed as markup. Keeping both
// content and buttons is a no-op edit and aborts the flow. Stored default
// buttons are never appended while editing.
func (e *Engine) receiveEditButtons(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	buttonText, ok := e.buttonText(ctx, sess, msg)
	if !ok {
		return
	}
	switch {
	case strings.EqualFold(buttonText, "keep"):
		sess.KeepButtons = true
		sess.Layout = nil
	case markup.IsNone(buttonText):
		sess.KeepButtons = false
		sess.Layout = nil
	default:
		layout := e.parser.Parse(buttonText)
		sess.KeepButtons = false
		sess.Layout = &layout
	}

	if sess.KeepContent && sess.KeepButtons && sess.Layout == nil {
		e.log.Warn().Str("session", sess.ID).Err(domain.ErrNoOpEdit).Msg("edit with no changes")
		e.reply(ctx, sess.ChatID, noChangesText)
		e.sessions.Delete(sess.UserID)
		return
	}
	e.confirmPreview(ctx, sess, previewSentText)
}

// confirmEdit applies the edit to the channel post: a buttons-only
// mutation when content is kept, a full replace otherwise.
func (e *Engine) confirmEdit(ctx context.Context, sess *domain.Session) {
	var content domain.PendingContent
	if sess.Content != nil {
		content = *sess.Content
	}
	if err := e.dispatcher.EditExisting(ctx, sess.ChannelID, sess.EditMessageID, content, sess.Layout, sess.KeepContent); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("edit failed")
		e.reply(ctx, sess.ChatID, editFailedText)
		return
	}
	e.reply(ctx, sess.ChatID, editedText)
}
