package engine

import (
	"context"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/markup"
)

// startDefaultButtons begins the single-step Default Buttons flow.
// fromMenu controls whether the prompt offers a Back button into the
// submenu it was opened from.
func (e *Engine) startDefaultButtons(ctx context.Context, userID, chatID int64, fromMenu bool) {
	if !e.authorized(userID) {
		e.log.Warn().Int64("user", userID).Msg("unauthorized default buttons attempt")
		e.reply(ctx, chatID, unauthorizedText)
		return
	}
	e.newSession(userID, chatID, domain.FlowDefaultButtons, domain.StateAwaitButtons)
	if _, err := e.transport.SendText(ctx, chatID, defaultButtonsText, selectionKeyboard(nil, fromMenu, true), true); err != nil {
		e.log.Error().Err(err).Msg("sending default buttons prompt failed")
	}
}

// receiveDefaultButtons stores or clears the user's default buttons.
// "none" deletes; anything else is validated by parsing and then stored
// as the raw text, so it re-parses identically when a post picks it up.
func (e *Engine) receiveDefaultButtons(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	buttonText, ok := e.buttonText(ctx, sess, msg)
	if !ok {
		return
	}

	if markup.IsNone(buttonText) {
		deleted, err := e.buttons.Delete(sess.UserID)
		if err != nil {
			e.log.Error().Str("session", sess.ID).Err(err).Msg("clearing default buttons failed")
			e.reply(ctx, sess.ChatID, "Error processing default buttons.")
			e.sessions.Delete(sess.UserID)
			return
		}
		if deleted {
			e.reply(ctx, sess.ChatID, defaultsClearedText)
		} else {
			e.reply(ctx, sess.ChatID, defaultsNoneSetText)
		}
		e.sessions.Delete(sess.UserID)
		return
	}

	layout := e.parser.Parse(buttonText)
	e.log.Debug().Str("session", sess.ID).Int("buttons", layout.ButtonCount()).Msg("validated default buttons")
	if err := e.buttons.Set(sess.UserID, buttonText); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("saving default buttons failed")
		e.reply(ctx, sess.ChatID, "Failed to set default buttons.")
		e.sessions.Delete(sess.UserID)
		return
	}
	e.reply(ctx, sess.ChatID, defaultsSetText)
	e.sessions.Delete(sess.UserID)
}
