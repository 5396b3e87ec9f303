package engine

import (
	"context"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/staging"
)

// startPost begins the Post flow at channel selection.
func (e *Engine) startPost(ctx context.Context, userID, chatID int64) {
	if !e.authorized(userID) {
		e.log.Warn().Int64("user", userID).Msg("unauthorized post attempt")
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
	e.newSession(userID, chatID, domain.FlowPost, domain.StateSelectChannel)
	if _, err := e.transport.SendText(ctx, chatID, promptSelectChannel, selectionKeyboard(channels, false, true), false); err != nil {
		e.log.Error().Err(err).Msg("sending channel selection failed")
	}
}

// receivePostMessage stages the post body. An embedded "format=" section
// short-circuits straight to the preview with the diverted button markup.
func (e *Engine) receivePostMessage(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	content, buttonText, err := staging.StageWithMarkup(msg)
	if err != nil {
		e.log.Warn().Str("session", sess.ID).Err(err).Msg("unsupported post content")
		e.reply(ctx, msg.ChatID, unsupportedContentText)
		e.sessions.Delete(sess.UserID)
		return
	}
	sess.Content = &content

	if buttonText != "" {
		layout := e.parser.Parse(e.withDefaults(sess.UserID, buttonText))
		sess.Layout = &layout
		e.confirmPreview(ctx, sess, previewSentText)
		return
	}

	sess.State = domain.StateAwaitButtons
	if _, err := e.transport.SendText(ctx, sess.ChatID, defaultButtonsText, selectionKeyboard(nil, true, true), true); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending buttons prompt failed")
	}
}

// receivePostButtons parses the buttons step. The literal "none" skips
// buttons entirely, including stored defaults.
func (e *Engine) receivePostButtons(ctx context.Context, sess *domain.Session, msg domain.Inbound) {
	buttonText, ok := e.buttonText(ctx, sess, msg)
	if !ok {
		return
	}
	if markup.IsNone(buttonText) {
		sess.Layout = nil
	} else {
		layout := e.parser.Parse(e.withDefaults(sess.UserID, buttonText))
		sess.Layout = &layout
	}
	e.confirmPreview(ctx, sess, previewSentText)
}

// withDefaults appends the user's stored default button text, if any,
// after the given markup.
func (e *Engine) withDefaults(userID int64, buttonText string) string {
	defaults, ok, err := e.buttons.Get(userID)
	if err != nil {
		e.log.Error().Int64("user", userID).Err(err).Msg("fetching default buttons failed")
		return buttonText
	}
	if !ok {
		return buttonText
	}
	return buttonText + "\n" + defaults
}

// confirmPost publishes the previewed post to the selected channel.
func (e *Engine) confirmPost(ctx context.Context, sess *domain.Session) {
	if _, err := e.dispatcher.Deliver(ctx, sess.ChannelID, *sess.Content, sess.Layout); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("posting failed")
		e.reply(ctx, sess.ChatID, "Error posting message: "+err.Error())
		return
	}
	e.reply(ctx, sess.ChatID, postedText)
}
