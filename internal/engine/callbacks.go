package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// HandleCallback routes a button press. Presses on published posts
// (popup/alert payloads) are answered for anyone; everything else belongs
// to the bot's own menus.
func (e *Engine) HandleCallback(ctx context.Context, cb domain.CallbackPress) {
	e.log.Debug().Int64("user", cb.UserID).Str("data", cb.Data).Msg("callback received")
	switch {
	case strings.HasPrefix(cb.Data, cbPopupPrefix), strings.HasPrefix(cb.Data, cbAlertPrefix):
		e.answerPublishedButton(ctx, cb)
	case cb.Data == cbStartPost,
		cb.Data == cbStartEdit,
		cb.Data == cbStartBroadcast,
		cb.Data == cbStartHelp,
		cb.Data == cbStartDefaultButtons,
		cb.Data == cbStartMyChannels:
		e.handleStartMenu(ctx, cb)
	case cb.Data == cbSetDefaultButtons, cb.Data == cbClearDefaultButtons:
		e.handleDefaultButtonsMenu(ctx, cb)
	case strings.HasPrefix(cb.Data, cbDeleteChannelPrefix),
		strings.HasPrefix(cb.Data, cbViewChannelPrefix),
		cb.Data == cbClearAllChannels:
		e.handleMyChannels(ctx, cb)
	case strings.HasPrefix(cb.Data, cbSelectChannelPrefix):
		e.handleSelectChannel(ctx, cb)
	case cb.Data == cbBackAction:
		e.handleBack(ctx, cb)
	case cb.Data == cbConfirmPost:
		e.handleConfirm(ctx, cb)
	case cb.Data == cbCancelAction:
		e.handleCancel(ctx, cb)
	case cb.Data == cbCloseMessage:
		e.handleClose(ctx, cb)
	case cb.Data == cbBackToStart:
		e.handleBackToStart(ctx, cb)
	default:
		e.log.Debug().Str("data", cb.Data).Msg("unrecognized callback")
		e.answer(ctx, cb, "")
	}
}

// answerPublishedButton serves popup:/alert: presses on channel posts.
// The payload after the first colon is shown verbatim.
func (e *Engine) answerPublishedButton(ctx context.Context, cb domain.CallbackPress) {
	_, text, _ := strings.Cut(cb.Data, ":")
	alert := strings.HasPrefix(cb.Data, cbAlertPrefix)
	if err := e.transport.AnswerCallback(ctx, cb.ID, text, alert); err != nil {
		e.log.Error().Str("callback", cb.ID).Err(err).Msg("answering published button failed")
	}
}

func (e *Engine) answer(ctx context.Context, cb domain.CallbackPress, text string) {
	if err := e.transport.AnswerCallback(ctx, cb.ID, text, false); err != nil {
		e.log.Error().Str("callback", cb.ID).Err(err).Msg("answering callback failed")
	}
}

func (e *Engine) handleStartMenu(ctx context.Context, cb domain.CallbackPress) {
	switch cb.Data {
	case cbStartPost:
		e.startPost(ctx, cb.UserID, cb.ChatID)
	case cbStartEdit:
		e.startEdit(ctx, cb.UserID, cb.ChatID)
	case cbStartBroadcast:
		e.startBroadcast(ctx, cb.UserID, cb.ChatID)
	case cbStartDefaultButtons:
		text := manageDefaultButtonsText
		if current, ok, err := e.buttons.Get(cb.UserID); err == nil && ok {
			text += "\n\nCurrent default buttons:\n" + current
		}
		e.editMenu(ctx, cb, text, defaultButtonsKeyboard(), false)
	case cbStartMyChannels:
		e.showMyChannels(ctx, cb)
	case cbStartHelp:
		e.sessions.Delete(cb.UserID)
		e.editMenu(ctx, cb, helpText, helpKeyboard(), true)
	}
	e.answer(ctx, cb, "")
}

// editMenu rewrites the menu message carrying the pressed keyboard.
func (e *Engine) editMenu(ctx context.Context, cb domain.CallbackPress, text string, layout *domain.ButtonLayout, markdown bool) {
	if err := e.transport.EditText(ctx, cb.ChatID, cb.MessageID, text, layout, markdown); err != nil {
		e.log.Error().Int("message", cb.MessageID).Err(err).Msg("editing menu failed")
	}
}

func (e *Engine) handleDefaultButtonsMenu(ctx context.Context, cb domain.CallbackPress) {
	switch cb.Data {
	case cbSetDefaultButtons:
		e.startDefaultButtons(ctx, cb.UserID, cb.ChatID, true)
	case cbClearDefaultButtons:
		deleted, err := e.buttons.Delete(cb.UserID)
		if err != nil {
			e.log.Error().Int64("user", cb.UserID).Err(err).Msg("clearing default buttons failed")
			e.answer(ctx, cb, "Error processing default buttons action.")
			return
		}
		if deleted {
			e.editMenu(ctx, cb, defaultsClearedText, defaultButtonsKeyboard(), false)
		} else {
			e.editMenu(ctx, cb, defaultsNoneSetText, defaultButtonsKeyboard(), false)
		}
	}
	e.answer(ctx, cb, "")
}

// showMyChannels lists the stored channels. Static channels are absent on
// purpose: they cannot be deleted here.
func (e *Engine) showMyChannels(ctx context.Context, cb domain.CallbackPress) {
	if !e.authorized(cb.UserID) {
		e.answer(ctx, cb, "You are not authorized.")
		return
	}
	channels, err := e.directory.Stored(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("listing stored channels failed")
		e.reply(ctx, cb.ChatID, "Error displaying channels.")
		return
	}
	if len(channels) == 0 {
		e.reply(ctx, cb.ChatID, noSavedChannelsText)
		return
	}
	if _, err := e.transport.SendText(ctx, cb.ChatID, savedChannelsText, myChannelsKeyboard(channels), false); err != nil {
		e.log.Error().Err(err).Msg("sending channel list failed")
	}
}

func (e *Engine) handleMyChannels(ctx context.Context, cb domain.CallbackPress) {
	if !e.authorized(cb.UserID) {
		e.answer(ctx, cb, "You are not authorized.")
		return
	}
	switch {
	case strings.HasPrefix(cb.Data, cbDeleteChannelPrefix):
		channelID, err := strconv.ParseInt(cb.Data[len(cbDeleteChannelPrefix):], 10, 64)
		if err != nil {
			e.answer(ctx, cb, "Invalid channel ID.")
			return
		}
		removed, err := e.channels.Remove(channelID)
		if err != nil || !removed {
			e.log.Error().Int64("channel", channelID).Err(err).Msg("deleting channel failed")
			e.answer(ctx, cb, "Failed to delete channel.")
			return
		}
		remaining, err := e.directory.Stored(ctx)
		if err != nil {
			e.log.Error().Err(err).Msg("listing stored channels failed")
			e.answer(ctx, cb, "Error processing action.")
			return
		}
		if len(remaining) > 0 {
			e.editMenu(ctx, cb, "Channel deleted. Your saved channels:", myChannelsKeyboard(remaining), false)
		} else {
			e.editMenu(ctx, cb, "Channel deleted. No saved channels left.", startKeyboard(), false)
		}
		e.answer(ctx, cb, "")
	case cb.Data == cbClearAllChannels:
		n, err := e.channels.ClearAll()
		if err != nil {
			e.log.Error().Err(err).Msg("clearing channels failed")
			e.answer(ctx, cb, "Error processing action.")
			return
		}
		e.editMenu(ctx, cb, fmt.Sprintf("Cleared %d channel(s). No saved channels left.", n), startKeyboard(), false)
		e.answer(ctx, cb, "")
	case strings.HasPrefix(cb.Data, cbViewChannelPrefix):
		e.answer(ctx, cb, "Channel selected. No further action available.")
	}
}

// handleSelectChannel binds the pressed channel to the live session and
// advances Post to the message step or Edit to the message-id step.
func (e *Engine) handleSelectChannel(ctx context.Context, cb domain.CallbackPress) {
	if !e.authorized(cb.UserID) {
		e.answer(ctx, cb, "You are not authorized.")
		return
	}
	sess, ok := e.sessions.Get(cb.UserID)
	if !ok || !sess.Owns(cb.UserID) || sess.State != domain.StateSelectChannel {
		e.answer(ctx, cb, "Invalid selection.")
		return
	}
	channelID, err := strconv.ParseInt(cb.Data[len(cbSelectChannelPrefix):], 10, 64)
	if err != nil {
		e.answer(ctx, cb, "Invalid channel ID.")
		return
	}
	sess.ChannelID = channelID
	e.log.Info().Str("session", sess.ID).Int64("channel", channelID).Msg("channel selected")

	switch sess.Flow {
	case domain.FlowPost:
		sess.State = domain.StateAwaitMessage
		e.editMenu(ctx, cb, promptPostMessage, selectionKeyboard(nil, false, true), false)
	case domain.FlowEdit:
		sess.State = domain.StateAwaitMessageID
		e.editMenu(ctx, cb, promptMessageID, selectionKeyboard(nil, true, true), false)
	}
	e.answer(ctx, cb, "")
}
