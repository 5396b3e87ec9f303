package engine

import (
	"context"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// handleBack rewrites the menu message to the previous step's prompt and
// rewinds the session. From a flow's first state Back exits to the
// relevant submenu.
func (e *Engine) handleBack(ctx context.Context, cb domain.CallbackPress) {
	sess, ok := e.sessions.Get(cb.UserID)
	if !ok || !sess.Owns(cb.UserID) {
		e.answer(ctx, cb, "")
		return
	}

	if sess.Flow == domain.FlowDefaultButtons {
		e.sessions.Delete(cb.UserID)
		e.editMenu(ctx, cb, manageDefaultButtonsText, defaultButtonsKeyboard(), false)
		e.answer(ctx, cb, "")
		return
	}

	prev, ok := domain.PreviousState(sess.Flow, sess.State)
	if !ok {
		e.answer(ctx, cb, "")
		return
	}
	sess.State = prev
	e.renderStatePrompt(ctx, sess, cb)
	e.answer(ctx, cb, "")
}

// renderStatePrompt re-renders the prompt belonging to the session's
// (new) current state into the pressed menu message.
func (e *Engine) renderStatePrompt(ctx context.Context, sess *domain.Session, cb domain.CallbackPress) {
	switch {
	case sess.State == domain.StateSelectChannel:
		channels, err := e.directory.All(ctx)
		if err != nil {
			e.log.Error().Err(err).Msg("listing channels failed")
			e.reply(ctx, cb.ChatID, "Error navigating back.")
			return
		}
		e.editMenu(ctx, cb, selectChannelText, selectionKeyboard(channels, false, true), false)
	case sess.Flow == domain.FlowPost && sess.State == domain.StateAwaitMessage:
		e.editMenu(ctx, cb, promptPostMessage, selectionKeyboard(nil, false, true), false)
	case sess.Flow == domain.FlowBroadcast && sess.State == domain.StateAwaitMessage:
		e.editMenu(ctx, cb, promptBroadcastMessage, selectionKeyboard(nil, false, true), false)
	case sess.Flow == domain.FlowEdit && sess.State == domain.StateAwaitMessageID:
		e.editMenu(ctx, cb, promptMessageID, selectionKeyboard(nil, true, true), false)
	case sess.Flow == domain.FlowEdit && sess.State == domain.StateAwaitContent:
		e.editMenu(ctx, cb, promptEditContent, selectionKeyboard(nil, true, true), false)
	case sess.State == domain.StateAwaitButtons:
		e.editMenu(ctx, cb, defaultButtonsText, selectionKeyboard(nil, true, true), true)
	}
}

// handleConfirm publishes the previewed work of an await-preview session.
func (e *Engine) handleConfirm(ctx context.Context, cb domain.CallbackPress) {
	sess, ok := e.sessions.Get(cb.UserID)
	if !ok || sess.State != domain.StateAwaitPreview {
		e.answer(ctx, cb, "")
		return
	}
	if !sess.Owns(cb.UserID) {
		e.log.Warn().Str("session", sess.ID).Int64("user", cb.UserID).Msg("confirm from non-owner, dropping")
		e.answer(ctx, cb, "")
		return
	}

	switch sess.Flow {
	case domain.FlowPost:
		e.confirmPost(ctx, sess)
	case domain.FlowEdit:
		e.confirmEdit(ctx, sess)
	case domain.FlowBroadcast:
		e.confirmBroadcast(ctx, sess)
	}
	e.cleanupPreview(ctx, sess, cb)
	e.sessions.Delete(cb.UserID)
	e.answer(ctx, cb, "")
}

// handleCancel aborts at the preview step with a flow-specific notice, or
// anywhere else with the generic one.
func (e *Engine) handleCancel(ctx context.Context, cb domain.CallbackPress) {
	sess, ok := e.sessions.Get(cb.UserID)
	if ok && sess.Owns(cb.UserID) && sess.State == domain.StateAwaitPreview {
		switch sess.Flow {
		case domain.FlowPost:
			e.reply(ctx, cb.ChatID, "Post canceled.")
		case domain.FlowEdit:
			e.reply(ctx, cb.ChatID, "Edit canceled.")
		case domain.FlowBroadcast:
			e.reply(ctx, cb.ChatID, "Broadcast canceled.")
		}
		e.cleanupPreview(ctx, sess, cb)
	} else {
		e.reply(ctx, cb.ChatID, canceledText)
		if err := e.transport.DeleteMessage(ctx, cb.ChatID, cb.MessageID); err != nil {
			e.log.Warn().Int("message", cb.MessageID).Err(err).Msg("deleting menu message failed")
		}
	}
	e.sessions.Delete(cb.UserID)
	e.answer(ctx, cb, "")
}

// cleanupPreview removes the preview message and the confirm menu.
func (e *Engine) cleanupPreview(ctx context.Context, sess *domain.Session, cb domain.CallbackPress) {
	if sess.PreviewMessageID != 0 {
		if err := e.transport.DeleteMessage(ctx, sess.ChatID, sess.PreviewMessageID); err != nil {
			e.log.Warn().Int("message", sess.PreviewMessageID).Err(err).Msg("deleting preview failed")
		}
	}
	if err := e.transport.DeleteMessage(ctx, cb.ChatID, cb.MessageID); err != nil {
		e.log.Warn().Int("message", cb.MessageID).Err(err).Msg("deleting confirm menu failed")
	}
}

// handleClose deletes the pressed menu message and drops the session.
func (e *Engine) handleClose(ctx context.Context, cb domain.CallbackPress) {
	if err := e.transport.DeleteMessage(ctx, cb.ChatID, cb.MessageID); err != nil {
		e.log.Warn().Int("message", cb.MessageID).Err(err).Msg("deleting message failed")
	}
	e.sessions.Delete(cb.UserID)
	e.answer(ctx, cb, "")
}

// handleBackToStart rewrites the pressed menu back into the welcome menu.
func (e *Engine) handleBackToStart(ctx context.Context, cb domain.CallbackPress) {
	e.sessions.Delete(cb.UserID)
	e.editMenu(ctx, cb, welcomeBackText, startKeyboard(), false)
	e.answer(ctx, cb, "")
}
