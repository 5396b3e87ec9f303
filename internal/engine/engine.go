// Package engine is the conversation core: it routes commands, messages,
// and button presses into the Post, Edit, Broadcast, and Default Buttons
// flows and owns all per-user session state. It talks to the platform
// only through the Transport and Dispatcher, so the whole package runs
// against fakes in tests.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ftkrshna/channelpost/internal/directory"
	"github.com/ftkrshna/channelpost/internal/dispatch"
	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/store"
)

// Engine drives the conversational flows.
type Engine struct {
	sessions   *Sessions
	transport  domain.Transport
	dispatcher *dispatch.Dispatcher
	directory  *directory.Directory
	channels   *store.ChannelStore
	buttons    *store.ButtonStore
	parser     *markup.Parser
	admins     map[int64]bool
	log        *logging.Logger
}

// New wires the engine. The sessions store is injected so tests and the
// runtime share the same lifecycle.
func New(
	sessions *Sessions,
	transport domain.Transport,
	dispatcher *dispatch.Dispatcher,
	dir *directory.Directory,
	channels *store.ChannelStore,
	buttons *store.ButtonStore,
	parser *markup.Parser,
	adminIDs []int64,
	log *logging.Logger,
) *Engine {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Engine{
		sessions:   sessions,
		transport:  transport,
		dispatcher: dispatcher,
		directory:  dir,
		channels:   channels,
		buttons:    buttons,
		parser:     parser,
		admins:     admins,
		log:        log.Sub("engine"),
	}
}

func (e *Engine) authorized(userID int64) bool {
	return e.admins[userID]
}

// newSession replaces any live session for the user with a fresh one.
func (e *Engine) newSession(userID, chatID int64, flow domain.Flow, state domain.State) *domain.Session {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ChatID:    chatID,
		Flow:      flow,
		State:     state,
		CreatedAt: time.Now(),
	}
	e.sessions.Put(sess)
	e.log.Info().Str("session", sess.ID).Int64("user", userID).Str("flow", string(flow)).Msg("session started")
	return sess
}

func (e *Engine) reply(ctx context.Context, chatID int64, text string) {
	if _, err := e.transport.SendText(ctx, chatID, text, nil, false); err != nil {
		e.log.Error().Int64("chat", chatID).Err(err).Msg("sending reply failed")
	}
}

// HandleCommand processes a slash command from a private chat.
func (e *Engine) HandleCommand(ctx context.Context, command, args string, msg domain.Inbound) {
	e.log.Info().Str("command", command).Int64("user", msg.UserID).Msg("command received")
	switch strings.ToLower(command) {
	case "start":
		e.sessions.Delete(msg.UserID)
		if _, err := e.transport.SendText(ctx, msg.ChatID, startText, startKeyboard(), true); err != nil {
			e.log.Error().Err(err).Msg("sending start menu failed")
		}
	case "help":
		e.sessions.Delete(msg.UserID)
		if _, err := e.transport.SendText(ctx, msg.ChatID, helpText, helpKeyboard(), true); err != nil {
			e.log.Error().Err(err).Msg("sending help failed")
		}
	case "add":
		e.handleAdd(ctx, args, msg)
	case "post":
		e.startPost(ctx, msg.UserID, msg.ChatID)
	case "edit":
		e.startEdit(ctx, msg.UserID, msg.ChatID)
	case "broadcast":
		e.startBroadcast(ctx, msg.UserID, msg.ChatID)
	case "setdefaultbtns":
		e.startDefaultButtons(ctx, msg.UserID, msg.ChatID, false)
	case "cancel":
		e.sessions.Delete(msg.UserID)
		e.reply(ctx, msg.ChatID, canceledText)
	default:
		e.reply(ctx, msg.ChatID, unexpectedInputText)
	}
}

// HandleMessage routes a non-command message to the step the user's
// session is waiting on.
func (e *Engine) HandleMessage(ctx context.Context, msg domain.Inbound) {
	sess, ok := e.sessions.Get(msg.UserID)
	if !ok {
		e.reply(ctx, msg.ChatID, unexpectedInputText)
		return
	}
	if !sess.Owns(msg.UserID) {
		e.log.Warn().Str("session", sess.ID).Int64("user", msg.UserID).Msg("session owner mismatch, dropping")
		return
	}

	switch {
	case sess.Flow == domain.FlowPost && sess.State == domain.StateAwaitMessage:
		e.receivePostMessage(ctx, sess, msg)
	case sess.Flow == domain.FlowPost && sess.State == domain.StateAwaitButtons:
		e.receivePostButtons(ctx, sess, msg)
	case sess.Flow == domain.FlowEdit && sess.State == domain.StateAwaitMessageID:
		e.receiveMessageID(ctx, sess, msg)
	case sess.Flow == domain.FlowEdit && sess.State == domain.StateAwaitContent:
		e.receiveEditContent(ctx, sess, msg)
	case sess.Flow == domain.FlowEdit && sess.State == domain.StateAwaitButtons:
		e.receiveEditButtons(ctx, sess, msg)
	case sess.Flow == domain.FlowBroadcast && sess.State == domain.StateAwaitMessage:
		e.receiveBroadcastMessage(ctx, sess, msg)
	case sess.Flow == domain.FlowBroadcast && sess.State == domain.StateAwaitButtons:
		e.receiveBroadcastButtons(ctx, sess, msg)
	case sess.Flow == domain.FlowDefaultButtons && sess.State == domain.StateAwaitButtons:
		e.receiveDefaultButtons(ctx, sess, msg)
	default:
		e.reply(ctx, msg.ChatID, unexpectedInputText)
	}
}

// buttonText extracts the text a buttons step works on. A message without
// text in a buttons step is a malformed button spec; the step is retried.
func (e *Engine) buttonText(ctx context.Context, sess *domain.Session, msg domain.Inbound) (string, bool) {
	if msg.Text == "" {
		e.log.Warn().Str("session", sess.ID).Err(domain.ErrMalformedButtonSpec).Msg("non-text input in buttons step")
		e.reply(ctx, msg.ChatID, invalidButtonsText)
		return "", false
	}
	return strings.TrimSpace(msg.Text), true
}

// sendPreview renders the pending content (or the keep-content
// placeholder) in the user's private chat and records the preview id.
func (e *Engine) sendPreview(ctx context.Context, sess *domain.Session) error {
	var (
		msgID int
		err   error
	)
	if sess.KeepContent {
		msgID, err = e.transport.SendText(ctx, sess.ChatID, keepContentPreviewText, sess.Layout, false)
	} else {
		msgID, err = e.transport.SendContent(ctx, sess.ChatID, *sess.Content, sess.Layout)
	}
	if err != nil {
		return err
	}
	sess.PreviewMessageID = msgID
	return nil
}

// confirmPreview moves the session to the preview step.
func (e *Engine) confirmPreview(ctx context.Context, sess *domain.Session, confirmText string) {
	if err := e.sendPreview(ctx, sess); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending preview failed")
		if sess.Flow == domain.FlowEdit {
			e.reply(ctx, sess.ChatID, editFailedPreviewText)
		} else {
			e.reply(ctx, sess.ChatID, fmt.Sprintf("Error sending preview: %v", err))
		}
		e.sessions.Delete(sess.UserID)
		return
	}
	sess.State = domain.StateAwaitPreview
	if _, err := e.transport.SendText(ctx, sess.ChatID, confirmText, confirmKeyboard(), false); err != nil {
		e.log.Error().Str("session", sess.ID).Err(err).Msg("sending confirm prompt failed")
	}
}

// handleAdd registers a channel: exactly one argument, id prefixed -100,
// and the chat must actually be a channel.
func (e *Engine) handleAdd(ctx context.Context, args string, msg domain.Inbound) {
	if !e.authorized(msg.UserID) {
		e.log.Warn().Int64("user", msg.UserID).Msg("unauthorized /add attempt")
		e.reply(ctx, msg.ChatID, unauthorizedText)
		return
	}
	fields := strings.Fields(args)
	if len(fields) != 1 || !strings.HasPrefix(fields[0], "-100") {
		e.reply(ctx, msg.ChatID, "Usage: /add -100xxxxxx")
		return
	}
	channelID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		e.reply(ctx, msg.ChatID, "Invalid channel ID format.")
		return
	}
	info, err := e.transport.GetChat(ctx, channelID)
	if err != nil {
		e.reply(ctx, msg.ChatID, fmt.Sprintf("Error: %v", err))
		return
	}
	if !info.IsChannel() {
		e.reply(ctx, msg.ChatID, "The provided ID is not a channel.")
		return
	}
	inserted, err := e.channels.Add(channelID, info.Title)
	if err != nil {
		e.log.Error().Int64("channel", channelID).Err(err).Msg("adding channel failed")
		e.reply(ctx, msg.ChatID, "An unexpected error occurred.")
		return
	}
	if inserted {
		e.reply(ctx, msg.ChatID, fmt.Sprintf("✅ Channel '%s' has been added to the database.", info.Title))
	} else {
		e.reply(ctx, msg.ChatID, fmt.Sprintf("Channel '%s' already exists.", info.Title))
	}
}
