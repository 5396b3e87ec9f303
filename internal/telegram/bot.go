package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/engine"
	"github.com/ftkrshna/channelpost/internal/logging"
)

const pollTimeoutSeconds = 30

// Bot runs the long-polling loop and feeds updates into the engine.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *engine.Engine
	log    *logging.Logger
}

// NewBot wires the update loop.
func NewBot(api *tgbotapi.BotAPI, eng *engine.Engine, log *logging.Logger) *Bot {
	return &Bot{api: api, engine: eng, log: log.Sub("bot")}
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info().Msg("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.engine.HandleCallback(ctx, toCallback(update.CallbackQuery))
	case update.Message != nil:
		msg := update.Message
		if msg.IsCommand() {
			b.engine.HandleCommand(ctx, msg.Command(), msg.CommandArguments(), toInbound(msg))
			return
		}
		b.engine.HandleMessage(ctx, toInbound(msg))
	}
}

// toInbound flattens a Bot API message. Photos arrive as a size ladder;
// the last entry is the largest and is the one worth republishing.
func toInbound(msg *tgbotapi.Message) domain.Inbound {
	in := domain.Inbound{
		UserID:    msg.From.ID,
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		Text:      msg.Text,
		Caption:   msg.Caption,
	}
	if len(msg.Photo) > 0 {
		in.PhotoID = msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Video != nil {
		in.VideoID = msg.Video.FileID
	}
	if msg.Document != nil {
		in.DocumentID = msg.Document.FileID
	}
	return in
}

func toCallback(cb *tgbotapi.CallbackQuery) domain.CallbackPress {
	press := domain.CallbackPress{
		ID:     cb.ID,
		UserID: cb.From.ID,
		Data:   cb.Data,
	}
	if cb.Message != nil {
		press.ChatID = cb.Message.Chat.ID
		press.MessageID = cb.Message.MessageID
	}
	return press
}
