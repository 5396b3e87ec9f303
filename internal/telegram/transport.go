// Package telegram adapts the Bot API client to the domain's Transport
// interface and runs the long-polling update loop.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
)

// Connect authenticates against the Bot API.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	return api, nil
}

// Transport implements domain.Transport over the Bot API client.
// The underlying client is not context-aware; contexts are accepted for
// interface symmetry and honored before each call.
type Transport struct {
	api *tgbotapi.BotAPI
	log *logging.Logger
}

// NewTransport wraps an authenticated client.
func NewTransport(api *tgbotapi.BotAPI, log *logging.Logger) *Transport {
	return &Transport{api: api, log: log.Sub("telegram")}
}

// notModified wraps the platform's "message is not modified" rejection in
// domain.ErrNotModified so callers can treat it as a distinct outcome.
func notModified(err error) error {
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified") {
		return fmt.Errorf("%w: %v", domain.ErrNotModified, err)
	}
	return err
}

func (t *Transport) SendContent(ctx context.Context, chatID int64, content domain.PendingContent, layout *domain.ButtonLayout) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	markup := encodeLayout(layout)

	var chattable tgbotapi.Chattable
	switch content.Kind {
	case domain.ContentText:
		msg := tgbotapi.NewMessage(chatID, content.Text)
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case domain.ContentPhoto:
		msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(content.FileID))
		msg.Caption = content.Caption
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case domain.ContentVideo:
		msg := tgbotapi.NewVideo(chatID, tgbotapi.FileID(content.FileID))
		msg.Caption = content.Caption
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case domain.ContentDocument:
		msg := tgbotapi.NewDocument(chatID, tgbotapi.FileID(content.FileID))
		msg.Caption = content.Caption
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	default:
		return 0, domain.ErrUnsupportedContentKind
	}

	sent, err := t.api.Send(chattable)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (t *Transport) SendText(ctx context.Context, chatID int64, text string, layout *domain.ButtonLayout, markdown bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if markup := encodeLayout(layout); markup != nil {
		msg.ReplyMarkup = markup
	}
	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (t *Transport) EditContent(ctx context.Context, chatID int64, messageID int, content domain.PendingContent, layout *domain.ButtonLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	markup := encodeLayout(layout)

	if content.Kind == domain.ContentText {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, content.Text)
		edit.ReplyMarkup = markup
		_, err := t.api.Send(edit)
		return notModified(err)
	}

	var media interface{}
	switch content.Kind {
	case domain.ContentPhoto:
		m := tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(content.FileID))
		m.Caption = content.Caption
		media = m
	case domain.ContentVideo:
		m := tgbotapi.NewInputMediaVideo(tgbotapi.FileID(content.FileID))
		m.Caption = content.Caption
		media = m
	case domain.ContentDocument:
		m := tgbotapi.NewInputMediaDocument(tgbotapi.FileID(content.FileID))
		m.Caption = content.Caption
		media = m
	default:
		return domain.ErrUnsupportedContentKind
	}

	edit := tgbotapi.EditMessageMediaConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   messageID,
			ReplyMarkup: markup,
		},
		Media: media,
	}
	_, err := t.api.Request(edit)
	return notModified(err)
}

func (t *Transport) EditButtons(ctx context.Context, chatID int64, messageID int, layout *domain.ButtonLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// A nil markup must be omitted from the request entirely, which is
	// what clears the keyboard.
	edit := tgbotapi.EditMessageReplyMarkupConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   messageID,
			ReplyMarkup: encodeLayout(layout),
		},
	}
	_, err := t.api.Request(edit)
	return notModified(err)
}

func (t *Transport) EditText(ctx context.Context, chatID int64, messageID int, text string, layout *domain.ButtonLayout, markdown bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markdown {
		edit.ParseMode = tgbotapi.ModeMarkdown
	}
	edit.ReplyMarkup = encodeLayout(layout)
	_, err := t.api.Send(edit)
	return notModified(err)
}

func (t *Transport) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (t *Transport) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var cb tgbotapi.CallbackConfig
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	} else {
		cb = tgbotapi.NewCallback(callbackID, text)
	}
	_, err := t.api.Request(cb)
	return err
}

func (t *Transport) GetChat(ctx context.Context, chatID int64) (domain.ChatInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChatInfo{}, err
	}
	chat, err := t.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return domain.ChatInfo{}, err
	}
	return domain.ChatInfo{ID: chat.ID, Title: chat.Title, Type: chat.Type}, nil
}

func (t *Transport) EnsureMember(ctx context.Context, chatID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: t.api.Self.ID,
		},
	})
	return err
}
