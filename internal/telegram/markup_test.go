package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout_NilAndEmpty(t *testing.T) {
	assert.Nil(t, encodeLayout(nil))
	assert.Nil(t, encodeLayout(&domain.ButtonLayout{}))
	assert.Nil(t, encodeLayout(&domain.ButtonLayout{None: true}))
}

func TestEncodeLayout_RowsPreserved(t *testing.T) {
	layout := &domain.ButtonLayout{Rows: []domain.ButtonRow{
		domain.Row(domain.Button{Label: "Website", Action: domain.ButtonAction{Kind: domain.ActionLink, Value: "https://example.com"}}),
		domain.Row(
			domain.Button{Label: "Support", Action: domain.ButtonAction{Kind: domain.ActionLink, Value: "t.me/support"}},
			domain.Button{Label: "Share", Action: domain.ButtonAction{Kind: domain.ActionShare, Value: "Join us!"}},
		),
	}}

	markup := encodeLayout(layout)
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 1)
	assert.Len(t, markup.InlineKeyboard[1], 2)

	website := markup.InlineKeyboard[0][0]
	assert.Equal(t, "Website", website.Text)
	require.NotNil(t, website.URL)
	assert.Equal(t, "https://example.com", *website.URL)

	share := markup.InlineKeyboard[1][1]
	require.NotNil(t, share.SwitchInlineQuery)
	assert.Equal(t, "Join us!", *share.SwitchInlineQuery)
}

func TestEncodeButton_PopupAlertCarryPrefix(t *testing.T) {
	popup := encodeButton(domain.Button{Label: "Hi", Action: domain.ButtonAction{Kind: domain.ActionPopup, Value: " See you"}})
	require.NotNil(t, popup.CallbackData)
	assert.Equal(t, "popup: See you", *popup.CallbackData)

	alert := encodeButton(domain.Button{Label: "Stop", Action: domain.ButtonAction{Kind: domain.ActionAlert, Value: "Danger"}})
	require.NotNil(t, alert.CallbackData)
	assert.Equal(t, "alert:Danger", *alert.CallbackData)
}

func TestEncodeButton_CallbackPassthrough(t *testing.T) {
	b := encodeButton(domain.CallbackButton("Close", "close_message"))
	require.NotNil(t, b.CallbackData)
	assert.Equal(t, "close_message", *b.CallbackData)
}

func TestToInbound_LargestPhoto(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 7,
		From:      &tgbotapi.User{ID: 42},
		Chat:      &tgbotapi.Chat{ID: 42},
		Caption:   "caption",
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small"},
			{FileID: "medium"},
			{FileID: "large"},
		},
	}

	in := toInbound(msg)
	assert.Equal(t, "large", in.PhotoID)
	assert.Equal(t, "caption", in.Caption)
	assert.True(t, in.HasMedia())
}

func TestNotModified(t *testing.T) {
	assert.NoError(t, notModified(nil))

	err := notModified(assert.AnError)
	assert.Equal(t, assert.AnError, err)

	wrapped := notModified(errWithText("Bad Request: message is not modified"))
	assert.ErrorIs(t, wrapped, domain.ErrNotModified)
}

type errWithText string

func (e errWithText) Error() string { return string(e) }
