package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// encodeLayout converts a button layout to the wire keyboard. A nil or
// empty layout yields nil, which callers translate to "no keyboard".
// Popup and alert buttons re-attach their prefix as callback data so a
// press round-trips back to the engine carrying its payload.
func encodeLayout(layout *domain.ButtonLayout) *tgbotapi.InlineKeyboardMarkup {
	if layout == nil || layout.Empty() {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(layout.Rows))
	for _, row := range layout.Rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, encodeButton(b))
		}
		rows = append(rows, btns)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func encodeButton(b domain.Button) tgbotapi.InlineKeyboardButton {
	switch b.Action.Kind {
	case domain.ActionLink:
		return tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.Action.Value)
	case domain.ActionPopup:
		return tgbotapi.NewInlineKeyboardButtonData(b.Label, "popup:"+b.Action.Value)
	case domain.ActionAlert:
		return tgbotapi.NewInlineKeyboardButtonData(b.Label, "alert:"+b.Action.Value)
	case domain.ActionShare:
		return tgbotapi.NewInlineKeyboardButtonSwitch(b.Label, b.Action.Value)
	default:
		return tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action.Value)
	}
}
