package engine

import (
	"fmt"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// Callback data for the bot's own menus. Published posts additionally
// carry "popup:"/"alert:" data emitted by the transport's markup encoder.
const (
	cbStartPost           = "start_post"
	cbStartEdit           = "start_edit"
	cbStartBroadcast      = "start_broadcast"
	cbStartHelp           = "start_help"
	cbStartDefaultButtons = "start_default_buttons"
	cbStartMyChannels     = "start_my_channels"

	cbSetDefaultButtons   = "set_default_buttons"
	cbClearDefaultButtons = "clear_default_buttons"

	cbClearAllChannels    = "clear_all_channels"
	cbDeleteChannelPrefix = "delete_channel:"
	cbViewChannelPrefix   = "view_channel:"
	cbSelectChannelPrefix = "select_channel:"

	cbConfirmPost  = "confirm_post"
	cbCancelAction = "cancel_action"
	cbBackAction   = "back_action"
	cbCloseMessage = "close_message"
	cbBackToStart  = "back_to_start"

	cbPopupPrefix = "popup:"
	cbAlertPrefix = "alert:"
)

func startKeyboard() *domain.ButtonLayout {
	return &domain.ButtonLayout{Rows: []domain.ButtonRow{
		domain.Row(domain.CallbackButton("Post", cbStartPost), domain.CallbackButton("Edit", cbStartEdit)),
		domain.Row(domain.CallbackButton("Broadcast", cbStartBroadcast), domain.CallbackButton("Help", cbStartHelp)),
		domain.Row(domain.CallbackButton("Default Buttons", cbStartDefaultButtons), domain.CallbackButton("My Channels", cbStartMyChannels)),
		domain.Row(domain.CallbackButton("Close", cbCloseMessage)),
	}}
}

func defaultButtonsKeyboard() *domain.ButtonLayout {
	return &domain.ButtonLayout{Rows: []domain.ButtonRow{
		domain.Row(domain.CallbackButton("Set Default Buttons", cbSetDefaultButtons), domain.CallbackButton("Clear Default Buttons", cbClearDefaultButtons)),
		domain.Row(domain.CallbackButton("Back", cbBackToStart), domain.CallbackButton("Close", cbCloseMessage)),
	}}
}

// myChannelsKeyboard renders one row per stored channel: the title (inert)
// next to a numbered delete button.
func myChannelsKeyboard(channels []domain.Channel) *domain.ButtonLayout {
	layout := &domain.ButtonLayout{}
	for i, ch := range channels {
		layout.Rows = append(layout.Rows, domain.Row(
			domain.CallbackButton(ch.Title, fmt.Sprintf("%s%d", cbViewChannelPrefix, ch.ID)),
			domain.CallbackButton(fmt.Sprintf("🗑️%d", i+1), fmt.Sprintf("%s%d", cbDeleteChannelPrefix, ch.ID)),
		))
	}
	layout.Rows = append(layout.Rows, domain.Row(
		domain.CallbackButton("Clear All", cbClearAllChannels),
		domain.CallbackButton("Back", cbBackToStart),
		domain.CallbackButton("Close", cbCloseMessage),
	))
	return layout
}

// selectionKeyboard renders one channel per row plus the navigation row.
// With no channels it degrades to the navigation row alone, which the
// prompt steps use as their Cancel/Back/Close footer.
func selectionKeyboard(channels []domain.Channel, showBack, showClose bool) *domain.ButtonLayout {
	layout := &domain.ButtonLayout{}
	for _, ch := range channels {
		layout.Rows = append(layout.Rows, domain.Row(
			domain.CallbackButton(ch.Title, fmt.Sprintf("%s%d", cbSelectChannelPrefix, ch.ID)),
		))
	}
	nav := domain.Row(domain.CallbackButton("Cancel", cbCancelAction))
	if showBack {
		nav = append(nav, domain.CallbackButton("Back", cbBackAction))
	}
	if showClose {
		nav = append(nav, domain.CallbackButton("Close", cbCloseMessage))
	}
	layout.Rows = append(layout.Rows, nav)
	return layout
}

func confirmKeyboard() *domain.ButtonLayout {
	return &domain.ButtonLayout{Rows: []domain.ButtonRow{
		domain.Row(domain.CallbackButton("Confirm", cbConfirmPost), domain.CallbackButton("Cancel", cbCancelAction)),
		domain.Row(domain.CallbackButton("Close", cbCloseMessage)),
	}}
}

func helpKeyboard() *domain.ButtonLayout {
	return &domain.ButtonLayout{Rows: []domain.ButtonRow{
		domain.Row(domain.CallbackButton("Back to Start", cbBackToStart)),
	}}
}
