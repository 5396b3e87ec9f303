package domain

import "context"

// Channel is a managed broadcast target. Static channels come from
// configuration, are read-only, and are never deleted; the rest live in
// the channel store.
type Channel struct {
	ID     int64 // platform chat id, conventionally prefixed -100
	Title  string
	Static bool
}

// ChatInfo is the transport's view of a chat, used to verify that an id
// actually names a channel and to resolve its title.
type ChatInfo struct {
	ID    int64
	Title string
	Type  string // "channel", "group", "private", ...
}

// IsChannel reports whether the chat is a broadcast channel.
func (c ChatInfo) IsChannel() bool {
	return c.Type == "channel"
}

// Transport is the messaging platform capability set the bot depends on.
// The core never touches a concrete client; internal/telegram provides the
// production implementation.
type Transport interface {
	// SendContent delivers staged content as a new message and returns its id.
	SendContent(ctx context.Context, chatID int64, content PendingContent, layout *ButtonLayout) (int, error)

	// SendText sends a plain prompt or notice, optionally with a keyboard.
	SendText(ctx context.Context, chatID int64, text string, layout *ButtonLayout, markdown bool) (int, error)

	// EditContent replaces an existing message's body and keyboard together.
	EditContent(ctx context.Context, chatID int64, messageID int, content PendingContent, layout *ButtonLayout) error

	// EditButtons replaces only the keyboard, preserving the body. A nil
	// layout clears the keyboard. Returns an error wrapping ErrNotModified
	// when the platform reports the message is already in that state.
	EditButtons(ctx context.Context, chatID int64, messageID int, layout *ButtonLayout) error

	// EditText rewrites a prompt message in place (menu navigation).
	EditText(ctx context.Context, chatID int64, messageID int, text string, layout *ButtonLayout, markdown bool) error

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// AnswerCallback acknowledges a button press, optionally showing text
	// as a toast (alert=false) or a blocking alert (alert=true).
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error

	// GetChat fetches chat metadata.
	GetChat(ctx context.Context, chatID int64) (ChatInfo, error)

	// EnsureMember verifies the bot itself is a member of the chat.
	EnsureMember(ctx context.Context, chatID int64) error
}
