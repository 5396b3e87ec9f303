package domain

// Inbound is the transport-independent view of one user message.
// At most one media reference is set; photos carry the platform's
// largest representation.
type Inbound struct {
	UserID     int64
	ChatID     int64
	MessageID  int
	Text       string
	Caption    string
	PhotoID    string
	VideoID    string
	DocumentID string
}

// HasMedia reports whether the message carries a media item.
func (m Inbound) HasMedia() bool {
	return m.PhotoID != "" || m.VideoID != "" || m.DocumentID != ""
}

// CallbackPress is a button press on one of the bot's inline keyboards.
type CallbackPress struct {
	ID        string // platform callback id, must be answered
	UserID    int64
	ChatID    int64
	MessageID int // message carrying the pressed keyboard
	Data      string
}
