package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Retryable errors (ErrMalformedButtonSpec,
// ErrInvalidTarget) keep the session alive at the same step; the rest end
// the session. None are fatal to the process.
var (
	// ErrUnauthorized marks a non-admin invoking a privileged flow.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedButtonSpec marks button markup the parser cannot use.
	ErrMalformedButtonSpec = errors.New("malformed button spec")

	// ErrUnsupportedContentKind marks a message carrying none of
	// text/photo/video/document.
	ErrUnsupportedContentKind = errors.New("unsupported content kind")

	// ErrInvalidTarget marks an edit target message that cannot be resolved.
	ErrInvalidTarget = errors.New("invalid edit target")

	// ErrNoOpEdit marks an edit with nothing changed.
	ErrNoOpEdit = errors.New("no-op edit")

	// ErrSessionMismatch marks input from a user not owning the session.
	// Dropped silently, never surfaced.
	ErrSessionMismatch = errors.New("session owner mismatch")

	// ErrNotModified is the transport's "message is not modified" outcome,
	// which edit-target validation treats as success.
	ErrNotModified = errors.New("message not modified")
)

// DeliveryError reports a transport rejection of a send or edit, scoped to
// one target channel. Broadcast isolates these per channel.
type DeliveryError struct {
	ChannelID int64
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to channel %d failed: %v", e.ChannelID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
