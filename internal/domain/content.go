// Package domain holds the core types shared across the bot: channels,
// staged content, button layouts, conversation sessions, and the error
// taxonomy.
package domain

// ContentKind identifies which variant a PendingContent carries.
type ContentKind string

const (
	ContentText     ContentKind = "text"
	ContentPhoto    ContentKind = "photo"
	ContentVideo    ContentKind = "video"
	ContentDocument ContentKind = "document"
)

// PendingContent is the staged body of an in-flight post: either a text
// body or exactly one media item with an optional caption. A conversation
// holds at most one instance; supplying new content replaces it wholesale.
type PendingContent struct {
	Kind    ContentKind
	Text    string // body, ContentText only
	FileID  string // platform media reference, media kinds only
	Caption string // optional, media kinds only
}

// Body returns the user-visible text of the content regardless of kind.
func (c PendingContent) Body() string {
	if c.Kind == ContentText {
		return c.Text
	}
	return c.Caption
}
