// Package staging normalizes inbound user messages into PendingContent.
package staging

import (
	"strings"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// Stage produces exactly one PendingContent variant from an inbound
// message, or ErrUnsupportedContentKind if the message carries none of
// text, photo, video, or document. Text wins over media; captions default
// to the empty string.
func Stage(msg domain.Inbound) (domain.PendingContent, error) {
	switch {
	case msg.Text != "":
		return domain.PendingContent{Kind: domain.ContentText, Text: msg.Text}, nil
	case msg.PhotoID != "":
		return domain.PendingContent{Kind: domain.ContentPhoto, FileID: msg.PhotoID, Caption: msg.Caption}, nil
	case msg.VideoID != "":
		return domain.PendingContent{Kind: domain.ContentVideo, FileID: msg.VideoID, Caption: msg.Caption}, nil
	case msg.DocumentID != "":
		return domain.PendingContent{Kind: domain.ContentDocument, FileID: msg.DocumentID, Caption: msg.Caption}, nil
	default:
		return domain.PendingContent{}, domain.ErrUnsupportedContentKind
	}
}

// StageWithMarkup stages the message and additionally diverts embedded
// button markup. The body is scanned line by line; once a line starts
// (case-insensitively) with "format=" or the common misspelling
// "formet=", the remainder after the first "=" and every subsequent line
// become button markup. All preceding lines form the body or caption.
// The returned markup text is empty when no format line was present.
//
// Only the Post flow's initial message gets this treatment.
func StageWithMarkup(msg domain.Inbound) (domain.PendingContent, string, error) {
	content, err := Stage(msg)
	if err != nil {
		return domain.PendingContent{}, "", err
	}

	body, buttonText := splitFormat(content.Body())
	if content.Kind == domain.ContentText {
		content.Text = body
	} else {
		content.Caption = body
	}
	return content, buttonText, nil
}

func splitFormat(text string) (body, buttons string) {
	var contentLines, buttonLines []string
	started := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "format="), strings.HasPrefix(lower, "formet="):
			started = true
			_, after, _ := strings.Cut(trimmed, "=")
			buttonLines = append(buttonLines, strings.TrimSpace(after))
		case started:
			buttonLines = append(buttonLines, trimmed)
		default:
			contentLines = append(contentLines, trimmed)
		}
	}
	body = strings.TrimSpace(strings.Join(contentLines, "\n"))
	buttons = strings.TrimSpace(strings.Join(buttonLines, "\n"))
	return body, buttons
}
