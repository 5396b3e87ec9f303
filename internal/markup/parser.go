// Package markup parses the user-facing button mini-language.
//
// Rows are separated by line breaks; buttons within a row by the literal
// token "&&". Each cell is "label - action", split on the first "-".
// Actions are classified by prefix: http://, https:// and t.me/ open a
// link; "popup:" and "alert:" show their text on press; "share:" opens
// the share picker with its (trimmed) text. Cells without a separator or
// with an unrecognized action are skipped, never fatal; rows left with no
// valid buttons vanish from the layout.
package markup

import (
	"strings"

	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
)

// None is the literal input (case-insensitive) that yields an explicit
// "no buttons" layout.
const None = "none"

// Parser builds button layouts from raw markup text. Parsing is
// deterministic: the same input always yields the same layout.
type Parser struct {
	log *logging.Logger
}

// NewParser creates a parser.
func NewParser(log *logging.Logger) *Parser {
	return &Parser{log: log.Sub("markup")}
}

// Parse converts raw markup into a ButtonLayout. The literal "none"
// produces a layout with None set. Invalid cells are dropped with a
// warning; Parse itself never fails.
func (p *Parser) Parse(text string) domain.ButtonLayout {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, None) {
		return domain.ButtonLayout{None: true}
	}

	var layout domain.ButtonLayout
	for _, line := range strings.Split(trimmed, "\n") {
		var row domain.ButtonRow
		for _, cell := range strings.Split(line, "&&") {
			btn, ok := p.parseCell(cell)
			if ok {
				row = append(row, btn)
			}
		}
		if len(row) > 0 {
			layout.Rows = append(layout.Rows, row)
		}
	}
	return layout
}

// parseCell splits one "label - action" cell. The split is on the first
// "-" so labels may not contain dashes, but URLs and payloads may.
func (p *Parser) parseCell(cell string) (domain.Button, bool) {
	label, action, found := strings.Cut(cell, "-")
	if !found {
		p.log.Warn().Str("cell", cell).Msg("button cell has no separator, skipping")
		return domain.Button{}, false
	}
	label = strings.TrimSpace(label)
	action = strings.TrimSpace(action)

	switch {
	case strings.HasPrefix(action, "http://"),
		strings.HasPrefix(action, "https://"),
		strings.HasPrefix(action, "t.me/"):
		return domain.Button{Label: label, Action: domain.ButtonAction{Kind: domain.ActionLink, Value: action}}, true
	case strings.HasPrefix(action, "popup:"):
		return domain.Button{Label: label, Action: domain.ButtonAction{Kind: domain.ActionPopup, Value: action[len("popup:"):]}}, true
	case strings.HasPrefix(action, "alert:"):
		return domain.Button{Label: label, Action: domain.ButtonAction{Kind: domain.ActionAlert, Value: action[len("alert:"):]}}, true
	case strings.HasPrefix(action, "share:"):
		return domain.Button{Label: label, Action: domain.ButtonAction{Kind: domain.ActionShare, Value: strings.TrimSpace(action[len("share:"):])}}, true
	default:
		p.log.Warn().Str("action", action).Msg("invalid button action, skipping")
		return domain.Button{}, false
	}
}

// IsNone reports whether text is the explicit "none" literal.
func IsNone(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), None)
}
