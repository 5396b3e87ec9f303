package domain

// ActionKind identifies what pressing a button does.
type ActionKind string

const (
	// ActionLink opens a URL.
	ActionLink ActionKind = "link"
	// ActionPopup shows a non-blocking toast with the payload text.
	ActionPopup ActionKind = "popup"
	// ActionAlert shows a blocking alert with the payload text.
	ActionAlert ActionKind = "alert"
	// ActionShare opens the share/forward picker pre-filled with the payload.
	ActionShare ActionKind = "share"
	// ActionCallback carries opaque callback data for the bot's own menus.
	ActionCallback ActionKind = "callback"
)

// ButtonAction is a closed tagged variant: the kind selects how Value is
// interpreted (URL, popup/alert text, share payload, or callback data).
type ButtonAction struct {
	Kind  ActionKind
	Value string
}

// Button is one inline button.
type Button struct {
	Label  string
	Action ButtonAction
}

// ButtonRow is an ordered row of buttons.
type ButtonRow []Button

// ButtonLayout is the parsed, renderable structure of inline buttons.
// Immutable once built. None marks the explicit "none" input, which is
// distinct from an empty or all-invalid layout: "none" deletes stored
// default buttons, an all-invalid string does not.
type ButtonLayout struct {
	Rows []ButtonRow
	None bool
}

// Empty reports whether the layout renders no buttons.
func (l ButtonLayout) Empty() bool {
	return len(l.Rows) == 0
}

// ButtonCount returns the total number of buttons across all rows.
func (l ButtonLayout) ButtonCount() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row)
	}
	return n
}

// Row is a convenience constructor used by menu builders.
func Row(buttons ...Button) ButtonRow {
	return ButtonRow(buttons)
}

// CallbackButton builds a button carrying opaque callback data.
func CallbackButton(label, data string) Button {
	return Button{Label: label, Action: ButtonAction{Kind: ActionCallback, Value: data}}
}
