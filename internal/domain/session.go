package domain

import "time"

// Flow names one of the supported multi-step user journeys.
type Flow string

const (
	FlowPost           Flow = "post"
	FlowEdit           Flow = "edit"
	FlowBroadcast      Flow = "broadcast"
	FlowDefaultButtons Flow = "default_buttons"
)

// State is a step within a flow.
type State string

const (
	StateSelectChannel  State = "select_channel"
	StateAwaitMessage   State = "await_message"
	StateAwaitMessageID State = "await_message_id"
	StateAwaitContent   State = "await_content"
	StateAwaitButtons   State = "await_buttons"
	StateAwaitPreview   State = "await_preview"
)

// flowStates is each flow's state sequence, in order.
var flowStates = map[Flow][]State{
	FlowPost:           {StateSelectChannel, StateAwaitMessage, StateAwaitButtons, StateAwaitPreview},
	FlowEdit:           {StateSelectChannel, StateAwaitMessageID, StateAwaitContent, StateAwaitButtons, StateAwaitPreview},
	FlowBroadcast:      {StateAwaitMessage, StateAwaitButtons, StateAwaitPreview},
	FlowDefaultButtons: {StateAwaitButtons},
}

// ValidState reports whether state belongs to the flow's state set.
func ValidState(flow Flow, state State) bool {
	for _, s := range flowStates[flow] {
		if s == state {
			return true
		}
	}
	return false
}

// PreviousState computes the step Back navigates to from (flow, state).
// The boolean is false at a flow's first state, where Back exits the flow.
func PreviousState(flow Flow, state State) (State, bool) {
	states := flowStates[flow]
	for i, s := range states {
		if s == state {
			if i == 0 {
				return "", false
			}
			return states[i-1], true
		}
	}
	return "", false
}

// Session is the live per-user state of an in-progress flow. Exactly one
// session exists per user; starting a new flow replaces it. The engine is
// the sole owner for the session's lifetime.
type Session struct {
	ID               string // diagnostic identity, appears in logs only
	UserID           int64
	ChatID           int64 // private chat hosting the conversation
	Flow             Flow
	State            State
	ChannelID        int64
	EditMessageID    int
	Content          *PendingContent
	Layout           *ButtonLayout
	KeepContent      bool
	KeepButtons      bool
	PreviewMessageID int
	CreatedAt        time.Time
}

// Owns reports whether an update from userID may touch this session.
// Updates from anyone else are noise from unrelated actors and are
// silently dropped.
func (s *Session) Owns(userID int64) bool {
	return s.UserID == userID
}
