package state

// State identifies a finite-state-machine step used in conversations.
type State string

// Session stores conversation state and a scratch value carried between
// steps of a multi-step input flow.
type Session struct {
	State      State
	Scratch    string
	HasScratch bool
}

// Manager orchestrates user sessions and FSM state transitions.
// Implementations must be safe for concurrent use; each user's own
// messages are handled one at a time by the bot runtime.
type Manager interface {
	GetState(userID int64) State
	SetState(userID int64, st State)

	// Scratch reports the pending scratch value captured by the previous
	// step of a multi-step flow, if any.
	Scratch(userID int64) (string, bool)
	SetScratch(userID int64, value string)
	ClearScratch(userID int64)

	// Reset returns the user to the default state and discards scratch data.
	Reset(userID int64)
}
