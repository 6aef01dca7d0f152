package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone               Action = iota
	ActionStart                     // Space/Enter on the start screen
	ActionJump                      // Space, W, Up while running
	ActionReset                     // Space/R after game over or win
	ActionEnvelopeClick             // Click or Enter on the intro envelope
	ActionLetterStartClick          // Click or Enter on the letter's start control
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionEnvelopeClick:
		return "EnvelopeClick"
	case ActionLetterStartClick:
		return "LetterStartClick"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete input. Clicks may carry a world-space point;
// keyboard-driven clicks leave HasPoint unset and always hit their target.
type InputEvent struct {
	Action   Action
	X, Y     float64
	HasPoint bool
}

// NewInputEvent creates an event without a pointer position.
func NewInputEvent(a Action) InputEvent {
	return InputEvent{Action: a}
}

// NewClickEvent creates a click event at a world-space point.
func NewClickEvent(a Action, x, y float64) InputEvent {
	return InputEvent{Action: a, X: x, Y: y, HasPoint: true}
}

// InputQueue collects events between ticks and hands them to the simulation
// in arrival order, once per tick.
type InputQueue struct {
	events []InputEvent
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{events: make([]InputEvent, 0, 8)}
}

// Push appends an event.
func (q *InputQueue) Push(e InputEvent) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *InputQueue) Drain() []InputEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]InputEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
