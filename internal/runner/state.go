// Package runner implements the Run For Love simulation: the top-level state
// machine, per-tick physics, spawn pacing, the intro sequence and the scripted
// win animation. Rendering and audio are collaborators it calls into.
package runner

import "time"

// GameState is the top-level phase of the game. Exactly one is active.
type GameState int

const (
	StateIntro GameState = iota
	StateStart
	StatePlaying
	StateGameOver
	StateWin
	StateWinAnimation
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	case StateWinAnimation:
		return "win_animation"
	default:
		return "unknown"
	}
}

// PlayMode is the level progression nested inside a run.
// It only ever advances forward.
type PlayMode int

const (
	ModeNormal PlayMode = iota
	ModeAltCostume
	ModeFinale
)

// String returns a human-readable name for the mode.
func (m PlayMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAltCostume:
		return "alt_costume"
	case ModeFinale:
		return "finale"
	default:
		return "unknown"
	}
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventModeChanged
	EventJump
	EventCollect
	EventFreeHit
	EventWinStage
	EventEnvelopeOpened
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventModeChanged:
		return "mode_changed"
	case EventJump:
		return "jump"
	case EventCollect:
		return "collect"
	case EventFreeHit:
		return "free_hit"
	case EventWinStage:
		return "win_stage"
	case EventEnvelopeOpened:
		return "envelope_opened"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the host to log or persist.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	From    GameState
	To      GameState
	Mode    PlayMode
	Stage   WinStage
	Score   int
	RunTime time.Duration
}

// StepResult reports the outcome of one simulation step.
type StepResult struct {
	State  GameState
	Mode   PlayMode
	Score  int
	Events []Event
}

// Outcome summarises a finished run for persistence.
type Outcome struct {
	Result       string // "gameover" or "win"
	Mode         PlayMode
	Score        int
	Collectibles int
	Duration     time.Duration
}
