package core

// Intent represents a semantic player action, abstracted from physical key presses
// and pointer taps. Games react to intents rather than raw input.
type Intent int

const (
	IntentNone           Intent = iota
	IntentLaunch                // Space, or a tap above the paddle before launch
	IntentMoveLeftStart         // Left arrow / A pressed, or left control pressed
	IntentMoveLeftStop          // Left arrow / A released
	IntentMoveRightStart        // Right arrow / D pressed, or right control pressed
	IntentMoveRightStop         // Right arrow / D released
	IntentReset                 // Space / Enter released, or replay tapped, after the game ends
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentLaunch:
		return "launch"
	case IntentMoveLeftStart:
		return "move-left-start"
	case IntentMoveLeftStop:
		return "move-left-stop"
	case IntentMoveRightStart:
		return "move-right-start"
	case IntentMoveRightStop:
		return "move-right-stop"
	case IntentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ListenerSet names a group of input listeners that the shell attaches or
// detaches as a unit when a game asks for it.
type ListenerSet int

const (
	ListenersNone  ListenerSet = iota
	ListenersPlay              // Key down/up and pointer down/up for steering and launching
	ListenersReset             // Replay button and Space/Enter release
)

// String returns a human-readable name for the listener set.
func (l ListenerSet) String() string {
	switch l {
	case ListenersPlay:
		return "play"
	case ListenersReset:
		return "reset"
	default:
		return "none"
	}
}
