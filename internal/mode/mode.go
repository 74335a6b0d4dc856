// Package mode defines the closed sets of controller states: the input
// mode that decides how keys are routed, and the run state of the loop.
package mode

// Input decides which key table the controller dispatches on.
type Input int

const (
	Normal Input = iota
	Editing
)

func (m Input) String() string {
	switch m {
	case Normal:
		return "normal"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Run is the lifecycle of the event loop. Quitting is terminal.
type Run int

const (
	Running Run = iota
	Quitting
)

func (r Run) String() string {
	switch r {
	case Running:
		return "running"
	case Quitting:
		return "quitting"
	default:
		return "unknown"
	}
}
