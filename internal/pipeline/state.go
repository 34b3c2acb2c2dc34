package pipeline

import "fmt"

// State names each stop in a run's lifecycle. Stages advance strictly in
// order; Done, NoWork, and Failed are terminal.
type State string

const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateExtracting  State = "extracting"
	StateSummarizing State = "summarizing"
	StateOutlining   State = "outlining"
	StateRendering   State = "rendering"
	StateNarrating   State = "narrating"
	StateAssembling  State = "assembling"
	StateDone        State = "done"
	StateNoWork      State = "no_work"
	StateFailed      State = "failed"
)

// StageError reports the stage a run died in and why. Only fatal failures
// become StageErrors; soft failures degrade and the run continues.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
