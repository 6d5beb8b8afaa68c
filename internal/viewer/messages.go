package viewer

import (
	"github.com/llehouerou/iv/internal/media"
)

// ItemsLoadedMsg carries the result of a reload. Results of a superseded
// reload (older Gen) are dropped.
type ItemsLoadedMsg struct {
	Gen   uint64
	Items []media.Record
}

// PollTickMsg asks the viewer to sample the adapter. Ticks scheduled before
// polling was stopped carry an old Gen and are dropped.
type PollTickMsg struct {
	Gen uint64
}

// ScrubMsg moves the progress thumb while dragging. Only the display changes.
type ScrubMsg struct {
	Fraction float64
}

// ScrubEndMsg releases the thumb: the adapter seeks once to Fraction.
type ScrubEndMsg struct {
	Fraction float64
}

// CopiedMsg reports the outcome of copying the info line labelled Label.
type CopiedMsg struct {
	Label string
	Err   error
}

// Emptied tells the host the viewer has no page left to show.
type Emptied struct{}

// ActionType implements action.Action.
func (Emptied) ActionType() string { return "viewer.emptied" }
