package player

// State represents the adapter state machine.
//
//	┌────────────┐    prepare    ┌──────────┐     play     ┌──────────┐
//	│ Unprepared │ ─────────────▶│  Paused  │ ────────────▶│  Playing │
//	└────────────┘               └──────────┘◀──────────── └──────────┘
//	      │                           │          pause           │
//	      │ release                   │ release                  │ release
//	      ▼                           ▼                          ▼
//	                         ┌──────────────┐
//	                         │   Released   │
//	                         └──────────────┘
//
// Valid transitions:
//   - Unprepared → Paused   (via Prepare)
//   - Paused     → Playing  (via Play)
//   - Playing    → Paused   (via Pause)
//   - any        → Released (via Release)
//
// Invalid/No-op transitions (handled gracefully):
//   - Play/Pause/Seek while Unprepared or Released (ignored)
//   - Playing → Playing, Paused → Paused (ignored)
//   - Released → Released (ignored)
type State int

const (
	Unprepared State = iota
	Paused
	Playing
	Released
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unprepared:
		return "Unprepared"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// IsReady returns true if transport controls apply (Paused or Playing).
func (s State) IsReady() bool {
	return s == Paused || s == Playing
}

// CanPlay returns true if the state allows starting playback.
func (s State) CanPlay() bool {
	return s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}
