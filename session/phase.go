// Package session holds the transfer-session state machines: the upload and
// download controllers, the share presenter, and the coordinator that owns
// the current identifier and active tab.
//
// The package is independent of any UI toolkit. Async operations follow a
// begin/finish split: Submit/Fetch validate preconditions and transition to
// PhaseBusy; the caller performs the network exchange and delivers the
// outcome via FinishSubmit/FinishFetch. One operation per controller may be
// in flight at a time; a second begin while busy is a no-op, not a queued
// retry.
package session

// Phase is the discrete state of a controller's in-progress operation.
// Phases are mutually exclusive per controller. Transitions are
// one-directional except failed/settled -> idle on explicit reset.
type Phase int

const (
	// PhaseIdle means no operation is in progress.
	PhaseIdle Phase = iota
	// PhaseBusy means a network exchange is in flight.
	PhaseBusy
	// PhaseSettled means the most recent operation completed successfully.
	PhaseSettled
	// PhaseFailed means the most recent operation failed; prior input is
	// preserved so the user can retry.
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBusy:
		return "busy"
	case PhaseSettled:
		return "settled"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// FileHandle references a user-selected local file. It is replaced wholly
// on new selection and never mutated in place.
type FileHandle struct {
	Path string
	Name string
	Size int64
}
