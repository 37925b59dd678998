package session

import (
	"github.com/pithecene-io/peerlink/log"
)

// UploadController drives selection -> submission -> identifier receipt.
//
// It owns its own phase and error state. Exactly one submission may be in
// flight; Submit while busy is a no-op. On settle it emits the identifier
// to the coordinator; on failure it emits nothing and preserves the
// selection for a manual retry.
type UploadController struct {
	coord *Coordinator
	log   *log.SugaredLogger

	phase      Phase
	file       *FileHandle
	identifier string
	message    string
}

// NewUploadController creates an upload controller bound to coord.
func NewUploadController(coord *Coordinator, logger *log.SugaredLogger) *UploadController {
	return &UploadController{coord: coord, log: logger}
}

// SelectFile replaces any prior selection and clears any prior error. A
// selection from PhaseFailed or PhaseSettled starts a fresh session at
// PhaseIdle. No-op while a submission is in flight.
func (u *UploadController) SelectFile(h FileHandle) {
	if u.phase == PhaseBusy {
		return
	}
	u.file = &h
	u.message = ""
	if u.phase == PhaseFailed || u.phase == PhaseSettled {
		u.identifier = ""
		u.phase = PhaseIdle
	}
}

// Submit validates preconditions and transitions to PhaseBusy. It reports
// whether a submission was started; the caller performs the upload exchange
// and delivers the outcome via FinishSubmit.
//
// A settled session cannot be re-submitted: PhaseSettled is left only via
// Reset or a new selection, so the issued identifier is never silently
// replaced.
func (u *UploadController) Submit() bool {
	if u.phase == PhaseBusy || u.phase == PhaseSettled {
		return false
	}
	if u.file == nil {
		u.message = "Select a file first."
		return false
	}
	u.phase = PhaseBusy
	u.message = ""
	return true
}

// FinishSubmit records the outcome of the in-flight submission. Ignored
// unless a submission is in flight. A non-nil error, or a success outcome
// carrying an empty identifier, transitions to PhaseFailed without emitting
// an identifier; success transitions to PhaseSettled and emits the
// identifier to the coordinator.
func (u *UploadController) FinishSubmit(id string, err error) {
	if u.phase != PhaseBusy {
		return
	}
	if err != nil {
		u.phase = PhaseFailed
		u.message = FailureMessage("upload", err)
		u.log.Warnf("upload failed: %v", err)
		return
	}
	if id == "" {
		u.phase = PhaseFailed
		u.message = "Invalid server response."
		u.log.Warnf("upload settled without an identifier")
		return
	}
	u.identifier = id
	u.phase = PhaseSettled
	u.log.Infof("upload settled, identifier issued")
	u.coord.IdentifierProduced(id)
}

// Reset clears file, identifier, and error, and emits an absent identifier
// so the share view reverts to its empty state. Always permitted.
func (u *UploadController) Reset() {
	u.file = nil
	u.identifier = ""
	u.message = ""
	u.phase = PhaseIdle
	u.coord.IdentifierProduced("")
}

// Phase returns the controller's current phase.
func (u *UploadController) Phase() Phase { return u.phase }

// File returns the current selection, or nil.
func (u *UploadController) File() *FileHandle { return u.file }

// Identifier returns the identifier from the most recent settle, or "".
func (u *UploadController) Identifier() string { return u.identifier }

// Message returns the current inline message, or "".
func (u *UploadController) Message() string { return u.message }
