package session

import (
	"strings"

	"github.com/pithecene-io/peerlink/log"
	"github.com/pithecene-io/peerlink/transfer"
)

// Saver materializes a downloaded payload as a local file and returns the
// path it was written to.
type Saver func(name string, data []byte) (string, error)

// ClipboardReader reads the platform clipboard.
type ClipboardReader func() (string, error)

// DownloadController drives identifier entry -> retrieval -> local save.
//
// Retrieval is one request-response exchange; a second Fetch while one is in
// flight is a no-op. Both outcomes return the phase to PhaseIdle: success is
// transient (the input clears, a status line remembers the saved path) and
// failure surfaces an inline message with the input preserved for a manual
// retry.
type DownloadController struct {
	save     Saver
	readClip ClipboardReader
	log      *log.SugaredLogger

	phase     Phase
	input     string
	message   string
	lastSaved string
}

// NewDownloadController creates a download controller with the given save
// and clipboard capabilities.
func NewDownloadController(save Saver, readClip ClipboardReader, logger *log.SugaredLogger) *DownloadController {
	return &DownloadController{save: save, readClip: readClip, log: logger}
}

// SetInput replaces the identifier input. Free-form; trimmed only at use.
// No-op while a retrieval is in flight.
func (d *DownloadController) SetInput(text string) {
	if d.phase == PhaseBusy {
		return
	}
	d.input = text
}

// Identifier returns the trimmed identifier the next Fetch would request.
func (d *DownloadController) Identifier() string {
	return strings.TrimSpace(d.input)
}

// Fetch validates preconditions and transitions to PhaseBusy. It reports
// whether a retrieval was started; the caller performs the download
// exchange and delivers the outcome via FinishFetch.
func (d *DownloadController) Fetch() bool {
	if d.phase == PhaseBusy {
		return false
	}
	if d.Identifier() == "" {
		d.message = "Enter an identifier first."
		return false
	}
	d.phase = PhaseBusy
	d.message = ""
	d.lastSaved = ""
	return true
}

// FinishFetch records the outcome of the in-flight retrieval. Ignored
// unless a retrieval is in flight. On success the payload is handed to the
// saver, the input is cleared, and the phase returns to PhaseIdle. Any
// failure also returns to PhaseIdle with an inline message and the input
// preserved.
func (d *DownloadController) FinishFetch(p *transfer.Payload, err error) {
	if d.phase != PhaseBusy {
		return
	}
	if err != nil {
		d.phase = PhaseIdle
		d.message = FailureMessage("download", err)
		d.log.Warnf("download failed: %v", err)
		return
	}
	path, err := d.save(p.Filename, p.Data)
	if err != nil {
		d.phase = PhaseIdle
		d.message = "Could not save file: " + err.Error()
		d.log.Warnf("save failed: %v", err)
		return
	}
	d.input = ""
	d.message = ""
	d.lastSaved = path
	d.phase = PhaseIdle
	d.log.Infof("download saved to %s", path)
}

// Paste replaces the input with the trimmed clipboard content. Clipboard
// failure is non-fatal: it surfaces an inline message without altering the
// current input or phase. No-op while a retrieval is in flight.
func (d *DownloadController) Paste() {
	if d.phase == PhaseBusy {
		return
	}
	text, err := d.readClip()
	if err != nil {
		d.message = "Could not read the clipboard."
		d.log.Warnf("clipboard read failed: %v", err)
		return
	}
	d.input = strings.TrimSpace(text)
	d.message = ""
}

// Reset clears input, message, and saved-path status. Always permitted.
func (d *DownloadController) Reset() {
	d.input = ""
	d.message = ""
	d.lastSaved = ""
	d.phase = PhaseIdle
}

// Phase returns the controller's current phase.
func (d *DownloadController) Phase() Phase { return d.phase }

// Input returns the raw identifier input.
func (d *DownloadController) Input() string { return d.input }

// Message returns the current inline message, or "".
func (d *DownloadController) Message() string { return d.message }

// LastSaved returns the path of the most recently saved file, or "".
func (d *DownloadController) LastSaved() string { return d.lastSaved }
