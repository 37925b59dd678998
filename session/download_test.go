package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/pithecene-io/peerlink/log"
	"github.com/pithecene-io/peerlink/transfer"
)

// fakeSaver records saves and optionally fails.
type fakeSaver struct {
	name string
	data []byte
	err  error
}

func (f *fakeSaver) save(name string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.name = name
	f.data = data
	return "/downloads/" + name, nil
}

func newDownload(t *testing.T, saver *fakeSaver, clip ClipboardReader) *DownloadController {
	t.Helper()
	if saver == nil {
		saver = &fakeSaver{}
	}
	if clip == nil {
		clip = func() (string, error) { return "", errors.New("no clipboard in test") }
	}
	return NewDownloadController(saver.save, clip, log.Nop())
}

func TestDownload_FetchWithEmptyInputIsRefused(t *testing.T) {
	d := newDownload(t, nil, nil)

	for _, input := range []string{"", "   ", "\t\n"} {
		d.Reset()
		d.SetInput(input)
		if d.Fetch() {
			t.Errorf("Fetch with input %q must be refused", input)
		}
		if d.Message() == "" {
			t.Error("expected an inline validation message")
		}
	}
}

func TestDownload_IdentifierIsTrimmed(t *testing.T) {
	d := newDownload(t, nil, nil)

	d.SetInput("  abc123  ")
	if d.Identifier() != "abc123" {
		t.Errorf("Identifier() = %q, want abc123", d.Identifier())
	}
	if d.Input() != "  abc123  " {
		t.Errorf("Input() = %q, raw input must be preserved", d.Input())
	}
}

func TestDownload_SuccessIsTransient(t *testing.T) {
	saver := &fakeSaver{}
	d := newDownload(t, saver, nil)

	d.SetInput("a1b2c3")
	if !d.Fetch() {
		t.Fatal("Fetch should start")
	}
	if d.Phase() != PhaseBusy {
		t.Fatalf("phase = %v, want busy", d.Phase())
	}

	d.FinishFetch(&transfer.Payload{Filename: "report.pdf", Data: []byte("pdf")}, nil)

	if d.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle (success is transient)", d.Phase())
	}
	if d.Input() != "" {
		t.Errorf("input = %q, must be cleared on success", d.Input())
	}
	if saver.name != "report.pdf" {
		t.Errorf("saved name = %q, want report.pdf", saver.name)
	}
	if string(saver.data) != "pdf" {
		t.Errorf("saved data = %q", saver.data)
	}
	if d.LastSaved() != "/downloads/report.pdf" {
		t.Errorf("LastSaved = %q", d.LastSaved())
	}
}

func TestDownload_NotFoundKeepsInput(t *testing.T) {
	d := newDownload(t, nil, nil)

	d.SetInput("zzz999")
	d.Fetch()
	d.FinishFetch(nil, &transfer.TransferError{Kind: transfer.ErrNotFound, Op: "download", Status: 404})

	if d.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", d.Phase())
	}
	if d.Input() != "zzz999" {
		t.Errorf("input = %q, must NOT be cleared on failure", d.Input())
	}
	if !strings.Contains(d.Message(), "not found") {
		t.Errorf("message = %q, want a not-found message", d.Message())
	}
}

func TestDownload_ErrorMessagesAreDistinguishable(t *testing.T) {
	d := newDownload(t, nil, nil)

	collect := func(err error) string {
		d.Reset()
		d.SetInput("abc")
		d.Fetch()
		d.FinishFetch(nil, err)
		return d.Message()
	}

	notFound := collect(&transfer.TransferError{Kind: transfer.ErrNotFound, Op: "download", Status: 404})
	server := collect(&transfer.TransferError{Kind: transfer.ErrServer, Op: "download", Status: 500})
	connectivity := collect(&transfer.TransferError{
		Kind: transfer.ErrUnreachable, Op: "download", Err: errors.New("refused"),
	})

	if notFound == server || notFound == connectivity || server == connectivity {
		t.Errorf("messages must be pairwise distinct:\n404: %q\n500: %q\nnet: %q",
			notFound, server, connectivity)
	}
}

func TestDownload_ServerDetailIsSurfaced(t *testing.T) {
	d := newDownload(t, nil, nil)

	d.SetInput("abc")
	d.Fetch()
	d.FinishFetch(nil, &transfer.TransferError{
		Kind: transfer.ErrServer, Op: "download", Status: 400, Detail: "malformed identifier",
	})

	if !strings.Contains(d.Message(), "malformed identifier") {
		t.Errorf("message = %q, want backend detail surfaced", d.Message())
	}
}

func TestDownload_SaveFailureKeepsInput(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	d := newDownload(t, saver, nil)

	d.SetInput("abc")
	d.Fetch()
	d.FinishFetch(&transfer.Payload{Filename: "f.bin", Data: []byte("x")}, nil)

	if d.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", d.Phase())
	}
	if d.Input() != "abc" {
		t.Errorf("input = %q, must survive a save failure", d.Input())
	}
	if !strings.Contains(d.Message(), "disk full") {
		t.Errorf("message = %q", d.Message())
	}
}

func TestDownload_FetchWhileBusyIsNoOp(t *testing.T) {
	d := newDownload(t, nil, nil)

	d.SetInput("abc")
	if !d.Fetch() {
		t.Fatal("first Fetch should start")
	}
	if d.Fetch() {
		t.Error("second Fetch while busy must be a no-op")
	}
	if d.Phase() != PhaseBusy {
		t.Errorf("phase = %v, want busy", d.Phase())
	}
}

func TestDownload_SetInputWhileBusyIsNoOp(t *testing.T) {
	d := newDownload(t, nil, nil)

	d.SetInput("abc")
	d.Fetch()
	d.SetInput("other")

	if d.Identifier() != "abc" {
		t.Errorf("identifier = %q, input changed while busy", d.Identifier())
	}
}

func TestDownload_PasteReplacesInputTrimmed(t *testing.T) {
	d := newDownload(t, nil, func() (string, error) { return "  pasted-id  ", nil })

	d.SetInput("old")
	d.Paste()

	if d.Input() != "pasted-id" {
		t.Errorf("input = %q, want pasted-id", d.Input())
	}
}

func TestDownload_PasteFailureKeepsInput(t *testing.T) {
	d := newDownload(t, nil, func() (string, error) { return "", errors.New("denied") })

	d.SetInput("keep-me")
	d.Paste()

	if d.Input() != "keep-me" {
		t.Errorf("input = %q, clipboard failure must not alter input", d.Input())
	}
	if d.Message() == "" {
		t.Error("clipboard failure should surface a non-fatal message")
	}
	if d.Phase() != PhaseIdle {
		t.Errorf("phase = %v, clipboard failure must not change phase", d.Phase())
	}
}

func TestDownload_PasteWhileBusyIsNoOp(t *testing.T) {
	called := false
	d := newDownload(t, nil, func() (string, error) { called = true; return "x", nil })

	d.SetInput("abc")
	d.Fetch()
	d.Paste()

	if called {
		t.Error("clipboard must not be read while a retrieval is in flight")
	}
}

func TestDownload_StrayCompletionIsIgnored(t *testing.T) {
	saver := &fakeSaver{}
	d := newDownload(t, saver, nil)

	d.FinishFetch(&transfer.Payload{Filename: "f", Data: []byte("x")}, nil)

	if saver.name != "" {
		t.Error("completion without an in-flight retrieval must not save")
	}
	if d.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", d.Phase())
	}
}
