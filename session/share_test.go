package session

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/pithecene-io/peerlink/log"
)

type fakeClip struct {
	written string
	err     error
	calls   int
}

func (f *fakeClip) write(s string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.written = s
	return nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) open(u string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, u)
	return nil
}

func newShare(t *testing.T, id string, clip *fakeClip, opener *fakeOpener) *SharePresenter {
	t.Helper()
	coord := NewCoordinator()
	if id != "" {
		coord.IdentifierProduced(id)
	}
	if clip == nil {
		clip = &fakeClip{}
	}
	if opener == nil {
		opener = &fakeOpener{}
	}
	return NewSharePresenter(coord, clip.write, opener.open, "", log.Nop())
}

func TestShare_CopyWritesIdentifierVerbatim(t *testing.T) {
	clip := &fakeClip{}
	s := newShare(t, "a1b2c3", clip, nil)

	if !s.Copy() {
		t.Fatal("Copy should succeed")
	}
	if clip.written != "a1b2c3" {
		t.Errorf("clipboard = %q, want a1b2c3", clip.written)
	}
	if !s.Copied() {
		t.Error("Copied acknowledgment should show after a successful copy")
	}

	s.ClearCopied()
	if s.Copied() {
		t.Error("Copied acknowledgment should clear")
	}
}

func TestShare_CopyWithoutIdentifierIsNoOp(t *testing.T) {
	clip := &fakeClip{}
	s := newShare(t, "", clip, nil)

	if s.Copy() {
		t.Error("Copy without an identifier must report false")
	}
	if clip.calls != 0 {
		t.Error("clipboard must not be touched without an identifier")
	}
}

func TestShare_CopyFailureNeverPanicsOrAcknowledges(t *testing.T) {
	clip := &fakeClip{err: errors.New("denied")}
	s := newShare(t, "a1b2c3", clip, nil)

	if s.Copy() {
		t.Error("failed copy must report false")
	}
	if s.Copied() {
		t.Error("failed copy must not flip the acknowledgment")
	}
}

func TestShare_URLEmbedsIdentifier(t *testing.T) {
	s := newShare(t, "a1b2c3", nil, nil)

	tests := []struct {
		target Target
		host   string
	}{
		{TargetWhatsApp, "wa.me"},
		{TargetTelegram, "t.me"},
		{TargetEmail, "mailto:"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			u, ok := s.ShareURL(tt.target)
			if !ok {
				t.Fatalf("ShareURL(%s) not ok", tt.target)
			}
			if !strings.Contains(u, tt.host) {
				t.Errorf("url = %q, want host %q", u, tt.host)
			}
			if !strings.Contains(u, url.QueryEscape("a1b2c3")) && !strings.Contains(u, "a1b2c3") {
				t.Errorf("url = %q, identifier missing", u)
			}
		})
	}
}

func TestShare_URLIncludesPhrase(t *testing.T) {
	s := newShare(t, "a1b2c3", nil, nil)

	u, ok := s.ShareURL(TargetWhatsApp)
	if !ok {
		t.Fatal("ShareURL not ok")
	}
	if !strings.Contains(u, url.QueryEscape(DefaultSharePhrase)) {
		t.Errorf("url = %q, accompanying phrase missing", u)
	}
}

func TestShare_UnknownTargetIsNoOp(t *testing.T) {
	opener := &fakeOpener{}
	s := newShare(t, "a1b2c3", nil, opener)

	if _, ok := s.ShareURL(Target("carrier-pigeon")); ok {
		t.Error("unknown target must not produce a URL")
	}
	if s.Open(Target("carrier-pigeon")) {
		t.Error("unknown target must not open anything")
	}
	if len(opener.opened) != 0 {
		t.Error("opener must not be called for unknown targets")
	}
}

func TestShare_URLWithoutIdentifier(t *testing.T) {
	s := newShare(t, "", nil, nil)
	if _, ok := s.ShareURL(TargetWhatsApp); ok {
		t.Error("ShareURL without an identifier must report false")
	}
}

func TestShare_OpenUsesOpener(t *testing.T) {
	opener := &fakeOpener{}
	s := newShare(t, "a1b2c3", nil, opener)

	if !s.Open(TargetTelegram) {
		t.Fatal("Open should succeed")
	}
	if len(opener.opened) != 1 || !strings.Contains(opener.opened[0], "t.me") {
		t.Errorf("opened = %v", opener.opened)
	}
}

func TestShare_OpenFailureIsNonFatal(t *testing.T) {
	opener := &fakeOpener{err: errors.New("no browser")}
	s := newShare(t, "a1b2c3", nil, opener)

	if s.Open(TargetEmail) {
		t.Error("opener failure must report false")
	}
}

func TestShare_CustomPhrase(t *testing.T) {
	coord := NewCoordinator()
	coord.IdentifierProduced("xyz")
	s := NewSharePresenter(coord, (&fakeClip{}).write, (&fakeOpener{}).open,
		"Grab my file with:", log.Nop())

	u, ok := s.ShareURL(TargetWhatsApp)
	if !ok {
		t.Fatal("ShareURL not ok")
	}
	if !strings.Contains(u, url.QueryEscape("Grab my file with:")) {
		t.Errorf("url = %q, custom phrase missing", u)
	}
}
