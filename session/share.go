package session

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pithecene-io/peerlink/log"
)

// CopiedInterval is how long the "copied" acknowledgment stays visible.
const CopiedInterval = 2 * time.Second

// DefaultSharePhrase accompanies the identifier in outbound share links.
const DefaultSharePhrase = "Use this PeerLink ID to download my file:"

// Target is an external destination an identifier can be dispatched to via
// a deep link.
type Target string

const (
	TargetWhatsApp Target = "whatsapp"
	TargetTelegram Target = "telegram"
	TargetEmail    Target = "email"
)

// ClipboardWriter writes text to the platform clipboard.
type ClipboardWriter func(string) error

// URLOpener opens a URL in a new browsing context.
type URLOpener func(string) error

// SharePresenter renders and distributes the coordinator's current
// identifier. It is a pure function of that identifier apart from the
// transient "copied" acknowledgment.
type SharePresenter struct {
	coord     *Coordinator
	writeClip ClipboardWriter
	open      URLOpener
	log       *log.SugaredLogger

	phrase string
	copied bool
}

// NewSharePresenter creates a presenter over coord's identifier. An empty
// phrase falls back to DefaultSharePhrase.
func NewSharePresenter(coord *Coordinator, writeClip ClipboardWriter, open URLOpener, phrase string, logger *log.SugaredLogger) *SharePresenter {
	if phrase == "" {
		phrase = DefaultSharePhrase
	}
	return &SharePresenter{
		coord:     coord,
		writeClip: writeClip,
		open:      open,
		log:       logger,
		phrase:    phrase,
	}
}

// Copy writes the identifier verbatim to the clipboard and reports whether
// the acknowledgment should show. Best-effort: clipboard failure is logged,
// never raised to the caller. No-op when no identifier is active.
func (s *SharePresenter) Copy() bool {
	id := s.coord.Identifier()
	if id == "" {
		return false
	}
	if err := s.writeClip(id); err != nil {
		s.log.Warnf("clipboard write failed: %v", err)
		return false
	}
	s.copied = true
	return true
}

// Copied reports whether the "copied" acknowledgment is showing.
func (s *SharePresenter) Copied() bool { return s.copied }

// ClearCopied hides the acknowledgment. The UI calls this CopiedInterval
// after a successful Copy.
func (s *SharePresenter) ClearCopied() { s.copied = false }

// ShareURL builds the deep link for the given target embedding the current
// identifier and the accompanying phrase. Reports false for unknown targets
// or when no identifier is active.
func (s *SharePresenter) ShareURL(t Target) (string, bool) {
	id := s.coord.Identifier()
	if id == "" {
		return "", false
	}
	text := fmt.Sprintf("%s %s", s.phrase, id)

	switch t {
	case TargetWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(text), true
	case TargetTelegram:
		return "https://t.me/share/url?url=" + url.QueryEscape(id) +
			"&text=" + url.QueryEscape("PeerLink file ID"), true
	case TargetEmail:
		return "mailto:?subject=" + url.QueryEscape("PeerLink file ID") +
			"&body=" + url.QueryEscape(text), true
	}
	return "", false
}

// Open builds the deep link for the target and opens it in a new browsing
// context. Unknown targets are a no-op; opener failure is logged.
func (s *SharePresenter) Open(t Target) bool {
	u, ok := s.ShareURL(t)
	if !ok {
		return false
	}
	if err := s.open(u); err != nil {
		s.log.Warnf("cannot open share link for %s: %v", t, err)
		return false
	}
	return true
}
