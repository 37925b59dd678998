package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pithecene-io/peerlink/iox"
	"github.com/pithecene-io/peerlink/log"
	"github.com/pithecene-io/peerlink/platform"
	"github.com/pithecene-io/peerlink/session"
	"github.com/pithecene-io/peerlink/transfer"
)

// Options configures the interactive session.
type Options struct {
	// Client talks to the PeerLink backend.
	Client *transfer.Client
	// DownloadDir is where received files are saved.
	DownloadDir string
	// SharePhrase accompanies the identifier in share links. Empty means
	// the built-in default.
	SharePhrase string
	// Logger receives session events. Must not write to the terminal.
	Logger *log.SugaredLogger

	// Capability overrides. Nil means the platform implementation. Tests
	// substitute fakes here.
	ReadClipboard  session.ClipboardReader
	WriteClipboard session.ClipboardWriter
	OpenURL        session.URLOpener
	Save           session.Saver
}

// Messages delivered by async commands.
type (
	uploadDoneMsg struct {
		id  string
		err error
	}
	downloadDoneMsg struct {
		payload *transfer.Payload
		err     error
	}
	copiedExpiredMsg struct{}
)

// Model is the root Bubble Tea model: a tab bar routed by the session
// coordinator over the upload, download, and share views.
type Model struct {
	coord    *session.Coordinator
	upload   *session.UploadController
	download *session.DownloadController
	share    *session.SharePresenter
	client   *transfer.Client

	picker filepicker.Model
	input  textinput.Model
	spin   spinner.Model

	width    int
	height   int
	quitting bool
}

// New creates the root model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}
	if opts.ReadClipboard == nil {
		opts.ReadClipboard = platform.ReadClipboard
	}
	if opts.WriteClipboard == nil {
		opts.WriteClipboard = platform.WriteClipboard
	}
	if opts.OpenURL == nil {
		opts.OpenURL = platform.OpenURL
	}
	if opts.Save == nil {
		opts.Save = platform.Saver(opts.DownloadDir)
	}

	coord := session.NewCoordinator()

	picker := filepicker.New()
	picker.ShowHidden = false
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	input := textinput.New()
	input.Placeholder = "Paste or type the identifier"
	input.Prompt = "> "

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = SpinnerStyle

	return Model{
		coord:    coord,
		upload:   session.NewUploadController(coord, logger),
		download: session.NewDownloadController(opts.Save, opts.ReadClipboard, logger),
		share:    session.NewSharePresenter(coord, opts.WriteClipboard, opts.OpenURL, opts.SharePhrase, logger),
		client:   opts.Client,
		picker:   picker,
		input:    input,
		spin:     spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 12; h > 3 {
			m.picker.Height = h
			m.picker.AutoHeight = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.upload.Phase() == session.PhaseBusy || m.download.Phase() == session.PhaseBusy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case uploadDoneMsg:
		m.upload.FinishSubmit(msg.id, msg.err)
		return m, nil

	case downloadDoneMsg:
		m.download.FinishFetch(msg.payload, msg.err)
		// Success clears the controller input; mirror it in the widget.
		m.input.SetValue(m.download.Input())
		return m, nil

	case copiedExpiredMsg:
		m.share.ClearCopied()
		return m, nil
	}

	return m.updateActive(msg)
}

// updateKey handles a key press: global bindings first, then the visible
// tab's bindings, then the tab's focused component.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.NextTab):
		m.coord.SelectTab(nextTab(m.coord.ActiveTab()))
		return m.syncFocus(), nil
	case key.Matches(msg, keys.PrevTab):
		m.coord.SelectTab(prevTab(m.coord.ActiveTab()))
		return m.syncFocus(), nil
	}

	switch m.coord.ActiveTab() {
	case session.TabUpload:
		return m.updateUploadKey(msg)
	case session.TabDownload:
		return m.updateDownloadKey(msg)
	case session.TabShare:
		return m.updateShareKey(msg)
	}
	return m, nil
}

func (m Model) updateUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// "q" quits outside the download tab, where it would collide with
	// identifier input.
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, keys.Submit):
		if m.upload.Submit() {
			return m, tea.Batch(m.submitCmd(), m.spin.Tick)
		}
		return m, nil
	case key.Matches(msg, keys.Reset):
		m.upload.Reset()
		return m, nil
	}

	// Selection UI is disabled while a submission is in flight.
	if m.upload.Phase() == session.PhaseBusy {
		return m, nil
	}
	return m.updateActive(msg)
}

func (m Model) updateDownloadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Fetch):
		if m.download.Fetch() {
			return m, tea.Batch(m.fetchCmd(m.download.Identifier()), m.spin.Tick)
		}
		return m, nil
	case key.Matches(msg, keys.Paste):
		m.download.Paste()
		m.input.SetValue(m.download.Input())
		return m, nil
	case key.Matches(msg, keys.Clear):
		m.download.Reset()
		m.input.SetValue("")
		return m, nil
	}

	if m.download.Phase() == session.PhaseBusy {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.download.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateShareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, keys.Copy):
		if m.share.Copy() {
			return m, tea.Tick(session.CopiedInterval, func(time.Time) tea.Msg {
				return copiedExpiredMsg{}
			})
		}
	case key.Matches(msg, keys.WhatsApp):
		m.share.Open(session.TargetWhatsApp)
	case key.Matches(msg, keys.Telegram):
		m.share.Open(session.TargetTelegram)
	case key.Matches(msg, keys.Email):
		m.share.Open(session.TargetEmail)
	}
	return m, nil
}

// updateActive forwards non-key messages (and upload-tab keys) to the
// visible tab's component.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.coord.ActiveTab() {
	case session.TabUpload:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.selectFile(path)
		}
		return m, cmd
	case session.TabDownload:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.download.SetInput(m.input.Value())
		return m, cmd
	}
	return m, nil
}

// selectFile records a picker selection on the upload controller.
func (m *Model) selectFile(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	m.upload.SelectFile(session.FileHandle{
		Path: path,
		Name: info.Name(),
		Size: info.Size(),
	})
}

// syncFocus keeps the identifier input focused only while its tab shows.
func (m Model) syncFocus() Model {
	if m.coord.ActiveTab() == session.TabDownload {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// submitCmd performs the upload exchange off the update loop.
func (m Model) submitCmd() tea.Cmd {
	handle := *m.upload.File()
	client := m.client
	return func() tea.Msg {
		f, err := os.Open(handle.Path)
		if err != nil {
			return uploadDoneMsg{err: err}
		}
		defer iox.DiscardClose(f)
		id, err := client.Upload(context.Background(), handle.Name, f)
		return uploadDoneMsg{id: id, err: err}
	}
}

// fetchCmd performs the download exchange off the update loop.
func (m Model) fetchCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		payload, err := client.Download(context.Background(), id)
		return downloadDoneMsg{payload: payload, err: err}
	}
}

func nextTab(t session.Tab) session.Tab {
	switch t {
	case session.TabUpload:
		return session.TabDownload
	case session.TabDownload:
		return session.TabShare
	}
	return session.TabUpload
}

func prevTab(t session.Tab) session.Tab {
	switch t {
	case session.TabUpload:
		return session.TabShare
	case session.TabShare:
		return session.TabDownload
	}
	return session.TabUpload
}

// Run starts the interactive session and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
