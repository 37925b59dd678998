package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pithecene-io/peerlink/session"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.coord.ActiveTab() {
	case session.TabUpload:
		body = m.uploadView()
	case session.TabDownload:
		body = m.downloadView()
	case session.TabShare:
		body = m.shareView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("PeerLink")+MutedStyle.Render("  simple HTTP file sharing"),
		m.tabBar(),
		body,
		m.helpLine(),
	)
}

// tabBar renders the three tab labels with the active one highlighted.
func (m Model) tabBar() string {
	labels := []struct {
		tab  session.Tab
		text string
	}{
		{session.TabUpload, "Upload"},
		{session.TabDownload, "Download"},
		{session.TabShare, "Share"},
	}

	var b strings.Builder
	for _, l := range labels {
		if l.tab == m.coord.ActiveTab() {
			b.WriteString(ActiveTabStyle.Render(l.text))
		} else {
			b.WriteString(TabStyle.Render(l.text))
		}
	}
	return b.String()
}

func (m Model) uploadView() string {
	var b strings.Builder

	switch m.upload.Phase() {
	case session.PhaseSettled:
		b.WriteString(SuccessStyle.Render("Ready to share!"))
		b.WriteString("\n\n")
		b.WriteString("Send this identifier to your peer:\n")
		b.WriteString(IdentifierStyle.Render(m.upload.Identifier()))
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("They can enter it in their Download tab to get the file."))
		return BoxStyle.Render(b.String())

	case session.PhaseBusy:
		b.WriteString(m.spin.View())
		b.WriteString(" Uploading ")
		b.WriteString(m.upload.File().Name)
		b.WriteString("…")
		return BoxStyle.Render(b.String())
	}

	if f := m.upload.File(); f != nil {
		b.WriteString("Selected: ")
		b.WriteString(IdentifierStyle.Render(f.Name))
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  (%s)", humanize.Bytes(uint64(f.Size)))))
		b.WriteString("\n\n")
	}
	b.WriteString(m.picker.View())
	if msg := m.upload.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(msg))
	}
	return b.String()
}

func (m Model) downloadView() string {
	var b strings.Builder
	b.WriteString("Enter the identifier you received:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.download.Phase() == session.PhaseBusy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" Downloading…")
	}
	if msg := m.download.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(msg))
	}
	if saved := m.download.LastSaved(); saved != "" {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render("Saved " + saved))
	}
	return BoxStyle.Render(b.String())
}

func (m Model) shareView() string {
	id := m.coord.Identifier()
	if id == "" {
		var b strings.Builder
		b.WriteString("No active share.\n\n")
		b.WriteString(MutedStyle.Render("Upload a file first to get an identifier.\n"))
		b.WriteString(MutedStyle.Render("Go to the Upload tab to get started."))
		return BoxStyle.Render(b.String())
	}

	var b strings.Builder
	b.WriteString("Your peer needs this identifier to download your file:\n\n")
	b.WriteString(IdentifierStyle.Render(id))
	b.WriteString("\n\n")
	if m.share.Copied() {
		b.WriteString(SuccessStyle.Render("Identifier copied!"))
	} else {
		b.WriteString(MutedStyle.Render("c to copy"))
	}
	b.WriteString(MutedStyle.Render("  ·  w WhatsApp  ·  t Telegram  ·  e email"))
	return BoxStyle.Render(b.String())
}

func (m Model) helpLine() string {
	parts := []string{"tab: switch view", "ctrl+c: quit"}
	switch m.coord.ActiveTab() {
	case session.TabUpload:
		parts = append(parts, "enter: select file", "s: upload", "ctrl+r: reset")
	case session.TabDownload:
		parts = append(parts, "enter: download", "ctrl+v: paste", "ctrl+r: clear")
	case session.TabShare:
		parts = append(parts, "c: copy", "w/t/e: share")
	}
	return HelpStyle.Render(strings.Join(parts, "  •  "))
}
