package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"quickreport/internal/logging"
	"quickreport/internal/report"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// ClipboardResultMsg reports the outcome of a clipboard write.
type ClipboardResultMsg struct {
	Err error
}

// PreviewPageModel shows the rendered report exactly as it will be
// copied. The preview and the clipboard payload come from the same
// renderer call, so they cannot drift apart.
type PreviewPageModel struct {
	viewport viewport.Model
	text     string
	styles   Styles
	width    int
	height   int
}

// NewPreviewPageModel creates the preview page.
func NewPreviewPageModel(styles Styles) PreviewPageModel {
	vp := viewport.New(80, 20)
	return PreviewPageModel{viewport: vp, styles: styles}
}

// SetSize updates the viewport size, leaving room for the panel border.
func (m *PreviewPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(10, w-4)
	m.viewport.Height = max(3, h-2)
}

// SetState re-renders the preview from the report state.
func (m *PreviewPageModel) SetState(s report.State) {
	m.text = report.Render(s)
	m.viewport.SetContent(m.text)
}

// CopyCmd returns a command that writes the current report text to the
// system clipboard and reports the outcome.
func (m PreviewPageModel) CopyCmd() tea.Cmd {
	text := m.text
	return func() tea.Msg {
		err := clipboardWriteAll(text)
		if err != nil {
			logging.ClipboardError("clipboard write failed: %v", err)
		} else {
			logging.Clipboard("report copied (%d bytes)", len(text))
		}
		return ClipboardResultMsg{Err: err}
	}
}

// Update handles scrolling.
func (m PreviewPageModel) Update(msg tea.Msg) (PreviewPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m PreviewPageModel) View() string {
	return m.styles.Panel.Render(m.viewport.View())
}
