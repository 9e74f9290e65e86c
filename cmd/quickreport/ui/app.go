package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"quickreport/internal/clock"
	"quickreport/internal/logging"
	"quickreport/internal/report"
)

// Page identifies the active tab.
type Page int

const (
	PageEditor Page = iota
	PageCatalog
	PagePreview
)

var pageTitles = map[Page]string{
	PageEditor:  "SOẠN THẢO",
	PageCatalog: "SẢN PHẨM",
	PagePreview: "XEM TRƯỚC",
}

// Saver persists a snapshot after every state change. A nil Saver is
// tolerated so the app still runs when the database cannot be opened.
type Saver interface {
	Save(report.State) error
}

const copyAlertText = "Không thể copy."

type clockTickMsg struct{ At time.Time }
type copiedClearMsg struct{}

// App is the root model: it owns the report state, runs every action
// through the reducer, persists the result, and fans the new state out
// to the pages.
type App struct {
	keys   KeyMap
	styles Styles
	help   help.Model

	state report.State
	saver Saver

	page     Page
	editor   EditorPageModel
	catalog  CatalogPageModel
	preview  PreviewPageModel
	showHelp bool
	helpText string

	copied bool
	alert  string

	width  int
	height int
}

// NewApp builds the application model around an initial state.
func NewApp(state report.State, saver Saver, styles Styles) App {
	keys := DefaultKeyMap()
	return App{
		keys:    keys,
		styles:  styles,
		help:    help.New(),
		state:   state,
		saver:   saver,
		editor:  NewEditorPageModel(state, keys, styles),
		catalog: NewCatalogPageModel(state, keys, styles),
		preview: newPreview(state, styles),
	}
}

func newPreview(state report.State, styles Styles) PreviewPageModel {
	p := NewPreviewPageModel(styles)
	p.SetState(state)
	return p
}

// State exposes the current report state; used by tests and by the
// shutdown path to flush a final snapshot.
func (a App) State() report.State { return a.state }

// Init schedules the header clock ticker.
func (a App) Init() tea.Cmd {
	return scheduleClockTick()
}

func scheduleClockTick() tea.Cmd {
	return tea.Tick(clock.UpdateInterval, func(t time.Time) tea.Msg {
		return clockTickMsg{At: t}
	})
}

// dispatch reduces the actions, persists the result and pushes the new
// state into every page.
func (a *App) dispatch(actions []report.Action) {
	if len(actions) == 0 {
		return
	}
	for _, action := range actions {
		logging.Session("action %T", action)
		a.state = report.Reduce(a.state, action)
	}
	logging.Report("%d campaigns, %d catalog products",
		len(a.state.Items), len(a.state.ProductCatalog))
	if a.saver != nil {
		if err := a.saver.Save(a.state); err != nil {
			logging.StoreError("snapshot save failed: %v", err)
		}
	}
	a.editor.SetState(a.state)
	a.catalog.SetState(a.state)
	a.preview.SetState(a.state)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		pageHeight := max(4, msg.Height-5)
		a.editor.SetSize(msg.Width, pageHeight)
		a.catalog.SetSize(msg.Width, pageHeight)
		a.preview.SetSize(msg.Width, pageHeight)
		a.help.Width = msg.Width
		a.helpText = ""
		return a, nil

	case clockTickMsg:
		a.dispatch([]report.Action{report.TickClock{Now: msg.At}})
		return a, scheduleClockTick()

	case ClipboardResultMsg:
		if msg.Err != nil {
			a.alert = copyAlertText
			return a, nil
		}
		a.copied = true
		return a, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return copiedClearMsg{}
		})

	case copiedClearMsg:
		a.copied = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateActivePage(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An earlier copy failure stays on screen until the next key.
	a.alert = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil

	case key.Matches(msg, a.keys.Editor):
		a.page = PageEditor
		return a, nil

	case key.Matches(msg, a.keys.Catalog):
		a.page = PageCatalog
		return a, nil

	case key.Matches(msg, a.keys.Preview):
		a.page = PagePreview
		return a, nil

	case key.Matches(msg, a.keys.Refresh):
		a.dispatch([]report.Action{report.RefreshClock{Now: time.Now()}})
		return a, nil
	}

	if a.showHelp {
		// Any other key simply closes the overlay.
		a.showHelp = false
		return a, nil
	}

	if a.page == PagePreview && key.Matches(msg, a.keys.Copy) {
		return a, a.preview.CopyCmd()
	}

	return a.updateActivePage(msg)
}

func (a App) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var actions []report.Action
	switch a.page {
	case PageEditor:
		a.editor, cmd, actions = a.editor.Update(msg)
	case PageCatalog:
		a.catalog, cmd, actions = a.catalog.Update(msg)
	case PagePreview:
		a.preview, cmd = a.preview.Update(msg)
	}
	a.dispatch(actions)
	for _, action := range actions {
		if _, ok := action.(report.AddItem); ok {
			// A fresh campaign jumps straight into editing.
			a.page = PageEditor
			a.editor.SelectLast()
			a.editor.SetState(a.state)
		}
	}
	return a, cmd
}

const helpMarkdown = `# Quick Report

## Toàn cục

| Phím | Chức năng |
|------|-----------|
| f1 | Mở / đóng trợ giúp |
| f2 | Trang soạn thảo |
| f3 | Trang sản phẩm |
| f4 | Trang xem trước |
| f5 | Cập nhật giờ và ngày |
| ctrl+c | Thoát |

## Soạn thảo

| Phím | Chức năng |
|------|-----------|
| tab / shift+tab | Chuyển ô nhập |
| pgdn / pgup | Chuyển chiến dịch |
| ctrl+n | Thêm chiến dịch |
| ctrl+d | Xoá chiến dịch |
| ctrl+t | Đổi thị trường |
| ctrl+g | Bật / tắt DIE PAGE |
| ctrl+r | Bật / tắt TỪ CHỐI |
| ctrl+o | Thêm ghi chú |
| ctrl+x | Xoá ghi chú đang chọn |

## Xem trước

| Phím | Chức năng |
|------|-----------|
| c / enter | Copy báo cáo |
`

func (a *App) renderHelp() string {
	if a.helpText != "" {
		return a.helpText
	}
	width := a.width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(100, width)),
	)
	if err == nil {
		if out, err := r.Render(helpMarkdown); err == nil {
			a.helpText = out
			return a.helpText
		}
	}
	a.helpText = helpMarkdown
	return a.helpText
}

func (a App) renderTabs() string {
	tabs := make([]string, 0, len(pageTitles))
	for _, p := range []Page{PageEditor, PageCatalog, PagePreview} {
		if p == a.page {
			tabs = append(tabs, a.styles.ActiveTab.Render(pageTitles[p]))
		} else {
			tabs = append(tabs, a.styles.InactiveTab.Render(pageTitles[p]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) statusLine() string {
	switch {
	case a.alert != "":
		return a.styles.Error.Render(a.alert)
	case a.copied:
		return a.styles.Success.Render("✓ ĐÃ COPY!")
	}
	return a.help.ShortHelpView(a.keys.ShortHelp())
}

// View implements tea.Model.
func (a App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	var b strings.Builder
	b.WriteString(a.styles.Header.Render("BÁO CÁO NHANH"))
	b.WriteString("  ")
	b.WriteString(a.styles.Value.Render(a.state.Time + " - " + a.state.Date))
	b.WriteString("  ")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.page {
	case PageEditor:
		b.WriteString(a.editor.View())
	case PageCatalog:
		b.WriteString(a.catalog.View())
	case PagePreview:
		b.WriteString(a.preview.View())
	}

	b.WriteString("\n")
	b.WriteString(a.styles.StatusBar.Render(a.statusLine()))
	return b.String()
}
