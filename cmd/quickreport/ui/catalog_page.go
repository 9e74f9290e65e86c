package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickreport/internal/report"
)

// catalogEntry adapts a catalog product name to the list widget.
type catalogEntry string

func (e catalogEntry) Title() string { return string(e) }
func (e catalogEntry) Description() string {
	if market, ok := report.DetectMarket(string(e)); ok {
		return market.Info().Label
	}
	return "Chưa gắn thị trường"
}
func (e catalogEntry) FilterValue() string { return string(e) }

// CatalogPageModel manages the saved product shortcuts: an input to add
// new names and a list to spawn campaigns from existing ones.
type CatalogPageModel struct {
	keys   KeyMap
	styles Styles

	input     textinput.Model
	list      list.Model
	listFocus bool
}

// NewCatalogPageModel creates the catalog page from the current state.
func NewCatalogPageModel(state report.State, keys KeyMap, styles Styles) CatalogPageModel {
	ti := textinput.New()
	ti.Placeholder = "Tên sản phẩm mới, VD: PRO002 TH"
	ti.Prompt = "+ "
	ti.CharLimit = 128
	ti.Focus()

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sản phẩm đã lưu"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	m := CatalogPageModel{
		keys:   keys,
		styles: styles,
		input:  ti,
		list:   l,
	}
	m.SetState(state)
	return m
}

// SetSize records the page dimensions.
func (m *CatalogPageModel) SetSize(w, h int) {
	m.input.Width = max(20, w-10)
	m.list.SetSize(w, max(4, h-4))
}

// SetState refreshes the list items from the reduced state.
func (m *CatalogPageModel) SetState(state report.State) {
	entries := make([]list.Item, len(state.ProductCatalog))
	for i, name := range state.ProductCatalog {
		entries[i] = catalogEntry(name)
	}
	m.list.SetItems(entries)
	if m.list.Index() >= len(entries) && len(entries) > 0 {
		m.list.Select(len(entries) - 1)
	}
}

func (m *CatalogPageModel) selectedName() (string, bool) {
	entry, ok := m.list.SelectedItem().(catalogEntry)
	if !ok {
		return "", false
	}
	return string(entry), true
}

// Update handles key strokes; returned actions follow the same dispatch
// loop as the editor page.
func (m CatalogPageModel) Update(msg tea.Msg) (CatalogPageModel, tea.Cmd, []report.Action) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.SwitchFocus):
		m.listFocus = !m.listFocus
		if m.listFocus {
			m.input.Blur()
		} else {
			m.input.Focus()
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.Confirm):
		if m.listFocus {
			if name, ok := m.selectedName(); ok {
				return m, nil, []report.Action{report.AddItem{Name: name}}
			}
			return m, nil, nil
		}
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil, nil
		}
		m.input.SetValue("")
		return m, nil, []report.Action{report.AddCatalogProduct{Name: name}}

	case key.Matches(keyMsg, m.keys.DeleteEntry):
		if m.listFocus {
			if name, ok := m.selectedName(); ok {
				return m, nil, []report.Action{report.RemoveCatalogProduct{Name: name}}
			}
		}
		return m, nil, nil
	}

	var cmd tea.Cmd
	if m.listFocus {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd, nil
}

// View renders the catalog page.
func (m CatalogPageModel) View() string {
	var b strings.Builder
	label := m.styles.Label
	if !m.listFocus {
		label = m.styles.Accent
	}
	b.WriteString(label.Render("Thêm sản phẩm"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab: đổi vùng • enter: lưu / tạo chiến dịch • ctrl+x: xoá"))
	return b.String()
}
