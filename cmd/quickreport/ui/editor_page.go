package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickreport/internal/expr"
	"quickreport/internal/numfmt"
	"quickreport/internal/report"
)

// Field indices into the editor's input slice. The first three edit the
// report header; the rest edit the selected campaign. Note inputs are
// appended dynamically after fieldOrders.
const (
	fieldUserName = iota
	fieldTime
	fieldDate
	fieldName
	fieldPrice
	fieldOrdersCount
	fieldCPIInput
	fieldDS
	fieldCPI
	fieldPercentCPI
	fieldOrders
	fieldNoteBase
)

var fieldLabels = map[int]string{
	fieldUserName:    "Người báo cáo",
	fieldTime:        "Giờ báo cáo",
	fieldDate:        "Ngày tháng",
	fieldName:        "Tên chiến dịch",
	fieldPrice:       "Giá 1 đơn (Local)",
	fieldOrdersCount: "Số lượng đơn",
	fieldCPIInput:    "Chi phí (VNĐ)",
	fieldDS:          "Doanh số (VND)",
	fieldCPI:         "Chi phí CPI (VND)",
	fieldPercentCPI:  "% CPI",
	fieldOrders:      "Số đơn hiển thị",
}

// EditorPageModel is the campaign editing form. It translates key
// strokes into report actions; it never touches the state directly, so
// every derived-field rule lives in one place.
type EditorPageModel struct {
	keys   KeyMap
	styles Styles
	width  int
	height int

	state    report.State
	selected int

	inputs []textinput.Model
	focus  int
}

// NewEditorPageModel creates the editor page for the given state.
func NewEditorPageModel(state report.State, keys KeyMap, styles Styles) EditorPageModel {
	m := EditorPageModel{
		keys:   keys,
		styles: styles,
		state:  state,
	}
	m.rebuildInputs()
	m.setFocus(fieldName)
	return m
}

// SetSize records the page dimensions.
func (m *EditorPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	for i := range m.inputs {
		m.inputs[i].Width = min(60, max(20, w-30))
	}
}

// SetState syncs the form with a freshly reduced state. Values are
// pushed back into the inputs because derivation can rewrite the very
// field being typed into (e.g. "215000" collapsing to "215k").
func (m *EditorPageModel) SetState(state report.State) {
	m.state = state
	if m.selected >= len(state.Items) {
		m.selected = len(state.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.rebuildInputs()
	if m.focus >= len(m.inputs) {
		m.setFocus(len(m.inputs) - 1)
	} else {
		m.setFocus(m.focus)
	}
}

// SelectLast moves the selection to the last campaign row; used right
// after emitting an AddItem action.
func (m *EditorPageModel) SelectLast() {
	if n := len(m.state.Items); n > 0 {
		m.selected = n - 1
	}
}

func (m *EditorPageModel) currentItem() (report.CampaignItem, bool) {
	if m.selected < 0 || m.selected >= len(m.state.Items) {
		return report.CampaignItem{}, false
	}
	return m.state.Items[m.selected], true
}

func (m *EditorPageModel) rebuildInputs() {
	item, hasItem := m.currentItem()

	count := fieldNoteBase
	if hasItem {
		count += len(item.Notes)
	}
	inputs := make([]textinput.Model, count)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = min(60, max(20, m.width-30))
		ti.SetValue(m.fieldValue(i))
		ti.Placeholder = m.fieldPlaceholder(i)
		inputs[i] = ti
	}
	m.inputs = inputs
}

func (m *EditorPageModel) fieldValue(idx int) string {
	switch idx {
	case fieldUserName:
		return m.state.UserName
	case fieldTime:
		return m.state.Time
	case fieldDate:
		return m.state.Date
	}
	item, ok := m.currentItem()
	if !ok {
		return ""
	}
	switch idx {
	case fieldName:
		return item.Name
	case fieldPrice:
		return item.PricePerOrder
	case fieldOrdersCount:
		return item.OrdersCount
	case fieldCPIInput:
		return item.CPIInput
	case fieldDS:
		return item.DS
	case fieldCPI:
		return item.CPI
	case fieldPercentCPI:
		return item.PercentCPI
	case fieldOrders:
		return item.Orders
	}
	if n := idx - fieldNoteBase; n >= 0 && n < len(item.Notes) {
		return item.Notes[n]
	}
	return ""
}

func (m *EditorPageModel) fieldPlaceholder(idx int) string {
	switch idx {
	case fieldName:
		return "VD: SSK003 ML"
	case fieldPrice:
		if item, ok := m.currentItem(); ok && item.Market == report.MarketSG {
			return "Tự điền"
		}
		return "0"
	case fieldOrdersCount:
		return "0"
	case fieldCPIInput:
		return "VD: 439000 + 50000"
	case fieldDS, fieldCPI:
		return "0k"
	case fieldPercentCPI:
		return "0%"
	case fieldOrders:
		return "0s"
	}
	if idx >= fieldNoteBase {
		return "Link FB hoặc nội dung khác..."
	}
	return ""
}

func (m *EditorPageModel) setFocus(idx int) {
	if len(m.inputs) == 0 {
		return
	}
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	if idx >= len(m.inputs) {
		idx = 0
	}
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
			m.inputs[i].CursorEnd()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// actionForEdit maps an edited field to the reducer action carrying it.
func (m *EditorPageModel) actionForEdit(idx int, value string) report.Action {
	switch idx {
	case fieldUserName:
		return report.SetUserName{Name: value}
	case fieldTime:
		return report.SetTime{Value: value}
	case fieldDate:
		return report.SetDate{Value: value}
	}
	item, ok := m.currentItem()
	if !ok {
		return nil
	}
	v := value
	switch idx {
	case fieldName:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{Name: &v}}
	case fieldPrice:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{PricePerOrder: &v}}
	case fieldOrdersCount:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{OrdersCount: &v}}
	case fieldCPIInput:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{CPIInput: &v}}
	case fieldDS:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{DS: &v}}
	case fieldCPI:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{CPI: &v}}
	case fieldPercentCPI:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{PercentCPI: &v}}
	case fieldOrders:
		return report.UpdateItem{ID: item.ID, Patch: report.Patch{Orders: &v}}
	}
	if n := idx - fieldNoteBase; n >= 0 && n < len(item.Notes) {
		return report.UpdateNote{ItemID: item.ID, Index: n, Value: value}
	}
	return nil
}

// Update handles messages and returns any report actions the key stroke
// produced. The app reduces them and calls SetState with the result.
func (m EditorPageModel) Update(msg tea.Msg) (EditorPageModel, tea.Cmd, []report.Action) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil, nil
	}

	item, hasItem := m.currentItem()

	switch {
	case key.Matches(keyMsg, m.keys.NextField):
		m.setFocus(m.focus + 1)
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.PrevField):
		m.setFocus(m.focus - 1)
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.NextItem):
		if m.selected < len(m.state.Items)-1 {
			m.selected++
			m.rebuildInputs()
			m.setFocus(fieldName)
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.PrevItem):
		if m.selected > 0 {
			m.selected--
			m.rebuildInputs()
			m.setFocus(fieldName)
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.AddItem):
		m.selected = len(m.state.Items)
		return m, nil, []report.Action{report.AddItem{}}

	case key.Matches(keyMsg, m.keys.DeleteItem):
		if hasItem {
			return m, nil, []report.Action{report.RemoveItem{ID: item.ID}}
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.CycleMarket):
		if hasItem {
			next := nextMarket(item.Market)
			return m, nil, []report.Action{
				report.UpdateItem{ID: item.ID, Patch: report.Patch{Market: &next}},
			}
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.ToggleDiePage):
		if hasItem {
			toggled := !item.DiePage
			return m, nil, []report.Action{
				report.UpdateItem{ID: item.ID, Patch: report.Patch{DiePage: &toggled}},
			}
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.ToggleRejected):
		if hasItem {
			toggled := !item.Rejected
			return m, nil, []report.Action{
				report.UpdateItem{ID: item.ID, Patch: report.Patch{Rejected: &toggled}},
			}
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.AddNote):
		if hasItem {
			return m, nil, []report.Action{report.AddNote{ItemID: item.ID}}
		}
		return m, nil, nil

	case key.Matches(keyMsg, m.keys.DeleteNote):
		if hasItem && m.focus >= fieldNoteBase {
			return m, nil, []report.Action{
				report.RemoveNote{ItemID: item.ID, Index: m.focus - fieldNoteBase},
			}
		}
		return m, nil, nil
	}

	// Everything else goes to the focused input; an actual value change
	// becomes a single-field action.
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return m, nil, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	after := m.inputs[m.focus].Value()
	if after == before {
		return m, cmd, nil
	}
	action := m.actionForEdit(m.focus, after)
	if action == nil {
		return m, cmd, nil
	}
	return m, cmd, []report.Action{action}
}

func nextMarket(current report.Market) report.Market {
	for i, market := range report.AllMarkets {
		if market == current {
			return report.AllMarkets[(i+1)%len(report.AllMarkets)]
		}
	}
	return report.MarketML
}

// View renders the form.
func (m EditorPageModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Thông tin chung"))
	b.WriteString("\n")
	for idx := fieldUserName; idx <= fieldDate; idx++ {
		b.WriteString(m.renderField(idx))
	}
	b.WriteString("\n")

	item, hasItem := m.currentItem()
	if !hasItem {
		b.WriteString(m.styles.Muted.Render("Chưa có chiến dịch nào. ctrl+n để thêm."))
		return b.String()
	}

	b.WriteString(m.styles.Title.Render(
		fmt.Sprintf("Chi tiết chiến dịch %d/%d", m.selected+1, len(m.state.Items))))
	b.WriteString("\n")
	b.WriteString(m.renderField(fieldName))
	b.WriteString(m.renderMarkets(item))
	b.WriteString(m.renderField(fieldPrice))
	b.WriteString(m.renderField(fieldOrdersCount))
	b.WriteString(m.renderCostField(item))
	b.WriteString(m.renderField(fieldDS))
	b.WriteString(m.renderField(fieldCPI))
	b.WriteString(m.renderField(fieldPercentCPI))
	b.WriteString(m.renderField(fieldOrders))
	b.WriteString(m.renderFlags(item))

	b.WriteString(m.styles.Label.Render("Ghi chú"))
	b.WriteString("\n")
	for n := range item.Notes {
		b.WriteString(m.renderField(fieldNoteBase + n))
	}

	return b.String()
}

func (m EditorPageModel) renderField(idx int) string {
	if idx >= len(m.inputs) {
		return ""
	}
	label := fieldLabels[idx]
	if idx >= fieldNoteBase {
		label = fmt.Sprintf("  ▫ ghi chú %d", idx-fieldNoteBase+1)
	}
	style := m.styles.Label
	if idx == m.focus {
		style = m.styles.Accent
	}
	return fmt.Sprintf("%s %s\n", style.Width(22).Render(label), m.inputs[idx].View())
}

// renderCostField shows the cost expression with its evaluated value
// inline once the expression actually computes something.
func (m EditorPageModel) renderCostField(item report.CampaignItem) string {
	row := m.renderField(fieldCPIInput)
	if strings.ContainsAny(item.CPIInput, "+-") {
		hint := " = " + numfmt.Format(expr.Evaluate(item.CPIInput))
		row = strings.TrimSuffix(row, "\n") + m.styles.Muted.Render(hint) + "\n"
	}
	return row
}

func (m EditorPageModel) renderMarkets(item report.CampaignItem) string {
	parts := make([]string, 0, len(report.AllMarkets))
	for _, market := range report.AllMarkets {
		label := market.Info().Label
		if market == item.Market {
			parts = append(parts, m.styles.MarketOn.Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.MarketOff.Render(" "+label+" "))
		}
	}
	rate := m.styles.Muted.Render(
		fmt.Sprintf("  1 %s = %.0f VND", item.Market, item.Market.Info().Rate))
	return fmt.Sprintf("%s %s%s\n",
		m.styles.Label.Width(22).Render("Thị trường"),
		lipgloss.JoinHorizontal(lipgloss.Top, parts...), rate)
}

func (m EditorPageModel) renderFlags(item report.CampaignItem) string {
	die := m.styles.FlagOff.Render("DIE PAGE")
	if item.DiePage {
		die = m.styles.FlagOn.Render("DIE PAGE")
	}
	rejected := m.styles.FlagOff.Render("TỪ CHỐI")
	if item.Rejected {
		rejected = m.styles.Warning.Render("TỪ CHỐI")
	}
	return fmt.Sprintf("%s %s  %s\n",
		m.styles.Label.Width(22).Render("Trạng thái"), die, rejected)
}
