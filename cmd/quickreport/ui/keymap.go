package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding the interface responds to. The pages
// share one map so the help footer can describe the whole surface.
type KeyMap struct {
	// Global
	Help    key.Binding
	Editor  key.Binding
	Catalog key.Binding
	Preview key.Binding
	Refresh key.Binding
	Quit    key.Binding

	// Editor page
	NextField      key.Binding
	PrevField      key.Binding
	NextItem       key.Binding
	PrevItem       key.Binding
	AddItem        key.Binding
	DeleteItem     key.Binding
	CycleMarket    key.Binding
	ToggleDiePage  key.Binding
	ToggleRejected key.Binding
	AddNote        key.Binding
	DeleteNote     key.Binding

	// Catalog page
	SwitchFocus key.Binding
	Confirm     key.Binding
	DeleteEntry key.Binding

	// Preview page
	Copy key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Editor:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "editor")),
		Catalog: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "catalog")),
		Preview: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "preview")),
		Refresh: key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "refresh clock")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		NextField:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		NextItem:       key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next campaign")),
		PrevItem:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev campaign")),
		AddItem:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add campaign")),
		DeleteItem:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete campaign")),
		CycleMarket:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cycle market")),
		ToggleDiePage:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle DIE PAGE")),
		ToggleRejected: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "toggle TỪ CHỐI")),
		AddNote:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "add note")),
		DeleteNote:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete note")),

		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		DeleteEntry: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove product")),

		Copy: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c/enter", "copy report")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Editor, k.Catalog, k.Preview, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Editor, k.Catalog, k.Preview, k.Refresh, k.Quit},
		{k.NextField, k.PrevField, k.NextItem, k.PrevItem, k.AddItem, k.DeleteItem},
		{k.CycleMarket, k.ToggleDiePage, k.ToggleRejected, k.AddNote, k.DeleteNote},
		{k.SwitchFocus, k.Confirm, k.DeleteEntry, k.Copy},
	}
}
