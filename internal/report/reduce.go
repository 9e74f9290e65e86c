package report

import (
	"strings"
	"time"

	"quickreport/internal/clock"
)

// Action is a discrete state transition request. Every user gesture and
// the background clock tick map onto exactly one Action; Reduce is the
// only way a State changes.
type Action interface{ isAction() }

// SetUserName replaces the reporter name in the header.
type SetUserName struct{ Name string }

// SetTime replaces the header time with free text.
type SetTime struct{ Value string }

// SetDate replaces the header date with free text.
type SetDate struct{ Value string }

// RefreshClock snaps the header time and date to the wall clock.
type RefreshClock struct{ Now time.Time }

// TickClock is the periodic live-clock update. Unlike RefreshClock it is
// a no-op when the computed strings already match, so the 30s timer does
// not churn state (or trigger snapshot writes) while nothing changed.
type TickClock struct{ Now time.Time }

// AddItem appends a campaign row, optionally pre-named from the catalog.
type AddItem struct{ Name string }

// RemoveItem deletes a campaign row.
type RemoveItem struct{ ID string }

// UpdateItem applies a field patch to one row and recomputes its
// derived fields.
type UpdateItem struct {
	ID    string
	Patch Patch
}

// AddNote appends an empty note line to a row.
type AddNote struct{ ItemID string }

// UpdateNote rewrites one note line.
type UpdateNote struct {
	ItemID string
	Index  int
	Value  string
}

// RemoveNote deletes one note line. Removing the last line leaves a
// single empty note; a row never has zero notes.
type RemoveNote struct {
	ItemID string
	Index  int
}

// AddCatalogProduct saves a product name as a quick-add shortcut.
type AddCatalogProduct struct{ Name string }

// RemoveCatalogProduct deletes a quick-add shortcut.
type RemoveCatalogProduct struct{ Name string }

func (SetUserName) isAction() {}
func (SetTime) isAction() {}
func (SetDate) isAction() {}
func (RefreshClock) isAction() {}
func (TickClock) isAction() {}
func (AddItem) isAction() {}
func (RemoveItem) isAction() {}
func (UpdateItem) isAction() {}
func (AddNote) isAction() {}
func (UpdateNote) isAction() {}
func (RemoveNote) isAction() {}
func (AddCatalogProduct) isAction() {}
func (RemoveCatalogProduct) isAction() {}

// Reduce applies a single action and returns the next state. The input
// state is never mutated; slices are copied before any write. Actions
// referencing unknown rows or note indices reduce to the unchanged
// state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUserName:
		s.UserName = a.Name
		return s

	case SetTime:
		s.Time = a.Value
		return s

	case SetDate:
		s.Date = a.Value
		return s

	case RefreshClock:
		s.Time = clock.HourString(a.Now)
		s.Date = clock.DateString(a.Now)
		return s

	case TickClock:
		liveTime := clock.HourString(a.Now)
		liveDate := clock.DateString(a.Now)
		if s.Time == liveTime && s.Date == liveDate {
			return s
		}
		s.Time = liveTime
		s.Date = liveDate
		return s

	case AddItem:
		market := MarketML
		if detected, ok := DetectMarket(a.Name); ok {
			market = detected
		} else if n := len(s.Items); n > 0 {
			// A new unnamed row inherits the market the operator was
			// last working in.
			market = s.Items[n-1].Market
		}
		items := cloneItems(s.Items)
		s.Items = append(items, NewItem(market, a.Name))
		return s

	case RemoveItem:
		items := make([]CampaignItem, 0, len(s.Items))
		for _, item := range s.Items {
			if item.ID != a.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		return s

	case UpdateItem:
		idx := s.itemIndex(a.ID)
		if idx < 0 {
			return s
		}
		items := cloneItems(s.Items)
		items[idx] = ApplyPatch(items[idx], a.Patch)
		s.Items = items
		return s

	case AddNote:
		return s.withNotes(a.ItemID, func(notes []string) []string {
			return append(notes, "")
		})

	case UpdateNote:
		return s.withNotes(a.ItemID, func(notes []string) []string {
			if a.Index < 0 || a.Index >= len(notes) {
				return notes
			}
			notes[a.Index] = a.Value
			return notes
		})

	case RemoveNote:
		return s.withNotes(a.ItemID, func(notes []string) []string {
			if a.Index < 0 || a.Index >= len(notes) {
				return notes
			}
			notes = append(notes[:a.Index], notes[a.Index+1:]...)
			if len(notes) == 0 {
				notes = []string{""}
			}
			return notes
		})

	case AddCatalogProduct:
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return s
		}
		for _, existing := range s.ProductCatalog {
			if existing == name {
				return s
			}
		}
		catalog := cloneStrings(s.ProductCatalog)
		s.ProductCatalog = append(catalog, name)
		return s

	case RemoveCatalogProduct:
		catalog := make([]string, 0, len(s.ProductCatalog))
		for _, name := range s.ProductCatalog {
			if name != a.Name {
				catalog = append(catalog, name)
			}
		}
		s.ProductCatalog = catalog
		return s
	}

	return s
}

// withNotes rewrites one row's notes through fn, copying both the item
// slice and the notes slice first.
func (s State) withNotes(itemID string, fn func([]string) []string) State {
	idx := s.itemIndex(itemID)
	if idx < 0 {
		return s
	}
	items := cloneItems(s.Items)
	items[idx].Notes = fn(cloneStrings(items[idx].Notes))
	s.Items = items
	return s
}
