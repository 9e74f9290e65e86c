// Package report holds the report state, the derivation rules that keep
// a campaign's computed fields consistent, and the text renderer for the
// final copy-out block. All state transitions go through Reduce; nothing
// in this package touches the outside world.
package report

import (
	"time"

	"github.com/google/uuid"

	"quickreport/internal/clock"
)

// CampaignItem is one reporting row. The string fields deliberately hold
// raw display text, not parsed numbers: the report is assembled from
// exactly what the operator sees, and parse failures degrade to zero
// instead of blocking entry.
type CampaignItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Market Market `json:"market"`

	// DS is the derived (or manually overridden) revenue, in compact
	// display form such as "215k".
	DS string `json:"ds"`

	// CPI is the derived cost, formatted from evaluating CPIInput.
	CPI string `json:"cpi"`

	// CPIInput is the raw cost expression, e.g. "439000 + 50000".
	CPIInput string `json:"cpiInput"`

	// PercentCPI is the derived cost/revenue ratio with a "%" suffix.
	PercentCPI string `json:"percentCpi"`

	// Orders is the display order count with an "s" suffix, e.g. "12s".
	Orders string `json:"orders"`

	PricePerOrder string `json:"pricePerOrder"`
	OrdersCount   string `json:"ordersCount"`

	// Notes always holds at least one entry, possibly empty.
	Notes []string `json:"notes"`

	DiePage  bool `json:"diePage"`
	Rejected bool `json:"rejected"`
}

// State is the root aggregate: header metadata, the ordered campaign
// rows, and the quick-add product catalog. Every mutation produces a new
// value; callers never see a State change underneath them.
type State struct {
	UserName       string         `json:"userName"`
	Time           string         `json:"time"`
	Date           string         `json:"date"`
	Items          []CampaignItem `json:"items"`
	ProductCatalog []string       `json:"productCatalog"`
}

// NewItem creates a fresh campaign row for the given market, seeded with
// that market's default per-order price and a single empty note.
func NewItem(market Market, name string) CampaignItem {
	return CampaignItem{
		ID:            uuid.NewString(),
		Name:          name,
		Market:        market,
		PricePerOrder: market.Info().DefaultPrice,
		Notes:         []string{""},
	}
}

// DefaultState is the first-run state: one sample campaign and three
// catalog shortcuts, header clock taken from now.
func DefaultState(now time.Time) State {
	return State{
		UserName: "Hoàng Anh Tùng",
		Time:     clock.HourString(now),
		Date:     clock.DateString(now),
		Items:    []CampaignItem{NewItem(MarketML, "SSK003 ML")},
		ProductCatalog: []string{
			"SSK003 ML",
			"PRO001 TH",
			"SG_PRODUCT_01",
		},
	}
}

func (s State) itemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []CampaignItem) []CampaignItem {
	out := make([]CampaignItem, len(items))
	copy(out, items)
	return out
}

func cloneStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}
