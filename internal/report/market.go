package report

import "strings"

// Market identifies one of the three geographic markets a campaign can
// report against.
type Market string

const (
	MarketML Market = "ML"
	MarketTH Market = "TH"
	MarketSG Market = "SG"
)

// MarketInfo bundles the fixed per-market constants. Keeping rate,
// default price and label in one struct means the three can never drift
// apart the way parallel lookup maps can.
type MarketInfo struct {
	// Rate is local currency units per reference unit (VND per 1 local).
	Rate float64

	// DefaultPrice is the per-order local price a campaign starts with.
	// SG has no default; the operator fills it in.
	DefaultPrice string

	// Label is the display name shown in the market picker.
	Label string
}

var markets = map[Market]MarketInfo{
	MarketML: {Rate: 5200, DefaultPrice: "179", Label: "MALAYSIA (ML)"},
	MarketTH: {Rate: 750, DefaultPrice: "1200", Label: "THÁI LAN (TH)"},
	MarketSG: {Rate: 15600, DefaultPrice: "", Label: "SINGAPORE (SG)"},
}

// AllMarkets lists the markets in picker and detection priority order.
var AllMarkets = []Market{MarketML, MarketTH, MarketSG}

// Valid reports whether m is a known market.
func (m Market) Valid() bool {
	_, ok := markets[m]
	return ok
}

// Info returns the constants for m. Unknown markets resolve to ML, the
// same coercion applied when loading old snapshots.
func (m Market) Info() MarketInfo {
	if info, ok := markets[m]; ok {
		return info
	}
	return markets[MarketML]
}

// DetectMarket scans a campaign name for a market code, case
// insensitively. Priority is ML, then TH, then SG when several match;
// historic report names rely on that exact order.
func DetectMarket(name string) (Market, bool) {
	upper := strings.ToUpper(name)
	for _, m := range AllMarkets {
		if strings.Contains(upper, string(m)) {
			return m, true
		}
	}
	return "", false
}
