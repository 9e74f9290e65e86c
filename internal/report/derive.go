package report

import (
	"strconv"

	"quickreport/internal/expr"
	"quickreport/internal/numfmt"
)

// Patch carries the subset of campaign fields the operator just edited.
// Nil means "not touched this update"; the distinction between an unset
// field and an explicitly emptied one drives the derivation triggers.
type Patch struct {
	Name          *string
	Market        *Market
	DS            *string
	CPI           *string
	CPIInput      *string
	PercentCPI    *string
	Orders        *string
	PricePerOrder *string
	OrdersCount   *string
	DiePage       *bool
	Rejected      *bool
}

// ApplyPatch returns item with the patch applied and every dependent
// field recomputed. It is a pure function: the same item and patch
// always produce the same result, and applying an identical patch twice
// is a no-op the second time.
//
// The rules run in a fixed order; later rules read fields written by
// earlier ones within the same call:
//
//  1. an edited name is scanned for a market code (ML before TH before
//     SG) and may switch the market, resetting the default price
//  2. an edited market resets the price to that market's default
//  3. revenue (DS) recomputes from price x count x exchange rate,
//     and an edited order count refreshes the "Ns" display
//  4. cost (CPI) recomputes from the cost expression
//  5. manual DS/CPI edits are normalized to compact notation
//  6. the cost/revenue percentage recomputes from whatever DS and CPI
//     now hold
//
// Nothing here returns an error. Malformed numbers degrade to zero and
// the affected derived field keeps its previous value, so the report is
// always renderable.
func ApplyPatch(item CampaignItem, p Patch) CampaignItem {
	updated := item
	updated.Notes = cloneStrings(item.Notes)

	if p.Name != nil {
		updated.Name = *p.Name
	}
	if p.Market != nil {
		updated.Market = *p.Market
	}
	if p.DS != nil {
		updated.DS = *p.DS
	}
	if p.CPI != nil {
		updated.CPI = *p.CPI
	}
	if p.CPIInput != nil {
		updated.CPIInput = *p.CPIInput
	}
	if p.PercentCPI != nil {
		updated.PercentCPI = *p.PercentCPI
	}
	if p.Orders != nil {
		updated.Orders = *p.Orders
	}
	if p.PricePerOrder != nil {
		updated.PricePerOrder = *p.PricePerOrder
	}
	if p.OrdersCount != nil {
		updated.OrdersCount = *p.OrdersCount
	}
	if p.DiePage != nil {
		updated.DiePage = *p.DiePage
	}
	if p.Rejected != nil {
		updated.Rejected = *p.Rejected
	}

	// Rule 1: market inference from the name. Only a detected market
	// that differs from the row's previous market forces a price reset.
	if p.Name != nil {
		if detected, ok := DetectMarket(*p.Name); ok && detected != item.Market {
			updated.Market = detected
			updated.PricePerOrder = detected.Info().DefaultPrice
		}
	}

	// Rule 2: an explicit market change resets the price.
	if p.Market != nil {
		updated.PricePerOrder = updated.Market.Info().DefaultPrice
	}

	// Rule 3: revenue. Only strictly positive price and count produce a
	// value; otherwise DS keeps whatever it held.
	rate := updated.Market.Info().Rate
	if p.PricePerOrder != nil || p.OrdersCount != nil || p.Market != nil || p.Name != nil {
		price := numfmt.Float(updated.PricePerOrder)
		count := numfmt.Float(updated.OrdersCount)
		if price > 0 && count > 0 {
			updated.DS = numfmt.Format(numfmt.Round(price * count * rate))
			if p.OrdersCount != nil {
				updated.Orders = strconv.FormatFloat(count, 'f', -1, 64) + "s"
			}
		}
	}

	// Rule 4: cost. An empty expression evaluates to 0 and formats as
	// "0k"; that is the expected display for a cleared cost.
	if p.CPIInput != nil || p.Market != nil {
		updated.CPI = numfmt.Format(expr.Evaluate(updated.CPIInput))
	}

	// Rule 5: manual overrides of the derived fields get normalized.
	if p.DS != nil {
		updated.DS = numfmt.Normalize(*p.DS)
	}
	if p.CPI != nil {
		updated.CPI = numfmt.Normalize(*p.CPI)
	}

	// Rule 6: percentage, always last. A positive DS with an empty CPI
	// clears the stale percentage; any other unresolvable combination
	// leaves it untouched.
	dsVal := numfmt.Parse(updated.DS)
	cpiVal := numfmt.Parse(updated.CPI)
	if dsVal > 0 && cpiVal > 0 {
		pct := numfmt.Round(cpiVal / dsVal * 100)
		updated.PercentCPI = strconv.FormatFloat(pct, 'f', -1, 64) + "%"
	} else if dsVal > 0 && updated.CPI == "" {
		updated.PercentCPI = ""
	}

	return updated
}
