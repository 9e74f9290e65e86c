package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }
func mktPtr(m Market) *Market { return &m }
func boolPtr(b bool) *bool { return &b }

func TestApplyPatchEndToEnd(t *testing.T) {
	item := NewItem(MarketML, "")

	item = ApplyPatch(item, Patch{Name: strPtr("SSK003 ML")})
	item = ApplyPatch(item, Patch{PricePerOrder: strPtr("179")})
	item = ApplyPatch(item, Patch{OrdersCount: strPtr("10")})
	item = ApplyPatch(item, Patch{CPIInput: strPtr("439000+50000")})

	if item.DS != "9308k" {
		t.Fatalf("DS = %q, want 9308k", item.DS)
	}
	if item.CPI != "489k" {
		t.Fatalf("CPI = %q, want 489k", item.CPI)
	}
	if item.PercentCPI != "5%" {
		t.Fatalf("PercentCPI = %q, want 5%%", item.PercentCPI)
	}
	if item.Orders != "10s" {
		t.Fatalf("Orders = %q, want 10s", item.Orders)
	}
}

func TestApplyPatchMarketResetsPrice(t *testing.T) {
	item := NewItem(MarketML, "campaign")
	item.PricePerOrder = "999"

	updated := ApplyPatch(item, Patch{Market: mktPtr(MarketTH)})
	if updated.Market != MarketTH {
		t.Fatalf("market = %q, want TH", updated.Market)
	}
	if updated.PricePerOrder != "1200" {
		t.Fatalf("price = %q, want TH default 1200", updated.PricePerOrder)
	}

	// Repeating the identical market set must not disturb anything.
	again := ApplyPatch(updated, Patch{Market: mktPtr(MarketTH)})
	if diff := cmp.Diff(updated, again); diff != "" {
		t.Fatalf("repeated market set changed the item:\n%s", diff)
	}
}

func TestApplyPatchNameInfersMarket(t *testing.T) {
	item := NewItem(MarketML, "")
	item.PricePerOrder = "500"

	updated := ApplyPatch(item, Patch{Name: strPtr("promo th launch")})
	if updated.Market != MarketTH {
		t.Fatalf("market = %q, want TH", updated.Market)
	}
	if updated.PricePerOrder != "1200" {
		t.Fatalf("price = %q, want TH default", updated.PricePerOrder)
	}

	// A name still matching the current market leaves the price alone.
	samemarket := ApplyPatch(updated, Patch{Name: strPtr("PRO002 TH")})
	if samemarket.PricePerOrder != "1200" {
		t.Fatalf("price = %q, want unchanged 1200", samemarket.PricePerOrder)
	}

	// ML outranks TH and SG when a name matches several codes.
	multi := ApplyPatch(item, Patch{Name: strPtr("SG TH ML combo")})
	if multi.Market != MarketML {
		t.Fatalf("market = %q, want ML by priority", multi.Market)
	}
}

func TestApplyPatchNameWithoutCodeKeepsMarket(t *testing.T) {
	item := NewItem(MarketTH, "old TH")
	item.PricePerOrder = "777"

	updated := ApplyPatch(item, Patch{Name: strPtr("renamed campaign")})
	if updated.Market != MarketTH {
		t.Fatalf("market = %q, want TH", updated.Market)
	}
	if updated.PricePerOrder != "777" {
		t.Fatalf("price = %q, want untouched 777", updated.PricePerOrder)
	}
}

func TestApplyPatchRevenueNeedsPositiveInputs(t *testing.T) {
	item := NewItem(MarketML, "SSK003 ML")
	item.DS = "100k"

	updated := ApplyPatch(item, Patch{PricePerOrder: strPtr("0")})
	if updated.DS != "100k" {
		t.Fatalf("DS = %q, want previous value kept", updated.DS)
	}

	updated = ApplyPatch(item, Patch{OrdersCount: strPtr("abc")})
	if updated.DS != "100k" {
		t.Fatalf("DS = %q, want previous value kept on bad count", updated.DS)
	}
	if updated.Orders != "" {
		t.Fatalf("Orders = %q, want empty when revenue did not resolve", updated.Orders)
	}
}

func TestApplyPatchOrdersOnlyOnCountTrigger(t *testing.T) {
	item := NewItem(MarketML, "SSK003 ML")
	item.OrdersCount = "10"
	item.PricePerOrder = "179"

	// A price edit recomputes DS but leaves the "Ns" display alone.
	updated := ApplyPatch(item, Patch{PricePerOrder: strPtr("200")})
	if updated.DS == "" {
		t.Fatalf("expected DS to recompute on price edit")
	}
	if updated.Orders != "" {
		t.Fatalf("Orders = %q, want untouched on price edit", updated.Orders)
	}

	updated = ApplyPatch(item, Patch{OrdersCount: strPtr("12")})
	if updated.Orders != "12s" {
		t.Fatalf("Orders = %q, want 12s", updated.Orders)
	}
}

func TestApplyPatchCostRecomputesOnMarketChange(t *testing.T) {
	item := NewItem(MarketML, "campaign ml")
	item.CPIInput = "100000+20000"

	updated := ApplyPatch(item, Patch{Market: mktPtr(MarketTH)})
	if updated.CPI != "120k" {
		t.Fatalf("CPI = %q, want 120k", updated.CPI)
	}

	// An empty expression still formats: zero renders as "0k".
	cleared := ApplyPatch(updated, Patch{CPIInput: strPtr("")})
	if cleared.CPI != "0k" {
		t.Fatalf("CPI = %q, want 0k for empty expression", cleared.CPI)
	}
}

func TestApplyPatchManualOverridesNormalize(t *testing.T) {
	item := NewItem(MarketML, "campaign ml")

	updated := ApplyPatch(item, Patch{DS: strPtr("215000")})
	if updated.DS != "215k" {
		t.Fatalf("DS = %q, want 215k", updated.DS)
	}

	updated = ApplyPatch(updated, Patch{CPI: strPtr("43,000")})
	if updated.CPI != "43k" {
		t.Fatalf("CPI = %q, want 43k", updated.CPI)
	}
	if updated.PercentCPI != "20%" {
		t.Fatalf("PercentCPI = %q, want 20%%", updated.PercentCPI)
	}
}

func TestApplyPatchPercentRules(t *testing.T) {
	item := NewItem(MarketML, "campaign ml")
	item.DS = "100k"
	item.CPI = "33k"
	item.PercentCPI = "33%"

	// Positive DS with an emptied CPI clears the stale percentage.
	updated := ApplyPatch(item, Patch{CPI: strPtr("")})
	if updated.PercentCPI != "" {
		t.Fatalf("PercentCPI = %q, want cleared", updated.PercentCPI)
	}

	// Unresolvable DS leaves the percentage untouched.
	item.DS = ""
	updated = ApplyPatch(item, Patch{Name: strPtr("campaign ml v2")})
	if updated.PercentCPI != "33%" {
		t.Fatalf("PercentCPI = %q, want untouched 33%%", updated.PercentCPI)
	}
}

func TestApplyPatchNeverPanicsOnHostileInput(t *testing.T) {
	hostile := []string{
		"", "NaN", "1e309", "'; DROP TABLE items;--", "∞", "....",
		"+-+-+-", "999999999999999999999999999", "\x00\x01",
	}
	item := NewItem(MarketML, "x")
	for _, s := range hostile {
		item = ApplyPatch(item, Patch{PricePerOrder: &s})
		item = ApplyPatch(item, Patch{OrdersCount: &s})
		item = ApplyPatch(item, Patch{CPIInput: &s})
		item = ApplyPatch(item, Patch{DS: &s})
		item = ApplyPatch(item, Patch{CPI: &s})
	}
	// Reaching here without panicking is the property under test; the
	// row must also still render.
	_ = Render(State{Items: []CampaignItem{item}})
}

func TestApplyPatchIsDeterministic(t *testing.T) {
	item := NewItem(MarketML, "SSK003 ML")
	p := Patch{OrdersCount: strPtr("7"), PricePerOrder: strPtr("179")}

	first := ApplyPatch(item, p)
	second := ApplyPatch(item, p)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same base and patch produced different items:\n%s", diff)
	}
}

func TestApplyPatchDoesNotMutateInput(t *testing.T) {
	item := NewItem(MarketML, "SSK003 ML")
	item.Notes = []string{"keep me"}
	snapshot := item
	snapshot.Notes = append([]string(nil), item.Notes...)

	_ = ApplyPatch(item, Patch{Name: strPtr("renamed TH"), DiePage: boolPtr(true)})

	if diff := cmp.Diff(snapshot, item); diff != "" {
		t.Fatalf("input item was mutated:\n%s", diff)
	}
}
