package report

import (
	"strings"
	"testing"
)

func TestRenderFullBlock(t *testing.T) {
	s := State{
		UserName: "Hoàng Anh Tùng",
		Time:     "10h",
		Date:     "5/3",
		Items: []CampaignItem{
			{
				Name:       "SSK003 ML",
				DS:         "9308k",
				CPI:        "489k",
				PercentCPI: "5%",
				Orders:     "10s",
				DiePage:    true,
				Notes:      []string{"https://x", "", "  "},
			},
		},
	}

	want := strings.Join([]string{
		"BCKQ - Hoàng Anh Tùng",
		"10h - 5/3",
		"SSK003 ML",
		"• DS/CPI/%CPI/SỐ ĐƠN:9308k/489k/5%/10s",
		"  ▫ DIE PAGE",
		"  ▫ https://x",
	}, "\n")

	if got := Render(s); got != want {
		t.Fatalf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(Render(s), "TỪ CHỐI") {
		t.Fatalf("rejected line rendered without the flag")
	}
}

func TestRenderFallbacks(t *testing.T) {
	s := State{
		UserName: "A",
		Time:     "15h",
		Date:     "28/11",
		Items: []CampaignItem{
			{Notes: []string{""}},
		},
	}

	want := strings.Join([]string{
		"BCKQ - A",
		"15h - 28/11",
		"CHƯA ĐẶT TÊN",
		"• DS/CPI/%CPI/SỐ ĐƠN:0/0/0%/0s",
	}, "\n")

	if got := Render(s); got != want {
		t.Fatalf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRejectedFlag(t *testing.T) {
	s := State{
		Items: []CampaignItem{
			{Name: "X", Rejected: true, Notes: []string{""}},
		},
	}
	out := Render(s)
	if !strings.Contains(out, "  ▫ TỪ CHỐI") {
		t.Fatalf("missing rejected line:\n%s", out)
	}
	if strings.Contains(out, "DIE PAGE") {
		t.Fatalf("die page line rendered without the flag:\n%s", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	s := multiItemState()
	if Render(s) != Render(s) {
		t.Fatalf("identical states rendered differently")
	}
}

// multiItemState builds a small multi-item state without touching the
// wall clock.
func multiItemState() State {
	s := State{UserName: "u", Time: "10h", Date: "1/1"}
	s = Reduce(s, AddItem{Name: "SSK003 ML"})
	s = Reduce(s, AddItem{Name: "PRO001 TH"})
	id := s.Items[0].ID
	s = Reduce(s, UpdateItem{ID: id, Patch: Patch{OrdersCount: strPtr("3"), PricePerOrder: strPtr("179")}})
	return s
}

func TestRenderMultipleItemsNoSeparators(t *testing.T) {
	s := State{
		UserName: "u",
		Time:     "10h",
		Date:     "1/1",
		Items: []CampaignItem{
			{Name: "one", Notes: []string{""}},
			{Name: "two", Notes: []string{""}},
		},
	}
	out := Render(s)
	// The next item's name line follows the metrics line directly.
	if !strings.Contains(out, "0s\ntwo") {
		t.Fatalf("unexpected separator between items:\n%s", out)
	}
	if strings.Contains(out, "\n\n") {
		t.Fatalf("blank line leaked into the report:\n%s", out)
	}
}
