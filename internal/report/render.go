package report

import "strings"

// Literal strings emitted in the report block. These are opaque report
// vocabulary, not translatable UI text.
const (
	reportPrefix = "BCKQ"
	unnamedItem  = "CHƯA ĐẶT TÊN"
	diePageLine  = "  ▫ DIE PAGE"
	rejectedLine = "  ▫ TỪ CHỐI"
)

// Render serializes the whole report into the exact text block that gets
// copied out. The live preview and the clipboard copy both call this;
// they can never diverge. Pure function of s, no trailing newline.
func Render(s State) string {
	lines := make([]string, 0, 2+len(s.Items)*4)
	lines = append(lines, reportPrefix+" - "+s.UserName)
	lines = append(lines, s.Time+" - "+s.Date)

	for _, item := range s.Items {
		name := item.Name
		if name == "" {
			name = unnamedItem
		}
		lines = append(lines, name)
		lines = append(lines, "• DS/CPI/%CPI/SỐ ĐƠN:"+
			orDefault(item.DS, "0")+"/"+
			orDefault(item.CPI, "0")+"/"+
			orDefault(item.PercentCPI, "0%")+"/"+
			orDefault(item.Orders, "0s"))
		if item.DiePage {
			lines = append(lines, diePageLine)
		}
		if item.Rejected {
			lines = append(lines, rejectedLine)
		}
		for _, note := range item.Notes {
			if trimmed := strings.TrimSpace(note); trimmed != "" {
				lines = append(lines, "  ▫ "+trimmed)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
