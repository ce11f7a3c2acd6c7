package display

import (
	"fmt"
	"strings"
)

// Bar renders a textual progress bar for a percentage in [0, 100].
// width is the number of fill cells; values out of range are clamped.
//
//	Bar(50, 10) -> "[█████░░░░░]  50%"
func Bar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(Green(strings.Repeat("█", filled)))
	sb.WriteString(Dim(strings.Repeat("░", width-filled)))
	sb.WriteString("]")
	sb.WriteString(fmt.Sprintf(" %3.0f%%", pct))
	return sb.String()
}

// Checkmark renders a completion marker for checklist cells.
func Checkmark(done bool) string {
	if done {
		return Green("✔")
	}
	return Dim("·")
}
