package ui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with a rounded percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	// rounded, matching packing.Stats.Percent
	pct := (done*100 + total/2) / total
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a box drawn with the current theme's border.
// Widths are measured on visible cells, so styled lines line up.
func Panel(lines []string) string {
	t := Current()
	b := t.Border
	paint := func(s string) string {
		if t.BorderColor == "" {
			return s
		}
		return t.Muted.Foreground(t.BorderColor).Render(s)
	}

	maxw := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}

	var sb strings.Builder
	sb.WriteString(paint(b.TopLeft+strings.Repeat(b.Top, maxw+2)+b.TopRight) + "\n")
	for _, ln := range lines {
		pad := strings.Repeat(" ", maxw-xansi.StringWidth(ln))
		sb.WriteString(paint(b.Left) + " " + ln + pad + " " + paint(b.Right) + "\n")
	}
	sb.WriteString(paint(b.BottomLeft + strings.Repeat(b.Bottom, maxw+2) + b.BottomRight))
	return sb.String()
}

// Truncate shortens s to at most width visible cells, ending in "…".
func Truncate(s string, width int) string {
	if width <= 0 || xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}
