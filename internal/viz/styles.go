package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// exponent sign colours, matching the image palette
	Chaotic = lipgloss.NewStyle().Foreground(lipgloss.Color("#4466ff"))
	Stable  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	Neutral = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Sparkline renders values as block characters, one per column, sampled
// down to width. Positive values are drawn in the chaotic colour.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi, ok := finiteRange(values)
	if !ok {
		return strings.Repeat(" ", min(width, len(values)))
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		if !finite(v) {
			b.WriteRune(' ')
			continue
		}
		idx := int((v - lo) / rng * float64(len(chars)-1))
		c := string(chars[idx])
		switch {
		case v > 0:
			b.WriteString(Chaotic.Render(c))
		case v < 0:
			b.WriteString(Stable.Render(c))
		default:
			b.WriteString(Neutral.Render(c))
		}
	}
	return b.String()
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}
