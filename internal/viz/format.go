package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lyapfrac/internal/analysis"
	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/render"
	"github.com/san-kum/lyapfrac/internal/storage"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteRange(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

func metric(label string, value any) string {
	return MetricLabel.Render(fmt.Sprintf("%-12s", label)) + MetricValue.Render(fmt.Sprint(value))
}

// Diagnostics formats the range of final map states and exponents seen
// during a render.
func Diagnostics(rep *render.Report) string {
	ext := rep.Extrema
	size := fmt.Sprintf("%dx%d", rep.Width, rep.Height)
	if rep.Mode == render.ModeVolume {
		size = fmt.Sprintf("%dx%dx%d", rep.Width, rep.Height, rep.Frames)
	}

	lines := []string{
		Title.Render("lyapunov " + string(rep.Mode)),
		metric("size", size),
		metric("samples", ext.Count),
		metric("x", fmt.Sprintf("%g .. %g", ext.MinX, ext.MaxX)),
		metric("lambda", fmt.Sprintf("%g .. %g", ext.MinLambda, ext.MaxLambda)),
		metric("elapsed", rep.Elapsed.Round(time.Millisecond)),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// Plot draws a λ profile. Non-finite values become gaps; a profile with no
// finite value yields an empty string.
func Plot(lambdas []float64, caption string) string {
	if _, _, ok := finiteRange(lambdas); !ok {
		return ""
	}

	data := make([]float64, len(lambdas))
	for i, v := range lambdas {
		if finite(v) {
			data[i] = v
		} else {
			data[i] = math.NaN()
		}
	}

	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func SummaryPanel(s analysis.Summary) string {
	lines := []string{
		Title.Render("summary"),
		metric("samples", fmt.Sprintf("%d (%d finite)", s.Samples, s.Finite)),
		metric("mean", fmt.Sprintf("%.6f", s.Mean)),
		metric("std dev", fmt.Sprintf("%.6f", s.StdDev)),
		metric("min", fmt.Sprintf("%.6f", s.Min)),
		metric("max", fmt.Sprintf("%.6f", s.Max)),
		metric("chaotic", fmt.Sprintf("%.1f%%", 100*s.ChaoticFraction)),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

func rangeText(r config.RangeConfig) string {
	return fmt.Sprintf("%g .. %g", r.Min, r.Max)
}

func PresetTable(names []string) string {
	header := fmt.Sprintf("%-12s %-14s %-14s %-14s %-14s", "name", "sequence", "a", "b", "c")
	rows := []string{HeaderStyle.Render(header)}
	for _, name := range names {
		p := config.GetPreset(name)
		if p == nil {
			continue
		}
		rows = append(rows, fmt.Sprintf("%-12s %-14s %-14s %-14s %-14s",
			name, p.Sequence, rangeText(p.A), rangeText(p.B), rangeText(p.C)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func RunTable(runs []storage.RunMetadata) string {
	if len(runs) == 0 {
		return Subtle.Render("no runs recorded")
	}

	header := fmt.Sprintf("%-45s %-7s %-20s %s", "id", "kind", "time", "sequence")
	rows := []string{HeaderStyle.Render(header)}
	for _, r := range runs {
		rows = append(rows, fmt.Sprintf("%-45s %-7s %-20s %s",
			r.ID, r.Kind, r.Timestamp.Format("2006-01-02 15:04:05"), r.Sequence))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
