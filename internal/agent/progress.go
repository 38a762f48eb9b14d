package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const countdownWidth = 30

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// renderCountdown draws a bar that empties as the next tick approaches.
func renderCountdown(remaining, total time.Duration) string {
	filled := countdownFill(remaining, total, countdownWidth)
	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", countdownWidth-filled))
	return fmt.Sprintf("%s %s", bar, barLabelStyle.Render(fmtRemaining(remaining)+" until next post"))
}

// countdownFill maps remaining/total onto [0, width] bar cells.
func countdownFill(remaining, total time.Duration, width int) int {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= total {
		return width
	}
	return int(float64(width) * float64(remaining) / float64(total))
}

// fmtRemaining formats a duration for the countdown label, dropping
// sub-second noise and zero-valued leading units.
func fmtRemaining(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
