package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizshell/internal/ui/theme"
)

// Progress shows how far through an assessment the user is.
type Progress struct {
	Current int // 1-based position of the panel shown
	Total   int
	Width   int
}

// View renders "Question n of m" followed by a bar filling the rest of Width.
func (p Progress) View() string {
	label := fmt.Sprintf("Question %d of %d", p.Current, p.Total)
	result := lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "

	barWidth := p.Width - lipgloss.Width(result)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	filled = max(0, min(filled, barWidth))

	result += lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return result
}
