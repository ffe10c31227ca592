package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizshell/internal/ui/theme"
)

// Tabs renders a strip with one tab per question panel.
type Tabs struct {
	Count  int
	Active int

	// Done marks panels whose question has been completed.
	Done map[int]bool
}

// View renders the strip.
func (t Tabs) View() string {
	parts := make([]string, 0, t.Count)
	for i := 0; i < t.Count; i++ {
		label := fmt.Sprintf("%d", i+1)
		switch {
		case i == t.Active:
			parts = append(parts, theme.TabActive.Render(label))
		case t.Done[i]:
			parts = append(parts, theme.TabDone.Render(label+"✓"))
		default:
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
