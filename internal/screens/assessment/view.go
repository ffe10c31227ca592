package assessment

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/ui/components"
	"github.com/abhisek/quizshell/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	p := s.active()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("This assessment has no questions."))
	}

	var top []string
	if s.panels.Len() > 1 {
		done := make(map[int]bool, len(s.order))
		for i, q := range s.order {
			done[i] = q.ctrl.State() == question.StateCompleted
		}
		top = append(top,
			components.Tabs{Count: s.panels.Len(), Active: s.panels.ActiveIndex(), Done: done}.View(),
			components.Progress{Current: s.panels.ActiveIndex() + 1, Total: s.panels.Len(), Width: width - 2}.View(),
			"",
		)
	}
	if p.def.Title != "" {
		top = append(top, theme.Title.Render(p.def.Title))
	}
	if p.def.Prompt != "" {
		top = append(top, theme.Body.Render(p.def.Prompt))
	}

	footer := s.renderFooter(p, width)

	// Two border rows around the content box.
	boxHeight := height - len(top) - lipgloss.Height(footer) - 2
	if len(top) > 0 {
		boxHeight--
	}
	boxHeight = max(boxHeight, 1)

	innerWidth := max(width-2-theme.Content.GetHorizontalFrameSize(), 1)
	window := p.content.render(s.renderWidgets(p), innerWidth, boxHeight)

	box := theme.Content.
		Width(width - 2).
		Height(boxHeight + 2).
		Render(window)

	sections := top
	if len(sections) > 0 {
		sections = append(sections, "")
	}
	sections = append(sections, box, footer)
	return strings.Join(sections, "\n")
}

func (s *AssessmentScreen) renderWidgets(p *panel) string {
	if len(p.widgets) == 0 {
		return theme.Hint.Render("This question has no responses to answer.")
	}
	views := make([]string, len(p.widgets))
	for i, w := range p.widgets {
		views[i] = w.View()
	}
	return strings.Join(views, "\n")
}

func (s *AssessmentScreen) renderFooter(p *panel, width int) string {
	button := components.NewButton(p.ctrl.Label(), !p.ctrl.Enabled(), s.focus == len(p.widgets)).View()

	status := ""
	switch {
	case p.ctrl.Label() == question.LabelRecheck && !p.ctrl.Enabled():
		status = theme.Incorrect.Render("Not quite. Change your answer and recheck.")
	case p.ctrl.State() == question.StateCompleted:
		status = theme.Correct.Render("Correct!")
	}

	gap := max(width-lipgloss.Width(status)-lipgloss.Width(button)-1, 1)
	return status + strings.Repeat(" ", gap) + button
}
