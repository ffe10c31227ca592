package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asmt "github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/router"
	"github.com/abhisek/quizshell/internal/screen"
	"github.com/abhisek/quizshell/internal/ui/components"
	"github.com/abhisek/quizshell/internal/ui/layout"
	"github.com/abhisek/quizshell/internal/ui/theme"
)

const banner = "Q U I Z S H E L L"

// WelcomeScreen introduces the assessment and starts it on request.
type WelcomeScreen struct {
	def          *asmt.Assessment
	startFactory func() screen.Screen
	menu         components.Menu
	started      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for def. Choosing "Start" replaces it with the
// screen produced by startFactory.
func New(def *asmt.Assessment, startFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{def: def, startFactory: startFactory}
	w.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start", Action: w.start},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	next := w.startFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.def.Title),
	}
	if w.def.Description != "" {
		sections = append(sections, theme.Subtitle.Render(w.def.Description))
	}
	sections = append(sections,
		theme.Hint.Render(fmt.Sprintf("%d questions", len(w.def.Questions))),
		"",
		w.menu.View(),
	)
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
