package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizshell/internal/router"
	"github.com/abhisek/quizshell/internal/screen"
	"github.com/abhisek/quizshell/internal/ui/theme"
)

var bindings = [][2]string{
	{"Tab / Shift+Tab", "Move between answers and the button"},
	{"↑ ↓ / j k", "Move within a multiple-choice answer"},
	{"Space / Enter / 1-9", "Pick an option"},
	{"Enter on the button", "Check, recheck, or move on"},
	{"PgUp / PgDn", "Scroll long questions"},
	{"Esc", "Go back"},
	{"q", "Quit (outside text answers)"},
	{"Ctrl+C", "Quit"},
}

// HelpScreen lists the key bindings of the question shell.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen { return &HelpScreen{} }

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "Help" }

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "?", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(22)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Keys") + "\n\n")
	for _, kb := range bindings {
		b.WriteString(keyStyle.Render(kb[0]) + theme.Subtitle.Render(kb[1]) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("press ? or Esc to return"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
