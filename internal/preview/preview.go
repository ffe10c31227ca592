// Package preview runs an assessment in line mode over plain readers and
// writers. It drives the same controllers as the terminal UI.
package preview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	asmt "github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/logging"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/response"
)

// Runner plays an assessment on in/out.
type Runner struct {
	def    *asmt.Assessment
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	panels  *asmt.Panels
	ctrls   map[string]*question.Controller
	widgets map[string][]response.Widget
	pending []question.Signal
}

// New builds a runner with a controller for every question of def.
func New(def *asmt.Assessment, in io.Reader, out io.Writer, policy question.Policy, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	ids := make([]string, len(def.Questions))
	for i, q := range def.Questions {
		ids[i] = q.ID
	}

	r := &Runner{
		def:     def,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		panels:  asmt.NewPanels(ids),
		ctrls:   make(map[string]*question.Controller, len(ids)),
		widgets: make(map[string][]response.Widget, len(ids)),
	}

	for _, q := range def.Questions {
		var responses []question.Response
		for i, rd := range q.Responses {
			w, err := response.New(rd)
			if err != nil {
				return nil, fmt.Errorf("question %q response %d: %w", q.ID, i+1, err)
			}
			r.widgets[q.ID] = append(r.widgets[q.ID], w)
			responses = append(responses, w)
		}
		ctrl := question.NewController(q.ID, responses, question.Options{
			Policy:    policy,
			Enclosure: r.panels,
			Logger:    logger,
		})
		ctrl.OnSignal(func(sig question.Signal) { r.pending = append(r.pending, sig) })
		r.ctrls[q.ID] = ctrl
	}
	return r, nil
}

// Run plays until the input ends, the user quits, or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "%s\n", r.def.Title)
	if r.def.Description != "" {
		fmt.Fprintf(r.out, "%s\n", r.def.Description)
	}
	fmt.Fprintln(r.out, "Answer with a line of text (n=answer when a question has several parts).")
	fmt.Fprintln(r.out, "An empty line presses the button. :reset clears the question, :quit exits.")

	shown := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		id := r.panels.Active()
		if id == "" {
			return nil
		}
		if id != shown {
			r.printQuestion(id)
			shown = id
		}
		r.printButton(id)

		if !r.in.Scan() {
			fmt.Fprintln(r.out, "\n(input closed)")
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())

		switch line {
		case ":quit", ":q":
			return nil
		case ":reset":
			r.ctrls[id].Reset()
			shown = ""
			continue
		case "":
			r.press(id)
			if r.panels.Active() != id || r.ctrls[id].State() == question.StateUnanswered {
				shown = ""
			}
			continue
		}

		if err := r.answer(id, line); err != nil {
			fmt.Fprintf(r.out, "  %v\n", err)
		}
	}
}

// press activates the CTA of question id and then delivers any signal to
// the panel container.
func (r *Runner) press(id string) {
	ctrl := r.ctrls[id]
	if !ctrl.Enabled() {
		fmt.Fprintln(r.out, "  (answer every part first)")
		return
	}
	ctrl.Activate()

	pending := r.pending
	r.pending = nil
	for _, sig := range pending {
		switch sig {
		case question.SignalNextQuestion:
			if r.panels.Next() {
				r.logger.Info("navigate to next question", "from", id, "to", r.panels.Active())
				r.ctrls[r.panels.Active()].Reset()
			}
		case question.SignalAssessmentReset:
			r.logger.Info("reset assessment", "from", id)
			for _, c := range r.ctrls {
				c.Reset()
			}
			r.panels.Restart()
			fmt.Fprintln(r.out, "\nStarting over.")
		}
	}
}

// answer applies "text" (single-part questions) or "n=text".
func (r *Runner) answer(id, line string) error {
	widgets := r.widgets[id]
	if len(widgets) == 0 {
		return fmt.Errorf("this question has nothing to answer")
	}

	idx, value := 0, line
	if len(widgets) > 1 {
		n, rest, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("use n=answer, n between 1 and %d", len(widgets))
		}
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 1 || i > len(widgets) {
			return fmt.Errorf("no part %q", strings.TrimSpace(n))
		}
		idx, value = i-1, strings.TrimSpace(rest)
	}

	switch w := widgets[idx].(type) {
	case *response.MultiChoice:
		choice, err := parseChoice(value, len(w.Options))
		if err != nil {
			return err
		}
		w.Choose(choice)
	case *response.TextAnswer:
		w.SetValue(value)
	}
	return nil
}

// parseChoice accepts an option number (1-based) or letter.
func parseChoice(s string, n int) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= n {
		return i - 1, nil
	}
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		if c >= 'A' && int(c-'A') < n {
			return int(c - 'A'), nil
		}
	}
	return 0, fmt.Errorf("pick an option between 1 and %d", n)
}

func (r *Runner) printQuestion(id string) {
	q := r.def.Questions[r.panels.ActiveIndex()]
	fmt.Fprintf(r.out, "\n── Question %d/%d", r.panels.ActiveIndex()+1, r.panels.Len())
	if q.Title != "" {
		fmt.Fprintf(r.out, ": %s", q.Title)
	}
	fmt.Fprintln(r.out, " ──")
	if q.Prompt != "" {
		fmt.Fprintln(r.out, q.Prompt)
	}

	for i, w := range r.widgets[id] {
		switch w := w.(type) {
		case *response.MultiChoice:
			fmt.Fprintf(r.out, "%d. %s\n", i+1, w.Prompt)
			for j, opt := range w.Options {
				fmt.Fprintf(r.out, "   %c) %s%s\n", 'A'+rune(j), opt, revealMark(w, j))
			}
		case *response.TextAnswer:
			fmt.Fprintf(r.out, "%d. %s", i+1, w.Prompt)
			if w.Value() != "" {
				fmt.Fprintf(r.out, " [%s]", w.Value())
				if w.Revealed() {
					fmt.Fprint(r.out, mark(w.State()))
				}
			}
			fmt.Fprintln(r.out)
		}
	}
}

func (r *Runner) printButton(id string) {
	ctrl := r.ctrls[id]
	state := "disabled"
	if ctrl.Enabled() {
		state = "press Enter"
	}
	fmt.Fprintf(r.out, "[%s] (%s) > ", ctrl.Label(), state)
}

func revealMark(m *response.MultiChoice, option int) string {
	if m.Chosen() != option {
		return ""
	}
	if !m.Revealed() {
		return "  <"
	}
	return "  <" + mark(m.State())
}

func mark(s question.ResponseState) string {
	if s == question.ResponseAnsweredCorrectly {
		return " ✓"
	}
	return " ✗"
}
