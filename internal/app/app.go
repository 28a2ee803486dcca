// Package app is the Bubble Tea front end for taking a placement test
// interactively. It is the sole writer to its test's state and persists
// the aggregate after every engine call.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/placement"
	"github.com/abhisek/linguiz/internal/store"
	"github.com/abhisek/linguiz/internal/ui/components"
	"github.com/abhisek/linguiz/internal/ui/layout"
)

// Phase is the screen the app is currently showing.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseQuestion
	PhaseFeedback
	PhaseSummary
)

// Options wires the app's collaborators.
type Options struct {
	Controller *placement.Controller
	// Repo persists the test after every step. Nil disables persistence.
	Repo   store.TestRepo
	UserID string
}

// levelOptions are the self-assessment choices on the welcome screen,
// index-aligned with welcomePriors.
var levelOptions = []string{
	"I'm not sure — just place me",
	cefr.A1.DisplayName(),
	cefr.A2.DisplayName(),
	cefr.B1.DisplayName(),
	cefr.B2.DisplayName(),
	cefr.C1.DisplayName(),
	cefr.C2.DisplayName(),
}

var welcomePriors = []cefr.Level{"", cefr.A1, cefr.A2, cefr.B1, cefr.B2, cefr.C1, cefr.C2}

// Model is the root Bubble Tea model for the test-taking flow.
type Model struct {
	opts  Options
	phase Phase

	width  int
	height int

	levelChoice components.MultiChoice

	test     *placement.PlacementTest
	question *placement.QuestionView
	next     *placement.QuestionView

	multi companionMulti
	input components.AnswerInput

	questionStart time.Time
	lastCorrect   bool
	saveErr       error
	startErr      error
}

// companionMulti tracks whether the current question uses the multichoice
// component at all.
type companionMulti struct {
	active bool
	c      components.MultiChoice
}

// NewModel creates the app model at the welcome screen.
func NewModel(opts Options) Model {
	return Model{
		opts:        opts,
		phase:       PhaseWelcome,
		levelChoice: components.NewMultiChoice("How would you rate your current level?", levelOptions),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.abandonIfActive()
			return m, tea.Quit
		}
	}

	switch m.phase {
	case PhaseWelcome:
		return m.updateWelcome(msg)
	case PhaseQuestion:
		return m.updateQuestion(msg)
	case PhaseFeedback:
		return m.updateFeedback(msg)
	case PhaseSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.levelChoice, cmd = m.levelChoice.Update(msg)
	if !m.levelChoice.Submitted {
		return m, cmd
	}

	prior := welcomePriors[m.levelChoice.Selected]
	test, question, err := m.opts.Controller.StartTest(m.opts.UserID, prior)
	if err != nil {
		m.startErr = err
		return m, tea.Quit
	}

	m.test = test
	m.startQuestion(question)
	return m, m.inputInitCmd()
}

func (m *Model) startQuestion(q *placement.QuestionView) {
	m.question = q
	m.phase = PhaseQuestion
	m.questionStart = time.Now()
	if q.Format == irt.FormatMultipleChoice {
		m.multi = companionMulti{active: true, c: components.NewMultiChoice(q.Prompt, q.Choices)}
	} else {
		m.multi = companionMulti{}
		m.input = components.NewAnswerInput(q.Prompt)
	}
}

func (m Model) inputInitCmd() tea.Cmd {
	if !m.multi.active {
		return m.input.Init()
	}
	return nil
}

func (m Model) updateQuestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.multi.active {
		var cmd tea.Cmd
		m.multi.c, cmd = m.multi.c.Update(msg)
		if !m.multi.c.Submitted {
			return m, cmd
		}
		return m.submit(m.multi.c.Value())
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return m.submit(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(response string) (tea.Model, tea.Cmd) {
	timeSpent := int(time.Since(m.questionStart).Milliseconds())
	step, err := m.opts.Controller.SubmitAnswer(m.test, m.question.ID, response, timeSpent)
	if err != nil {
		// Validation failures leave the test unchanged; let the learner
		// retry the same question.
		m.startQuestion(m.question)
		return m, m.inputInitCmd()
	}

	m.lastCorrect = step.Correct
	m.saveTest()

	if step.Completed {
		m.phase = PhaseSummary
		return m, nil
	}

	m.next = step.NextQuestion
	m.phase = PhaseFeedback
	return m, nil
}

func (m Model) updateFeedback(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		m.startQuestion(m.next)
		m.next = nil
		return m, m.inputInitCmd()
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// abandonIfActive marks an in-progress test abandoned and persists it, so
// a quit mid-test leaves an honest record.
func (m *Model) abandonIfActive() {
	if m.test == nil || m.test.Status.Terminal() {
		return
	}
	if err := m.opts.Controller.Abandon(m.test); err == nil {
		m.saveTest()
	}
}

func (m *Model) saveTest() {
	if m.opts.Repo == nil || m.test == nil {
		return
	}
	m.saveErr = m.opts.Repo.Save(context.Background(), m.test)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.progress(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	content := m.content()

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	switch m.phase {
	case PhaseWelcome:
		return "Placement Test"
	case PhaseQuestion, PhaseFeedback:
		if m.question != nil {
			return m.question.Skill.DisplayName()
		}
		return "Placement Test"
	case PhaseSummary:
		return "Your Result"
	}
	return ""
}

func (m Model) progress() string {
	if m.test == nil || m.phase == PhaseWelcome || m.phase == PhaseSummary {
		return ""
	}
	return fmt.Sprintf("Question %d/%d", m.question.Number, m.question.Total)
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case PhaseQuestion:
		if m.multi.active {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Answer"},
				{Key: "Ctrl+C", Description: "Abandon"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+C", Description: "Abandon"},
		}
	case PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Ctrl+C", Description: "Abandon"},
		}
	case PhaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	if fm, ok := final.(Model); ok && fm.startErr != nil {
		return fm.startErr
	}
	return nil
}
