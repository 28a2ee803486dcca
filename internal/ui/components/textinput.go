package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguiz/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for short-answer items.
type AnswerInput struct {
	Prompt string
	Model  textinput.Model
}

// NewAnswerInput creates a focused text input under the given prompt.
func NewAnswerInput(prompt string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 80
	ti.Focus()

	return AnswerInput{
		Prompt: prompt,
		Model:  ti,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages to the underlying input.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// View renders the prompt and input field.
func (a AnswerInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Prompt)
	return prompt + "\n\n" + a.Model.View()
}
