package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguiz/internal/ui/components"
	"github.com/abhisek/linguiz/internal/ui/theme"
)

func (m Model) content() string {
	switch m.phase {
	case PhaseWelcome:
		return m.viewWelcome()
	case PhaseQuestion:
		return m.viewQuestion()
	case PhaseFeedback:
		return m.viewFeedback()
	case PhaseSummary:
		return m.viewSummary()
	}
	return ""
}

func (m Model) viewWelcome() string {
	title := theme.Title.Render("Find your CEFR level")
	sub := theme.Subtitle.Render("A short adaptive test — most people finish in under 10 minutes.")
	body := m.levelChoice.View()
	hint := theme.Hint.Render("Your answer only sets the starting difficulty; the test adapts either way.")

	card := theme.Card.Render(body + "\n" + hint)
	return m.centered(title + "\n" + sub + "\n\n" + card)
}

func (m Model) viewQuestion() string {
	var body string
	if m.multi.active {
		body = m.multi.c.View()
	} else {
		body = m.input.View()
	}
	return m.centered(theme.Card.Render(body))
}

func (m Model) viewFeedback() string {
	var verdict string
	if m.lastCorrect {
		verdict = theme.Correct.Render("✓ Correct")
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite")
	}

	estimate := fmt.Sprintf("Current estimate: %s   confidence %d%%",
		theme.LevelBadge.Render(string(m.test.EstimatedLevel)),
		int(m.test.Confidence*100))

	body := verdict + "\n\n" + theme.Body.Render(estimate)
	return m.centered(theme.Card.Render(body))
}

func (m Model) viewSummary() string {
	res := m.test.Result
	if res == nil {
		return m.centered(theme.Body.Render("No result available."))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Your level: ") +
		theme.LevelBadge.Render(res.Level.DisplayName()) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"confidence %d%% · %d questions answered", int(res.Confidence*100), len(m.test.Answers))) + "\n\n")

	barWidth := m.width / 2
	if barWidth > 48 {
		barWidth = 48
	}
	for _, sk := range res.Skills {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-11s %s", sk.Skill.DisplayName(), string(sk.Level)),
			Percent:     sk.Score,
			ShowPercent: true,
			Width:       barWidth,
		}
		b.WriteString(bar.View() + "\n")
	}

	if len(res.Strengths) > 0 {
		names := make([]string, 0, len(res.Strengths))
		for _, s := range res.Strengths {
			names = append(names, s.DisplayName())
		}
		b.WriteString("\n" + theme.Correct.Render("Strengths: ") +
			theme.Body.Render(strings.Join(names, ", ")) + "\n")
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n" + theme.Body.Render("Next steps:") + "\n")
		for _, rec := range res.Recommendations {
			b.WriteString(theme.Hint.Render("  • "+rec.Text) + "\n")
		}
	}

	if m.saveErr != nil {
		b.WriteString("\n" + theme.Incorrect.Render("Warning: result could not be saved: "+m.saveErr.Error()) + "\n")
	}

	return m.centered(theme.Card.Render(b.String()))
}

// centered positions content in the middle of the content area.
func (m Model) centered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		PaddingTop(2).
		Render(content)
}
