package itembank

import (
	"strconv"
	"strings"

	"github.com/abhisek/linguiz/internal/irt"
)

// CheckAnswer compares the learner's raw response against the item's
// canonical answer. Returns true if the response is correct.
//
// Normalization rules:
// - Whitespace is trimmed, comparison is case-insensitive
// - Inner whitespace runs collapse to a single space
// - For multiple choice: matches the choice text, its letter (A-D),
//   or its 1-based index
func CheckAnswer(response string, item *irt.Item) bool {
	response = strings.TrimSpace(response)
	if response == "" {
		return false
	}

	if item.Content.Format == irt.FormatMultipleChoice {
		return checkMultipleChoice(response, item)
	}

	return normalize(response) == normalize(item.Content.Answer)
}

// checkMultipleChoice resolves letter and index responses to a choice
// before comparing with the canonical answer.
func checkMultipleChoice(response string, item *irt.Item) bool {
	choices := item.Content.Choices

	// Single letter: A-D → choice index.
	if len(response) == 1 {
		upper := response[0] &^ 0x20 // fold to upper case
		if upper >= 'A' && upper < 'A'+byte(len(choices)) {
			return normalize(choices[upper-'A']) == normalize(item.Content.Answer)
		}
	}

	// 1-based numeric index.
	if idx, err := strconv.Atoi(response); err == nil && idx >= 1 && idx <= len(choices) {
		return normalize(choices[idx-1]) == normalize(item.Content.Answer)
	}

	// Choice text.
	return normalize(response) == normalize(item.Content.Answer)
}

// normalize prepares a string for comparison: trimmed, lower-cased, inner
// whitespace collapsed.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
