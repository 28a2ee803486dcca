// Package result turns a finished placement test's response history into
// the learner-facing outcome: overall CEFR level, per-skill breakdown,
// strengths and weaknesses, and study recommendations.
package result

import (
	"github.com/abhisek/linguiz/internal/ability"
	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
)

// strengthMargin is how far (on the 0-1 normalized score scale) a skill
// must sit above or below the overall score to count as a strength or
// weakness.
const strengthMargin = 0.1

// SkillScore is the per-skill placement for one tested skill.
type SkillScore struct {
	Skill      irt.Skill  `json:"skill"`
	Level      cefr.Level `json:"level"`
	Theta      float64    `json:"theta"`
	Score      float64    `json:"score"` // normalized to [0, 1] over the theta range
	Confidence float64    `json:"confidence"`
	Attempted  int        `json:"attempted"`
	Correct    int        `json:"correct"`
}

// Recommendation is one deterministic study suggestion derived from a weak
// skill.
type Recommendation struct {
	Skill irt.Skill `json:"skill"`
	Focus string    `json:"focus"`
	Text  string    `json:"text"`
}

// TestResult is the final outcome of a completed placement test.
type TestResult struct {
	Level      cefr.Level `json:"level"`
	Theta      float64    `json:"theta"`
	SE         float64    `json:"se"`
	Score      float64    `json:"score"`
	Confidence float64    `json:"confidence"`

	// Skills contains an entry for every skill that appeared in the
	// response set, in display order. Untested skills get no entry.
	Skills []SkillScore `json:"skills"`

	Strengths       []irt.Skill      `json:"strengths,omitempty"`
	Weaknesses      []irt.Skill      `json:"weaknesses,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// Generate builds the result from the full response history and the final
// overall estimate. Per-skill levels re-run the estimator on that skill's
// subset of responses, seeded at the overall theta.
func Generate(responses []ability.Response, overall ability.Estimate, estimator *ability.Estimator) *TestResult {
	cfg := estimator.Config()
	res := &TestResult{
		Level:      cefr.LevelForTheta(overall.Theta),
		Theta:      overall.Theta,
		SE:         overall.SE,
		Score:      normalizedScore(overall.Theta, cfg),
		Confidence: cefr.Confidence(overall.SE),
	}

	bySkill := make(map[irt.Skill][]ability.Response)
	for _, r := range responses {
		bySkill[r.Item.Skill] = append(bySkill[r.Item.Skill], r)
	}

	for _, skill := range irt.AllSkills() {
		subset, tested := bySkill[skill]
		if !tested {
			continue
		}

		est := estimator.Estimate(subset, overall.Theta)
		score := SkillScore{
			Skill:      skill,
			Level:      cefr.LevelForTheta(est.Theta),
			Theta:      est.Theta,
			Score:      normalizedScore(est.Theta, cfg),
			Confidence: cefr.Confidence(est.SE),
			Attempted:  len(subset),
		}
		for _, r := range subset {
			if r.Correct {
				score.Correct++
			}
		}
		res.Skills = append(res.Skills, score)

		switch {
		case score.Score >= res.Score+strengthMargin:
			res.Strengths = append(res.Strengths, skill)
		case score.Score < res.Score-strengthMargin:
			res.Weaknesses = append(res.Weaknesses, skill)
		}
	}

	for _, weak := range res.Weaknesses {
		res.Recommendations = append(res.Recommendations, recommendationFor(weak))
	}

	return res
}

// normalizedScore maps theta onto [0, 1] across the estimator's clamp
// range.
func normalizedScore(theta float64, cfg ability.Config) float64 {
	span := cfg.ThetaMax - cfg.ThetaMin
	if span <= 0 {
		return 0
	}
	s := (theta - cfg.ThetaMin) / span
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// recommendationFor is the weak-skill → recommendation rule table.
func recommendationFor(skill irt.Skill) Recommendation {
	switch skill {
	case irt.SkillGrammar:
		return Recommendation{
			Skill: skill,
			Focus: "structured-practice",
			Text:  "Work through targeted grammar drills one structure at a time, starting at your placed level.",
		}
	case irt.SkillVocabulary:
		return Recommendation{
			Skill: skill,
			Focus: "spaced-repetition",
			Text:  "Build a daily flashcard habit focused on high-frequency words for your level.",
		}
	case irt.SkillReading:
		return Recommendation{
			Skill: skill,
			Focus: "graded-reading",
			Text:  "Read graded texts slightly below your overall level to build speed, then step up.",
		}
	case irt.SkillListening:
		return Recommendation{
			Skill: skill,
			Focus: "extensive-listening",
			Text:  "Listen to slow-paced podcasts or audio with transcripts, replaying difficult segments.",
		}
	case irt.SkillWriting:
		return Recommendation{
			Skill: skill,
			Focus: "guided-writing",
			Text:  "Write short daily texts and compare them against model answers for your level.",
		}
	default:
		return Recommendation{
			Skill: skill,
			Focus: "general-practice",
			Text:  "Spend extra practice time on this skill.",
		}
	}
}
