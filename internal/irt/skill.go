package irt

// Skill represents a language skill area tested by the placement engine.
type Skill string

const (
	SkillGrammar    Skill = "grammar"
	SkillVocabulary Skill = "vocabulary"
	SkillReading    Skill = "reading"
	SkillListening  Skill = "listening"
	SkillWriting    Skill = "writing"
)

// AllSkills returns all skills in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillGrammar,
		SkillVocabulary,
		SkillReading,
		SkillListening,
		SkillWriting,
	}
}

// Valid reports whether s is one of the five known skills.
func (s Skill) Valid() bool {
	switch s {
	case SkillGrammar, SkillVocabulary, SkillReading, SkillListening, SkillWriting:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillGrammar:
		return "Grammar"
	case SkillVocabulary:
		return "Vocabulary"
	case SkillReading:
		return "Reading"
	case SkillListening:
		return "Listening"
	case SkillWriting:
		return "Writing"
	default:
		return string(s)
	}
}
