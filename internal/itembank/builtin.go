package itembank

import (
	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
)

// BuiltinBank returns the bank linguiz ships with: a small English item
// pool covering all five skills across the CEFR range. Calibration values
// were assigned by hand from the target levels (difficulty near the band
// midpoint, guessing 0.25 for four-choice items), which is good enough for
// self-placement but no substitute for a field-calibrated bank.
func BuiltinBank() *InMemoryBank {
	bank, err := NewInMemoryBank(builtinItems())
	if err != nil {
		// The builtin pool is fixed at compile time; a bad entry is a
		// programming error.
		panic(err)
	}
	return bank
}

func mc(id string, skill irt.Skill, a, b float64, level cefr.Level, prompt string, choices []string, answer string) *irt.Item {
	return &irt.Item{
		ID:             id,
		Skill:          skill,
		Discrimination: a,
		Difficulty:     b,
		Guessing:       0.25,
		TargetLevel:    level,
		Content: irt.Content{
			Prompt:  prompt,
			Format:  irt.FormatMultipleChoice,
			Choices: choices,
			Answer:  answer,
		},
	}
}

func short(id string, skill irt.Skill, a, b float64, level cefr.Level, prompt, answer string) *irt.Item {
	return &irt.Item{
		ID:             id,
		Skill:          skill,
		Discrimination: a,
		Difficulty:     b,
		Guessing:       0,
		TargetLevel:    level,
		Content: irt.Content{
			Prompt: prompt,
			Format: irt.FormatShortAnswer,
			Answer: answer,
		},
	}
}

func builtinItems() []*irt.Item {
	return []*irt.Item{
		// Grammar
		mc("gram-a1-01", irt.SkillGrammar, 1.2, -2.2, cefr.A1,
			"She ___ a teacher.",
			[]string{"is", "are", "am", "be"}, "is"),
		mc("gram-a1-02", irt.SkillGrammar, 1.0, -1.8, cefr.A1,
			"___ you like coffee?",
			[]string{"Do", "Does", "Is", "Are"}, "Do"),
		mc("gram-a2-01", irt.SkillGrammar, 1.1, -1.0, cefr.A2,
			"I ___ to the cinema yesterday.",
			[]string{"went", "go", "have gone", "was going"}, "went"),
		mc("gram-b1-01", irt.SkillGrammar, 1.3, -0.1, cefr.B1,
			"If it rains tomorrow, we ___ at home.",
			[]string{"will stay", "stayed", "would stay", "stay"}, "will stay"),
		mc("gram-b1-02", irt.SkillGrammar, 1.0, 0.2, cefr.B1,
			"I've lived here ___ 2019.",
			[]string{"since", "for", "from", "during"}, "since"),
		mc("gram-b2-01", irt.SkillGrammar, 1.4, 0.9, cefr.B2,
			"By the time we arrived, the film ___.",
			[]string{"had already started", "has already started", "already started", "was already starting"},
			"had already started"),
		mc("gram-c1-01", irt.SkillGrammar, 1.5, 1.6, cefr.C1,
			"___ the weather been better, we would have gone sailing.",
			[]string{"Had", "If", "Should", "Were"}, "Had"),
		mc("gram-c2-01", irt.SkillGrammar, 1.3, 2.4, cefr.C2,
			"Not until the final report was published ___ the full extent of the losses.",
			[]string{"did anyone grasp", "anyone grasped", "someone did grasp", "grasped anyone"},
			"did anyone grasp"),

		// Vocabulary
		mc("vocab-a1-01", irt.SkillVocabulary, 1.0, -2.4, cefr.A1,
			"The opposite of 'big' is ___.",
			[]string{"small", "tall", "long", "old"}, "small"),
		mc("vocab-a2-01", irt.SkillVocabulary, 1.1, -1.2, cefr.A2,
			"A person who teaches students is a ___.",
			[]string{"teacher", "doctor", "driver", "farmer"}, "teacher"),
		mc("vocab-b1-01", irt.SkillVocabulary, 1.2, -0.3, cefr.B1,
			"She was ___ about the exam results — she couldn't sit still.",
			[]string{"anxious", "boring", "generous", "reliable"}, "anxious"),
		mc("vocab-b2-01", irt.SkillVocabulary, 1.3, 0.8, cefr.B2,
			"The committee decided to ___ the meeting until next week.",
			[]string{"postpone", "prevent", "propose", "pretend"}, "postpone"),
		mc("vocab-c1-01", irt.SkillVocabulary, 1.4, 1.5, cefr.C1,
			"His explanation was deliberately ___, leaving room for several interpretations.",
			[]string{"ambiguous", "adjacent", "abundant", "arbitrary"}, "ambiguous"),
		mc("vocab-c2-01", irt.SkillVocabulary, 1.2, 2.3, cefr.C2,
			"The critic dismissed the novel as ___, trading on sentimentality rather than substance.",
			[]string{"mawkish", "meticulous", "munificent", "mellifluous"}, "mawkish"),

		// Reading
		mc("read-a1-01", irt.SkillReading, 1.0, -2.0, cefr.A1,
			"\"The shop opens at 9 and closes at 5.\" When does the shop close?",
			[]string{"At 5", "At 9", "At noon", "It never closes"}, "At 5"),
		mc("read-a2-01", irt.SkillReading, 1.1, -1.1, cefr.A2,
			"\"Tom can't come to the party because he is ill.\" Why can't Tom come?",
			[]string{"He is sick", "He is busy", "He is away", "He is tired"}, "He is sick"),
		mc("read-b1-01", irt.SkillReading, 1.2, 0.0, cefr.B1,
			"\"Although the hotel was cheap, the service exceeded our expectations.\" The writer found the service ___.",
			[]string{"surprisingly good", "disappointing", "expensive", "average"}, "surprisingly good"),
		mc("read-b2-01", irt.SkillReading, 1.3, 1.0, cefr.B2,
			"\"The findings, while preliminary, cast doubt on the prevailing theory.\" The findings ___.",
			[]string{"challenge the accepted view", "confirm the accepted view", "are conclusive", "support new funding"},
			"challenge the accepted view"),
		mc("read-c1-01", irt.SkillReading, 1.4, 1.8, cefr.C1,
			"\"Far from being a concession, the offer was a calculated gambit.\" The offer was ___.",
			[]string{"a strategic move", "a genuine compromise", "an accident", "a withdrawal"},
			"a strategic move"),

		// Listening (transcript-based in the terminal edition)
		mc("listen-a1-01", irt.SkillListening, 1.0, -2.1, cefr.A1,
			"You hear: \"My name is Anna. I am from Spain.\" Where is Anna from?",
			[]string{"Spain", "Italy", "France", "Portugal"}, "Spain"),
		mc("listen-a2-01", irt.SkillListening, 1.0, -0.9, cefr.A2,
			"You hear: \"The train to York leaves from platform 4, not platform 2.\" Which platform is correct?",
			[]string{"Platform 4", "Platform 2", "Platform 6", "It is cancelled"}, "Platform 4"),
		mc("listen-b1-01", irt.SkillListening, 1.2, 0.1, cefr.B1,
			"You hear: \"I was going to cycle in, but given the forecast I took the bus.\" How did the speaker travel?",
			[]string{"By bus", "By bicycle", "By car", "On foot"}, "By bus"),
		mc("listen-b2-01", irt.SkillListening, 1.3, 0.9, cefr.B2,
			"You hear: \"It's not that I mind covering her shift, it's the short notice that bothers me.\" What annoys the speaker?",
			[]string{"Being told late", "Working extra hours", "Her colleague's illness", "The shift itself"},
			"Being told late"),
		mc("listen-c1-01", irt.SkillListening, 1.4, 1.7, cefr.C1,
			"You hear: \"Were it up to me, the proposal would have been shelved months ago.\" The speaker ___ the proposal.",
			[]string{"opposes", "supports", "wrote", "has not read"}, "opposes"),

		// Writing (short answer, no guessing floor)
		short("write-a1-01", irt.SkillWriting, 0.9, -2.3, cefr.A1,
			"Complete the sentence with one word: \"I ___ hungry.\" (to be)", "am"),
		short("write-a2-01", irt.SkillWriting, 1.0, -1.0, cefr.A2,
			"Write the past form of the verb: \"go\"", "went"),
		short("write-b1-01", irt.SkillWriting, 1.1, 0.0, cefr.B1,
			"Complete with one word: \"She has been working here ___ five years.\"", "for"),
		short("write-b2-01", irt.SkillWriting, 1.2, 1.0, cefr.B2,
			"Rewrite using one word: \"in spite of the fact that\" → \"___\"", "although"),
		short("write-c1-01", irt.SkillWriting, 1.3, 1.8, cefr.C1,
			"Complete the fixed phrase: \"The new policy is a double-edged ___.\"", "sword"),
	}
}
