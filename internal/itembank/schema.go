package itembank

// bankSchemaDefinition is the JSON schema a bank file must satisfy before
// items are decoded. Calibration range checks (a > 0, 0 <= c < 1) are
// enforced here as well as in NewInMemoryBank, so a bad file fails with a
// schema path rather than a mid-load error.
var bankSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Display name for the bank",
		},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"skill": map[string]any{
						"type": "string",
						"enum": []any{"grammar", "vocabulary", "reading", "listening", "writing"},
					},
					"discrimination": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
					},
					"difficulty": map[string]any{"type": "number"},
					"guessing": map[string]any{
						"type":             "number",
						"minimum":          0,
						"exclusiveMaximum": 1,
					},
					"target_level": map[string]any{
						"type": "string",
						"enum": []any{"A1", "A2", "B1", "B2", "C1", "C2"},
					},
					"content": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string", "minLength": 1},
							"format": map[string]any{
								"type": "string",
								"enum": []any{"multiple_choice", "short_answer"},
							},
							"choices": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"maxItems": 4,
							},
							"answer": map[string]any{"type": "string", "minLength": 1},
						},
						"required":             []any{"prompt", "format", "answer"},
						"additionalProperties": false,
					},
				},
				"required": []any{
					"id", "skill", "discrimination", "difficulty",
					"guessing", "target_level", "content",
				},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
