package content

// catalogSchema is the JSON schema for external catalog files. Structural
// checks live here; semantic invariants (answer index in range, threshold
// bounds) are enforced separately by Validate.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"modules": map[string]any{
			"type":  "array",
			"items": moduleSchema,
		},
	},
	"required":             []any{"modules"},
	"additionalProperties": false,
}

var moduleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"language":    map[string]any{"type": "string", "minLength": 1},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"Beginner", "Intermediate", "Advanced"},
		},
		"estimatedTime": map[string]any{"type": "integer", "minimum": 0},
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
		"quizzes": map[string]any{
			"type":  "array",
			"items": quizSchema,
		},
	},
	"required": []any{"title", "language", "difficulty", "lessons", "quizzes"},
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":   map[string]any{"type": "string", "minLength": 1},
		"content": map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"Vocabulary", "Grammar", "Conversation", "Listening", "Reading", "Writing"},
		},
		"vocabulary": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word":          map[string]any{"type": "string", "minLength": 1},
					"translation":   map[string]any{"type": "string"},
					"pronunciation": map[string]any{"type": "string"},
					"example":       map[string]any{"type": "string"},
				},
				"required": []any{"word", "translation"},
			},
		},
		"exercises": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"instruction": map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"Fill in the Blank", "Multiple Choice", "Translation", "Matching", "Speaking", "Listening"},
					},
					"content":       map[string]any{"type": "string"},
					"correctAnswer": map[string]any{"type": "string"},
				},
				"required": []any{"instruction", "type", "correctAnswer"},
			},
		},
	},
	"required": []any{"title", "type"},
}

var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string", "minLength": 1},
		"passingScore": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 100,
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 1,
					},
					"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
					"explanation":   map[string]any{"type": "string"},
				},
				"required": []any{"text", "options", "correctAnswer"},
			},
		},
	},
	"required": []any{"title", "passingScore", "questions"},
}
