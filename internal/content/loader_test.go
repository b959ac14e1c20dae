package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

const sampleCatalogJSON = `{
  "modules": [
    {
      "title": "Portuguese Basics",
      "description": "Starter phrases.",
      "language": "Portuguese",
      "difficulty": "Beginner",
      "estimatedTime": 30,
      "lessons": [
        {
          "title": "Greetings",
          "content": "Say hello.",
          "type": "Vocabulary",
          "vocabulary": [
            {"word": "Olá", "translation": "Hello", "pronunciation": "oh-LAH", "example": "Olá, tudo bem?"}
          ],
          "exercises": [
            {"instruction": "Translate 'Hello'", "type": "Translation", "content": "Hello", "correctAnswer": "Olá"}
          ]
        }
      ],
      "quizzes": [
        {
          "title": "Basics Quiz",
          "passingScore": 70,
          "questions": [
            {"text": "How do you say 'Hello'?", "options": ["Olá", "Adeus"], "correctAnswer": 0, "explanation": ""}
          ]
        }
      ]
    }
  ]
}`

func writeCatalogFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(writeCatalogFile(t, sampleCatalogJSON))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	mods := c.Modules()
	if len(mods) != 1 {
		t.Fatalf("got %d modules, want 1", len(mods))
	}
	m := mods[0]
	if m.ID == uuid.Nil {
		t.Error("module id should be assigned at load time")
	}
	if m.Language != "Portuguese" || m.Difficulty != DifficultyBeginner {
		t.Errorf("unexpected module: %+v", m)
	}
	if len(m.Lessons) != 1 || m.Lessons[0].ID == uuid.Nil {
		t.Error("lesson ids should be assigned")
	}
	if len(m.Quizzes) != 1 || m.Quizzes[0].Questions[0].ID == uuid.Nil {
		t.Error("question ids should be assigned")
	}
}

func TestLoadCatalogRejectsSchemaViolation(t *testing.T) {
	// difficulty outside the enum
	bad := `{"modules": [{"title": "X", "language": "Y", "difficulty": "Expert", "lessons": [], "quizzes": []}]}`
	if _, err := LoadCatalog(writeCatalogFile(t, bad)); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoadCatalogRejectsBadAnswerIndex(t *testing.T) {
	// passes the structural schema, fails semantic validation
	bad := `{
  "modules": [
    {
      "title": "X", "language": "Y", "difficulty": "Beginner",
      "lessons": [],
      "quizzes": [
        {"title": "Q", "passingScore": 50, "questions": [
          {"text": "?", "options": ["a"], "correctAnswer": 3}
        ]}
      ]
    }
  ]
}`
	if _, err := LoadCatalog(writeCatalogFile(t, bad)); err == nil {
		t.Fatal("expected semantic validation error")
	}
}

func TestLoadCatalogRejectsInvalidJSON(t *testing.T) {
	if _, err := LoadCatalog(writeCatalogFile(t, "{not json")); err == nil {
		t.Fatal("expected JSON parse error")
	}
}
