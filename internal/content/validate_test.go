package content

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validModule() Module {
	return Module{
		ID:         uuid.New(),
		Title:      "Test",
		Language:   "Spanish",
		Difficulty: DifficultyBeginner,
		Lessons: []Lesson{
			{ID: uuid.New(), Title: "L", Type: LessonGrammar, Exercises: []Exercise{
				{ID: uuid.New(), Instruction: "do", Type: ExerciseTranslation, CorrectAnswer: "x"},
			}},
		},
		Quizzes: []Quiz{
			{ID: uuid.New(), Title: "Q", PassingScore: 70, Questions: []Question{
				{ID: uuid.New(), Text: "?", Options: []string{"a", "b"}, CorrectAnswer: 1},
			}},
		},
	}
}

func TestValidateAcceptsValidModule(t *testing.T) {
	if err := Validate([]Module{validModule()}); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Module)
		wantSub string
	}{
		{
			name:    "answer index out of range",
			mutate:  func(m *Module) { m.Quizzes[0].Questions[0].CorrectAnswer = 2 },
			wantSub: "out of range",
		},
		{
			name:    "negative answer index",
			mutate:  func(m *Module) { m.Quizzes[0].Questions[0].CorrectAnswer = -1 },
			wantSub: "out of range",
		},
		{
			name:    "no options",
			mutate:  func(m *Module) { m.Quizzes[0].Questions[0].Options = nil },
			wantSub: "no options",
		},
		{
			name:    "passing score above 100",
			mutate:  func(m *Module) { m.Quizzes[0].PassingScore = 150 },
			wantSub: "passing score",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(m *Module) { m.Difficulty = "Expert" },
			wantSub: "difficulty",
		},
		{
			name:    "exercise missing answer",
			mutate:  func(m *Module) { m.Lessons[0].Exercises[0].CorrectAnswer = "" },
			wantSub: "no correct answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModule()
			tt.mutate(&m)
			err := Validate([]Module{m})
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestExerciseOptions(t *testing.T) {
	e := Exercise{Type: ExerciseMultipleChoice, Content: "Gracias|Por favor|Adiós"}
	opts := e.Options()
	if len(opts) != 3 || opts[0] != "Gracias" {
		t.Errorf("Options() = %v", opts)
	}

	e.Type = ExerciseTranslation
	if e.Options() != nil {
		t.Error("non multiple-choice exercises have no options")
	}
}
