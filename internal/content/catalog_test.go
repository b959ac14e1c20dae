package content

import (
	"testing"

	"github.com/google/uuid"
)

func twoLessonModule() Module {
	return Module{
		ID:         uuid.New(),
		Title:      "Spanish Basics",
		Language:   "Spanish",
		Difficulty: DifficultyBeginner,
		Lessons: []Lesson{
			{ID: uuid.New(), Title: "Greetings", Type: LessonVocabulary},
			{ID: uuid.New(), Title: "Numbers", Type: LessonVocabulary},
		},
		Quizzes: []Quiz{
			{ID: uuid.New(), Title: "Basics Quiz", PassingScore: 70, Questions: []Question{
				{ID: uuid.New(), Text: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			}},
		},
	}
}

func TestGetModule(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	got, ok := c.GetModule(m.ID)
	if !ok {
		t.Fatal("expected module to be found")
	}
	if got.Title != m.Title {
		t.Errorf("Title = %q, want %q", got.Title, m.Title)
	}

	if _, ok := c.GetModule(uuid.New()); ok {
		t.Error("expected lookup of unknown id to report ok=false")
	}
}

func TestCompleteLessonProgress(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	c.CompleteLesson(m.Lessons[0].ID, m.ID)

	got, _ := c.GetModule(m.ID)
	if got.Progress != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got.Progress)
	}
	if got.IsCompleted {
		t.Error("module should not be completed at progress 0.5")
	}
	if got.BadgeEarned != nil {
		t.Error("no badge should be earned before full completion")
	}
	if !got.Lessons[0].IsCompleted || got.Lessons[1].IsCompleted {
		t.Error("only the first lesson should be completed")
	}

	c.CompleteLesson(m.Lessons[1].ID, m.ID)

	got, _ = c.GetModule(m.ID)
	if got.Progress != 1.0 {
		t.Errorf("Progress = %v, want 1.0", got.Progress)
	}
	if !got.IsCompleted {
		t.Error("module should be completed at progress 1.0")
	}
	if got.BadgeEarned == nil {
		t.Fatal("completion badge should be synthesized")
	}
	if got.BadgeEarned.Name != "Spanish Beginner" {
		t.Errorf("badge name = %q, want %q", got.BadgeEarned.Name, "Spanish Beginner")
	}
	if got.BadgeEarned.Description != "Completed Spanish Basics" {
		t.Errorf("badge description = %q", got.BadgeEarned.Description)
	}
}

func TestCompleteLessonBadgeMintedOnceOnTransition(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	c.CompleteLesson(m.Lessons[0].ID, m.ID)
	c.CompleteLesson(m.Lessons[1].ID, m.ID)
	got, _ := c.GetModule(m.ID)
	first := got.BadgeEarned

	// Re-completing an already-complete lesson stays at full completion
	// without minting a replacement badge.
	c.CompleteLesson(m.Lessons[1].ID, m.ID)
	got, _ = c.GetModule(m.ID)
	if got.BadgeEarned == nil || got.BadgeEarned.ID != first.ID {
		t.Error("badge should not be re-minted after the completion transition")
	}
}

func TestCompleteLessonUnknownIDsNoOp(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	c.CompleteLesson(uuid.New(), m.ID)         // unknown lesson
	c.CompleteLesson(m.Lessons[0].ID, uuid.New()) // unknown module

	got, _ := c.GetModule(m.ID)
	if got.Progress != 0 {
		t.Errorf("Progress = %v, want 0 after no-op calls", got.Progress)
	}
}

func TestCompleteQuizFlagFollowsOwnThreshold(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})
	quizID := m.Quizzes[0].ID

	// Passing score regardless of lesson state.
	c.CompleteQuiz(quizID, m.ID, 80)
	got, _ := c.GetModule(m.ID)
	q := got.Quizzes[0]
	if !q.IsCompleted {
		t.Error("quiz should be completed when score >= passing score")
	}
	if q.UserScore == nil || *q.UserScore != 80 {
		t.Error("user score should record the attempt score")
	}
	if !q.Passed() {
		t.Error("Passed() should be true at 80 >= 70")
	}
	if got.IsCompleted {
		t.Error("quiz completion must not complete the module")
	}

	// A failing re-attempt clears the flag.
	c.CompleteQuiz(quizID, m.ID, 60)
	got, _ = c.GetModule(m.ID)
	q = got.Quizzes[0]
	if q.IsCompleted {
		t.Error("quiz should not be completed when score < passing score")
	}
	if q.UserScore == nil || *q.UserScore != 60 {
		t.Error("user score should track the latest attempt")
	}
}

func TestCompleteQuizUnknownIDsNoOp(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	c.CompleteQuiz(uuid.New(), m.ID, 100)
	got, _ := c.GetModule(m.ID)
	if got.Quizzes[0].UserScore != nil {
		t.Error("unknown quiz id should be a no-op")
	}
}

func TestCopyOnWriteLeavesCallerValueUntouched(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	before, _ := c.GetModule(m.ID)
	c.CompleteLesson(m.Lessons[0].ID, m.ID)

	if before.Lessons[0].IsCompleted {
		t.Error("previously returned module value must not observe the mutation")
	}
}

func TestQuizzesUnlocked(t *testing.T) {
	m := twoLessonModule()
	c := NewCatalog([]Module{m})

	got, _ := c.GetModule(m.ID)
	if got.QuizzesUnlocked() {
		t.Error("quizzes should be locked while lessons remain")
	}

	c.CompleteLesson(m.Lessons[0].ID, m.ID)
	c.CompleteLesson(m.Lessons[1].ID, m.ID)
	got, _ = c.GetModule(m.ID)
	if !got.QuizzesUnlocked() {
		t.Error("quizzes should unlock once all lessons are complete")
	}
}

func TestSeedCatalogIsValid(t *testing.T) {
	c := SeedCatalog()
	if len(c.Modules()) != 4 {
		t.Fatalf("seed has %d modules, want 4", len(c.Modules()))
	}
	if err := Validate(c.Modules()); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}
