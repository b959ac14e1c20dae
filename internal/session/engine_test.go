package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/content"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
)

type mockStateRepo struct {
	records map[string][]byte
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{records: make(map[string][]byte)}
}

func (m *mockStateRepo) Save(_ context.Context, name string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.records[name] = b
	return nil
}

func (m *mockStateRepo) Load(_ context.Context, name string, out any) (bool, error) {
	b, ok := m.records[name]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockStateRepo) Delete(_ context.Context, name string) error {
	delete(m.records, name)
	return nil
}

type mockEventRepo struct {
	activity []store.ActivityEventData
	badges   []store.BadgeEventData
}

func (m *mockEventRepo) AppendActivityEvent(_ context.Context, data store.ActivityEventData) error {
	m.activity = append(m.activity, data)
	return nil
}
func (m *mockEventRepo) AppendBadgeEvent(_ context.Context, data store.BadgeEventData) error {
	m.badges = append(m.badges, data)
	return nil
}
func (m *mockEventRepo) QueryActivityEvents(_ context.Context, _ store.QueryOpts) ([]store.ActivityEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryBadgeEvents(_ context.Context, _ store.QueryOpts) ([]store.BadgeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ActivityByDay(_ context.Context, _ int) ([]store.DayCount, error) {
	return nil, nil
}

func testModule() content.Module {
	lesson := func(title string, exercises int) content.Lesson {
		l := content.Lesson{ID: uuid.New(), Title: title, Type: content.LessonVocabulary}
		for i := 0; i < exercises; i++ {
			l.Exercises = append(l.Exercises, content.Exercise{
				ID:            uuid.New(),
				Instruction:   "Translate",
				Type:          content.ExerciseTranslation,
				Content:       "hola",
				CorrectAnswer: "hello",
			})
		}
		return l
	}
	question := func(prompt string, options []string, correct int) content.Question {
		return content.Question{ID: uuid.New(), Text: prompt, Options: options, CorrectAnswer: correct}
	}
	return content.Module{
		ID:         uuid.New(),
		Title:      "Spanish Basics",
		Language:   "Spanish",
		Difficulty: content.DifficultyBeginner,
		Lessons:    []content.Lesson{lesson("Greetings", 2), lesson("Numbers", 1)},
		Quizzes: []content.Quiz{{
			ID:           uuid.New(),
			Title:        "Greetings Quiz",
			PassingScore: 70,
			Questions: []content.Question{
				question("hola", []string{"hello", "bye"}, 0),
				question("adios", []string{"hello", "goodbye"}, 1),
				question("gracias", []string{"thanks", "please"}, 0),
				question("si", []string{"no", "yes"}, 1),
			},
		}},
	}
}

func newTestEngine(t *testing.T) (*Engine, *content.Catalog, *progress.Service, *mockEventRepo) {
	t.Helper()
	catalog := content.NewCatalog([]content.Module{testModule()})
	events := &mockEventRepo{}
	ledger := progress.NewService(context.Background(), newMockStateRepo(), events)
	return NewEngine(catalog, ledger, events), catalog, ledger, events
}

func TestLoadModuleResetsState(t *testing.T) {
	eng, catalog, _, _ := newTestEngine(t)
	m := catalog.Modules()[0]

	eng.LoadModule(m)
	eng.StartQuiz(m.Quizzes[0])
	eng.SelectAnswer("hello", 0)

	eng.LoadModule(m)
	st := eng.State()
	if st.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", st.Phase)
	}
	if st.Quiz != nil || st.Lesson != nil || st.Answers != nil {
		t.Error("loading a module must clear prior session state")
	}
}

func TestLessonWalkthrough(t *testing.T) {
	eng, catalog, ledger, events := newTestEngine(t)
	ctx := context.Background()
	m := catalog.Modules()[0]

	eng.LoadModule(m)
	eng.StartLesson(m.Lessons[0])

	if ex := eng.State().CurrentExercise(); ex == nil {
		t.Fatal("first exercise should be current")
	}

	// Lesson has 2 exercises: one advance moves, the next completes.
	if err := eng.AdvanceExercise(ctx); err != nil {
		t.Fatal(err)
	}
	if got := eng.State().ExerciseIndex; got != 1 {
		t.Fatalf("exercise index = %d, want 1", got)
	}
	if err := eng.AdvanceExercise(ctx); err != nil {
		t.Fatal(err)
	}

	st := eng.State()
	if st.Phase != PhaseResults {
		t.Errorf("phase = %v, want results", st.Phase)
	}
	if st.Module.Progress != 0.5 {
		t.Errorf("module progress = %v, want 0.5", st.Module.Progress)
	}
	if st.Module.IsCompleted {
		t.Error("module must not be completed after one of two lessons")
	}

	updated, _ := catalog.GetModule(m.ID)
	if !updated.Lessons[0].IsCompleted {
		t.Error("catalog must record the lesson completion")
	}

	p := ledger.Progress()
	if p.TotalLessonsCompleted != 1 || p.TotalTimeSpent != LessonMinutes {
		t.Errorf("ledger = %d lessons / %d min, want 1 / %d", p.TotalLessonsCompleted, p.TotalTimeSpent, LessonMinutes)
	}
	if len(events.activity) != 1 || events.activity[0].Kind != store.ActivityLesson {
		t.Errorf("activity events = %+v, want one lesson event", events.activity)
	}
	if events.activity[0].Score != nil {
		t.Error("lesson events carry no score")
	}
}

func TestModuleCompletionAwardsBadgeOnce(t *testing.T) {
	eng, catalog, ledger, events := newTestEngine(t)
	ctx := context.Background()
	m := catalog.Modules()[0]

	finishLesson := func(l content.Lesson) {
		t.Helper()
		updated, _ := catalog.GetModule(m.ID)
		eng.LoadModule(updated)
		eng.StartLesson(l)
		for range l.Exercises {
			if err := eng.AdvanceExercise(ctx); err != nil {
				t.Fatal(err)
			}
		}
	}

	finishLesson(m.Lessons[0])
	if n := len(ledger.Progress().BadgesEarned); n != 0 {
		t.Fatalf("badges after first lesson = %d, want 0", n)
	}

	finishLesson(m.Lessons[1])
	st := eng.State()
	if st.Module.Progress != 1.0 || !st.Module.IsCompleted {
		t.Fatalf("module progress=%v completed=%v, want 1.0/true", st.Module.Progress, st.Module.IsCompleted)
	}
	if st.Module.BadgeEarned == nil {
		t.Fatal("completed module should carry a badge")
	}

	badges := ledger.Progress().BadgesEarned
	if len(badges) != 1 {
		t.Fatalf("ledger badges = %d, want 1", len(badges))
	}
	if badges[0].ID != st.Module.BadgeEarned.ID {
		t.Error("ledger badge must be the module's synthesized badge")
	}
	if badges[0].Name != "Spanish Beginner" {
		t.Errorf("badge name = %q", badges[0].Name)
	}
	if len(events.badges) != 1 || events.badges[0].Source != "module-completion" {
		t.Errorf("badge events = %+v", events.badges)
	}

	// Re-completing the last lesson must not mint a second badge.
	finishLesson(m.Lessons[1])
	if n := len(ledger.Progress().BadgesEarned); n != 1 {
		t.Errorf("badges after re-completion = %d, want 1", n)
	}
}

func TestQuizPassAwardsBadge(t *testing.T) {
	eng, catalog, ledger, events := newTestEngine(t)
	ctx := context.Background()
	m := catalog.Modules()[0]
	quiz := m.Quizzes[0]

	eng.LoadModule(m)
	eng.StartQuiz(quiz)

	if got := len(eng.State().Answers); got != 4 {
		t.Fatalf("answers pre-sized to %d, want 4", got)
	}

	// 3 of 4 correct: hello, goodbye, thanks, then a miss.
	answers := []string{"hello", "goodbye", "thanks", "no"}
	for i, a := range answers {
		eng.SelectAnswer(a, i)
		if err := eng.AdvanceQuestion(ctx); err != nil {
			t.Fatal(err)
		}
	}

	st := eng.State()
	if st.Phase != PhaseResults {
		t.Fatalf("phase = %v, want results", st.Phase)
	}
	if st.Score != 75 {
		t.Errorf("score = %d, want 75", st.Score)
	}

	// 75 >= 70 passes: completion flag set, badge appended.
	updated, _ := catalog.GetModule(m.ID)
	q := updated.Quizzes[0]
	if !q.IsCompleted {
		t.Error("quiz completion flag should be set on a passing score")
	}
	if q.UserScore == nil || *q.UserScore != 75 {
		t.Errorf("user score = %v, want 75", q.UserScore)
	}

	badges := ledger.Progress().BadgesEarned
	if len(badges) != 1 {
		t.Fatalf("ledger badges = %d, want 1", len(badges))
	}
	if badges[0].Name != "Quiz Master" {
		t.Errorf("badge name = %q", badges[0].Name)
	}
	if !strings.Contains(badges[0].Description, "75") {
		t.Errorf("badge description %q should contain the score", badges[0].Description)
	}
	if !strings.Contains(badges[0].Description, quiz.Title) {
		t.Errorf("badge description %q should reference the quiz title", badges[0].Description)
	}

	p := ledger.Progress()
	if p.TotalQuizzesCompleted != 1 || p.TotalTimeSpent != QuizMinutes {
		t.Errorf("ledger = %d quizzes / %d min", p.TotalQuizzesCompleted, p.TotalTimeSpent)
	}
	if len(events.activity) != 1 || events.activity[0].Kind != store.ActivityQuiz {
		t.Fatalf("activity events = %+v", events.activity)
	}
	if events.activity[0].Score == nil || *events.activity[0].Score != 75 {
		t.Errorf("quiz event score = %v, want 75", events.activity[0].Score)
	}
	if len(events.badges) != 1 || events.badges[0].Source != "quiz-pass" {
		t.Errorf("badge events = %+v", events.badges)
	}
}

func TestQuizFailSetsScoreWithoutBadge(t *testing.T) {
	eng, catalog, ledger, _ := newTestEngine(t)
	ctx := context.Background()
	m := catalog.Modules()[0]

	eng.LoadModule(m)
	eng.StartQuiz(m.Quizzes[0])

	// 1 of 4 correct: 25, below the 70 threshold.
	eng.SelectAnswer("hello", 0)
	for i := 0; i < 4; i++ {
		if err := eng.AdvanceQuestion(ctx); err != nil {
			t.Fatal(err)
		}
	}

	if got := eng.State().Score; got != 25 {
		t.Errorf("score = %d, want 25", got)
	}

	updated, _ := catalog.GetModule(m.ID)
	q := updated.Quizzes[0]
	if q.IsCompleted {
		t.Error("failing score must not set the completion flag")
	}
	if q.UserScore == nil || *q.UserScore != 25 {
		t.Errorf("user score = %v, want recorded attempt", q.UserScore)
	}
	if n := len(ledger.Progress().BadgesEarned); n != 0 {
		t.Errorf("badges = %d, want 0 on a fail", n)
	}
}

func TestQuizNavigation(t *testing.T) {
	eng, catalog, _, _ := newTestEngine(t)
	ctx := context.Background()
	m := catalog.Modules()[0]

	eng.LoadModule(m)
	eng.StartQuiz(m.Quizzes[0])

	// Out-of-range answers are ignored.
	eng.SelectAnswer("hello", -1)
	eng.SelectAnswer("hello", 4)
	for _, a := range eng.State().Answers {
		if a != "" {
			t.Fatal("out-of-range select must not record")
		}
	}

	// Retreat at the first question is a no-op.
	eng.RetreatQuestion()
	if got := eng.State().QuestionIndex; got != 0 {
		t.Errorf("question index = %d, want 0", got)
	}

	if err := eng.AdvanceQuestion(ctx); err != nil {
		t.Fatal(err)
	}
	eng.RetreatQuestion()
	if got := eng.State().QuestionIndex; got != 0 {
		t.Errorf("question index after retreat = %d, want 0", got)
	}

	// CanProceed gates on an answer for the current question.
	if eng.State().CanProceed() {
		t.Error("unanswered question should not allow proceeding")
	}
	eng.SelectAnswer("hello", 0)
	if !eng.State().CanProceed() {
		t.Error("answered question should allow proceeding")
	}
}

func TestScoreQuiz(t *testing.T) {
	quiz := content.Quiz{
		Title:        "Sample",
		PassingScore: 70,
		Questions: []content.Question{
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}

	tests := []struct {
		name    string
		answers []string
		want    int
	}{
		{"all correct", []string{"a", "b", "a"}, 100},
		{"two of three rounds", []string{"a", "b", "b"}, 67},
		{"one of three rounds", []string{"a", "a", "b"}, 33},
		{"none answered", []string{"", "", ""}, 0},
		{"short answer slice", []string{"a"}, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreQuiz(quiz, tt.answers); got != tt.want {
				t.Errorf("ScoreQuiz = %d, want %d", got, tt.want)
			}
		})
	}

	if got := ScoreQuiz(content.Quiz{}, nil); got != 0 {
		t.Errorf("zero-question quiz = %d, want 0", got)
	}
}

func TestResetSessionKeepsModule(t *testing.T) {
	eng, catalog, _, _ := newTestEngine(t)
	m := catalog.Modules()[0]

	eng.LoadModule(m)
	eng.StartQuiz(m.Quizzes[0])
	eng.SelectAnswer("hello", 0)

	eng.ResetSession()
	st := eng.State()
	if st.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", st.Phase)
	}
	if st.Module == nil || st.Module.ID != m.ID {
		t.Error("reset must keep the loaded module")
	}
	if st.Quiz != nil || st.Answers != nil {
		t.Error("reset must discard in-progress answers")
	}
}

func TestOnChangeNotifies(t *testing.T) {
	eng, catalog, _, _ := newTestEngine(t)
	m := catalog.Modules()[0]

	calls := 0
	eng.OnChange(func() { calls++ })

	eng.LoadModule(m)
	eng.StartLesson(m.Lessons[0])
	if calls != 2 {
		t.Errorf("notifications = %d, want 2", calls)
	}
}
