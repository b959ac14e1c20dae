package session

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/content"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
)

// Estimated minutes credited per completed item. Walkthrough time is not
// measured; these match the catalog's per-item duration assumptions.
const (
	LessonMinutes = 15
	QuizMinutes   = 10
)

// Engine walks a learner through one lesson's exercises or one quiz's
// questions and writes completion results back into the catalog and the
// ledger. All operations are synchronous and expect a single caller.
type Engine struct {
	catalog *content.Catalog
	ledger  *progress.Service
	events  store.EventRepo

	state  State
	notify func()
}

// NewEngine creates an engine over the catalog and ledger. events receives
// the completion audit trail and may not be nil.
func NewEngine(catalog *content.Catalog, ledger *progress.Service, events store.EventRepo) *Engine {
	return &Engine{
		catalog: catalog,
		ledger:  ledger,
		events:  events,
	}
}

// OnChange registers a callback invoked after every state mutation. The
// presentation layer pulls a fresh snapshot from State when called.
func (e *Engine) OnChange(fn func()) {
	e.notify = fn
}

// State returns a snapshot of the current session state.
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) changed() {
	if e.notify != nil {
		e.notify()
	}
}

// LoadModule makes the module current and clears any in-flight lesson,
// quiz, answers, and results.
func (e *Engine) LoadModule(m content.Module) {
	e.state = State{Phase: PhaseIdle, Module: &m}
	e.changed()
}

// StartLesson begins a lesson walkthrough at its first exercise.
func (e *Engine) StartLesson(l content.Lesson) {
	e.state.Lesson = &l
	e.state.Quiz = nil
	e.state.ExerciseIndex = 0
	e.state.QuestionIndex = 0
	e.state.Answers = nil
	e.state.Score = 0
	e.state.Phase = PhaseLesson
	e.changed()
}

// StartQuiz begins a quiz at its first question, with one empty answer
// slot per question.
func (e *Engine) StartQuiz(q content.Quiz) {
	e.state.Quiz = &q
	e.state.Lesson = nil
	e.state.ExerciseIndex = 0
	e.state.QuestionIndex = 0
	e.state.Answers = make([]string, len(q.Questions))
	e.state.Score = 0
	e.state.Phase = PhaseQuiz
	e.changed()
}

// AdvanceExercise moves to the next exercise. Past the last exercise the
// lesson completes: the catalog marks it done, the ledger is credited, and
// a newly earned module badge is forwarded. A lesson with zero exercises
// completes on the first call.
func (e *Engine) AdvanceExercise(ctx context.Context) error {
	if e.state.Phase != PhaseLesson || e.state.Lesson == nil {
		return nil
	}
	if e.state.ExerciseIndex < len(e.state.Lesson.Exercises)-1 {
		e.state.ExerciseIndex++
		e.changed()
		return nil
	}
	return e.completeLesson(ctx)
}

// RetreatExercise moves to the previous exercise, if any.
func (e *Engine) RetreatExercise() {
	if e.state.Phase != PhaseLesson || e.state.ExerciseIndex == 0 {
		return
	}
	e.state.ExerciseIndex--
	e.changed()
}

// SelectAnswer records the literal chosen option text for the question at
// index. Out-of-range indices are ignored.
func (e *Engine) SelectAnswer(answer string, index int) {
	if index < 0 || index >= len(e.state.Answers) {
		return
	}
	e.state.Answers[index] = answer
	e.changed()
}

// AdvanceQuestion moves to the next question. Past the last question the
// quiz is scored and completed: the catalog records the attempt, the
// ledger is credited, and a pass mints a quiz badge.
func (e *Engine) AdvanceQuestion(ctx context.Context) error {
	if e.state.Phase != PhaseQuiz || e.state.Quiz == nil {
		return nil
	}
	if e.state.QuestionIndex < len(e.state.Quiz.Questions)-1 {
		e.state.QuestionIndex++
		e.changed()
		return nil
	}
	return e.completeQuiz(ctx)
}

// RetreatQuestion moves to the previous question, if any.
func (e *Engine) RetreatQuestion() {
	if e.state.Phase != PhaseQuiz || e.state.QuestionIndex == 0 {
		return
	}
	e.state.QuestionIndex--
	e.changed()
}

// ResetSession returns to Idle, discarding any in-progress answers. The
// loaded module is kept.
func (e *Engine) ResetSession() {
	m := e.state.Module
	e.state = State{Phase: PhaseIdle, Module: m}
	e.changed()
}

func (e *Engine) completeLesson(ctx context.Context) error {
	lesson := e.state.Lesson
	module := e.state.Module
	if module != nil {
		wasCompleted := module.IsCompleted
		e.catalog.CompleteLesson(lesson.ID, module.ID)

		delta := 1
		minutes := LessonMinutes
		err := e.ledger.RecordActivity(ctx, progress.ActivityDelta{
			LessonsCompleted: &delta,
			TimeSpentMinutes: &minutes,
		})
		if err != nil {
			return fmt.Errorf("record lesson activity: %w", err)
		}
		if err := e.events.AppendActivityEvent(ctx, store.ActivityEventData{
			Kind:     store.ActivityLesson,
			ModuleID: module.ID.String(),
			ItemID:   lesson.ID.String(),
			Title:    lesson.Title,
			Minutes:  LessonMinutes,
		}); err != nil {
			return fmt.Errorf("append lesson event: %w", err)
		}

		if updated, ok := e.catalog.GetModule(module.ID); ok {
			e.state.Module = &updated
			if updated.IsCompleted && !wasCompleted && updated.BadgeEarned != nil {
				if err := e.ledger.AddBadge(ctx, *updated.BadgeEarned, "module-completion"); err != nil {
					return fmt.Errorf("award module badge: %w", err)
				}
			}
		}
	}

	e.state.Phase = PhaseResults
	e.changed()
	return nil
}

func (e *Engine) completeQuiz(ctx context.Context) error {
	quiz := e.state.Quiz
	module := e.state.Module
	score := ScoreQuiz(*quiz, e.state.Answers)
	e.state.Score = score

	if module != nil {
		e.catalog.CompleteQuiz(quiz.ID, module.ID, score)
		if updated, ok := e.catalog.GetModule(module.ID); ok {
			e.state.Module = &updated
		}

		delta := 1
		minutes := QuizMinutes
		err := e.ledger.RecordActivity(ctx, progress.ActivityDelta{
			QuizzesCompleted: &delta,
			TimeSpentMinutes: &minutes,
		})
		if err != nil {
			return fmt.Errorf("record quiz activity: %w", err)
		}
		if err := e.events.AppendActivityEvent(ctx, store.ActivityEventData{
			Kind:     store.ActivityQuiz,
			ModuleID: module.ID.String(),
			ItemID:   quiz.ID.String(),
			Title:    quiz.Title,
			Score:    &score,
			Minutes:  QuizMinutes,
		}); err != nil {
			return fmt.Errorf("append quiz event: %w", err)
		}

		if score >= quiz.PassingScore {
			if err := e.ledger.AddBadge(ctx, QuizBadge(*quiz, score), "quiz-pass"); err != nil {
				return fmt.Errorf("award quiz badge: %w", err)
			}
		}
	}

	e.state.Phase = PhaseResults
	e.changed()
	return nil
}

// ScoreQuiz compares each recorded answer to the text of the question's
// correct option. Two distinct options with identical text are
// indistinguishable here; matching is by string, not index. The score is
// the rounded integer percentage of correct answers; a quiz with no
// questions scores 0.
func ScoreQuiz(q content.Quiz, answers []string) int {
	if len(q.Questions) == 0 {
		return 0
	}
	correct := 0
	for i, question := range q.Questions {
		if i >= len(answers) {
			break
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			continue
		}
		if answers[i] == question.Options[question.CorrectAnswer] {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(q.Questions)) * 100))
}

// QuizBadge synthesizes the badge for a passed quiz attempt. Distinct from
// the module completion badge; the description carries the quiz title and
// score.
func QuizBadge(q content.Quiz, score int) content.Badge {
	now := time.Now()
	return content.Badge{
		ID:          uuid.New(),
		Name:        "Quiz Master",
		Description: fmt.Sprintf("Passed %s with %d%%", q.Title, score),
		IconName:    "checkmark.seal.fill",
		Color:       "#4CAF50",
		DateEarned:  &now,
	}
}

// CompletedLessons is the completed lesson count of the loaded module.
func (e *Engine) CompletedLessons() int {
	if e.state.Module == nil {
		return 0
	}
	return e.state.Module.CompletedLessons()
}

// TotalLessons is the lesson count of the loaded module.
func (e *Engine) TotalLessons() int {
	if e.state.Module == nil {
		return 0
	}
	return len(e.state.Module.Lessons)
}

// CompletedQuizzes is the completed quiz count of the loaded module.
func (e *Engine) CompletedQuizzes() int {
	if e.state.Module == nil {
		return 0
	}
	return e.state.Module.CompletedQuizzes()
}

// TotalQuizzes is the quiz count of the loaded module.
func (e *Engine) TotalQuizzes() int {
	if e.state.Module == nil {
		return 0
	}
	return len(e.state.Module.Quizzes)
}

// ModuleProgress is the loaded module's derived progress fraction.
func (e *Engine) ModuleProgress() float64 {
	if e.state.Module == nil {
		return 0.0
	}
	return e.state.Module.Progress
}
