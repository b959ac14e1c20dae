package session

import "github.com/abhisek/lingua/internal/content"

// Phase is the current phase of a learning session.
type Phase int

const (
	PhaseIdle    Phase = iota // Module loaded, nothing started
	PhaseLesson               // Walking through a lesson's exercises
	PhaseQuiz                 // Answering quiz questions
	PhaseResults              // Lesson or quiz finished, results available
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLesson:
		return "lesson"
	case PhaseQuiz:
		return "quiz"
	case PhaseResults:
		return "results"
	}
	return "unknown"
}

// State is the runtime state of one session: at most one module loaded,
// at most one lesson or quiz in flight.
type State struct {
	// Phase is the current session phase.
	Phase Phase

	// Module is the loaded module (nil before LoadModule).
	Module *content.Module

	// Lesson is the active lesson (nil outside a lesson run).
	Lesson *content.Lesson

	// Quiz is the active quiz (nil outside a quiz run).
	Quiz *content.Quiz

	// ExerciseIndex is the position within the lesson's exercises.
	ExerciseIndex int

	// QuestionIndex is the position within the quiz's questions.
	QuestionIndex int

	// Answers holds the literal chosen option text per question,
	// pre-sized to the question count with empty strings.
	Answers []string

	// Score is the quiz score as an integer percentage, set when the
	// quiz is scored.
	Score int
}

// CurrentExercise returns the active exercise, or nil when no lesson is
// in flight or the lesson has no exercises.
func (s State) CurrentExercise() *content.Exercise {
	if s.Lesson == nil || s.ExerciseIndex < 0 || s.ExerciseIndex >= len(s.Lesson.Exercises) {
		return nil
	}
	return &s.Lesson.Exercises[s.ExerciseIndex]
}

// CurrentQuestion returns the active question, or nil when no quiz is in
// flight.
func (s State) CurrentQuestion() *content.Question {
	if s.Quiz == nil || s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Quiz.Questions) {
		return nil
	}
	return &s.Quiz.Questions[s.QuestionIndex]
}

// Answered reports whether the question at index has a recorded answer.
func (s State) Answered(index int) bool {
	return index >= 0 && index < len(s.Answers) && s.Answers[index] != ""
}

// CanProceed reports whether the presentation layer should enable the
// advance action: lessons always advance, quizzes require an answer to
// the current question first. Display policy only; AdvanceQuestion does
// not enforce it.
func (s State) CanProceed() bool {
	switch s.Phase {
	case PhaseLesson:
		return true
	case PhaseQuiz:
		return s.Answered(s.QuestionIndex)
	}
	return false
}
