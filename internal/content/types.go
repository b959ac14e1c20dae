package content

import (
	"time"

	"github.com/google/uuid"
)

// Module is a language course unit bundling lessons and quizzes.
// Progress and IsCompleted are derived from lesson completion and are
// recomputed on every mutation, never stored ahead of their inputs.
type Module struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Language      string     `json:"language"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime int        `json:"estimatedTime"` // minutes
	Lessons       []Lesson   `json:"lessons"`
	Quizzes       []Quiz     `json:"quizzes"`
	IsCompleted   bool       `json:"isCompleted"`
	Progress      float64    `json:"progress"` // 0.0 to 1.0
	BadgeEarned   *Badge     `json:"badgeEarned,omitempty"`
}

// Lesson is a sequence of exercises teaching a sub-topic, completed as a
// whole when the learner walks through every exercise.
type Lesson struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Type        LessonType       `json:"type"`
	Vocabulary  []VocabularyItem `json:"vocabulary"`
	Exercises   []Exercise       `json:"exercises"`
	IsCompleted bool             `json:"isCompleted"`
}

// Quiz is a scored assessment with a pass threshold. IsCompleted reflects
// whether the most recent attempt met PassingScore; UserScore records the
// attempt either way.
type Quiz struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"` // 0-100 percentage
	IsCompleted  bool       `json:"isCompleted"`
	UserScore    *int       `json:"userScore,omitempty"`
}

// Passed reports whether the last attempt met the passing threshold.
func (q Quiz) Passed() bool {
	return q.UserScore != nil && *q.UserScore >= q.PassingScore
}

// Question is a single multiple-choice quiz item. CorrectAnswer indexes
// into Options.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
}

// VocabularyItem is an informational vocabulary entry; it is never graded.
type VocabularyItem struct {
	ID            uuid.UUID `json:"id"`
	Word          string    `json:"word"`
	Translation   string    `json:"translation"`
	Pronunciation string    `json:"pronunciation"`
	Example       string    `json:"example"`
	IsLearned     bool      `json:"isLearned"`
}

// Exercise is one step of a lesson. Content is interpreted per Type; for
// multiple choice it is a pipe-joined option list. Exercises are walked
// through, not graded toward any score.
type Exercise struct {
	ID            uuid.UUID    `json:"id"`
	Instruction   string       `json:"instruction"`
	Type          ExerciseType `json:"type"`
	Content       string       `json:"content"`
	CorrectAnswer string       `json:"correctAnswer"`
	IsCompleted   bool         `json:"isCompleted"`
}

// Options splits a multiple-choice exercise's content into its option list.
// Returns nil for other exercise types.
func (e Exercise) Options() []string {
	if e.Type != ExerciseMultipleChoice {
		return nil
	}
	return splitOptions(e.Content)
}

// Badge is an immutable award record. A new value is minted per award
// event and never mutated after.
type Badge struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IconName    string     `json:"iconName"`
	Color       string     `json:"color"`
	DateEarned  *time.Time `json:"dateEarned,omitempty"`
}
