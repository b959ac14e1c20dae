package content

import (
	"time"

	"github.com/google/uuid"
)

// Catalog holds the canonical list of modules and applies completion
// mutations. Nested records are never edited in place: a mutation rebuilds
// the affected lesson/quiz/module and replaces the module wholesale.
//
// The catalog has exactly one owner per process and expects serialized
// calls; it performs no locking of its own.
type Catalog struct {
	modules []Module
}

// NewCatalog creates a catalog over the given modules.
func NewCatalog(modules []Module) *Catalog {
	return &Catalog{modules: modules}
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// GetModule looks a module up by id. Absence is not an error.
func (c *Catalog) GetModule(id uuid.UUID) (Module, bool) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// CompleteLesson marks the lesson complete and recomputes the module's
// derived progress. Unknown module or lesson ids are a silent no-op.
// A badge is synthesized only on the transition into full completion.
func (c *Catalog) CompleteLesson(lessonID, moduleID uuid.UUID) {
	mi := c.indexOf(moduleID)
	if mi < 0 {
		return
	}
	m := c.modules[mi]

	li := -1
	for i, l := range m.Lessons {
		if l.ID == lessonID {
			li = i
			break
		}
	}
	if li < 0 {
		return
	}

	lessons := make([]Lesson, len(m.Lessons))
	copy(lessons, m.Lessons)
	lessons[li].IsCompleted = true

	wasCompleted := m.IsCompleted
	m.Lessons = lessons
	m.Progress = lessonProgress(lessons)
	m.IsCompleted = m.Progress >= 1.0
	if m.IsCompleted && !wasCompleted {
		badge := CompletionBadge(m)
		m.BadgeEarned = &badge
	}

	c.modules[mi] = m
}

// CompleteQuiz records a quiz attempt. The completion flag reflects whether
// the score met the quiz's own passing threshold; module-level completion is
// untouched (it depends on lessons only). Unknown ids are a silent no-op.
func (c *Catalog) CompleteQuiz(quizID, moduleID uuid.UUID, score int) {
	mi := c.indexOf(moduleID)
	if mi < 0 {
		return
	}
	m := c.modules[mi]

	qi := -1
	for i, q := range m.Quizzes {
		if q.ID == quizID {
			qi = i
			break
		}
	}
	if qi < 0 {
		return
	}

	quizzes := make([]Quiz, len(m.Quizzes))
	copy(quizzes, m.Quizzes)
	s := score
	quizzes[qi].UserScore = &s
	quizzes[qi].IsCompleted = score >= quizzes[qi].PassingScore

	m.Quizzes = quizzes
	c.modules[mi] = m
}

func (c *Catalog) indexOf(moduleID uuid.UUID) int {
	for i, m := range c.modules {
		if m.ID == moduleID {
			return i
		}
	}
	return -1
}

// lessonProgress is the completed fraction of the lesson list.
// Zero lessons means zero progress, not a division by zero.
func lessonProgress(lessons []Lesson) float64 {
	if len(lessons) == 0 {
		return 0.0
	}
	done := 0
	for _, l := range lessons {
		if l.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(lessons))
}

// CompletionBadge synthesizes the badge for a fully completed module.
// Descriptive fields are deterministic given the module's language,
// difficulty, and title; only the earned timestamp varies by call time.
func CompletionBadge(m Module) Badge {
	now := time.Now()
	return Badge{
		ID:          uuid.New(),
		Name:        m.Language + " " + string(m.Difficulty),
		Description: "Completed " + m.Title,
		IconName:    "star.fill",
		Color:       "#FFD700",
		DateEarned:  &now,
	}
}

// CompletedLessons counts the module's completed lessons.
func (m Module) CompletedLessons() int {
	n := 0
	for _, l := range m.Lessons {
		if l.IsCompleted {
			n++
		}
	}
	return n
}

// CompletedQuizzes counts the module's completed quizzes.
func (m Module) CompletedQuizzes() int {
	n := 0
	for _, q := range m.Quizzes {
		if q.IsCompleted {
			n++
		}
	}
	return n
}

// QuizzesUnlocked reports whether quizzes should be presented as available.
// This is a display policy for the presentation layer; the session engine
// will score a quiz started out of order regardless.
func (m Module) QuizzesUnlocked() bool {
	return m.CompletedLessons() == len(m.Lessons)
}
