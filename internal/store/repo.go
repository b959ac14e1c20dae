package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StateRepo stores named JSON records holding mutable learner state.
// Each save replaces the whole value; loads of absent names report ok=false
// rather than an error so callers can substitute defaults.
type StateRepo interface {
	// Save upserts the record under name.
	Save(ctx context.Context, name string, value any) error

	// Load reads the record under name into out. ok is false when no
	// record exists; out is left untouched in that case.
	Load(ctx context.Context, name string, out any) (ok bool, err error)

	// Delete removes the record under name. Deleting an absent name is not
	// an error.
	Delete(ctx context.Context, name string) error
}

// ActivityKind distinguishes the two completable item types.
const (
	ActivityLesson = "lesson"
	ActivityQuiz   = "quiz"
)

// ActivityEventData captures a completed lesson or quiz walkthrough.
type ActivityEventData struct {
	Kind     string
	ModuleID string
	ItemID   string
	Title    string
	Score    *int // quiz score percentage; nil for lessons
	Minutes  int
}

// ActivityEventRecord is a stored activity event with its envelope fields.
type ActivityEventRecord struct {
	ActivityEventData
	Sequence  int64
	Timestamp time.Time
}

// BadgeEventData captures a badge award.
type BadgeEventData struct {
	BadgeID     string
	Name        string
	Description string
	Icon        string
	Color       string
	Source      string // "module-completion" or "quiz-pass"
}

// BadgeEventRecord is a stored badge event with its envelope fields.
type BadgeEventRecord struct {
	BadgeEventData
	Sequence  int64
	Timestamp time.Time
}

// DayCount is the number of completions recorded on one calendar day.
type DayCount struct {
	Day     time.Time // midnight, local time
	Lessons int
	Quizzes int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendActivityEvent records a lesson or quiz completion.
	AppendActivityEvent(ctx context.Context, data ActivityEventData) error

	// AppendBadgeEvent records a badge award.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// QueryActivityEvents returns activity events, newest first.
	QueryActivityEvents(ctx context.Context, opts QueryOpts) ([]ActivityEventRecord, error)

	// QueryBadgeEvents returns badge events, newest first.
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// ActivityByDay aggregates completions per calendar day over the last
	// days days, oldest first. Days with no activity are included as zeros.
	ActivityByDay(ctx context.Context, days int) ([]DayCount, error)
}

// roundTrip re-encodes v through JSON into out. Ent stores record data as
// map[string]any; this recovers the caller's typed struct.
func roundTrip(v any, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
