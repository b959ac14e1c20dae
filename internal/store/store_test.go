package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

type testState struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

func TestStateSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	var missing testState
	ok, err := repo.Load(ctx, "absent", &missing)
	if err != nil {
		t.Fatalf("load absent: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for absent record")
	}

	if err := repo.Save(ctx, "counters", testState{Count: 3, Name: "a"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got testState
	ok, err = repo.Load(ctx, "counters", &got)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after save")
	}
	if got.Count != 3 || got.Name != "a" {
		t.Errorf("loaded %+v, want Count=3 Name=a", got)
	}

	// Save replaces the whole value.
	if err := repo.Save(ctx, "counters", testState{Count: 7}); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	ok, err = repo.Load(ctx, "counters", &got)
	if err != nil || !ok {
		t.Fatalf("reload: ok=%v err=%v", ok, err)
	}
	if got.Count != 7 || got.Name != "" {
		t.Errorf("reloaded %+v, want Count=7 Name=\"\"", got)
	}
}

func TestStateDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Delete(ctx, "never-saved"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	if err := repo.Save(ctx, "gone", testState{Count: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var out testState
	ok, err := repo.Load(ctx, "gone", &out)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false after delete")
	}
}

func TestActivityEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	score := 80
	events := []ActivityEventData{
		{Kind: ActivityLesson, ModuleID: "m1", ItemID: "l1", Title: "Basic Greetings", Minutes: 15},
		{Kind: ActivityQuiz, ModuleID: "m1", ItemID: "q1", Title: "Spanish Basics Quiz", Score: &score, Minutes: 10},
	}
	for _, e := range events {
		if err := repo.AppendActivityEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryActivityEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Kind != ActivityQuiz {
		t.Errorf("records[0].Kind = %q, want quiz", records[0].Kind)
	}
	if records[0].Score == nil || *records[0].Score != 80 {
		t.Error("quiz record missing score 80")
	}
	if records[1].Score != nil {
		t.Error("lesson record should have nil score")
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequence not increasing: %d then %d", records[1].Sequence, records[0].Sequence)
	}
}

func TestActivityByDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendActivityEvent(ctx, ActivityEventData{
			Kind: ActivityLesson, ModuleID: "m1", ItemID: "l1", Title: "L", Minutes: 15,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	counts, err := repo.ActivityByDay(ctx, 7)
	if err != nil {
		t.Fatalf("activity by day: %v", err)
	}
	if len(counts) != 7 {
		t.Fatalf("got %d day buckets, want 7", len(counts))
	}

	today := counts[len(counts)-1]
	if today.Lessons != 3 {
		t.Errorf("today.Lessons = %d, want 3", today.Lessons)
	}
	for _, dc := range counts[:len(counts)-1] {
		if dc.Lessons != 0 || dc.Quizzes != 0 {
			t.Errorf("day %s has nonzero counts", dc.Day.Format(time.DateOnly))
		}
	}
}

func TestBadgeEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBadgeEvent(ctx, BadgeEventData{
		BadgeID:     "b1",
		Name:        "Spanish Beginner",
		Description: "Completed Spanish Basics",
		Icon:        "star.fill",
		Color:       "#FFD700",
		Source:      "module-completion",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryBadgeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Spanish Beginner" || records[0].Source != "module-completion" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}
