package progress

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/content"
	"github.com/abhisek/lingua/internal/store"
)

// mockStateRepo implements store.StateRepo backed by a map.
type mockStateRepo struct {
	records map[string][]byte
	saves   int
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
	m.saves++
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

// mockEventRepo implements store.EventRepo, capturing appends.
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

func newTestService() (*Service, *mockStateRepo, *mockEventRepo) {
	states := newMockStateRepo()
	events := &mockEventRepo{}
	svc := NewService(context.Background(), states, events)
	return svc, states, events
}

func intp(n int) *int { return &n }

func TestNewServiceDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	p := svc.Progress()
	if p.WeeklyGoal != DefaultWeeklyGoal {
		t.Errorf("WeeklyGoal = %d, want %d", p.WeeklyGoal, DefaultWeeklyGoal)
	}
	if p.CurrentStreak != 0 || p.TotalLessonsCompleted != 0 {
		t.Errorf("expected zero counters, got %+v", p)
	}

	prefs := svc.Preferences()
	if !prefs.SoundEnabled || !prefs.HapticFeedbackEnabled {
		t.Error("sound and haptics should default on")
	}
	if prefs.DarkModeEnabled || prefs.OnboardingCompleted {
		t.Error("dark mode and onboarding should default off")
	}
}

func TestNewServiceLoadsPersistedState(t *testing.T) {
	states := newMockStateRepo()
	saved := UserProgress{TotalLessonsCompleted: 9, WeeklyGoal: 3, CurrentStreak: 2, LongestStreak: 4}
	if err := states.Save(context.Background(), "user_progress", saved); err != nil {
		t.Fatal(err)
	}

	svc := NewService(context.Background(), states, &mockEventRepo{})
	p := svc.Progress()
	if p.TotalLessonsCompleted != 9 || p.WeeklyGoal != 3 || p.LongestStreak != 4 {
		t.Errorf("loaded %+v, want persisted values", p)
	}
}

func TestNewServiceSubstitutesDefaultsForCorruptState(t *testing.T) {
	states := newMockStateRepo()
	states.records["user_progress"] = []byte("{corrupt")

	svc := NewService(context.Background(), states, &mockEventRepo{})
	if svc.Progress().WeeklyGoal != DefaultWeeklyGoal {
		t.Error("corrupt record should fall back to defaults")
	}
}

func TestRecordActivityCounterSemantics(t *testing.T) {
	svc, states, _ := newTestService()
	ctx := context.Background()

	err := svc.RecordActivity(ctx, ActivityDelta{
		LessonsCompleted: intp(2),
		TimeSpentMinutes: intp(30),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = svc.RecordActivity(ctx, ActivityDelta{
		LessonsCompleted: intp(1),
		QuizzesCompleted: intp(1),
		TimeSpentMinutes: intp(10),
	})
	if err != nil {
		t.Fatal(err)
	}

	p := svc.Progress()
	if p.TotalLessonsCompleted != 3 {
		t.Errorf("TotalLessonsCompleted = %d, want 3 (incremented)", p.TotalLessonsCompleted)
	}
	if p.TotalQuizzesCompleted != 1 {
		t.Errorf("TotalQuizzesCompleted = %d, want 1", p.TotalQuizzesCompleted)
	}
	if p.TotalTimeSpent != 40 {
		t.Errorf("TotalTimeSpent = %d, want 40", p.TotalTimeSpent)
	}
	if p.WeeklyProgress != 3 {
		t.Errorf("WeeklyProgress = %d, want 3 (moves with lessons only)", p.WeeklyProgress)
	}
	if p.LastActivityDate == nil {
		t.Error("last activity date should be stamped")
	}
	if states.saves == 0 {
		t.Error("activity must persist write-through")
	}

	// Modules replaces rather than increments.
	if err := svc.RecordActivity(ctx, ActivityDelta{ModulesCompleted: intp(4)}); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordActivity(ctx, ActivityDelta{ModulesCompleted: intp(2)}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Progress().TotalModulesCompleted; got != 2 {
		t.Errorf("TotalModulesCompleted = %d, want 2 (absolute replace)", got)
	}
}

func TestRecordActivityEmptyDeltaIsNoOp(t *testing.T) {
	svc, states, _ := newTestService()

	if err := svc.RecordActivity(context.Background(), ActivityDelta{}); err != nil {
		t.Fatal(err)
	}
	if svc.Progress().LastActivityDate != nil {
		t.Error("empty delta must not stamp activity")
	}
	if states.saves != 0 {
		t.Error("empty delta must not persist")
	}
}

func TestStreakProgression(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 20, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }

	// First ever activity.
	if err := svc.RecordActivity(ctx, ActivityDelta{LessonsCompleted: intp(1)}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Progress().CurrentStreak; got != 1 {
		t.Fatalf("streak after first activity = %d, want 1", got)
	}

	// Same calendar day: no increment.
	svc.now = func() time.Time { return day.Add(2 * time.Hour) }
	if err := svc.RecordActivity(ctx, ActivityDelta{LessonsCompleted: intp(1)}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Progress().CurrentStreak; got != 1 {
		t.Fatalf("streak after same-day activity = %d, want 1", got)
	}

	// Next calendar day (early morning, under 24h elapsed): increment.
	svc.now = func() time.Time { return time.Date(2026, 3, 3, 7, 0, 0, 0, time.Local) }
	if err := svc.RecordActivity(ctx, ActivityDelta{LessonsCompleted: intp(1)}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Progress().CurrentStreak; got != 2 {
		t.Fatalf("streak after next-day activity = %d, want 2", got)
	}

	// Two days skipped: reset to 1, longest retained.
	svc.now = func() time.Time { return time.Date(2026, 3, 6, 12, 0, 0, 0, time.Local) }
	if err := svc.RecordActivity(ctx, ActivityDelta{LessonsCompleted: intp(1)}); err != nil {
		t.Fatal(err)
	}
	p := svc.Progress()
	if p.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2 (never decreases)", p.LongestStreak)
	}
}

func TestAddBadgeAppendsWithoutDedup(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	now := time.Now()
	badge := content.Badge{
		ID:          uuid.New(),
		Name:        "Spanish Beginner",
		Description: "Completed Spanish Basics",
		IconName:    "star.fill",
		Color:       "#FFD700",
		DateEarned:  &now,
	}

	if err := svc.AddBadge(ctx, badge, "module-completion"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddBadge(ctx, badge, "module-completion"); err != nil {
		t.Fatal(err)
	}

	if got := len(svc.Progress().BadgesEarned); got != 2 {
		t.Errorf("badge count = %d, want 2 (no dedup)", got)
	}
	if len(events.badges) != 2 {
		t.Errorf("badge events = %d, want 2", len(events.badges))
	}
	if events.badges[0].Source != "module-completion" {
		t.Errorf("badge event source = %q", events.badges[0].Source)
	}
}

func TestWeeklyProgressPercentage(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if got := svc.WeeklyProgressPercentage(); got != 0.0 {
		t.Errorf("empty ledger percentage = %v, want 0", got)
	}

	if err := svc.SetWeeklyGoal(ctx, 4); err != nil {
		t.Fatal(err)
	}
	svc.progress.WeeklyProgress = 2
	if got := svc.WeeklyProgressPercentage(); got != 0.5 {
		t.Errorf("percentage = %v, want 0.5", got)
	}

	// Overachieving clamps to 1.
	svc.progress.WeeklyProgress = 9
	if got := svc.WeeklyProgressPercentage(); got != 1.0 {
		t.Errorf("percentage = %v, want clamp to 1.0", got)
	}

	// Non-positive goal avoids division by zero.
	if err := svc.SetWeeklyGoal(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if got := svc.WeeklyProgressPercentage(); got != 0.0 {
		t.Errorf("zero-goal percentage = %v, want 0", got)
	}
}

func TestAverageTimePerLesson(t *testing.T) {
	svc, _, _ := newTestService()

	if got := svc.AverageTimePerLesson(); got != 0.0 {
		t.Errorf("average with no lessons = %v, want 0", got)
	}

	svc.progress.TotalLessonsCompleted = 4
	svc.progress.TotalTimeSpent = 60
	if got := svc.AverageTimePerLesson(); got != 15.0 {
		t.Errorf("average = %v, want 15", got)
	}
}

func TestUpdatePreferencesMergePatch(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	langs := []string{"Spanish", "French"}
	dark := true
	err := svc.UpdatePreferences(ctx, PreferencesPatch{
		SelectedLanguages: &langs,
		DarkModeEnabled:   &dark,
	})
	if err != nil {
		t.Fatal(err)
	}

	prefs := svc.Preferences()
	if len(prefs.SelectedLanguages) != 2 {
		t.Errorf("SelectedLanguages = %v", prefs.SelectedLanguages)
	}
	if !prefs.DarkModeEnabled {
		t.Error("dark mode should be enabled")
	}
	if !prefs.SoundEnabled {
		t.Error("untouched field must keep its value")
	}

	// Second patch leaves earlier fields alone.
	done := true
	if err := svc.UpdatePreferences(ctx, PreferencesPatch{OnboardingCompleted: &done}); err != nil {
		t.Fatal(err)
	}
	prefs = svc.Preferences()
	if len(prefs.SelectedLanguages) != 2 || !prefs.DarkModeEnabled {
		t.Error("merge patch must not clobber omitted fields")
	}
}

func TestUpdatePreferencesReminderSetAndClear(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	at := time.Date(0, 1, 1, 8, 30, 0, 0, time.Local)
	if err := svc.UpdatePreferences(ctx, PreferencesPatch{DailyReminderTime: &at}); err != nil {
		t.Fatal(err)
	}
	prefs := svc.Preferences()
	if prefs.DailyReminderTime == nil || !prefs.DailyReminderTime.Equal(at) {
		t.Fatalf("reminder = %v, want %v", prefs.DailyReminderTime, at)
	}

	if err := svc.UpdatePreferences(ctx, PreferencesPatch{ClearDailyReminder: true}); err != nil {
		t.Fatal(err)
	}
	if svc.Preferences().DailyReminderTime != nil {
		t.Error("clearing must remove the reminder")
	}
}

func TestResetAllData(t *testing.T) {
	svc, states, _ := newTestService()
	ctx := context.Background()

	if err := svc.RecordActivity(ctx, ActivityDelta{LessonsCompleted: intp(5)}); err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	badge := content.Badge{ID: uuid.New(), Name: "B", Description: "d", IconName: "i", Color: "#fff", DateEarned: &now}
	if err := svc.AddBadge(ctx, badge, "quiz-pass"); err != nil {
		t.Fatal(err)
	}

	if err := svc.ResetAllData(ctx); err != nil {
		t.Fatal(err)
	}

	p := svc.Progress()
	if p.TotalLessonsCompleted != 0 || p.CurrentStreak != 0 || len(p.BadgesEarned) != 0 {
		t.Errorf("reset progress = %+v, want defaults", p)
	}
	if p.WeeklyGoal != DefaultWeeklyGoal {
		t.Errorf("reset WeeklyGoal = %d, want default", p.WeeklyGoal)
	}

	// Persistence reflects the reset.
	var persisted UserProgress
	ok, err := states.Load(ctx, "user_progress", &persisted)
	if err != nil || !ok {
		t.Fatalf("load persisted: ok=%v err=%v", ok, err)
	}
	if persisted.TotalLessonsCompleted != 0 || len(persisted.BadgesEarned) != 0 {
		t.Errorf("persisted after reset = %+v", persisted)
	}
}

func TestRecentBadges(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -10)
	fresh1 := time.Now().AddDate(0, 0, -2)
	fresh2 := time.Now().AddDate(0, 0, -1)
	for _, b := range []content.Badge{
		{ID: uuid.New(), Name: "Old", Description: "d", IconName: "i", Color: "#fff", DateEarned: &old},
		{ID: uuid.New(), Name: "Fresh1", Description: "d", IconName: "i", Color: "#fff", DateEarned: &fresh1},
		{ID: uuid.New(), Name: "Fresh2", Description: "d", IconName: "i", Color: "#fff", DateEarned: &fresh2},
	} {
		if err := svc.AddBadge(ctx, b, "quiz-pass"); err != nil {
			t.Fatal(err)
		}
	}

	recent := svc.RecentBadges()
	if len(recent) != 2 {
		t.Fatalf("recent badges = %d, want 2", len(recent))
	}
	if recent[0].Name != "Fresh2" {
		t.Errorf("recent[0] = %q, want newest first", recent[0].Name)
	}
}
