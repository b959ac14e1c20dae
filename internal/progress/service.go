package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingua/internal/content"
	"github.com/abhisek/lingua/internal/store"
)

// Service is the progress ledger. It owns the persisted UserProgress and
// UserPreferences records, updating them by whole-value reconstruction and
// writing through to the state repo after every mutation.
//
// One Service owns the records per process; calls are expected to be
// serialized by the single-threaded domain model.
type Service struct {
	states store.StateRepo
	events store.EventRepo

	progress UserProgress
	prefs    UserPreferences

	// now is a clock hook for streak tests.
	now func() time.Time
}

// NewService loads the persisted records, substituting defaults when a
// record is absent or unreadable. Corrupt state is not an error a learner
// can act on, so it is silently replaced.
func NewService(ctx context.Context, states store.StateRepo, events store.EventRepo) *Service {
	s := &Service{
		states:   states,
		events:   events,
		progress: DefaultProgress(),
		prefs:    DefaultPreferences(),
		now:      time.Now,
	}

	var p UserProgress
	if ok, err := states.Load(ctx, progressRecord, &p); err == nil && ok {
		s.progress = p
	}
	var prefs UserPreferences
	if ok, err := states.Load(ctx, preferencesRecord, &prefs); err == nil && ok {
		s.prefs = prefs
	}
	return s
}

// Progress returns the current ledger state.
func (s *Service) Progress() UserProgress {
	return s.progress
}

// Preferences returns the current preference state.
func (s *Service) Preferences() UserPreferences {
	return s.prefs
}

// RecordActivity applies the delta to the counters, advances the streak,
// and persists. ModulesCompleted replaces the stored total; lessons,
// quizzes, and time are added. Weekly progress moves with lessons only.
// Any supplied field re-stamps the last-activity date.
func (s *Service) RecordActivity(ctx context.Context, delta ActivityDelta) error {
	if delta.empty() {
		return nil
	}

	p := s.progress
	if delta.ModulesCompleted != nil {
		p.TotalModulesCompleted = *delta.ModulesCompleted
	}
	if delta.LessonsCompleted != nil {
		p.TotalLessonsCompleted += *delta.LessonsCompleted
		p.WeeklyProgress += *delta.LessonsCompleted
	}
	if delta.QuizzesCompleted != nil {
		p.TotalQuizzesCompleted += *delta.QuizzesCompleted
	}
	if delta.TimeSpentMinutes != nil {
		p.TotalTimeSpent += *delta.TimeSpentMinutes
	}

	now := s.now()
	p.CurrentStreak = nextStreak(p.CurrentStreak, p.LastActivityDate, now)
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastActivityDate = &now

	s.progress = p
	return s.save(ctx)
}

// AddBadge appends the badge to the earned list and records the award
// event. The list is deliberately deduplication-free: earning the same
// achievement twice yields two badges.
func (s *Service) AddBadge(ctx context.Context, badge content.Badge, source string) error {
	p := s.progress
	badges := make([]content.Badge, len(p.BadgesEarned), len(p.BadgesEarned)+1)
	copy(badges, p.BadgesEarned)
	p.BadgesEarned = append(badges, badge)
	s.progress = p

	if err := s.save(ctx); err != nil {
		return err
	}

	if s.events != nil {
		err := s.events.AppendBadgeEvent(ctx, store.BadgeEventData{
			BadgeID:     badge.ID.String(),
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.IconName,
			Color:       badge.Color,
			Source:      source,
		})
		if err != nil {
			return fmt.Errorf("record badge event: %w", err)
		}
	}
	return nil
}

// SetWeeklyGoal replaces the lessons-per-week target.
func (s *Service) SetWeeklyGoal(ctx context.Context, goal int) error {
	s.progress.WeeklyGoal = goal
	return s.save(ctx)
}

// ResetWeeklyProgress zeroes the current week's lesson count.
func (s *Service) ResetWeeklyProgress(ctx context.Context) error {
	s.progress.WeeklyProgress = 0
	return s.save(ctx)
}

// UpdatePreferences merge-patches the preference record and persists it.
func (s *Service) UpdatePreferences(ctx context.Context, patch PreferencesPatch) error {
	prefs := s.prefs
	if patch.SelectedLanguages != nil {
		prefs.SelectedLanguages = *patch.SelectedLanguages
	}
	if patch.LearningGoals != nil {
		prefs.LearningGoals = *patch.LearningGoals
	}
	if patch.DailyReminderTime != nil {
		prefs.DailyReminderTime = patch.DailyReminderTime
	}
	if patch.ClearDailyReminder {
		prefs.DailyReminderTime = nil
	}
	if patch.SoundEnabled != nil {
		prefs.SoundEnabled = *patch.SoundEnabled
	}
	if patch.HapticFeedbackEnabled != nil {
		prefs.HapticFeedbackEnabled = *patch.HapticFeedbackEnabled
	}
	if patch.DarkModeEnabled != nil {
		prefs.DarkModeEnabled = *patch.DarkModeEnabled
	}
	if patch.OnboardingCompleted != nil {
		prefs.OnboardingCompleted = *patch.OnboardingCompleted
	}
	s.prefs = prefs

	if err := s.states.Save(ctx, preferencesRecord, s.prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// ResetAllData replaces both records with their defaults and persists
// them, as for an account-deletion style reset.
func (s *Service) ResetAllData(ctx context.Context) error {
	s.progress = DefaultProgress()
	s.prefs = DefaultPreferences()

	if err := s.save(ctx); err != nil {
		return err
	}
	if err := s.states.Save(ctx, preferencesRecord, s.prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// WeeklyProgressPercentage is weekly progress over the goal, clamped to
// [0,1]. A non-positive goal reports 0.
func (s *Service) WeeklyProgressPercentage() float64 {
	if s.progress.WeeklyGoal <= 0 {
		return 0.0
	}
	pct := float64(s.progress.WeeklyProgress) / float64(s.progress.WeeklyGoal)
	if pct > 1.0 {
		return 1.0
	}
	return pct
}

// LessonsUntilWeeklyGoal is the number of lessons still needed this week.
func (s *Service) LessonsUntilWeeklyGoal() int {
	remaining := s.progress.WeeklyGoal - s.progress.WeeklyProgress
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AverageTimePerLesson is total minutes over completed lessons, 0 when no
// lessons are completed.
func (s *Service) AverageTimePerLesson() float64 {
	if s.progress.TotalLessonsCompleted <= 0 {
		return 0.0
	}
	return float64(s.progress.TotalTimeSpent) / float64(s.progress.TotalLessonsCompleted)
}

// RecentBadges returns badges earned within the last seven days, newest
// first.
func (s *Service) RecentBadges() []content.Badge {
	cutoff := s.now().AddDate(0, 0, -7)
	var recent []content.Badge
	for _, b := range s.progress.BadgesEarned {
		if b.DateEarned != nil && !b.DateEarned.Before(cutoff) {
			recent = append(recent, b)
		}
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent
}

// StatusMessage picks a short motivational line from the streak and weekly
// percentage.
func (s *Service) StatusMessage() string {
	streak := s.progress.CurrentStreak
	weekly := s.WeeklyProgressPercentage()

	switch {
	case streak >= 7:
		return fmt.Sprintf("Amazing! You're on a %d-day streak!", streak)
	case weekly >= 1.0:
		return "Congratulations! You've reached your weekly goal!"
	case weekly >= 0.8:
		return "You're so close to your weekly goal!"
	case weekly >= 0.5:
		return "Great progress! Keep it up!"
	case streak > 0:
		return "Nice work! You're building a great habit!"
	default:
		return "Ready to start your learning journey?"
	}
}

func (s *Service) save(ctx context.Context) error {
	if err := s.states.Save(ctx, progressRecord, s.progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
