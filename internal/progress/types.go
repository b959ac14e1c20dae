package progress

import (
	"time"

	"github.com/abhisek/lingua/internal/content"
)

// State record names in the persistence store.
const (
	progressRecord    = "user_progress"
	preferencesRecord = "user_preferences"
)

// DefaultWeeklyGoal is the lessons-per-week target assigned at first launch.
const DefaultWeeklyGoal = 5

// UserProgress is the ledger's persisted state: cumulative counters, the
// daily streak, weekly goal tracking, and every badge ever earned.
// Values are reconstructed wholesale on each update and persisted
// write-through.
type UserProgress struct {
	TotalModulesCompleted int             `json:"totalModulesCompleted"`
	TotalLessonsCompleted int             `json:"totalLessonsCompleted"`
	TotalQuizzesCompleted int             `json:"totalQuizzesCompleted"`
	TotalTimeSpent        int             `json:"totalTimeSpent"` // minutes
	CurrentStreak         int             `json:"currentStreak"`  // consecutive days
	LongestStreak         int             `json:"longestStreak"`
	BadgesEarned          []content.Badge `json:"badgesEarned"`
	LastActivityDate      *time.Time      `json:"lastActivityDate,omitempty"`
	WeeklyGoal            int             `json:"weeklyGoal"` // lessons per week
	WeeklyProgress        int             `json:"weeklyProgress"`
}

// DefaultProgress is the first-launch state.
func DefaultProgress() UserProgress {
	return UserProgress{WeeklyGoal: DefaultWeeklyGoal}
}

// LearningGoal is a user-declared motivation for learning.
type LearningGoal string

const (
	GoalTravel   LearningGoal = "Travel"
	GoalBusiness LearningGoal = "Business"
	GoalAcademic LearningGoal = "Academic"
	GoalPersonal LearningGoal = "Personal Interest"
	GoalCareer   LearningGoal = "Career Development"
)

// AllLearningGoals returns all goals in display order.
func AllLearningGoals() []LearningGoal {
	return []LearningGoal{GoalTravel, GoalBusiness, GoalAcademic, GoalPersonal, GoalCareer}
}

// Description returns the display blurb for the goal.
func (g LearningGoal) Description() string {
	switch g {
	case GoalTravel:
		return "Learn for traveling and tourism"
	case GoalBusiness:
		return "Professional communication"
	case GoalAcademic:
		return "Academic studies and research"
	case GoalPersonal:
		return "Personal enrichment and culture"
	case GoalCareer:
		return "Career advancement opportunities"
	default:
		return string(g)
	}
}

// UserPreferences is purely user-declared configuration; there are no
// cross-field invariants.
type UserPreferences struct {
	SelectedLanguages      []string       `json:"selectedLanguages"`
	LearningGoals          []LearningGoal `json:"learningGoals"`
	DailyReminderTime      *time.Time     `json:"dailyReminderTime,omitempty"`
	SoundEnabled           bool           `json:"soundEnabled"`
	HapticFeedbackEnabled  bool           `json:"hapticFeedbackEnabled"`
	DarkModeEnabled        bool           `json:"darkModeEnabled"`
	OnboardingCompleted    bool           `json:"onboardingCompleted"`
}

// DefaultPreferences is the first-launch configuration.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		SoundEnabled:          true,
		HapticFeedbackEnabled: true,
	}
}

// ActivityDelta carries the optional counter updates for RecordActivity.
// Nil fields are untouched. ModulesCompleted replaces the stored counter;
// the other fields are added to it.
type ActivityDelta struct {
	ModulesCompleted *int
	LessonsCompleted *int
	QuizzesCompleted *int
	TimeSpentMinutes *int
}

func (d ActivityDelta) empty() bool {
	return d.ModulesCompleted == nil && d.LessonsCompleted == nil &&
		d.QuizzesCompleted == nil && d.TimeSpentMinutes == nil
}

// PreferencesPatch is a merge-patch over UserPreferences: each non-nil
// field replaces the stored value, nil fields are untouched. The reminder
// is optional in the record itself, so clearing it needs its own flag
// rather than a nil pointer.
type PreferencesPatch struct {
	SelectedLanguages     *[]string
	LearningGoals         *[]LearningGoal
	DailyReminderTime     *time.Time
	ClearDailyReminder    bool
	SoundEnabled          *bool
	HapticFeedbackEnabled *bool
	DarkModeEnabled       *bool
	OnboardingCompleted   *bool
}
