package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/progress"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ledger, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		patch, changed, err := buildPatch(cmd)
		if err != nil {
			return err
		}
		if changed {
			if err := ledger.UpdatePreferences(cmd.Context(), patch); err != nil {
				return fmt.Errorf("update preferences: %w", err)
			}
		}

		prefs := ledger.Preferences()
		fmt.Printf("Languages       %s\n", orNone(strings.Join(prefs.SelectedLanguages, ", ")))
		goals := make([]string, len(prefs.LearningGoals))
		for i, g := range prefs.LearningGoals {
			goals[i] = string(g)
		}
		fmt.Printf("Learning goals  %s\n", orNone(strings.Join(goals, ", ")))
		if prefs.DailyReminderTime != nil {
			fmt.Printf("Daily reminder  %s\n", prefs.DailyReminderTime.Format("15:04"))
		} else {
			fmt.Printf("Daily reminder  (off)\n")
		}
		fmt.Printf("Sound           %s\n", onOff(prefs.SoundEnabled))
		fmt.Printf("Haptics         %s\n", onOff(prefs.HapticFeedbackEnabled))
		fmt.Printf("Dark mode       %s\n", onOff(prefs.DarkModeEnabled))
		fmt.Printf("Onboarded       %s\n", onOff(prefs.OnboardingCompleted))
		return nil
	},
}

// buildPatch converts the supplied flags into a merge patch. Only flags the
// user actually set end up in the patch.
func buildPatch(cmd *cobra.Command) (progress.PreferencesPatch, bool, error) {
	var patch progress.PreferencesPatch
	changed := false

	if cmd.Flags().Changed("languages") {
		raw, _ := cmd.Flags().GetString("languages")
		langs := splitCSV(raw)
		patch.SelectedLanguages = &langs
		changed = true
	}
	if cmd.Flags().Changed("goals") {
		raw, _ := cmd.Flags().GetString("goals")
		var goals []progress.LearningGoal
		for _, g := range splitCSV(raw) {
			goals = append(goals, progress.LearningGoal(g))
		}
		patch.LearningGoals = &goals
		changed = true
	}
	if cmd.Flags().Changed("reminder") {
		raw, _ := cmd.Flags().GetString("reminder")
		if raw == "" || raw == "off" {
			patch.ClearDailyReminder = true
		} else {
			at, err := time.Parse("15:04", raw)
			if err != nil {
				return patch, false, fmt.Errorf("reminder must be HH:MM or off, got %q", raw)
			}
			patch.DailyReminderTime = &at
		}
		changed = true
	}
	for flag, field := range map[string]**bool{
		"sound":     &patch.SoundEnabled,
		"haptics":   &patch.HapticFeedbackEnabled,
		"dark-mode": &patch.DarkModeEnabled,
		"onboarded": &patch.OnboardingCompleted,
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetBool(flag)
			*field = &v
			changed = true
		}
	}
	return patch, changed, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	settingsCmd.Flags().String("languages", "", "Comma-separated language list")
	settingsCmd.Flags().String("goals", "", "Comma-separated learning goals")
	settingsCmd.Flags().String("reminder", "", "Daily reminder time (HH:MM, or off to disable)")
	settingsCmd.Flags().Bool("sound", true, "Enable sound")
	settingsCmd.Flags().Bool("haptics", true, "Enable haptic feedback")
	settingsCmd.Flags().Bool("dark-mode", false, "Enable dark mode")
	settingsCmd.Flags().Bool("onboarded", false, "Mark onboarding as completed")
}
