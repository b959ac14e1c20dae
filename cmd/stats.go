package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ledger, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := ledger.Progress()

		fmt.Println(ledger.StatusMessage())
		fmt.Println()
		fmt.Printf("Lessons completed   %d\n", p.TotalLessonsCompleted)
		fmt.Printf("Quizzes completed   %d\n", p.TotalQuizzesCompleted)
		fmt.Printf("Modules completed   %d\n", p.TotalModulesCompleted)
		fmt.Printf("Time spent          %d min", p.TotalTimeSpent)
		if avg := ledger.AverageTimePerLesson(); avg > 0 {
			fmt.Printf(" (%.1f min/lesson)", avg)
		}
		fmt.Println()
		fmt.Printf("Current streak      %d day(s)\n", p.CurrentStreak)
		fmt.Printf("Longest streak      %d day(s)\n", p.LongestStreak)

		fmt.Println()
		pct := ledger.WeeklyProgressPercentage()
		fmt.Printf("Weekly goal         %d/%d lessons  %s %3.0f%%\n",
			p.WeeklyProgress, p.WeeklyGoal, progressBar(pct, 20), pct*100)
		if left := ledger.LessonsUntilWeeklyGoal(); left > 0 {
			fmt.Printf("                    %d to go\n", left)
		}

		if len(p.BadgesEarned) > 0 {
			fmt.Println()
			fmt.Printf("Badges (%d)\n", len(p.BadgesEarned))
			for _, b := range p.BadgesEarned {
				line := fmt.Sprintf("  %s — %s", b.Name, b.Description)
				if b.DateEarned != nil {
					line += " (" + b.DateEarned.Format("Jan 2") + ")"
				}
				fmt.Println(line)
			}
		}

		days, _ := cmd.Flags().GetInt("days")
		history, err := st.EventRepo().ActivityByDay(cmd.Context(), days)
		if err != nil {
			return fmt.Errorf("load activity history: %w", err)
		}
		fmt.Println()
		fmt.Printf("Last %d days\n", days)
		for _, d := range history {
			fmt.Printf("  %s  %-10s %s\n",
				d.Day.Format("Mon Jan 02"),
				fmt.Sprintf("%dL/%dQ", d.Lessons, d.Quizzes),
				strings.Repeat("▪", d.Lessons+d.Quizzes))
		}
		return nil
	},
}

// progressBar renders pct (0..1) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	statsCmd.Flags().Int("days", 7, "Days of activity history to show")
}
