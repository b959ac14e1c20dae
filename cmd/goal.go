package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [lessons-per-week]",
	Short: "Show or set the weekly lesson goal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ledger, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("goal must be a non-negative number, got %q", args[0])
			}
			if err := ledger.SetWeeklyGoal(cmd.Context(), n); err != nil {
				return fmt.Errorf("set weekly goal: %w", err)
			}
			fmt.Printf("Weekly goal set to %d lesson(s)\n", n)
			return nil
		}

		p := ledger.Progress()
		fmt.Printf("Weekly goal: %d lesson(s), %d done (%.0f%%)\n",
			p.WeeklyGoal, p.WeeklyProgress, ledger.WeeklyProgressPercentage()*100)
		return nil
	},
}

var goalResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset this week's progress to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ledger, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := ledger.ResetWeeklyProgress(cmd.Context()); err != nil {
			return fmt.Errorf("reset weekly progress: %w", err)
		}
		fmt.Println("Weekly progress reset")
		return nil
	},
}

func init() {
	goalCmd.AddCommand(goalResetCmd)
}
