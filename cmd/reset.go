package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all learner data",
	Long:  "Replaces progress and preferences with their defaults. The event log is kept for history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases all progress, streaks, and badges. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted")
				return nil
			}
		}

		st, ledger, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := ledger.ResetAllData(cmd.Context()); err != nil {
			return fmt.Errorf("reset data: %w", err)
		}
		fmt.Println("All learner data reset to defaults")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
