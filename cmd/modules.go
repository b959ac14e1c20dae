package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the content catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%-24s  %-10s  %-12s  %7s  %7s  %s\n",
			"Title", "Language", "Difficulty", "Lessons", "Quizzes", "Est.")
		fmt.Println(strings.Repeat("─", 80))

		for _, m := range catalog.Modules() {
			title := m.Title
			if len(title) > 24 {
				title = title[:21] + "..."
			}
			fmt.Printf("%-24s  %-10s  %-12s  %7d  %7d  %d min\n",
				title, m.Language, m.Difficulty,
				len(m.Lessons), len(m.Quizzes), m.EstimatedTime)
		}
		fmt.Printf("\n%d modules\n", len(catalog.Modules()))
		return nil
	},
}

var modulesShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a module's lessons and quizzes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		for _, m := range catalog.Modules() {
			if !strings.EqualFold(m.Title, args[0]) {
				continue
			}
			fmt.Printf("%s (%s, %s)\n%s\n\n", m.Title, m.Language, m.Difficulty, m.Description)
			fmt.Println("Lessons:")
			for i, l := range m.Lessons {
				fmt.Printf("  %d. %-28s %-12s %d exercise(s), %d word(s)\n",
					i+1, l.Title, l.Type, len(l.Exercises), len(l.Vocabulary))
			}
			fmt.Println("Quizzes:")
			for i, q := range m.Quizzes {
				fmt.Printf("  %d. %-28s %d question(s), pass at %d%%\n",
					i+1, q.Title, len(q.Questions), q.PassingScore)
			}
			return nil
		}
		return fmt.Errorf("no module titled %q", args[0])
	},
}

func init() {
	modulesCmd.AddCommand(modulesShowCmd)
}
