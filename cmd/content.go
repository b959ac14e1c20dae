package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with content files",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a JSON content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.LoadCatalog(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		lessons, quizzes := 0, 0
		for _, m := range catalog.Modules() {
			lessons += len(m.Lessons)
			quizzes += len(m.Quizzes)
		}
		fmt.Printf("%s: OK (%d modules, %d lessons, %d quizzes)\n",
			args[0], len(catalog.Modules()), lessons, quizzes)
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
