package content

import "fmt"

// Validate checks the semantic invariants the schema can't express.
// Content defects are authoring errors, caught at load time; the runtime
// engine assumes validated content.
func Validate(modules []Module) error {
	for _, m := range modules {
		if m.Title == "" {
			return fmt.Errorf("module %s: empty title", m.ID)
		}
		if m.Difficulty.Rank() < 0 {
			return fmt.Errorf("module %q: unknown difficulty %q", m.Title, m.Difficulty)
		}
		for _, q := range m.Quizzes {
			if q.PassingScore < 0 || q.PassingScore > 100 {
				return fmt.Errorf("quiz %q: passing score %d out of range [0,100]", q.Title, q.PassingScore)
			}
			for _, question := range q.Questions {
				if len(question.Options) == 0 {
					return fmt.Errorf("quiz %q: question %q has no options", q.Title, question.Text)
				}
				if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
					return fmt.Errorf("quiz %q: question %q correct answer index %d out of range [0,%d)",
						q.Title, question.Text, question.CorrectAnswer, len(question.Options))
				}
			}
		}
		for _, l := range m.Lessons {
			for _, e := range l.Exercises {
				if e.CorrectAnswer == "" {
					return fmt.Errorf("lesson %q: exercise %q has no correct answer", l.Title, e.Instruction)
				}
			}
		}
	}
	return nil
}
