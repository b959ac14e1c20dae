package content

import "strings"

// Difficulty is a module's difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties returns all difficulties in severity order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Rank returns the severity order of the difficulty, beginner first.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return -1
	}
}

// Color returns the display color for the difficulty.
func (d Difficulty) Color() string {
	switch d {
	case DifficultyBeginner:
		return "#4CAF50"
	case DifficultyIntermediate:
		return "#FF9800"
	case DifficultyAdvanced:
		return "#F44336"
	default:
		return "#9E9E9E"
	}
}

// LessonType categorizes what a lesson teaches.
type LessonType string

const (
	LessonVocabulary   LessonType = "Vocabulary"
	LessonGrammar      LessonType = "Grammar"
	LessonConversation LessonType = "Conversation"
	LessonListening    LessonType = "Listening"
	LessonReading      LessonType = "Reading"
	LessonWriting      LessonType = "Writing"
)

// Icon returns the display icon name for the lesson type.
func (t LessonType) Icon() string {
	switch t {
	case LessonVocabulary:
		return "book.fill"
	case LessonGrammar:
		return "textformat"
	case LessonConversation:
		return "bubble.left.and.bubble.right.fill"
	case LessonListening:
		return "ear.fill"
	case LessonReading:
		return "doc.text.fill"
	case LessonWriting:
		return "pencil"
	default:
		return "questionmark"
	}
}

// ExerciseType categorizes how an exercise's content is interpreted.
type ExerciseType string

const (
	ExerciseFillInBlank    ExerciseType = "Fill in the Blank"
	ExerciseMultipleChoice ExerciseType = "Multiple Choice"
	ExerciseTranslation    ExerciseType = "Translation"
	ExerciseMatching       ExerciseType = "Matching"
	ExerciseSpeaking       ExerciseType = "Speaking"
	ExerciseListening      ExerciseType = "Listening"
)

// Icon returns the display icon name for the exercise type.
func (t ExerciseType) Icon() string {
	switch t {
	case ExerciseFillInBlank:
		return "square.and.pencil"
	case ExerciseMultipleChoice:
		return "list.bullet.circle"
	case ExerciseTranslation:
		return "arrow.left.arrow.right"
	case ExerciseMatching:
		return "link"
	case ExerciseSpeaking:
		return "mic.fill"
	case ExerciseListening:
		return "speaker.wave.2.fill"
	default:
		return "questionmark"
	}
}

// optionDelimiter joins multiple-choice options in exercise content.
const optionDelimiter = "|"

func splitOptions(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(content, optionDelimiter)
}
