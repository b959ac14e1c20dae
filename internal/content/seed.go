package content

import "github.com/google/uuid"

// SeedCatalog builds the built-in sample catalog. Content files loaded via
// LoadCatalog replace this without changing the engine's contract.
func SeedCatalog() *Catalog {
	return NewCatalog([]Module{
		{
			ID:            uuid.New(),
			Title:         "Spanish Basics",
			Description:   "Learn fundamental Spanish vocabulary and phrases for everyday conversations.",
			Language:      "Spanish",
			Difficulty:    DifficultyBeginner,
			EstimatedTime: 45,
			Lessons:       sampleLessons("Spanish"),
			Quizzes:       sampleQuizzes("Spanish"),
		},
		{
			ID:            uuid.New(),
			Title:         "French Essentials",
			Description:   "Master essential French grammar and vocabulary for travel and business.",
			Language:      "French",
			Difficulty:    DifficultyIntermediate,
			EstimatedTime: 60,
			Lessons:       sampleLessons("French"),
			Quizzes:       sampleQuizzes("French"),
		},
		{
			ID:            uuid.New(),
			Title:         "German Fundamentals",
			Description:   "Explore German language structure and common expressions.",
			Language:      "German",
			Difficulty:    DifficultyBeginner,
			EstimatedTime: 50,
			Lessons:       sampleLessons("German"),
			Quizzes:       sampleQuizzes("German"),
		},
		{
			ID:            uuid.New(),
			Title:         "Italian Conversation",
			Description:   "Practice Italian through real-life scenarios and cultural contexts.",
			Language:      "Italian",
			Difficulty:    DifficultyIntermediate,
			EstimatedTime: 55,
			Lessons:       sampleLessons("Italian"),
			Quizzes:       sampleQuizzes("Italian"),
		},
	})
}

func sampleLessons(language string) []Lesson {
	vocab := sampleVocabulary(language)
	exercises := sampleExercises(language)

	return []Lesson{
		{
			ID:    uuid.New(),
			Title: "Basic Greetings",
			Content: "Learn how to greet people and introduce yourself in " + language +
				". This lesson covers formal and informal greetings, appropriate responses, and cultural context.",
			Type:       LessonVocabulary,
			Vocabulary: take(vocab, 0, 5),
			Exercises:  take(exercises, 0, 3),
		},
		{
			ID:    uuid.New(),
			Title: "Numbers and Time",
			Content: "Master numbers from 1-100 and learn to tell time in " + language +
				". Practice with real-world scenarios like shopping and scheduling.",
			Type:       LessonVocabulary,
			Vocabulary: take(vocab, 5, 5),
			Exercises:  take(exercises, 3, 3),
		},
		{
			ID:    uuid.New(),
			Title: "Daily Conversations",
			Content: "Engage in everyday conversations about weather, food, and activities. " +
				"Build confidence in speaking through interactive dialogues.",
			Type:       LessonConversation,
			Vocabulary: take(vocab, 10, 5),
			Exercises:  take(exercises, 6, 3),
		},
	}
}

// take returns up to n items of s starting at offset, tolerating short slices.
func take[T any](s []T, offset, n int) []T {
	if offset >= len(s) {
		return nil
	}
	end := offset + n
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end]
}

func sampleQuizzes(language string) []Quiz {
	return []Quiz{
		{
			ID:           uuid.New(),
			Title:        language + " Basics Quiz",
			Questions:    sampleQuestions(language),
			PassingScore: 70,
		},
	}
}

func sampleQuestions(language string) []Question {
	switch language {
	case "Spanish":
		return []Question{
			{
				ID:            uuid.New(),
				Text:          "How do you say 'Hello' in Spanish?",
				Options:       []string{"Hola", "Adiós", "Gracias", "Por favor"},
				CorrectAnswer: 0,
				Explanation:   "'Hola' is the most common way to say hello in Spanish.",
			},
			{
				ID:            uuid.New(),
				Text:          "What does 'Gracias' mean?",
				Options:       []string{"Please", "Sorry", "Thank you", "Excuse me"},
				CorrectAnswer: 2,
				Explanation:   "'Gracias' means 'thank you' in Spanish.",
			},
			{
				ID:            uuid.New(),
				Text:          "How do you say 'Good morning' in Spanish?",
				Options:       []string{"Buenas noches", "Buenos días", "Buenas tardes", "Hasta luego"},
				CorrectAnswer: 1,
				Explanation:   "'Buenos días' means 'good morning' in Spanish.",
			},
		}
	case "French":
		return []Question{
			{
				ID:            uuid.New(),
				Text:          "How do you say 'Hello' in French?",
				Options:       []string{"Bonjour", "Au revoir", "Merci", "S'il vous plaît"},
				CorrectAnswer: 0,
				Explanation:   "'Bonjour' is the standard greeting in French.",
			},
			{
				ID:            uuid.New(),
				Text:          "What does 'Merci' mean?",
				Options:       []string{"Please", "Sorry", "Thank you", "Excuse me"},
				CorrectAnswer: 2,
				Explanation:   "'Merci' means 'thank you' in French.",
			},
		}
	case "German":
		return []Question{
			{
				ID:            uuid.New(),
				Text:          "How do you say 'Hello' in German?",
				Options:       []string{"Hallo", "Auf Wiedersehen", "Danke", "Bitte"},
				CorrectAnswer: 0,
				Explanation:   "'Hallo' is a common way to say hello in German.",
			},
			{
				ID:            uuid.New(),
				Text:          "What does 'Danke' mean?",
				Options:       []string{"Please", "Sorry", "Thank you", "Excuse me"},
				CorrectAnswer: 2,
				Explanation:   "'Danke' means 'thank you' in German.",
			},
		}
	case "Italian":
		return []Question{
			{
				ID:            uuid.New(),
				Text:          "How do you say 'Hello' in Italian?",
				Options:       []string{"Ciao", "Arrivederci", "Grazie", "Prego"},
				CorrectAnswer: 0,
				Explanation:   "'Ciao' is a casual way to say hello in Italian.",
			},
			{
				ID:            uuid.New(),
				Text:          "What does 'Grazie' mean?",
				Options:       []string{"Please", "Sorry", "Thank you", "Excuse me"},
				CorrectAnswer: 2,
				Explanation:   "'Grazie' means 'thank you' in Italian.",
			},
		}
	default:
		return nil
	}
}

func sampleVocabulary(language string) []VocabularyItem {
	var items []struct{ word, translation, pronunciation, example string }
	switch language {
	case "Spanish":
		items = []struct{ word, translation, pronunciation, example string }{
			{"Hola", "Hello", "OH-lah", "Hola, ¿cómo estás?"},
			{"Gracias", "Thank you", "GRAH-see-ahs", "Gracias por tu ayuda."},
			{"Por favor", "Please", "por fah-VOR", "Un café, por favor."},
			{"Adiós", "Goodbye", "ah-DYOHS", "Adiós, hasta mañana."},
			{"Sí", "Yes", "see", "Sí, me gusta."},
			{"No", "No", "noh", "No, no quiero."},
			{"Agua", "Water", "AH-gwah", "Quiero agua, por favor."},
			{"Comida", "Food", "koh-MEE-dah", "La comida está deliciosa."},
			{"Casa", "House", "KAH-sah", "Mi casa es grande."},
			{"Tiempo", "Time/Weather", "TYEM-poh", "¿Qué tiempo hace?"},
		}
	case "French":
		items = []struct{ word, translation, pronunciation, example string }{
			{"Bonjour", "Hello", "bon-ZHOOR", "Bonjour, comment allez-vous?"},
			{"Merci", "Thank you", "mer-SEE", "Merci beaucoup!"},
			{"S'il vous plaît", "Please", "seel voo PLEH", "Un café, s'il vous plaît."},
			{"Au revoir", "Goodbye", "oh ruh-VWAHR", "Au revoir, à bientôt!"},
			{"Oui", "Yes", "wee", "Oui, c'est correct."},
			{"Non", "No", "nohn", "Non, merci."},
			{"Eau", "Water", "oh", "Je voudrais de l'eau."},
			{"Nourriture", "Food", "noo-ree-TOOR", "J'aime cette nourriture."},
			{"Maison", "House", "meh-ZOHN", "Ma maison est belle."},
			{"Temps", "Time/Weather", "tahn", "Quel temps fait-il?"},
		}
	case "German":
		items = []struct{ word, translation, pronunciation, example string }{
			{"Hallo", "Hello", "HAH-loh", "Hallo, wie geht es dir?"},
			{"Danke", "Thank you", "DAHN-keh", "Danke schön!"},
			{"Bitte", "Please", "BIT-teh", "Ein Kaffee, bitte."},
			{"Auf Wiedersehen", "Goodbye", "owf VEE-der-zayn", "Auf Wiedersehen, bis morgen!"},
			{"Ja", "Yes", "yah", "Ja, das ist richtig."},
			{"Nein", "No", "nine", "Nein, danke."},
			{"Wasser", "Water", "VAH-ser", "Ich möchte Wasser."},
			{"Essen", "Food", "ES-sen", "Das Essen schmeckt gut."},
			{"Haus", "House", "house", "Mein Haus ist groß."},
			{"Zeit", "Time", "tsight", "Wie spät ist es?"},
		}
	case "Italian":
		items = []struct{ word, translation, pronunciation, example string }{
			{"Ciao", "Hello/Bye", "chow", "Ciao, come stai?"},
			{"Grazie", "Thank you", "GRAH-tsee-eh", "Grazie mille!"},
			{"Prego", "Please/You're welcome", "PREH-goh", "Un caffè, prego."},
			{"Arrivederci", "Goodbye", "ah-ree-veh-DEHR-chee", "Arrivederci, a presto!"},
			{"Sì", "Yes", "see", "Sì, è vero."},
			{"No", "No", "noh", "No, grazie."},
			{"Acqua", "Water", "AH-kwah", "Vorrei dell'acqua."},
			{"Cibo", "Food", "CHEE-boh", "Il cibo è delizioso."},
			{"Casa", "House", "KAH-sah", "La mia casa è bella."},
			{"Tempo", "Time/Weather", "TEM-poh", "Che tempo fa?"},
		}
	default:
		return nil
	}

	vocab := make([]VocabularyItem, len(items))
	for i, it := range items {
		vocab[i] = VocabularyItem{
			ID:            uuid.New(),
			Word:          it.word,
			Translation:   it.translation,
			Pronunciation: it.pronunciation,
			Example:       it.example,
		}
	}
	return vocab
}

func sampleExercises(language string) []Exercise {
	switch language {
	case "Spanish":
		return []Exercise{
			{
				ID:            uuid.New(),
				Instruction:   "Fill in the blank with the correct greeting",
				Type:          ExerciseFillInBlank,
				Content:       "_____, ¿cómo estás?",
				CorrectAnswer: "Hola",
			},
			{
				ID:            uuid.New(),
				Instruction:   "Choose the correct translation for 'Thank you'",
				Type:          ExerciseMultipleChoice,
				Content:       "Gracias|Por favor|Adiós|Hola",
				CorrectAnswer: "Gracias",
			},
			{
				ID:            uuid.New(),
				Instruction:   "Translate to Spanish: 'Please'",
				Type:          ExerciseTranslation,
				Content:       "Please",
				CorrectAnswer: "Por favor",
			},
		}
	case "French":
		return []Exercise{
			{
				ID:            uuid.New(),
				Instruction:   "Fill in the blank with the correct greeting",
				Type:          ExerciseFillInBlank,
				Content:       "_____, comment allez-vous?",
				CorrectAnswer: "Bonjour",
			},
			{
				ID:            uuid.New(),
				Instruction:   "Choose the correct translation for 'Thank you'",
				Type:          ExerciseMultipleChoice,
				Content:       "Merci|S'il vous plaît|Au revoir|Bonjour",
				CorrectAnswer: "Merci",
			},
			{
				ID:            uuid.New(),
				Instruction:   "Translate to French: 'Please'",
				Type:          ExerciseTranslation,
				Content:       "Please",
				CorrectAnswer: "S'il vous plaît",
			},
		}
	default:
		return nil
	}
}
