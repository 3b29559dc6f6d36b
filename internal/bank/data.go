package bank

import "github.com/linguaplay/practice-service/internal/models"

// Embedded question banks, one per game type. Content is authored by the
// curriculum team; the service treats it as read-only.

func boolPtr(b bool) *bool { return &b }

var fillBlanksQuestions = []models.Question{
	{
		ID:            "fb-1",
		Type:          models.FillBlanks,
		Prompt:        "She ___ to the store yesterday.",
		Options:       []string{"go", "goes", "went", "going"},
		CorrectAnswer: "went",
		Explanation:   `Use past tense "went" because the action happened "yesterday" (past time marker).`,
	},
	{
		ID:            "fb-2",
		Type:          models.FillBlanks,
		Prompt:        "If I ___ rich, I would travel the world.",
		Options:       []string{"am", "was", "were", "be"},
		CorrectAnswer: "were",
		Explanation:   `In conditional sentences expressing unreal situations, we use "were" for all subjects (subjunctive mood).`,
	},
	{
		ID:            "fb-3",
		Type:          models.FillBlanks,
		Prompt:        "Neither the teacher nor the students ___ ready for the test.",
		Options:       []string{"is", "are", "was", "were"},
		CorrectAnswer: "were",
		Explanation:   `With "neither...nor", the verb agrees with the nearest subject ("students" - plural), hence "were".`,
	},
	{
		ID:            "fb-4",
		Type:          models.FillBlanks,
		Prompt:        "By the time we arrive, the movie ___ already started.",
		Options:       []string{"has", "have", "will have", "had"},
		CorrectAnswer: "will have",
		Explanation:   `Future perfect tense ("will have") is used for actions that will be completed before a future time.`,
	},
	{
		ID:            "fb-5",
		Type:          models.FillBlanks,
		Prompt:        "The news ___ shocking to everyone.",
		Options:       []string{"is", "are", "were", "have been"},
		CorrectAnswer: "is",
		Explanation:   `"News" is an uncountable noun that takes a singular verb, even though it ends in "s".`,
	},
}

var sentenceCorrectionQuestions = []models.Question{
	{
		ID:            "sc-1",
		Type:          models.SentenceCorrection,
		Prompt:        "Find and fix the error:",
		Sentence:      "He don't know the answer to the question.",
		Options:       []string{"He doesn't know the answer to the question.", "He do not know the answer to the question.", "He don't knows the answer to the question.", "No error"},
		CorrectAnswer: "He doesn't know the answer to the question.",
		Explanation:   `Third person singular subjects (he, she, it) require "doesn't" instead of "don't".`,
	},
	{
		ID:            "sc-2",
		Type:          models.SentenceCorrection,
		Prompt:        "Find and fix the error:",
		Sentence:      "Me and my friend went to the park.",
		Options:       []string{"My friend and I went to the park.", "I and my friend went to the park.", "My friend and me went to the park.", "No error"},
		CorrectAnswer: "My friend and I went to the park.",
		Explanation:   `Use "I" (not "me") as a subject. Also, it's polite to mention yourself last.`,
	},
	{
		ID:            "sc-3",
		Type:          models.SentenceCorrection,
		Prompt:        "Find and fix the error:",
		Sentence:      "Their going to the store later today.",
		Options:       []string{"They're going to the store later today.", "There going to the store later today.", "Their are going to the store later today.", "No error"},
		CorrectAnswer: "They're going to the store later today.",
		Explanation:   `"They're" (they are) is needed here, not "their" (possessive) or "there" (location).`,
	},
	{
		ID:            "sc-4",
		Type:          models.SentenceCorrection,
		Prompt:        "Find and fix the error:",
		Sentence:      "The team have won the championship.",
		Options:       []string{"The team has won the championship.", "The team had won the championship.", "The teams have won the championship.", "No error"},
		CorrectAnswer: "The team has won the championship.",
		Explanation:   `Collective nouns like "team" typically take singular verbs in American English.`,
	},
	{
		ID:            "sc-5",
		Type:          models.SentenceCorrection,
		Prompt:        "Find and fix the error:",
		Sentence:      "She speaks English more better than her sister.",
		Options:       []string{"She speaks English better than her sister.", "She speaks English more good than her sister.", "She speaks English most better than her sister.", "No error"},
		CorrectAnswer: "She speaks English better than her sister.",
		Explanation:   `"Better" is already a comparative form. Don't use "more" with it (double comparative error).`,
	},
}

var wordOrderQuestions = []models.Question{
	{
		ID:            "wo-1",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words to form a correct sentence:",
		Words:         []string{"always", "she", "breakfast", "eats", "morning", "in", "the"},
		CorrectAnswer: "She always eats breakfast in the morning.",
		Explanation:   "Adverbs of frequency (always) typically come after the subject and before the main verb.",
	},
	{
		ID:            "wo-2",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words to form a correct sentence:",
		Words:         []string{"never", "have", "I", "to", "Japan", "been"},
		CorrectAnswer: "I have never been to Japan.",
		Explanation:   `In present perfect, "never" goes between "have" and the past participle.`,
	},
	{
		ID:            "wo-3",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words to form a correct sentence:",
		Words:         []string{"is", "what", "doing", "he", "now", "right"},
		CorrectAnswer: "What is he doing right now?",
		Explanation:   "Question words come first, followed by auxiliary verb, subject, main verb, and time expression.",
	},
	{
		ID:            "wo-4",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words to form a correct sentence:",
		Words:         []string{"quickly", "ran", "the", "dog", "very", "home"},
		CorrectAnswer: "The dog ran home very quickly.",
		Explanation:   `Standard order: Subject + Verb + Place + Manner adverb. "Very" modifies "quickly".`,
	},
	{
		ID:            "wo-5",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words to form a correct sentence:",
		Words:         []string{"beautiful", "a", "is", "this", "really", "painting"},
		CorrectAnswer: "This is a really beautiful painting.",
		Explanation:   "Demonstrative + verb + article + adverb + adjective + noun.",
	},
}

var matchPairsQuestions = []models.Question{
	{
		ID:     "mp-1",
		Type:   models.MatchPairs,
		Prompt: "Match each word with its opposite:",
		Pairs: []models.Pair{
			{Left: "ancient", Right: "modern"},
			{Left: "generous", Right: "stingy"},
			{Left: "expand", Right: "shrink"},
			{Left: "rough", Right: "smooth"},
		},
		CorrectAnswer: "ancient/modern, generous/stingy, expand/shrink, rough/smooth",
		Explanation:   "These antonym pairs are common in descriptive writing; learning them together helps recall.",
	},
	{
		ID:     "mp-2",
		Type:   models.MatchPairs,
		Prompt: "Match each verb with its irregular past tense:",
		Pairs: []models.Pair{
			{Left: "teach", Right: "taught"},
			{Left: "swim", Right: "swam"},
			{Left: "fly", Right: "flew"},
			{Left: "bite", Right: "bit"},
		},
		CorrectAnswer: "teach/taught, swim/swam, fly/flew, bite/bit",
		Explanation:   "Irregular verbs don't follow the -ed rule; their past forms must be memorized.",
	},
	{
		ID:     "mp-3",
		Type:   models.MatchPairs,
		Prompt: "Match each word with its synonym:",
		Pairs: []models.Pair{
			{Left: "happy", Right: "delighted"},
			{Left: "angry", Right: "furious"},
			{Left: "tired", Right: "exhausted"},
			{Left: "scared", Right: "terrified"},
		},
		CorrectAnswer: "happy/delighted, angry/furious, tired/exhausted, scared/terrified",
		Explanation:   "Each right-hand word is a stronger synonym of its partner; good for varying intensity.",
	},
	{
		ID:     "mp-4",
		Type:   models.MatchPairs,
		Prompt: "Match each animal with its young:",
		Pairs: []models.Pair{
			{Left: "dog", Right: "puppy"},
			{Left: "cat", Right: "kitten"},
			{Left: "cow", Right: "calf"},
			{Left: "sheep", Right: "lamb"},
		},
		CorrectAnswer: "dog/puppy, cat/kitten, cow/calf, sheep/lamb",
		Explanation:   "English often uses a completely different word for a young animal.",
	},
}

var multipleChoiceQuestions = []models.Question{
	{
		ID:            "mc-1",
		Type:          models.MultipleChoice,
		Prompt:        "Which sentence uses the present perfect correctly?",
		Options:       []string{"I have seen that movie last week.", "I have seen that movie already.", "I seen that movie already.", "I am seen that movie."},
		CorrectAnswer: "I have seen that movie already.",
		Explanation:   `Present perfect pairs with "already", not with finished-time markers like "last week".`,
	},
	{
		ID:            "mc-2",
		Type:          models.MultipleChoice,
		Prompt:        "Choose the correct article: \"She adopted ___ unusual cat.\"",
		Options:       []string{"a", "an", "the", "no article"},
		CorrectAnswer: "an",
		Explanation:   `"Unusual" begins with a vowel sound, so it takes "an".`,
	},
	{
		ID:            "mc-3",
		Type:          models.MultipleChoice,
		Prompt:        "Which word is an adverb?",
		Options:       []string{"quick", "quickness", "quickly", "quicken"},
		CorrectAnswer: "quickly",
		Explanation:   `Most adverbs of manner are formed by adding "-ly" to an adjective.`,
	},
	{
		ID:            "mc-4",
		Type:          models.MultipleChoice,
		Prompt:        "Pick the correct comparative: \"This puzzle is ___ than the last one.\"",
		Options:       []string{"more hard", "harder", "hardest", "most hard"},
		CorrectAnswer: "harder",
		Explanation:   `One-syllable adjectives form the comparative with "-er", not "more".`,
	},
	{
		ID:            "mc-5",
		Type:          models.MultipleChoice,
		Prompt:        "Which sentence is in the passive voice?",
		Options:       []string{"The chef cooked the meal.", "The meal was cooked by the chef.", "The chef is cooking the meal.", "The chef will cook the meal."},
		CorrectAnswer: "The meal was cooked by the chef.",
		Explanation:   `Passive voice: form of "be" + past participle, with the doer in a "by" phrase or omitted.`,
	},
}

var spotErrorQuestions = []models.Question{
	{
		ID:            "se-1",
		Type:          models.SpotError,
		Prompt:        "Click the word that contains an error:",
		Sentence:      "She have three cats and two dogs.",
		CorrectAnswer: "have",
		Explanation:   `Third person singular "she" requires "has", not "have".`,
	},
	{
		ID:            "se-2",
		Type:          models.SpotError,
		Prompt:        "Click the word that contains an error:",
		Sentence:      "The children was playing in the garden.",
		CorrectAnswer: "was",
		Explanation:   `"Children" is plural, so the verb must be "were".`,
	},
	{
		ID:            "se-3",
		Type:          models.SpotError,
		Prompt:        "Click the word that contains an error:",
		Sentence:      "He goed to school by bus every day.",
		CorrectAnswer: "goed",
		Explanation:   `"Go" is irregular; the past tense is "went", and with "every day" the present "goes" fits best.`,
	},
	{
		ID:            "se-4",
		Type:          models.SpotError,
		Prompt:        "Click the word that contains an error:",
		Sentence:      "There are less people here than yesterday.",
		CorrectAnswer: "less",
		Explanation:   `Use "fewer" with countable nouns like "people"; "less" is for uncountable nouns.`,
	},
	{
		ID:            "se-5",
		Type:          models.SpotError,
		Prompt:        "Click the word that contains an error:",
		Sentence:      "Him and I finished the project on time.",
		CorrectAnswer: "Him",
		Explanation:   `Subject position needs the subject pronoun "He", not the object pronoun "Him".`,
	},
}

var transformSentenceQuestions = []models.Question{
	{
		ID:            "ts-1",
		Type:          models.TransformSentence,
		Prompt:        "Rewrite in the passive voice:",
		Sentence:      "The gardener waters the plants.",
		TransformRule: "active to passive",
		CorrectAnswer: "The plants are watered by the gardener.",
		Explanation:   "Passive voice: the object becomes the subject, with a form of \"be\" + past participle.",
	},
	{
		ID:            "ts-2",
		Type:          models.TransformSentence,
		Prompt:        "Rewrite as a question:",
		Sentence:      "She can speak French.",
		TransformRule: "statement to question",
		CorrectAnswer: "Can she speak French?",
		Explanation:   "With modal verbs, invert the modal and the subject to form a question.",
	},
	{
		ID:            "ts-3",
		Type:          models.TransformSentence,
		Prompt:        "Rewrite in reported speech, starting with \"He said\":",
		Sentence:      "\"I am tired,\" he said.",
		TransformRule: "direct to reported speech",
		CorrectAnswer: "He said that he was tired.",
		Explanation:   "In reported speech, present tense shifts back to past and pronouns adjust.",
	},
	{
		ID:            "ts-4",
		Type:          models.TransformSentence,
		Prompt:        "Rewrite in the negative:",
		Sentence:      "They arrived before noon.",
		TransformRule: "affirmative to negative",
		CorrectAnswer: "They did not arrive before noon.",
		Explanation:   "Past simple negatives use \"did not\" plus the base form of the verb.",
	},
}

var contextCluesQuestions = []models.Question{
	{
		ID:            "cc-1",
		Type:          models.ContextClues,
		Prompt:        "Use the context to choose the missing word:",
		Sentence:      "The hikers were ___ after walking all day without a break.",
		Options:       []string{"exhausted", "delighted", "punctual", "generous"},
		CorrectAnswer: "exhausted",
		Explanation:   `"Walking all day without a break" signals extreme tiredness.`,
	},
	{
		ID:            "cc-2",
		Type:          models.ContextClues,
		Prompt:        "Use the context to choose the missing word:",
		Sentence:      "The museum was so ___ that we got lost twice looking for the exit.",
		Options:       []string{"tiny", "vast", "noisy", "cheap"},
		CorrectAnswer: "vast",
		Explanation:   "Getting lost implies a very large space.",
	},
	{
		ID:            "cc-3",
		Type:          models.ContextClues,
		Prompt:        "Use the context to choose the missing word:",
		Sentence:      "Unlike her talkative brother, Mia is quite ___.",
		Options:       []string{"reserved", "outgoing", "chatty", "loud"},
		CorrectAnswer: "reserved",
		Explanation:   `"Unlike" sets up a contrast with "talkative".`,
	},
	{
		ID:            "cc-4",
		Type:          models.ContextClues,
		Prompt:        "Use the context to choose the missing word:",
		Sentence:      "The evidence was so ___ that the jury reached a verdict in an hour.",
		Options:       []string{"ambiguous", "conclusive", "irrelevant", "fragile"},
		CorrectAnswer: "conclusive",
		Explanation:   "A quick verdict suggests the evidence settled the question decisively.",
	},
}

var dictationQuestions = []models.Question{
	{
		ID:            "dc-1",
		Type:          models.Dictation,
		Prompt:        "Listen and type exactly what you hear:",
		AudioText:     "The weather is lovely today.",
		CorrectAnswer: "The weather is lovely today.",
		Explanation:   "Listen for the contraction-free, simple present description.",
	},
	{
		ID:            "dc-2",
		Type:          models.Dictation,
		Prompt:        "Listen and type exactly what you hear:",
		AudioText:     "She has been studying English for five years.",
		CorrectAnswer: "She has been studying English for five years.",
		Explanation:   `Present perfect continuous: "has been" + verb-ing, with "for" marking duration.`,
	},
	{
		ID:            "dc-3",
		Type:          models.Dictation,
		Prompt:        "Listen and type exactly what you hear:",
		AudioText:     "Could you pass me the salt, please?",
		CorrectAnswer: "Could you pass me the salt, please?",
		Explanation:   `Polite requests often use "could" instead of "can".`,
	},
	{
		ID:            "dc-4",
		Type:          models.Dictation,
		Prompt:        "Listen and type exactly what you hear:",
		AudioText:     "We would have arrived earlier if the train had not been delayed.",
		CorrectAnswer: "We would have arrived earlier if the train had not been delayed.",
		Explanation:   "Third conditional: \"would have\" + participle in the main clause, past perfect in the if-clause.",
	},
}

var pronunciationMatchQuestions = []models.Question{
	{
		ID:            "pm-1",
		Type:          models.PronunciationMatch,
		Prompt:        "Which word rhymes with \"though\"?",
		Options:       []string{"tough", "through", "dough", "cough"},
		CorrectAnswer: "dough",
		Explanation:   `"Though" and "dough" share the /oʊ/ sound; the other "-ough" words do not.`,
	},
	{
		ID:            "pm-2",
		Type:          models.PronunciationMatch,
		Prompt:        "Which word has the same vowel sound as \"beat\"?",
		Options:       []string{"bet", "bit", "meet", "bat"},
		CorrectAnswer: "meet",
		Explanation:   `"Beat" and "meet" both use the long /iː/ sound despite different spellings.`,
	},
	{
		ID:            "pm-3",
		Type:          models.PronunciationMatch,
		Prompt:        "Which word has a silent letter?",
		Options:       []string{"climb", "clip", "clap", "club"},
		CorrectAnswer: "climb",
		Explanation:   `The final "b" in "climb" is silent, as in "comb" and "thumb".`,
	},
	{
		ID:            "pm-4",
		Type:          models.PronunciationMatch,
		Prompt:        "Which word is stressed on the second syllable?",
		Options:       []string{"PREsent (gift)", "reCORD (verb)", "TAble", "WINdow"},
		CorrectAnswer: "reCORD (verb)",
		Explanation:   "Many noun/verb pairs shift stress: the verb \"record\" stresses the second syllable.",
	},
}

var photoDescriptionQuestions = []models.Question{
	{
		ID:            "pd-1",
		Type:          models.PhotoDescription,
		Prompt:        "Which sentence best describes the scene?",
		ImageURL:      "park",
		Options:       []string{"Children are playing in the park.", "Children play in the park yesterday.", "Children is playing in the park.", "Children was playing in the park."},
		CorrectAnswer: "Children are playing in the park.",
		Explanation:   `An action happening now takes the present continuous with plural "are".`,
	},
	{
		ID:            "pd-2",
		Type:          models.PhotoDescription,
		Prompt:        "Which sentence best describes the scene?",
		ImageURL:      "kitchen",
		Options:       []string{"The chef cooking dinner.", "The chef is cooking dinner.", "The chef are cooking dinner.", "The chef cooked dinner tomorrow."},
		CorrectAnswer: "The chef is cooking dinner.",
		Explanation:   `Present continuous needs "is" before the -ing verb for a singular subject.`,
	},
	{
		ID:            "pd-3",
		Type:          models.PhotoDescription,
		Prompt:        "Which sentence best describes the scene?",
		ImageURL:      "beach",
		Options:       []string{"There is many people at the beach.", "There are many people at the beach.", "There be many people at the beach.", "There am many people at the beach."},
		CorrectAnswer: "There are many people at the beach.",
		Explanation:   `"Many people" is plural, so use "there are".`,
	},
	{
		ID:            "pd-4",
		Type:          models.PhotoDescription,
		Prompt:        "Which sentence best describes the scene?",
		ImageURL:      "library",
		Options:       []string{"Everyone are reading quietly.", "Everyone is reading quietly.", "Everyone were reading quietly.", "Everyone be reading quietly."},
		CorrectAnswer: "Everyone is reading quietly.",
		Explanation:   `"Everyone" is grammatically singular and takes "is".`,
	},
}

var trueFalseQuestions = []models.Question{
	{
		ID:            "tf-1",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `"Children" is the plural form of "child".`,
		IsTrue:        boolPtr(true),
		CorrectAnswer: "true",
		Explanation:   `"Child" has the irregular plural "children".`,
	},
	{
		ID:            "tf-2",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `The sentence "She don't like coffee" is grammatically correct.`,
		IsTrue:        boolPtr(false),
		CorrectAnswer: "false",
		Explanation:   `Third person singular requires "doesn't": "She doesn't like coffee."`,
	},
	{
		ID:            "tf-3",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `"Went" is the past tense of "go".`,
		IsTrue:        boolPtr(true),
		CorrectAnswer: "true",
		Explanation:   `"Go" is irregular: go, went, gone.`,
	},
	{
		ID:            "tf-4",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `An adjective describes a verb.`,
		IsTrue:        boolPtr(false),
		CorrectAnswer: "false",
		Explanation:   "Adjectives describe nouns; adverbs describe verbs.",
	},
	{
		ID:            "tf-5",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `"I have ate breakfast" uses the present perfect correctly.`,
		IsTrue:        boolPtr(false),
		CorrectAnswer: "false",
		Explanation:   `Present perfect needs the past participle: "I have eaten breakfast."`,
	},
}

var listenChooseQuestions = []models.Question{
	{
		ID:            "lc-1",
		Type:          models.ListenChoose,
		Prompt:        "Listen and choose what you heard:",
		AudioText:     "I would like a cup of tea.",
		Options:       []string{"I would like a cup of tea.", "I would like a cup of coffee.", "I would like a can of tea.", "I will like a cup of tea."},
		CorrectAnswer: "I would like a cup of tea.",
		Explanation:   `Listen for "would like" (polite request) and the final noun "tea".`,
	},
	{
		ID:            "lc-2",
		Type:          models.ListenChoose,
		Prompt:        "Listen and choose what you heard:",
		AudioText:     "They have lived here since 2010.",
		Options:       []string{"They have lived here since 2010.", "They have lived here for 2010.", "They lived here since 2010.", "They are living here since 2010."},
		CorrectAnswer: "They have lived here since 2010.",
		Explanation:   `"Since" + a starting point pairs with the present perfect.`,
	},
	{
		ID:            "lc-3",
		Type:          models.ListenChoose,
		Prompt:        "Listen and choose what you heard:",
		AudioText:     "Whose jacket is this?",
		Options:       []string{"Whose jacket is this?", "Who's jacket is this?", "Whose jackets are these?", "Who has a jacket like this?"},
		CorrectAnswer: "Whose jacket is this?",
		Explanation:   `"Whose" asks about possession; "who's" means "who is".`,
	},
	{
		ID:            "lc-4",
		Type:          models.ListenChoose,
		Prompt:        "Listen and choose what you heard:",
		AudioText:     "He hardly ever eats meat.",
		Options:       []string{"He hardly ever eats meat.", "He hardly eats ever meat.", "He ever hardly eats meat.", "He eats meat hard."},
		CorrectAnswer: "He hardly ever eats meat.",
		Explanation:   `"Hardly ever" (almost never) sits before the main verb.`,
	},
}

var audioWordMatchQuestions = []models.Question{
	{
		ID:     "awm-1",
		Type:   models.AudioWordMatch,
		Prompt: "Match each spoken word to its written form:",
		Pairs: []models.Pair{
			{Left: "knight", Right: "knight (silent k)"},
			{Left: "night", Right: "night (time of day)"},
			{Left: "know", Right: "know (to understand)"},
			{Left: "no", Right: "no (negative)"},
		},
		CorrectAnswer: "knight, night, know, no",
		Explanation:   "Homophones sound identical; spelling and meaning tell them apart.",
	},
	{
		ID:     "awm-2",
		Type:   models.AudioWordMatch,
		Prompt: "Match each spoken word to its written form:",
		Pairs: []models.Pair{
			{Left: "their", Right: "their (possessive)"},
			{Left: "there", Right: "there (location)"},
			{Left: "they're", Right: "they're (they are)"},
		},
		CorrectAnswer: "their, there, they're",
		Explanation:   "The three sound the same; context decides which spelling is right.",
	},
	{
		ID:     "awm-3",
		Type:   models.AudioWordMatch,
		Prompt: "Match each spoken word to its written form:",
		Pairs: []models.Pair{
			{Left: "piece", Right: "piece (a part)"},
			{Left: "peace", Right: "peace (no war)"},
			{Left: "pair", Right: "pair (two items)"},
			{Left: "pear", Right: "pear (fruit)"},
		},
		CorrectAnswer: "piece, peace, pair, pear",
		Explanation:   "Homophone pairs are a common source of spelling errors.",
	},
	{
		ID:     "awm-4",
		Type:   models.AudioWordMatch,
		Prompt: "Match each spoken word to its written form:",
		Pairs: []models.Pair{
			{Left: "weather", Right: "weather (sun and rain)"},
			{Left: "whether", Right: "whether (if)"},
			{Left: "wear", Right: "wear (clothes)"},
			{Left: "where", Right: "where (place)"},
		},
		CorrectAnswer: "weather, whether, wear, where",
		Explanation:   "Listening practice with near-identical sounds trains spelling recall.",
	},
}

var repeatSentenceQuestions = []models.Question{
	{
		ID:            "rs-1",
		Type:          models.RepeatSentence,
		Prompt:        "Listen and repeat the sentence aloud:",
		AudioText:     "I have never been to Japan",
		CorrectAnswer: "I have never been to Japan",
		Explanation:   "Focus on the present perfect rhythm: \"have never been\".",
	},
	{
		ID:            "rs-2",
		Type:          models.RepeatSentence,
		Prompt:        "Listen and repeat the sentence aloud:",
		AudioText:     "She sells seashells by the seashore",
		CorrectAnswer: "She sells seashells by the seashore",
		Explanation:   "A classic tongue twister for practicing the s and sh sounds.",
	},
	{
		ID:            "rs-3",
		Type:          models.RepeatSentence,
		Prompt:        "Listen and repeat the sentence aloud:",
		AudioText:     "The early bird catches the worm",
		CorrectAnswer: "The early bird catches the worm",
		Explanation:   "Practice linking \"catches the\" smoothly in connected speech.",
	},
	{
		ID:            "rs-4",
		Type:          models.RepeatSentence,
		Prompt:        "Listen and repeat the sentence aloud:",
		AudioText:     "Practice makes perfect every single day",
		CorrectAnswer: "Practice makes perfect every single day",
		Explanation:   "Stress the content words: practice, perfect, every, day.",
	},
}

var answerByVoiceQuestions = []models.Question{
	{
		ID:            "abv-1",
		Type:          models.AnswerByVoice,
		Prompt:        "Answer aloud: What do you usually do on weekends?",
		VoicePrompt:   "What do you usually do on weekends?",
		CorrectAnswer: "usually relax with friends",
		SpokenAnswer:  "I usually relax and spend time with friends",
		Explanation:   `Adverbs of frequency like "usually" come before the main verb.`,
	},
	{
		ID:            "abv-2",
		Type:          models.AnswerByVoice,
		Prompt:        "Answer aloud: What did you eat for breakfast this morning?",
		VoicePrompt:   "What did you eat for breakfast this morning?",
		CorrectAnswer: "ate toast and coffee",
		SpokenAnswer:  "I ate toast and drank coffee this morning",
		Explanation:   `Past simple questions with "did" are answered with the past form: "ate", "drank".`,
	},
	{
		ID:            "abv-3",
		Type:          models.AnswerByVoice,
		Prompt:        "Answer aloud: Where would you travel if you could go anywhere?",
		VoicePrompt:   "Where would you travel if you could go anywhere?",
		CorrectAnswer: "would travel because",
		SpokenAnswer:  "I would travel to Italy because I love the food",
		Explanation:   `Second conditional answers use "would" + base verb.`,
	},
	{
		ID:            "abv-4",
		Type:          models.AnswerByVoice,
		Prompt:        "Answer aloud: What have you been learning recently?",
		VoicePrompt:   "What have you been learning recently?",
		CorrectAnswer: "have been learning",
		SpokenAnswer:  "I have been learning English grammar recently",
		Explanation:   "Present perfect continuous describes an activity continuing up to now.",
	},
}

// defaultBanks wires every game type to its embedded bank.
func defaultBanks() map[models.GameType][]models.Question {
	return map[models.GameType][]models.Question{
		models.FillBlanks:         fillBlanksQuestions,
		models.SentenceCorrection: sentenceCorrectionQuestions,
		models.WordOrder:          wordOrderQuestions,
		models.MatchPairs:         matchPairsQuestions,
		models.MultipleChoice:     multipleChoiceQuestions,
		models.SpotError:          spotErrorQuestions,
		models.TransformSentence:  transformSentenceQuestions,
		models.ContextClues:       contextCluesQuestions,
		models.Dictation:          dictationQuestions,
		models.PronunciationMatch: pronunciationMatchQuestions,
		models.PhotoDescription:   photoDescriptionQuestions,
		models.TrueFalse:          trueFalseQuestions,
		models.ListenChoose:       listenChooseQuestions,
		models.AudioWordMatch:     audioWordMatchQuestions,
		models.RepeatSentence:     repeatSentenceQuestions,
		models.AnswerByVoice:      answerByVoiceQuestions,
	}
}
