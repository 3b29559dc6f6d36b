package bank

import (
	"fmt"
	"strings"

	"github.com/linguaplay/practice-service/internal/models"
)

// The dashboard catalog. Each module maps to one game type; the bank for
// that type supplies the questions when a session starts.
var catalogModules = []models.Module{
	{ID: "mod-fill-blanks", Title: "Fill in the Blanks", Category: models.CategoryWriting,
		Description: "Complete sentences by choosing the grammatically correct word.",
		Duration:    5, Icon: "pencil", GameType: models.FillBlanks},
	{ID: "mod-sentence-correction", Title: "Sentence Correction", Category: models.CategoryWriting,
		Description: "Find the error in a sentence and pick the corrected version.",
		Duration:    6, Icon: "edit", GameType: models.SentenceCorrection},
	{ID: "mod-word-order", Title: "Word Order", Category: models.CategoryWriting,
		Description: "Arrange shuffled words into a natural English sentence.",
		Duration:    5, Icon: "shuffle", GameType: models.WordOrder},
	{ID: "mod-transform-sentence", Title: "Transform the Sentence", Category: models.CategoryWriting,
		Description: "Rewrite sentences into a different voice, mood or form.",
		Duration:    8, Icon: "repeat", GameType: models.TransformSentence},
	{ID: "mod-match-pairs", Title: "Match the Pairs", Category: models.CategoryReading,
		Description: "Match words with their opposites, synonyms or related forms.",
		Duration:    4, Icon: "link", GameType: models.MatchPairs},
	{ID: "mod-multiple-choice", Title: "Grammar Quiz", Category: models.CategoryReading,
		Description: "Answer multiple-choice questions on core grammar rules.",
		Duration:    5, Icon: "list", GameType: models.MultipleChoice},
	{ID: "mod-spot-error", Title: "Spot the Error", Category: models.CategoryReading,
		Description: "Click the single word that makes the sentence wrong.",
		Duration:    4, Icon: "search", GameType: models.SpotError},
	{ID: "mod-context-clues", Title: "Context Clues", Category: models.CategoryReading,
		Description: "Use the surrounding sentence to pick the missing word.",
		Duration:    5, Icon: "book-open", GameType: models.ContextClues},
	{ID: "mod-true-false", Title: "True or False", Category: models.CategoryReading,
		Description: "Decide whether grammar statements are true or false.",
		Duration:    3, Icon: "check-circle", GameType: models.TrueFalse},
	{ID: "mod-dictation", Title: "Dictation", Category: models.CategoryListening,
		Description: "Listen to a sentence and type it exactly as you hear it.",
		Duration:    7, Icon: "headphones", GameType: models.Dictation},
	{ID: "mod-listen-choose", Title: "Listen and Choose", Category: models.CategoryListening,
		Description: "Hear a sentence and pick the matching written version.",
		Duration:    5, Icon: "volume-2", GameType: models.ListenChoose},
	{ID: "mod-audio-word-match", Title: "Sound-Alike Words", Category: models.CategoryListening,
		Description: "Match spoken homophones to the right written form.",
		Duration:    5, Icon: "music", GameType: models.AudioWordMatch},
	{ID: "mod-pronunciation-match", Title: "Pronunciation Match", Category: models.CategorySpeaking,
		Description: "Pick the word with the matching sound, rhyme or stress.",
		Duration:    4, Icon: "mic", GameType: models.PronunciationMatch},
	{ID: "mod-photo-description", Title: "Describe the Photo", Category: models.CategorySpeaking,
		Description: "Choose the sentence that correctly describes a scene.",
		Duration:    5, Icon: "image", GameType: models.PhotoDescription},
	{ID: "mod-repeat-sentence", Title: "Repeat the Sentence", Category: models.CategorySpeaking,
		Description: "Listen to a sentence and repeat it aloud accurately.",
		Duration:    6, Icon: "mic", GameType: models.RepeatSentence},
	{ID: "mod-answer-by-voice", Title: "Answer by Voice", Category: models.CategorySpeaking,
		Description: "Answer open questions aloud using the target grammar.",
		Duration:    8, Icon: "message-circle", GameType: models.AnswerByVoice},
}

// Catalog lists and looks up practice modules.
type Catalog struct {
	modules []models.Module
	byID    map[string]models.Module
}

func NewCatalog() *Catalog {
	byID := make(map[string]models.Module, len(catalogModules))
	for _, m := range catalogModules {
		byID[m.ID] = m
	}
	return &Catalog{modules: catalogModules, byID: byID}
}

// List returns modules filtered by category and by a case-insensitive
// search over title and description. Empty filters match everything.
func (c *Catalog) List(category models.Category, search string) []models.Module {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Module, 0, len(c.modules))
	for _, m := range c.modules {
		if category != "" && m.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Title), search) &&
			!strings.Contains(strings.ToLower(m.Description), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Get looks up a module by id.
func (c *Catalog) Get(id string) (models.Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return models.Module{}, fmt.Errorf("module not found: %s", id)
	}
	return m, nil
}
