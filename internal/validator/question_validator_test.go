package validator

import (
	"testing"

	"github.com/linguaplay/practice-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestQuestionValidator_SingleChoice(t *testing.T) {
	v := NewQuestionValidator()

	tests := []struct {
		name        string
		question    models.Question
		expectError bool
	}{
		{
			name: "valid fill-blanks question",
			question: models.Question{
				ID:            "fb-1",
				Type:          models.FillBlanks,
				Prompt:        "She ___ to the store yesterday.",
				Options:       []string{"go", "goes", "went", "going"},
				CorrectAnswer: "went",
			},
			expectError: false,
		},
		{
			name: "answer not among options",
			question: models.Question{
				ID:            "fb-2",
				Type:          models.FillBlanks,
				Prompt:        "She ___ to the store yesterday.",
				Options:       []string{"go", "goes"},
				CorrectAnswer: "went",
			},
			expectError: true,
		},
		{
			name: "too few options",
			question: models.Question{
				ID:            "fb-3",
				Type:          models.MultipleChoice,
				Prompt:        "Pick one",
				Options:       []string{"went"},
				CorrectAnswer: "went",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuestion(&tt.question)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionValidator_WordOrder(t *testing.T) {
	v := NewQuestionValidator()

	valid := models.Question{
		ID:            "wo-1",
		Type:          models.WordOrder,
		Prompt:        "Arrange the words:",
		Words:         []string{"never", "have", "I", "to", "Japan", "been"},
		CorrectAnswer: "I have never been to Japan.",
	}
	assert.NoError(t, v.ValidateQuestion(&valid))

	notReordering := valid
	notReordering.CorrectAnswer = "I have never seen Japan before."
	assert.Error(t, v.ValidateQuestion(&notReordering))

	wrongLength := valid
	wrongLength.CorrectAnswer = "I have never been"
	assert.Error(t, v.ValidateQuestion(&wrongLength))
}

func TestQuestionValidator_SpotError(t *testing.T) {
	v := NewQuestionValidator()

	valid := models.Question{
		ID:            "se-1",
		Type:          models.SpotError,
		Prompt:        "Find the mistake:",
		Sentence:      "She have three cats.",
		CorrectAnswer: "have",
	}
	assert.NoError(t, v.ValidateQuestion(&valid))

	missingWord := valid
	missingWord.CorrectAnswer = "has"
	assert.Error(t, v.ValidateQuestion(&missingWord))
}

func TestQuestionValidator_TrueFalse(t *testing.T) {
	v := NewQuestionValidator()

	valid := models.Question{
		ID:            "tf-1",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     `"Children" is the plural of "child".`,
		IsTrue:        boolPtr(true),
		CorrectAnswer: "true",
	}
	assert.NoError(t, v.ValidateQuestion(&valid))

	missingKey := valid
	missingKey.IsTrue = nil
	assert.Error(t, v.ValidateQuestion(&missingKey))
}

func TestQuestionValidator_PairMatch(t *testing.T) {
	v := NewQuestionValidator()

	valid := models.Question{
		ID:     "mp-1",
		Type:   models.MatchPairs,
		Prompt: "Match opposites:",
		Pairs: []models.Pair{
			{Left: "big", Right: "small"},
			{Left: "hot", Right: "cold"},
		},
	}
	assert.NoError(t, v.ValidateQuestion(&valid))

	duplicateLeft := models.Question{
		ID:     "mp-2",
		Type:   models.MatchPairs,
		Prompt: "Match opposites:",
		Pairs: []models.Pair{
			{Left: "big", Right: "small"},
			{Left: "big", Right: "little"},
		},
	}
	assert.Error(t, v.ValidateQuestion(&duplicateLeft))
}

func TestQuestionValidator_ValidateBank(t *testing.T) {
	v := NewQuestionValidator()

	bank := []models.Question{
		{
			ID: "dc-1", Type: models.Dictation,
			Prompt: "Type what you hear.", AudioText: "The weather is lovely today.",
			CorrectAnswer: "The weather is lovely today.",
		},
		{
			ID: "dc-2", Type: models.Dictation,
			Prompt: "Type what you hear.", AudioText: "He works in a hospital.",
			CorrectAnswer: "He works in a hospital.",
		},
	}
	assert.NoError(t, v.ValidateBank(models.Dictation, bank))

	bank[1].ID = "dc-1"
	assert.Error(t, v.ValidateBank(models.Dictation, bank), "duplicate ids rejected")

	bank[1].ID = "dc-2"
	bank[1].Type = models.FillBlanks
	assert.Error(t, v.ValidateBank(models.Dictation, bank), "type mismatch rejected")
}
