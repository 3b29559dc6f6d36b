package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
)

func TestStaticProvider_AllBanksValid(t *testing.T) {
	v := validator.NewQuestionValidator()
	p := NewStaticProvider(utils.NewDevelopmentLogger())

	for _, gameType := range models.AllGameTypes() {
		questions := p.QuestionsFor(gameType)
		require.NotEmpty(t, questions, "bank for %s must not be empty", gameType)
		assert.NoError(t, v.ValidateBank(gameType, questions), "bank for %s", gameType)
	}
}

func TestStaticProvider_UnknownTypeFallsBack(t *testing.T) {
	p := NewStaticProvider(utils.NewDevelopmentLogger())

	questions := p.QuestionsFor(models.GameType("word-salad"))
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Equal(t, models.FillBlanks, q.Type)
	}
}

func TestStaticProvider_ReturnsCopies(t *testing.T) {
	p := NewStaticProvider(utils.NewDevelopmentLogger())

	first := p.QuestionsFor(models.FillBlanks)
	first[0].CorrectAnswer = "mutated"

	second := p.QuestionsFor(models.FillBlanks)
	assert.NotEqual(t, "mutated", second[0].CorrectAnswer)
}

func TestStaticProvider_Replace(t *testing.T) {
	p := NewStaticProvider(utils.NewDevelopmentLogger())

	replacement := []models.Question{{
		ID:            "dc-new",
		Type:          models.Dictation,
		Prompt:        "Type what you hear.",
		AudioText:     "Practice every day.",
		CorrectAnswer: "Practice every day.",
	}}
	p.Replace(models.Dictation, replacement)

	got := p.QuestionsFor(models.Dictation)
	require.Len(t, got, 1)
	assert.Equal(t, "dc-new", got[0].ID)
}

func TestCatalog_ListAndFilter(t *testing.T) {
	c := NewCatalog()

	all := c.List("", "")
	assert.Len(t, all, 16)

	listening := c.List(models.CategoryListening, "")
	require.NotEmpty(t, listening)
	for _, m := range listening {
		assert.Equal(t, models.CategoryListening, m.Category)
	}

	matches := c.List("", "dictation")
	require.Len(t, matches, 1)
	assert.Equal(t, models.Dictation, matches[0].GameType)
}

func TestCatalog_Get(t *testing.T) {
	c := NewCatalog()

	m, err := c.Get("mod-word-order")
	require.NoError(t, err)
	assert.Equal(t, models.WordOrder, m.GameType)

	_, err = c.Get("mod-missing")
	assert.Error(t, err)
}

func TestQuestionRow_RoundTrip(t *testing.T) {
	isTrue := true
	q := models.Question{
		ID:            "tf-x",
		Type:          models.TrueFalse,
		Prompt:        "True or false?",
		Statement:     "A statement.",
		IsTrue:        &isTrue,
		CorrectAnswer: "true",
		Options:       []string{"true", "false"},
		Pairs:         []models.Pair{{Left: "a", Right: "b"}, {Left: "c", Right: "d"}},
		Words:         []string{"one", "two"},
	}

	row, err := FromQuestion(&q)
	require.NoError(t, err)

	back, err := row.ToQuestion()
	require.NoError(t, err)
	assert.Equal(t, q, back)
}
