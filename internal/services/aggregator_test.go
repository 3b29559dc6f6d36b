package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/linguaplay/practice-service/internal/models"
)

func resultWith(correct, total int) *models.SessionResult {
	return &models.SessionResult{
		SessionID:      "sess-1",
		GameType:       models.FillBlanks,
		TotalQuestions: total,
		CorrectAnswers: correct,
	}
}

func TestAggregator_Aggregate(t *testing.T) {
	a := NewAggregator()

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := &models.SessionState{
		ID:        "sess-1",
		GameType:  models.WordOrder,
		Status:    models.SessionComplete,
		Questions: make([]models.Question, 3),
		AnswerLog: []models.AnswerRecord{
			{QuestionID: "wo-1", IsCorrect: true},
			{QuestionID: "wo-2", IsCorrect: false},
			{QuestionID: "wo-3", IsCorrect: true},
		},
		StartedAt: started,
	}

	result := a.Aggregate(state, started.Add(95*time.Second+700*time.Millisecond))

	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 95, result.TimeTaken, "partial seconds are dropped")
	assert.InDelta(t, 66.67, result.Score(), 0.01)
}

func TestAggregator_FeedbackHighScore(t *testing.T) {
	a := NewAggregator()

	fb := a.FeedbackFor(resultWith(5, 5))

	assert.Equal(t, float64(100), fb.OverallScore)
	assert.Equal(t, []string{
		"Excellent grasp of grammar fundamentals",
		"Quick and accurate responses",
	}, fb.Strengths)
	assert.Equal(t, []string{"Try more advanced modules to challenge yourself"}, fb.Tips)
	assert.Empty(t, fb.Improvements)
}

func TestAggregator_FeedbackHighScoreWithMiss(t *testing.T) {
	a := NewAggregator()

	// 4/5 is 80%: the top band plus the missed-answer additions.
	fb := a.FeedbackFor(resultWith(4, 5))

	assert.Equal(t, []string{
		"Excellent grasp of grammar fundamentals",
		"Quick and accurate responses",
	}, fb.Strengths)
	assert.Equal(t, []string{"Pay attention to context clues in sentences"}, fb.Improvements)
	assert.Equal(t, []string{
		"Try more advanced modules to challenge yourself",
		"Take your time to read each option carefully",
	}, fb.Tips)
}

func TestAggregator_FeedbackMidScore(t *testing.T) {
	a := NewAggregator()

	fb := a.FeedbackFor(resultWith(3, 5))

	assert.Equal(t, float64(60), fb.OverallScore)
	assert.Equal(t, []string{"Good understanding of basic grammar rules"}, fb.Strengths)
	assert.Equal(t, []string{
		"Review verb tense consistency",
		"Pay attention to context clues in sentences",
	}, fb.Improvements)
	assert.Equal(t, []string{
		"Practice with similar exercises daily for better retention",
		"Take your time to read each option carefully",
	}, fb.Tips)
}

func TestAggregator_FeedbackLowScore(t *testing.T) {
	a := NewAggregator()

	fb := a.FeedbackFor(resultWith(1, 5))

	assert.Empty(t, fb.Strengths)
	assert.Equal(t, []string{
		"Focus on subject-verb agreement",
		"Review basic sentence structure",
		"Pay attention to context clues in sentences",
	}, fb.Improvements)
	assert.Equal(t, []string{
		"Start with easier modules and build up gradually",
		"Read the explanations carefully for each question",
		"Take your time to read each option carefully",
	}, fb.Tips)
}

func TestAggregator_FeedbackDeterministic(t *testing.T) {
	a := NewAggregator()

	first := a.FeedbackFor(resultWith(2, 5))
	second := a.FeedbackFor(resultWith(2, 5))

	assert.Equal(t, first, second)
}
