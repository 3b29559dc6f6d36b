package services

import (
	"time"

	"github.com/linguaplay/practice-service/internal/models"
)

// Aggregator folds a completed session into its result and feedback.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate produces the terminal result snapshot for a completed
// session. Time taken is whole elapsed seconds, rounded down.
func (a *Aggregator) Aggregate(state *models.SessionState, completedAt time.Time) *models.SessionResult {
	correct := 0
	for _, record := range state.AnswerLog {
		if record.IsCorrect {
			correct++
		}
	}

	answers := make([]models.AnswerRecord, len(state.AnswerLog))
	copy(answers, state.AnswerLog)

	return &models.SessionResult{
		SessionID:      state.ID,
		GameType:       state.GameType,
		TotalQuestions: len(state.Questions),
		CorrectAnswers: correct,
		Answers:        answers,
		TimeTaken:      int(completedAt.Sub(state.StartedAt).Seconds()),
	}
}

// FeedbackFor maps a result onto the fixed coaching ladder. The texts are
// deliberately canned; the same score band always reads the same.
func (a *Aggregator) FeedbackFor(result *models.SessionResult) *models.Feedback {
	score := result.Score()
	feedback := &models.Feedback{OverallScore: score}

	switch {
	case score >= 80:
		feedback.Strengths = append(feedback.Strengths,
			"Excellent grasp of grammar fundamentals",
			"Quick and accurate responses")
		feedback.Tips = append(feedback.Tips,
			"Try more advanced modules to challenge yourself")
	case score >= 60:
		feedback.Strengths = append(feedback.Strengths,
			"Good understanding of basic grammar rules")
		feedback.Improvements = append(feedback.Improvements,
			"Review verb tense consistency")
		feedback.Tips = append(feedback.Tips,
			"Practice with similar exercises daily for better retention")
	default:
		feedback.Improvements = append(feedback.Improvements,
			"Focus on subject-verb agreement",
			"Review basic sentence structure")
		feedback.Tips = append(feedback.Tips,
			"Start with easier modules and build up gradually",
			"Read the explanations carefully for each question")
	}

	if result.CorrectAnswers < result.TotalQuestions {
		feedback.Improvements = append(feedback.Improvements,
			"Pay attention to context clues in sentences")
		feedback.Tips = append(feedback.Tips,
			"Take your time to read each option carefully")
	}

	return feedback
}
