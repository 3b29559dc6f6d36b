package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaplay/practice-service/internal/events"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/store"
	"github.com/linguaplay/practice-service/internal/utils"
)

type stubBank struct {
	banks map[models.GameType][]models.Question
}

func (b *stubBank) QuestionsFor(gameType models.GameType) []models.Question {
	if questions, ok := b.banks[gameType]; ok {
		return questions
	}
	return b.banks[models.FillBlanks]
}

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:            "fb-" + string(rune('1'+i)),
			Type:          models.FillBlanks,
			Prompt:        "Pick the answer.",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Explanation:   "Because it is right.",
		}
	}
	return questions
}

func newTestService(banks map[models.GameType][]models.Question) (*SessionService, *events.MockPublisher) {
	publisher := events.NewMockPublisher()
	svc := NewSessionService(
		store.NewMemoryStore(time.Hour),
		&stubBank{banks: banks},
		NewSampler(rand.New(rand.NewSource(7))),
		publisher,
		utils.NewDevelopmentLogger(),
	)
	return svc, publisher
}

func defaultTestBanks() map[models.GameType][]models.Question {
	return map[models.GameType][]models.Question{
		models.FillBlanks: testQuestions(3),
	}
}

func TestSessionService_FullPlaythrough(t *testing.T) {
	svc, publisher := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)
	assert.Equal(t, models.SessionInProgress, state.Status)
	assert.Len(t, state.Questions, 3)

	answers := []string{"right", "wrong", "right"}
	for i, answer := range answers {
		view, err := svc.CurrentQuestion(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, view.Current)
		assert.Equal(t, 3, view.Total)
		assert.Empty(t, view.Question.CorrectAnswer, "question must be redacted")
		assert.Empty(t, view.Question.Explanation)

		record, err := svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: answer})
		require.NoError(t, err)
		assert.Equal(t, answer == "right", record.IsCorrect)
		assert.Equal(t, "right", record.CorrectAnswer)
		assert.NotEmpty(t, record.Explanation)

		_, err = svc.Advance(ctx, state.ID)
		require.NoError(t, err)
	}

	result, feedback, err := svc.Result(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Len(t, result.Answers, 3)
	assert.InDelta(t, 66.67, feedback.OverallScore, 0.01)

	published := publisher.Events()
	require.Len(t, published, 2)
	assert.Equal(t, events.SessionStarted, published[0].Type)
	assert.Equal(t, events.SessionCompleted, published[1].Type)
	assert.Equal(t, 2, published[1].CorrectAnswers)
}

func TestSessionService_OneRecordPerQuestion(t *testing.T) {
	svc, _ := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "right"})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "wrong"})
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	got, err := svc.GetSession(ctx, state.ID)
	require.NoError(t, err)
	require.Len(t, got.AnswerLog, 1)
	assert.True(t, got.AnswerLog[0].IsCorrect, "first grading stands")
}

func TestSessionService_AdvanceRequiresAnswer(t *testing.T) {
	svc, _ := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, state.ID)
	assert.ErrorIs(t, err, ErrQuestionNotAnswered)
}

func TestSessionService_CompleteSessionRejectsPlay(t *testing.T) {
	svc, _ := newTestService(map[models.GameType][]models.Question{
		models.FillBlanks: testQuestions(1),
	})
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "right"})
	require.NoError(t, err)
	advanced, err := svc.Advance(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionComplete, advanced.Status)
	require.NotNil(t, advanced.CompletedAt)

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "right"})
	assert.ErrorIs(t, err, ErrSessionComplete)
	_, err = svc.Advance(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionComplete)
	_, err = svc.CurrentQuestion(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestSessionService_ResultBeforeComplete(t *testing.T) {
	svc, _ := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)

	_, _, err = svc.Result(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionNotComplete)
}

func TestSessionService_EmptyBankNotReady(t *testing.T) {
	svc, publisher := newTestService(map[models.GameType][]models.Question{
		models.FillBlanks: nil,
	})
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)
	assert.Equal(t, models.SessionNotReady, state.Status)
	assert.Empty(t, publisher.Events(), "not_ready sessions never start")

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "right"})
	assert.ErrorIs(t, err, ErrSessionNotReady)
	_, err = svc.Advance(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionNotReady)
	_, err = svc.CurrentQuestion(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionNotReady)
	_, _, err = svc.Result(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionNotComplete)
}

func TestSessionService_UnknownTypeFallsBack(t *testing.T) {
	svc, publisher := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.GameType("word-salad"))
	require.NoError(t, err)
	assert.Equal(t, models.GameType("word-salad"), state.GameType, "requested type is kept")
	assert.Len(t, state.Questions, 3, "fill-blanks bank served")

	published := publisher.Events()
	require.Len(t, published, 2)
	assert.Equal(t, events.BankFallback, published[0].Type)
	assert.Equal(t, models.GameType("word-salad"), published[0].RequestedType)
	assert.Equal(t, events.SessionStarted, published[1].Type)
}

func TestSessionService_Retry(t *testing.T) {
	svc, _ := newTestService(defaultTestBanks())
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.FillBlanks)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{Text: "right"})
	require.NoError(t, err)

	retried, err := svc.Retry(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, retried.ID)
	assert.Equal(t, models.SessionInProgress, retried.Status)
	assert.Empty(t, retried.AnswerLog)
	assert.Equal(t, 0, retried.CurrentIndex)
	assert.Nil(t, retried.CompletedAt)
	assert.Len(t, retried.Questions, 3)
}

func TestSessionService_PartialPairMatchKeepsAttempt(t *testing.T) {
	svc, _ := newTestService(map[models.GameType][]models.Question{
		models.MatchPairs: {{
			ID: "mp-1", Type: models.MatchPairs, Prompt: "Match opposites:",
			Pairs: []models.Pair{
				{Left: "big", Right: "small"},
				{Left: "hot", Right: "cold"},
			},
			CorrectAnswer: "big/small, hot/cold",
		}},
	})
	ctx := context.Background()

	state, err := svc.StartSession(ctx, models.MatchPairs)
	require.NoError(t, err)

	// An unfinished board is rejected without consuming the attempt.
	_, err = svc.SubmitAnswer(ctx, state.ID, models.Submission{
		Matches: map[string]string{"big": "small"},
	})
	assert.ErrorIs(t, err, ErrIncompleteSubmission)

	got, err := svc.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AnswerLog)

	record, err := svc.SubmitAnswer(ctx, state.ID, models.Submission{
		Matches: map[string]string{"big": "small", "hot": "cold"},
	})
	require.NoError(t, err)
	assert.True(t, record.IsCorrect)
	assert.Equal(t, "2/2", record.UserAnswer)
}

func TestSessionService_MissingSession(t *testing.T) {
	svc, _ := newTestService(defaultTestBanks())
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.SubmitAnswer(ctx, "nope", models.Submission{Text: "x"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Retry(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
