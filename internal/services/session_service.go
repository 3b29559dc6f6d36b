package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/linguaplay/practice-service/internal/events"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/store"
	"github.com/linguaplay/practice-service/internal/utils"
)

// QuestionView is what the client sees while playing: the redacted
// current question plus progress.
type QuestionView struct {
	Question models.Question `json:"question"`
	Current  int             `json:"current"`
	Total    int             `json:"total"`
}

// SessionService owns the session lifecycle. All state transitions go
// through it; handlers never mutate SessionState directly.
type SessionService struct {
	store      store.SessionStore
	bank       BankProvider
	sampler    *Sampler
	evaluator  *Evaluator
	aggregator *Aggregator
	publisher  events.Publisher
	logger     utils.Logger
	now        func() time.Time
}

// BankProvider is the slice of the bank package the session service needs.
type BankProvider interface {
	QuestionsFor(gameType models.GameType) []models.Question
}

func NewSessionService(
	sessionStore store.SessionStore,
	bank BankProvider,
	sampler *Sampler,
	publisher events.Publisher,
	logger utils.Logger,
) *SessionService {
	return &SessionService{
		store:      sessionStore,
		bank:       bank,
		sampler:    sampler,
		evaluator:  NewEvaluator(),
		aggregator: NewAggregator(),
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// StartSession samples a question set and creates a new session. An
// unknown game type is served the fill-blanks bank; the session keeps the
// requested type so the client's rendering choice is preserved. An empty
// bank yields a not_ready session that accepts no answers.
func (s *SessionService) StartSession(ctx context.Context, gameType models.GameType) (*models.SessionState, error) {
	if !gameType.IsValid() {
		s.logger.Warn("unknown game type requested, serving fill-blanks",
			"game_type", string(gameType))
		s.publish(ctx, events.NewBankFallback(gameType, models.FillBlanks))
	}

	questions := s.sampler.Sample(s.bank.QuestionsFor(gameType))

	state := &models.SessionState{
		ID:        uuid.NewString(),
		GameType:  gameType,
		Status:    models.SessionInProgress,
		Questions: questions,
		StartedAt: s.now().UTC(),
	}
	if len(questions) == 0 {
		state.Status = models.SessionNotReady
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	if state.Status == models.SessionInProgress {
		s.publish(ctx, events.NewSessionStarted(state))
	}
	s.logger.InfoContext(ctx, "session started",
		"session_id", state.ID, "game_type", string(gameType),
		"questions", len(questions), "status", string(state.Status))
	return state, nil
}

// GetSession loads a session by id.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.SessionState, error) {
	state, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// CurrentQuestion returns the redacted question under the cursor with
// progress counters.
func (s *SessionService) CurrentQuestion(ctx context.Context, id string) (*QuestionView, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Status == models.SessionNotReady {
		return nil, ErrSessionNotReady
	}
	if state.Status == models.SessionComplete {
		return nil, ErrSessionComplete
	}

	question, ok := state.CurrentQuestion()
	if !ok {
		return nil, ErrSessionComplete
	}

	current, total := state.Progress()
	return &QuestionView{
		Question: question.Redacted(),
		Current:  current,
		Total:    total,
	}, nil
}

// SubmitAnswer grades the current question exactly once and appends the
// record. The cursor does not move; Advance does that.
func (s *SessionService) SubmitAnswer(ctx context.Context, id string, submission models.Submission) (*models.AnswerRecord, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch state.Status {
	case models.SessionNotReady:
		return nil, ErrSessionNotReady
	case models.SessionComplete:
		return nil, ErrSessionComplete
	}
	if state.CurrentAnswered() {
		return nil, ErrAlreadyAnswered
	}

	question, ok := state.CurrentQuestion()
	if !ok {
		return nil, ErrSessionComplete
	}

	userAnswer, correct, err := s.evaluator.Evaluate(&question, submission)
	if err != nil {
		return nil, err
	}

	record := models.AnswerRecord{
		QuestionID:    question.ID,
		UserAnswer:    userAnswer,
		IsCorrect:     correct,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		AnsweredAt:    s.now().UTC(),
	}
	state.AnswerLog = append(state.AnswerLog, record)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return &record, nil
}

// Advance moves the cursor past an answered question. Advancing off the
// last question completes the session and publishes the result.
func (s *SessionService) Advance(ctx context.Context, id string) (*models.SessionState, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch state.Status {
	case models.SessionNotReady:
		return nil, ErrSessionNotReady
	case models.SessionComplete:
		return nil, ErrSessionComplete
	}
	if !state.CurrentAnswered() {
		return nil, ErrQuestionNotAnswered
	}

	state.CurrentIndex++
	if state.CurrentIndex >= len(state.Questions) {
		completedAt := s.now().UTC()
		state.Status = models.SessionComplete
		state.CompletedAt = &completedAt

		result := s.aggregator.Aggregate(state, completedAt)
		s.publish(ctx, events.NewSessionCompleted(result))
		s.logger.InfoContext(ctx, "session completed",
			"session_id", state.ID, "score", result.Score(),
			"correct", result.CorrectAnswers, "total", result.TotalQuestions)
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Retry restarts the session with a freshly sampled question set. The
// previous answer log is discarded; the new draw is independent of the
// old one.
func (s *SessionService) Retry(ctx context.Context, id string) (*models.SessionState, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	questions := s.sampler.Sample(s.bank.QuestionsFor(state.GameType))

	state.Questions = questions
	state.CurrentIndex = 0
	state.AnswerLog = nil
	state.StartedAt = s.now().UTC()
	state.CompletedAt = nil
	state.Status = models.SessionInProgress
	if len(questions) == 0 {
		state.Status = models.SessionNotReady
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	if state.Status == models.SessionInProgress {
		s.publish(ctx, events.NewSessionStarted(state))
	}
	s.logger.InfoContext(ctx, "session retried",
		"session_id", state.ID, "game_type", string(state.GameType))
	return state, nil
}

// Result returns the terminal snapshot and its feedback. Only complete
// sessions have one.
func (s *SessionService) Result(ctx context.Context, id string) (*models.SessionResult, *models.Feedback, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if state.Status != models.SessionComplete || state.CompletedAt == nil {
		return nil, nil, ErrSessionNotComplete
	}

	result := s.aggregator.Aggregate(state, *state.CompletedAt)
	feedback := s.aggregator.FeedbackFor(result)
	return result, feedback, nil
}

// publish sends an event without letting a broker failure surface to the
// request path.
func (s *SessionService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.LogError(err, "failed to publish event",
			"event_type", string(event.Type), "session_id", event.SessionID)
	}
}
