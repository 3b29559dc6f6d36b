package events

import (
	"time"

	"github.com/linguaplay/practice-service/internal/models"
)

type EventType string

const (
	SessionStarted   EventType = "session.started"
	SessionCompleted EventType = "session.completed"
	BankFallback     EventType = "bank.fallback"
)

// Event is the envelope published for session lifecycle changes. Consumers
// use it for analytics; the service never reads events back.
type Event struct {
	Type       EventType       `json:"type"`
	SessionID  string          `json:"session_id,omitempty"`
	GameType   models.GameType `json:"game_type"`
	OccurredAt time.Time       `json:"occurred_at"`

	// Completion payload, only on session.completed.
	TotalQuestions int     `json:"total_questions,omitempty"`
	CorrectAnswers int     `json:"correct_answers,omitempty"`
	Score          float64 `json:"score,omitempty"`
	TimeTaken      int     `json:"time_taken,omitempty"`

	// Fallback payload, only on bank.fallback.
	RequestedType models.GameType `json:"requested_type,omitempty"`
}

// NewSessionStarted builds the start event for a session.
func NewSessionStarted(state *models.SessionState) Event {
	return Event{
		Type:       SessionStarted,
		SessionID:  state.ID,
		GameType:   state.GameType,
		OccurredAt: time.Now().UTC(),
	}
}

// NewSessionCompleted builds the completion event from a result.
func NewSessionCompleted(result *models.SessionResult) Event {
	return Event{
		Type:           SessionCompleted,
		SessionID:      result.SessionID,
		GameType:       result.GameType,
		OccurredAt:     time.Now().UTC(),
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		Score:          result.Score(),
		TimeTaken:      result.TimeTaken,
	}
}

// NewBankFallback records that an unknown game type was served the
// fill-blanks bank instead.
func NewBankFallback(requested, served models.GameType) Event {
	return Event{
		Type:          BankFallback,
		GameType:      served,
		RequestedType: requested,
		OccurredAt:    time.Now().UTC(),
	}
}
