package models

import "time"

type SessionStatus string

const (
	// SessionNotReady means the sampled question set is empty; the session
	// cannot accept answers and never produces a result.
	SessionNotReady   SessionStatus = "not_ready"
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

// Submission is the raw learner input for one question. Exactly one field
// group is meaningful, selected by the question's evaluation family:
// Text for choice, free-text, spot-error, true-false and speech
// transcripts; Words for word-order selections; Matches (left -> proposed
// right) for pair-matching.
type Submission struct {
	Text    string            `json:"text,omitempty"`
	Words   []string          `json:"words,omitempty"`
	Matches map[string]string `json:"matches,omitempty"`
}

// AnswerRecord is one evaluated response. Created exactly once per
// question, appended in question order, never edited afterward.
type AnswerRecord struct {
	QuestionID    string    `json:"question_id"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// SessionState is one playthrough of a sampled question set. It is owned
// exclusively by its session and mutated only through the session service's
// transition functions.
type SessionState struct {
	ID           string         `json:"id"`
	GameType     GameType       `json:"game_type"`
	Status       SessionStatus  `json:"status"`
	Questions    []Question     `json:"questions"`
	CurrentIndex int            `json:"current_index"`
	AnswerLog    []AnswerRecord `json:"answer_log"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}

// CurrentQuestion returns the question at CurrentIndex, or false when the
// session is empty or complete.
func (s *SessionState) CurrentQuestion() (Question, bool) {
	if s.Status != SessionInProgress || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// CurrentAnswered reports whether the question at CurrentIndex has already
// been graded. One record per question, so the log length is the pointer.
func (s *SessionState) CurrentAnswered() bool {
	return len(s.AnswerLog) > s.CurrentIndex
}

// Progress returns the 1-based position and the total question count.
func (s *SessionState) Progress() (current, total int) {
	if len(s.Questions) == 0 {
		return 0, 0
	}
	return s.CurrentIndex + 1, len(s.Questions)
}

// SessionResult is the terminal snapshot of a completed session. Derived,
// read-only, produced once per completion.
type SessionResult struct {
	SessionID      string         `json:"session_id"`
	GameType       GameType       `json:"game_type"`
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	Answers        []AnswerRecord `json:"answers"`
	TimeTaken      int            `json:"time_taken"` // whole seconds
}

// Score returns the percentage of correct answers.
func (r SessionResult) Score() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions) * 100
}

// Feedback is the canned coaching payload derived from a SessionResult by
// a fixed threshold ladder.
type Feedback struct {
	OverallScore float64  `json:"overall_score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Tips         []string `json:"tips"`
}
