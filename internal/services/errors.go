package services

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotReady: the session was created over an empty bank and
	// cannot accept answers.
	ErrSessionNotReady = errors.New("session is not ready")

	// ErrSessionComplete: the session has already finished; only the
	// result and retry endpoints apply.
	ErrSessionComplete = errors.New("session is already complete")

	// ErrSessionNotComplete: the result was requested before the last
	// question was answered.
	ErrSessionNotComplete = errors.New("session is not complete")

	// ErrAlreadyAnswered: the current question has a graded record and
	// cannot be answered again.
	ErrAlreadyAnswered = errors.New("current question already answered")

	// ErrQuestionNotAnswered: advance was requested before the current
	// question was graded.
	ErrQuestionNotAnswered = errors.New("current question not answered")

	// ErrIncompleteSubmission: a pair-match submission left pairs
	// unmatched; grading requires a total mapping and the question stays
	// answerable.
	ErrIncompleteSubmission = errors.New("submission does not cover every pair")

	ErrModuleNotFound = errors.New("module not found")
)
