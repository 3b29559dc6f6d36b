package validator

import (
	"fmt"
	"strings"

	"github.com/linguaplay/practice-service/internal/models"
)

// QuestionValidator checks that a question carries the fields its game
// type needs and that the canonical answer is derivable from them. Banks
// are trusted at evaluation time; these checks run when a bank is loaded
// or imported.
type QuestionValidator struct{}

func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateQuestion validates one complete question.
func (v *QuestionValidator) ValidateQuestion(q *models.Question) error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("unknown game type: %s", q.Type)
	}
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is required")
	}

	switch q.Type.Family() {
	case models.FamilySingleChoice:
		return v.validateSingleChoice(q)
	case models.FamilyFreeText:
		return v.validateFreeText(q)
	case models.FamilyWordOrder:
		return v.validateWordOrder(q)
	case models.FamilyPairMatch:
		return v.validatePairMatch(q)
	case models.FamilySpotError:
		return v.validateSpotError(q)
	case models.FamilyTrueFalse:
		return v.validateTrueFalse(q)
	case models.FamilySpeechExact:
		return v.validateSpeechExact(q)
	case models.FamilySpeechKeyword:
		return v.validateSpeechKeyword(q)
	default:
		return fmt.Errorf("unsupported game type: %s", q.Type)
	}
}

// ValidateBank validates every question in a bank.
func (v *QuestionValidator) ValidateBank(gameType models.GameType, questions []models.Question) error {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.Type != gameType {
			return fmt.Errorf("question %s: type %s does not match bank %s", q.ID, q.Type, gameType)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id: %s", q.ID)
		}
		seen[q.ID] = true
		if err := v.ValidateQuestion(q); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	return nil
}

func (v *QuestionValidator) validateSingleChoice(q *models.Question) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("must have at least 2 options")
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("correct answer is required")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return fmt.Errorf("correct answer %q is not one of the options", q.CorrectAnswer)
}

func (v *QuestionValidator) validateFreeText(q *models.Question) error {
	if q.CorrectAnswer == "" {
		return fmt.Errorf("correct answer is required")
	}
	return nil
}

func (v *QuestionValidator) validateWordOrder(q *models.Question) error {
	if len(q.Words) < 2 {
		return fmt.Errorf("must have at least 2 words")
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("correct answer is required")
	}

	// The canonical answer must be a reordering of the token bag.
	remaining := make(map[string]int, len(q.Words))
	for _, w := range q.Words {
		remaining[normalizeToken(w)]++
	}
	answerWords := strings.Fields(q.CorrectAnswer)
	if len(answerWords) != len(q.Words) {
		return fmt.Errorf("correct answer has %d words, token bag has %d", len(answerWords), len(q.Words))
	}
	for _, w := range answerWords {
		key := normalizeToken(w)
		if remaining[key] == 0 {
			return fmt.Errorf("correct answer word %q is not in the token bag", w)
		}
		remaining[key]--
	}
	return nil
}

func (v *QuestionValidator) validatePairMatch(q *models.Question) error {
	if len(q.Pairs) < 2 {
		return fmt.Errorf("must have at least 2 pairs")
	}
	lefts := make(map[string]bool, len(q.Pairs))
	for _, p := range q.Pairs {
		if p.Left == "" || p.Right == "" {
			return fmt.Errorf("pairs must have both left and right values")
		}
		if lefts[p.Left] {
			return fmt.Errorf("duplicate left item: %s", p.Left)
		}
		lefts[p.Left] = true
	}
	return nil
}

func (v *QuestionValidator) validateSpotError(q *models.Question) error {
	if q.Sentence == "" {
		return fmt.Errorf("sentence is required")
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("correct answer is required")
	}

	// The error word must actually occur in the sentence.
	want := normalizeToken(q.CorrectAnswer)
	for _, w := range strings.Fields(q.Sentence) {
		if normalizeToken(w) == want {
			return nil
		}
	}
	return fmt.Errorf("correct answer %q does not appear in the sentence", q.CorrectAnswer)
}

func (v *QuestionValidator) validateTrueFalse(q *models.Question) error {
	if q.Statement == "" {
		return fmt.Errorf("statement is required")
	}
	if q.IsTrue == nil {
		return fmt.Errorf("is_true is required")
	}
	return nil
}

func (v *QuestionValidator) validateSpeechExact(q *models.Question) error {
	if q.AudioText == "" {
		return fmt.Errorf("audio text is required")
	}
	return nil
}

func (v *QuestionValidator) validateSpeechKeyword(q *models.Question) error {
	if q.SpokenAnswer == "" && q.CorrectAnswer == "" {
		return fmt.Errorf("spoken answer or correct answer is required")
	}
	return nil
}

// normalizeToken lowercases a word and strips sentence punctuation so the
// derivability checks match the evaluator's comparisons.
func normalizeToken(w string) string {
	return strings.Trim(strings.ToLower(w), ".,!?")
}
