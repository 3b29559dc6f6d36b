package services

import (
	"fmt"
	"strings"

	"github.com/linguaplay/practice-service/internal/models"
)

// Evaluator grades one submission against one question. It is pure and
// stateless: the same question and submission always grade the same way.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate grades a submission. It returns the user answer in display
// form and whether it counts as correct.
func (e *Evaluator) Evaluate(q *models.Question, sub models.Submission) (userAnswer string, correct bool, err error) {
	switch q.Type.Family() {
	case models.FamilySingleChoice:
		return e.evaluateSingleChoice(q, sub)
	case models.FamilyFreeText:
		return e.evaluateFreeText(q, sub)
	case models.FamilyWordOrder:
		return e.evaluateWordOrder(q, sub)
	case models.FamilyPairMatch:
		return e.evaluatePairMatch(q, sub)
	case models.FamilySpotError:
		return e.evaluateSpotError(q, sub)
	case models.FamilyTrueFalse:
		return e.evaluateTrueFalse(q, sub)
	case models.FamilySpeechExact:
		return e.evaluateSpeechExact(q, sub)
	case models.FamilySpeechKeyword:
		return e.evaluateSpeechKeyword(q, sub)
	default:
		return "", false, fmt.Errorf("cannot evaluate game type: %s", q.Type)
	}
}

// Choice answers must match an option verbatim; the client sends the
// selected option text unchanged.
func (e *Evaluator) evaluateSingleChoice(q *models.Question, sub models.Submission) (string, bool, error) {
	return sub.Text, sub.Text == q.CorrectAnswer, nil
}

func (e *Evaluator) evaluateFreeText(q *models.Question, sub models.Submission) (string, bool, error) {
	return sub.Text, normalizeAnswer(sub.Text) == normalizeAnswer(q.CorrectAnswer), nil
}

// Word order submissions arrive as the chosen token sequence; they are
// joined with single spaces and graded like typed text.
func (e *Evaluator) evaluateWordOrder(q *models.Question, sub models.Submission) (string, bool, error) {
	joined := strings.Join(sub.Words, " ")
	return joined, normalizeAnswer(joined) == normalizeAnswer(q.CorrectAnswer), nil
}

// Pair matching requires a total mapping before grading: the client only
// enables submit once every left item is placed, and a short mapping must
// not burn the question's single attempt.
func (e *Evaluator) evaluatePairMatch(q *models.Question, sub models.Submission) (string, bool, error) {
	if len(sub.Matches) < len(q.Pairs) {
		return "", false, ErrIncompleteSubmission
	}

	matched := 0
	for _, p := range q.Pairs {
		if sub.Matches[p.Left] == p.Right {
			matched++
		}
	}

	total := len(q.Pairs)
	correct := matched == total && len(sub.Matches) == total

	summary := fmt.Sprintf("%d/%d", matched, total)
	if q.Type == models.AudioWordMatch {
		summary = fmt.Sprintf("%d/%d correct", matched, total)
	}
	return summary, correct, nil
}

func (e *Evaluator) evaluateSpotError(q *models.Question, sub models.Submission) (string, bool, error) {
	return sub.Text, normalizeAnswer(sub.Text) == normalizeAnswer(q.CorrectAnswer), nil
}

func (e *Evaluator) evaluateTrueFalse(q *models.Question, sub models.Submission) (string, bool, error) {
	if q.IsTrue == nil {
		return sub.Text, false, fmt.Errorf("question %s has no true/false key", q.ID)
	}
	want := "false"
	if *q.IsTrue {
		want = "true"
	}
	answer := strings.ToLower(strings.TrimSpace(sub.Text))
	return answer, answer == want, nil
}

// Repeat-sentence transcripts pass when at least 70% of the target words
// appear in what was said. Word membership, not order, so a slightly
// garbled transcript still passes.
func (e *Evaluator) evaluateSpeechExact(q *models.Question, sub models.Submission) (string, bool, error) {
	target := speechWords(q.AudioText)
	if len(target) == 0 {
		return sub.Text, false, fmt.Errorf("question %s has no audio text", q.ID)
	}

	said := make(map[string]bool)
	for _, w := range speechWords(sub.Text) {
		said[w] = true
	}

	matched := 0
	for _, w := range target {
		if said[w] {
			matched++
		}
	}
	return sub.Text, float64(matched)/float64(len(target)) >= 0.7, nil
}

// Answer-by-voice checks whether the transcript covers at least half the
// expected keywords. Words of three or more letters in the expected
// utterance count as keywords; a keyword is matched when some transcript
// word contains it or is contained by it, so inflected forms still match.
// An empty transcript never passes.
func (e *Evaluator) evaluateSpeechKeyword(q *models.Question, sub models.Submission) (string, bool, error) {
	source := q.SpokenAnswer
	if source == "" {
		source = q.CorrectAnswer
	}

	var keywords []string
	for _, w := range speechWords(source) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	said := speechWords(sub.Text)
	if len(keywords) == 0 || len(said) == 0 {
		return sub.Text, false, nil
	}

	matched := 0
	for _, kw := range keywords {
		for _, w := range said {
			if strings.Contains(w, kw) || strings.Contains(kw, w) {
				matched++
				break
			}
		}
	}

	accuracy := float64(matched) / float64(len(keywords)) * 100
	return sub.Text, accuracy >= 50, nil
}

// normalizeAnswer lowercases, strips sentence punctuation and trims, so
// "She sells seashells." and "she sells seashells" compare equal.
func normalizeAnswer(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(".", "", ",", "", "!", "", "?", "").Replace(s)
	return strings.TrimSpace(s)
}

// speechWords splits text into lowercase word tokens, dropping anything
// that is not a letter, digit or apostrophe.
func speechWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			return false
		}
		return true
	})
}
