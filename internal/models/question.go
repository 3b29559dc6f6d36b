package models

// GameType identifies the question-rendering and evaluation variant of a
// practice module. Values match the identifiers used by the web client.
type GameType string

const (
	FillBlanks         GameType = "fill-blanks"
	SentenceCorrection GameType = "sentence-correction"
	WordOrder          GameType = "word-order"
	MatchPairs         GameType = "match-pairs"
	MultipleChoice     GameType = "multiple-choice"
	SpotError          GameType = "spot-error"
	TransformSentence  GameType = "transform-sentence"
	ContextClues       GameType = "context-clues"
	Dictation          GameType = "dictation"
	PronunciationMatch GameType = "pronunciation-match"
	PhotoDescription   GameType = "photo-description"
	TrueFalse          GameType = "true-false"
	ListenChoose       GameType = "listen-choose"
	AudioWordMatch     GameType = "audio-word-match"
	RepeatSentence     GameType = "repeat-sentence"
	AnswerByVoice      GameType = "answer-by-voice"
)

// AllGameTypes returns every known game type in a stable order.
func AllGameTypes() []GameType {
	return []GameType{
		FillBlanks, SentenceCorrection, WordOrder, MatchPairs,
		MultipleChoice, SpotError, TransformSentence, ContextClues,
		Dictation, PronunciationMatch, PhotoDescription, TrueFalse,
		ListenChoose, AudioWordMatch, RepeatSentence, AnswerByVoice,
	}
}

// IsValid reports whether t is one of the known game types.
func (t GameType) IsValid() bool {
	return t.Family() != ""
}

// EvaluationFamily groups game types that share one answer-comparison rule.
// Sixteen game types collapse into eight grading strategies; the two
// speech families keep intentionally different thresholds.
type EvaluationFamily string

const (
	FamilySingleChoice  EvaluationFamily = "single-choice"
	FamilyFreeText      EvaluationFamily = "free-text"
	FamilyWordOrder     EvaluationFamily = "word-order"
	FamilyPairMatch     EvaluationFamily = "pair-match"
	FamilySpotError     EvaluationFamily = "spot-error"
	FamilyTrueFalse     EvaluationFamily = "true-false"
	FamilySpeechExact   EvaluationFamily = "speech-exact"
	FamilySpeechKeyword EvaluationFamily = "speech-keyword"
)

// Family returns the evaluation family for a game type, or "" for an
// unknown type.
func (t GameType) Family() EvaluationFamily {
	switch t {
	case FillBlanks, SentenceCorrection, MultipleChoice, ContextClues,
		PronunciationMatch, PhotoDescription, ListenChoose:
		return FamilySingleChoice
	case TransformSentence, Dictation:
		return FamilyFreeText
	case WordOrder:
		return FamilyWordOrder
	case MatchPairs, AudioWordMatch:
		return FamilyPairMatch
	case SpotError:
		return FamilySpotError
	case TrueFalse:
		return FamilyTrueFalse
	case RepeatSentence:
		return FamilySpeechExact
	case AnswerByVoice:
		return FamilySpeechKeyword
	default:
		return ""
	}
}

// Pair is one left/right association target for pair-matching questions.
type Pair struct {
	Left  string `json:"left" validate:"required"`
	Right string `json:"right" validate:"required"`
}

// Question is the unit of assessment. CorrectAnswer is canonical; which of
// the optional fields are populated depends on Type. Questions are sourced
// from a bank and never mutated at runtime.
type Question struct {
	ID            string   `json:"id" validate:"required"`
	Type          GameType `json:"type" validate:"required,game_type"`
	Prompt        string   `json:"prompt" validate:"required"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`

	// Type-specific fields.
	Options       []string `json:"options,omitempty"`        // choice families
	Sentence      string   `json:"sentence,omitempty"`       // spot-error, context-clues, sentence-correction
	Statement     string   `json:"statement,omitempty"`      // true-false
	AudioText     string   `json:"audio_text,omitempty"`     // listening/speech types, spoken aloud by the client
	Words         []string `json:"words,omitempty"`          // word-order token bag
	Pairs         []Pair   `json:"pairs,omitempty"`          // pair-match families
	TransformRule string   `json:"transform_rule,omitempty"` // transform-sentence
	IsTrue        *bool    `json:"is_true,omitempty"`        // true-false
	ImageURL      string   `json:"image_url,omitempty"`      // photo-description scene key
	SpokenAnswer  string   `json:"spoken_answer,omitempty"`  // answer-by-voice expected utterance
	VoicePrompt   string   `json:"voice_prompt,omitempty"`   // answer-by-voice display prompt
}

// Redacted returns a copy safe to hand to the client while the question is
// unanswered: the canonical answer, explanation and true/false key are
// withheld.
func (q Question) Redacted() Question {
	q.CorrectAnswer = ""
	q.Explanation = ""
	q.SpokenAnswer = ""
	q.IsTrue = nil
	return q
}
