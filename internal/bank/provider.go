package bank

import (
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/utils"
)

// Provider hands out the question bank for a game type.
type Provider interface {
	// QuestionsFor returns the bank for gameType. Unknown game types fall
	// back to the fill-blanks bank so a misconfigured module still plays.
	QuestionsFor(gameType models.GameType) []models.Question

	// GameTypes returns every game type with a non-empty bank.
	GameTypes() []models.GameType
}

// StaticProvider serves in-memory banks. Callers get copies; the banks
// themselves are never mutated after construction.
type StaticProvider struct {
	banks  map[models.GameType][]models.Question
	logger utils.Logger
}

// NewStaticProvider serves the embedded banks.
func NewStaticProvider(logger utils.Logger) *StaticProvider {
	return NewStaticProviderWithBanks(defaultBanks(), logger)
}

// NewStaticProviderWithBanks serves the given banks, for tests and for
// banks loaded from the database.
func NewStaticProviderWithBanks(banks map[models.GameType][]models.Question, logger utils.Logger) *StaticProvider {
	return &StaticProvider{banks: banks, logger: logger}
}

func (p *StaticProvider) QuestionsFor(gameType models.GameType) []models.Question {
	questions, ok := p.banks[gameType]
	if !ok {
		p.logger.Warn("no bank for game type, falling back to fill-blanks",
			"game_type", string(gameType))
		questions = p.banks[models.FillBlanks]
	}

	out := make([]models.Question, len(questions))
	copy(out, questions)
	return out
}

func (p *StaticProvider) GameTypes() []models.GameType {
	types := make([]models.GameType, 0, len(p.banks))
	for _, t := range models.AllGameTypes() {
		if len(p.banks[t]) > 0 {
			types = append(types, t)
		}
	}
	return types
}

// Replace swaps the bank for one game type, used after an import.
func (p *StaticProvider) Replace(gameType models.GameType, questions []models.Question) {
	bank := make([]models.Question, len(questions))
	copy(bank, questions)
	p.banks[gameType] = bank
	p.logger.Info("question bank replaced",
		"game_type", string(gameType), "count", len(bank))
}
