package services

import (
	"math/rand"
	"sync"

	"github.com/linguaplay/practice-service/internal/models"
)

// SessionQuestionCount is the number of questions dealt per session, or
// the whole bank when it holds fewer.
const SessionQuestionCount = 5

// Sampler deals question sets for new sessions. The random source is
// injected so tests can seed it; it is guarded because sessions start
// concurrently.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns up to SessionQuestionCount questions drawn uniformly
// without replacement. The input slice is not modified; an empty bank
// yields an empty set. Each call deals a fresh permutation, so a retry
// gets an independent draw.
func (s *Sampler) Sample(bank []models.Question) []models.Question {
	if len(bank) == 0 {
		return nil
	}

	shuffled := make([]models.Question, len(bank))
	copy(shuffled, bank)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	n := SessionQuestionCount
	if len(shuffled) < n {
		n = len(shuffled)
	}
	return shuffled[:n]
}
