package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaplay/practice-service/internal/models"
)

func makeBank(n int) []models.Question {
	bank := make([]models.Question, n)
	for i := range bank {
		bank[i] = models.Question{
			ID:            string(rune('a' + i)),
			Type:          models.FillBlanks,
			Prompt:        "p",
			CorrectAnswer: "x",
			Options:       []string{"x", "y"},
		}
	}
	return bank
}

func TestSampler_PrefixSize(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	assert.Len(t, s.Sample(makeBank(12)), SessionQuestionCount)
	assert.Len(t, s.Sample(makeBank(3)), 3)
	assert.Empty(t, s.Sample(nil))
}

func TestSampler_NoDuplicates(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(2)))
	bank := makeBank(20)

	for i := 0; i < 50; i++ {
		sampled := s.Sample(bank)
		seen := make(map[string]bool, len(sampled))
		for _, q := range sampled {
			require.False(t, seen[q.ID], "question %s sampled twice", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestSampler_DoesNotMutateBank(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(3)))
	bank := makeBank(10)

	var original []string
	for _, q := range bank {
		original = append(original, q.ID)
	}

	s.Sample(bank)

	for i, q := range bank {
		assert.Equal(t, original[i], q.ID)
	}
}

func TestSampler_Deterministic(t *testing.T) {
	bank := makeBank(10)

	first := NewSampler(rand.New(rand.NewSource(42))).Sample(bank)
	second := NewSampler(rand.New(rand.NewSource(42))).Sample(bank)

	assert.Equal(t, first, second)
}
