package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/validator"
)

// QuestionRow is the persisted form of a question. Variable-shape fields
// (options, words, pairs) live in JSON columns.
type QuestionRow struct {
	ID            string         `gorm:"primaryKey;size:64"`
	GameType      string         `gorm:"size:32;index;not null"`
	Prompt        string         `gorm:"type:text;not null"`
	CorrectAnswer string         `gorm:"type:text"`
	Explanation   string         `gorm:"type:text"`
	Options       datatypes.JSON `gorm:"type:jsonb"`
	Sentence      string         `gorm:"type:text"`
	Statement     string         `gorm:"type:text"`
	AudioText     string         `gorm:"type:text"`
	Words         datatypes.JSON `gorm:"type:jsonb"`
	Pairs         datatypes.JSON `gorm:"type:jsonb"`
	TransformRule string         `gorm:"size:64"`
	IsTrue        *bool
	ImageURL      string    `gorm:"size:255"`
	SpokenAnswer  string    `gorm:"type:text"`
	VoicePrompt   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (QuestionRow) TableName() string {
	return "questions"
}

// ToQuestion converts a row back into the domain model.
func (r *QuestionRow) ToQuestion() (models.Question, error) {
	q := models.Question{
		ID:            r.ID,
		Type:          models.GameType(r.GameType),
		Prompt:        r.Prompt,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Sentence:      r.Sentence,
		Statement:     r.Statement,
		AudioText:     r.AudioText,
		TransformRule: r.TransformRule,
		IsTrue:        r.IsTrue,
		ImageURL:      r.ImageURL,
		SpokenAnswer:  r.SpokenAnswer,
		VoicePrompt:   r.VoicePrompt,
	}
	if len(r.Options) > 0 {
		if err := json.Unmarshal(r.Options, &q.Options); err != nil {
			return models.Question{}, fmt.Errorf("question %s: decode options: %w", r.ID, err)
		}
	}
	if len(r.Words) > 0 {
		if err := json.Unmarshal(r.Words, &q.Words); err != nil {
			return models.Question{}, fmt.Errorf("question %s: decode words: %w", r.ID, err)
		}
	}
	if len(r.Pairs) > 0 {
		if err := json.Unmarshal(r.Pairs, &q.Pairs); err != nil {
			return models.Question{}, fmt.Errorf("question %s: decode pairs: %w", r.ID, err)
		}
	}
	return q, nil
}

// FromQuestion converts a domain question into its persisted form.
func FromQuestion(q *models.Question) (QuestionRow, error) {
	row := QuestionRow{
		ID:            q.ID,
		GameType:      string(q.Type),
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Sentence:      q.Sentence,
		Statement:     q.Statement,
		AudioText:     q.AudioText,
		TransformRule: q.TransformRule,
		IsTrue:        q.IsTrue,
		ImageURL:      q.ImageURL,
		SpokenAnswer:  q.SpokenAnswer,
		VoicePrompt:   q.VoicePrompt,
	}
	var err error
	if len(q.Options) > 0 {
		if row.Options, err = json.Marshal(q.Options); err != nil {
			return QuestionRow{}, fmt.Errorf("question %s: encode options: %w", q.ID, err)
		}
	}
	if len(q.Words) > 0 {
		if row.Words, err = json.Marshal(q.Words); err != nil {
			return QuestionRow{}, fmt.Errorf("question %s: encode words: %w", q.ID, err)
		}
	}
	if len(q.Pairs) > 0 {
		if row.Pairs, err = json.Marshal(q.Pairs); err != nil {
			return QuestionRow{}, fmt.Errorf("question %s: encode pairs: %w", q.ID, err)
		}
	}
	return row, nil
}

// Repository loads and stores question banks in Postgres.
type Repository struct {
	db        *gorm.DB
	validator *validator.QuestionValidator
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, validator: validator.NewQuestionValidator()}
}

// Migrate creates the questions table if it does not exist.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&QuestionRow{})
}

// LoadBanks reads every question and groups them by game type. Rows with
// an unknown game type or failing content checks abort the load; a bad
// bank is a deployment error, not something to paper over at runtime.
func (r *Repository) LoadBanks(ctx context.Context) (map[models.GameType][]models.Question, error) {
	var rows []QuestionRow
	if err := r.db.WithContext(ctx).Order("game_type, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load question banks: %w", err)
	}

	banks := make(map[models.GameType][]models.Question)
	for i := range rows {
		q, err := rows[i].ToQuestion()
		if err != nil {
			return nil, err
		}
		if err := r.validator.ValidateQuestion(&q); err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		banks[q.Type] = append(banks[q.Type], q)
	}
	return banks, nil
}

// SaveBank replaces the stored bank for one game type in a transaction.
func (r *Repository) SaveBank(ctx context.Context, gameType models.GameType, questions []models.Question) error {
	if err := r.validator.ValidateBank(gameType, questions); err != nil {
		return err
	}

	rows := make([]QuestionRow, 0, len(questions))
	for i := range questions {
		row, err := FromQuestion(&questions[i])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_type = ?", string(gameType)).Delete(&QuestionRow{}).Error; err != nil {
			return fmt.Errorf("clear bank %s: %w", gameType, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("save bank %s: %w", gameType, err)
		}
		return nil
	})
}
