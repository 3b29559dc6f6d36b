package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/linguaplay/practice-service/internal/errors"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
)

// bankColumns is the canonical column order for both xlsx and csv files.
// List-valued cells use "|" as the separator; pairs use "left=right".
var bankColumns = []string{
	"id", "prompt", "correct_answer", "explanation", "options",
	"sentence", "statement", "audio_text", "words", "pairs",
	"transform_rule", "is_true", "image_url", "spoken_answer", "voice_prompt",
}

const bankSheetName = "Questions"

// ImportExportService moves question banks between files and the runtime
// provider. Imports validate every row and reject the whole file on any
// error, so a bank is never half-replaced.
type ImportExportService struct {
	validator *validator.QuestionValidator
	logger    utils.Logger
}

func NewImportExportService(logger utils.Logger) *ImportExportService {
	return &ImportExportService{
		validator: validator.NewQuestionValidator(),
		logger:    logger,
	}
}

// ImportXLSX parses the first sheet of an xlsx file into a bank for
// gameType. Row errors come back as ValidationErrors keyed by row number.
func (s *ImportExportService) ImportXLSX(r io.Reader, gameType models.GameType) ([]models.Question, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return s.parseRows(rows, gameType)
}

// ImportCSV parses a csv file with the same columns as the xlsx layout.
func (s *ImportExportService) ImportCSV(r io.Reader, gameType models.GameType) ([]models.Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return s.parseRows(rows, gameType)
}

func (s *ImportExportService) parseRows(rows [][]string, gameType models.GameType) ([]models.Question, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["id"]; !ok {
		return nil, fmt.Errorf("header row is missing the id column")
	}

	var questions []models.Question
	var rowErrors apperrors.ValidationErrors

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if isBlankRow(row) {
			continue
		}

		question, err := parseQuestionRow(columns, row, gameType)
		if err != nil {
			rowErrors = append(rowErrors, *apperrors.NewValidationError(
				fmt.Sprintf("row %d", rowNum), err.Error(), nil))
			continue
		}
		if err := s.validator.ValidateQuestion(&question); err != nil {
			rowErrors = append(rowErrors, *apperrors.NewValidationError(
				fmt.Sprintf("row %d", rowNum), err.Error(), question.ID))
			continue
		}
		questions = append(questions, question)
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors
	}
	if err := s.validator.ValidateBank(gameType, questions); err != nil {
		return nil, err
	}

	s.logger.Info("question bank imported",
		"game_type", string(gameType), "count", len(questions))
	return questions, nil
}

func parseQuestionRow(columns map[string]int, row []string, gameType models.GameType) (models.Question, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	q := models.Question{
		ID:            cell("id"),
		Type:          gameType,
		Prompt:        cell("prompt"),
		CorrectAnswer: cell("correct_answer"),
		Explanation:   cell("explanation"),
		Sentence:      cell("sentence"),
		Statement:     cell("statement"),
		AudioText:     cell("audio_text"),
		TransformRule: cell("transform_rule"),
		ImageURL:      cell("image_url"),
		SpokenAnswer:  cell("spoken_answer"),
		VoicePrompt:   cell("voice_prompt"),
	}

	q.Options = splitList(cell("options"))
	q.Words = splitList(cell("words"))

	for _, part := range splitList(cell("pairs")) {
		left, right, found := strings.Cut(part, "=")
		if !found {
			return models.Question{}, fmt.Errorf("pair %q is not in left=right form", part)
		}
		q.Pairs = append(q.Pairs, models.Pair{
			Left:  strings.TrimSpace(left),
			Right: strings.TrimSpace(right),
		})
	}

	if raw := cell("is_true"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return models.Question{}, fmt.Errorf("is_true %q is not a boolean", raw)
		}
		q.IsTrue = &value
	}

	return q, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ExportXLSX writes a bank as an xlsx workbook with one Questions sheet.
func (s *ImportExportService) ExportXLSX(w io.Writer, gameType models.GameType, questions []models.Question) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(bankSheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := make([]interface{}, len(bankColumns))
	for i, name := range bankColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(bankSheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range questions {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := questionToRow(&questions[i])
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(bankSheetName, cellName, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	s.logger.Info("question bank exported",
		"game_type", string(gameType), "count", len(questions))
	return nil
}

// ExportCSV writes a bank as csv with the same column layout.
func (s *ImportExportService) ExportCSV(w io.Writer, gameType models.GameType, questions []models.Question) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(bankColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range questions {
		if err := writer.Write(questionToRow(&questions[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.logger.Info("question bank exported",
		"game_type", string(gameType), "count", len(questions))
	return nil
}

func questionToRow(q *models.Question) []string {
	pairs := make([]string, len(q.Pairs))
	for i, p := range q.Pairs {
		pairs[i] = p.Left + "=" + p.Right
	}

	isTrue := ""
	if q.IsTrue != nil {
		isTrue = strconv.FormatBool(*q.IsTrue)
	}

	return []string{
		q.ID, q.Prompt, q.CorrectAnswer, q.Explanation,
		strings.Join(q.Options, "|"),
		q.Sentence, q.Statement, q.AudioText,
		strings.Join(q.Words, "|"),
		strings.Join(pairs, "|"),
		q.TransformRule, isTrue, q.ImageURL, q.SpokenAnswer, q.VoicePrompt,
	}
}
