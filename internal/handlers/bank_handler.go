package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linguaplay/practice-service/internal/bank"
	apperrors "github.com/linguaplay/practice-service/internal/errors"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/services"
	"github.com/linguaplay/practice-service/internal/utils"
)

// BankHandler is the authoring surface for question banks: listing,
// file import and file export. The repository is nil when the service
// runs on embedded banks only.
type BankHandler struct {
	BaseHandler
	provider     *bank.StaticProvider
	importExport *services.ImportExportService
	repository   *bank.Repository
}

func NewBankHandler(
	provider *bank.StaticProvider,
	importExport *services.ImportExportService,
	repository *bank.Repository,
	logger utils.Logger,
) *BankHandler {
	return &BankHandler{
		BaseHandler:  NewBaseHandler(logger),
		provider:     provider,
		importExport: importExport,
		repository:   repository,
	}
}

func (h *BankHandler) parseGameType(c *gin.Context) (models.GameType, bool) {
	raw := ParseStringIDParam(c, "game_type")
	if raw == "" {
		return "", false
	}
	gameType := models.GameType(raw)
	if !gameType.IsValid() {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid game type", nil, raw)
		return "", false
	}
	return gameType, true
}

// ListQuestions lists a bank with answers included
// @Summary List bank questions
// @Description Lists every question in the bank for a game type, answers included
// @Tags banks
// @Produce json
// @Param game_type path string true "Game type"
// @Success 200 {object} SuccessResponse{data=[]models.Question}
// @Failure 400 {object} ErrorResponse
// @Router /banks/{game_type}/questions [get]
func (h *BankHandler) ListQuestions(c *gin.Context) {
	gameType, ok := h.parseGameType(c)
	if !ok {
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Bank retrieved", h.provider.QuestionsFor(gameType))
}

// ImportBank replaces a bank from an uploaded file
// @Summary Import bank
// @Description Replaces the bank for a game type from an uploaded xlsx or csv file
// @Tags banks
// @Accept multipart/form-data
// @Produce json
// @Param game_type formData string true "Game type"
// @Param file formData file true "Bank file (.xlsx or .csv)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /banks/import [post]
func (h *BankHandler) ImportBank(c *gin.Context) {
	gameType := models.GameType(strings.TrimSpace(c.PostForm("game_type")))
	if !gameType.IsValid() {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid game type", nil, string(gameType))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Missing bank file", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Cannot read bank file", err)
		return
	}
	defer file.Close()

	var questions []models.Question
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		questions, err = h.importExport.ImportXLSX(file, gameType)
	case ".csv":
		questions, err = h.importExport.ImportCSV(file, gameType)
	default:
		h.RespondWithError(c, http.StatusBadRequest, "Unsupported file type", nil,
			"only .xlsx and .csv files are accepted")
		return
	}
	if err != nil {
		var verrs apperrors.ValidationErrors
		if errors.As(err, &verrs) {
			h.RespondWithError(c, http.StatusUnprocessableEntity, "Bank file failed validation", nil, verrs)
			return
		}
		h.RespondWithError(c, http.StatusUnprocessableEntity, "Bank file failed validation", err, err.Error())
		return
	}

	if h.repository != nil {
		if err := h.repository.SaveBank(c.Request.Context(), gameType, questions); err != nil {
			h.RespondWithError(c, http.StatusInternalServerError, "Failed to persist bank", err)
			return
		}
	}
	h.provider.Replace(gameType, questions)

	h.RespondWithSuccess(c, http.StatusOK, "Bank imported", gin.H{
		"game_type": gameType,
		"count":     len(questions),
	})
}

// ExportBank downloads a bank as a file
// @Summary Export bank
// @Description Downloads the bank for a game type as xlsx (default) or csv
// @Tags banks
// @Produce application/octet-stream
// @Param game_type path string true "Game type"
// @Param format query string false "File format (xlsx or csv)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /banks/{game_type}/export [get]
func (h *BankHandler) ExportBank(c *gin.Context) {
	gameType, ok := h.parseGameType(c)
	if !ok {
		return
	}
	questions := h.provider.QuestionsFor(gameType)

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	filename := fmt.Sprintf("%s-bank.%s", gameType, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := h.importExport.ExportXLSX(c.Writer, gameType, questions); err != nil {
			h.LogError(c, err, "Failed to export bank", "game_type", string(gameType))
		}
	case "csv":
		c.Header("Content-Type", "text/csv")
		if err := h.importExport.ExportCSV(c.Writer, gameType, questions); err != nil {
			h.LogError(c, err, "Failed to export bank", "game_type", string(gameType))
		}
	default:
		h.RespondWithError(c, http.StatusBadRequest, "Unsupported format", nil, format)
	}
}
