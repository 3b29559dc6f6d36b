package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linguaplay/practice-service/internal/bank"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/services"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
)

type SessionHandler struct {
	BaseHandler
	sessionService *services.SessionService
	catalog        *bank.Catalog
	validator      *validator.Validator
}

func NewSessionHandler(
	sessionService *services.SessionService,
	catalog *bank.Catalog,
	v *validator.Validator,
	logger utils.Logger,
) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
		catalog:        catalog,
		validator:      v,
	}
}

// StartSessionRequest starts a session either for a game type directly or
// for a catalog module that maps to one.
type StartSessionRequest struct {
	GameType string `json:"game_type"`
	ModuleID string `json:"module_id"`
}

// SessionResponse is the client view of a session. Questions are not
// included; the question endpoint serves them one at a time, redacted.
type SessionResponse struct {
	ID             string               `json:"id"`
	GameType       models.GameType      `json:"game_type"`
	Status         models.SessionStatus `json:"status"`
	TotalQuestions int                  `json:"total_questions"`
	CurrentIndex   int                  `json:"current_index"`
	Answered       int                  `json:"answered"`
	StartedAt      time.Time            `json:"started_at"`
	CompletedAt    *time.Time           `json:"completed_at,omitempty"`
}

func toSessionResponse(state *models.SessionState) SessionResponse {
	return SessionResponse{
		ID:             state.ID,
		GameType:       state.GameType,
		Status:         state.Status,
		TotalQuestions: len(state.Questions),
		CurrentIndex:   state.CurrentIndex,
		Answered:       len(state.AnswerLog),
		StartedAt:      state.StartedAt,
		CompletedAt:    state.CompletedAt,
	}
}

// ResultResponse bundles the result snapshot with its feedback.
type ResultResponse struct {
	Result   *models.SessionResult `json:"result"`
	Score    float64               `json:"score"`
	Feedback *models.Feedback      `json:"feedback"`
}

// StartSession starts a practice session
// @Summary Start session
// @Description Samples a question set and starts a new practice session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body StartSessionRequest true "Game type or module ID"
// @Success 201 {object} SuccessResponse{data=SessionResponse}
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	gameType := models.GameType(req.GameType)
	if req.ModuleID != "" {
		module, err := h.catalog.Get(req.ModuleID)
		if err != nil {
			h.RespondWithError(c, http.StatusNotFound, "Module not found", nil, req.ModuleID)
			return
		}
		gameType = module.GameType
	}
	if gameType == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", nil,
			"game_type or module_id is required")
		return
	}

	state, err := h.sessionService.StartSession(c.Request.Context(), gameType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "Session started", toSessionResponse(state))
}

// GetSession retrieves session state
// @Summary Get session
// @Description Retrieves the state of a session by its ID
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=SessionResponse}
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	state, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Session retrieved", toSessionResponse(state))
}

// GetCurrentQuestion returns the question under the cursor
// @Summary Get current question
// @Description Returns the current question with the answer withheld, plus progress
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=services.QuestionView}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/question [get]
func (h *SessionHandler) GetCurrentQuestion(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.CurrentQuestion(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Current question", view)
}

// SubmitAnswer grades the current question
// @Summary Submit answer
// @Description Grades the submission for the current question, exactly once
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param submission body models.Submission true "Learner input"
// @Success 200 {object} SuccessResponse{data=models.AnswerRecord}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/answer [post]
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var submission models.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	record, err := h.sessionService.SubmitAnswer(c.Request.Context(), id, submission)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Answer recorded", record)
}

// Advance moves past an answered question
// @Summary Advance session
// @Description Moves the cursor to the next question; advancing off the last completes the session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=SessionResponse}
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) Advance(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	state, err := h.sessionService.Advance(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Session advanced", toSessionResponse(state))
}

// Retry restarts a session with a fresh question set
// @Summary Retry session
// @Description Discards the answer log and deals a freshly sampled question set
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=SessionResponse}
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/retry [post]
func (h *SessionHandler) Retry(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	state, err := h.sessionService.Retry(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Session restarted", toSessionResponse(state))
}

// GetResult returns the terminal result with feedback
// @Summary Get result
// @Description Returns the result snapshot and feedback for a completed session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=ResultResponse}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/result [get]
func (h *SessionHandler) GetResult(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	result, feedback, err := h.sessionService.Result(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Session result", ResultResponse{
		Result:   result,
		Score:    result.Score(),
		Feedback: feedback,
	})
}

func (h *SessionHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		h.RespondWithError(c, http.StatusNotFound, "Session not found", nil)
	case errors.Is(err, services.ErrSessionNotReady):
		h.RespondWithError(c, http.StatusConflict, "Session is not ready", nil,
			"the question bank for this session is empty")
	case errors.Is(err, services.ErrSessionComplete):
		h.RespondWithError(c, http.StatusConflict, "Session is already complete", nil)
	case errors.Is(err, services.ErrSessionNotComplete):
		h.RespondWithError(c, http.StatusConflict, "Session is not complete yet", nil)
	case errors.Is(err, services.ErrIncompleteSubmission):
		h.RespondWithError(c, http.StatusBadRequest, "Incomplete submission", nil,
			"every pair must be matched before submitting")
	case errors.Is(err, services.ErrAlreadyAnswered):
		h.RespondWithError(c, http.StatusConflict, "Current question already answered", nil)
	case errors.Is(err, services.ErrQuestionNotAnswered):
		h.RespondWithError(c, http.StatusConflict, "Current question not answered", nil)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
