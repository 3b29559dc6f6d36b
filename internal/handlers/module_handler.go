package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linguaplay/practice-service/internal/bank"
	"github.com/linguaplay/practice-service/internal/models"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
)

type ModuleHandler struct {
	BaseHandler
	catalog   *bank.Catalog
	validator *validator.Validator
}

func NewModuleHandler(catalog *bank.Catalog, v *validator.Validator, logger utils.Logger) *ModuleHandler {
	return &ModuleHandler{
		BaseHandler: NewBaseHandler(logger),
		catalog:     catalog,
		validator:   v,
	}
}

type listModulesQuery struct {
	Category string `form:"category" validate:"omitempty,category"`
	Search   string `form:"search"`
}

// ListModules lists practice modules
// @Summary List modules
// @Description Lists practice modules, optionally filtered by category and a search term
// @Tags modules
// @Produce json
// @Param category query string false "Category filter (reading, writing, speaking, listening)"
// @Param search query string false "Case-insensitive search over title and description"
// @Success 200 {object} SuccessResponse{data=[]models.Module}
// @Failure 400 {object} ErrorResponse
// @Router /modules [get]
func (h *ModuleHandler) ListModules(c *gin.Context) {
	var query listModulesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters", err, err.Error())
		return
	}
	if err := h.validator.Validate(&query); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	modules := h.catalog.List(models.Category(query.Category), query.Search)
	h.RespondWithSuccess(c, http.StatusOK, "Modules retrieved", modules)
}

// GetModule retrieves one module
// @Summary Get module
// @Description Retrieves a practice module by its ID
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} SuccessResponse{data=models.Module}
// @Failure 404 {object} ErrorResponse
// @Router /modules/{id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	module, err := h.catalog.Get(id)
	if err != nil {
		h.RespondWithError(c, http.StatusNotFound, "Module not found", nil, id)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Module retrieved", module)
}
