package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/linguaplay/practice-service/internal/bank"
	"github.com/linguaplay/practice-service/internal/services"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
)

type HandlerManager struct {
	moduleHandler  *ModuleHandler
	sessionHandler *SessionHandler
	bankHandler    *BankHandler
}

func NewHandlerManager(
	sessionService *services.SessionService,
	importExport *services.ImportExportService,
	catalog *bank.Catalog,
	provider *bank.StaticProvider,
	repository *bank.Repository,
	v *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		moduleHandler:  NewModuleHandler(catalog, v, logger),
		sessionHandler: NewSessionHandler(sessionService, catalog, v, logger),
		bankHandler:    NewBankHandler(provider, importExport, repository, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "practice-service",
		})
	})

	v1 := router.Group("/api/v1")
	{
		modules := v1.Group("/modules")
		{
			modules.GET("", hm.moduleHandler.ListModules)
			modules.GET("/:id", hm.moduleHandler.GetModule)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.StartSession)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.GET("/:id/question", hm.sessionHandler.GetCurrentQuestion)
			sessions.POST("/:id/answer", hm.sessionHandler.SubmitAnswer)
			sessions.POST("/:id/advance", hm.sessionHandler.Advance)
			sessions.POST("/:id/retry", hm.sessionHandler.Retry)
			sessions.GET("/:id/result", hm.sessionHandler.GetResult)
		}

		banks := v1.Group("/banks")
		{
			banks.GET("/:game_type/questions", hm.bankHandler.ListQuestions)
			banks.GET("/:game_type/export", hm.bankHandler.ExportBank)
			banks.POST("/import", hm.bankHandler.ImportBank)
		}
	}
}
