package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qaa "github.com/holmes89/qaa/lib"
	"github.com/holmes89/qaa/lib/service/answer"
	"github.com/holmes89/qaa/lib/service/store"
	"go.uber.org/zap"
)

// RestHandler defines the interface for setting up REST routes.
type RestHandler interface {
	SetupRoutes() *gin.Engine
}

type RestHandlerImpl struct {
	StoreService  store.StoreService
	AnswerService answer.AnswerService
	logger        *zap.Logger
}

func NewRestHandler(storeService store.StoreService, answerService answer.AnswerService, logger *zap.Logger) *RestHandlerImpl {
	return &RestHandlerImpl{
		StoreService:  storeService,
		AnswerService: answerService,
		logger:        logger.Named("rest"),
	}
}

func (h *RestHandlerImpl) SetupRoutes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(h.logger), Recovery(h.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	qaaGroup := r.Group("/qaa")
	{
		qaaGroup.GET("/get-all-qaa", h.GetAll)
		qaaGroup.GET("/get-qaa-by-id/:id", h.GetByID)
		qaaGroup.POST("/create-question", h.CreateQuestion)
		qaaGroup.PUT("/edit-qaa-by-id/:id/answer", h.UpdateAnswer)
		qaaGroup.PUT("/edit-qaa-by-id/:id/question", h.UpdateQuestion)
		qaaGroup.DELETE("/delete-qaa-by-id/:id", h.DeleteByID)
		qaaGroup.DELETE("/delete-all-qaa", h.DeleteAll)
	}

	langchainGroup := r.Group("/langchain")
	{
		langchainGroup.PUT("/:id/ai-answer", h.AIAnswer)
	}

	return r
}

func (h *RestHandlerImpl) GetAll(c *gin.Context) {
	data, err := h.StoreService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *RestHandlerImpl) GetByID(c *gin.Context) {
	var req qaa.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		respondValidation(c, err)
		return
	}
	data, err := h.StoreService.Get(c.Request.Context(), req.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *RestHandlerImpl) CreateQuestion(c *gin.Context) {
	var req qaa.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	data, err := h.StoreService.Create(c.Request.Context(), req.Question)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, data)
}

func (h *RestHandlerImpl) UpdateAnswer(c *gin.Context) {
	var id qaa.IDRequest
	if err := c.ShouldBindUri(&id); err != nil {
		respondValidation(c, err)
		return
	}
	var req qaa.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if _, err := h.StoreService.UpdateAnswer(c.Request.Context(), id.ID, req.Answer); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestHandlerImpl) UpdateQuestion(c *gin.Context) {
	var id qaa.IDRequest
	if err := c.ShouldBindUri(&id); err != nil {
		respondValidation(c, err)
		return
	}
	var req qaa.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if _, err := h.StoreService.UpdateQuestion(c.Request.Context(), id.ID, req.Question); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestHandlerImpl) DeleteByID(c *gin.Context) {
	var req qaa.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := h.StoreService.Delete(c.Request.Context(), req.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestHandlerImpl) DeleteAll(c *gin.Context) {
	if err := h.StoreService.DeleteAll(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestHandlerImpl) AIAnswer(c *gin.Context) {
	var req qaa.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		respondValidation(c, err)
		return
	}
	data, err := h.AnswerService.Answer(c.Request.Context(), req.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
