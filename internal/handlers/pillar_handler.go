package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/services"
)

// PillarHandler handles questionnaire maintenance endpoints
// #INTEGRATION_POINT: Public GET serves the diagnostic form; writes are admin-only
type PillarHandler struct {
	pillarService services.PillarService
}

// NewPillarHandler creates a new pillar handler
func NewPillarHandler(pillarService services.PillarService) *PillarHandler {
	return &PillarHandler{
		pillarService: pillarService,
	}
}

// ListPillars handles GET /api/v1/pillars
// @Summary List the questionnaire
// @Description Returns all pillars with their questions in questionnaire order
// @Tags Pillars
// @Produce json
// @Success 200 {array} models.Pillar
// @Failure 500 {object} ErrorResponse
// @Router /pillars [get]
func (h *PillarHandler) ListPillars(c *gin.Context) {
	pillars, err := h.pillarService.ListPillars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to load questionnaire",
		})
		return
	}

	c.JSON(http.StatusOK, pillars)
}

// GetPillar handles GET /api/v1/pillars/:id
// @Summary Get a pillar
// @Description Returns one pillar with its questions
// @Tags Pillars
// @Produce json
// @Param id path int true "Pillar ID"
// @Success 200 {object} models.Pillar
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id} [get]
func (h *PillarHandler) GetPillar(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}

	pillar, err := h.pillarService.GetPillar(c.Request.Context(), ordinal)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pillar)
}

// CreatePillar handles POST /api/v1/pillars
// @Summary Create a pillar
// @Description Appends a new empty pillar to the questionnaire
// @Tags Pillars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreatePillarRequest true "Pillar data"
// @Success 201 {object} models.Pillar
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /pillars [post]
func (h *PillarHandler) CreatePillar(c *gin.Context) {
	var req services.CreatePillarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Pillar name is required",
		})
		return
	}

	pillar, err := h.pillarService.AddPillar(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pillar)
}

// UpdatePillar handles PUT /api/v1/pillars/:id
// @Summary Rename a pillar
// @Description Changes a pillar's display name
// @Tags Pillars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Param request body services.UpdatePillarRequest true "New name"
// @Success 200 {object} models.Pillar
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id} [put]
func (h *PillarHandler) UpdatePillar(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePillarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Pillar name is required",
		})
		return
	}

	pillar, err := h.pillarService.RenamePillar(c.Request.Context(), ordinal, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pillar)
}

// DeletePillar handles DELETE /api/v1/pillars/:id
// @Summary Delete a pillar
// @Description Removes a pillar and all its questions; stored results are unaffected
// @Tags Pillars
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id} [delete]
func (h *PillarHandler) DeletePillar(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}

	if err := h.pillarService.RemovePillar(c.Request.Context(), ordinal); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateQuestion handles POST /api/v1/pillars/:id/questions
// @Summary Add a question
// @Description Appends a question to a pillar
// @Tags Pillars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Param request body services.CreateQuestionRequest true "Question data"
// @Success 201 {object} models.Question
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id}/questions [post]
func (h *PillarHandler) CreateQuestion(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Question text, points, positive answer and answer type are required",
		})
		return
	}

	question, err := h.pillarService.AddQuestion(c.Request.Context(), ordinal, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion handles PUT /api/v1/pillars/:id/questions/:order
// @Summary Update a question
// @Description Updates a question's text, weight, answer type or credit table
// @Tags Pillars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Param order path int true "Question order"
// @Param request body services.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} models.Question
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id}/questions/{order} [put]
func (h *PillarHandler) UpdateQuestion(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}
	order, ok := h.parseOrdinal(c, "order")
	if !ok {
		return
	}

	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid question data",
		})
		return
	}

	question, err := h.pillarService.UpdateQuestion(c.Request.Context(), ordinal, order, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion handles DELETE /api/v1/pillars/:id/questions/:order
// @Summary Delete a question
// @Description Removes a question from a pillar
// @Tags Pillars
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Param order path int true "Question order"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /pillars/{id}/questions/{order} [delete]
func (h *PillarHandler) DeleteQuestion(c *gin.Context) {
	ordinal, ok := h.parseOrdinal(c, "id")
	if !ok {
		return
	}
	order, ok := h.parseOrdinal(c, "order")
	if !ok {
		return
	}

	if err := h.pillarService.RemoveQuestion(c.Request.Context(), ordinal, order); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseOrdinal parses a positive integer path parameter
func (h *PillarHandler) parseOrdinal(c *gin.Context, param string) (int, bool) {
	value, err := strconv.Atoi(c.Param(param))
	if err != nil || value < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid " + param + " parameter",
		})
		return 0, false
	}
	return value, true
}

// respondError maps service errors to HTTP responses
func (h *PillarHandler) respondError(c *gin.Context, err error) {
	switch {
	case models.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case models.IsValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred",
		})
	}
}

// RegisterRoutes registers pillar handler routes
func (h *PillarHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	pillars := rg.Group("/pillars")
	{
		// Public endpoints serve the diagnostic form
		pillars.GET("", h.ListPillars)
		pillars.GET("/:id", h.GetPillar)

		// Admin endpoints
		pillars.POST("", authMiddleware, h.CreatePillar)
		pillars.PUT("/:id", authMiddleware, h.UpdatePillar)
		pillars.DELETE("/:id", authMiddleware, h.DeletePillar)
		pillars.POST("/:id/questions", authMiddleware, h.CreateQuestion)
		pillars.PUT("/:id/questions/:order", authMiddleware, h.UpdateQuestion)
		pillars.DELETE("/:id/questions/:order", authMiddleware, h.DeleteQuestion)
	}
}
