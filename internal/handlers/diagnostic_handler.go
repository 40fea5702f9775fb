package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
	"github.com/diagnostico-tools/diagnostico_backend/internal/services"
)

// DiagnosticHandler handles submission and result endpoints
// #INTEGRATION_POINT: Submit and report are public; listing and deletion are admin-only
type DiagnosticHandler struct {
	diagnosticService services.DiagnosticService
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(diagnosticService services.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{
		diagnosticService: diagnosticService,
	}
}

// Submit handles POST /api/v1/diagnostics
// @Summary Submit a completed questionnaire
// @Description Scores the answer set against the current questionnaire and stores the result
// @Tags Diagnostics
// @Accept json
// @Produce json
// @Param request body services.SubmitDiagnosticRequest true "Company data and answers"
// @Success 201 {object} models.DiagnosticResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /diagnostics [post]
func (h *DiagnosticHandler) Submit(c *gin.Context) {
	var req services.SubmitDiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Company data and answers are required",
		})
		return
	}

	result, err := h.diagnosticService.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuestionnaire) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "empty_questionnaire",
				Message: "No questionnaire is configured",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to store diagnostic result",
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListResults handles GET /api/v1/diagnostics
// @Summary List diagnostic results
// @Description Returns stored results with pagination, newest first
// @Tags Diagnostics
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param sort_dir query string false "Sort direction (asc or desc)"
// @Success 200 {object} repository.PaginatedResult[models.DiagnosticResult]
// @Failure 401 {object} ErrorResponse
// @Router /diagnostics [get]
func (h *DiagnosticHandler) ListResults(c *gin.Context) {
	opts := repository.DefaultPaginationOptions()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 100 {
		opts.Limit = limit
	}
	if sortDir := c.Query("sort_dir"); sortDir == "asc" {
		opts.SortDir = 1
	}

	results, err := h.diagnosticService.ListResults(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list diagnostic results",
		})
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetResult handles GET /api/v1/diagnostics/:id
// @Summary Get a diagnostic result
// @Description Returns one stored result by ID
// @Tags Diagnostics
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.DiagnosticResult
// @Failure 404 {object} ErrorResponse
// @Router /diagnostics/{id} [get]
func (h *DiagnosticHandler) GetResult(c *gin.Context) {
	id, ok := h.parseResultID(c)
	if !ok {
		return
	}

	result, err := h.diagnosticService.GetResult(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReport handles GET /api/v1/diagnostics/:id/report
// @Summary Get the report for a result
// @Description Returns the stored result with its maturity band and pillar rankings
// @Tags Diagnostics
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} services.DiagnosticReport
// @Failure 404 {object} ErrorResponse
// @Router /diagnostics/{id}/report [get]
func (h *DiagnosticHandler) GetReport(c *gin.Context) {
	id, ok := h.parseResultID(c)
	if !ok {
		return
	}

	report, err := h.diagnosticService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteResult handles DELETE /api/v1/diagnostics/:id
// @Summary Delete a diagnostic result
// @Description Removes a stored result; this is the only mutation results support
// @Tags Diagnostics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /diagnostics/{id} [delete]
func (h *DiagnosticHandler) DeleteResult(c *gin.Context) {
	id, ok := h.parseResultID(c)
	if !ok {
		return
	}

	if err := h.diagnosticService.DeleteResult(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseResultID parses the result ID path parameter
func (h *DiagnosticHandler) parseResultID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid result ID",
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondError maps service errors to HTTP responses
func (h *DiagnosticHandler) respondError(c *gin.Context, err error) {
	if models.IsNotFoundError(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An unexpected error occurred",
	})
}

// RegisterRoutes registers diagnostic handler routes
func (h *DiagnosticHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	diagnostics := rg.Group("/diagnostics")
	{
		// Public endpoints: submitting and reading back one's own report.
		// Result IDs are unguessable ObjectIDs handed out at submission.
		diagnostics.POST("", h.Submit)
		diagnostics.GET("/:id", h.GetResult)
		diagnostics.GET("/:id/report", h.GetReport)

		// Admin endpoints
		diagnostics.GET("", authMiddleware, h.ListResults)
		diagnostics.DELETE("/:id", authMiddleware, h.DeleteResult)
	}
}
