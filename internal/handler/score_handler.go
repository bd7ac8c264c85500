package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// ScoreHandler handles cupping score endpoints.
type ScoreHandler struct {
	scoreService service.ScoreService
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scoreService service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// Create handles POST /api/v1/samples/:id/scores
// @Summary Submit a cupping score
// @Description Record one cupper's sensory evaluation of a sample. The total is computed server-side.
// @Tags scores
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param request body ScoreRequest true "Attribute scores"
// @Success 201 {object} Response{data=domain.CuppingScore} "Score created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Router /samples/{id}/scores [post]
func (h *ScoreHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	score, err := h.scoreService.Create(c.Request.Context(), tenantID, sampleID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, score)
}

// ListBySample handles GET /api/v1/samples/:id/scores
// @Summary List a sample's cupping scores
// @Description List every cupper's score for a sample
// @Tags scores
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Success 200 {object} Response{data=[]domain.CuppingScore} "List of scores"
// @Router /samples/{id}/scores [get]
func (h *ScoreHandler) ListBySample(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	scores, err := h.scoreService.ListBySample(c.Request.Context(), tenantID, sampleID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, scores)
}

// Update handles PUT /api/v1/scores/:id
// @Summary Update a cupping score
// @Description Replace one cupper's score and recompute the total
// @Tags scores
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Score ID (UUID)"
// @Param request body ScoreRequest true "Attribute scores"
// @Success 200 {object} Response{data=domain.CuppingScore} "Score updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Score not found"
// @Router /scores/{id} [put]
func (h *ScoreHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	scoreID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	score, err := h.scoreService.Update(c.Request.Context(), tenantID, scoreID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, score)
}

// GetByID handles GET /api/v1/scores/:id
// @Summary Get a cupping score
// @Description Get one cupper's score by its ID
// @Tags scores
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Score ID (UUID)"
// @Success 200 {object} Response{data=domain.CuppingScore} "Score details"
// @Failure 404 {object} ErrorResponseBody "Score not found"
// @Router /scores/{id} [get]
func (h *ScoreHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	scoreID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	score, err := h.scoreService.GetByID(c.Request.Context(), tenantID, scoreID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, score)
}

// Delete handles DELETE /api/v1/scores/:id
// @Summary Delete a cupping score
// @Description Remove one cupper's score
// @Tags scores
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Score ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Score deleted"
// @Failure 404 {object} ErrorResponseBody "Score not found"
// @Router /scores/{id} [delete]
func (h *ScoreHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	scoreID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scoreService.Delete(c.Request.Context(), tenantID, scoreID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "score deleted"})
}
