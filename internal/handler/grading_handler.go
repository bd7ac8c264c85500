package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// GradingHandler handles green bean grading endpoints. A grading is keyed by
// its sample: one record per sample, created with POST and replaced with PUT.
type GradingHandler struct {
	gradingService service.GradingService
}

// NewGradingHandler creates a new GradingHandler.
func NewGradingHandler(gradingService service.GradingService) *GradingHandler {
	return &GradingHandler{gradingService: gradingService}
}

// Get handles GET /api/v1/samples/:id/grading
// @Summary Get a sample's grading
// @Description Get the green bean grading for a sample. Returns null data when the sample has not been graded yet.
// @Tags grading
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Success 200 {object} Response{data=domain.GreenBeanGrading} "Grading details, or null if ungraded"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Router /samples/{id}/grading [get]
func (h *GradingHandler) Get(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grading, err := h.gradingService.Get(c.Request.Context(), tenantID, sampleID)
	if err != nil {
		// An ungraded sample is a normal read outcome, not an error.
		if errors.Is(err, domain.ErrGradingNotFound) {
			RespondOK(c, nil)
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, grading)
}

// Create handles POST /api/v1/samples/:id/grading
// @Summary Grade a sample
// @Description Record the green bean grading for a sample. Derived totals, classification and quality score are computed server-side; values sent for them are ignored.
// @Tags grading
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param request body GradingRequest true "Grading measurements"
// @Success 201 {object} Response{data=GradingResultResponse} "Grading created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Failure 409 {object} ErrorResponseBody "Grading already exists"
// @Router /samples/{id}/grading [post]
func (h *GradingHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.GradingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.gradingService.Create(c.Request.Context(), tenantID, sampleID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"grading": result.Grading, "warnings": result.Warnings})
}

// Update handles PUT /api/v1/samples/:id/grading
// @Summary Replace a sample's grading
// @Description Replace the green bean grading for a sample and recompute all derived values. Certification stamps are preserved.
// @Tags grading
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param request body GradingRequest true "Grading measurements"
// @Success 200 {object} Response{data=GradingResultResponse} "Grading updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "No grading exists for this sample"
// @Router /samples/{id}/grading [put]
func (h *GradingHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.GradingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.gradingService.Update(c.Request.Context(), tenantID, sampleID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"grading": result.Grading, "warnings": result.Warnings})
}

// Delete handles DELETE /api/v1/samples/:id/grading
// @Summary Delete a sample's grading
// @Description Remove the green bean grading from a sample
// @Tags grading
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Grading deleted"
// @Failure 404 {object} ErrorResponseBody "No grading exists for this sample"
// @Router /samples/{id}/grading [delete]
func (h *GradingHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.gradingService.Delete(c.Request.Context(), tenantID, sampleID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "grading deleted"})
}

// Certify handles POST /api/v1/samples/:id/grading/certify
// @Summary Certify a grading
// @Description Certify a sample's grading and optionally notify a recipient by email
// @Tags grading
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param request body CertifyRequest true "Certification details"
// @Success 200 {object} Response{data=domain.GreenBeanGrading} "Grading certified"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "No grading exists for this sample"
// @Failure 409 {object} ErrorResponseBody "Already certified"
// @Router /samples/{id}/grading/certify [post]
func (h *GradingHandler) Certify(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CertifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	grading, err := h.gradingService.Certify(c.Request.Context(), tenantID, sampleID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, grading)
}
