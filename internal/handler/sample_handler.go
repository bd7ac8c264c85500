package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// SampleHandler handles sample endpoints.
type SampleHandler struct {
	sampleService service.SampleService
}

// NewSampleHandler creates a new SampleHandler.
func NewSampleHandler(sampleService service.SampleService) *SampleHandler {
	return &SampleHandler{sampleService: sampleService}
}

// Create handles POST /api/v1/sessions/:id/samples
// @Summary Register a sample
// @Description Add a sample to a cupping session
// @Tags samples
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param request body CreateSampleRequest true "Sample details"
// @Success 201 {object} Response{data=domain.Sample} "Sample created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id}/samples [post]
func (h *SampleHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CreateSampleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sample, err := h.sampleService.Create(c.Request.Context(), tenantID, sessionID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sample)
}

// ListBySession handles GET /api/v1/sessions/:id/samples
// @Summary List session samples
// @Description List the samples registered in a session
// @Tags samples
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Sample,meta=PagMeta} "List of samples"
// @Router /sessions/{id}/samples [get]
func (h *SampleHandler) ListBySession(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	samples, total, err := h.sampleService.ListBySession(c.Request.Context(), tenantID, sessionID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, samples, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/samples/:id
// @Summary Get a sample
// @Description Get sample details
// @Tags samples
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Success 200 {object} Response{data=domain.Sample} "Sample details"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Router /samples/{id} [get]
func (h *SampleHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sample, err := h.sampleService.GetByID(c.Request.Context(), tenantID, sampleID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sample)
}

// Update handles PUT /api/v1/samples/:id
// @Summary Update a sample
// @Description Update sample details
// @Tags samples
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param request body UpdateSampleRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Sample} "Sample updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Router /samples/{id} [put]
func (h *SampleHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateSampleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sample, err := h.sampleService.Update(c.Request.Context(), tenantID, sampleID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sample)
}

// Delete handles DELETE /api/v1/samples/:id
// @Summary Delete a sample
// @Description Delete a sample along with its grading and scores
// @Tags samples
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Sample deleted"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Router /samples/{id} [delete]
func (h *SampleHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sampleService.Delete(c.Request.Context(), tenantID, sampleID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "sample deleted"})
}
