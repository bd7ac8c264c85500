package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// AttachmentHandler handles sample attachment endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/samples/:id/attachments
// @Summary Upload a sample attachment
// @Description Upload a file (PDF, JPG, PNG) for a sample, e.g. bag photos or lab certificates
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param file formData file true "File to upload (PDF, JPG, or PNG)"
// @Param uploaded_by formData string false "Name of the uploader"
// @Success 201 {object} Response{data=domain.Attachment} "Attachment uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Sample not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /samples/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.AttachmentUploadInput{
		TenantID:   tenantID,
		SampleID:   sampleID,
		UploadedBy: c.PostForm("uploaded_by"),
		File:       file,
		Header:     header,
	}

	att, err := h.attachmentService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, att)
}

// ListBySample handles GET /api/v1/samples/:id/attachments
// @Summary List sample attachments
// @Description List the attachments uploaded for a sample
// @Tags attachments
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Sample ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Attachment,meta=PagMeta} "List of attachments"
// @Router /samples/{id}/attachments [get]
func (h *AttachmentHandler) ListBySample(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sampleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	atts, total, err := h.attachmentService.ListBySample(c.Request.Context(), tenantID, sampleID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, atts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/attachments/:id
// @Summary Get an attachment
// @Description Get attachment metadata with a presigned download URL
// @Tags attachments
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=AttachmentWithDownloadURL} "Attachment with download URL"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	attachmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	att, err := h.attachmentService.GetByID(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"attachment": att, "download_url": url})
}

// Delete handles DELETE /api/v1/attachments/:id
// @Summary Delete an attachment
// @Description Delete an attachment from storage and remove its metadata
// @Tags attachments
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Attachment deleted"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	attachmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), tenantID, attachmentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
