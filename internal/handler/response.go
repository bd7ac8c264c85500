package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "cupping session not found"
	case errors.Is(err, domain.ErrSampleNotFound):
		return http.StatusNotFound, "SAMPLE_NOT_FOUND", "sample not found"
	case errors.Is(err, domain.ErrGradingNotFound):
		return http.StatusNotFound, "GRADING_NOT_FOUND", "no grading exists for this sample"
	case errors.Is(err, domain.ErrGradingExists):
		return http.StatusConflict, "GRADING_EXISTS", "a grading already exists for this sample; use update"
	case errors.Is(err, domain.ErrScoreNotFound):
		return http.StatusNotFound, "SCORE_NOT_FOUND", "cupping score not found"
	case errors.Is(err, domain.ErrAttachmentNotFound):
		return http.StatusNotFound, "ATTACHMENT_NOT_FOUND", "attachment not found"
	case errors.Is(err, domain.ErrAlreadyCertified):
		return http.StatusConflict, "ALREADY_CERTIFIED", "grading is already certified"
	case errors.Is(err, domain.ErrDuplicateTenantSlug):
		return http.StatusConflict, "DUPLICATE_SLUG", "tenant slug already exists"
	case errors.Is(err, domain.ErrTenantInactive):
		return http.StatusForbidden, "TENANT_INACTIVE", "tenant is inactive"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Field-level validation failures carry the rejected field in the payload.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(status, APIResponse{
			Success: false,
			Error:   &APIError{Code: code, Message: msg, Field: ve.Field},
		})
		return
	}
	RespondError(c, status, code, msg)
}

// tenantFromContext extracts the resolved tenant ID from the request context.
// Returns false if tenant context is missing (error response already written).
func tenantFromContext(c *gin.Context) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_TENANT", "missing tenant context")
		return uuid.Nil, false
	}
	return tenantID, true
}

// parseIDParam parses a UUID path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads offset/limit query params, clamping limit to 100.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
