package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// SessionHandler handles cupping session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
// @Summary Create a cupping session
// @Description Create a new cupping session in draft status
// @Tags sessions
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param request body CreateSessionRequest true "Session details"
// @Success 201 {object} Response{data=domain.CuppingSession} "Session created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var input service.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, session)
}

// List handles GET /api/v1/sessions
// @Summary List cupping sessions
// @Description List the tenant's cupping sessions, newest first
// @Tags sessions
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.CuppingSession,meta=PagMeta} "List of sessions"
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	sessions, total, err := h.sessionService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, sessions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/sessions/:id
// @Summary Get a cupping session
// @Description Get session details
// @Tags sessions
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.CuppingSession} "Session details"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), tenantID, sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, session)
}

// Update handles PUT /api/v1/sessions/:id
// @Summary Update a cupping session
// @Description Update session details or status
// @Tags sessions
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param request body UpdateSessionRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.CuppingSession} "Session updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), tenantID, sessionID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, session)
}

// Delete handles DELETE /api/v1/sessions/:id
// @Summary Delete a cupping session
// @Description Delete a session and its samples
// @Tags sessions
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Session deleted"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), tenantID, sessionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "session deleted"})
}
