package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/csvexport"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	"github.com/Alaswadi/cupperly-sub000/internal/xlsxexport"
)

// ReportHandler handles session report and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SessionReport handles GET /api/v1/sessions/:id/report
// @Summary Get a session report
// @Description Get the full evaluation picture of a session: every sample with its grading and aggregated cupping scores
// @Tags reports
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.SessionReport} "Session report"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id}/report [get]
func (h *ReportHandler) SessionReport(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.SessionReport(c.Request.Context(), tenantID, sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Export handles GET /api/v1/sessions/:id/report/export?format=csv|xlsx
// @Summary Export a session report
// @Description Download the session report as a CSV or XLSX file
// @Tags reports
// @Produce text/csv
// @Param X-Tenant-ID header string true "Tenant ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id}/report/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "format must be csv or xlsx")
		return
	}

	report, err := h.reportService.SessionReport(c.Request.Context(), tenantID, sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(report.Session.Name, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if format == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := xlsxexport.WriteReport(c.Writer, report); err != nil {
			HandleError(c, err)
		}
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteReport(report); err != nil {
		return
	}
	w.Flush()
}
