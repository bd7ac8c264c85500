package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alaswadi/cupperly-sub000/internal/csvexport"
	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/handler"
	"github.com/Alaswadi/cupperly-sub000/mocks"
)

func exportReport(sessionID uuid.UUID) *domain.SessionReport {
	avg := 84.5
	quality := 91.5

	return &domain.SessionReport{
		Session: domain.CuppingSession{ID: sessionID, Name: "Spring Arrivals 2026"},
		Rows: []domain.SampleReportRow{
			{
				Sample: domain.Sample{ID: uuid.New(), Name: "Yirgacheffe Lot 4", Origin: "Ethiopia"},
				Grading: &domain.GreenBeanGrading{
					Classification:        domain.ClassificationSpecialty,
					Grade:                 "Grade 1",
					PrimaryDefects:        1,
					SecondaryDefects:      4,
					FullDefectEquivalents: 1.8,
					QualityScore:          &quality,
				},
				CupperCount:  2,
				AverageTotal: &avg,
				HighTotal:    &avg,
				LowTotal:     &avg,
			},
		},
		SampleCount: 1,
		GradedCount: 1,
	}
}

func TestReportExport_CSV(t *testing.T) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)

	tenantID := uuid.New()
	sessionID := uuid.New()

	reportSvc.On("SessionReport", mock.Anything, tenantID, sessionID).
		Return(exportReport(sessionID), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/report/export?format=csv", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	setTenantContext(c, tenantID)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Spring_Arrivals_2026_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, csvexport.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Sample Name", records[0][0])
	assert.Len(t, records[0], len(csvexport.Columns))

	assert.Equal(t, "Yirgacheffe Lot 4", records[1][0])
	assert.Equal(t, "SPECIALTY_GRADE", records[1][6])
	assert.Equal(t, "1.80", records[1][10])
	assert.Equal(t, "91.50", records[1][11])

	reportSvc.AssertExpectations(t)
}

func TestReportExport_XLSX(t *testing.T) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)

	tenantID := uuid.New()
	sessionID := uuid.New()

	reportSvc.On("SessionReport", mock.Anything, tenantID, sessionID).
		Return(exportReport(sessionID), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/report/export?format=xlsx", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	setTenantContext(c, tenantID)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// XLSX files are zip archives.
	assert.Equal(t, []byte{0x50, 0x4B}, w.Body.Bytes()[:2])
}

func TestReportExport_UnsupportedFormat(t *testing.T) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)

	tenantID := uuid.New()
	sessionID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/report/export?format=pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	setTenantContext(c, tenantID)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportSvc.AssertNotCalled(t, "SessionReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportExport_SessionNotFound(t *testing.T) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)

	tenantID := uuid.New()
	sessionID := uuid.New()

	reportSvc.On("SessionReport", mock.Anything, tenantID, sessionID).
		Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/report/export", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	setTenantContext(c, tenantID)

	h.Export(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestSessionReport_Success(t *testing.T) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)

	tenantID := uuid.New()
	sessionID := uuid.New()

	reportSvc.On("SessionReport", mock.Anything, tenantID, sessionID).
		Return(exportReport(sessionID), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/report", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	setTenantContext(c, tenantID)

	h.SessionReport(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	reportSvc.AssertExpectations(t)
}
