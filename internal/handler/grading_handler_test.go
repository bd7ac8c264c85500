package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/handler"
	"github.com/Alaswadi/cupperly-sub000/internal/middleware"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	"github.com/Alaswadi/cupperly-sub000/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setTenantContext(c *gin.Context, tenantID uuid.UUID) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
}

func TestGradingHandler_Get_UngradedSampleReturnsNull(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()

	gradingSvc.On("Get", mock.Anything, tenantID, sampleID).
		Return(nil, domain.ErrGradingNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/samples/"+sampleID.String()+"/grading", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
	gradingSvc.AssertExpectations(t)
}

func TestGradingHandler_Get_SampleNotFound(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()

	gradingSvc.On("Get", mock.Anything, tenantID, sampleID).
		Return(nil, domain.ErrSampleNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/samples/"+sampleID.String()+"/grading", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGradingHandler_Create_Success(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()
	rec := &domain.GreenBeanGrading{
		ID:             uuid.New(),
		TenantID:       tenantID,
		SampleID:       sampleID,
		Classification: domain.ClassificationSpecialty,
		Grade:          "Grade 1",
	}

	gradingSvc.On("Create", mock.Anything, tenantID, sampleID, mock.AnythingOfType("*service.GradingInput")).
		Return(&service.GradingResult{Grading: rec}, nil)

	body, _ := json.Marshal(map[string]any{
		"defect_breakdown": []map[string]any{
			{"type": "full_black", "count": 2, "category": 1},
		},
		"graded_by": "QC Lab",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/samples/"+sampleID.String()+"/grading", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	gradingSvc.AssertExpectations(t)
}

func TestGradingHandler_Create_DuplicateReturnsConflict(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()

	gradingSvc.On("Create", mock.Anything, tenantID, sampleID, mock.AnythingOfType("*service.GradingInput")).
		Return(nil, domain.ErrGradingExists)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/samples/"+sampleID.String()+"/grading", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "GRADING_EXISTS", resp.Error.Code)
}

func TestGradingHandler_Create_ValidationErrorReturns400(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()

	gradingSvc.On("Create", mock.Anything, tenantID, sampleID, mock.AnythingOfType("*service.GradingInput")).
		Return(nil, domain.Invalid("moisture_content", "must be between 0 and 100 percent"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/samples/"+sampleID.String()+"/grading", bytes.NewReader([]byte(`{"moisture_content": 140}`)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "moisture_content", resp.Error.Field)
}

func TestGradingHandler_Certify_AlreadyCertified(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	tenantID := uuid.New()
	sampleID := uuid.New()

	gradingSvc.On("Certify", mock.Anything, tenantID, sampleID, mock.AnythingOfType("*service.CertifyInput")).
		Return(nil, domain.ErrAlreadyCertified)

	body := []byte(`{"certified_by": "Head Grader"}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/samples/"+sampleID.String()+"/grading/certify", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: sampleID.String()}}
	setTenantContext(c, tenantID)

	h.Certify(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGradingHandler_InvalidSampleID(t *testing.T) {
	gradingSvc := new(mocks.MockGradingService)
	h := handler.NewGradingHandler(gradingSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/samples/not-a-uuid/grading", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	setTenantContext(c, uuid.New())

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gradingSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
