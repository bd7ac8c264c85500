package handler

import (
	"time"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Highland Roasters"`
	Slug string `json:"slug" binding:"required" example:"highland"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Highland Coffee Lab"`
	Slug     *string `json:"slug" example:"highland-lab"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// CreateSessionRequest represents the create session request body.
type CreateSessionRequest struct {
	Name        string     `json:"name" binding:"required" example:"Harvest 2026 Table 3"`
	Description string     `json:"description" example:"Pre-shipment samples from Huila"`
	CuppingDate *time.Time `json:"cupping_date" example:"2026-09-02T09:00:00Z"`
	CreatedBy   string     `json:"created_by" example:"M. Vargas"`
}

// UpdateSessionRequest represents the update session request body.
type UpdateSessionRequest struct {
	Name        *string               `json:"name" example:"Harvest 2026 Table 3 - Final"`
	Description *string               `json:"description" example:"Updated description"`
	Status      *domain.SessionStatus `json:"status" example:"completed"`
	CuppingDate *time.Time            `json:"cupping_date" example:"2026-09-02T09:00:00Z"`
}

// CreateSampleRequest represents the create sample request body.
type CreateSampleRequest struct {
	Name      string     `json:"name" binding:"required" example:"Finca El Paraiso Lot 14"`
	Origin    string     `json:"origin" example:"Colombia"`
	Region    string     `json:"region" example:"Huila"`
	Producer  string     `json:"producer" example:"Diego Bermudez"`
	Variety   string     `json:"variety" example:"Castillo"`
	Process   string     `json:"process" example:"washed"`
	Altitude  string     `json:"altitude" example:"1750-1900m"`
	RoastDate *time.Time `json:"roast_date" example:"2026-08-28T00:00:00Z"`
}

// UpdateSampleRequest represents the update sample request body.
type UpdateSampleRequest struct {
	Name      *string    `json:"name" example:"Finca El Paraiso Lot 14B"`
	Origin    *string    `json:"origin" example:"Colombia"`
	Region    *string    `json:"region" example:"Huila"`
	Producer  *string    `json:"producer" example:"Diego Bermudez"`
	Variety   *string    `json:"variety" example:"Pink Bourbon"`
	Process   *string    `json:"process" example:"honey"`
	Altitude  *string    `json:"altitude" example:"1800m"`
	RoastDate *time.Time `json:"roast_date" example:"2026-08-28T00:00:00Z"`
}

// GradingRequest represents the grading request body. Screen size weights are
// grams retained per screen; derived fields in the stored grading are always
// recomputed server-side from this input.
type GradingRequest struct {
	GradingSystem          domain.GradingSystem   `json:"grading_system" example:"sca"`
	DefectBreakdown        domain.DefectBreakdown `json:"defect_breakdown"`
	ScreenSizeWeights      map[string]float64     `json:"screen_size_weights" example:"15:120.5,16:180.0"`
	IncludePeaberry        bool                   `json:"include_peaberry" example:"false"`
	MoistureContent        *float64               `json:"moisture_content" example:"10.8"`
	WaterActivity          *float64               `json:"water_activity" example:"0.58"`
	BulkDensity            *float64               `json:"bulk_density" example:"712.5"`
	UniformityScore        *int                   `json:"uniformity_score" example:"8"`
	BeanColor              *domain.BeanColor      `json:"bean_color" example:"bluish-green"`
	OverrideClassification *domain.Classification `json:"override_classification" example:"OFF_GRADE"`
	Notes                  string                 `json:"notes" example:"Slight fade on top screens"`
	GradedBy               string                 `json:"graded_by" example:"Q Grader #4417"`
}

// CertifyRequest represents the certify request body.
type CertifyRequest struct {
	CertifiedBy string `json:"certified_by" binding:"required" example:"Head Grader"`
	NotifyEmail string `json:"notify_email" example:"producer@paraiso.co"`
	NotifyName  string `json:"notify_name" example:"Diego Bermudez"`
}

// ScoreRequest represents the cupping score request body.
type ScoreRequest struct {
	CupperName string  `json:"cupper_name" binding:"required" example:"A. Okafor"`
	Fragrance  float64 `json:"fragrance" example:"8.25"`
	Flavor     float64 `json:"flavor" example:"8.5"`
	Aftertaste float64 `json:"aftertaste" example:"8.0"`
	Acidity    float64 `json:"acidity" example:"8.5"`
	Body       float64 `json:"body" example:"8.0"`
	Balance    float64 `json:"balance" example:"8.25"`
	Uniformity float64 `json:"uniformity" example:"10"`
	CleanCup   float64 `json:"clean_cup" example:"10"`
	Sweetness  float64 `json:"sweetness" example:"10"`
	Overall    float64 `json:"overall" example:"8.5"`
	TaintCups  int     `json:"taint_cups" example:"0"`
	FaultCups  int     `json:"fault_cups" example:"0"`
	Notes      string  `json:"notes" example:"Stone fruit, panela, silky body"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// GradingResultResponse represents a grading write response. Warnings carry
// advisory screen distribution notices that do not block the write.
type GradingResultResponse struct {
	Grading  domain.GreenBeanGrading `json:"grading"`
	Warnings []string                `json:"warnings,omitempty" example:"screen size percentages total 103.2%"`
}

// AttachmentWithDownloadURL represents an attachment with its download URL.
type AttachmentWithDownloadURL struct {
	Attachment  domain.Attachment `json:"attachment"`
	DownloadURL string            `json:"download_url" example:"https://s3.amazonaws.com/cupperly-uploads/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
