package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated organizational tenant.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CuppingSession groups the samples evaluated together on one table.
type CuppingSession struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	TenantID    uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Status      SessionStatus `db:"status" json:"status"`
	CuppingDate *time.Time    `db:"cupping_date" json:"cupping_date"`
	CreatedBy   string        `db:"created_by" json:"created_by"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Sample is one coffee evaluated within a session. It owns at most one
// GreenBeanGrading record.
type Sample struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TenantID  uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	SessionID uuid.UUID  `db:"session_id" json:"session_id"`
	Name      string     `db:"name" json:"name"`
	Origin    string     `db:"origin" json:"origin"`
	Region    string     `db:"region" json:"region"`
	Producer  string     `db:"producer" json:"producer"`
	Variety   string     `db:"variety" json:"variety"`
	Process   string     `db:"process" json:"process"`
	Altitude  string     `db:"altitude" json:"altitude"`
	RoastDate *time.Time `db:"roast_date" json:"roast_date"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// DefectItem is one row of a green bean defect tally.
type DefectItem struct {
	Type     DefectType     `json:"type"`
	Count    int            `json:"count"`
	Category DefectCategory `json:"category"`
}

// DefectBreakdown is the ordered list of defect tallies stored as JSONB.
type DefectBreakdown []DefectItem

// Value implements driver.Valuer for JSONB storage.
func (b DefectBreakdown) Value() (driver.Value, error) {
	if b == nil {
		b = DefectBreakdown{}
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (b *DefectBreakdown) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = nil
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into DefectBreakdown", src)
	}
}

// ScreenDistribution maps screen-size keys (flat "13".."20", peaberry
// "peaberry_8".."peaberry_13") to the percentage of the reference sample
// weight retained on that screen. Stored as JSONB; raw weights are not
// persisted.
type ScreenDistribution map[string]float64

// Value implements driver.Valuer for JSONB storage.
func (d ScreenDistribution) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (d *ScreenDistribution) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into ScreenDistribution", src)
	}
}

// GreenBeanGrading is the physical/defect grading result for one sample.
// PrimaryDefects, SecondaryDefects, FullDefectEquivalents, Classification,
// Grade and QualityScore are derived fields recomputed server-side from
// DefectBreakdown and the measurements on every create and update; values
// supplied by clients for them are ignored.
type GreenBeanGrading struct {
	ID                     uuid.UUID          `db:"id" json:"id"`
	TenantID               uuid.UUID          `db:"tenant_id" json:"tenant_id"`
	SampleID               uuid.UUID          `db:"sample_id" json:"sample_id"`
	GradingSystem          GradingSystem      `db:"grading_system" json:"grading_system"`
	PrimaryDefects         int                `db:"primary_defects" json:"primary_defects"`
	SecondaryDefects       int                `db:"secondary_defects" json:"secondary_defects"`
	FullDefectEquivalents  float64            `db:"full_defect_equivalents" json:"full_defect_equivalents"`
	DefectBreakdown        DefectBreakdown    `db:"defect_breakdown" json:"defect_breakdown"`
	ScreenSizeDistribution ScreenDistribution `db:"screen_size_distribution" json:"screen_size_distribution,omitempty"`
	AverageScreenSize      *float64           `db:"average_screen_size" json:"average_screen_size,omitempty"`
	UniformityPercentage   *float64           `db:"uniformity_percentage" json:"uniformity_percentage,omitempty"`
	MoistureContent        *float64           `db:"moisture_content" json:"moisture_content,omitempty"`
	WaterActivity          *float64           `db:"water_activity" json:"water_activity,omitempty"`
	BulkDensity            *float64           `db:"bulk_density" json:"bulk_density,omitempty"`
	UniformityScore        *int               `db:"uniformity_score" json:"uniformity_score,omitempty"`
	BeanColorAssessment    *BeanColor         `db:"bean_color_assessment" json:"bean_color_assessment,omitempty"`
	Classification         Classification     `db:"classification" json:"classification"`
	Grade                  string             `db:"grade" json:"grade"`
	QualityScore           *float64           `db:"quality_score" json:"quality_score,omitempty"`
	Notes                  string             `db:"notes" json:"notes"`
	GradedBy               string             `db:"graded_by" json:"graded_by"`
	GradedAt               *time.Time         `db:"graded_at" json:"graded_at,omitempty"`
	CertifiedBy            *string            `db:"certified_by" json:"certified_by,omitempty"`
	CertificationDate      *time.Time         `db:"certification_date" json:"certification_date,omitempty"`
	CreatedAt              time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time          `db:"updated_at" json:"updated_at"`
}

// CuppingScore is one cupper's sensory evaluation of a sample under the SCA
// cupping protocol. TotalScore is derived server-side from the ten attribute
// scores minus taint/fault deductions.
type CuppingScore struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TenantID   uuid.UUID `db:"tenant_id" json:"tenant_id"`
	SampleID   uuid.UUID `db:"sample_id" json:"sample_id"`
	CupperName string    `db:"cupper_name" json:"cupper_name"`
	Fragrance  float64   `db:"fragrance" json:"fragrance"`
	Flavor     float64   `db:"flavor" json:"flavor"`
	Aftertaste float64   `db:"aftertaste" json:"aftertaste"`
	Acidity    float64   `db:"acidity" json:"acidity"`
	Body       float64   `db:"body" json:"body"`
	Balance    float64   `db:"balance" json:"balance"`
	Uniformity float64   `db:"uniformity" json:"uniformity"`
	CleanCup   float64   `db:"clean_cup" json:"clean_cup"`
	Sweetness  float64   `db:"sweetness" json:"sweetness"`
	Overall    float64   `db:"overall" json:"overall"`
	TaintCups  int       `db:"taint_cups" json:"taint_cups"`
	FaultCups  int       `db:"fault_cups" json:"fault_cups"`
	TotalScore float64   `db:"total_score" json:"total_score"`
	Notes      string    `db:"notes" json:"notes"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about a file uploaded for a sample
// (bag photos, lab certificates, and the like).
type Attachment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	SampleID     uuid.UUID  `db:"sample_id" json:"sample_id"`
	UploadedBy   string     `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
