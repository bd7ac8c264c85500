package domain

// SampleReportRow combines a sample with its grading result and aggregated
// cupping scores for session-level reporting.
type SampleReportRow struct {
	Sample       Sample            `json:"sample"`
	Grading      *GreenBeanGrading `json:"grading,omitempty"`
	CupperCount  int               `json:"cupper_count"`
	AverageTotal *float64          `json:"average_total,omitempty"`
	HighTotal    *float64          `json:"high_total,omitempty"`
	LowTotal     *float64          `json:"low_total,omitempty"`
}

// SessionReport is the full evaluation picture of one cupping session.
type SessionReport struct {
	Session        CuppingSession    `json:"session"`
	Rows           []SampleReportRow `json:"rows"`
	SampleCount    int               `json:"sample_count"`
	GradedCount    int               `json:"graded_count"`
	CertifiedCount int               `json:"certified_count"`
}
