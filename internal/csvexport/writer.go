package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns defines the CSV header row for session report exports.
var Columns = []string{
	"Sample Name",
	"Origin",
	"Region",
	"Producer",
	"Variety",
	"Process",
	"Classification",
	"Grade",
	"Primary Defects",
	"Secondary Defects",
	"Full Defect Equivalents",
	"Quality Score",
	"Average Screen Size",
	"Uniformity %",
	"Moisture %",
	"Water Activity",
	"Bulk Density",
	"Bean Color",
	"Cupper Count",
	"Average Cup Score",
	"High Cup Score",
	"Low Cup Score",
	"Graded By",
	"Graded At",
	"Certified By",
	"Certification Date",
}

// Writer wraps csv.Writer for exporting session reports as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns)
}

// WriteReport converts the report's sample rows to CSV rows and writes them.
func (w *Writer) WriteReport(report *domain.SessionReport) error {
	for i := range report.Rows {
		row := ReportRow(&report.Rows[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// ReportRow converts a single report row to a string slice matching Columns.
// Grading columns are left empty for ungraded samples; score columns are left
// empty for samples nobody has cupped.
func ReportRow(r *domain.SampleReportRow) []string {
	row := make([]string, len(Columns))

	row[0] = r.Sample.Name
	row[1] = r.Sample.Origin
	row[2] = r.Sample.Region
	row[3] = r.Sample.Producer
	row[4] = r.Sample.Variety
	row[5] = r.Sample.Process

	if g := r.Grading; g != nil {
		row[6] = string(g.Classification)
		row[7] = g.Grade
		row[8] = strconv.Itoa(g.PrimaryDefects)
		row[9] = strconv.Itoa(g.SecondaryDefects)
		row[10] = formatScore(&g.FullDefectEquivalents)
		row[11] = formatScore(g.QualityScore)
		row[12] = formatScore(g.AverageScreenSize)
		row[13] = formatScore(g.UniformityPercentage)
		row[14] = formatScore(g.MoistureContent)
		row[15] = formatScore(g.WaterActivity)
		row[16] = formatScore(g.BulkDensity)
		if g.BeanColorAssessment != nil {
			row[17] = string(*g.BeanColorAssessment)
		}
		row[22] = g.GradedBy
		row[23] = formatTime(g.GradedAt)
		if g.CertifiedBy != nil {
			row[24] = *g.CertifiedBy
		}
		row[25] = formatTime(g.CertificationDate)
	}

	if r.CupperCount > 0 {
		row[18] = strconv.Itoa(r.CupperCount)
		row[19] = formatScore(r.AverageTotal)
		row[20] = formatScore(r.HighTotal)
		row[21] = formatScore(r.LowTotal)
	}

	return row
}

func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a session name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_session_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(sessionName, ext string) string {
	sanitized := SanitizeFilename(sessionName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
