package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// maxReportSamples bounds how many samples a single report will aggregate.
const maxReportSamples = 500

// ReportService assembles session-level evaluation reports.
type ReportService interface {
	SessionReport(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.SessionReport, error)
}

type reportService struct {
	sessionRepo port.SessionRepository
	sampleRepo  port.SampleRepository
	gradingRepo port.GradingRepository
	scoreRepo   port.ScoreRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	sessionRepo port.SessionRepository,
	sampleRepo port.SampleRepository,
	gradingRepo port.GradingRepository,
	scoreRepo port.ScoreRepository,
) ReportService {
	return &reportService{
		sessionRepo: sessionRepo,
		sampleRepo:  sampleRepo,
		gradingRepo: gradingRepo,
		scoreRepo:   scoreRepo,
	}
}

func (s *reportService) SessionReport(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.SessionReport, error) {
	session, err := s.sessionRepo.GetByID(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	samples, _, err := s.sampleRepo.ListBySession(ctx, tenantID, sessionID, 0, maxReportSamples)
	if err != nil {
		return nil, err
	}

	gradings, err := s.gradingRepo.ListBySession(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	gradingBySample := make(map[uuid.UUID]*domain.GreenBeanGrading, len(gradings))
	for i := range gradings {
		gradingBySample[gradings[i].SampleID] = &gradings[i]
	}

	scores, err := s.scoreRepo.ListBySession(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	scoresBySample := make(map[uuid.UUID][]domain.CuppingScore)
	for _, sc := range scores {
		scoresBySample[sc.SampleID] = append(scoresBySample[sc.SampleID], sc)
	}

	report := &domain.SessionReport{
		Session:     *session,
		Rows:        make([]domain.SampleReportRow, 0, len(samples)),
		SampleCount: len(samples),
	}

	for _, sample := range samples {
		row := domain.SampleReportRow{Sample: sample}

		if g, ok := gradingBySample[sample.ID]; ok {
			row.Grading = g
			report.GradedCount++
			if g.CertifiedBy != nil {
				report.CertifiedCount++
			}
		}

		if sampleScores := scoresBySample[sample.ID]; len(sampleScores) > 0 {
			row.CupperCount = len(sampleScores)
			var sum float64
			high, low := sampleScores[0].TotalScore, sampleScores[0].TotalScore
			for _, sc := range sampleScores {
				sum += sc.TotalScore
				if sc.TotalScore > high {
					high = sc.TotalScore
				}
				if sc.TotalScore < low {
					low = sc.TotalScore
				}
			}
			avg := sum / float64(len(sampleScores))
			row.AverageTotal = &avg
			row.HighTotal = &high
			row.LowTotal = &low
		}

		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
