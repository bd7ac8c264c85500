package noop

import (
	"context"
	"log"

	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notices to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendCertificationNotice(_ context.Context, notice port.CertificationNotice) error {
	log.Printf("[NOOP EMAIL] Certification notice for %s (%s): %s graded %s/%s, certified by %s",
		notice.ToName, notice.ToEmail, notice.SampleName, notice.Classification, notice.Grade, notice.CertifiedBy)
	return nil
}
