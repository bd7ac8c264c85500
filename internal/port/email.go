package port

import "context"

// CertificationNotice carries the details of a newly certified grading for
// email delivery.
type CertificationNotice struct {
	ToEmail        string
	ToName         string
	SampleName     string
	Classification string
	Grade          string
	CertifiedBy    string
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendCertificationNotice(ctx context.Context, notice CertificationNotice) error
}
