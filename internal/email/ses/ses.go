package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendCertificationNotice(ctx context.Context, notice port.CertificationNotice) error {
	subject := fmt.Sprintf("Grading certified: %s", notice.SampleName)
	htmlBody := buildCertificationHTML(notice)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nThe green bean grading for %s has been certified by %s.\n\nClassification: %s\nGrade: %s\n\nCupperly",
		notice.ToName, notice.SampleName, notice.CertifiedBy, notice.Classification, notice.Grade,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{notice.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildCertificationHTML(notice port.CertificationNotice) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Grading certified</h2>
  <p>Hi %s,</p>
  <p>The green bean grading for <strong>%s</strong> has been certified by %s.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 16px 6px 0; color: #666;">Classification</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 16px 6px 0; color: #666;">Grade</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Cupperly - Coffee Quality Platform</p>
</body>
</html>`,
		html.EscapeString(notice.ToName),
		html.EscapeString(notice.SampleName),
		html.EscapeString(notice.CertifiedBy),
		html.EscapeString(notice.Classification),
		html.EscapeString(notice.Grade),
	)
}
