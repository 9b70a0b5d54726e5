package domain

import "context"

// Mailer sends emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SubmissionConfirmationEmailData holds data for the registration receipt.
type SubmissionConfirmationEmailData struct {
	Email     string
	Name      string
	ICT       string
	Campi     []string
	FormTitle string // optional
}

// EmailService sends domain-level emails.
type EmailService interface {
	SendSubmissionConfirmation(ctx context.Context, data *SubmissionConfirmationEmailData) error
}
