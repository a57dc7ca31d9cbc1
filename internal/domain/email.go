package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReminderEmailData holds data for the event reminder email.
type ReminderEmailData struct {
	Email     string
	FirstName string
	EventName string
	EventDate string
	ImageURL  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendReminder(ctx context.Context, data *ReminderEmailData) error
}
