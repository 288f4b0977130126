package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"nainaland/internal/model"
)

// Notifier delivers an alert to the site owner. Email, SMS or chat
// integrations implement it; the default only logs.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// LogNotifier writes notifications to a structured logger
type LogNotifier struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, subject, body string) error {
	n.logger.InfoContext(ctx, "notification", "subject", subject, "body", body)
	return nil
}

// ContactSubject and ContactBody render a new contact message for a notification.
func ContactSubject(m model.Message) string {
	return fmt.Sprintf("New enquiry from %s (%s)", m.Name, m.Interest)
}

func ContactBody(m model.Message) string {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nInterest: %s\n", m.Name, m.Email, m.Phone, m.Interest)
	if m.PropertyID != nil {
		body += fmt.Sprintf("Property: #%d\n", *m.PropertyID)
	}
	return body + "\n" + m.Message
}
