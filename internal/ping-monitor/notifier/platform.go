package notifier

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/pkg/mail"
	"context"
	"fmt"
	"html"

	"go.uber.org/zap"
)

type mailPlatform struct {
	sender     mail.Sender
	recipients []string
}

func (m *mailPlatform) Create(ctx context.Context, alert model.Alert) error {
	err := m.sender.SendMail(ctx, mail.Message{
		To:       m.recipients,
		Subject:  alert.Title,
		TextBody: alert.Message,
		HTMLBody: fmt.Sprintf("<h3>%s</h3><p>%s</p>", html.EscapeString(alert.Title), html.EscapeString(alert.Message)),
	})
	if err != nil {
		return fmt.Errorf("mailPlatform.Create: %w", err)
	}
	return nil
}

func NewMailPlatform(sender mail.Sender, recipients []string) Platform {
	return &mailPlatform{
		sender:     sender,
		recipients: recipients,
	}
}

type logPlatform struct {
	logger *zap.Logger
}

func (l *logPlatform) Create(_ context.Context, alert model.Alert) error {
	l.logger.Warn(alert.Message, zap.String("alert.title", alert.Title), zap.String("alert.icon", alert.IconURL))
	return nil
}

// NewLogPlatform surfaces alerts as warning log lines.
func NewLogPlatform(logger *zap.Logger) Platform {
	return &logPlatform{logger: logger}
}
