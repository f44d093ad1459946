package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	SendMail(ctx context.Context, msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("sender.SendMail: no recipients")
	}
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Content != nil && attachment.Name != "" {
			content := attachment.Content
			m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, content)
				return err
			}))
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sender.SendMail: %w", err)
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
