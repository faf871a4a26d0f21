package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	mail "gopkg.in/mail.v2"

	"github.com/soukly/api/config"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	dialer *mail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	dialer := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &Mailer{
		dialer: dialer,
		from:   cfg.SMTP.From,
	}
}

// Send renders body as a template with data and delivers it to the recipient.
func (m *Mailer) Send(to, subject, body string, data any) error {
	tmpl, err := template.New("mail").Funcs(sprig.FuncMap()).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse mail template: %w", err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", rendered.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
