package mailer

import (
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends HTML notification mail. Callers that treat delivery as
// best-effort swallow the returned *apperr.MailSend.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return &apperr.MailSend{Err: err}
	}
	return nil
}

// Noop satisfies Mailer without an SMTP server. Used in tests and when no
// SMTP host is configured.
type Noop struct{}

func (Noop) Send(to, subject, htmlBody string) error { return nil }
