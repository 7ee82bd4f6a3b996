package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/barbeariamb/admin-api/internal/config"
)

// Message is a rendered birthday discount email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	return m.dialer.DialAndSend(gm)
}

var _ Mailer = (*SMTPMailer)(nil)
