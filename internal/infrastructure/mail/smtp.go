package mail

import (
	"context"
	"crypto/tls"

	gomail "gopkg.in/gomail.v2"

	"github.com/poojan019/user-management/internal/application/ports"
)

// Config holds the SMTP connection profile, supplied once at process
// start. Defaults match a Gmail relay: port 587, STARTTLS on, direct
// TLS off.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	StartTLS bool
	SSL      bool
}

// SMTPSender implements ports.MailSender with one dial-and-send
// transaction per call.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg Config) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	if cfg.StartTLS {
		d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	}
	return &SMTPSender{dialer: d, from: cfg.From}
}

func (s *SMTPSender) Send(ctx context.Context, msg ports.Message) error {
	// gomail carries no context through the SMTP exchange; honor
	// cancellation up to the point of dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.Recipients...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	if msg.AttachmentPath != "" {
		m.Attach(msg.AttachmentPath)
	}
	return s.dialer.DialAndSend(m)
}
