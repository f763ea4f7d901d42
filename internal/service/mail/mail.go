package mail

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/rokhoon/geo-briefing/internal/config"
	"github.com/rokhoon/geo-briefing/internal/model/recipient"
)

// Sender delivers rendered briefing reports over SMTP. One blocking send
// per request, no retry; a failure is reported back, never escalated — the
// run and its history entry stand regardless.
type Sender struct {
	cfg  config.MailConfig
	send func(*gomail.Message) error
	now  func() time.Time
}

// NewSender returns a Sender for the given SMTP configuration.
func NewSender(cfg config.MailConfig) *Sender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password)
	return &Sender{
		cfg:  cfg,
		send: func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		now:  time.Now,
	}
}

// Send delivers the HTML report to every recipient. The sender credential
// is validated first; nothing is attempted when it is missing or still a
// placeholder.
func (s *Sender) Send(recipients []recipient.Recipient, htmlBody string) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)

	addresses := make([]string, len(recipients))
	for i, r := range recipients {
		addresses[i] = m.FormatAddress(r.Email, r.Name)
	}
	m.SetHeader("To", addresses...)
	m.SetHeader("Subject", fmt.Sprintf("🌤️ Daily AI Briefing - %s", s.now().Format("2006-01-02")))
	m.SetBody("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("[mail] briefing report sent to %d recipients", len(recipients))
	return nil
}
