package mail

import (
	"bytes"
	"fmt"
	"io"

	"github.com/stockpilot/backend/internal/application/report"
	"github.com/stockpilot/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer sends report emails through an SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

var _ report.AttachmentMailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new SMTP mailer from configuration
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendWithAttachment sends an email carrying a single PDF attachment
func (m *SMTPMailer) SendWithAttachment(to, subject, body, filename string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(attachment))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	m.logger.Info("Mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("attachment_bytes", len(attachment)),
	)
	return nil
}
