package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/fahmiks/portfolio-api/internal/server/config"
)

// SMTPMailer sends contact messages through an authenticated SMTP account.
// The configured account is the envelope sender; the visitor's address goes
// into Reply-To so the owner can answer directly.
type SMTPMailer struct {
	client    *gomail.Client
	account   string
	recipient string
}

func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPAccount),
		gomail.WithPassword(cfg.SMTPPassword),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{
		client:    client,
		account:   cfg.SMTPAccount,
		recipient: cfg.MailRecipient,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := gomail.NewMsg()
	if err := mm.FromFormat(msg.Name, m.account); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := mm.To(m.recipient); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("mail reply-to: %w", err)
	}

	mm.Subject(fmt.Sprintf("New message from %s (Portfolio)", msg.Name))
	mm.SetBodyString(gomail.TypeTextPlain,
		fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body))

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("mail send: %w", err)
	}

	return nil
}
