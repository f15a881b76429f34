package services

import (
	"context"

	"github.com/fahmiks/portfolio-api/internal/server/mail"
)

// ContactService relays contact-form submissions to the portfolio owner.
type ContactService struct {
	mailer mail.Mailer
}

func NewContactService(mailer mail.Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Send(ctx context.Context, name, email, message string) error {
	return s.mailer.Send(ctx, mail.Message{Name: name, Email: email, Body: message})
}
