package email

import (
	"context"
	"errors"

	"portfolio-api/internal/domain"
)

// Sender define a interface de notificação por correio do formulário de contacto.
type Sender interface {
	SendContactNotification(ctx context.Context, to string, message domain.ContactMessage) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendContactNotification(_ context.Context, _ string, _ domain.ContactMessage) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
