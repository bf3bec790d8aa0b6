package usecase

import (
	"context"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

// TenantSource carrega os registros brutos de tenants para uma execução.
// Implementado pela lista vinda do ambiente e pelo repositório Postgres.
type TenantSource interface {
	Load(ctx context.Context) ([]entity.TenantRecord, error)
}

// EmailService transmits one message per call, each over its own SMTP
// session. Implemented by mail.EmailSender.
type EmailService interface {
	SendReminder(to, subject, htmlBody string) error
	SendRunLog(to, subject, body, attachmentPath string) error
}
