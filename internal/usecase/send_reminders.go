package usecase

import (
	"context"
	"log"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

// SendRemindersUseCase is the first phase of a run: validate every tenant in
// list order and send one reminder email per valid record.
type SendRemindersUseCase struct {
	Source   TenantSource
	Renderer *ReminderRenderer
	Email    EmailService
}

func NewSendRemindersUseCase(source TenantSource, renderer *ReminderRenderer, email EmailService) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		Source:   source,
		Renderer: renderer,
		Email:    email,
	}
}

// Execute processes tenants sequentially and returns the accumulated result.
// One bad record never aborts the batch: every outcome, success or failure,
// lands on the RunResult and the loop moves on.
func (uc *SendRemindersUseCase) Execute(ctx context.Context) *entity.RunResult {
	result := entity.NewRunResult()

	tenants, err := uc.Source.Load(ctx)
	if err != nil {
		log.Printf("ERROR: failed to load tenants: %v", err)
		tenants = nil
	}

	log.Printf("Run %s: loaded %d tenants.", result.RunID, len(tenants))

	if len(tenants) == 0 {
		log.Printf("WARN: no tenants found to send emails.")
		return result
	}

	for _, record := range tenants {
		uc.processTenant(record, result)
	}

	return result
}

func (uc *SendRemindersUseCase) processTenant(record entity.TenantRecord, result *entity.RunResult) {
	// Fallbacks para o registro de falha, já que o próprio campo pode faltar.
	name := record.StringOr("name", "Unknown")
	email := record.StringOr("email", "Unknown")

	tenant, validationErrors := ValidateTenant(record)
	if len(validationErrors) > 0 {
		reason := "validation failed: " + joinValidationErrors(validationErrors)
		log.Printf("ERROR: invalid tenant data for %s (%s): %s", name, email, reason)
		result.RecordFailure(name, email, reason)
		return
	}

	body, err := uc.Renderer.Render(tenant)
	if err != nil {
		log.Printf("ERROR: failed to render reminder for %s (%s): %v", name, email, err)
		result.RecordFailure(name, email, "render error: "+err.Error())
		return
	}

	if err := uc.Email.SendReminder(tenant.Email, ReminderSubject, body); err != nil {
		log.Printf("ERROR: SMTP error when sending email to %s: %v", tenant.Email, err)
		result.RecordFailure(name, email, "SMTP error: "+err.Error())
		return
	}

	log.Printf("Reminder email sent successfully to %s (%s).", tenant.Name, tenant.Email)
	result.RecordSuccess()
}
