package usecase

import (
	"context"
	"log"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

// Pipeline executes the two phases of one run, in order, each exactly once:
// reminders first, then the log report. There is no branching back and no
// retry; a failed log report never changes the reminder phase's result.
type Pipeline struct {
	Reminders *SendRemindersUseCase
	Reporter  *SendRunLogUseCase
}

func NewPipeline(reminders *SendRemindersUseCase, reporter *SendRunLogUseCase) *Pipeline {
	return &Pipeline{
		Reminders: reminders,
		Reporter:  reporter,
	}
}

func (p *Pipeline) Run(ctx context.Context) *entity.RunResult {
	result := p.Reminders.Execute(ctx)

	log.Printf("Run %s completed: success=%d failure=%d.",
		result.RunID, result.SuccessCount, result.FailureCount)

	// Falha no envio do log já foi logada; o resultado da fase 1 permanece.
	result.LogReportSent = p.Reporter.Execute(ctx, result) == nil

	return result
}
