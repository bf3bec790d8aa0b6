package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

const RunLogSubject = "Email Reminder Logs - Execution Summary"

// SendRunLogUseCase is the second phase of a run: email the summary plus the
// run's log file to the landlord.
type SendRunLogUseCase struct {
	Email         EmailService
	LandlordEmail string
	LogPath       string
}

func NewSendRunLogUseCase(email EmailService, landlordEmail, logPath string) *SendRunLogUseCase {
	return &SendRunLogUseCase{
		Email:         email,
		LandlordEmail: landlordEmail,
		LogPath:       logPath,
	}
}

// Execute sends the summary email. A missing log file only drops the
// attachment; the email still goes out. The returned error is informational —
// callers log it but it never changes the outcome of the reminder phase.
func (uc *SendRunLogUseCase) Execute(ctx context.Context, result *entity.RunResult) error {
	body := buildSummaryBody(result)

	attachment := uc.LogPath
	if _, err := os.Stat(attachment); err != nil {
		log.Printf("ERROR: log file not found at %s. Cannot attach to log email.", attachment)
		attachment = ""
	}

	if err := uc.Email.SendRunLog(uc.LandlordEmail, RunLogSubject, body, attachment); err != nil {
		log.Printf("ERROR: SMTP error when sending log email: %v", err)
		return fmt.Errorf("send run log: %w", err)
	}

	log.Printf("Log email sent successfully to the landlord.")
	return nil
}

func buildSummaryBody(result *entity.RunResult) string {
	var b strings.Builder

	b.WriteString("Hello,\n\n")
	fmt.Fprintf(&b, "Run %s finished: %d reminders sent, %d failed.\n",
		result.RunID, result.SuccessCount, result.FailureCount)

	if len(result.Failures) > 0 {
		b.WriteString("\nFailures:\n")
		for _, f := range result.Failures {
			fmt.Fprintf(&b, "- %s (%s): %s\n", f.TenantName, f.Email, f.Reason)
		}
	}

	b.WriteString("\nPlease find attached the log file for the latest execution of the email reminder run.\n")
	b.WriteString("\nBest regards,\nYour Automated Email System\n")

	return b.String()
}
