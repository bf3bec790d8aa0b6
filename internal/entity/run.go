package entity

import (
	"time"

	"github.com/google/uuid"
)

// FailureRecord notes which tenant failed and why. The reason text ends up in
// the run summary emailed to the landlord, so it must be self-explanatory.
type FailureRecord struct {
	TenantName string `json:"tenant"`
	Email      string `json:"email"`
	Reason     string `json:"reason"`
}

// RunResult accumulates the outcome of one reminder run. It is created fresh
// per run and passed explicitly between the two phases; nothing about it is
// shared or global.
type RunResult struct {
	RunID        string          `json:"run_id"`
	StartedAt    time.Time       `json:"started_at"`
	SuccessCount int             `json:"success_count"`
	FailureCount int             `json:"failure_count"`
	Failures     []FailureRecord `json:"failures"`

	// LogReportSent records whether the second phase managed to email the
	// run log. Informational only; it never feeds back into the counts.
	LogReportSent bool `json:"log_report_sent"`
}

func NewRunResult() *RunResult {
	return &RunResult{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

func (r *RunResult) RecordSuccess() {
	r.SuccessCount++
}

// RecordFailure appends a failure in processing order.
func (r *RunResult) RecordFailure(tenantName, email, reason string) {
	r.FailureCount++
	r.Failures = append(r.Failures, FailureRecord{
		TenantName: tenantName,
		Email:      email,
		Reason:     reason,
	})
}
