package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var requiredTenantFields = []string{"email", "name", "payment_amount", "payment_description"}

// ValidateTenant checks a raw record and, when valid, returns the typed
// tenant. Error messages name every missing field and echo bad values
// verbatim, because they become the failure reason in the run summary.
func ValidateTenant(record entity.TenantRecord) (*entity.Tenant, []ValidationError) {
	var errors []ValidationError

	for _, field := range requiredTenantFields {
		if _, ok := record[field]; !ok {
			errors = append(errors, ValidationError{field, "is required"})
		}
	}
	if len(errors) > 0 {
		return nil, errors
	}

	amount, ok := toFloat(record["payment_amount"])
	if !ok {
		errors = append(errors, ValidationError{
			"payment_amount",
			fmt.Sprintf("invalid value: %v", record["payment_amount"]),
		})
		return nil, errors
	}

	tenant := &entity.Tenant{
		Email:              record.StringOr("email", ""),
		Name:               record.StringOr("name", ""),
		PaymentAmount:      amount,
		PaymentDescription: record.StringOr("payment_description", ""),
		PropertyLocation:   record.StringOr("property_location", "N/A"),
	}

	return tenant, nil
}

// toFloat coerces a JSON value into a float. Amounts arrive either as JSON
// numbers or as strings like "950.5".
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, ", ")
}
