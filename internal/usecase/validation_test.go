package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

func TestValidateTenantValid(t *testing.T) {
	record := entity.TenantRecord{
		"email":               "a@x.com",
		"name":                "Jo",
		"payment_amount":      "950.5",
		"payment_description": "May rent",
	}

	tenant, errs := ValidateTenant(record)

	assert.Empty(t, errs)
	assert.Equal(t, "a@x.com", tenant.Email)
	assert.Equal(t, "Jo", tenant.Name)
	assert.Equal(t, 950.5, tenant.PaymentAmount)
	assert.Equal(t, "May rent", tenant.PaymentDescription)
	assert.Equal(t, "N/A", tenant.PropertyLocation)
}

func TestValidateTenantNumericAmount(t *testing.T) {
	record := entity.TenantRecord{
		"email":               "a@x.com",
		"name":                "Jo",
		"payment_amount":      float64(1200),
		"payment_description": "June rent",
		"property_location":   "Unit 2B",
	}

	tenant, errs := ValidateTenant(record)

	assert.Empty(t, errs)
	assert.Equal(t, float64(1200), tenant.PaymentAmount)
	assert.Equal(t, "Unit 2B", tenant.PropertyLocation)
}

func TestValidateTenantMissingFields(t *testing.T) {
	record := entity.TenantRecord{"name": "Jo"}

	tenant, errs := ValidateTenant(record)

	assert.Nil(t, tenant)
	assert.Len(t, errs, 3)

	reason := joinValidationErrors(errs)
	assert.Contains(t, reason, "email")
	assert.Contains(t, reason, "payment_amount")
	assert.Contains(t, reason, "payment_description")
	assert.NotContains(t, reason, "name:")
}

func TestValidateTenantAllFieldsMissing(t *testing.T) {
	tenant, errs := ValidateTenant(entity.TenantRecord{})

	assert.Nil(t, tenant)
	assert.Len(t, errs, 4)
}

func TestValidateTenantInvalidAmount(t *testing.T) {
	record := entity.TenantRecord{
		"email":               "a@x.com",
		"name":                "Jo",
		"payment_amount":      "abc",
		"payment_description": "May rent",
	}

	tenant, errs := ValidateTenant(record)

	assert.Nil(t, tenant)
	assert.Len(t, errs, 1)
	assert.Equal(t, "payment_amount", errs[0].Field)
	// O valor inválido aparece literalmente no motivo da falha.
	assert.Contains(t, errs[0].Message, "abc")
}

func TestValidateTenantAmountUnsupportedType(t *testing.T) {
	record := entity.TenantRecord{
		"email":               "a@x.com",
		"name":                "Jo",
		"payment_amount":      []any{950},
		"payment_description": "May rent",
	}

	tenant, errs := ValidateTenant(record)

	assert.Nil(t, tenant)
	assert.Len(t, errs, 1)
	assert.Equal(t, "payment_amount", errs[0].Field)
}

func TestToFloatCoercions(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{"950.5", 950.5, true},
		{" 100 ", 100, true},
		{float64(75.25), 75.25, true},
		{42, 42, true},
		{"", 0, false},
		{"12,50", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, c := range cases {
		got, ok := toFloat(c.in)
		assert.Equal(t, c.ok, ok, "input %v", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %v", c.in)
		}
	}
}
