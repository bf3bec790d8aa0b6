package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("EMAIL_ADDRESS", "reminders@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("LANDLORD_EMAIL", "owner@example.com")
	t.Setenv("TENANTS", "")
	t.Setenv("DATABASE_URL", "")
}

func TestLoadSuccess(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TENANTS", `[
		{"email":"a@x.com","name":"Jo","payment_amount":"950.5","payment_description":"May rent"},
		{"email":"b@x.com","name":"Ana","payment_amount":1200,"payment_description":"May rent","property_location":"Unit 2B"}
	]`)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "reminders@example.com", cfg.EmailAddress)
	assert.Equal(t, "owner@example.com", cfg.LandlordEmail)
	assert.Equal(t, DefaultLogPath, cfg.LogPath)
	assert.Len(t, cfg.Tenants, 2)
	assert.Equal(t, "Jo", cfg.Tenants[0].StringOr("name", ""))
}

func TestLoadMissingSMTPVars(t *testing.T) {
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_ADDRESS", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("LANDLORD_EMAIL", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	for _, name := range []string{"SMTP_SERVER", "SMTP_PORT", "EMAIL_ADDRESS", "EMAIL_PASSWORD", "LANDLORD_EMAIL"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestLoadMissingSinglVar(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EMAIL_PASSWORD", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_PASSWORD")
	assert.NotContains(t, err.Error(), "SMTP_SERVER")
}

func TestLoadInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_PORT", "abc")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "abc")
}

func TestLoadInvalidTenantsJSON(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TENANTS", "not json")

	cfg, err := Load()

	// Config degradada: o processo segue com zero tenants.
	assert.NoError(t, err)
	assert.Empty(t, cfg.Tenants)
}

func TestLoadTenantsNotAnArray(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TENANTS", `{"email":"a@x.com"}`)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Empty(t, cfg.Tenants)
}

func TestLoadTenantsMissing(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Empty(t, cfg.Tenants)
}

func TestStaticTenantSourceLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TENANTS", `[{"email":"a@x.com","name":"Jo","payment_amount":"100","payment_description":"rent"}]`)

	cfg, err := Load()
	assert.NoError(t, err)

	source := &StaticTenantSource{Tenants: cfg.Tenants}
	records, err := source.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
}
