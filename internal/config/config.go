package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

// DefaultLogPath is the run log in the working directory. Append mode, never
// truncated between runs.
const DefaultLogPath = "email_reminder.log"

// Config carrega tudo que o pipeline precisa, montado uma única vez no boot.
// Nenhum componente de negócio lê variáveis de ambiente diretamente.
type Config struct {
	SMTPServer    string
	SMTPPort      int
	EmailAddress  string
	EmailPassword string
	LandlordEmail string

	// DatabaseURL, when set, switches the tenant source to Postgres.
	DatabaseURL string

	// Tenants parsed from the TENANTS env var. Invalid JSON degrades to an
	// empty list so the log-report phase still runs.
	Tenants []entity.TenantRecord

	LogPath string
}

// Load builds the configuration from the process environment.
//
// Missing SMTP/landlord settings or a non-numeric port are fatal: the caller
// is expected to exit before any send attempt. A missing or invalid TENANTS
// value is only logged (degraded config, not fatal).
func Load() (*Config, error) {
	cfg := &Config{
		SMTPServer:    os.Getenv("SMTP_SERVER"),
		EmailAddress:  os.Getenv("EMAIL_ADDRESS"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		LandlordEmail: os.Getenv("LANDLORD_EMAIL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogPath:       DefaultLogPath,
	}

	rawPort := os.Getenv("SMTP_PORT")

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"SMTP_SERVER", cfg.SMTPServer},
		{"SMTP_PORT", rawPort},
		{"EMAIL_ADDRESS", cfg.EmailAddress},
		{"EMAIL_PASSWORD", cfg.EmailPassword},
		{"LANDLORD_EMAIL", cfg.LandlordEmail},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP environment variables: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT value: %q", rawPort)
	}
	cfg.SMTPPort = port

	cfg.Tenants = parseTenants(os.Getenv("TENANTS"))

	return cfg, nil
}

func parseTenants(raw string) []entity.TenantRecord {
	if raw == "" {
		log.Printf("ERROR: TENANTS environment variable is missing.")
		return nil
	}

	var tenants []entity.TenantRecord
	if err := json.Unmarshal([]byte(raw), &tenants); err != nil {
		log.Printf("ERROR: TENANTS environment variable contains invalid JSON: %v", err)
		return nil
	}
	return tenants
}

// StaticTenantSource serves the tenant list parsed from the environment.
type StaticTenantSource struct {
	Tenants []entity.TenantRecord
}

func (s *StaticTenantSource) Load(ctx context.Context) ([]entity.TenantRecord, error) {
	return s.Tenants, nil
}
