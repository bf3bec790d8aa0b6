package database

import (
	"context"
	"database/sql"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

type TenantRepository struct {
	DB *sql.DB
}

func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{DB: db}
}

// Load reads the tenant roster in insertion order. Rows come back in the same
// raw-record shape the TENANTS variable decodes to, so validation stays in
// one place; NULL columns are left out of the record entirely.
func (r *TenantRepository) Load(ctx context.Context) ([]entity.TenantRecord, error) {
	query := `
		SELECT email, name, payment_amount, payment_description, property_location
		FROM tenants
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.TenantRecord
	for rows.Next() {
		var email, name, amount, description, location sql.NullString

		if err := rows.Scan(&email, &name, &amount, &description, &location); err != nil {
			return nil, err
		}

		record := entity.TenantRecord{}
		if email.Valid {
			record["email"] = email.String
		}
		if name.Valid {
			record["name"] = name.String
		}
		if amount.Valid {
			record["payment_amount"] = amount.String
		}
		if description.Valid {
			record["payment_description"] = description.String
		}
		if location.Valid {
			record["property_location"] = location.String
		}

		records = append(records, record)
	}

	return records, rows.Err()
}
