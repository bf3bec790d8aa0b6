package entity

// TenantRecord is the raw shape a tenant arrives in, either decoded from the
// TENANTS JSON array or built from a database row. It stays a map until
// validation because field *presence* matters, not just zero values.
type TenantRecord map[string]any

// StringOr returns the string value stored under key, or fallback when the
// key is absent, empty or not a string.
func (r TenantRecord) StringOr(key, fallback string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// Tenant é a entidade validada, pronta para renderização.
type Tenant struct {
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	PaymentAmount      float64 `json:"payment_amount"`
	PaymentDescription string  `json:"payment_description"`
	PropertyLocation   string  `json:"property_location"`
}
