package usecase

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/segundorentals/rent-reminder/internal/entity"
)

const ReminderSubject = "Rent Payment Reminder"

// reminderTemplate is the fixed HTML body sent to every tenant. Tenant data
// is operator-controlled, so values are interpolated verbatim (text/template,
// no escaping).
const reminderTemplate = `<html>
<head>
    <style>
        /* Fallback styles can be placed here */
    </style>
</head>
<body>
    <p>Dear {{.Name}},</p>
    <p>
        This is a friendly reminder that your rent payment of <strong>${{.Amount}}</strong> is due soon.
    </p>
    <p>
        <strong>Payment Details:</strong><br>
        Property: {{.Property}}<br>
        Description: {{.Description}}<br>
        Amount: <strong>${{.Amount}}</strong>
    </p>
    <p>
        If payment is not received by the 5th day of the month, a 10% late fee will be imposed.
    </p>
    <p>
        <a href="https://app.payrent.com/sign-in"
           style="display: inline-block; padding: 10px 20px; font-size: 16px; color: #ffffff; background-color: #ff9500; text-decoration: none; border-radius: 5px; margin-right: 10px;">
            Pay Now
        </a>
    </p>
    <p>
        If you have any questions or need more information, please visit:
        <a href="https://segundorentalservices.net/" style="color: #1a0dab; text-decoration: none;">https://segundorentalservices.net/</a>
    </p>
    <p>Thank you!<br><br>Have a great day!</p>
</body>
</html>
`

type reminderData struct {
	Name        string
	Amount      string
	Property    string
	Description string
}

// ReminderRenderer builds the HTML reminder body for one tenant.
type ReminderRenderer struct {
	tmpl *template.Template
}

func NewReminderRenderer() *ReminderRenderer {
	return &ReminderRenderer{
		tmpl: template.Must(template.New("reminder").Parse(reminderTemplate)),
	}
}

func (r *ReminderRenderer) Render(t *entity.Tenant) (string, error) {
	data := reminderData{
		Name:        t.Name,
		Amount:      fmt.Sprintf("%.2f", t.PaymentAmount),
		Property:    t.PropertyLocation,
		Description: t.PaymentDescription,
	}

	var body bytes.Buffer
	if err := r.tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}

	return body.String(), nil
}
