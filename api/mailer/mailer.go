package mailer

import (
	"errors"
	"os"

	"github.com/matcornic/hermes/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var product = hermes.Hermes{
	Product: hermes.Product{
		Name: "Postboard",
		Link: appURL(),
	},
}

func appURL() string {
	if u := os.Getenv("APP_URL"); u != "" {
		return u
	}
	return "http://localhost:8888"
}

// SendResetPassword emails a one-time password-reset link.
func SendResetPassword(toEmail, username, resetLink string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return errors.New("SENDGRID_API_KEY is not set")
	}

	email := hermes.Email{
		Body: hermes.Body{
			Name: username,
			Intros: []string{
				"You received this email because a password reset was requested for your account.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to choose a new password:",
					Button: hermes.Button{
						Text: "Reset your password",
						Link: resetLink,
					},
				},
			},
			Outros: []string{
				"If you did not request a password reset, no further action is required.",
			},
		},
	}

	htmlBody, err := product.GenerateHTML(email)
	if err != nil {
		return err
	}
	textBody, err := product.GeneratePlainText(email)
	if err != nil {
		return err
	}

	from := mail.NewEmail("Postboard", senderAddress())
	to := mail.NewEmail(username, toEmail)
	message := mail.NewSingleEmail(from, "Reset your password", to, textBody, htmlBody)

	client := sendgrid.NewSendClient(apiKey)
	_, err = client.Send(message)
	return err
}

func senderAddress() string {
	if addr := os.Getenv("MAIL_FROM"); addr != "" {
		return addr
	}
	return "no-reply@postboard.local"
}
