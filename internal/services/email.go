package services

import (
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	return d.DialAndSend(m)
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to Best Cars"
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. You can now post reviews for any of our dealerships.</p>
		<p>Best regards,<br>The Best Cars Team</p>
	`, name)

	return s.SendEmail(to, subject, body)
}
