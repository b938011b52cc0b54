// Package email sends transactional mail over SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Sender delivers mail through a single SMTP account.
type Sender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	// ConfirmBaseURL is the API base the confirmation link points at.
	ConfirmBaseURL string
}

// NewSender creates an SMTP sender.
func NewSender(host, port, username, password, from, confirmBaseURL string) *Sender {
	return &Sender{
		Host:           host,
		Port:           port,
		Username:       username,
		Password:       password,
		From:           from,
		ConfirmBaseURL: confirmBaseURL,
	}
}

const confirmationSubject = "Confirm your email address"

const confirmationTemplate = `
<!DOCTYPE html>
<html>
<body>
    <p>Hi {{.Username}},</p>
    <p>Thanks for signing up. Please confirm your email address to activate your account.</p>
    <p><a href="{{.Link}}">Confirm email</a></p>
    <p>If you didn't create an account, you can safely ignore this email.</p>
</body>
</html>
`

var confirmationBody = template.Must(template.New("confirmation").Parse(confirmationTemplate))

// SendConfirmation mails the confirmation link for the given token.
func (s *Sender) SendConfirmation(to, username, token string) error {
	link := fmt.Sprintf("%s/users/confirm-email?token=%s", s.ConfirmBaseURL, token)

	var body bytes.Buffer
	if err := confirmationBody.Execute(&body, struct {
		Username string
		Link     string
	}{Username: username, Link: link}); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	return s.send(to, confirmationSubject, body.String())
}

func (s *Sender) send(to, subject, htmlBody string) error {
	msg := []byte("From: " + s.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	addr := s.Host + ":" + s.Port
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	if err := smtp.SendMail(addr, auth, s.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
