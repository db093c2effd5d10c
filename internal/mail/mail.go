package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/models"
)

// Configured reports whether an outbound transport is available. When false,
// contact messages are logged and accepted instead of mailed.
func Configured(cfg *config.Config) bool {
	return cfg.EmailHost != "" && cfg.EmailUser != "" && cfg.EmailPass != ""
}

// SendContact mails a contact-form submission to the site owner.
func SendContact(cfg *config.Config, m *models.ContactMessage) error {
	from := cfg.EmailFrom
	if from == "" {
		from = cfg.EmailUser
	}
	to := cfg.EmailTo
	if to == "" {
		to = cfg.EmailUser
	}

	subject := fmt.Sprintf("Contact Form: Message from %s", m.Name)
	if m.Subject != "" {
		subject = fmt.Sprintf("Contact Form: %s", m.Subject)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", m.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\r\n\r\n", m.Email)
	fmt.Fprintf(&b, "Message:\r\n%s\r\n", m.Message)

	addr := cfg.EmailHost + ":" + cfg.EmailPort
	auth := smtp.PlainAuth("", cfg.EmailUser, cfg.EmailPass, cfg.EmailHost)
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(b.String()))
}
