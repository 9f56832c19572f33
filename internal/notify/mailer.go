// Package notify contains the outbound notification sinks used by the
// escalation fan-out: the SMTP mailer and the Telegram ops channel. Every
// sink is best-effort; callers log failures and carry on.
package notify

import (
	"fmt"
	"net/smtp"
	"time"
)

// Mailer is the email sink the escalation engine fans out to. Sends may
// fail; the engine treats any error as non-fatal.
type Mailer interface {
	SendEscalationToOwner(toEmail, ownerName, complaintTitle string, complaintID uint,
		reason, escalatedByName, escalatedByEmail string, escalatedAt time.Time) error
	SendEscalationToAdmin(toEmail, adminName, complaintTitle string, complaintID uint, reason string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
	host     string
}

// NewSMTPMailer creates a mailer for the given relay. host is used for
// SMTP PLAIN auth; addr is host:port.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		Addr:     host + ":" + port,
		Username: username,
		Password: password,
		From:     from,
		host:     host,
	}
}

// SendEscalationToOwner mails the complaint owner with the full escalation
// details: who escalated, when, and why.
func (m *SMTPMailer) SendEscalationToOwner(toEmail, ownerName, complaintTitle string, complaintID uint,
	reason, escalatedByName, escalatedByEmail string, escalatedAt time.Time) error {

	subject := fmt.Sprintf("Your complaint #%d has been escalated", complaintID)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your complaint '%s' (#%d) has been escalated to senior management for priority attention.\n\n"+
			"Escalated by: %s (%s)\n"+
			"Date: %s\n"+
			"Reason: %s\n\n"+
			"You will be notified of any further updates.\n\n"+
			"ResolveIT Complaint Management",
		ownerName, complaintTitle, complaintID,
		escalatedByName, escalatedByEmail,
		escalatedAt.Format("Jan 02, 2006 15:04"),
		reason,
	)
	return m.send(toEmail, subject, body)
}

// SendEscalationToAdmin mails an admin that an escalated complaint needs
// review.
func (m *SMTPMailer) SendEscalationToAdmin(toEmail, adminName, complaintTitle string, complaintID uint, reason string) error {
	subject := fmt.Sprintf("Escalated complaint #%d requires review", complaintID)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Complaint '%s' (#%d) has been escalated and requires your attention.\n\n"+
			"Reason: %s\n\n"+
			"Please review it in the admin dashboard.\n\n"+
			"ResolveIT Complaint Management",
		adminName, complaintTitle, complaintID, reason,
	)
	return m.send(toEmail, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.Username, m.Password, m.host)
	if err := smtp.SendMail(m.Addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}
