// Package mail implements the outbound email notifier for contact form
// submissions over SMTP.
//
// Two messages are produced per accepted submission: an alert to the agency
// admin carrying the full submission, and a confirmation to the submitter
// with the agency's contact details. Both are advisory: the notifier is
// soft-disabled (all sends succeed without dialing) when no credentials are
// configured, and callers are expected to swallow send errors.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gigagency/go-contact-backend/internal/config"
	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/services"
)

// submittedAtLayout is the human-readable timestamp shown in the admin email.
const submittedAtLayout = "Jan 2, 2006 3:04:05 PM MST"

// SMTPNotifier sends the admin alert and customer confirmation emails via
// SMTP (STARTTLS on the configured port). It is safe for concurrent use;
// each send dials its own connection.
type SMTPNotifier struct {
	cfg   config.MailConfig
	title cases.Caser
}

var _ services.Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier builds a notifier from the mail configuration. When the
// account credentials are absent the notifier is soft-disabled: Enabled
// reports false and both sends return nil without any network activity.
func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:   cfg,
		title: cases.Title(language.English),
	}
}

// Enabled reports whether the mail transport is configured.
func (n *SMTPNotifier) Enabled() bool {
	return n.cfg.User != "" && n.cfg.Pass != ""
}

// NotifyAdmin sends the new-submission alert to the configured admin
// recipient (falling back to the sending account). The message body carries
// every submitted field, the assigned contact id, and a human-readable
// submission timestamp.
func (n *SMTPNotifier) NotifyAdmin(ctx context.Context, c *domain.Contact) error {
	if !n.Enabled() {
		return nil
	}

	to := n.cfg.AdminEmail
	if to == "" {
		to = n.cfg.User
	}

	msg := c.Message
	if msg == "" {
		msg = "No message provided"
	}

	var body bytes.Buffer
	err := adminTmpl.Execute(&body, adminData{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Service:   n.title.String(c.Service),
		Message:   msg,
		ContactID: c.ID,
		Submitted: c.CreatedAt.Format(submittedAtLayout),
	})
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}

	subject := fmt.Sprintf("New Consultation Request from %s", c.Name)
	return n.send(ctx, to, subject, body.String())
}

// NotifyCustomer sends the thank-you confirmation to the submitter. The
// contact details in the body come from configuration, not from the
// submitted record.
func (n *SMTPNotifier) NotifyCustomer(ctx context.Context, email, name string) error {
	if !n.Enabled() {
		return nil
	}

	var body bytes.Buffer
	err := customerTmpl.Execute(&body, customerData{
		Name:          name,
		CompanyName:   n.cfg.CompanyName,
		ContactPhone:  n.cfg.ContactPhone,
		ContactEmail:  n.cfg.ContactEmail,
		ContactOffice: n.cfg.ContactOffice,
	})
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Thank You for Contacting %s", n.cfg.CompanyName)
	return n.send(ctx, email, subject, body.String())
}

// send composes and delivers one HTML message.
func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	client, err := gomail.NewClient(n.cfg.SMTPHost,
		gomail.WithPort(n.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.User),
		gomail.WithPassword(n.cfg.Pass),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.User); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}
	return nil
}
