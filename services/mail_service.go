// services/mail_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"
)

// Attachment is a binary attachment for an outgoing email
type Attachment struct {
	Name     string
	MimeType string
	Data     []byte
}

// Mailer sends templated notification emails. Sends are best-effort from the
// booking flow's perspective: callers log the returned error and move on, the
// booking or payment outcome stands either way.
type Mailer interface {
	Send(to, subject, htmlBody string, attachment *Attachment) error
}

// SMTPMailer delivers mail through an SMTP relay
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPMailer creates a new SMTP mailer. With empty credentials the mailer
// is degraded: every Send reports a configuration error.
func NewSMTPMailer(host string, port int, username, password, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, username, password),
		from:     username,
		fromName: fromName,
	}
}

// Configured reports whether SMTP credentials were provided
func (m *SMTPMailer) Configured() bool {
	return m.dialer.Username != "" && m.dialer.Password != ""
}

// Send delivers one email, with an optional attachment
func (m *SMTPMailer) Send(to, subject, htmlBody string, attachment *Attachment) error {
	if !m.Configured() {
		return errors.New("mail is not configured")
	}
	if to == "" {
		return errors.New("no recipient address")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if attachment != nil {
		data := attachment.Data
		msg.Attach(attachment.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {attachment.MimeType}}),
		)
	}

	return m.dialer.DialAndSend(msg)
}

// BookingReceivedBody renders the booking acknowledgement email
func BookingReceivedBody(name, trip string) string {
	return fmt.Sprintf(`<html><body>
<h2>Booking Received</h2>
<p>Hi %s,</p>
<p>We have received your booking for <strong>%s</strong>. Our team will reach
out shortly to finalize the details. Complete the payment to confirm your spot.</p>
<p>Happy travels,<br>Wanderer Travels</p>
</body></html>`, name, trip)
}

// PaymentReceiptBody renders the payment receipt email
func PaymentReceiptBody(name, trip, paymentID string, date time.Time) string {
	return fmt.Sprintf(`<html><body>
<h2>Payment Receipt</h2>
<p>Hi %s,</p>
<p>Your payment for <strong>%s</strong> has been received and your booking is
confirmed. Your invoice is attached.</p>
<p>Payment ID: %s<br>Date: %s</p>
<p>Happy travels,<br>Wanderer Travels</p>
</body></html>`, name, trip, paymentID, date.Format("02 Jan, 2006"))
}

// PasswordReminderBody renders the admin password reminder email
func PasswordReminderBody(password string) string {
	return fmt.Sprintf(`<html><body>
<p>Hello,</p>
<p>Your Admin Password is: <strong>%s</strong></p>
<p>Keep it safe!</p>
</body></html>`, password)
}
