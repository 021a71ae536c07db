package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactNotification(toEmail, name, fromEmail, company, service, message string) error
	SendContactAcknowledgement(toEmail, name string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendContactNotification alerts the site owner about a new submission.
func (s *emailService) SendContactNotification(toEmail, name, fromEmail, company, service, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New contact submission from %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Contact Submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</div>
	`, html.EscapeString(name), html.EscapeString(fromEmail), html.EscapeString(company),
		html.EscapeString(service), html.EscapeString(message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification to %s: %w", toEmail, err)
	}
	return nil
}

// SendContactAcknowledgement thanks the sender for reaching out.
func (s *emailService) SendContactAcknowledgement(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "We received your message")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for getting in touch, %s!</h2>
			<p>We received your message and will get back to you within one business day.</p>
			<p>— The Consultly team</p>
		</div>
	`, html.EscapeString(name))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send acknowledgement to %s: %w", toEmail, err)
	}
	return nil
}
