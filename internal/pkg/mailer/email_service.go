// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendColdEmail(toEmail, contactName, subject, body, talkToSalesLink string) error
	SendWorkflowSummary(toEmail string, prospectsFound, emailsGenerated int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, frontendURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendColdEmail(toEmail, contactName, subject, body, talkToSalesLink string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Hi %s,</p>
			<p>%s</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Talk to Sales</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If this isn't relevant to you, feel free to ignore this email.</p>
		</div>
	`, contactName, body, talkToSalesLink, talkToSalesLink)

	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cold email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Cold email sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendWorkflowSummary(toEmail string, prospectsFound, emailsGenerated int) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your AI sales agents are up and running")

	dashboardLink := fmt.Sprintf("%s/dashboard", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Onboarding complete!</h2>
			<p>Your automated sales workflow has started:</p>
			<ul>
				<li>%d prospects researched</li>
				<li>%d cold emails generated</li>
			</ul>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Dashboard</a>
		</div>
	`, prospectsFound, emailsGenerated, dashboardLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send workflow summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Workflow summary sent to %s\n", toEmail)
	return nil
}
