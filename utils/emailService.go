package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"folio/config"
	"folio/models"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Folio <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// SendInquiryNotification mails a new contact inquiry to the support inbox.
// The inquiry is already persisted; a send failure is logged and ignored.
func SendInquiryNotification(inquiry *models.Inquiry) {
	to := config.AppConfig.SupportEmail
	if to == "" {
		return
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333;">New Inquiry: %s</h2>
					<p style="font-size: 14px; color: #555555;"><b>Name:</b> %s</p>
					<p style="font-size: 14px; color: #555555;"><b>Email:</b> %s</p>
					<p style="font-size: 14px; color: #555555;"><b>Message:</b></p>
					<p style="font-size: 14px; color: #666666; white-space: pre-wrap;">%s</p>
				</div>
			</body>
		</html>
	`, inquiry.Subject, inquiry.Name, inquiry.Email, inquiry.Message)

	if err := SendEmail([]string{to}, "New Inquiry: "+inquiry.Subject, body); err != nil {
		log.Printf("Inquiry notification for %q not sent: %v", inquiry.Email, err)
	}
}
