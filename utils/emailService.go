package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"vidya/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Vidya Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML Wrapper for a consistent mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D4ED8; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111827; line-height: 1.6; }
			.content h2 { color: #111827; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1D4ED8; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Vidya Academy</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered student
func SendWelcomeEmail(name, email string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account has been created. Browse the available batches and start learning.</p>
		<div class="info-box">Tip: notes for every session can be saved for offline reading from the video player.</div>`, name)
	return SendEmail([]string{email}, "Welcome to Vidya Academy", getEmailTemplate("Welcome!", body))
}

// SendEnrollmentEmail confirms access to a batch
func SendEnrollmentEmail(name, email, batchName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have been enrolled in <b>%s</b>. All videos, notes and quizzes of this batch are now unlocked for you.</p>`, name, batchName)
	return SendEmail([]string{email}, "Batch enrollment confirmed", getEmailTemplate("Enrollment Confirmed", body))
}
