package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"simplifygold/config"
)

// SendPurchaseReceiptEmail sends a purchase confirmation to the user.
// Callers run this in a goroutine; a failed send only logs.
func SendPurchaseReceiptEmail(email, name, transactionId string, amount, goldGrams float64) error {
	if config.AppConfig.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	to := []string{email}

	subject := "Subject: Digital Gold Purchase Receipt - Simplify Money\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Purchase Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your digital gold purchase has been completed:</p>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Transaction ID: <b>%s</b></p>
						<h1 style="color: #d7b56d; font-size: 32px; margin: 10px 0;">%sg</h1>
						<p style="font-size: 14px; color: #666666;">for ₹%s</p>
					</div>
					<p style="font-size: 14px; color: #999999; text-align: center;">Your gold is safely stored and reflected in your portfolio.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Simplify Money Team</p>
				</div>
			</body>
		</html>
	`, name, transactionId,
		strconv.FormatFloat(goldGrams, 'f', -1, 64),
		strconv.FormatFloat(amount, 'f', -1, 64))

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending receipt email to %s: %v", email, err)
		return err
	}

	log.Println("Receipt email sent successfully to", email)
	return nil
}
