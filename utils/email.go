package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

// Sender returns the fixed From address used for all outbound mail.
func Sender() string {
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		return from
	}
	return "BHub <admin@bhubcare.com>"
}

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", Sender())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// BuildVendorNotification renders the "New booking" email body sent to a
// vendor when a customer confirms a booking.
func BuildVendorNotification(customer, place, bookTime string, price int64, serviceLocation string) string {
	return fmt.Sprintf(
		"<strong>From %s at %s scheduled at %s and wants service for UGX %s says %s</strong>",
		customer, place, bookTime, FormatUGX(price), serviceLocation,
	)
}

// BuildPasswordResetEmail renders the OTP email for the reset-password flow.
func BuildPasswordResetEmail(name, otp string) string {
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to reset your BHub password. It expires in 15 minutes.</p>
		<p><strong>%s</strong></p>
		<p>If you did not request a reset, you can ignore this email.</p>
		<p>Best regards,</p>
		<p>The BHub Team</p>
	`, name, otp)
}
