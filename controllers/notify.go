package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/utils"
)

// NotifyRequest is the relay payload: recipient, subject and HTML body are
// forwarded verbatim with the fixed BHub sender.
type NotifyRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// RelayEmail forwards a structured message to the email provider.
func RelayEmail(c *fiber.Ctx) error {
	req := new(NotifyRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := utils.SendEmail(req.To, req.Subject, req.HTML); err != nil {
		log.Printf("Error sending email to %s: %v", req.To, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"response": fiber.Map{
			"from":    utils.Sender(),
			"to":      req.To,
			"subject": req.Subject,
		},
	})
}
