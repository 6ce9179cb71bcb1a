package consumer

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/utils"
)

// sendEmail delivers the vendor notification. Variable so tests can observe
// when the send happens relative to the order write.
var sendEmail = utils.SendEmail

// UpsertSession records the user's current vendor and schedule selection.
// Fields omitted from the body keep their previous values.
func UpsertSession(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input models.BookingSession
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var session models.BookingSession
	db.DB.Where("user_id = ?", userID).First(&session)
	session.UserID = userID

	if input.VendorID != 0 {
		session.VendorID = input.VendorID
	}
	if input.VendorName != "" {
		session.VendorName = input.VendorName
	}
	if input.Category != "" {
		session.Category = input.Category
	}
	if input.ScheduleDate != "" {
		session.ScheduleDate = input.ScheduleDate
	}
	if input.ScheduleTime != "" {
		session.ScheduleTime = input.ScheduleTime
	}
	if input.ServiceLocation != "" {
		session.ServiceLocation = input.ServiceLocation
	}

	if err := db.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save booking session",
		})
	}

	return c.JSON(session)
}

// GetSession returns the current selection with placeholders for unset
// schedule fields.
func GetSession(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var session models.BookingSession
	db.DB.Where("user_id = ?", userID).First(&session)

	return c.JSON(fiber.Map{
		"vendor_id":        session.VendorID,
		"vendor_name":      models.OrDefault(session.VendorName),
		"category":         models.OrDefault(session.Category),
		"schedule_date":    models.OrDefault(session.ScheduleDate),
		"schedule_time":    models.OrDefault(session.ScheduleTime),
		"service_location": models.OrDefault(session.ServiceLocation),
	})
}

// GetCheckoutPreview aggregates everything the booking page shows: schedule,
// the user's contact details, the cart subtotal and the payment type.
func GetCheckoutPreview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var items []models.BookingItem
	if err := db.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart",
		})
	}

	var session models.BookingSession
	db.DB.Where("user_id = ?", userID).First(&session)

	return c.JSON(fiber.Map{
		"schedule": fiber.Map{
			"date":             models.OrDefault(session.ScheduleDate),
			"time":             models.OrDefault(session.ScheduleTime),
			"service_location": models.OrDefault(session.ServiceLocation),
		},
		"details": fiber.Map{
			"email":      user.Email,
			"name":       user.FullName(),
			"phone":      user.Phone,
			"deliver_to": user.DeliverTo,
		},
		"subtotal":     models.Subtotal(items),
		"payment_type": models.PaymentCash,
	})
}

// ConfirmBooking runs the checkout workflow: validate the session, snapshot
// user, vendor and subtotal into an order, persist it (clearing the cart in
// the same transaction), then notify the vendor. The order is durable before
// the email is attempted; a failed send is retried by the reconciler.
func ConfirmBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var session models.BookingSession
	if db.DB.Where("user_id = ?", userID).First(&session).RowsAffected == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":          "No booking selection found",
			"missing_fields": (&models.BookingSession{}).MissingFields(),
		})
	}
	if missing := session.MissingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":          "Booking selection is incomplete",
			"missing_fields": missing,
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var vendor models.User
	if err := db.DB.Preload("Role").First(&vendor, session.VendorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}
	if vendor.Role.Name != models.RoleSalon {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a salon",
		})
	}

	var items []models.BookingItem
	if err := db.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart",
		})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	}
	subtotal := models.Subtotal(items)

	now := time.Now()
	order := models.Order{
		UserID:          userID,
		Email:           user.Email,
		FullName:        user.FullName(),
		Phone:           user.Phone,
		DeliverTo:       user.DeliverTo,
		VendorID:        vendor.ID,
		VendorTitle:     session.VendorName,
		VendorEmail:     vendor.Email,
		ScheduleDate:    session.ScheduleDate,
		ScheduleTime:    session.ScheduleTime,
		ServiceLocation: session.ServiceLocation,
		Price:           subtotal,
		OrderDate:       now.Format("02/01/2006"),
		OrderTime:       "Placed at: " + now.Format("03:04 PM"),
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// Line items are consumed by the order; clearing them here keeps the
		// cart and the order in one transaction.
		return tx.Where("user_id = ?", userID).Delete(&models.BookingItem{}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create order",
			Error:   err.Error(),
		})
	}

	// The order is durable; the notification outcome is recorded on it and
	// retried by the cron reconciler on failure.
	body := utils.BuildVendorNotification(order.FullName, order.DeliverTo, session.BookTime(), subtotal, order.ServiceLocation)
	sendErr := sendEmail(order.VendorEmail, "New booking", body)
	if sendErr != nil {
		log.Printf("Failed to notify vendor %s for order %s: %v", order.VendorEmail, order.Reference, sendErr)
	}
	if err := order.MarkNotified(db.DB, sendErr == nil); err != nil {
		log.Printf("Failed to record notification state for order %s: %v", order.Reference, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrders returns the user's order history, newest first.
func GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var orders []models.Order
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orders",
		})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetLatestOrder returns the most recent order for the order-status view.
func GetLatestOrder(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var order models.Order
	if db.DB.Where("user_id = ?", userID).Order("created_at DESC").First(&order).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No orders found",
		})
	}

	return c.JSON(order)
}
