package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/utils"
)

// maxNotifyAttempts caps reconciler retries per order.
const maxNotifyAttempts = 5

// StartCronJobs initializes and starts the scheduler that reconciles vendor
// notifications for orders whose email could not be sent at checkout.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", retryVendorNotifications)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for notification reconciliation")
}

// retryVendorNotifications re-sends the "New booking" email for orders that
// are persisted but whose vendor was never notified.
func retryVendorNotifications() {
	var orders []models.Order
	err := db.DB.
		Where("notification IN ? AND notify_attempts < ?",
			[]models.NotificationState{models.NotificationPending, models.NotificationFailed},
			maxNotifyAttempts).
		Find(&orders).Error
	if err != nil {
		log.Printf("Error fetching orders for notification retry: %v", err)
		return
	}

	for i := range orders {
		order := &orders[i]
		body := utils.BuildVendorNotification(
			order.FullName,
			order.DeliverTo,
			order.ScheduleDate+", "+order.ScheduleTime,
			order.Price,
			order.ServiceLocation,
		)

		sendErr := utils.SendEmail(order.VendorEmail, "New booking", body)
		if sendErr != nil {
			log.Printf("Retry failed for order %s: %v", order.Reference, sendErr)
		} else {
			log.Printf("Sent vendor notification for order %s to %s", order.Reference, order.VendorEmail)
		}
		if err := order.MarkNotified(db.DB, sendErr == nil); err != nil {
			log.Printf("Failed to record notification state for order %s: %v", order.Reference, err)
		}
	}
}
