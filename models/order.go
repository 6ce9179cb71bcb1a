package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCanceled  OrderStatus = "canceled"
	StatusCompleted OrderStatus = "completed"
)

type NotificationState string

const (
	NotificationPending NotificationState = "pending"
	NotificationSent    NotificationState = "sent"
	NotificationFailed  NotificationState = "failed"
)

// PaymentCash is the only payment type BHub supports.
const PaymentCash = "Cash"

// Order is the persisted record of a confirmed booking. It denormalizes the
// user, vendor and schedule at confirmation time; orders are append-only,
// a repeat booking creates a new row.
type Order struct {
	gorm.Model
	Reference string `json:"reference" gorm:"uniqueIndex"`
	UserID    uint   `json:"user_id" gorm:"index"`

	// Customer snapshot.
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	DeliverTo string `json:"deliver_to"`

	// Vendor snapshot.
	VendorID    uint   `json:"vendor_id"`
	VendorTitle string `json:"vendor_title"`
	VendorEmail string `json:"vendor_email"`

	// Schedule snapshot.
	ScheduleDate    string `json:"schedule_date"`
	ScheduleTime    string `json:"schedule_time"`
	ServiceLocation string `json:"service_location"`

	Price       int64       `json:"price"` // UGX
	PaymentType string      `json:"payment_type"`
	Status      OrderStatus `json:"status"`
	OrderDate   string      `json:"order_date"`
	OrderTime   string      `json:"order_time"`

	// Vendor notification bookkeeping, driven by the checkout flow and the
	// reconciliation cron.
	Notification   NotificationState `json:"notification"`
	NotifyAttempts int               `json:"notify_attempts"`
	NotifiedAt     *time.Time        `json:"notified_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Reference == "" {
		o.Reference = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.PaymentType == "" {
		o.PaymentType = PaymentCash
	}
	if o.Notification == "" {
		o.Notification = NotificationPending
	}
	return nil
}

// CanTransition checks the order status lifecycle: pending orders may be
// confirmed or canceled, confirmed orders completed or canceled, and
// completed/canceled orders are frozen.
func (o *Order) CanTransition(next OrderStatus) error {
	switch o.Status {
	case StatusPending:
		if next != StatusConfirmed && next != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusConfirmed:
		if next != StatusCompleted && next != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", next)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", o.Status)
	}
	return nil
}

func (o *Order) UpdateStatus(tx *gorm.DB, next OrderStatus) error {
	if err := o.CanTransition(next); err != nil {
		return err
	}
	o.Status = next
	return tx.Save(o).Error
}

// MarkNotified records the outcome of a vendor notification attempt.
func (o *Order) MarkNotified(tx *gorm.DB, sent bool) error {
	now := time.Now()
	o.NotifyAttempts++
	if sent {
		o.Notification = NotificationSent
		o.NotifiedAt = &now
	} else {
		o.Notification = NotificationFailed
	}
	return tx.Save(o).Error
}
