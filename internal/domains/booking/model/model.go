package model

import (
	"time"

	"tourdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
	FieldCustomerEmail = "customer_email"
	FieldEntryName     = "entry_name"
	FieldResourceType  = "resource_type"
	FieldBookingDate   = "booking_date"
	FieldAdultCount    = "adult_count"
	FieldChildCount    = "child_count"
	FieldGuestCount    = "guest_count"
	FieldUnitPrice     = "unit_price"
	FieldTotalPrice    = "total_price"
	FieldAmountPaid    = "amount_paid"
	FieldPaymentState  = "payment_state"
	FieldStatus        = "status"
	FieldDriverID      = "driver_id"
	FieldNotes         = "notes"
	FieldCreatedBy     = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	PaymentUnpaid  = "unpaid"
	PaymentDeposit = "deposit"
	PaymentPaid    = "paid"
)

type Booking struct {
	ID            string    `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	CustomerEmail string    `db:"customer_email"`
	EntryName     string    `db:"entry_name"`
	ResourceType  string    `db:"resource_type"`
	BookingDate   time.Time `db:"booking_date"`
	AdultCount    int       `db:"adult_count"`
	ChildCount    int       `db:"child_count"`
	GuestCount    int       `db:"guest_count"`
	UnitPrice     int64     `db:"unit_price"`
	TotalPrice    int64     `db:"total_price"`
	AmountPaid    int64     `db:"amount_paid"`
	PaymentState  string    `db:"payment_state"`
	Status        string    `db:"status"`
	DriverID      *string   `db:"driver_id"`
	Notes         string    `db:"notes"`
	model.Metadata
}

// RemainingBalance is always derived; the value is never stored so it cannot
// go stale against total_price or amount_paid. It is not clamped at zero: a
// negative balance means the customer overpaid.
func (b *Booking) RemainingBalance() int64 {
	return b.TotalPrice - b.AmountPaid
}

// CanTransition reports whether a booking may move between the two statuses.
// Cancelled is terminal; confirmed bookings can still be cancelled.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

// InitialStatus determines the status a new booking starts in: confirmed when
// it is already fully paid, pending otherwise.
func InitialStatus(paymentState string) string {
	if paymentState == PaymentPaid {
		return StatusConfirmed
	}

	return StatusPending
}

// PaymentStateFor derives the payment state from the paid amount. A zero
// payment is always unpaid, even for zero-priced bookings.
func PaymentStateFor(totalPrice, amountPaid int64) string {
	switch {
	case amountPaid <= 0:
		return PaymentUnpaid
	case amountPaid >= totalPrice:
		return PaymentPaid
	default:
		return PaymentDeposit
	}
}
