package model

import "tourdesk/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldCustomerName = "customer_name"
	FieldRating       = "rating"
	FieldComment      = "comment"
	FieldApproved     = "approved"
)

type Review struct {
	ID           string `db:"id"`
	BookingID    string `db:"booking_id"`
	CustomerName string `db:"customer_name"`
	Rating       int    `db:"rating"`
	Comment      string `db:"comment"`
	Approved     bool   `db:"approved"`
	model.Metadata
}
