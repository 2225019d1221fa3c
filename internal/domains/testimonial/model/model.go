package model

import "tourdesk/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID           = "id"
	FieldCustomerName = "customer_name"
	FieldQuote        = "quote"
	FieldPhotoURL     = "photo_url"
	FieldFeatured     = "featured"
)

type Testimonial struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Quote        string `db:"quote"`
	PhotoURL     string `db:"photo_url"`
	Featured     bool   `db:"featured"`
	model.Metadata
}
