package model

import "tourdesk/shared/model"

const (
	TableName  = "drivers"
	EntityName = "driver"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldVehicleType = "vehicle_type"
	FieldActive      = "active"
)

type Driver struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	VehicleType string `db:"vehicle_type"`
	Active      bool   `db:"active"`
	model.Metadata
}
