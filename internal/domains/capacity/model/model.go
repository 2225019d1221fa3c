package model

import "tourdesk/shared/model"

const (
	TableName  = "resource_capacities"
	EntityName = "resource capacity"

	FieldID           = "id"
	FieldResourceType = "resource_type"
	FieldTotalUnits   = "total_units"
)

type ResourceCapacity struct {
	ID           string `db:"id"`
	ResourceType string `db:"resource_type"`
	TotalUnits   int    `db:"total_units"`
	model.Metadata
}
