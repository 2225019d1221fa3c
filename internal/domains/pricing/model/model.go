package model

import "tourdesk/shared/model"

const (
	TableName  = "pricing_entries"
	EntityName = "pricing entry"

	FieldID           = "id"
	FieldName         = "name"
	FieldUnitPrice    = "unit_price"
	FieldKind         = "kind"
	FieldResourceType = "resource_type"
	FieldDescription  = "description"
	FieldActive       = "active"
)

const (
	KindPackage  = "package"
	KindActivity = "activity"
)

type PricingEntry struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	UnitPrice    int64  `db:"unit_price"`
	Kind         string `db:"kind"`
	ResourceType string `db:"resource_type"`
	Description  string `db:"description"`
	Active       bool   `db:"active"`
	model.Metadata
}

// FindByName returns the first entry whose name matches exactly, in catalog
// order. Duplicate names are not prevented upstream; first match wins.
func FindByName(catalog []PricingEntry, name string) (PricingEntry, bool) {
	for _, entry := range catalog {
		if entry.Name == name {
			return entry, true
		}
	}

	return PricingEntry{}, false
}
