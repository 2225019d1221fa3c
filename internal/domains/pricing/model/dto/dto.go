package dto

import (
	"github.com/google/uuid"

	"tourdesk/internal/domains/pricing/model"
	"tourdesk/shared"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreatePricingEntryRequest struct {
	Name         string `json:"name"          validate:"required,max=120"`
	UnitPrice    int64  `json:"unit_price"    validate:"gte=0"`
	Kind         string `json:"kind"          validate:"required,oneof=package activity"`
	ResourceType string `json:"resource_type" validate:"omitempty,max=50"`
	Description  string `json:"description"   validate:"omitempty"`
	Active       *bool  `json:"active"        validate:"omitempty"`
}

func (c *CreatePricingEntryRequest) ToModel(user string) model.PricingEntry {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.PricingEntry{
		ID:           uuid.NewString(),
		Name:         c.Name,
		UnitPrice:    c.UnitPrice,
		Kind:         c.Kind,
		ResourceType: c.ResourceType,
		Description:  c.Description,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePricingEntryRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=120"`
	UnitPrice    *int64 `db:"unit_price"    json:"unit_price"    validate:"omitempty,gte=0"`
	Kind         string `db:"kind"          json:"kind"          validate:"omitempty,oneof=package activity"`
	ResourceType string `db:"resource_type" json:"resource_type" validate:"omitempty,max=50"`
	Description  string `db:"description"   json:"description"   validate:"omitempty"`
	Active       *bool  `db:"active"        json:"active"        validate:"omitempty"`
}

type PricingEntryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	Kind         string `json:"kind"`
	ResourceType string `json:"resource_type"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *PricingEntryResponse) FromModel(entry model.PricingEntry) {
	r.ID = entry.ID
	r.Name = entry.Name
	r.UnitPrice = entry.UnitPrice
	r.Kind = entry.Kind
	r.ResourceType = entry.ResourceType
	r.Description = entry.Description
	r.Active = entry.Active
	r.Metadata.FromModel(entry.Metadata)
}

type GetPricingEntriesResponse struct {
	Entries   []PricingEntryResponse `json:"entries"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetPricingEntriesResponse) FromModels(models []model.PricingEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]PricingEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

type UnitPriceResponse struct {
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	ResourceType string `json:"resource_type"`
}
