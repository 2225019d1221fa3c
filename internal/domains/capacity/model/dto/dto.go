package dto

import (
	"github.com/google/uuid"

	"tourdesk/internal/domains/capacity/model"
	"tourdesk/shared"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreateResourceCapacityRequest struct {
	ResourceType string `json:"resource_type" validate:"required,max=50"`
	TotalUnits   int    `json:"total_units"   validate:"required,gte=0"`
}

func (c *CreateResourceCapacityRequest) ToModel(user string) model.ResourceCapacity {
	return model.ResourceCapacity{
		ID:           uuid.NewString(),
		ResourceType: c.ResourceType,
		TotalUnits:   c.TotalUnits,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceCapacityRequest struct {
	ResourceType string `db:"resource_type" json:"resource_type" validate:"omitempty,max=50"`
	TotalUnits   *int   `db:"total_units"   json:"total_units"   validate:"omitempty,gte=0"`
}

type ResourceCapacityResponse struct {
	ID           string `json:"id"`
	ResourceType string `json:"resource_type"`
	TotalUnits   int    `json:"total_units"`
	gDto.Metadata
}

func (r *ResourceCapacityResponse) FromModel(capacity model.ResourceCapacity) {
	r.ID = capacity.ID
	r.ResourceType = capacity.ResourceType
	r.TotalUnits = capacity.TotalUnits
	r.Metadata.FromModel(capacity.Metadata)
}

type GetResourceCapacitiesResponse struct {
	Capacities []ResourceCapacityResponse `json:"capacities"`
	TotalPage  int                        `json:"total_page"`
	TotalData  int                        `json:"total_data"`
}

func (r *GetResourceCapacitiesResponse) FromModels(models []model.ResourceCapacity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Capacities = make([]ResourceCapacityResponse, len(models))
	for i, mod := range models {
		r.Capacities[i].FromModel(mod)
	}
}
