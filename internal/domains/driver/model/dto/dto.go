package dto

import (
	"github.com/google/uuid"

	"tourdesk/internal/domains/driver/model"
	"tourdesk/shared"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreateDriverRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Phone       string `json:"phone"        validate:"omitempty,max=20"`
	VehicleType string `json:"vehicle_type" validate:"omitempty,max=50"`
	Active      *bool  `json:"active"       validate:"omitempty"`
}

func (c *CreateDriverRequest) ToModel(user string) model.Driver {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Driver{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Phone:       c.Phone,
		VehicleType: c.VehicleType,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDriverRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Phone       string `db:"phone"        json:"phone"        validate:"omitempty,max=20"`
	VehicleType string `db:"vehicle_type" json:"vehicle_type" validate:"omitempty,max=50"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
}

type DriverResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *DriverResponse) FromModel(driver model.Driver) {
	r.ID = driver.ID
	r.Name = driver.Name
	r.Phone = driver.Phone
	r.VehicleType = driver.VehicleType
	r.Active = driver.Active
	r.Metadata.FromModel(driver.Metadata)
}

type GetDriversResponse struct {
	Drivers   []DriverResponse `json:"drivers"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetDriversResponse) FromModels(models []model.Driver, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Drivers = make([]DriverResponse, len(models))
	for i, mod := range models {
		r.Drivers[i].FromModel(mod)
	}
}
