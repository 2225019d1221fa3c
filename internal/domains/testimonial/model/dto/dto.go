package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"tourdesk/internal/domains/testimonial/model"
	"tourdesk/shared"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreateTestimonialRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	Quote        string `json:"quote"         validate:"required,max=2000"`
	PhotoURL     string `json:"photo_url"     validate:"omitempty,url"`
	Featured     bool   `json:"featured"      validate:"omitempty"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	return model.Testimonial{
		ID:           uuid.NewString(),
		CustomerName: c.CustomerName,
		Quote:        c.Quote,
		PhotoURL:     c.PhotoURL,
		Featured:     c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	CustomerName string `db:"customer_name" json:"customer_name" validate:"omitempty,max=100"`
	Quote        string `db:"quote"         json:"quote"         validate:"omitempty,max=2000"`
	PhotoURL     string `db:"photo_url"     json:"photo_url"     validate:"omitempty,url"`
	Featured     *bool  `db:"featured"      json:"featured"      validate:"omitempty"`
}

type TestimonialResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Quote        string `json:"quote"`
	PhotoURL     string `json:"photo_url"`
	Featured     bool   `json:"featured"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(testimonial model.Testimonial) {
	r.ID = testimonial.ID
	r.CustomerName = testimonial.CustomerName
	r.Quote = testimonial.Quote
	r.PhotoURL = testimonial.PhotoURL
	r.Featured = testimonial.Featured
	r.Metadata.FromModel(testimonial.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
