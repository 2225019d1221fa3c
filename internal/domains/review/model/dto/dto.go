package dto

import (
	"github.com/google/uuid"

	"tourdesk/internal/domains/review/model"
	"tourdesk/shared"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID    string `json:"booking_id"    validate:"required"`
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	Rating       int    `json:"rating"        validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment"       validate:"omitempty,max=2000"`
}

// New reviews always start unapproved; staff moderate them before they show
// up anywhere public.
func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:           uuid.NewString(),
		BookingID:    c.BookingID,
		CustomerName: c.CustomerName,
		Rating:       c.Rating,
		Comment:      c.Comment,
		Approved:     false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  *int   `db:"rating"  json:"rating"  validate:"omitempty,gte=1,lte=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=2000"`
}

type ModerateReviewRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Approved     bool   `json:"approved"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID
	r.BookingID = review.BookingID
	r.CustomerName = review.CustomerName
	r.Rating = review.Rating
	r.Comment = review.Comment
	r.Approved = review.Approved
	r.Metadata.FromModel(review.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
