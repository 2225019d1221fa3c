package dto

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/quote"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

// Adults and Children are typed any on purpose: the dashboard frontend has
// sent numbers, numeric strings and nulls over time, and a malformed count
// must never reject the booking.
type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name"  validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerEmail string  `json:"customer_email" validate:"omitempty,email,max=100"`
	EntryName     string  `json:"entry_name"     validate:"required,max=120"`
	BookingDate   string  `json:"booking_date"   validate:"required"`
	Adults        any     `json:"adults"         validate:"omitempty"`
	Children      any     `json:"children"       validate:"omitempty"`
	AmountPaid    int64   `json:"amount_paid"    validate:"omitempty,gte=0"`
	DriverID      *string `json:"driver_id"      validate:"omitempty"`
	Notes         string  `json:"notes"          validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string, unitPrice int64, resourceType string) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.CalendarDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	adults, children := quote.NormalizeGuestCounts(c.Adults, c.Children)
	totals := quote.ComputeTotals(unitPrice, c.Adults, c.Children, c.AmountPaid)
	paymentState := model.PaymentStateFor(totals.TotalPrice, c.AmountPaid)

	return model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		CustomerEmail: c.CustomerEmail,
		EntryName:     c.EntryName,
		ResourceType:  resourceType,
		BookingDate:   bookingDate,
		AdultCount:    adults,
		ChildCount:    children,
		GuestCount:    totals.GuestCount,
		UnitPrice:     unitPrice,
		TotalPrice:    totals.TotalPrice,
		AmountPaid:    c.AmountPaid,
		PaymentState:  paymentState,
		Status:        model.InitialStatus(paymentState),
		DriverID:      c.DriverID,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CustomerName  string  `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerPhone string  `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=20"`
	CustomerEmail string  `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	DriverID      *string `db:"driver_id"      json:"driver_id"      validate:"omitempty"`
	Notes         string  `db:"notes"          json:"notes"          validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// RecordPaymentRequest carries the new cumulative paid amount, not a delta.
type RecordPaymentRequest struct {
	AmountPaid int64 `json:"amount_paid" validate:"gte=0"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    string  `json:"customer_phone"`
	CustomerEmail    string  `json:"customer_email"`
	EntryName        string  `json:"entry_name"`
	ResourceType     string  `json:"resource_type"`
	BookingDate      string  `json:"booking_date"`
	AdultCount       int     `json:"adult_count"`
	ChildCount       int     `json:"child_count"`
	GuestCount       int     `json:"guest_count"`
	UnitPrice        int64   `json:"unit_price"`
	TotalPrice       int64   `json:"total_price"`
	AmountPaid       int64   `json:"amount_paid"`
	RemainingBalance int64   `json:"remaining_balance"`
	PaymentState     string  `json:"payment_state"`
	Status           string  `json:"status"`
	DriverID         *string `json:"driver_id"`
	Notes            string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.CustomerPhone = booking.CustomerPhone
	r.CustomerEmail = booking.CustomerEmail
	r.EntryName = booking.EntryName
	r.ResourceType = booking.ResourceType
	r.BookingDate = booking.BookingDate.Format(constant.CalendarDateFormat)
	r.AdultCount = booking.AdultCount
	r.ChildCount = booking.ChildCount
	r.GuestCount = booking.GuestCount
	r.UnitPrice = booking.UnitPrice
	r.TotalPrice = booking.TotalPrice
	r.AmountPaid = booking.AmountPaid
	r.RemainingBalance = booking.RemainingBalance()
	r.PaymentState = booking.PaymentState
	r.Status = booking.Status
	r.DriverID = booking.DriverID
	r.Notes = booking.Notes
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	Date         string `json:"date"          validate:"required"`
	ResourceType string `json:"resource_type" validate:"omitempty,max=50"`
	Guests       int    `json:"guests"        validate:"omitempty,gte=0"`
}

// FromRequest fills the availability request from URL query parameters.
// A non-numeric guests value is treated as absent.
func (r *AvailabilityRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.Date = query.Get("date")
	r.ResourceType = query.Get(model.FieldResourceType)

	if guests, err := strconv.Atoi(query.Get("guests")); err == nil {
		r.Guests = guests
	}
}

type AvailabilityResponse struct {
	Date            string `json:"date"`
	ResourceType    string `json:"resource_type"`
	TotalCapacity   int    `json:"total_capacity"`
	AlreadyBooked   int    `json:"already_booked"`
	Available       int    `json:"available"`
	RequestedGuests int    `json:"requested_guests"`
	Sufficient      bool   `json:"sufficient"`
}

func (r *AvailabilityResponse) FromQuote(date, resourceType string, availability quote.Availability) {
	r.Date = date
	r.ResourceType = resourceType
	r.TotalCapacity = availability.TotalCapacity
	r.AlreadyBooked = availability.AlreadyBooked
	r.Available = availability.Available
	r.RequestedGuests = availability.RequestedGuests
	r.Sufficient = availability.Sufficient
}
