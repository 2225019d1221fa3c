package dto

import (
	bookingModel "tourdesk/internal/domains/booking/model"
)

// PeriodTotals aggregates the bookings whose booking_date falls inside [From, To].
type PeriodTotals struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Bookings    int    `json:"bookings"`
	Pending     int    `json:"pending"`
	Confirmed   int    `json:"confirmed"`
	Cancelled   int    `json:"cancelled"`
	Guests      int    `json:"guests"`
	Revenue     int64  `json:"revenue"`
	Outstanding int64  `json:"outstanding"`
}

// FromModels counts every booking by status. Guests, revenue, and outstanding
// balance only cover bookings that are still on the books, cancelled ones are
// excluded from the money figures.
func (p *PeriodTotals) FromModels(bookings []bookingModel.Booking) {
	p.Bookings = len(bookings)

	for _, b := range bookings {
		switch b.Status {
		case bookingModel.StatusPending:
			p.Pending++
		case bookingModel.StatusConfirmed:
			p.Confirmed++
		case bookingModel.StatusCancelled:
			p.Cancelled++
		}

		if b.Status == bookingModel.StatusCancelled {
			continue
		}

		p.Guests += b.GuestCount
		p.Revenue += b.AmountPaid
		p.Outstanding += b.RemainingBalance()
	}
}

type SummaryDeltas struct {
	Bookings    int   `json:"bookings"`
	Guests      int   `json:"guests"`
	Revenue     int64 `json:"revenue"`
	Outstanding int64 `json:"outstanding"`
}

type SummaryResponse struct {
	Current  PeriodTotals  `json:"current"`
	Previous PeriodTotals  `json:"previous"`
	Deltas   SummaryDeltas `json:"deltas"`
}

func (r *SummaryResponse) ComputeDeltas() {
	r.Deltas = SummaryDeltas{
		Bookings:    r.Current.Bookings - r.Previous.Bookings,
		Guests:      r.Current.Guests - r.Previous.Guests,
		Revenue:     r.Current.Revenue - r.Previous.Revenue,
		Outstanding: r.Current.Outstanding - r.Previous.Outstanding,
	}
}
