// Package quote holds the pure booking arithmetic: guest-count normalization,
// total-price computation, and same-day capacity checks. Everything here is
// side-effect free so the booking service can re-run it on every field change.
package quote

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Default table for guest-count normalization. Any value that cannot be read
// as a number falls back to the default for its field; values below the floor
// are raised to it. This mirrors how historical booking rows were captured and
// must not be turned into validation errors.
const (
	DefaultAdults   = 1
	FloorAdults     = 1
	DefaultChildren = 0
	FloorChildren   = 0
)

type Totals struct {
	GuestCount       int   `json:"guest_count"`
	TotalPrice       int64 `json:"total_price"`
	RemainingBalance int64 `json:"remaining_balance"`
}

// BookedGuests is the slice of an existing booking that the availability check
// needs: when it is, what pool it draws from, how many seats it holds.
type BookedGuests struct {
	Date         string
	ResourceType string
	GuestCount   int
	Cancelled    bool
}

// ResourcePool is a per-day capacity ceiling for one resource type.
type ResourcePool struct {
	ResourceType string
	TotalUnits   int
}

type Availability struct {
	TotalCapacity   int  `json:"total_capacity"`
	AlreadyBooked   int  `json:"already_booked"`
	Available       int  `json:"available"`
	RequestedGuests int  `json:"requested_guests"`
	Sufficient      bool `json:"sufficient"`
}

// NormalizeGuestCounts coerces the raw adult and child counts from a request
// into usable integers using the package default table.
func NormalizeGuestCounts(adults, children any) (int, int) {
	return coerceCount(adults, DefaultAdults, FloorAdults),
		coerceCount(children, DefaultChildren, FloorChildren)
}

// ComputeTotals derives guest count, total price, and remaining balance.
// The remaining balance is deliberately not clamped at zero: a negative value
// surfaces an overpayment. Prices are whole currency units.
func ComputeTotals(unitPrice int64, adults, children any, amountPaid int64) Totals {
	adultCount, childCount := NormalizeGuestCounts(adults, children)
	guestCount := adultCount + childCount
	totalPrice := unitPrice * int64(guestCount)

	return Totals{
		GuestCount:       guestCount,
		TotalPrice:       totalPrice,
		RemainingBalance: totalPrice - amountPaid,
	}
}

// CheckAvailability reports how many seats remain in the resource pool for the
// given date and whether the requested party fits. Cancelled bookings do not
// consume capacity. An empty resource type means the offering draws from no
// pool and is always sufficient.
//
// This is a gating signal, not a reservation: two concurrent bookers can both
// pass the check before either row is written.
func CheckAvailability(date, resourceType string, bookings []BookedGuests, pools []ResourcePool, requestedGuests int) Availability {
	if resourceType == "" {
		return Availability{
			RequestedGuests: requestedGuests,
			Sufficient:      true,
		}
	}

	totalCapacity := 0

	for _, pool := range pools {
		if pool.ResourceType == resourceType {
			totalCapacity = pool.TotalUnits

			break
		}
	}

	alreadyBooked := 0

	for _, booked := range bookings {
		if booked.Cancelled {
			continue
		}

		if booked.Date != date || booked.ResourceType != resourceType {
			continue
		}

		alreadyBooked += booked.GuestCount
	}

	available := max(totalCapacity-alreadyBooked, 0)

	return Availability{
		TotalCapacity:   totalCapacity,
		AlreadyBooked:   alreadyBooked,
		Available:       available,
		RequestedGuests: requestedGuests,
		Sufficient:      available >= requestedGuests,
	}
}

func coerceCount(value any, fallback, floor int) int {
	count := fallback

	switch v := value.(type) {
	case nil:
	case int:
		count = v
	case int32:
		count = int(v)
	case int64:
		count = int(v)
	case float32:
		count = int(v)
	case float64:
		count = int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			count = int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			count = parsed
		}
	}

	return max(count, floor)
}
