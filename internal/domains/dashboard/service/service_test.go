package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	bookingMocks "tourdesk/internal/domains/booking/mocks"
	bookingModel "tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/dashboard/service"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/failure"
)

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookingRepo, cfg, mockCache, mockOtel)

	currentBookings := []bookingModel.Booking{
		{
			ID:         "booking-1",
			Status:     bookingModel.StatusConfirmed,
			GuestCount: 4,
			TotalPrice: 400,
			AmountPaid: 400,
		},
		{
			ID:         "booking-2",
			Status:     bookingModel.StatusPending,
			GuestCount: 2,
			TotalPrice: 200,
			AmountPaid: 50,
		},
		{
			ID:         "booking-3",
			Status:     bookingModel.StatusCancelled,
			GuestCount: 10,
			TotalPrice: 1000,
			AmountPaid: 500,
		},
	}

	previousBookings := []bookingModel.Booking{
		{
			ID:         "booking-0",
			Status:     bookingModel.StatusConfirmed,
			GuestCount: 3,
			TotalPrice: 300,
			AmountPaid: 300,
		},
	}

	t.Run("successful summary with deltas", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(currentBookings, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(previousBookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Summary(context.Background(), "2024-06-08", "2024-06-14")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		assert.Equal(t, 3, res.Current.Bookings)
		assert.Equal(t, 1, res.Current.Pending)
		assert.Equal(t, 1, res.Current.Confirmed)
		assert.Equal(t, 1, res.Current.Cancelled)

		// Cancelled booking excluded from money figures.
		assert.Equal(t, 6, res.Current.Guests)
		assert.Equal(t, int64(450), res.Current.Revenue)
		assert.Equal(t, int64(150), res.Current.Outstanding)

		assert.Equal(t, "2024-06-01", res.Previous.From)
		assert.Equal(t, "2024-06-07", res.Previous.To)
		assert.Equal(t, 1, res.Previous.Bookings)

		assert.Equal(t, 2, res.Deltas.Bookings)
		assert.Equal(t, 3, res.Deltas.Guests)
		assert.Equal(t, int64(150), res.Deltas.Revenue)
		assert.Equal(t, int64(150), res.Deltas.Outstanding)
	})

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Summary(context.Background(), "2024-06-08", "2024-06-14")

		assert.NoError(t, err)
	})

	t.Run("invalid from date", func(t *testing.T) {
		_, err := svc.Summary(context.Background(), "08-06-2024", "2024-06-14")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("to before from", func(t *testing.T) {
		_, err := svc.Summary(context.Background(), "2024-06-14", "2024-06-08")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Summary(context.Background(), "2024-06-08", "2024-06-14")

		assert.Error(t, err)
	})
}
