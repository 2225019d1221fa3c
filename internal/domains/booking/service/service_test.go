package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	bookingMocks "tourdesk/internal/domains/booking/mocks"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/quote"
	"tourdesk/internal/domains/booking/service"
	capacityMocks "tourdesk/internal/domains/capacity/mocks"
	pricingMocks "tourdesk/internal/domains/pricing/mocks"
	pricingDto "tourdesk/internal/domains/pricing/model/dto"
	mailerMocks "tourdesk/internal/integrations/mailer/mocks"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	pricing  *pricingMocks.MockPricingService
	capacity *capacityMocks.MockCapacityService
	mailer   *mailerMocks.MockMailer
	cache    *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		pricing:  pricingMocks.NewMockPricingService(ctrl),
		capacity: capacityMocks.NewMockCapacityService(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.pricing, set.capacity, set.mailer, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestBookingService_Create(t *testing.T) {
	pools := []quote.ResourcePool{
		{ResourceType: "quad", TotalUnits: 10},
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(set bookingMockSet)
		wantErr    bool
		wantCode   int
		wantStatus string
		wantTotal  int64
	}{
		{
			name: "confirmed when fully paid",
			req: dto.CreateBookingRequest{
				CustomerName:  "Amina",
				CustomerEmail: "amina@example.com",
				EntryName:     "Quad Biking Sunset",
				BookingDate:   "2024-06-01",
				Adults:        2,
				Children:      1,
				AmountPaid:    1350,
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), "Quad Biking Sunset").
					Return(pricingDto.UnitPriceResponse{
						Name:         "Quad Biking Sunset",
						UnitPrice:    450,
						ResourceType: "quad",
					}, nil)

				set.capacity.EXPECT().
					ResourcePools(gomock.Any()).
					Return(pools, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.mailer.EXPECT().
					SendBookingConfirmation(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusConfirmed,
			wantTotal:  1350,
		},
		{
			name: "pending when only a deposit is paid",
			req: dto.CreateBookingRequest{
				CustomerName: "Youssef",
				EntryName:    "Quad Biking Sunset",
				BookingDate:  "2024-06-01",
				Adults:       2,
				Children:     0,
				AmountPaid:   300,
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), "Quad Biking Sunset").
					Return(pricingDto.UnitPriceResponse{
						Name:         "Quad Biking Sunset",
						UnitPrice:    450,
						ResourceType: "quad",
					}, nil)

				set.capacity.EXPECT().
					ResourcePools(gomock.Any()).
					Return(pools, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.mailer.EXPECT().
					SendBookingConfirmation(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusPending,
			wantTotal:  900,
		},
		{
			name: "catalog miss books at zero price",
			req: dto.CreateBookingRequest{
				CustomerName: "Leila",
				EntryName:    "Mystery Tour",
				BookingDate:  "2024-06-01",
				Adults:       3,
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), "Mystery Tour").
					Return(pricingDto.UnitPriceResponse{Name: "Mystery Tour"}, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.mailer.EXPECT().
					SendBookingConfirmation(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusPending,
			wantTotal:  0,
		},
		{
			name: "invalid booking date",
			req: dto.CreateBookingRequest{
				CustomerName: "Amina",
				EntryName:    "Quad Biking Sunset",
				BookingDate:  "01/06/2024",
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), gomock.Any()).
					Return(pricingDto.UnitPriceResponse{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insufficient capacity",
			req: dto.CreateBookingRequest{
				CustomerName: "Omar",
				EntryName:    "Quad Biking Sunset",
				BookingDate:  "2024-06-01",
				Adults:       4,
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), "Quad Biking Sunset").
					Return(pricingDto.UnitPriceResponse{
						Name:         "Quad Biking Sunset",
						UnitPrice:    450,
						ResourceType: "quad",
					}, nil)

				set.capacity.EXPECT().
					ResourcePools(gomock.Any()).
					Return(pools, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{
							ResourceType: "quad",
							GuestCount:   8,
							Status:       model.StatusConfirmed,
							BookingDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
						},
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled bookings release capacity",
			req: dto.CreateBookingRequest{
				CustomerName: "Omar",
				EntryName:    "Quad Biking Sunset",
				BookingDate:  "2024-06-01",
				Adults:       4,
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), "Quad Biking Sunset").
					Return(pricingDto.UnitPriceResponse{
						Name:         "Quad Biking Sunset",
						UnitPrice:    450,
						ResourceType: "quad",
					}, nil)

				set.capacity.EXPECT().
					ResourcePools(gomock.Any()).
					Return(pools, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{
							ResourceType: "quad",
							GuestCount:   8,
							Status:       model.StatusCancelled,
							BookingDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
						},
					}, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.mailer.EXPECT().
					SendBookingConfirmation(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusPending,
			wantTotal:  1800,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				CustomerName: "Amina",
				EntryName:    "Mystery Tour",
				BookingDate:  "2024-06-01",
			},
			setupMock: func(set bookingMockSet) {
				set.pricing.EXPECT().
					ResolveUnitPrice(gomock.Any(), gomock.Any()).
					Return(pricingDto.UnitPriceResponse{Name: "Mystery Tour"}, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantTotal, result.TotalPrice)
			assert.Equal(t, result.TotalPrice-result.AmountPaid, result.RemainingBalance)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   model.Booking
		to        string
		setupMock func(set bookingMockSet, current model.Booking)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "pending to confirmed",
			current: model.Booking{ID: "test-id", Status: model.StatusPending},
			to:      model.StatusConfirmed,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:    "cancelled is terminal",
			current: model.Booking{ID: "test-id", Status: model.StatusCancelled},
			to:      model.StatusConfirmed,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:    "confirmed cannot go back to pending",
			current: model.Booking{ID: "test-id", Status: model.StatusConfirmed},
			to:      model.StatusPending,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:    "booking not found",
			current: model.Booking{},
			to:      model.StatusConfirmed,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set, tt.current)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, dto.UpdateBookingStatusRequest{Status: tt.to}, "test-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_RecordPayment(t *testing.T) {
	tests := []struct {
		name       string
		current    model.Booking
		amount     int64
		setupMock  func(set bookingMockSet, current model.Booking)
		wantErr    bool
		wantState  string
		wantStatus string
	}{
		{
			name: "full payment confirms a pending booking",
			current: model.Booking{
				ID:         "test-id",
				Status:     model.StatusPending,
				TotalPrice: 900,
				AmountPaid: 300,
			},
			amount: 900,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantState:  model.PaymentPaid,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "partial payment stays pending",
			current: model.Booking{
				ID:         "test-id",
				Status:     model.StatusPending,
				TotalPrice: 900,
			},
			amount: 200,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantState:  model.PaymentDeposit,
			wantStatus: model.StatusPending,
		},
		{
			name: "payment on cancelled booking rejected",
			current: model.Booking{
				ID:         "test-id",
				Status:     model.StatusCancelled,
				TotalPrice: 900,
			},
			amount: 900,
			setupMock: func(set bookingMockSet, current model.Booking) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set, tt.current)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.RecordPayment(ctx, dto.RecordPaymentRequest{AmountPaid: tt.amount}, "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantState, result.PaymentState)
				assert.Equal(t, tt.wantStatus, result.Status)
			}
		})
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{Date: "June 1st"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("no resource type is always sufficient", func(t *testing.T) {
		svc, _ := newBookingService(t)

		result, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			Date:   "2024-06-01",
			Guests: 40,
		})

		assert.NoError(t, err)
		assert.True(t, result.Sufficient)
	})

	t.Run("reports remaining capacity", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.capacity.EXPECT().
			ResourcePools(gomock.Any()).
			Return([]quote.ResourcePool{{ResourceType: "camel", TotalUnits: 6}}, nil)

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ResourceType: "camel",
					GuestCount:   4,
					Status:       model.StatusConfirmed,
					BookingDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		result, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			Date:         "2024-06-01",
			ResourceType: "camel",
			Guests:       2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 6, result.TotalCapacity)
		assert.Equal(t, 4, result.AlreadyBooked)
		assert.Equal(t, 2, result.Available)
		assert.True(t, result.Sufficient)
	})
}
