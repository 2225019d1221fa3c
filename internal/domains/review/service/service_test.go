package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	bookingMocks "tourdesk/internal/domains/booking/mocks"
	reviewMocks "tourdesk/internal/domains/review/mocks"
	"tourdesk/internal/domains/review/model/dto"
	"tourdesk/internal/domains/review/service"
	"tourdesk/shared/constant"
)

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateReviewRequest{
				BookingID:    "booking-id",
				CustomerName: "Amina",
				Rating:       5,
				Comment:      "Unforgettable sunset ride",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking does not exist",
			req: dto.CreateReviewRequest{
				BookingID:    "missing-booking",
				CustomerName: "Amina",
				Rating:       4,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateReviewRequest{
				BookingID:    "booking-id",
				CustomerName: "Amina",
				Rating:       3,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_Moderate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, &config.Config{}, mockOtel)

	approved := true

	t.Run("missing approved flag", func(t *testing.T) {
		err := svc.Moderate(context.Background(), dto.ModerateReviewRequest{}, "test-id")

		assert.Error(t, err)
	})

	t.Run("successful approval", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Moderate(ctx, dto.ModerateReviewRequest{Approved: &approved}, "test-id")

		assert.NoError(t, err)
	})

	t.Run("review not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Moderate(context.Background(), dto.ModerateReviewRequest{Approved: &approved}, "nonexistent-id")

		assert.Error(t, err)
	})
}
