package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	driverMocks "tourdesk/internal/domains/driver/mocks"
	"tourdesk/internal/domains/driver/model"
	"tourdesk/internal/domains/driver/model/dto"
	"tourdesk/internal/domains/driver/service"
	"tourdesk/shared/constant"
)

func TestDriverService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := driverMocks.NewMockDriver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateDriverRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateDriverRequest{
				Name:        "Hassan",
				Phone:       "+212600000000",
				VehicleType: "minivan",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateDriverRequest{
				Name: "Hassan",
			},
			setupMock: func() {
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

func TestDriverService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := driverMocks.NewMockDriver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("driver found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Driver{ID: "test-id", Name: "Hassan"}, nil)

		result, err := svc.Get(context.Background(), "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "Hassan", result.Name)
	})

	t.Run("driver not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Driver{}, nil)

		_, err := svc.Get(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})
}

func TestDriverService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := driverMocks.NewMockDriver(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("empty update request", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateDriverRequest{}, "test-id")

		assert.Error(t, err)
	})

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateDriverRequest{Phone: "+212611111111"}, "test-id")

		assert.NoError(t, err)
	})
}
