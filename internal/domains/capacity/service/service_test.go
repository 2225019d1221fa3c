package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	"tourdesk/internal/domains/booking/quote"
	capacityMocks "tourdesk/internal/domains/capacity/mocks"
	"tourdesk/internal/domains/capacity/model"
	"tourdesk/internal/domains/capacity/model/dto"
	"tourdesk/internal/domains/capacity/service"
	"tourdesk/shared/constant"
)

func TestCapacityService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := capacityMocks.NewMockCapacity(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateResourceCapacityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateResourceCapacityRequest{
				ResourceType: "quad",
				TotalUnits:   12,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate resource type rejected",
			req: dto.CreateResourceCapacityRequest{
				ResourceType: "quad",
				TotalUnits:   12,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateResourceCapacityRequest{
				ResourceType: "quad",
				TotalUnits:   12,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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

func TestCapacityService_ResourcePools(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := capacityMocks.NewMockCapacity(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	capacities := []model.ResourceCapacity{
		{ID: "1", ResourceType: "quad", TotalUnits: 12},
		{ID: "2", ResourceType: "camel", TotalUnits: 6},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(capacities, nil)

	pools, err := svc.ResourcePools(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []quote.ResourcePool{
		{ResourceType: "quad", TotalUnits: 12},
		{ResourceType: "camel", TotalUnits: 6},
	}, pools)
}

func TestCapacityService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := capacityMocks.NewMockCapacity(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	units := 20

	tests := []struct {
		name      string
		req       dto.UpdateResourceCapacityRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateResourceCapacityRequest{
				TotalUnits: &units,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateResourceCapacityRequest{},
			id:        "test-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "resource capacity not found",
			req: dto.UpdateResourceCapacityRequest{
				TotalUnits: &units,
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
