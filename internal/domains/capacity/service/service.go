package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Capacity=MockCapacityService

import (
	"context"
	"fmt"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/booking/quote"
	"tourdesk/internal/domains/capacity/model"
	"tourdesk/internal/domains/capacity/model/dto"
	"tourdesk/internal/domains/capacity/repository"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Capacity interface {
	Create(ctx context.Context, req dto.CreateResourceCapacityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourceCapacitiesResponse, error)
	Get(ctx context.Context, id string) (dto.ResourceCapacityResponse, error)
	Update(ctx context.Context, req dto.UpdateResourceCapacityRequest, id string) error
	Delete(ctx context.Context, id string) error
	ResourcePools(ctx context.Context) ([]quote.ResourcePool, error)
}

type serviceImpl struct {
	repo repository.Capacity
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Capacity, cfg *config.Config, otel otel.Otel) Capacity {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateResourceCapacityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResourceType,
				Value:    req.ResourceType,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource capacity existence")

		return fmt.Errorf("failed to check resource capacity existence: %w", err)
	}

	if exist {
		return failure.Conflict("resource capacity already defined for this resource type") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create resource capacity")

		return fmt.Errorf("failed to create resource capacity: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetResourceCapacitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resource capacities")

		return res, fmt.Errorf("failed to count resource capacities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource capacities")

		return res, fmt.Errorf("failed to get resource capacities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ResourceCapacityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	capacity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource capacity")

		return res, fmt.Errorf("failed to get resource capacity: %w", err)
	}

	if capacity.ID == constant.Empty {
		return res, failure.NotFound("resource capacity not found") // nolint:wrapcheck
	}

	res.FromModel(capacity)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateResourceCapacityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateResourceCapacityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource capacity existence")

		return fmt.Errorf("failed to check resource capacity existence: %w", err)
	}

	if !exist {
		log.Error().Msg("resource capacity not found")

		return failure.NotFound("resource capacity not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update resource capacity")

		return fmt.Errorf("failed to update resource capacity: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource capacity existence")

		return fmt.Errorf("failed to check resource capacity existence: %w", err)
	}

	if !exist {
		log.Error().Msg("resource capacity not found")

		return failure.NotFound("resource capacity not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete resource capacity")

		return fmt.Errorf("failed to delete resource capacity: %w", err)
	}

	return nil
}

// ResourcePools loads every configured pool for availability checks.
func (s *serviceImpl) ResourcePools(ctx context.Context) (pools []quote.ResourcePool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResourcePools")
	defer scope.End()
	defer scope.TraceIfError(err)

	capacities, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load resource pools")

		return nil, fmt.Errorf("failed to load resource pools: %w", err)
	}

	pools = make([]quote.ResourcePool, len(capacities))
	for i, capacity := range capacities {
		pools[i] = quote.ResourcePool{
			ResourceType: capacity.ResourceType,
			TotalUnits:   capacity.TotalUnits,
		}
	}

	return pools, nil
}
