package service

import (
	"context"
	"fmt"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/driver/model"
	"tourdesk/internal/domains/driver/model/dto"
	"tourdesk/internal/domains/driver/repository"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Driver interface {
	Create(ctx context.Context, req dto.CreateDriverRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDriversResponse, error)
	Get(ctx context.Context, id string) (dto.DriverResponse, error)
	Update(ctx context.Context, req dto.UpdateDriverRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Driver
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Driver, cfg *config.Config, otel otel.Otel) Driver {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDriverRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create driver")

		return fmt.Errorf("failed to create driver: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDriversResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count drivers")

		return res, fmt.Errorf("failed to count drivers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get drivers")

		return res, fmt.Errorf("failed to get drivers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DriverResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	driver, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get driver")

		return res, fmt.Errorf("failed to get driver: %w", err)
	}

	if driver.ID == constant.Empty {
		return res, failure.NotFound("driver not found") // nolint:wrapcheck
	}

	res.FromModel(driver)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDriverRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDriverRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check driver existence")

		return fmt.Errorf("failed to check driver existence: %w", err)
	}

	if !exist {
		log.Error().Msg("driver not found")

		return failure.NotFound("driver not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update driver")

		return fmt.Errorf("failed to update driver: %w", err)
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
		log.Error().Err(err).Msg("failed to check driver existence")

		return fmt.Errorf("failed to check driver existence: %w", err)
	}

	if !exist {
		log.Error().Msg("driver not found")

		return failure.NotFound("driver not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete driver")

		return fmt.Errorf("failed to delete driver: %w", err)
	}

	return nil
}
