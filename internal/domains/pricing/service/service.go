package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Pricing=MockPricingService

import (
	"context"
	"fmt"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/pricing/model"
	"tourdesk/internal/domains/pricing/model/dto"
	"tourdesk/internal/domains/pricing/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPricing     = "pricing:get"
	cacheGetAllPricing  = "pricing:get_all"
	cacheCountPricing   = "pricing:count"
	cacheCatalogPricing = "pricing:catalog"
)

type Pricing interface {
	Create(ctx context.Context, req dto.CreatePricingEntryRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPricingEntriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PricingEntryResponse, error)
	Update(ctx context.Context, req dto.UpdatePricingEntryRequest, id string) error
	Delete(ctx context.Context, id string) error
	ResolveUnitPrice(ctx context.Context, name string) (dto.UnitPriceResponse, error)
}

type serviceImpl struct {
	repo  repository.Pricing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Pricing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePricingEntryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPricing)
		shared.InvalidateCaches(c, s.cache, cacheCountPricing)
		shared.InvalidateCaches(c, s.cache, cacheCatalogPricing)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPricingEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPricing, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing entries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing entries")

		return res, err
	}

	entries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing entries")

		return res, err
	}

	res.FromModels(entries, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPricing, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing entry count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing entries")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing entry count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PricingEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPricing, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing entry")

		return res, nil
	}

	entry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing entry")

		return res, fmt.Errorf("failed to get pricing entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, failure.NotFound("pricing entry not found")
	}

	res.FromModel(entry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing entry to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePricingEntryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing entry existence")

		return err
	}

	if !exist {
		log.Error().Msg("pricing entry not found")

		return failure.NotFound("pricing entry not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update pricing entry")

		return fmt.Errorf("failed to update pricing entry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPricing, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete pricing entry cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPricing)
		shared.InvalidateCaches(c, s.cache, cacheCountPricing)
		shared.InvalidateCaches(c, s.cache, cacheCatalogPricing)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing entry existence")

		return err
	}

	if !exist {
		log.Error().Msg("pricing entry not found")

		return failure.NotFound("pricing entry not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing entry")

		return fmt.Errorf("failed to delete pricing entry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPricing, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete pricing entry cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPricing)
		shared.InvalidateCaches(c, s.cache, cacheCountPricing)
		shared.InvalidateCaches(c, s.cache, cacheCatalogPricing)
	}()

	return nil
}

// ResolveUnitPrice looks the name up against the active catalog in creation
// order. A miss is not an error: the caller gets a zero price and books the
// entry as written, so staff can fix the catalog later.
func (s *serviceImpl) ResolveUnitPrice(ctx context.Context, name string) (res dto.UnitPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveUnitPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	catalog, err := s.activeCatalog(ctx)
	if err != nil {
		return res, err
	}

	res.Name = name

	entry, found := model.FindByName(catalog, name)
	if !found {
		log.Warn().Str("name", name).Msg("pricing entry not found in catalog, falling back to zero price")

		return res, nil
	}

	res.UnitPrice = entry.UnitPrice
	res.ResourceType = entry.ResourceType

	return res, nil
}

func (s *serviceImpl) activeCatalog(ctx context.Context) (catalog []model.PricingEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activeCatalog")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheCatalogPricing, &catalog)
	if err == nil {
		log.Info().Str("cacheKey", cacheCatalogPricing).Msg("cache hit for pricing catalog")

		return catalog, nil
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
			},
		},
	}

	catalog, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load pricing catalog")

		return catalog, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCatalogPricing, catalog, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing catalog to cache")
		}
	}()

	return catalog, nil
}
