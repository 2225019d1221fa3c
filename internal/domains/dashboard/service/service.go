package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tourdesk/config"
	"tourdesk/infras/otel"
	bookingModel "tourdesk/internal/domains/booking/model"
	bookingRepository "tourdesk/internal/domains/booking/repository"
	"tourdesk/internal/domains/dashboard/model/dto"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
)

const (
	cacheSummaryDashboard = "dashboard:summary"
)

type Dashboard interface {
	Summary(ctx context.Context, from, to string) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Summary aggregates booking KPIs over [from, to] and over the previous
// period of the same length, so the frontend can render trend deltas.
func (s *serviceImpl) Summary(ctx context.Context, from, to string) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, err := time.Parse(constant.CalendarDateFormat, from)
	if err != nil {
		return res, failure.BadRequestFromString("from must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	toDate, err := time.Parse(constant.CalendarDateFormat, to)
	if err != nil {
		return res, failure.BadRequestFromString("to must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSummaryDashboard, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard summary")

		return res, nil
	}

	// Previous period ends the day before from and spans the same number of days.
	days := int(toDate.Sub(fromDate).Hours()/24) + 1
	prevTo := fromDate.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -(days - 1))

	if err = s.periodTotals(ctx, fromDate, toDate, &res.Current); err != nil {
		return res, err
	}

	if err = s.periodTotals(ctx, prevFrom, prevTo, &res.Previous); err != nil {
		return res, err
	}

	res.ComputeDeltas()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) periodTotals(ctx context.Context, from, to time.Time, totals *dto.PeriodTotals) error {
	totals.From = from.Format(constant.CalendarDateFormat)
	totals.To = to.Format(constant.CalendarDateFormat)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "summary_from",
				Field:    bookingModel.FieldBookingDate,
				Value:    totals.From,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "summary_to",
				Field:    bookingModel.FieldBookingDate,
				Value:    totals.To,
				Operator: gDto.FilterOperatorLessEq,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard summary")

		return err
	}

	totals.FromModels(bookings)

	return nil
}
