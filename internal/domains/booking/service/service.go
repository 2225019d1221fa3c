package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/quote"
	"tourdesk/internal/domains/booking/repository"
	capacityService "tourdesk/internal/domains/capacity/service"
	pricingService "tourdesk/internal/domains/pricing/service"
	"tourdesk/internal/integrations/mailer"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:get_all"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	pricing  pricingService.Pricing
	capacity capacityService.Capacity
	mailer   mailer.Mailer
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	pricing pricingService.Pricing,
	capacity capacityService.Capacity,
	mail mailer.Mailer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		pricing:  pricing,
		capacity: capacity,
		mailer:   mail,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	price, err := s.pricing.ResolveUnitPrice(ctx, req.EntryName)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve unit price")

		return res, err
	}

	booking, err := req.ToModel(user, price.UnitPrice, price.ResourceType)
	if err != nil {
		log.Error().Err(err).Str("bookingDate", req.BookingDate).Msg("invalid booking date")

		return res, failure.BadRequestFromString("booking_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	// The capacity check and the insert are not atomic: two requests arriving
	// together can both pass the check and overbook the pool. Accepted for
	// now, staff reconcile the day sheet each morning.
	availability, err := s.availabilityFor(ctx, booking.BookingDate, booking.ResourceType, booking.GuestCount)
	if err != nil {
		return res, err
	}

	if !availability.Sufficient {
		log.Warn().
			Str("resourceType", booking.ResourceType).
			Int("requested", booking.GuestCount).
			Int("available", availability.Available).
			Msg("booking rejected, not enough capacity")

		return res, failure.Conflict(fmt.Sprintf(
			"not enough capacity for %s on %s: %d requested, %d available",
			booking.ResourceType,
			req.BookingDate,
			booking.GuestCount,
			availability.Available,
		)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if err := s.mailer.SendBookingConfirmation(c, mailer.BookingConfirmation{
			To:            booking.CustomerEmail,
			CustomerName:  booking.CustomerName,
			CustomerPhone: booking.CustomerPhone,
			EntryName:     booking.EntryName,
			BookingDate:   booking.BookingDate.Format(constant.CalendarDateFormat),
			GuestCount:    booking.GuestCount,
			TotalPrice:    booking.TotalPrice,
			AmountPaid:    booking.AmountPaid,
			BookingStatus: booking.Status,
			Notes:         booking.Notes,
		}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to send booking confirmation")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, err
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// UpdateStatus moves a booking through its lifecycle. Pending bookings can be
// confirmed or cancelled, confirmed ones only cancelled, cancelled ones are
// frozen.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, req.Status) {
		log.Warn().
			Str("from", booking.Status).
			Str("to", req.Status).
			Msg("rejected booking status transition")

		return failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// RecordPayment replaces the paid amount and rederives the payment state. A
// pending booking confirms itself once it is fully paid.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.Conflict("cannot record a payment on a cancelled booking") // nolint:wrapcheck
	}

	paymentState := model.PaymentStateFor(booking.TotalPrice, req.AmountPaid)

	updatedFields := map[string]any{
		model.FieldAmountPaid:    req.AmountPaid,
		model.FieldPaymentState:  paymentState,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	booking.AmountPaid = req.AmountPaid
	booking.PaymentState = paymentState

	if paymentState == model.PaymentPaid && model.CanTransition(booking.Status, model.StatusConfirmed) {
		updatedFields[model.FieldStatus] = model.StatusConfirmed
		booking.Status = model.StatusConfirmed
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record booking payment")

		return res, fmt.Errorf("failed to record booking payment: %w", err)
	}

	s.invalidateBooking(ctx, id)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := time.Parse(constant.CalendarDateFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	availability, err := s.availabilityFor(ctx, date, req.ResourceType, req.Guests)
	if err != nil {
		return res, err
	}

	res.FromQuote(req.Date, req.ResourceType, availability)

	return res, nil
}

func (s *serviceImpl) availabilityFor(ctx context.Context, date time.Time, resourceType string, guests int) (availability quote.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availabilityFor")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := date.Format(constant.CalendarDateFormat)

	if resourceType == constant.Empty {
		return quote.CheckAvailability(day, resourceType, nil, nil, guests), nil
	}

	pools, err := s.capacity.ResourcePools(ctx)
	if err != nil {
		return availability, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    day,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldResourceType,
				Value:    resourceType,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability check")

		return availability, fmt.Errorf("failed to load bookings for availability check: %w", err)
	}

	booked := make([]quote.BookedGuests, len(bookings))
	for i, booking := range bookings {
		booked[i] = quote.BookedGuests{
			Date:         booking.BookingDate.Format(constant.CalendarDateFormat),
			ResourceType: booking.ResourceType,
			GuestCount:   booking.GuestCount,
			Cancelled:    booking.Status == model.StatusCancelled,
		}
	}

	return quote.CheckAvailability(day, resourceType, booked, pools, guests), nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
