package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourdesk/infras/otel"
	"tourdesk/internal/domains/pricing/model"
	"tourdesk/internal/domains/pricing/model/dto"
	"tourdesk/internal/domains/pricing/service"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/response"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing-entries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePricingEntry)
		routerGroup.Get("/", handler.GetPricingEntries)
		routerGroup.Get("/unit-price", handler.GetUnitPrice)
		routerGroup.Get("/{id}", handler.GetPricingEntryByID)
		routerGroup.Patch("/{id}", handler.UpdatePricingEntry)
		routerGroup.Delete("/{id}", handler.DeletePricingEntry)
	})
}

// CreatePricingEntry handles the creation of a new pricing entry.
// @Summary Create a new pricing entry
// @Description Create a new package or activity pricing entry.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreatePricingEntryRequest true "Create Pricing Entry Request"
// @Success 201 {object} response.Message "Pricing entry created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries [post]
// @Security BearerAuth
func (handler *Handler) CreatePricingEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricingEntry")
	defer scope.End()

	req := dto.CreatePricingEntryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing entry created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Pricing entry created successfully")
}

// GetPricingEntries retrieves all pricing entries based on query parameters.
// @Summary Get all pricing entries
// @Description Retrieve all pricing entries with optional filtering and pagination.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param kind query string false "Filter by kind (package or activity)"
// @Param resource_type query string false "Filter by resource type"
// @Success 200 {object} dto.GetPricingEntriesResponse "List of pricing entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries [get]
// @Security BearerAuth
func (handler *Handler) GetPricingEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	kind := r.URL.Query().Get(model.FieldKind)
	resourceType := r.URL.Query().Get(model.FieldResourceType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if kind != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	if resourceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResourceType,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceType,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// GetUnitPrice resolves the unit price for a catalog name.
// @Summary Resolve unit price by name
// @Description Resolve the unit price for the named pricing entry. Unknown names resolve to a zero price.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param name query string true "Pricing entry name"
// @Success 200 {object} dto.UnitPriceResponse "Resolved unit price"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries/unit-price [get]
// @Security BearerAuth
func (handler *Handler) GetUnitPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnitPrice")
	defer scope.End()

	name := r.URL.Query().Get(model.FieldName)
	if name == "" {
		err := failure.BadRequestFromString("name is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ResolveUnitPrice(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve unit price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit price resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetPricingEntryByID retrieves a pricing entry by its ID.
// @Summary Get a pricing entry by ID
// @Description Retrieve a pricing entry by its unique identifier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Entry ID"
// @Success 200 {object} dto.PricingEntryResponse "Pricing entry details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPricingEntryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingEntryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	entry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing entry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing entry retrieved successfully")

	response.WithJSON(w, http.StatusOK, entry)
}

// UpdatePricingEntry updates an existing pricing entry by its ID.
// @Summary Update a pricing entry by ID
// @Description Update the details of an existing pricing entry.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Entry ID"
// @Param request body dto.UpdatePricingEntryRequest true "Update Pricing Entry Request"
// @Success 200 {object} response.Message "Pricing entry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePricingEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricingEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingEntryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing entry updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Pricing entry updated successfully")
}

// DeletePricingEntry deletes a pricing entry by its ID.
// @Summary Delete a pricing entry by ID
// @Description Delete a pricing entry using its unique identifier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Entry ID"
// @Success 200 {object} response.Message "Pricing entry deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-entries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePricingEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePricingEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing entry deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Pricing entry deleted successfully")
}
