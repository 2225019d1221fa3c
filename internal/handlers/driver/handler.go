package driver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourdesk/infras/otel"
	"tourdesk/internal/domains/driver/model"
	"tourdesk/internal/domains/driver/model/dto"
	"tourdesk/internal/domains/driver/service"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/response"
)

type Handler struct {
	service service.Driver
	otel    otel.Otel
}

func New(service service.Driver, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drivers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDriver)
		routerGroup.Get("/", handler.GetDrivers)
		routerGroup.Get("/{id}", handler.GetDriverByID)
		routerGroup.Patch("/{id}", handler.UpdateDriver)
		routerGroup.Delete("/{id}", handler.DeleteDriver)
	})
}

// CreateDriver handles the creation of a new driver.
// @Summary Create a new driver
// @Description Create a new driver with the provided details.
// @Tags Driver
// @Accept json
// @Produce json
// @Param request body dto.CreateDriverRequest true "Create Driver Request"
// @Success 201 {object} response.Message "Driver created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers [post]
// @Security BearerAuth
func (handler *Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDriver")
	defer scope.End()

	req := dto.CreateDriverRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create driver")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Driver created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Driver created successfully")
}

// GetDrivers retrieves all drivers based on query parameters.
// @Summary Get all drivers
// @Description Retrieve all drivers with optional filtering and pagination.
// @Tags Driver
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param vehicle_type query string false "Filter by vehicle type"
// @Success 200 {object} dto.GetDriversResponse "List of drivers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers [get]
// @Security BearerAuth
func (handler *Handler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrivers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	vehicleType := r.URL.Query().Get(model.FieldVehicleType)

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

	if vehicleType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVehicleType,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleType,
			Table:    model.TableName,
		})
	}

	drivers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drivers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drivers retrieved successfully")

	response.WithJSON(w, http.StatusOK, drivers)
}

// GetDriverByID retrieves a driver by its ID.
// @Summary Get a driver by ID
// @Description Retrieve a driver by its unique identifier.
// @Tags Driver
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} dto.DriverResponse "Driver details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDriverByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	driver, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get driver by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Driver retrieved successfully")

	response.WithJSON(w, http.StatusOK, driver)
}

// UpdateDriver updates an existing driver by its ID.
// @Summary Update a driver by ID
// @Description Update the details of an existing driver.
// @Tags Driver
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Param request body dto.UpdateDriverRequest true "Update Driver Request"
// @Success 200 {object} response.Message "Driver updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDriver")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDriverRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update driver")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Driver updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Driver updated successfully")
}

// DeleteDriver deletes a driver by its ID.
// @Summary Delete a driver by ID
// @Description Delete a driver using its unique identifier.
// @Tags Driver
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} response.Message "Driver deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDriver")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete driver")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Driver deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Driver deleted successfully")
}
