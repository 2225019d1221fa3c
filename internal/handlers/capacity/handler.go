package capacity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourdesk/infras/otel"
	"tourdesk/internal/domains/capacity/model"
	"tourdesk/internal/domains/capacity/model/dto"
	"tourdesk/internal/domains/capacity/service"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/response"
)

type Handler struct {
	service service.Capacity
	otel    otel.Otel
}

func New(service service.Capacity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resource-capacities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateResourceCapacity)
		routerGroup.Get("/", handler.GetResourceCapacities)
		routerGroup.Get("/{id}", handler.GetResourceCapacityByID)
		routerGroup.Patch("/{id}", handler.UpdateResourceCapacity)
		routerGroup.Delete("/{id}", handler.DeleteResourceCapacity)
	})
}

// CreateResourceCapacity handles the creation of a new resource capacity.
// @Summary Create a new resource capacity
// @Description Define the total units available for a resource type.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceCapacityRequest true "Create Resource Capacity Request"
// @Success 201 {object} response.Message "Resource capacity created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-capacities [post]
// @Security BearerAuth
func (handler *Handler) CreateResourceCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResourceCapacity")
	defer scope.End()

	req := dto.CreateResourceCapacityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource capacity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource capacity created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Resource capacity created successfully")
}

// GetResourceCapacities retrieves all resource capacities.
// @Summary Get all resource capacities
// @Description Retrieve all resource capacities with optional filtering and pagination.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param resource_type query string false "Filter by resource type"
// @Success 200 {object} dto.GetResourceCapacitiesResponse "List of resource capacities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-capacities [get]
// @Security BearerAuth
func (handler *Handler) GetResourceCapacities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceCapacities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	resourceType := r.URL.Query().Get(model.FieldResourceType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if resourceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResourceType,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceType,
			Table:    model.TableName,
		})
	}

	capacities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource capacities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource capacities retrieved successfully")

	response.WithJSON(w, http.StatusOK, capacities)
}

// GetResourceCapacityByID retrieves a resource capacity by its ID.
// @Summary Get a resource capacity by ID
// @Description Retrieve a resource capacity by its unique identifier.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param id path string true "Resource Capacity ID"
// @Success 200 {object} dto.ResourceCapacityResponse "Resource capacity details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-capacities/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetResourceCapacityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceCapacityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	capacity, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource capacity by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource capacity retrieved successfully")

	response.WithJSON(w, http.StatusOK, capacity)
}

// UpdateResourceCapacity updates an existing resource capacity by its ID.
// @Summary Update a resource capacity by ID
// @Description Update the total units of an existing resource capacity.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param id path string true "Resource Capacity ID"
// @Param request body dto.UpdateResourceCapacityRequest true "Update Resource Capacity Request"
// @Success 200 {object} response.Message "Resource capacity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-capacities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateResourceCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResourceCapacity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateResourceCapacityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resource capacity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource capacity updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Resource capacity updated successfully")
}

// DeleteResourceCapacity deletes a resource capacity by its ID.
// @Summary Delete a resource capacity by ID
// @Description Delete a resource capacity using its unique identifier.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param id path string true "Resource Capacity ID"
// @Success 200 {object} response.Message "Resource capacity deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-capacities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResourceCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResourceCapacity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resource capacity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource capacity deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Resource capacity deleted successfully")
}
