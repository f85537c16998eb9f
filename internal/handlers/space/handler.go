package space

import (
	"net/http"
	"strconv"
	"studyspot/infras/otel"
	"studyspot/internal/domains/space/service"
	"studyspot/shared/constant"
	"studyspot/shared/failure"
	"studyspot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Space
	otel    otel.Otel
}

func New(service service.Space, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/spaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSpaces)
		routerGroup.Get("/{id}", handler.GetSpaceByID)
	})
}

// GetSpaces lists the bookable spaces.
// @Summary Get all spaces
// @Description List every bookable space, optionally filtered by a name or location search.
// @Tags Space
// @Produce json
// @Param search query string false "Filter by name or location substring"
// @Success 200 {object} response.Data[dto.GetSpacesResponse] "List of spaces"
// @Failure 500 {object} response.Error
// @Router /v1/spaces [get]
func (handler *Handler) GetSpaces(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaces")
	defer scope.End()

	search := request.URL.Query().Get(constant.RequestParamSearch)

	res, err := handler.service.GetAll(ctx, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spaces")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSpaceByID returns a single space.
// @Summary Get a space
// @Description Fetch one space by its numeric id.
// @Tags Space
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {object} response.Data[dto.SpaceResponse] "Space details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spaces/{id} [get]
func (handler *Handler) GetSpaceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaceByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid space id")

		response.WithError(writer, failure.InvalidSpaceParam)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get space")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
