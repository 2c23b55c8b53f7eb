package snapshot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoikunavi/hoikunavi/internal/platform/respond"
)

// Handler exposes the public snapshot endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the month-oriented route group.
//
// # Endpoints
//   - GET /         : distinct snapshot months, newest first
//   - GET /{month}  : all facility snapshots for one month
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listMonths)
	router.Get("/{month}", handler.getMonth)
	return router
}

func (handler *Handler) listMonths(writer http.ResponseWriter, request *http.Request) {
	months, err := handler.service.Months(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, months)
}

func (handler *Handler) getMonth(writer http.ResponseWriter, request *http.Request) {
	month := chi.URLParam(request, "month")

	snapshots, err := handler.service.Month(request.Context(), month)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snapshots)
}

// FacilityAvailability handles GET /facilities/{id}/availability, mounted by
// the server next to the facility routes.
func (handler *Handler) FacilityAvailability(writer http.ResponseWriter, request *http.Request) {
	facilityID := chi.URLParam(request, "id")

	history, err := handler.service.FacilityHistory(request.Context(), facilityID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, history)
}
