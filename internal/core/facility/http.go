package facility

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoikunavi/hoikunavi/internal/platform/respond"
	"github.com/hoikunavi/hoikunavi/pkg/convert"
	"github.com/hoikunavi/hoikunavi/pkg/pagination"
	"github.com/hoikunavi/hoikunavi/pkg/query"
)

// Handler exposes the public facility endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the facility route group.
//
// # Endpoints
//   - GET /         : paginated, filtered listing
//   - GET /search   : kana-aware full-corpus search
//   - GET /{id}     : single facility
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/{id}", handler.get)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	q := request.URL.Query()

	filter := Filter{
		Query:   q.Get("q"),
		Wards:   query.StringSlice(q.Get("ward")),
		MaxWalk: convert.ToIntD(q.Get("max_walk"), 0),
		Sort:    query.SortOrder(q.Get("sort"), SortByName, SortByStationWalk, SortByWalk),
	}

	facilities, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, facilities, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	q := request.URL.Query()
	sortOrder := query.SortOrder(q.Get("sort"), SortByName, SortByStationWalk, SortByWalk)

	facilities, err := handler.service.Search(request.Context(), q.Get("q"), sortOrder)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, facilities)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	f, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, f)
}
