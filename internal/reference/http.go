/*
Package reference provides the HTTP interface for the reference catalogs.

It exposes read-only discovery of MPA ratings and genres. There are no
write endpoints: the catalogs are fixed and seeded at schema creation.

The handler serves as the bridge between RESTful requests and the [Service] layer.
*/
package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/filmorate/filmorate/internal/platform/request"
	"github.com/filmorate/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for the reference catalogs.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Rating Endpoints
	router.Get("/mpa", handler.listMpa)
	router.Get("/mpa/{id}", handler.getMpa)

	// # Genre Endpoints
	router.Get("/genres", handler.listGenres)
	router.Get("/genres/{id}", handler.getGenre)

	return router
}

/*
GET /mpa.

Description: Retrieves the complete MPA age-rating scale.

Request:
  - None

Response:
  - 200: []Mpa: Success
*/
func (handler *Handler) listMpa(writer http.ResponseWriter, request *http.Request) {

	// Get all ratings
	ratings, err := handler.service.ListMpa(request.Context())

	// Handle error
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, ratings)
}

/*
GET /mpa/{id}.

Description: Retrieves details for a specific MPA rating.

Request:
  - id: int (Rating ID)

Response:
  - 200: Mpa: Rating details
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Rating not found
*/
func (handler *Handler) getMpa(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	ratingID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	rating, err := handler.service.GetMpa(request.Context(), ratingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rating)
}

/*
GET /genres.

Description: Retrieves the complete genre catalog.

Request:
  - None

Response:
  - 200: []Genre: Success
*/
func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {

	// Get all genres
	genres, err := handler.service.ListGenres(request.Context())

	// Handle error
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, genres)
}

/*
GET /genres/{id}.

Description: Retrieves details for a specific genre.

Request:
  - id: int (Genre ID)

Response:
  - 200: Genre: Genre details
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Genre not found
*/
func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	genreID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, genre)
}
