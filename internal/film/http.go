/*
Package film provides the HTTP interface for the film catalog.

It exposes catalog CRUD, the like endpoints, and the popularity feed.

The handler serves as the bridge between RESTful requests and the [Service] layer.
*/
package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/filmorate/filmorate/internal/platform/request"
	"github.com/filmorate/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for the film domain.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new film [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the film domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Catalog Endpoints
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Get("/", handler.list)
	router.Get("/popular", handler.popular)
	router.Get("/{id}", handler.get)

	// # Engagement Endpoints
	router.Put("/{id}/like/{userId}", handler.putLike)
	router.Delete("/{id}/like/{userId}", handler.deleteLike)

	return router
}

/*
POST /films.

Description: Adds a new film to the catalog. The identifier is assigned
by the server; rating and genre ids are resolved against the reference
catalogs.

Request:
  - body: Film (name, description, releaseDate, duration, mpa, genres)

Response:
  - 201: Film: The created film with its assigned id
  - 400: Validation: Invalid payload or unknown rating/genre id
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	payload := &Film{}
	if err := requestutil.DecodeJSON(request, payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.Add(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, payload)
}

/*
PUT /films.

Description: Updates an existing film. The target is selected by the id
carried in the body, matching the create payload shape. Likes survive
the update.

Request:
  - body: Film (id plus catalog fields)

Response:
  - 200: Film: The updated film
  - 400: Validation: Invalid payload
  - 404: ErrNotFound: Unknown film id
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	payload := &Film{}
	if err := requestutil.DecodeJSON(request, payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.Update(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payload)
}

/*
GET /films.

Description: Retrieves the complete catalog.

Request:
  - None

Response:
  - 200: []Film: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	// Get all films
	films, err := handler.service.List(request.Context())

	// Handle error
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, films)
}

/*
GET /films/{id}.

Description: Retrieves a single film by its identifier.

Request:
  - id: int (Film ID)

Response:
  - 200: Film: Film details
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Film not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	record, err := handler.service.Get(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
PUT /films/{id}/like/{userId}.

Description: Records a like from a user on a film. Liking the same film
twice is a conflict.

Request:
  - id: int (Film ID)
  - userId: int (User ID)

Response:
  - 204: Success
  - 400: Validation: Invalid ids
  - 404: ErrNotFound: Film or user missing
  - 409: Conflict: Already liked
*/
func (handler *Handler) putLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.PutLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /films/{id}/like/{userId}.

Description: Withdraws a like. Withdrawing a like that was never put
fails with a distinct not-found error.

Request:
  - id: int (Film ID)
  - userId: int (User ID)

Response:
  - 204: Success
  - 400: Validation: Invalid ids
  - 404: ErrNotFound: Film, user, or like missing
*/
func (handler *Handler) deleteLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /films/popular?count={count}.

Description: Retrieves the most liked films. Ties rank by identifier, so
the feed is stable across calls.

Request:
  - count: int (Optional, defaults to 10)

Response:
  - 200: []Film: Ranked films
  - 400: Validation: Negative or malformed count
*/
func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {

	// Extract optional count with its default
	count, err := requestutil.IntQuery(request, "count", DefaultPopularCount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	films, err := handler.service.Popular(request.Context(), count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, films)
}

// likeParams extracts the {id}/{userId} pair shared by the like endpoints.
func likeParams(request *http.Request) (int, int, error) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}

	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		return 0, 0, err
	}

	return filmID, userID, nil
}
