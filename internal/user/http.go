/*
Package user provides the HTTP interface for accounts and friendship.

It exposes account CRUD plus the social endpoints for managing and
querying the friendship graph.

The handler serves as the bridge between RESTful requests and the [Service] layer.
*/
package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/filmorate/filmorate/internal/platform/request"
	"github.com/filmorate/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for the user domain.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new user [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the user domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Account Endpoints
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// # Friendship Endpoints
	router.Put("/{id}/friends/{friendId}", handler.addFriend)
	router.Delete("/{id}/friends/{friendId}", handler.deleteFriend)
	router.Get("/{id}/friends", handler.listFriends)
	router.Get("/{id}/friends/common/{otherId}", handler.commonFriends)

	return router
}

/*
POST /users.

Description: Registers a new account. The identifier is assigned by the
server; a blank name defaults to the login.

Request:
  - body: User (email, login, name, birthday)

Response:
  - 201: User: The created account with its assigned id
  - 400: Validation: Invalid payload
  - 409: Conflict: Email already registered
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	payload := &User{}
	if err := requestutil.DecodeJSON(request, payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.Create(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, payload)
}

/*
PUT /users.

Description: Updates an existing account. The target is selected by the
id carried in the body, matching the create payload shape.

Request:
  - body: User (id, email, login, name, birthday)

Response:
  - 200: User: The updated account
  - 400: Validation: Invalid payload
  - 404: ErrNotFound: Unknown account id
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	payload := &User{}
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
GET /users.

Description: Retrieves all registered accounts.

Request:
  - None

Response:
  - 200: []User: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	// Get all accounts
	users, err := handler.service.List(request.Context())

	// Handle error
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
GET /users/{id}.

Description: Retrieves a single account by its identifier.

Request:
  - id: int (User ID)

Response:
  - 200: User: Account details
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Account not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	account, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
PUT /users/{id}/friends/{friendId}.

Description: Establishes a symmetric friendship between two accounts.

Request:
  - id: int (User ID)
  - friendId: int (Friend ID)

Response:
  - 204: Success
  - 400: Validation: Invalid ids or self-friendship
  - 404: ErrNotFound: Either account missing
  - 409: Conflict: Already friends
*/
func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /users/{id}/friends/{friendId}.

Description: Dissolves a friendship. Removing an edge that does not exist
still succeeds.

Request:
  - id: int (User ID)
  - friendId: int (Friend ID)

Response:
  - 204: Success
  - 400: Validation: Invalid ids
  - 404: ErrNotFound: Either account missing
*/
func (handler *Handler) deleteFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /users/{id}/friends.

Description: Retrieves the friends of an account.

Request:
  - id: int (User ID)

Response:
  - 200: []User: Befriended accounts
  - 404: ErrNotFound: Account not found
*/
func (handler *Handler) listFriends(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	friends, err := handler.service.ListFriends(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, friends)
}

/*
GET /users/{id}/friends/common/{otherId}.

Description: Retrieves the mutual friends of two accounts.

Request:
  - id: int (User ID)
  - otherId: int (Other user ID)

Response:
  - 200: []User: Mutual friends, possibly empty
  - 404: ErrNotFound: Either account missing
*/
func (handler *Handler) commonFriends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	otherID, err := requestutil.IntParam(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mutual, err := handler.service.CommonFriends(request.Context(), userID, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, mutual)
}

// friendParams extracts the {id}/{friendId} pair shared by the edge endpoints.
func friendParams(request *http.Request) (int, int, error) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}

	friendID, err := requestutil.IntParam(request, "friendId")
	if err != nil {
		return 0, 0, err
	}

	return userID, friendID, nil
}
