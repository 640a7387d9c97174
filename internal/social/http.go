// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	requestutil "github.com/rmonteiro/meliponario/internal/platform/request"
	"github.com/rmonteiro/meliponario/internal/platform/respond"
	"github.com/rmonteiro/meliponario/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for the social domain. Every
// mutating endpoint requires the gateway-issued user identity.
type Handler struct {
	coordinator *Coordinator
}

// NewHandler constructs a social [Handler] with its coordinator.
func NewHandler(coordinator *Coordinator) *Handler {
	return &Handler{coordinator: coordinator}
}

// FavoriteRoutes returns a [chi.Router] with the favorites endpoints.
func (handler *Handler) FavoriteRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listFavorites)
	router.Post("/{breederID}", handler.addFavorite)
	router.Delete("/{breederID}", handler.removeFavorite)

	return router
}

// RegisterBreederRoutes attaches the per-breeder social endpoints
// (ratings, verification) to the shared /breeders router.
func (handler *Handler) RegisterBreederRoutes(router chi.Router) {
	router.Get("/{id}/ratings", handler.listRatings)
	router.Post("/{id}/ratings", handler.submitRating)
	router.Post("/{id}/verify", handler.markVerified)
	router.Delete("/{id}/verify", handler.unmarkVerified)
}

// # Favorites

// listFavorites handles GET /favorites for the authenticated user.
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	breederIDs, err := handler.coordinator.Favorites(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if breederIDs == nil {
		breederIDs = []string{}
	}

	respond.OK(writer, breederIDs)
}

// addFavorite handles POST /favorites/{breederID}.
func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	handler.toggleFavorite(writer, request, true)
}

// removeFavorite handles DELETE /favorites/{breederID}.
func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	handler.toggleFavorite(writer, request, false)
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request, favored bool) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	breederID := requestutil.Param(request, "breederID")
	v := &validate.Validator{}
	v.UUID("breeder_id", breederID)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.coordinator.ToggleFavorite(request.Context(), userID, breederID, favored)
	if !result.Accepted {
		respond.Error(writer, request, apperr.ServiceUnavailable("Favorite could not be stored"))
		return
	}

	respond.OK(writer, result)
}

// # Verification

// markVerified handles POST /breeders/{id}/verify.
func (handler *Handler) markVerified(writer http.ResponseWriter, request *http.Request) {
	handler.setVerification(writer, request, true)
}

// unmarkVerified handles DELETE /breeders/{id}/verify.
func (handler *Handler) unmarkVerified(writer http.ResponseWriter, request *http.Request) {
	handler.setVerification(writer, request, false)
}

func (handler *Handler) setVerification(writer http.ResponseWriter, request *http.Request, verified bool) {
	if _, err := requestutil.RequiredUserID(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	breederID := requestutil.Param(request, "id")
	v := &validate.Validator{}
	v.UUID("breeder_id", breederID)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.coordinator.SetVerification(request.Context(), breederID, verified)
	if !result.Accepted {
		respond.Error(writer, request, apperr.ServiceUnavailable("Verification could not be stored"))
		return
	}

	respond.OK(writer, result)
}

// # Ratings

// ratingRequest is the POST /breeders/{id}/ratings payload.
type ratingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// listRatings handles GET /breeders/{id}/ratings.
func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	breederID := requestutil.Param(request, "id")

	ratings, err := handler.coordinator.Ratings(request.Context(), breederID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if ratings == nil {
		ratings = []*Rating{}
	}

	respond.OK(writer, ratings)
}

// submitRating handles POST /breeders/{id}/ratings.
func (handler *Handler) submitRating(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload ratingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating := &Rating{
		BreederID: requestutil.Param(request, "id"),
		AuthorID:  userID,
		Score:     payload.Score,
		Comment:   payload.Comment,
	}

	result, err := handler.coordinator.SubmitRating(request.Context(), rating)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusCreated, respond.SuccessEnvelope{Data: map[string]any{
		"rating": rating,
		"result": result,
	}})
}
