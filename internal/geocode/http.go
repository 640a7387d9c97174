// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package geocode

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/internal/platform/respond"
	"github.com/rmonteiro/meliponario/internal/platform/validate"
)

// Handler implements the HTTP layer for coordinate resolution.
type Handler struct {
	resolver *Resolver
}

// NewHandler constructs a geocode [Handler].
func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Routes returns a [chi.Router] with the geocoding endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/resolve", handler.resolve)

	return router
}

// resolve handles GET /geocode/resolve?cep=&city=&state=&street=.
//
// Chain exhaustion is a successful response with a null payload: the
// address simply has no resolvable coordinate.
func (handler *Handler) resolve(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	query := Query{
		Street:     values.Get("street"),
		City:       values.Get("city"),
		State:      values.Get("state"),
		PostalCode: values.Get("cep"),
	}

	if query.Empty() {
		respond.Error(writer, request, apperr.ValidationError("At least one of cep, city, state, or street is required"))
		return
	}
	if query.PostalCode != "" {
		v := &validate.Validator{}
		v.CEP("cep", query.PostalCode)
		if err := v.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	respond.OK(writer, handler.resolver.Resolve(request.Context(), query))
}
