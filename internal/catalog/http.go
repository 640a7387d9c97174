// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/internal/platform/constants"
	requestutil "github.com/rmonteiro/meliponario/internal/platform/request"
	"github.com/rmonteiro/meliponario/internal/platform/respond"
)

// # Handler Implementation

// VerificationOverlay exposes verification marks applied optimistically
// in this process but not yet confirmed by the backend. Breeder reads
// merge it so a just-toggled mark is visible to its own caller.
type VerificationOverlay interface {
	Verified(breederID string) (verified bool, known bool)
}

// Handler implements the HTTP layer for catalogue discovery. It translates
// web requests into planner calls and stamps every response with the
// source that answered, so the frontend can flag degraded (embedded)
// results.
type Handler struct {
	planner  *Planner
	resolver *Resolver
	overlay  VerificationOverlay
}

// NewHandler constructs a catalogue [Handler] with its dependencies.
// overlay may be nil, in which case breeder reads report stored state only.
func NewHandler(planner *Planner, resolver *Resolver, overlay VerificationOverlay) *Handler {
	return &Handler{planner: planner, resolver: resolver, overlay: overlay}
}

// SpeciesRoutes returns a [chi.Router] with the species discovery endpoints.
func (handler *Handler) SpeciesRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSpecies)
	router.Get("/{slug}", handler.getSpecies)

	return router
}

// RegisterBreederRoutes attaches the breeder discovery endpoints to the
// shared /breeders router. The social domain registers its endpoints on
// the same router, which is why this is not a standalone mount.
func (handler *Handler) RegisterBreederRoutes(router chi.Router) {
	router.Get("/", handler.listBreeders)
	router.Get("/{id}", handler.getBreeder)
}

// listSpecies handles GET /species: a faceted, searchable, paginated
// species listing. Never fails; degraded reads are served from the
// embedded dataset with X-Data-Source: embedded.
func (handler *Handler) listSpecies(writer http.ResponseWriter, request *http.Request) {
	descriptor := DescriptorFromRequest(request)

	page := handler.planner.ListSpecies(request.Context(), descriptor)

	writer.Header().Set(constants.HeaderXDataSource, string(page.Source))
	respond.Paginated(writer, page.Items, page.Meta)
}

// getSpecies handles GET /species/{slug}. Deep links sometimes carry the
// remote UUID key instead of the slug; the resolver translates it, and an
// untranslatable key is reported as NotFound rather than passed through.
func (handler *Handler) getSpecies(writer http.ResponseWriter, request *http.Request) {
	slug := handler.resolver.Slug(request.Context(), requestutil.Param(request, "slug"))
	if slug == "" {
		respond.Error(writer, request, apperr.NotFound("Species"))
		return
	}

	species, source, err := handler.planner.GetSpecies(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderXDataSource, string(source))
	respond.OK(writer, species)
}

// listBreeders handles GET /breeders with the directory facets.
func (handler *Handler) listBreeders(writer http.ResponseWriter, request *http.Request) {
	descriptor := DescriptorFromRequest(request)

	page := handler.planner.ListBreeders(request.Context(), descriptor)
	items := make([]*Breeder, len(page.Items))
	for i, breeder := range page.Items {
		items[i] = handler.applyVerificationOverlay(breeder)
	}

	writer.Header().Set(constants.HeaderXDataSource, string(page.Source))
	respond.Paginated(writer, items, page.Meta)
}

// getBreeder handles GET /breeders/{id}.
func (handler *Handler) getBreeder(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	breeder, source, err := handler.planner.GetBreeder(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderXDataSource, string(source))
	respond.OK(writer, handler.applyVerificationOverlay(breeder))
}

// applyVerificationOverlay returns the breeder with any in-flight
// optimistic verification mark applied. Planner results may point into
// the shared embedded dataset, so an overridden record is a copy.
func (handler *Handler) applyVerificationOverlay(breeder *Breeder) *Breeder {
	if handler.overlay == nil {
		return breeder
	}
	verified, known := handler.overlay.Verified(breeder.ID)
	if !known || breeder.Verified == verified {
		return breeder
	}
	overlaid := *breeder
	overlaid.Verified = verified
	return &overlaid
}
