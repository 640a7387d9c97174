// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

Identity comes from the upstream gateway, which authenticates the caller and
forwards the user identifier in a trusted header. This service never parses
or validates credentials itself.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/internal/platform/ctxutil"
	"github.com/rmonteiro/meliponario/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails, otherwise nil.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (UUID/Slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UserID returns the gateway-authenticated user identifier, or an empty
string for anonymous requests.
*/
func UserID(request *http.Request) string {
	return ctxutil.GetUserID(request.Context())
}

/*
RequiredUserID ensures the request carries an authenticated user identifier.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredUserID(request *http.Request) (string, error) {
	userID := ctxutil.GetUserID(request.Context())
	if userID == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	return userID, nil
}
