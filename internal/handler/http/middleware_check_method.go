// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 Method Not Allowed it answers 404 with the usual
// {"message": ...} body, so a path is only visible through the methods it
// actually serves. The route is matched with [chi.Mux.Match], which expands
// URL parameters, so "/api/comments/{id}" is recognised for any id.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound)
	}
}
