// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/platform/middleware"
	requestutil "github.com/hoikunavi/hoikunavi/internal/platform/request"
	"github.com/hoikunavi/hoikunavi/internal/platform/respond"
)

// Handler exposes the admin endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the admin route group.
//
// # Endpoints
//   - POST   /login            : credential check, issues a bearer token
//   - PUT    /facilities/{id}  : manual master-data correction (admin only)
//   - DELETE /cache            : drop the search corpus cache (admin only)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)

	router.Group(func(guarded chi.Router) {
		guarded.Use(middleware.RequireAdmin)
		guarded.Put("/facilities/{id}", handler.updateFacility)
		guarded.Delete("/cache", handler.flushCache)
	})

	return router
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var body loginRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), body.Username, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) updateFacility(writer http.ResponseWriter, request *http.Request) {
	var body facility.Facility
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The path parameter is authoritative; the body may omit the ID.
	body.ID = requestutil.Param(request, "id")

	if err := handler.service.UpdateFacility(request.Context(), &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, &body)
}

func (handler *Handler) flushCache(writer http.ResponseWriter, request *http.Request) {
	handler.service.FlushCache(request.Context())
	respond.NoContent(writer)
}
