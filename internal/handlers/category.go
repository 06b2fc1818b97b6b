package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/middleware"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/internal/response"
)

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     CategoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/registry", h.Registry)
	r.Post("/", h.Add)
	r.Put("/rename", h.Rename)
	r.Delete("/", h.Delete)
	return r
}

// Registry returns the picker set: defaults merged with the user's
// custom categories.
func (h *categoryHandlers) Registry(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	registry, err := h.CategorySvc.Registry(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, registry)
}

func (h *categoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.CategorySvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *categoryHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.CategorySvc.Add(r.Context(), uid, req.Category); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, req.Category)
}

func (h *categoryHandlers) Rename(w http.ResponseWriter, r *http.Request) {
	var req dto.RenameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.CategorySvc.Rename(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

// Delete removes a category and cascades over its transactions. The target
// comes from query params so the route stays body-free.
func (h *categoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	cat := models.Category{
		Name: r.URL.Query().Get("name"),
		Type: r.URL.Query().Get("type"),
	}
	uid := middleware.UID(r.Context())
	result, err := h.CategorySvc.Delete(r.Context(), uid, cat)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
