package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/middleware"
	"github.com/spendlite/spendlite-backend/internal/response"
)

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateMe)
	return r
}

// Register creates the profile document for the authenticated uid on first
// sign-in. Email and name come from the client; identity comes from the token.
func (h *userHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.UserSvc.Register(r.Context(), uid, req.Email, req.Name); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, nil)
}

func (h *userHandlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.Update(r.Context(), uid, req.Email, req.Name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) Me(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.Get(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}
