package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/middleware"
	"github.com/spendlite/spendlite-backend/internal/response"
)

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/export", h.Export) // must be before /{transactionId}
	r.Get("/{transactionId}", h.Get)
	r.Put("/{transactionId}", h.Update)
	r.Delete("/{transactionId}", h.Delete)
	return r
}

func (h *transactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	txs, err := h.TransactionSvc.List(r.Context(), uid, queryFromRequest(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Get(r.Context(), uid, chi.URLParam(r, "transactionId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Update(r.Context(), uid, chi.URLParam(r, "transactionId"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.Delete(r.Context(), uid, chi.URLParam(r, "transactionId")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// Export streams the full history as CSV rather than the JSON envelope.
func (h *transactionHandlers) Export(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	data, err := h.TransactionSvc.ExportCSV(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func queryFromRequest(r *http.Request) dto.TransactionQuery {
	var q dto.TransactionQuery
	params := r.URL.Query()
	if v := params.Get("type"); v != "" {
		q.Type = &v
	}
	if v := params.Get("category"); v != "" {
		q.Category = &v
	}
	if v := params.Get("date"); v != "" {
		q.Date = &v
	}
	if v := params.Get("search"); v != "" {
		q.Search = &v
	}
	return q
}
