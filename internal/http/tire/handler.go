package tire

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/tire"
)

type Handler struct {
	svc *tire.Service
}

func NewHandler(svc *tire.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/adjust", h.adjustStock)
}

type tireResponse struct {
	ID        uuid.UUID      `json:"id"`
	Brand     string         `json:"brand"`
	Model     string         `json:"model,omitempty"`
	Size      string         `json:"size"`
	SKU       string         `json:"sku"`
	Condition tire.Condition `json:"condition"`
	Quantity  int            `json:"quantity"`
	UnitPrice string         `json:"unit_price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(t *tire.Tire) tireResponse {
	return tireResponse{
		ID:        t.ID,
		Brand:     t.Brand,
		Model:     t.Model,
		Size:      t.Size,
		SKU:       t.SKU,
		Condition: t.Condition,
		Quantity:  t.Quantity,
		UnitPrice: t.UnitPrice.StringFixed(2),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type createTireRequest struct {
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Size      string          `json:"size"`
	SKU       string          `json:"sku"`
	Condition tire.Condition  `json:"condition"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), tire.CreateParams{
		Brand:     req.Brand,
		Model:     req.Model,
		Size:      req.Size,
		SKU:       req.SKU,
		Condition: req.Condition,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := tire.ListFilter{}

	if s := r.URL.Query().Get("brand"); s != "" {
		filter.Brand = &s
	}

	if s := r.URL.Query().Get("size"); s != "" {
		filter.Size = &s
	}

	ts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]tireResponse, len(ts))
	for i, t := range ts {
		resp[i] = toResponse(t)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			http.Error(w, "tire not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(t))
}

type updateTireRequest struct {
	Brand     *string          `json:"brand,omitempty"`
	Model     *string          `json:"model,omitempty"`
	Size      *string          `json:"size,omitempty"`
	Condition *tire.Condition  `json:"condition,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			http.Error(w, "tire not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Brand != nil {
		t.Brand = *req.Brand
	}

	if req.Model != nil {
		t.Model = *req.Model
	}

	if req.Size != nil {
		t.Size = *req.Size
	}

	if req.Condition != nil {
		t.Condition = *req.Condition
	}

	if req.UnitPrice != nil {
		t.UnitPrice = *req.UnitPrice
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(t))
}

type adjustStockRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AdjustStock(r.Context(), id, req.Delta); err != nil {
		switch {
		case errors.Is(err, tire.ErrNotFound):
			http.Error(w, "tire not found", http.StatusNotFound)
		case errors.Is(err, tire.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(t))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
