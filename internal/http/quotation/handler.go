package quotation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/invoice"
	"github.com/mfava/shoproll/internal/quotation"
)

type Handler struct {
	svc *quotation.Service
}

func NewHandler(svc *quotation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/send", h.send)
	r.Post("/{id}/accept", h.accept)
	r.Post("/{id}/decline", h.decline)
	r.Post("/{id}/convert", h.convert)
}

type itemRequest struct {
	Type        invoice.ItemType `json:"type"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TireID      *uuid.UUID       `json:"tire_id,omitempty"`
}

type createQuotationRequest struct {
	CustomerID uuid.UUID        `json:"customer_id"`
	VehicleID  *uuid.UUID       `json:"vehicle_id,omitempty"`
	Items      []itemRequest    `json:"items"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
	GST        *decimal.Decimal `json:"gst,omitempty"`
	PST        *decimal.Decimal `json:"pst,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	ValidUntil *time.Time       `json:"valid_until,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]invoice.ItemParams, len(req.Items))
	for i, it := range req.Items {
		items[i] = invoice.ItemParams{
			Type:        it.Type,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TireID:      it.TireID,
		}
	}

	q, err := h.svc.Create(r.Context(), quotation.CreateParams{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		Items:      items,
		Rates: invoice.TaxRates{
			Rate: req.TaxRate,
			GST:  req.GST,
			PST:  req.PST,
		},
		Notes:      req.Notes,
		ValidUntil: req.ValidUntil,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(q))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := quotation.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := quotation.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("customer_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CustomerID = &id
		}
	}

	qs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(qs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(q))
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Send)
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Accept)
}

func (h *Handler) decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Decline)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(q))
}

type convertResponse struct {
	Quotation quotationResponse `json:"quotation"`
	InvoiceID uuid.UUID         `json:"invoice_id"`
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, inv, err := h.svc.Convert(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, convertResponse{
		Quotation: toResponse(q),
		InvoiceID: inv.ID,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
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
