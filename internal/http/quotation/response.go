package quotation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/invoice"
	"github.com/mfava/shoproll/internal/quotation"
)

type itemResponse struct {
	ID          uuid.UUID        `json:"id"`
	Type        invoice.ItemType `json:"type"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	UnitPrice   string           `json:"unit_price"`
	LineTotal   string           `json:"line_total"`
	TireID      *uuid.UUID       `json:"tire_id,omitempty"`
}

type quotationResponse struct {
	ID         uuid.UUID        `json:"id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	VehicleID  *uuid.UUID       `json:"vehicle_id,omitempty"`
	Items      []itemResponse   `json:"items"`
	Status     quotation.Status `json:"status"`
	Notes      string           `json:"notes,omitempty"`
	Subtotal   string           `json:"subtotal"`
	Tax        string           `json:"tax"`
	Total      string           `json:"total"`
	InvoiceID  *uuid.UUID       `json:"invoice_id,omitempty"`
	ValidUntil *time.Time       `json:"valid_until,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(q *quotation.Quotation) quotationResponse {
	totals := q.Totals()

	items := make([]itemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = itemResponse{
			ID:          it.ID,
			Type:        it.Type,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			LineTotal:   it.LineTotal().StringFixed(2),
			TireID:      it.TireID,
		}
	}

	return quotationResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		VehicleID:  q.VehicleID,
		Items:      items,
		Status:     q.Status,
		Notes:      q.Notes,
		Subtotal:   totals.Subtotal.StringFixed(2),
		Tax:        totals.Tax.StringFixed(2),
		Total:      totals.Total.StringFixed(2),
		InvoiceID:  q.InvoiceID,
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func toResponseList(qs []*quotation.Quotation) []quotationResponse {
	resp := make([]quotationResponse, len(qs))
	for i, q := range qs {
		resp[i] = toResponse(q)
	}

	return resp
}

type violationDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error      string         `json:"error"`
	Violations []violationDTO `json:"violations"`
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *invoice.ValidationError
	if errors.As(err, &vErr) {
		violations := make([]violationDTO, len(vErr.Violations))
		for i, v := range vErr.Violations {
			violations[i] = violationDTO{Field: v.Field, Message: v.Message}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		resp := validationResponse{Error: "validation failed", Violations: violations}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	var sErr *quotation.InvalidStateError
	if errors.As(err, &sErr) {
		http.Error(w, sErr.Error(), http.StatusConflict)
		return
	}

	if errors.Is(err, quotation.ErrNotFound) {
		http.Error(w, "quotation not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
