package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/invoice"
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

type paymentResponse struct {
	ID         uuid.UUID      `json:"id"`
	Method     invoice.Method `json:"method"`
	Amount     string         `json:"amount"`
	RecordedAt time.Time      `json:"recorded_at"`
}

type invoiceResponse struct {
	ID         uuid.UUID         `json:"id"`
	CustomerID uuid.UUID         `json:"customer_id"`
	VehicleID  *uuid.UUID        `json:"vehicle_id,omitempty"`
	Items      []itemResponse    `json:"items"`
	Payments   []paymentResponse `json:"payments"`
	Status     invoice.Status    `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	Subtotal   string            `json:"subtotal"`
	Tax        string            `json:"tax"`
	Total      string            `json:"total"`
	AmountPaid string            `json:"amount_paid"`
	BalanceDue string            `json:"balance_due"`
	Overpaid   bool              `json:"overpaid"`
	Version    int64             `json:"version"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	totals := inv.Totals()

	items := make([]itemResponse, len(inv.Items))
	for i, it := range inv.Items {
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

	payments := make([]paymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = paymentResponse{
			ID:         p.ID,
			Method:     p.Method,
			Amount:     p.Amount.StringFixed(2),
			RecordedAt: p.RecordedAt,
		}
	}

	return invoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		VehicleID:  inv.VehicleID,
		Items:      items,
		Payments:   payments,
		Status:     inv.Status,
		Notes:      inv.Notes,
		Subtotal:   totals.Subtotal.StringFixed(2),
		Tax:        totals.Tax.StringFixed(2),
		Total:      totals.Total.StringFixed(2),
		AmountPaid: inv.AmountPaid().StringFixed(2),
		BalanceDue: inv.BalanceDue().StringFixed(2),
		Overpaid:   inv.Overpaid(),
		Version:    inv.Version,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func toResponseList(invs []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
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

// writeError maps domain errors onto HTTP statuses. Validation failures list
// every violation; state and version conflicts come back as 409.
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

	var sErr *invoice.InvalidStateError
	if errors.As(err, &sErr) {
		http.Error(w, sErr.Error(), http.StatusConflict)
		return
	}

	switch {
	case errors.Is(err, invoice.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.Is(err, invoice.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
