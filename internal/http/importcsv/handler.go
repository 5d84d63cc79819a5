package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/importer"
	"github.com/mfava/shoproll/internal/tire"
)

type Handler struct {
	importSvc *importer.Service
	tireSvc   *tire.Service
}

func NewHandler(importSvc *importer.Service, tireSvc *tire.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		tireSvc:   tireSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
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
}

type importSuccessResponse struct {
	Imported int            `json:"imported"`
	Tires    []tireResponse `json:"tires"`
}

type createParamsDTO struct {
	Brand     string          `json:"brand"`
	Model     string          `json:"model,omitempty"`
	Size      string          `json:"size"`
	SKU       string          `json:"sku"`
	Condition tire.Condition  `json:"condition"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type conflictDTO struct {
	Incoming createParamsDTO `json:"incoming"`
	Existing tireResponse    `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []createParamsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		http.Error(w, "format field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.tireSvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toTireResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(result.Imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]tire.CreateParams, 0, len(req.Params))
	for _, p := range req.Params {
		params = append(params, tire.CreateParams{
			Brand:     p.Brand,
			Model:     p.Model,
			Size:      p.Size,
			SKU:       p.SKU,
			Condition: p.Condition,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}

	tires, err := h.tireSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(tires)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(tires []*tire.Tire) importSuccessResponse {
	responses := make([]tireResponse, 0, len(tires))
	for _, t := range tires {
		responses = append(responses, toTireResponse(t))
	}

	return importSuccessResponse{
		Imported: len(tires),
		Tires:    responses,
	}
}

func toTireResponse(t *tire.Tire) tireResponse {
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
	}
}

func toParamsDTO(p tire.CreateParams) createParamsDTO {
	return createParamsDTO{
		Brand:     p.Brand,
		Model:     p.Model,
		Size:      p.Size,
		SKU:       p.SKU,
		Condition: p.Condition,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
	}
}
