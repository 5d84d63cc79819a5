package tire_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfava/shoproll/internal/tire"
)

func stockLine(sku string) tire.CreateParams {
	return tire.CreateParams{
		Brand:     "Nordman",
		Model:     "7",
		Size:      "205/55R16",
		SKU:       sku,
		Condition: tire.ConditionNew,
		Quantity:  8,
		UnitPrice: decimal.RequireFromString("129.50"),
	}
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tire.CreateParams)
	}{
		{name: "MissingBrand", mutate: func(p *tire.CreateParams) { p.Brand = " " }},
		{name: "MissingSKU", mutate: func(p *tire.CreateParams) { p.SKU = "" }},
		{name: "NegativeQuantity", mutate: func(p *tire.CreateParams) { p.Quantity = -1 }},
		{name: "NegativePrice", mutate: func(p *tire.CreateParams) { p.UnitPrice = decimal.RequireFromString("-1") }},
		{name: "BadCondition", mutate: func(p *tire.CreateParams) { p.Condition = "refurbished" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := tire.NewService(tire.NewMockRepository(ctrl))

			params := stockLine("NRD7-205")
			tt.mutate(&params)

			_, err := svc.Create(context.Background(), params)
			assert.Error(t, err)
		})
	}
}

func TestService_AdjustStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tire.NewMockRepository(ctrl)
	svc := tire.NewService(repo)

	id := uuid.New()
	repo.EXPECT().AdjustQuantity(gomock.Any(), id, -4).Return(nil)

	assert.NoError(t, svc.AdjustStock(context.Background(), id, -4))

	// Zero delta never touches the repository.
	assert.NoError(t, svc.AdjustStock(context.Background(), id, 0))
}

func TestService_AdjustStock_Insufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tire.NewMockRepository(ctrl)
	svc := tire.NewService(repo)

	id := uuid.New()
	repo.EXPECT().AdjustQuantity(gomock.Any(), id, -10).Return(tire.ErrInsufficientStock)

	err := svc.AdjustStock(context.Background(), id, -10)
	assert.ErrorIs(t, err, tire.ErrInsufficientStock)
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tire.NewMockRepository(ctrl)
	itx := tire.NewMockImportTx(ctrl)
	svc := tire.NewService(repo)

	params := []tire.CreateParams{stockLine("NRD7-205"), stockLine("NRD7-215")}

	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().FindBySKUs(gomock.Any(), []string{"NRD7-205", "NRD7-215"}).Return(nil, nil)
	itx.EXPECT().CreateTires(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 2)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tire.NewMockRepository(ctrl)
	itx := tire.NewMockImportTx(ctrl)
	svc := tire.NewService(repo)

	params := []tire.CreateParams{stockLine("NRD7-205"), stockLine("NRD7-215")}
	existing := &tire.Tire{ID: uuid.New(), SKU: "NRD7-205"}

	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().FindBySKUs(gomock.Any(), gomock.Any()).Return([]*tire.Tire{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
	assert.Equal(t, "NRD7-205", result.Conflicts[0].Incoming.SKU)
}

func TestService_ImportBatch_InvalidLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := tire.NewService(tire.NewMockRepository(ctrl))

	bad := stockLine("NRD7-205")
	bad.Quantity = -3

	_, err := svc.ImportBatch(context.Background(), []tire.CreateParams{bad})
	require.Error(t, err)
	assert.False(t, errors.Is(err, tire.ErrNotFound))
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := tire.NewService(tire.NewMockRepository(ctrl))

	result, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
}
