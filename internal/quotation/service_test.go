package quotation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfava/shoproll/internal/invoice"
	"github.com/mfava/shoproll/internal/quotation"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func acceptedQuotation() *quotation.Quotation {
	return &quotation.Quotation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Items: []invoice.Item{
			{ID: uuid.New(), Type: invoice.ItemTire, Description: "Winter set", Quantity: 4, UnitPrice: dec("150.00")},
		},
		Rates:  invoice.TaxRates{Rate: dec("0.12")},
		Status: quotation.StatusAccepted,
	}
}

func newServices(t *testing.T) (*quotation.MockRepository, *invoice.MockRepository, *quotation.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	quoteRepo := quotation.NewMockRepository(ctrl)
	invRepo := invoice.NewMockRepository(ctrl)
	svc := quotation.NewService(quoteRepo, invoice.NewService(invRepo))

	return quoteRepo, invRepo, svc
}

func TestService_Create(t *testing.T) {
	quoteRepo, _, svc := newServices(t)

	quoteRepo.EXPECT().
		CreateQuotation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *quotation.Quotation) error {
			q.ID = uuid.New()
			q.CreatedAt = time.Now()
			return nil
		})

	got, err := svc.Create(context.Background(), quotation.CreateParams{
		CustomerID: uuid.New(),
		Items: []invoice.ItemParams{
			{Type: invoice.ItemService, Description: "Brake job", Quantity: 1, UnitPrice: dec("350.00")},
		},
		Rates: invoice.TaxRates{Rate: dec("0.12")},
	})
	require.NoError(t, err)
	assert.Equal(t, quotation.StatusDraft, got.Status)
	assert.Equal(t, "392.00", got.Totals().Total.StringFixed(2))
}

func TestService_Create_InvalidItems(t *testing.T) {
	_, _, svc := newServices(t)

	_, err := svc.Create(context.Background(), quotation.CreateParams{
		CustomerID: uuid.New(),
		Items: []invoice.ItemParams{
			{Type: invoice.ItemService, Quantity: 0, UnitPrice: dec("10.00")},
		},
		Rates: invoice.TaxRates{Rate: dec("0.12")},
	})

	var verr *invoice.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestService_Lifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    quotation.Status
		call    func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error)
		to      quotation.Status
		wantErr bool
	}{
		{
			name: "SendDraft",
			from: quotation.StatusDraft,
			call: func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error) {
				return svc.Send(context.Background(), id)
			},
			to: quotation.StatusSent,
		},
		{
			name: "AcceptSent",
			from: quotation.StatusSent,
			call: func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error) {
				return svc.Accept(context.Background(), id)
			},
			to: quotation.StatusAccepted,
		},
		{
			name: "DeclineSent",
			from: quotation.StatusSent,
			call: func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error) {
				return svc.Decline(context.Background(), id)
			},
			to: quotation.StatusDeclined,
		},
		{
			name: "AcceptDraft",
			from: quotation.StatusDraft,
			call: func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error) {
				return svc.Accept(context.Background(), id)
			},
			wantErr: true,
		},
		{
			name: "SendConverted",
			from: quotation.StatusConverted,
			call: func(svc *quotation.Service, id uuid.UUID) (*quotation.Quotation, error) {
				return svc.Send(context.Background(), id)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quoteRepo, _, svc := newServices(t)

			q := acceptedQuotation()
			q.Status = tt.from

			quoteRepo.EXPECT().GetQuotation(gomock.Any(), q.ID).Return(q, nil)

			if !tt.wantErr {
				quoteRepo.EXPECT().UpdateStatus(gomock.Any(), q.ID, tt.to).Return(nil)
			}

			got, err := tt.call(svc, q.ID)

			if tt.wantErr {
				var serr *quotation.InvalidStateError
				assert.ErrorAs(t, err, &serr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestService_Convert(t *testing.T) {
	quoteRepo, invRepo, svc := newServices(t)

	q := acceptedQuotation()

	invoiceID := uuid.New()

	gomock.InOrder(
		quoteRepo.EXPECT().GetQuotation(gomock.Any(), q.ID).Return(q, nil),
		invRepo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				inv.ID = invoiceID
				return nil
			}),
		quoteRepo.EXPECT().MarkConverted(gomock.Any(), q.ID, invoiceID).Return(nil),
	)

	gotQuote, gotInvoice, err := svc.Convert(context.Background(), q.ID)
	require.NoError(t, err)

	assert.Equal(t, quotation.StatusConverted, gotQuote.Status)
	require.NotNil(t, gotQuote.InvoiceID)
	assert.Equal(t, invoiceID, *gotQuote.InvoiceID)

	assert.Equal(t, invoice.StatusDraft, gotInvoice.Status)
	assert.Equal(t, q.CustomerID, gotInvoice.CustomerID)
	assert.Equal(t, "672.00", gotInvoice.Totals().Total.StringFixed(2))
}

func TestService_Convert_NotAccepted(t *testing.T) {
	quoteRepo, _, svc := newServices(t)

	q := acceptedQuotation()
	q.Status = quotation.StatusSent

	quoteRepo.EXPECT().GetQuotation(gomock.Any(), q.ID).Return(q, nil)

	_, _, err := svc.Convert(context.Background(), q.ID)

	var serr *quotation.InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, quotation.StatusSent, serr.Status)
}

func TestService_Delete_ConvertedRejected(t *testing.T) {
	quoteRepo, _, svc := newServices(t)

	q := acceptedQuotation()
	q.Status = quotation.StatusConverted

	quoteRepo.EXPECT().GetQuotation(gomock.Any(), q.ID).Return(q, nil)

	err := svc.Delete(context.Background(), q.ID)

	var serr *quotation.InvalidStateError
	assert.ErrorAs(t, err, &serr)
}
