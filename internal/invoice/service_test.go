package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfava/shoproll/internal/invoice"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    invoice.CreateParams
		setupMock func(m *invoice.MockRepository)
		wantErr   bool
	}

	validParams := invoice.CreateParams{
		CustomerID: uuid.New(),
		Items: []invoice.ItemParams{
			{Type: invoice.ItemTire, Description: "All-season", Quantity: 4, UnitPrice: dec("150.00")},
		},
		Rates: invoice.TaxRates{Rate: dec("0.12")},
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						inv.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingCustomer",
			params: invoice.CreateParams{
				Items: validParams.Items,
				Rates: validParams.Rates,
			},
			wantErr: true,
		},
		{
			name: "BadItem",
			params: invoice.CreateParams{
				CustomerID: uuid.New(),
				Items: []invoice.ItemParams{
					{Type: invoice.ItemTire, Quantity: 0, UnitPrice: dec("150.00")},
				},
				Rates: validParams.Rates,
			},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: validParams,
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, invoice.StatusDraft, got.Status)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "672.00", got.Totals().Total.StringFixed(2))
		})
	}
}

func TestService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	draft := pendingInvoice()
	draft.ID = id
	draft.Status = invoice.StatusDraft
	draft.Version = 3

	issued := draft
	issued.Status = invoice.StatusPending
	issued.Version = 4

	gomock.InOrder(
		repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&draft, nil),
		repo.EXPECT().UpdateStatus(gomock.Any(), id, int64(3), invoice.StatusPending).Return(nil),
		repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&issued, nil),
	)

	got, err := svc.Issue(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPending, got.Status)
	assert.Equal(t, int64(4), got.Version)
}

func TestService_Issue_NotDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	inv := pendingInvoice()
	inv.ID = id

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&inv, nil)

	_, err := svc.Issue(context.Background(), id)

	var serr *invoice.InvalidStateError
	assert.ErrorAs(t, err, &serr)
}

func TestService_AddPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	inv := pendingInvoice()
	inv.ID = id
	inv.Version = 1

	updated := inv
	updated.Status = invoice.StatusPartiallyPaid
	updated.Version = 2

	gomock.InOrder(
		repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&inv, nil),
		repo.EXPECT().
			RecordPayment(gomock.Any(), id, int64(1), gomock.Any(), invoice.StatusPartiallyPaid).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int64, entry invoice.PaymentEntry, _ invoice.Status) error {
				assert.Equal(t, invoice.MethodCash, entry.Method)
				assert.Equal(t, "200.00", entry.Amount.StringFixed(2))
				assert.NotEqual(t, uuid.Nil, entry.ID)
				return nil
			}),
		repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&updated, nil),
	)

	got, err := svc.AddPayment(context.Background(), id, invoice.PaymentParams{
		Method: invoice.MethodCash,
		Amount: dec("200.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPartiallyPaid, got.Status)
}

func TestService_AddPayment_VersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	inv := pendingInvoice()
	inv.ID = id

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&inv, nil)
	repo.EXPECT().
		RecordPayment(gomock.Any(), id, int64(0), gomock.Any(), gomock.Any()).
		Return(invoice.ErrVersionConflict)

	_, err := svc.AddPayment(context.Background(), id, invoice.PaymentParams{
		Method: invoice.MethodDebitCard,
		Amount: dec("50.00"),
	})
	assert.ErrorIs(t, err, invoice.ErrVersionConflict)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	draft := pendingInvoice()
	draft.ID = id
	draft.Status = invoice.StatusDraft

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&draft, nil)
	repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_Delete_IssuedRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	id := uuid.New()
	inv := pendingInvoice()
	inv.ID = id

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&inv, nil)

	err := svc.Delete(context.Background(), id)

	var serr *invoice.InvalidStateError
	assert.ErrorAs(t, err, &serr)
}
