package payments_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/payments"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// fakePaymentStore estado en memoria compartido por repos y TxRunner.
type fakePaymentStore struct {
	visits     map[int64]entity.Visit
	receipts   []entity.PaymentReceipt
	paymentRec []entity.VisitPayment
}

func (s *fakePaymentStore) RunPayment(_ context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	visitRepo repository.VisitRepository,
) error) error {
	snapshot := &fakePaymentStore{
		visits:     make(map[int64]entity.Visit, len(s.visits)),
		receipts:   append([]entity.PaymentReceipt(nil), s.receipts...),
		paymentRec: append([]entity.VisitPayment(nil), s.paymentRec...),
	}
	for k, v := range s.visits {
		snapshot.visits[k] = v
	}
	err := fn(&fakePaymentRepo{store: s}, &fakePaymentVisitRepo{store: s})
	if err != nil {
		*s = *snapshot
	}
	return err
}

type fakePaymentRepo struct{ store *fakePaymentStore }

func (r *fakePaymentRepo) CreateReceipt(rec *entity.PaymentReceipt) (int64, error) {
	rec.ID = int64(len(r.store.receipts) + 1)
	r.store.receipts = append(r.store.receipts, *rec)
	return rec.ID, nil
}

func (r *fakePaymentRepo) CreatePayment(p *entity.VisitPayment) (int64, error) {
	p.ID = int64(len(r.store.paymentRec) + 1)
	r.store.paymentRec = append(r.store.paymentRec, *p)
	return p.ID, nil
}

func (r *fakePaymentRepo) GetReceiptDetails(int64) (*repository.ReceiptDetails, error) {
	return nil, nil
}

type fakePaymentVisitRepo struct{ store *fakePaymentStore }

func (r *fakePaymentVisitRepo) InfoByPatientName(string, string, *string) ([]repository.VisitInfoRow, error) {
	return nil, nil
}

func (r *fakePaymentVisitRepo) Create(*entity.Visit) (int64, error) { return 0, nil }

func (r *fakePaymentVisitRepo) Update(*entity.Visit) error { return nil }

func (r *fakePaymentVisitRepo) Exists(id int64) (bool, error) {
	_, ok := r.store.visits[id]
	return ok, nil
}

func (r *fakePaymentVisitRepo) SetReceipt(visitID, receiptID int64) error {
	v, ok := r.store.visits[visitID]
	if !ok {
		return domain.ErrVisitNotFound
	}
	v.ReceiptID = &receiptID
	r.store.visits[visitID] = v
	return nil
}

func newPaymentUC(store *fakePaymentStore) *payments.ProcessPaymentUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return payments.NewProcessPaymentUseCase(store, log)
}

// El pago crea recibo + pago y enlaza el recibo con la visita.
func TestProcess_RegistraPagoCompleto(t *testing.T) {
	store := &fakePaymentStore{visits: map[int64]entity.Visit{10: {ID: 10}}}
	uc := newPaymentUC(store)

	resp, err := uc.Process(context.Background(), dto.ProcessPaymentRequest{
		VisitID:       10,
		Amount:        decimal.RequireFromString("2500"),
		PaymentMethod: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(1), resp.ReceiptID)
	assert.Equal(t, int64(1), resp.PaymentID)
	assert.NotEmpty(t, resp.ReceiptNumber)

	require.Len(t, store.receipts, 1)
	assert.Equal(t, resp.ReceiptNumber, store.receipts[0].Number)

	require.Len(t, store.paymentRec, 1)
	assert.Equal(t, int64(2), store.paymentRec[0].MethodID)
	assert.True(t, store.paymentRec[0].Amount.Equal(decimal.RequireFromString("2500")))

	visit := store.visits[10]
	require.NotNil(t, visit.ReceiptID)
	assert.Equal(t, int64(1), *visit.ReceiptID)
}

// Sin método de pago la petición se rechaza, no se asume ninguno.
func TestProcess_MetodoObligatorio(t *testing.T) {
	store := &fakePaymentStore{visits: map[int64]entity.Visit{10: {ID: 10}}}
	uc := newPaymentUC(store)

	_, err := uc.Process(context.Background(), dto.ProcessPaymentRequest{
		VisitID: 10,
		Amount:  decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.paymentRec)
	assert.Empty(t, store.receipts)
}

// Visita inexistente: rollback, no queda ni recibo ni pago.
func TestProcess_VisitaInexistente(t *testing.T) {
	store := &fakePaymentStore{visits: map[int64]entity.Visit{}}
	uc := newPaymentUC(store)

	_, err := uc.Process(context.Background(), dto.ProcessPaymentRequest{
		VisitID:       99,
		Amount:        decimal.RequireFromString("100"),
		PaymentMethod: 1,
	})
	assert.ErrorIs(t, err, domain.ErrVisitNotFound)
	assert.Empty(t, store.receipts)
	assert.Empty(t, store.paymentRec)
}

func TestProcess_Validaciones(t *testing.T) {
	uc := newPaymentUC(&fakePaymentStore{visits: map[int64]entity.Visit{}})

	_, err := uc.Process(context.Background(), dto.ProcessPaymentRequest{
		Amount: decimal.RequireFromString("100"), PaymentMethod: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Process(context.Background(), dto.ProcessPaymentRequest{VisitID: 10, PaymentMethod: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
