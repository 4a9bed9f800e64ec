package visits_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/visits"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/pkg/logger"
)

func newCleanupUseCase(store *fakeStore) *visits.CleanupDuplicatesUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return visits.NewCleanupDuplicatesUseCase(&fakeTxRunner{store: store}, log)
}

// seedVisitWithLines crea una visita y le añade líneas (serviceID, quantity).
func seedVisitWithLines(store *fakeStore, lines ...[2]int64) int64 {
	visitID := store.nextVisitID
	store.nextVisitID++
	store.visits[visitID] = entity.Visit{ID: visitID, PatientID: 1, EmployeeID: 1}
	for _, l := range lines {
		store.services = append(store.services, entity.VisitService{
			ID:        store.nextServiceID,
			VisitID:   visitID,
			ServiceID: l[0],
			Quantity:  l[1],
			Total:     decimal.RequireFromString("100"),
		})
		store.nextServiceID++
	}
	return visitID
}

// Tras una pasada queda exactamente una fila por cada par (servicio, cantidad)
// y sobrevive la de menor id.
func TestCleanup_Convergencia(t *testing.T) {
	store := newFakeStore()
	// servicio 3 ×2 triplicado, servicio 7 ×1 duplicado, servicio 9 único
	visitID := seedVisitWithLines(store,
		[2]int64{3, 2}, [2]int64{3, 2}, [2]int64{3, 2},
		[2]int64{7, 1}, [2]int64{7, 1},
		[2]int64{9, 1},
	)
	uc := newCleanupUseCase(store)

	resp, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{VisitID: visitID})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.DeletedCount, "2 copias del servicio 3 + 1 del 7")
	assert.Equal(t, int64(3), resp.RemainingServices)
	assert.Len(t, resp.Services, 3)

	// sobrevive la fila más antigua de cada grupo
	ids := map[int64]bool{}
	for _, s := range resp.Services {
		ids[s.ID] = true
	}
	assert.True(t, ids[1], "del grupo del servicio 3 debe quedar el id 1")
	assert.True(t, ids[4], "del grupo del servicio 7 debe quedar el id 4")
	assert.True(t, ids[6], "la línea única no se toca")
}

// Una segunda pasada no borra nada más.
func TestCleanup_Idempotente(t *testing.T) {
	store := newFakeStore()
	visitID := seedVisitWithLines(store, [2]int64{3, 2}, [2]int64{3, 2})
	uc := newCleanupUseCase(store)

	first, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{VisitID: visitID})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.DeletedCount)

	second, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{VisitID: visitID})
	require.NoError(t, err)

	assert.Equal(t, int64(0), second.DeletedCount)
	assert.Equal(t, int64(1), second.RemainingServices)
}

// Mismo servicio con cantidades distintas no es duplicado.
func TestCleanup_CantidadDistintaNoEsDuplicado(t *testing.T) {
	store := newFakeStore()
	visitID := seedVisitWithLines(store, [2]int64{3, 1}, [2]int64{3, 2})
	uc := newCleanupUseCase(store)

	resp, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{VisitID: visitID})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.DeletedCount)
	assert.Equal(t, int64(2), resp.RemainingServices)
}

func TestCleanup_VisitaInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newCleanupUseCase(store)

	_, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{VisitID: 99})
	assert.ErrorIs(t, err, domain.ErrVisitNotFound)
}

func TestCleanup_VisitIdObligatorio(t *testing.T) {
	store := newFakeStore()
	uc := newCleanupUseCase(store)

	_, err := uc.Cleanup(context.Background(), dto.CleanupDuplicatesRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
