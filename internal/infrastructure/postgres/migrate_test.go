package postgres

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// El seed de referencia debe ser coherente con los valores por defecto que
// usa el código al crear filas.
func TestSeed_CoherenteConDefaults(t *testing.T) {
	seed, err := migrationFiles.ReadFile("migrations/0002_seed.sql")
	require.NoError(t, err)
	sql := string(seed)

	// visita nueva: tipo primario, estado planificado
	assert.Contains(t, sql, fmt.Sprintf("(%d, 'Primario')", entity.DefaultVisitTypeID))
	assert.Contains(t, sql, fmt.Sprintf("(%d, 'Planificada')", entity.DefaultVisitStatusID))

	// estados de empleado: despedido -> inactivo
	assert.Contains(t, sql, fmt.Sprintf("(%d, 'Inactivo')", entity.EmployeeStatusInactive))
	assert.Contains(t, sql, fmt.Sprintf("(%d, 'Activo')", entity.EmployeeStatusActive))
}

// Las migraciones embebidas se aplican en orden lexicográfico: los nombres
// deben mantener el prefijo numérico.
func TestMigrations_NombresOrdenables(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		name := e.Name()
		assert.True(t, strings.HasSuffix(name, ".sql"), name)
		require.GreaterOrEqual(t, len(name), 5, name)
		for _, r := range name[:4] {
			assert.True(t, r >= '0' && r <= '9', "prefijo numérico en %s", name)
		}
	}
}
