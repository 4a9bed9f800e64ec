package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/application/dto"
)

func TestParseDate_AmbosFormatos(t *testing.T) {
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	iso, err := dto.ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.True(t, iso.Equal(want))

	dotted, err := dto.ParseDate("10.01.2024")
	require.NoError(t, err)
	assert.True(t, dotted.Equal(want))

	_, err = dto.ParseDate("10/01/2024")
	assert.Error(t, err)
}

func TestSplitFullName(t *testing.T) {
	last, first, patronymic, err := dto.SplitFullName("Иванов Иван Иванович")
	require.NoError(t, err)
	assert.Equal(t, "Иванов", last)
	assert.Equal(t, "Иван", first)
	require.NotNil(t, patronymic)
	assert.Equal(t, "Иванович", *patronymic)

	last, first, patronymic, err = dto.SplitFullName("García María")
	require.NoError(t, err)
	assert.Equal(t, "García", last)
	assert.Equal(t, "María", first)
	assert.Nil(t, patronymic)

	_, _, _, err = dto.SplitFullName("SoloApellido")
	assert.Error(t, err)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "79991234567", dto.Digits("+7 (999) 123-45-67"))
	assert.Equal(t, "12345678901", dto.Digits("123-456-789 01"))
	assert.Equal(t, "", dto.Digits("sin dígitos"))
}
