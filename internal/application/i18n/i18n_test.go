package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinident/clinica-api/internal/application/i18n"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, i18n.RU, i18n.Match("ru"))
	assert.Equal(t, i18n.ES, i18n.Match("es"))
	assert.Equal(t, i18n.ES, i18n.Match("es-CO"))
	assert.Equal(t, i18n.EN, i18n.Match("en-US"))
	// valores desconocidos o vacíos caen al ruso
	assert.Equal(t, i18n.RU, i18n.Match(""))
	assert.Equal(t, i18n.RU, i18n.Match("zz"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Январь", i18n.MonthName(i18n.RU, 1))
	assert.Equal(t, "Diciembre", i18n.MonthName(i18n.ES, 12))
	assert.Equal(t, "June", i18n.MonthName(i18n.EN, 6))
	assert.Equal(t, "", i18n.MonthName(i18n.RU, 0))
	assert.Equal(t, "", i18n.MonthName(i18n.RU, 13))
}

func TestUnpaidLabel(t *testing.T) {
	assert.Equal(t, "не оплачено", i18n.UnpaidLabel(i18n.RU))
	assert.Equal(t, "sin pagar", i18n.UnpaidLabel(i18n.ES))
	assert.Equal(t, "unpaid", i18n.UnpaidLabel(i18n.EN))
}
