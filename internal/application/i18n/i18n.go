// Package i18n textos de cara al frontend en el idioma configurado
// (APP_LOCALE). El frontend original de la clínica es ruso; se admite
// también español e inglés.
package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.Russian, // por defecto
	language.Spanish,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Locale idioma normalizado de los textos del API.
type Locale int

const (
	RU Locale = iota
	ES
	EN
)

// Match normaliza el valor de APP_LOCALE ("ru", "es-CO", "en-US", ...).
// Valores no reconocidos caen al ruso.
func Match(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return RU
	}
	_, idx, _ := matcher.Match(tag)
	return Locale(idx)
}

var months = [3][12]string{
	RU: {"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
	ES: {"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	EN: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// MonthName nombre del mes (1-12) en el idioma dado.
func MonthName(l Locale, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return months[l][month-1]
}

var unpaid = [3]string{
	RU: "не оплачено",
	ES: "sin pagar",
	EN: "unpaid",
}

// UnpaidLabel etiqueta para visitas sin pago registrado.
func UnpaidLabel(l Locale) string {
	return unpaid[l]
}
