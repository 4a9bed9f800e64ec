package dto

import (
	"errors"
	"strings"
	"time"
)

// ErrBadName el nombre completo no tiene al menos apellido y nombre.
var ErrBadName = errors.New("se esperaba al menos apellido y nombre")

// ParseDate acepta los dos formatos de fecha que envía el frontend.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse("02.01.2006", s)
}

// SplitFullName separa "Apellido Nombre [Patronímico]" en sus partes.
func SplitFullName(fullName string) (lastName, firstName string, patronymic *string, err error) {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return "", "", nil, ErrBadName
	}
	lastName, firstName = parts[0], parts[1]
	if len(parts) > 2 {
		p := strings.Join(parts[2:], " ")
		patronymic = &p
	}
	return lastName, firstName, patronymic, nil
}

// Digits deja solo los dígitos de un string (teléfonos, SNILS, INN).
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
