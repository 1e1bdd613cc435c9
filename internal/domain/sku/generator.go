// Package sku genera códigos SKU para productos nuevos.
// Formato: CATE-nom-YYYY-MM-DD → primeras 4 letras de la categoría en
// mayúsculas, primeras 3 del nombre normalizadas, y la fecha de creación.
package sku

import (
	"strings"
	"time"
	"unicode"
)

// Generate construye el SKU a partir del nombre del producto y su categoría.
// La fecha asegura unicidad entre lotes de alta; la unicidad final la garantiza
// el constraint de la base de datos.
func Generate(productName, categoryName string, now time.Time) string {
	base := slug(firstRunes(productName, 3))
	prefix := strings.ToUpper(firstRunes(categoryName, 4))
	date := now.Format("2006-01-02")
	return prefix + "-" + base + "-" + date
}

// firstRunes recorta por runas, no por bytes, para nombres con tildes o eñes.
func firstRunes(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// slug normaliza a minúsculas y descarta todo lo que no sea letra o dígito,
// reemplazando espacios por guiones.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	return b.String()
}
