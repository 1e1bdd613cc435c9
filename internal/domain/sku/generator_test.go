package sku_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inventorywise/api/internal/domain/sku"
)

var testDate = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func TestGenerate_FormatoBasico(t *testing.T) {
	got := sku.Generate("Laptop", "Electronics", testDate)
	assert.Equal(t, "ELEC-lap-2026-03-15", got)
}

func TestGenerate_NombresCortos(t *testing.T) {
	// Nombre y categoría más cortos que el recorte: se usan completos.
	got := sku.Generate("TV", "AV", testDate)
	assert.Equal(t, "AV-tv-2026-03-15", got)
}

func TestGenerate_NormalizaMayusculasYEspacios(t *testing.T) {
	got := sku.Generate("  Smart Phone ", "electronics", testDate)
	assert.Equal(t, "ELEC-sma-2026-03-15", got)
}

func TestGenerate_CaracteresNoAlfanumericos(t *testing.T) {
	// El slug descarta signos; solo quedan letras y dígitos.
	got := sku.Generate("#1!", "Toys", testDate)
	assert.Equal(t, "TOYS-1-2026-03-15", got)
}

func TestGenerate_RecortaPorRunas(t *testing.T) {
	// "Ñandú" no debe romperse a mitad de una runa multibyte.
	got := sku.Generate("Ñandú", "Aves", testDate)
	assert.Equal(t, "AVES-ñan-2026-03-15", got)
}

func TestGenerate_Determinista(t *testing.T) {
	a := sku.Generate("Laptop", "Electronics", testDate)
	b := sku.Generate("Laptop", "Electronics", testDate)
	assert.Equal(t, a, b)
}
