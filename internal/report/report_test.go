package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/lifecycle"
)

// TestRender verifies the summary carries the headline figures in
// Brazilian number formatting.
func TestRender(t *testing.T) {
	res := lifecycle.Aggregate(lifecycle.PhaseResults{}, "10000000", coeff.Default())

	text := Render(res)

	assert.Contains(t, text, "Intensidade de carbono")
	assert.Contains(t, text, "Geração de CBIOs")
	// 867 credits at R$ 78.07, comma decimal via the pt-BR printer.
	assert.Contains(t, text, "867")
	assert.Contains(t, text, "78,07")
	// Emission reduction of 100.0%.
	assert.Contains(t, text, "100,0%")
}

// TestRenderZeroResult stays well-formed with an all-zero aggregate.
func TestRenderZeroResult(t *testing.T) {
	res := lifecycle.Aggregate(lifecycle.PhaseResults{}, "", coeff.Default())

	text := Render(res)
	assert.Contains(t, text, "Total: 0,000000")
	assert.Contains(t, text, "CBIOs elegíveis: 0")
}
