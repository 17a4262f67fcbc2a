package sheet

import (
	"github.com/rs/zerolog"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/lookup"
	"github.com/EriikGabriel/bio-calc-sub000/internal/numfmt"
)

// Column offsets within the biomass factors table: key column plus the
// per-type impact factor and calorific value.
const (
	factorKeyCol       = 0
	factorImpactCol    = 1
	factorCalorificCol = 2
)

// CoefficientResolver specializes a coefficient set per biomass type
// using vertical lookups over the workbook's factors table. Every kind
// of lookup miss (unknown type, unreachable workbook, malformed cell)
// keeps the base coefficient; resolution never fails a request.
type CoefficientResolver struct {
	source *Source
	sheet  string
	rng    string
	logger zerolog.Logger
}

// NewCoefficientResolver builds a resolver over the factors table at
// sheet!rng. A nil source yields a resolver that always returns the
// base set, which keeps the service usable without a workbook.
func NewCoefficientResolver(source *Source, sheetName, rng string, logger zerolog.Logger) *CoefficientResolver {
	return &CoefficientResolver{source: source, sheet: sheetName, rng: rng, logger: logger}
}

// ForBiomass returns base with the biomass-specific impact factor and
// calorific value applied when the factors table knows the given type.
func (r *CoefficientResolver) ForBiomass(biomassType string, base coeff.Set) coeff.Set {
	if r.source == nil || biomassType == "" {
		return base
	}

	table, err := r.source.Table(r.sheet, r.rng)
	if err != nil {
		r.logger.Warn().Err(err).Str("sheet", r.sheet).Str("range", r.rng).
			Msg("factors table unreachable, using default coefficients")
		return base
	}

	results := lookup.VerticalMultiple(table, biomassType, factorKeyCol, []int{factorImpactCol, factorCalorificCol})

	resolved := base
	if results[0].Found {
		if v, ok := numfmt.Parse(results[0].Value); ok {
			resolved.BiomassImpactFactor = v
		}
	}
	if results[1].Found {
		if v, ok := numfmt.Parse(results[1].Value); ok {
			resolved.CalorificValueMJPerKg = v
		}
	}
	return resolved
}
