package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
)

// TestComputeIndustrial verifies the industrial-phase formulas.
func TestComputeIndustrial(t *testing.T) {
	cs := coeff.Default()

	tests := []struct {
		name                 string
		input                IndustrialInput
		wantBiomassMJ        float64
		wantElectricityYear  float64
		wantFuelYear         float64
		wantManufacturing    float64
		wantTotalYear        float64
		wantImpactPerMJ      float64
		wantCombustionImpact float64
	}{
		{
			name: "zeroed inputs with processed biomass",
			input: IndustrialInput{
				ProcessedBiomassKgPerYear: "10000000",
			},
			wantBiomassMJ:   10000000 * 16.5,
			wantImpactPerMJ: 0,
		},
		{
			name: "electricity only",
			input: IndustrialInput{
				ProcessedBiomassKgPerYear: "1000",
				GridMediumVoltageKWh:      "400",
				SolarKWh:                  "600",
			},
			wantBiomassMJ: 16500,
			// (400 + 600) × 0.06
			wantElectricityYear: 60,
			wantTotalYear:       60,
			wantImpactPerMJ:     60.0 / 16500,
		},
		{
			name: "electricity factor override",
			input: IndustrialInput{
				GridHighVoltageKWh: "1000",
				ElectricityFactor:  "0,1",
			},
			wantElectricityYear: 100,
			wantTotalYear:       100,
			// no biomass processed, guarded ratio
			wantImpactPerMJ: 0,
		},
		{
			name: "fuel lines",
			input: IndustrialInput{
				DieselLiters:           "100",
				NaturalGasNm3:          "10",
				LPGKg:                  "5",
				GasolineLiters:         "2",
				EthanolAnhydrousLiters: "3",
				EthanolHydratedLiters:  "4",
				WoodKg:                 "1000",
			},
			// 100×2.68 + 10×2 + 5×3 + 2×2.31 + (3+4)×1.52 + 1000×0
			wantFuelYear:  100*2.68 + 10*2 + 5*3 + 2*2.31 + 7*1.52,
			wantTotalYear: 100*2.68 + 10*2 + 5*3 + 2*2.31 + 7*1.52,
		},
		{
			name: "manufacturing inputs with water conversion",
			input: IndustrialInput{
				LubricantOilKg: "10",
				SilicaSandKg:   "20",
				WaterLiters:    "2000",
			},
			// (10 + 20 + 2000/1000) × 0.5
			wantManufacturing: 16,
			wantTotalYear:     16,
		},
		{
			name: "cogeneration reported but not totaled",
			input: IndustrialInput{
				CogenBiomassKgPerYear: "500",
				CogenEmissionFactor:   "0,2",
			},
			wantCombustionImpact: 100,
			wantTotalYear:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeIndustrial(tt.input, cs)

			assert.InDelta(t, tt.wantBiomassMJ, got.BiomassMJ, 1e-9)
			assert.InDelta(t, tt.wantElectricityYear, got.ElectricityImpactYear, 1e-9)
			assert.InDelta(t, tt.wantFuelYear, got.FuelImpactYear, 1e-9)
			assert.InDelta(t, tt.wantManufacturing, got.ManufacturingImpactYear, 1e-9)
			assert.InDelta(t, tt.wantTotalYear, got.TotalImpactYear, 1e-9)
			assert.InDelta(t, tt.wantImpactPerMJ, got.ImpactPerMJ, 1e-12)
			assert.InDelta(t, tt.wantCombustionImpact, got.BiomassCombustionImpactYear, 1e-9)

			assert.False(t, anyNonFinite(
				got.BiomassMJ, got.ElectricityImpactYear, got.FuelImpactYear,
				got.ManufacturingImpactYear, got.TotalImpactYear, got.ImpactPerMJ,
				got.BiomassCombustionImpactYear,
			))
		})
	}
}

// TestComputeIndustrialSharedRatio verifies the single per-MJ ratio is
// reused for all three breakdown line items.
func TestComputeIndustrialSharedRatio(t *testing.T) {
	got := ComputeIndustrial(IndustrialInput{
		ProcessedBiomassKgPerYear: "1000",
		DieselLiters:              "100",
	}, coeff.Default())

	assert.Positive(t, got.ImpactPerMJ)
	assert.Equal(t, got.ImpactPerMJ, got.ElectricityImpactPerMJ)
	assert.Equal(t, got.ImpactPerMJ, got.FuelImpactPerMJ)
	assert.Equal(t, got.ImpactPerMJ, got.ManufacturingImpactPerMJ)
}

// TestComputeIndustrialDivisionGuard verifies that zero processed
// biomass forces the ratio to 0 instead of Inf/NaN.
func TestComputeIndustrialDivisionGuard(t *testing.T) {
	got := ComputeIndustrial(IndustrialInput{
		DieselLiters: "100",
	}, coeff.Default())

	assert.Positive(t, got.TotalImpactYear)
	assert.Zero(t, got.BiomassMJ)
	assert.Zero(t, got.ImpactPerMJ)
}
