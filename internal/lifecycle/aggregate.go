package lifecycle

import (
	"math"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/numfmt"
)

// PhaseResults groups the per-phase outputs handed to Aggregate. Any
// phase may be nil; a missing phase contributes zero to every sum.
type PhaseResults struct {
	Agricultural *AgriculturalResult `json:"agricultural,omitempty"`
	Industrial   *IndustrialResult   `json:"industrial,omitempty"`
	Distribution *DistributionResult `json:"distribution,omitempty"`
}

// CarbonIntensity is the total carbon intensity in kg CO2e/MJ broken
// down by phase contribution. Total always equals the sum of the four
// contributions.
type CarbonIntensity struct {
	Agricultural float64 `json:"agricultural"`
	Industrial   float64 `json:"industrial"`
	Distribution float64 `json:"distribution"`
	Use          float64 `json:"use"`
	Total        float64 `json:"total"`
}

// PercentageBreakdown is each phase's share of the total intensity in
// percent. All shares are 0 when the total is 0; otherwise they sum to
// 100 within floating-point epsilon.
type PercentageBreakdown struct {
	Agricultural float64 `json:"agricultural"`
	Industrial   float64 `json:"industrial"`
	Distribution float64 `json:"distribution"`
	Use          float64 `json:"use"`
}

// CBIOBlock is the carbon-credit eligibility estimate derived from the
// fossil-baseline comparison.
type CBIOBlock struct {
	FossilReferenceIntensity float64 `json:"fossilReferenceIntensity"`
	// EligibleProductionVolumeTon is clamped at zero; a negative
	// processed-biomass field reads as no eligible volume.
	EligibleProductionVolumeTon float64 `json:"eligibleProductionVolumeTon"`
	// EligibleCBIOs is truncated toward zero and never negative.
	EligibleCBIOs      int64   `json:"eligibleCBIOs"`
	MarketValuePerCBIO float64 `json:"marketValuePerCBIO"`
	ApproximateRevenue float64 `json:"approximateRevenue"`
}

// AggregateResult is the combined response for a full calculation.
type AggregateResult struct {
	CarbonIntensity CarbonIntensity     `json:"carbonIntensity"`
	Percentages     PercentageBreakdown `json:"percentages"`

	// EnergyEfficiencyNote is the margin below the fossil reference
	// intensity (reference minus total), in kg CO2e/MJ.
	EnergyEfficiencyNote float64 `json:"energyEfficiencyNote"`
	// EmissionReduction is EnergyEfficiencyNote as a fraction of the
	// fossil reference.
	EmissionReduction float64 `json:"emissionReduction"`

	CBIO CBIOBlock `json:"cbio"`

	// Phases echoes the per-phase detail blocks for traceability.
	Phases PhaseResults `json:"phases"`
}

// useContribution is the fixed "use" phase placeholder. It is isolated
// behind a function so a future formula can replace it without
// touching the sum invariant.
func useContribution() float64 {
	return 0
}

// Aggregate combines the available phase results into the total carbon
// intensity, percentage breakdown, fossil-baseline comparison, and
// CBIO credit estimate.
//
// rawProcessedBiomassKg is the unparsed processed-biomass form field;
// it backs both the eligible production volume and, when the
// industrial phase is absent, the distribution-phase energy
// denominator. Missing phases contribute zero; this never fails.
func Aggregate(results PhaseResults, rawProcessedBiomassKg string, cs coeff.Set) AggregateResult {
	// The agricultural contribution sums the echoed override fields,
	// not TotalImpactPerMJ; see AgriculturalResult.
	agriculturalTotal := 0.0
	if agri := results.Agricultural; agri != nil {
		agriculturalTotal = agri.BiomassProductionImpact + agri.MUTImpact + agri.BiomassTransportImpact
	}

	processedKg := numfmt.ParseDefault(rawProcessedBiomassKg, 0)

	industrialTotal := 0.0
	biomassMJ := processedKg * cs.CalorificValueMJPerKg
	if ind := results.Industrial; ind != nil {
		// Electricity and fuel per-MJ lines share one ratio, so this
		// doubles ImpactPerMJ before adding the manufacturing line.
		// The cogeneration contribution is a 0 placeholder.
		industrialTotal = ind.ElectricityImpactPerMJ + ind.FuelImpactPerMJ + 0 + ind.ManufacturingImpactPerMJ
		if ind.BiomassMJ > 0 {
			biomassMJ = ind.BiomassMJ
		}
	}

	distributionTotal := 0.0
	if dist := results.Distribution; dist != nil && biomassMJ > 0 {
		distributionTotal = dist.TotalImpactYear / biomassMJ
	}

	use := useContribution()
	total := agriculturalTotal + industrialTotal + distributionTotal + use

	percentages := PercentageBreakdown{}
	if total != 0 {
		percentages = PercentageBreakdown{
			Agricultural: agriculturalTotal / total * 100,
			Industrial:   industrialTotal / total * 100,
			Distribution: distributionTotal / total * 100,
			Use:          use / total * 100,
		}
	}

	efficiencyNote := cs.FossilReference - total
	emissionReduction := 0.0
	if cs.FossilReference != 0 {
		emissionReduction = efficiencyNote / cs.FossilReference
	}

	// Both factors clamp at zero: a negative processed-biomass field
	// must not produce negative credits.
	eligibleVolumeTon := math.Max(processedKg/1000, 0)
	eligibleCBIOs := int64(math.Floor(eligibleVolumeTon * math.Max(efficiencyNote, 0)))

	return AggregateResult{
		CarbonIntensity: CarbonIntensity{
			Agricultural: agriculturalTotal,
			Industrial:   industrialTotal,
			Distribution: distributionTotal,
			Use:          use,
			Total:        total,
		},
		Percentages:          percentages,
		EnergyEfficiencyNote: efficiencyNote,
		EmissionReduction:    emissionReduction,
		CBIO: CBIOBlock{
			FossilReferenceIntensity:    cs.FossilReference,
			EligibleProductionVolumeTon: eligibleVolumeTon,
			EligibleCBIOs:               eligibleCBIOs,
			MarketValuePerCBIO:          cs.CBIOMarketValue,
			ApproximateRevenue:          float64(eligibleCBIOs) * cs.CBIOMarketValue,
		},
		Phases: results,
	}
}
