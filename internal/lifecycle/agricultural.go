package lifecycle

import "github.com/EriikGabriel/bio-calc-sub000/internal/coeff"

// ComputeAgricultural calculates the agricultural-phase impact figures.
//
// The computation follows the legacy worksheet:
//  1. Biomass impact (kg CO2e/MJ) = specific input × impact factor
//  2. MUT impact (kg CO2e/MJ) = MUT factor × specific input × allocation %
//  3. Transport demand (t.km) = average load per vehicle × distance
//  4. Transport impact (kg CO2e/MJ) = freight factor × (specific/1000) × distance
//  5. Total = biomass + corn starch + MUT + transport
//
// The three override fields on the input are echoed through unchanged
// (defaulting to 0); the aggregator sums those echoes, not the
// computed total. Pure function: no I/O, no shared state.
func ComputeAgricultural(in AgriculturalInput, cs coeff.Set) AgriculturalResult {
	assumptions := newAssumptions()

	biomassSpecific := assumptions.number(in.BiomassInputSpecific, "biomassInputSpecific", 1)
	impactFactor := assumptions.number(in.BiomassImpactFactor, "biomassImpactFactor", cs.BiomassImpactFactor)
	cornStarch := assumptions.number(in.CornStarchImpact, "cornStarchImpact", 0)
	mutFactor := assumptions.number(in.MUTFactor, "mutFactor", cs.MUTFactorPerKg)
	mutAllocPct := assumptions.number(in.MUTAllocationPercent, "mutAllocationPercent", 0)
	distanceKm := assumptions.number(in.TransportDistanceKm, "transportDistanceKm", 0)
	avgLoadTon := assumptions.number(in.AverageBiomassPerVehicleTon, "averageBiomassPerVehicleTon", cs.AverageLoadTon)

	// Recorded as an applied assumption even though the current
	// formula does not consume it; the worksheet displays it.
	assumptions.number(in.CalorificValue, "calorificValue", cs.CalorificValueMJPerKg)

	biomassImpactPerMJ := biomassSpecific * impactFactor
	mutImpactPerMJ := mutFactor * biomassSpecific * (mutAllocPct / 100)
	transportDemandTkm := avgLoadTon * distanceKm
	transportImpactPerMJ := cs.TransportImpactPerTkm * (biomassSpecific / 1000) * distanceKm

	totalImpactPerMJ := biomassImpactPerMJ + cornStarch + mutImpactPerMJ + transportImpactPerMJ

	return AgriculturalResult{
		BiomassType:       in.BiomassType,
		State:             in.State,
		CultivationSystem: in.CultivationSystem,

		BiomassImpactPerMJ:   biomassImpactPerMJ,
		MUTImpactPerMJ:       mutImpactPerMJ,
		TransportDemandTkm:   transportDemandTkm,
		TransportImpactPerMJ: transportImpactPerMJ,
		TotalImpactPerMJ:     totalImpactPerMJ,

		BiomassProductionImpact: assumptions.number(in.BiomassProductionImpact, "biomassProductionImpact", 0),
		MUTImpact:               assumptions.number(in.MUTImpact, "mutImpact", 0),
		BiomassTransportImpact:  assumptions.number(in.BiomassTransportImpact, "biomassTransportImpact", 0),

		Assumptions: assumptions,
	}
}
