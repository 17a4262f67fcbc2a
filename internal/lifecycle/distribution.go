package lifecycle

import "github.com/EriikGabriel/bio-calc-sub000/internal/coeff"

// ComputeDistribution calculates the distribution-phase impact figures.
//
// Domestic and export legs are tonne-kilometer products multiplied by
// the freight emission factor. The modal split (road/rail/waterway
// percentages) is applied as a single multiplicative weight on the
// full freight factor rather than as three independently weighted
// legs; a true modal-split model would carry mode-specific per-t.km
// factors. The legacy behavior is kept deliberately; see DESIGN.md.
//
// Pure function: no I/O, no shared state.
func ComputeDistribution(in DistributionInput, cs coeff.Set) DistributionResult {
	assumptions := newAssumptions()

	domesticTon := assumptions.number(in.DomesticBiomassQuantityTon, "domesticBiomassQuantityTon", 0)
	domesticKm := assumptions.number(in.DomesticTransportDistanceKm, "domesticTransportDistanceKm", 0)
	roadPct := assumptions.number(in.DomesticRoadPercent, "domesticRoadPercent", 100)
	railPct := assumptions.number(in.DomesticRailPercent, "domesticRailPercent", 0)
	waterPct := assumptions.number(in.DomesticWaterwayPercent, "domesticWaterwayPercent", 0)

	exportTon := assumptions.number(in.ExportBiomassQuantityTon, "exportBiomassQuantityTon", 0)
	factoryToPortKm := assumptions.number(in.FactoryToPortKm, "factoryToPortKm", 0)
	portToMarketKm := assumptions.number(in.PortToMarketKm, "portToMarketKm", 0)

	modalWeight := (roadPct + railPct + waterPct) / 100

	domesticTkm := domesticTon * domesticKm
	domesticImpactYear := domesticTkm * cs.TransportImpactPerTkm * modalWeight

	exportFactoryToPortTkm := exportTon * factoryToPortKm
	exportPortToMarketTkm := exportTon * portToMarketKm
	exportImpactFactoryToPortYear := exportFactoryToPortTkm * cs.TransportImpactPerTkm
	exportImpactPortToMarketYear := exportPortToMarketTkm * cs.TransportImpactPerTkm

	return DistributionResult{
		DomesticTkm:        domesticTkm,
		DomesticImpactYear: domesticImpactYear,

		ExportFactoryToPortTkm:        exportFactoryToPortTkm,
		ExportPortToMarketTkm:         exportPortToMarketTkm,
		ExportImpactFactoryToPortYear: exportImpactFactoryToPortYear,
		ExportImpactPortToMarketYear:  exportImpactPortToMarketYear,

		TotalImpactYear: domesticImpactYear + exportImpactFactoryToPortYear + exportImpactPortToMarketYear,

		Assumptions: assumptions,
	}
}
