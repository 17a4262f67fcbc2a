package lifecycle

import "github.com/EriikGabriel/bio-calc-sub000/internal/coeff"

// ComputeIndustrial calculates the industrial-phase impact figures.
//
// Annual impacts are accumulated per category:
//  1. Electricity = Σ source kWh × blended electricity factor
//  2. Fuels = Σ fuel quantity × per-unit CO2 factor (wood factor 0)
//  3. Manufacturing = (lubricant kg + silica kg + water L/1000) × factor
//
// The per-MJ ratio divides the annual total by the processed biomass
// energy, guarded to 0 when no biomass is processed. Cogeneration
// combustion impact is reported separately and never added to the
// total. Pure function: no I/O, no shared state.
func ComputeIndustrial(in IndustrialInput, cs coeff.Set) IndustrialResult {
	assumptions := newAssumptions()

	processedKg := assumptions.number(in.ProcessedBiomassKgPerYear, "processedBiomassKgPerYear", 0)
	cogenKg := assumptions.number(in.CogenBiomassKgPerYear, "cogenBiomassKgPerYear", 0)
	cogenFactor := assumptions.number(in.CogenEmissionFactor, "cogenEmissionFactor", 0)

	electricityKWh := assumptions.number(in.GridMediumVoltageKWh, "gridMediumVoltageKWh", 0) +
		assumptions.number(in.GridHighVoltageKWh, "gridHighVoltageKWh", 0) +
		assumptions.number(in.SmallHydroKWh, "smallHydroKWh", 0) +
		assumptions.number(in.BiomassElectricityKWh, "biomassElectricityKWh", 0) +
		assumptions.number(in.SolarKWh, "solarKWh", 0)
	electricityFactor := assumptions.number(in.ElectricityFactor, "electricityFactor", cs.ElectricityFactorPerKWh)

	fuelImpactYear := assumptions.number(in.DieselLiters, "dieselLiters", 0)*cs.DieselCO2PerLiter +
		assumptions.number(in.NaturalGasNm3, "naturalGasNm3", 0)*cs.NaturalGasCO2PerNm3 +
		assumptions.number(in.LPGKg, "lpgKg", 0)*cs.LPGCO2PerKg +
		assumptions.number(in.GasolineLiters, "gasolineLiters", 0)*cs.GasolineCO2PerLiter +
		(assumptions.number(in.EthanolAnhydrousLiters, "ethanolAnhydrousLiters", 0)+
			assumptions.number(in.EthanolHydratedLiters, "ethanolHydratedLiters", 0))*cs.EthanolCO2PerLiter +
		assumptions.number(in.WoodKg, "woodKg", 0)*cs.WoodCO2PerKg

	// Water converts from liters to kg-equivalent tons of input mass.
	manufacturingMass := assumptions.number(in.LubricantOilKg, "lubricantOilKg", 0) +
		assumptions.number(in.SilicaSandKg, "silicaSandKg", 0) +
		assumptions.number(in.WaterLiters, "waterLiters", 0)/1000

	biomassMJ := processedKg * cs.CalorificValueMJPerKg
	electricityImpactYear := electricityKWh * electricityFactor
	manufacturingImpactYear := manufacturingMass * cs.ManufacturingFactor
	totalImpactYear := electricityImpactYear + fuelImpactYear + manufacturingImpactYear

	impactPerMJ := 0.0
	if biomassMJ > 0 {
		impactPerMJ = totalImpactYear / biomassMJ
	}

	return IndustrialResult{
		BiomassMJ: biomassMJ,

		ElectricityImpactYear:   electricityImpactYear,
		FuelImpactYear:          fuelImpactYear,
		ManufacturingImpactYear: manufacturingImpactYear,
		TotalImpactYear:         totalImpactYear,

		ImpactPerMJ: impactPerMJ,
		// The single ratio stands in for all three legacy per-MJ
		// breakdown lines; see IndustrialResult.
		ElectricityImpactPerMJ:   impactPerMJ,
		FuelImpactPerMJ:          impactPerMJ,
		ManufacturingImpactPerMJ: impactPerMJ,

		BiomassCombustionImpactYear: cogenKg * cogenFactor,

		Assumptions: assumptions,
	}
}
