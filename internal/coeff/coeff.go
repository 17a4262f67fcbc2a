// Package coeff defines the default emission and energy coefficients
// used by the life-cycle calculators whenever a phase-specific override
// is not supplied. The Set is immutable once built and is passed
// explicitly into every calculator call; nothing here is request state.
package coeff

const (
	// DefaultBiomassImpactFactor is the biomass production impact in
	// kg CO2e per kg of biomass, applied when the user does not supply
	// a biomass-specific factor.
	// Placeholder pending domain-expert review.
	DefaultBiomassImpactFactor = 0.05

	// DefaultCalorificValueMJPerKg is the lower heating value assumed
	// for pellet/briquette biomass in MJ per kg.
	DefaultCalorificValueMJPerKg = 16.5

	// DefaultMUTFactorPerKg is the land-use-change (MUT) impact factor
	// in kg CO2e per kg of biomass.
	// Placeholder pending domain-expert review.
	DefaultMUTFactorPerKg = 0.02

	// DefaultAverageLoadTon is the average biomass load per transport
	// vehicle in metric tons.
	DefaultAverageLoadTon = 20.0

	// TransportImpactPerTkm is the road freight emission factor in
	// kg CO2e per tonne-kilometer, shared by the agricultural and
	// distribution phases.
	TransportImpactPerTkm = 0.08

	// DefaultElectricityFactorPerKWh is the blended grid electricity
	// impact in kg CO2e per kWh used by the industrial phase when no
	// per-source override is given.
	DefaultElectricityFactorPerKWh = 0.06

	// ManufacturingInputFactor is the linear impact factor applied to
	// the combined mass of manufacturing inputs (lubricant oil, silica
	// sand, process water) in kg CO2e per kg.
	// Placeholder pending domain-expert review.
	ManufacturingInputFactor = 0.5

	// FossilReferenceIntensity is the fossil-fuel baseline carbon
	// intensity in kg CO2e per MJ against which efficiency and
	// emission-reduction figures are derived.
	FossilReferenceIntensity = 0.0867

	// CBIOMarketValue is the reference market price of one CBIO
	// (Crédito de Descarbonização) in BRL.
	CBIOMarketValue = 78.07
)

// Per-unit CO2 factors for the industrial phase's annual fuel
// consumption lines. Wood is zero as a biogenic-emissions placeholder.
const (
	DieselCO2PerLiter   = 2.68 // kg CO2e per liter
	NaturalGasCO2PerNm3 = 2.00 // kg CO2e per Nm³
	LPGCO2PerKg         = 3.00 // kg CO2e per kg
	GasolineCO2PerLiter = 2.31 // kg CO2e per liter
	EthanolCO2PerLiter  = 1.52 // kg CO2e per liter, anhydrous + hydrated
	WoodCO2PerKg        = 0.00 // biogenic placeholder
)

// Set carries every default coefficient consumed by the phase
// calculators and the aggregator. Values mirror the constants above;
// a Set loaded from an overrides file may replace any of them, which
// keeps the calculators deterministic under test with alternate tables.
type Set struct {
	BiomassImpactFactor     float64 `yaml:"biomass_impact_factor"`
	CalorificValueMJPerKg   float64 `yaml:"calorific_value_mj_per_kg"`
	MUTFactorPerKg          float64 `yaml:"mut_factor_per_kg"`
	AverageLoadTon          float64 `yaml:"average_load_ton"`
	TransportImpactPerTkm   float64 `yaml:"transport_impact_per_tkm"`
	ElectricityFactorPerKWh float64 `yaml:"electricity_factor_per_kwh"`
	ManufacturingFactor     float64 `yaml:"manufacturing_factor"`

	DieselCO2PerLiter   float64 `yaml:"diesel_co2_per_liter"`
	NaturalGasCO2PerNm3 float64 `yaml:"natural_gas_co2_per_nm3"`
	LPGCO2PerKg         float64 `yaml:"lpg_co2_per_kg"`
	GasolineCO2PerLiter float64 `yaml:"gasoline_co2_per_liter"`
	EthanolCO2PerLiter  float64 `yaml:"ethanol_co2_per_liter"`
	WoodCO2PerKg        float64 `yaml:"wood_co2_per_kg"`

	FossilReference float64 `yaml:"fossil_reference_intensity"`
	CBIOMarketValue float64 `yaml:"cbio_market_value"`
}

// Default returns the process-wide default coefficient set.
func Default() Set {
	return Set{
		BiomassImpactFactor:     DefaultBiomassImpactFactor,
		CalorificValueMJPerKg:   DefaultCalorificValueMJPerKg,
		MUTFactorPerKg:          DefaultMUTFactorPerKg,
		AverageLoadTon:          DefaultAverageLoadTon,
		TransportImpactPerTkm:   TransportImpactPerTkm,
		ElectricityFactorPerKWh: DefaultElectricityFactorPerKWh,
		ManufacturingFactor:     ManufacturingInputFactor,

		DieselCO2PerLiter:   DieselCO2PerLiter,
		NaturalGasCO2PerNm3: NaturalGasCO2PerNm3,
		LPGCO2PerKg:         LPGCO2PerKg,
		GasolineCO2PerLiter: GasolineCO2PerLiter,
		EthanolCO2PerLiter:  EthanolCO2PerLiter,
		WoodCO2PerKg:        WoodCO2PerKg,

		FossilReference: FossilReferenceIntensity,
		CBIOMarketValue: CBIOMarketValue,
	}
}
