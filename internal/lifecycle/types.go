// Package lifecycle implements the life-cycle carbon intensity
// calculation engine for solid biofuels: one pure calculator per
// production phase (agricultural, industrial, distribution) plus the
// aggregator that combines phase results into a single carbon
// intensity figure, fossil-baseline comparisons, and CBIO credit
// eligibility.
//
// All calculators are pure functions of their input record and an
// explicit coefficient set. Malformed numeric fields degrade to
// documented defaults, never to errors; every number in a result is
// finite.
package lifecycle

import (
	"github.com/EriikGabriel/bio-calc-sub000/internal/numfmt"
)

// Assumptions records which coefficient defaults were actually applied
// in place of missing or unparseable user input, keyed by field name.
type Assumptions struct {
	AppliedDefaults map[string]float64 `json:"appliedDefaults"`
}

func newAssumptions() Assumptions {
	return Assumptions{AppliedDefaults: make(map[string]float64)}
}

// number parses a locale-formatted decimal field, recording the
// default in the assumptions block when the field is absent or
// malformed. Each field is parsed exactly once per computation.
func (a *Assumptions) number(raw, name string, def float64) float64 {
	if v, ok := numfmt.Parse(raw); ok {
		return v
	}
	a.AppliedDefaults[name] = def
	return def
}

// AgriculturalInput is the flat form record for the agricultural
// phase. Numeric fields are locale decimal strings; selector fields
// are enum strings echoed through for display.
type AgriculturalInput struct {
	BiomassType       string `json:"biomassType"`
	State             string `json:"state"`
	CultivationSystem string `json:"cultivationSystem"`

	BiomassInputSpecific string `json:"biomassInputSpecific"` // kg biomass per MJ, default 1
	BiomassImpactFactor  string `json:"biomassImpactFactor"`  // kg CO2e/kg, default from coefficients
	CalorificValue       string `json:"calorificValue"`       // MJ/kg, default from coefficients
	CornStarchImpact     string `json:"cornStarchImpact"`     // kg CO2e/MJ, default 0

	MUTFactor            string `json:"mutFactor"`            // kg CO2e/kg, default from coefficients
	MUTAllocationPercent string `json:"mutAllocationPercent"` // %, default 0

	TransportDistanceKm         string `json:"transportDistanceKm"`         // km, default 0
	AverageBiomassPerVehicleTon string `json:"averageBiomassPerVehicleTon"` // t, default from coefficients

	// Override result fields. When present these are echoed into the
	// result and are what the aggregator actually sums; they default
	// to 0, not to the computed formula values. See AgriculturalResult.
	BiomassProductionImpact string `json:"biomassProductionImpact"`
	MUTImpact               string `json:"mutImpact"`
	BiomassTransportImpact  string `json:"biomassTransportImpact"`
}

// AgriculturalResult carries the computed agricultural-phase figures.
//
// TotalImpactPerMJ is the freshly computed formula result and is
// informational only: the aggregator consumes the three echoed
// override fields (BiomassProductionImpact, MUTImpact,
// BiomassTransportImpact), which default to 0 when the caller supplies
// no override. The legacy system behaves this way and downstream
// consumers depend on it; see DESIGN.md for the recorded decision.
type AgriculturalResult struct {
	BiomassType       string `json:"biomassType"`
	State             string `json:"state"`
	CultivationSystem string `json:"cultivationSystem"`

	BiomassImpactPerMJ   float64 `json:"biomassImpactPerMJ"`
	MUTImpactPerMJ       float64 `json:"mutImpactPerMJ"`
	TransportDemandTkm   float64 `json:"transportDemandTkm"`
	TransportImpactPerMJ float64 `json:"transportImpactPerMJ"`
	TotalImpactPerMJ     float64 `json:"totalImpactPerMJ"`

	// Echoed override values, consumed by Aggregate.
	BiomassProductionImpact float64 `json:"biomassProductionImpact"`
	MUTImpact               float64 `json:"mutImpact"`
	BiomassTransportImpact  float64 `json:"biomassTransportImpact"`

	Assumptions Assumptions `json:"assumptions"`
}

// IndustrialInput is the flat form record for the industrial phase.
type IndustrialInput struct {
	ProcessedBiomassKgPerYear string `json:"processedBiomassKgPerYear"`

	CogenBiomassKgPerYear string `json:"cogenBiomassKgPerYear"`
	CogenEmissionFactor   string `json:"cogenEmissionFactor"` // kg CO2e/kg, default 0

	GridMediumVoltageKWh  string `json:"gridMediumVoltageKWh"`
	GridHighVoltageKWh    string `json:"gridHighVoltageKWh"`
	SmallHydroKWh         string `json:"smallHydroKWh"`
	BiomassElectricityKWh string `json:"biomassElectricityKWh"`
	SolarKWh              string `json:"solarKWh"`
	ElectricityFactor     string `json:"electricityFactor"` // kg CO2e/kWh, default from coefficients

	DieselLiters           string `json:"dieselLiters"`
	NaturalGasNm3          string `json:"naturalGasNm3"`
	LPGKg                  string `json:"lpgKg"`
	GasolineLiters         string `json:"gasolineLiters"`
	EthanolAnhydrousLiters string `json:"ethanolAnhydrousLiters"`
	EthanolHydratedLiters  string `json:"ethanolHydratedLiters"`
	WoodKg                 string `json:"woodKg"`

	LubricantOilKg string `json:"lubricantOilKg"`
	SilicaSandKg   string `json:"silicaSandKg"`
	WaterLiters    string `json:"waterLiters"`
}

// IndustrialResult carries the computed industrial-phase figures.
//
// ImpactPerMJ is reused verbatim as the per-MJ figure for the three
// legacy breakdown line items (electricity, fuel, manufacturing): the
// single ratio stands in for three conceptually separate per-MJ
// values. This is a known simplification carried over from the legacy
// system, not an accident of this implementation; see DESIGN.md.
type IndustrialResult struct {
	// BiomassMJ is the annual processed biomass energy, consumed by
	// the aggregator as the distribution-phase denominator.
	BiomassMJ float64 `json:"biomassMJ"`

	ElectricityImpactYear   float64 `json:"electricityImpactYear"`
	FuelImpactYear          float64 `json:"fuelImpactYear"`
	ManufacturingImpactYear float64 `json:"manufacturingImpactYear"`
	TotalImpactYear         float64 `json:"totalImpactYear"`

	ImpactPerMJ              float64 `json:"impactPerMJ"`
	ElectricityImpactPerMJ   float64 `json:"electricityImpactPerMJ"`
	FuelImpactPerMJ          float64 `json:"fuelImpactPerMJ"`
	ManufacturingImpactPerMJ float64 `json:"manufacturingImpactPerMJ"`

	// BiomassCombustionImpactYear is the cogeneration combustion
	// impact; it is reported for display but never added to
	// TotalImpactYear.
	BiomassCombustionImpactYear float64 `json:"biomassCombustionImpactYear"`

	Assumptions Assumptions `json:"assumptions"`
}

// DistributionInput is the flat form record for the distribution phase.
type DistributionInput struct {
	DomesticBiomassQuantityTon  string `json:"domesticBiomassQuantityTon"`
	DomesticTransportDistanceKm string `json:"domesticTransportDistanceKm"`
	DomesticRoadPercent         string `json:"domesticRoadPercent"`     // default 100
	DomesticRailPercent         string `json:"domesticRailPercent"`     // default 0
	DomesticWaterwayPercent     string `json:"domesticWaterwayPercent"` // default 0

	ExportBiomassQuantityTon string `json:"exportBiomassQuantityTon"`
	FactoryToPortKm          string `json:"factoryToPortKm"`
	PortToMarketKm           string `json:"portToMarketKm"`
}

// DistributionResult carries the computed distribution-phase figures.
type DistributionResult struct {
	DomesticTkm        float64 `json:"domesticTkm"`
	DomesticImpactYear float64 `json:"domesticImpactYear"`

	ExportFactoryToPortTkm        float64 `json:"exportFactoryToPortTkm"`
	ExportPortToMarketTkm         float64 `json:"exportPortToMarketTkm"`
	ExportImpactFactoryToPortYear float64 `json:"exportImpactFactoryToPortYear"`
	ExportImpactPortToMarketYear  float64 `json:"exportImpactPortToMarketYear"`

	TotalImpactYear float64 `json:"totalImpactYear"`

	Assumptions Assumptions `json:"assumptions"`
}
