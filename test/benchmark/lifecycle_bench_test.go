// Package benchmark provides performance benchmarks for the life-cycle
// calculation engine.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"testing"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/lifecycle"
	"github.com/EriikGabriel/bio-calc-sub000/internal/lookup"
)

// BenchmarkComputeAgricultural measures the agricultural-phase calculator.
func BenchmarkComputeAgricultural(b *testing.B) {
	cs := coeff.Default()
	in := lifecycle.AgriculturalInput{
		BiomassType:                 "eucalipto",
		BiomassInputSpecific:        "1",
		BiomassImpactFactor:         "0,05",
		MUTAllocationPercent:        "25",
		TransportDistanceKm:         "100",
		AverageBiomassPerVehicleTon: "20",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lifecycle.ComputeAgricultural(in, cs)
	}
}

// BenchmarkComputeIndustrial measures the industrial-phase calculator.
func BenchmarkComputeIndustrial(b *testing.B) {
	cs := coeff.Default()
	in := lifecycle.IndustrialInput{
		ProcessedBiomassKgPerYear: "10.000.000",
		GridMediumVoltageKWh:      "120000",
		DieselLiters:              "5000",
		LubricantOilKg:            "300",
		WaterLiters:               "80000",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lifecycle.ComputeIndustrial(in, cs)
	}
}

// BenchmarkComputeDistribution measures the distribution-phase calculator.
func BenchmarkComputeDistribution(b *testing.B) {
	cs := coeff.Default()
	in := lifecycle.DistributionInput{
		DomesticBiomassQuantityTon:  "1000",
		DomesticTransportDistanceKm: "500",
		ExportBiomassQuantityTon:    "200",
		FactoryToPortKm:             "150",
		PortToMarketKm:              "10000",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lifecycle.ComputeDistribution(in, cs)
	}
}

// BenchmarkAggregate measures the full three-phase aggregation.
func BenchmarkAggregate(b *testing.B) {
	cs := coeff.Default()
	agri := lifecycle.ComputeAgricultural(lifecycle.AgriculturalInput{
		BiomassProductionImpact: "0,03",
	}, cs)
	ind := lifecycle.ComputeIndustrial(lifecycle.IndustrialInput{
		ProcessedBiomassKgPerYear: "10.000.000",
		DieselLiters:              "5000",
	}, cs)
	dist := lifecycle.ComputeDistribution(lifecycle.DistributionInput{
		DomesticBiomassQuantityTon:  "1000",
		DomesticTransportDistanceKm: "500",
	}, cs)
	results := lifecycle.PhaseResults{
		Agricultural: &agri,
		Industrial:   &ind,
		Distribution: &dist,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lifecycle.Aggregate(results, "10.000.000", cs)
	}
}

// BenchmarkVerticalLookup measures a lookup over a mid-sized table.
func BenchmarkVerticalLookup(b *testing.B) {
	table := make(lookup.Table, 0, 64)
	for i := 0; i < 64; i++ {
		table = append(table, []string{string(rune('a' + i%26)), "0,05", "16,5"})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Vertical(table, "z", 0, 2)
	}
}
