// Package report renders an aggregate calculation as a plain-text
// summary in Brazilian Portuguese, suitable for the text response mode
// and for pasting into reports.
package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/EriikGabriel/bio-calc-sub000/internal/lifecycle"
)

// printer renders numbers with Brazilian conventions (comma decimal
// separator, dot thousands grouping).
var printer = message.NewPrinter(language.BrazilianPortuguese)

// Render produces the text summary for an aggregate result.
func Render(res lifecycle.AggregateResult) string {
	var b strings.Builder

	b.WriteString("Resultado da análise de ciclo de vida\n")
	b.WriteString("=====================================\n\n")

	ci := res.CarbonIntensity
	b.WriteString("Intensidade de carbono (kg CO2eq/MJ)\n")
	writeLine(&b, "  Fase agrícola", ci.Agricultural, res.Percentages.Agricultural)
	writeLine(&b, "  Fase industrial", ci.Industrial, res.Percentages.Industrial)
	writeLine(&b, "  Distribuição", ci.Distribution, res.Percentages.Distribution)
	writeLine(&b, "  Uso", ci.Use, res.Percentages.Use)
	printer.Fprintf(&b, "  Total: %.6f\n\n", ci.Total)

	printer.Fprintf(&b, "Nota de eficiência energética: %.6f kg CO2eq/MJ\n", res.EnergyEfficiencyNote)
	printer.Fprintf(&b, "Redução de emissões frente ao fóssil: %.1f%%\n\n", res.EmissionReduction*100)

	b.WriteString("Geração de CBIOs\n")
	printer.Fprintf(&b, "  Volume elegível: %.2f t\n", res.CBIO.EligibleProductionVolumeTon)
	printer.Fprintf(&b, "  CBIOs elegíveis: %d\n", res.CBIO.EligibleCBIOs)
	printer.Fprintf(&b, "  Valor de mercado unitário: R$ %.2f\n", res.CBIO.MarketValuePerCBIO)
	printer.Fprintf(&b, "  Receita aproximada: R$ %.2f\n", res.CBIO.ApproximateRevenue)

	return b.String()
}

func writeLine(b *strings.Builder, label string, value, percent float64) {
	printer.Fprintf(b, "%s: %.6f (%.1f%%)\n", label, value, percent)
}
