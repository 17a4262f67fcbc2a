package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// calculationsTotal counts completed calculations, labeled by which
// phases the request carried.
var calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "biocalc_calculations_total",
	Help: "Completed life-cycle calculations by requested phases.",
}, []string{"agricultural", "industrial", "distribution"})

// phaseLabels renders the phase presence flags for the counter.
func phaseLabels(req CalculateRequest) []string {
	flag := func(present bool) string {
		if present {
			return "yes"
		}
		return "no"
	}
	return []string{
		flag(req.Agricultural != nil),
		flag(req.Industrial != nil),
		flag(req.Distribution != nil),
	}
}
