package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/EriikGabriel/bio-calc-sub000/internal/history"
	"github.com/EriikGabriel/bio-calc-sub000/internal/lifecycle"
	"github.com/EriikGabriel/bio-calc-sub000/internal/report"
)

// CalculateRequest is the combined calculation request. Any subset of
// phases may be present; an absent phase contributes zero everywhere.
type CalculateRequest struct {
	Label        string                       `json:"label,omitempty"`
	Agricultural *lifecycle.AgriculturalInput `json:"agricultural,omitempty"`
	Industrial   *lifecycle.IndustrialInput   `json:"industrial,omitempty"`
	Distribution *lifecycle.DistributionInput `json:"distribution,omitempty"`
}

// compute runs the requested phases and aggregates them. The
// coefficient set is specialized per biomass type when a factors
// workbook is wired; every lookup miss keeps the defaults, so this
// cannot fail.
func (s *Server) compute(req CalculateRequest) lifecycle.AggregateResult {
	results := lifecycle.PhaseResults{}
	rawProcessedKg := ""

	cs := s.coefficients
	if req.Agricultural != nil && s.resolver != nil {
		cs = s.resolver.ForBiomass(req.Agricultural.BiomassType, cs)
	}

	if req.Agricultural != nil {
		r := lifecycle.ComputeAgricultural(*req.Agricultural, cs)
		results.Agricultural = &r
	}
	if req.Industrial != nil {
		r := lifecycle.ComputeIndustrial(*req.Industrial, cs)
		results.Industrial = &r
		rawProcessedKg = req.Industrial.ProcessedBiomassKgPerYear
	}
	if req.Distribution != nil {
		r := lifecycle.ComputeDistribution(*req.Distribution, cs)
		results.Distribution = &r
	}

	calculationsTotal.WithLabelValues(phaseLabels(req)...).Inc()

	return lifecycle.Aggregate(results, rawProcessedKg, cs)
}

func (s *Server) handleCalculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := s.compute(req)

	if c.Query("format") == "text" {
		c.String(http.StatusOK, report.Render(result))
		return
	}
	writeJSON(c, http.StatusOK, result)
}

func (s *Server) handleAgricultural(c *gin.Context) {
	var in lifecycle.AgriculturalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cs := s.coefficients
	if s.resolver != nil {
		cs = s.resolver.ForBiomass(in.BiomassType, cs)
	}
	writeJSON(c, http.StatusOK, lifecycle.ComputeAgricultural(in, cs))
}

func (s *Server) handleIndustrial(c *gin.Context) {
	var in lifecycle.IndustrialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, lifecycle.ComputeIndustrial(in, s.coefficients))
}

func (s *Server) handleDistribution(c *gin.Context) {
	var in lifecycle.DistributionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, lifecycle.ComputeDistribution(in, s.coefficients))
}

// optionRanges maps a dropdown kind to its column in the options
// sheet. The sheet layout is one kind per column, headers in row 1.
var optionRanges = map[string]string{
	"biomass":     "A2:A60",
	"state":       "B2:B60",
	"cultivation": "C2:C60",
	"vehicle":     "D2:D60",
}

func (s *Server) handleOptions(c *gin.Context) {
	kind := c.Param("kind")
	rng, ok := optionRanges[kind]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown option kind: " + kind})
		return
	}
	if s.source == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "options workbook not configured"})
		return
	}

	options, err := s.source.Options(s.optionsSheet, rng)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", kind).Msg("options lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "options source unreachable"})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"kind": kind, "options": options})
}

func (s *Server) handleSaveHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history persistence not configured"})
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := s.compute(req)

	inputs, err := json.Marshal(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode inputs: " + err.Error()})
		return
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode result: " + err.Error()})
		return
	}

	rec, err := s.history.Save(c.Request.Context(), req.Label, inputs, encoded)
	if err != nil {
		s.logger.Error().Err(err).Msg("save calculation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save calculation"})
		return
	}
	writeJSON(c, http.StatusCreated, rec)
}

func (s *Server) handleListHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history persistence not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := s.history.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("list calculations failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list calculations"})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"calculations": records})
}

func (s *Server) handleGetHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history persistence not configured"})
		return
	}

	rec, err := s.history.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, history.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "calculation not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("get calculation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get calculation"})
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// writeJSON marshals v with goccy/go-json and writes it as the
// response body.
func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode response: " + err.Error()})
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
