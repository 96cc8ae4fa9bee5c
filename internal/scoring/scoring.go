// Package scoring converts heterogeneous intake answers into a bounded,
// auditable 0-100 lead score with explainability tags. Pure functions only:
// no I/O, no model calls, safe for unlimited concurrent use.
package scoring

import (
	"math"
	"strings"

	"github.com/datavex/gateway/internal/currency"
)

// Input holds the raw intake answers. Budget and location arrive as free
// text; the numeric fields are already parsed by the intake form.
type Input struct {
	Budget          string
	Location        string
	ExperienceYears float64
	EmployeeCount   float64
}

// Result is the scoring outcome. Score is the sum of four independently
// bounded category scores, clamped to 100. Tags carries one label per
// category that reached its full weight.
type Result struct {
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

// Weights splits the 100-point scale across categories.
type Weights struct {
	Budget     int
	Location   int
	Experience int
	Employees  int
}

// Tags emitted for full-weight categories.
const (
	TagHighBudget    = "high-budget"
	TagPremiumRegion = "premium-region"
	TagExperienced   = "experienced"
	TagMidLargeTeam  = "mid-large-team"
)

// Config holds the scoring model: weights, the high-value region list, and
// the currency converter for budget normalization. All of it is data so the
// model can be tuned without touching the tier logic.
type Config struct {
	Weights          Weights
	HighValueRegions []string
	Converter        *currency.Converter
}

// DefaultConfig returns the production scoring model:
// 50% budget, 20% location, 20% experience, 10% employees.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{Budget: 50, Location: 20, Experience: 20, Employees: 10},
		HighValueRegions: []string{
			"usa", "united states", "uk", "england", "canada",
			"australia", "singapore", "uae",
		},
		Converter: currency.NewConverter(nil),
	}
}

// Scorer applies the configured model to intake answers.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer. Zero-value config fields are filled from
// DefaultConfig.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.HighValueRegions == nil {
		cfg.HighValueRegions = def.HighValueRegions
	}
	if cfg.Converter == nil {
		cfg.Converter = def.Converter
	}
	return &Scorer{cfg: cfg}
}

// Budget tiers in USD.
const (
	budgetFullTier = 30000
	budgetMidTier  = 10000
)

// Score computes the lead score and tags for the given answers.
func (s *Scorer) Score(in Input) Result {
	w := s.cfg.Weights

	budgetUSD := s.cfg.Converter.ToUSD(in.Budget)
	budgetScore := tierScore(budgetUSD, budgetFullTier, budgetMidTier, w.Budget)
	locationScore := s.locationScore(in.Location)
	experienceScore := tierScore(in.ExperienceYears, 10, 5, w.Experience)
	employeesScore := tierScore(in.EmployeeCount, 20, 5, w.Employees)

	total := budgetScore + locationScore + experienceScore + employeesScore
	if total > 100 {
		total = 100
	}

	// Tags only for categories at full weight; partial credit is silent.
	tags := []string{}
	if budgetScore == w.Budget {
		tags = append(tags, TagHighBudget)
	}
	if locationScore == w.Location {
		tags = append(tags, TagPremiumRegion)
	}
	if experienceScore == w.Experience {
		tags = append(tags, TagExperienced)
	}
	if employeesScore == w.Employees {
		tags = append(tags, TagMidLargeTeam)
	}

	return Result{Score: total, Tags: tags}
}

// tierScore maps a value onto its category weight: full weight at or above
// the full tier, 60% at the mid tier, 20% for anything positive, else 0.
// Fractions round half-up before summation.
func tierScore(value, fullTier, midTier float64, weight int) int {
	switch {
	case value >= fullTier:
		return weight
	case value >= midTier:
		return roundHalfUp(float64(weight) * 0.6)
	case value > 0:
		return roundHalfUp(float64(weight) * 0.2)
	default:
		return 0
	}
}

func (s *Scorer) locationScore(location string) int {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return 0
	}
	for _, region := range s.cfg.HighValueRegions {
		if strings.Contains(loc, region) {
			return s.cfg.Weights.Location
		}
	}
	return roundHalfUp(float64(s.cfg.Weights.Location) * 0.4)
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
