// Package scenario turns calculator form state into a projection: it validates
// the inputs, picks the horizon from the ages and runs the goal search.
package scenario

import (
	"encoding/json"
	"math"

	"github.com/theirongolddev/nestegg/internal/calc"
)

// DefaultFallbackYears is used when the target age is not after the current age
// and no usable fallback horizon was given.
const DefaultFallbackYears = 10

// MaxFallbackYears bounds the fallback horizon like the age fields bound the
// regular one.
const MaxFallbackYears = calc.MaxAge

// FieldFallbackYears is the validation key for Scenario.FallbackYears.
const FieldFallbackYears = "fallbackYears"

// Scenario is the calculator form state.
type Scenario struct {
	Principal           float64  `json:"principal" toml:"principal"`
	CurrentAge          float64  `json:"current_age" toml:"current_age"`
	AnnualRatePct       float64  `json:"annual_rate_pct" toml:"annual_rate_pct"`
	MonthlyContribution float64  `json:"monthly_contribution" toml:"monthly_contribution"`
	TargetAge           float64  `json:"target_age" toml:"target_age"`
	Goal                *float64 `json:"goal,omitempty" toml:"goal,omitempty"`
	FallbackYears       float64  `json:"fallback_years" toml:"fallback_years"`
}

// Defaults returns the starting form values.
func Defaults() Scenario {
	return Scenario{
		Principal:           10000,
		CurrentAge:          30,
		AnnualRatePct:       7,
		MonthlyContribution: 200,
		TargetAge:           65,
		FallbackYears:       DefaultFallbackYears,
	}
}

// MarshalJSON writes a blank (NaN) fallback horizon as null.
func (s Scenario) MarshalJSON() ([]byte, error) {
	type plain Scenario
	aux := struct {
		plain
		FallbackYears *float64 `json:"fallback_years"`
	}{plain: plain(s)}
	if !math.IsNaN(s.FallbackYears) {
		fy := s.FallbackYears
		aux.FallbackYears = &fy
	}
	return json.Marshal(aux)
}

// UnmarshalJSON reads a null or missing fallback horizon as blank (NaN).
func (s *Scenario) UnmarshalJSON(data []byte) error {
	type plain Scenario
	aux := struct {
		*plain
		FallbackYears *float64 `json:"fallback_years"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.FallbackYears = math.NaN()
	if aux.FallbackYears != nil {
		s.FallbackYears = *aux.FallbackYears
	}
	return nil
}

// Fields converts the scenario to validation input.
func (s Scenario) Fields() calc.Fields {
	return calc.Fields{
		Principal:           s.Principal,
		CurrentAge:          s.CurrentAge,
		AnnualRatePct:       s.AnnualRatePct,
		MonthlyContribution: s.MonthlyContribution,
		TargetAge:           s.TargetAge,
		Goal:                s.Goal,
	}
}

// HasGoal reports whether a positive goal is set.
func (s Scenario) HasGoal() bool {
	return s.Goal != nil && *s.Goal > 0
}

// Validate checks the calculator fields plus the fallback horizon. A fallback of
// 0 or NaN is valid and means DefaultFallbackYears.
func (s Scenario) Validate() calc.ValidationResult {
	res := calc.Validate(s.Fields())
	fy := s.FallbackYears
	if !math.IsNaN(fy) && (fy < 0 || fy > MaxFallbackYears) {
		res.Errors[FieldFallbackYears] = "Years to simulate must be between 0 and 120."
		res.Valid = false
	}
	return res
}

// Horizon returns the number of years to simulate. When the target age is not
// after the current age the fallback horizon is used instead.
func (s Scenario) Horizon() (years float64, usedFallback bool) {
	diff := s.TargetAge - s.CurrentAge
	if diff > 0 {
		return diff, false
	}
	fallback := s.FallbackYears
	if math.IsNaN(fallback) || fallback == 0 {
		fallback = DefaultFallbackYears
	}
	return fallback, true
}

// Outcome is the result of evaluating a scenario. Projection, Years and Goal are
// only meaningful when Validation.Valid is true.
type Outcome struct {
	Scenario     Scenario               `json:"scenario"`
	Validation   calc.ValidationResult  `json:"validation"`
	Years        float64                `json:"years,omitempty"`
	UsedFallback bool                   `json:"used_fallback,omitempty"`
	Projection   calc.ProjectionResult  `json:"projection"`
	Goal         *calc.GoalSearchResult `json:"goal,omitempty"`
}

// Evaluate validates the scenario and, when valid, projects it.
func (s Scenario) Evaluate() Outcome {
	out := Outcome{
		Scenario:   s,
		Validation: s.Validate(),
	}
	if !out.Validation.Valid {
		return out
	}

	out.Years, out.UsedFallback = s.Horizon()
	out.Projection = calc.ProjectFutureValue(s.Principal, s.AnnualRatePct, s.MonthlyContribution, out.Years)

	if s.HasGoal() {
		g := calc.FindGoalMonth(s.Principal, s.AnnualRatePct, s.MonthlyContribution, *s.Goal, out.Years)
		out.Goal = &g
	}

	return out
}
