// Package calc holds the pure savings math: rate conversion, compound growth with
// monthly contributions, goal-month search and input validation.
//
// Every function is side-effect free and safe for concurrent use. Callers are
// expected to validate inputs first; NaN and Inf propagate through the arithmetic.
package calc

import "math"

// ProjectionInput is one scenario to project.
type ProjectionInput struct {
	Principal           float64 `json:"principal"`
	AnnualRatePct       float64 `json:"annual_rate_pct"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Years               float64 `json:"years"`
}

// ProjectionResult decomposes the balance at the end of the horizon.
// PrincipalTotal is always Principal + ContributionsTotal.
type ProjectionResult struct {
	FutureValue        float64 `json:"future_value"`
	PrincipalTotal     float64 `json:"principal_total"`
	Interest           float64 `json:"interest"`
	ContributionsTotal float64 `json:"contributions_total"`
	Months             int     `json:"months"`
}

// GoalSearchResult reports when a savings goal is first reached.
// MonthOfYear, Year and AbsoluteMonth are 0 when the goal is not reached.
type GoalSearchResult struct {
	Reached       bool    `json:"reached"`
	MonthOfYear   int     `json:"month_of_year,omitempty"`
	Year          int     `json:"year,omitempty"`
	AbsoluteMonth int     `json:"absolute_month,omitempty"`
	Shortfall     float64 `json:"shortfall"`
}

// MonthlyRate converts an annual percentage (7 for 7%) to a decimal monthly rate.
func MonthlyRate(annualRatePct float64) float64 {
	return (annualRatePct / 100) / 12
}

// Months returns the horizon in whole months, rounding to the nearest month.
func Months(years float64) int {
	return int(math.Round(years * 12))
}

// ProjectFutureValue projects compound growth of principal plus a fixed monthly
// contribution deposited at the end of each month.
func ProjectFutureValue(principal, annualRatePct, monthlyContribution, years float64) ProjectionResult {
	r := MonthlyRate(annualRatePct)
	n := Months(years)

	var fv float64
	if r > 0 {
		factor := math.Pow(1+r, float64(n))
		fv = principal*factor + monthlyContribution*((factor-1)/r)
	} else {
		fv = principal + monthlyContribution*float64(n)
	}

	contributions := monthlyContribution * float64(n)
	principalTotal := principal + contributions

	return ProjectionResult{
		FutureValue:        fv,
		PrincipalTotal:     principalTotal,
		Interest:           math.Max(fv-principalTotal, 0), // rounding can dip below zero
		ContributionsTotal: contributions,
		Months:             n,
	}
}

// Project is ProjectFutureValue over a ProjectionInput.
func Project(in ProjectionInput) ProjectionResult {
	return ProjectFutureValue(in.Principal, in.AnnualRatePct, in.MonthlyContribution, in.Years)
}

// FindGoalMonth simulates the balance month by month and returns the first month
// in which it reaches goal. A goal of zero, below zero or NaN means no goal is set.
func FindGoalMonth(principal, annualRatePct, monthlyContribution, goal, horizonYears float64) GoalSearchResult {
	if !(goal > 0) {
		return GoalSearchResult{}
	}

	r := MonthlyRate(annualRatePct)
	total := Months(horizonYears)
	balance := principal

	for m := 1; m <= total; m++ {
		if r > 0 {
			balance = balance*(1+r) + monthlyContribution
		} else {
			balance += monthlyContribution
		}

		if balance >= goal {
			return GoalSearchResult{
				Reached:       true,
				MonthOfYear:   (m-1)%12 + 1,
				Year:          (m-1)/12 + 1,
				AbsoluteMonth: m,
			}
		}
	}

	res := ProjectFutureValue(principal, annualRatePct, monthlyContribution, horizonYears)
	return GoalSearchResult{
		Shortfall: math.Max(goal-res.FutureValue, 0),
	}
}
