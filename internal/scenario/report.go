package scenario

import (
	"fmt"
	"math"

	"github.com/theirongolddev/nestegg/internal/calc"
)

// Row is one line of the breakdown table. Share is a fraction of the final
// capital and is nil for rows that are not amounts.
type Row struct {
	Label   string
	Amount  float64
	Share   *float64
	IsYears bool
}

func share(part, total float64) *float64 {
	v := 0.0
	if total > 0 {
		v = part / total
	}
	return &v
}

// floorShare measures part against the final capital but never against less
// than 1, so tiny balances don't inflate the initial-money and contribution rows.
func floorShare(part, total float64) *float64 {
	v := part / math.Max(total, 1)
	return &v
}

// Breakdown returns the table rows describing where the final capital comes from.
func (o Outcome) Breakdown() []Row {
	p := o.Projection
	fv := p.FutureValue
	return []Row{
		{Label: "Estimated final capital", Amount: fv, Share: share(fv, fv)},
		{Label: "Total principal (invested + contributed)", Amount: p.PrincipalTotal, Share: share(p.PrincipalTotal, fv)},
		{Label: "Interest earned", Amount: p.Interest, Share: share(p.Interest, fv)},
		{Label: "Initial money", Amount: o.Scenario.Principal, Share: floorShare(o.Scenario.Principal, fv)},
		{Label: "Accumulated monthly contributions", Amount: p.ContributionsTotal, Share: floorShare(p.ContributionsTotal, fv)},
		{Label: "Years simulated", Amount: o.Years, IsYears: true},
	}
}

// GoalMessage describes the goal search result using money to format amounts.
// It returns "" when no goal was searched.
func (o Outcome) GoalMessage(money func(float64) string) string {
	if o.Goal == nil || o.Scenario.Goal == nil {
		return ""
	}
	g := o.Goal
	if g.Reached {
		return fmt.Sprintf("You will reach %s in year %d, month %d (month %d of the horizon).",
			money(*o.Scenario.Goal), g.Year, g.MonthOfYear, g.AbsoluteMonth)
	}
	return fmt.Sprintf("At the end of the horizon you would be %s short of the goal.", money(g.Shortfall))
}

// YearPoint is the balance at the end of a simulated year.
type YearPoint struct {
	Year        int     `json:"year"`
	Months      int     `json:"months"`
	Balance     float64 `json:"balance"`
	Contributed float64 `json:"contributed"`
	Interest    float64 `json:"interest"`
}

// Schedule returns one point per year of the horizon. When the horizon is not a
// whole number of years the last point falls on the final month.
func Schedule(principal, annualRatePct, monthlyContribution, years float64) []YearPoint {
	total := calc.Months(years)
	if total <= 0 {
		return nil
	}

	points := make([]YearPoint, 0, (total+11)/12)
	for m := 12; ; m += 12 {
		if m > total {
			m = total
		}
		res := calc.ProjectFutureValue(principal, annualRatePct, monthlyContribution, float64(m)/12)
		points = append(points, YearPoint{
			Year:        (m + 11) / 12,
			Months:      res.Months,
			Balance:     res.FutureValue,
			Contributed: res.PrincipalTotal,
			Interest:    res.Interest,
		})
		if m == total {
			break
		}
	}
	return points
}

// Schedule returns the yearly schedule for a valid outcome.
func (o Outcome) Schedule() []YearPoint {
	if !o.Validation.Valid {
		return nil
	}
	s := o.Scenario
	return Schedule(s.Principal, s.AnnualRatePct, s.MonthlyContribution, o.Years)
}
