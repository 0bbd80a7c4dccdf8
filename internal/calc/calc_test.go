package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	assert.InDelta(t, 0.01, MonthlyRate(12), 1e-4)
	assert.Equal(t, 0.0, MonthlyRate(0))
	assert.InDelta(t, 0.07/12, MonthlyRate(7), 1e-12)
}

func TestMonthlyRate_PassesThroughOutOfRange(t *testing.T) {
	assert.InDelta(t, -0.01, MonthlyRate(-12), 1e-12)
	assert.InDelta(t, 1.0, MonthlyRate(1200), 1e-12)
}

func TestMonths_RoundsToNearest(t *testing.T) {
	testCases := []struct {
		years float64
		want  int
	}{
		{0, 0},
		{1, 12},
		{10, 120},
		{0.5, 6},
		{1.5 / 12, 2},  // half month rounds up
		{0.25 / 12, 0}, // quarter month rounds down
		{2.49 / 12, 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Months(tc.years), "years=%v", tc.years)
	}
}

func TestProjectFutureValue_ZeroRate(t *testing.T) {
	res := ProjectFutureValue(10000, 0, 200, 10)

	assert.Equal(t, 10000.0+200*120, res.FutureValue)
	assert.Equal(t, 0.0, res.Interest)
	assert.Equal(t, 120, res.Months)
	assert.Equal(t, 24000.0, res.ContributionsTotal)
}

func TestProjectFutureValue_ZeroYears(t *testing.T) {
	for _, rate := range []float64{0, 5, 7, 30} {
		res := ProjectFutureValue(5000, rate, 100, 0)
		assert.Equal(t, 5000.0, res.FutureValue, "rate=%v", rate)
		assert.Equal(t, 0.0, res.Interest, "rate=%v", rate)
		assert.Equal(t, 0, res.Months, "rate=%v", rate)
		assert.Equal(t, 0.0, res.ContributionsTotal, "rate=%v", rate)
	}
}

func TestProjectFutureValue_ZeroPrincipal(t *testing.T) {
	res := ProjectFutureValue(0, 7, 500, 20)

	assert.Greater(t, res.FutureValue, 500.0*240)
	assert.InDelta(t, 500.0*240, res.PrincipalTotal, 0.01)
}

func TestProjectFutureValue_ZeroContribution(t *testing.T) {
	res := ProjectFutureValue(10000, 5, 0, 30)

	r := 5.0 / 100 / 12
	want := 10000 * math.Pow(1+r, 360)
	assert.InDelta(t, want, res.FutureValue, 0.10)
	assert.Equal(t, 0.0, res.ContributionsTotal)
	assert.Equal(t, 10000.0, res.PrincipalTotal)
}

func TestProjectFutureValue_TypicalScenario(t *testing.T) {
	res := ProjectFutureValue(10000, 7, 200, 30)

	assert.Greater(t, res.FutureValue, res.PrincipalTotal)
	assert.Greater(t, res.Interest, 0.0)
	assert.Greater(t, res.FutureValue, 200000.0)
	assert.Less(t, res.FutureValue, 600000.0)
	assert.InDelta(t, res.FutureValue, res.PrincipalTotal+res.Interest, 1e-6)
}

func TestProjectFutureValue_Invariants(t *testing.T) {
	for _, principal := range []float64{0, 1, 1000, 250000} {
		for _, rate := range []float64{0, 0.1, 3.5, 7, 30} {
			for _, pmt := range []float64{0, 50, 1234.56} {
				for _, years := range []float64{0, 0.5, 1, 17.25, 40} {
					res := ProjectFutureValue(principal, rate, pmt, years)
					assert.GreaterOrEqual(t, res.Interest, 0.0)
					assert.Equal(t, principal+res.ContributionsTotal, res.PrincipalTotal)
				}
			}
		}
	}
}

func TestProjectFutureValue_ClampsInterest(t *testing.T) {
	res := ProjectFutureValue(1000, 0, 0, 5)
	assert.GreaterOrEqual(t, res.Interest, 0.0)
	assert.Equal(t, 1000.0, res.FutureValue)
}

func TestProjectFutureValue_FractionalYearsRound(t *testing.T) {
	res := ProjectFutureValue(0, 0, 100, 1.5/12)
	assert.Equal(t, 2, res.Months)
	assert.Equal(t, 200.0, res.FutureValue)
}

func TestProject_MatchesPositional(t *testing.T) {
	in := ProjectionInput{Principal: 1500, AnnualRatePct: 4, MonthlyContribution: 75, Years: 12}
	assert.Equal(t, ProjectFutureValue(1500, 4, 75, 12), Project(in))
}

func TestFindGoalMonth_Reached(t *testing.T) {
	res := FindGoalMonth(10000, 7, 500, 50000, 30)

	require.True(t, res.Reached)
	assert.GreaterOrEqual(t, res.MonthOfYear, 1)
	assert.LessOrEqual(t, res.MonthOfYear, 12)
	assert.GreaterOrEqual(t, res.Year, 1)
	assert.Equal(t, 0.0, res.Shortfall)
	assert.Equal(t, (res.Year-1)*12+res.MonthOfYear, res.AbsoluteMonth)
}

func TestFindGoalMonth_NotReached(t *testing.T) {
	res := FindGoalMonth(1000, 5, 100, 999999999, 10)

	assert.False(t, res.Reached)
	assert.Greater(t, res.Shortfall, 0.0)
	assert.Zero(t, res.MonthOfYear)
	assert.Zero(t, res.Year)
	assert.Zero(t, res.AbsoluteMonth)

	fv := ProjectFutureValue(1000, 5, 100, 10).FutureValue
	assert.InDelta(t, 999999999-fv, res.Shortfall, 1e-6)
}

func TestFindGoalMonth_NoGoal(t *testing.T) {
	for _, goal := range []float64{0, -1, -50000, math.NaN()} {
		res := FindGoalMonth(10000, 7, 500, goal, 30)
		assert.Equal(t, GoalSearchResult{}, res, "goal=%v", goal)
	}
}

func TestFindGoalMonth_FirstCrossing(t *testing.T) {
	const (
		principal = 2500.0
		rate      = 6.0
		pmt       = 300.0
		goal      = 40000.0
	)

	res := FindGoalMonth(principal, rate, pmt, goal, 40)
	require.True(t, res.Reached)

	r := MonthlyRate(rate)
	balance := principal
	var prev float64
	for m := 1; m <= res.AbsoluteMonth; m++ {
		prev = balance
		balance = balance*(1+r) + pmt
	}
	assert.Less(t, prev, goal)
	assert.GreaterOrEqual(t, balance, goal)
}

func TestFindGoalMonth_ExactThresholdCounts(t *testing.T) {
	// Zero rate makes the balance exact: 1000 + 100*m hits 1500 at month 5.
	res := FindGoalMonth(1000, 0, 100, 1500, 1)

	require.True(t, res.Reached)
	assert.Equal(t, 5, res.AbsoluteMonth)
	assert.Equal(t, 5, res.MonthOfYear)
	assert.Equal(t, 1, res.Year)
}

func TestFindGoalMonth_MonthAndYearMapping(t *testing.T) {
	testCases := []struct {
		goal      float64
		wantMonth int
		wantYear  int
		wantAbs   int
	}{
		{100, 1, 1, 1},
		{1200, 12, 1, 12},
		{1300, 1, 2, 13},
		{2400, 12, 2, 24},
		{2500, 1, 3, 25},
	}

	for _, tc := range testCases {
		res := FindGoalMonth(0, 0, 100, tc.goal, 5)
		require.True(t, res.Reached, "goal=%v", tc.goal)
		assert.Equal(t, tc.wantMonth, res.MonthOfYear, "goal=%v", tc.goal)
		assert.Equal(t, tc.wantYear, res.Year, "goal=%v", tc.goal)
		assert.Equal(t, tc.wantAbs, res.AbsoluteMonth, "goal=%v", tc.goal)
	}
}

func TestFindGoalMonth_PrincipalAlreadyAboveGoal(t *testing.T) {
	// The check runs after the first month's update, so month 1 wins.
	res := FindGoalMonth(100000, 5, 0, 1000, 10)
	require.True(t, res.Reached)
	assert.Equal(t, 1, res.AbsoluteMonth)
}

func TestFindGoalMonth_ZeroHorizon(t *testing.T) {
	res := FindGoalMonth(100000, 5, 0, 1000, 0)
	assert.False(t, res.Reached)
	assert.Equal(t, 0.0, res.Shortfall)

	res = FindGoalMonth(500, 5, 0, 1000, 0)
	assert.False(t, res.Reached)
	assert.Equal(t, 500.0, res.Shortfall)
}
