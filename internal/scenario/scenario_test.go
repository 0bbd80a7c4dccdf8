package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/nestegg/internal/calc"
)

func goal(v float64) *float64 { return &v }

func TestHorizon(t *testing.T) {
	testCases := []struct {
		name         string
		current      float64
		target       float64
		fallback     float64
		wantYears    float64
		wantFallback bool
	}{
		{"target after current", 30, 65, 10, 35, false},
		{"equal ages", 65, 65, 12, 12, true},
		{"target before current", 70, 65, 5, 5, true},
		{"zero fallback", 65, 65, 0, DefaultFallbackYears, true},
		{"NaN fallback", 65, 65, math.NaN(), DefaultFallbackYears, true},
		{"fractional", 30.5, 31, 10, 0.5, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			s.CurrentAge = tc.current
			s.TargetAge = tc.target
			s.FallbackYears = tc.fallback

			years, usedFallback := s.Horizon()
			assert.Equal(t, tc.wantYears, years)
			assert.Equal(t, tc.wantFallback, usedFallback)
		})
	}
}

func TestEvaluate_Defaults(t *testing.T) {
	out := Defaults().Evaluate()

	require.True(t, out.Validation.Valid)
	assert.Equal(t, 35.0, out.Years)
	assert.False(t, out.UsedFallback)
	assert.Equal(t, calc.ProjectFutureValue(10000, 7, 200, 35), out.Projection)
	assert.Nil(t, out.Goal)
}

func TestEvaluate_InvalidSkipsProjection(t *testing.T) {
	s := Defaults()
	s.AnnualRatePct = 45

	out := s.Evaluate()
	assert.False(t, out.Validation.Valid)
	assert.Contains(t, out.Validation.Errors, calc.FieldAnnualRatePct)
	assert.Zero(t, out.Projection)
	assert.Nil(t, out.Goal)
	assert.Nil(t, out.Schedule())
}

func TestEvaluate_WithGoal(t *testing.T) {
	s := Defaults()
	s.Goal = goal(50000)

	out := s.Evaluate()
	require.NotNil(t, out.Goal)
	assert.True(t, out.Goal.Reached)
	assert.Equal(t, calc.FindGoalMonth(10000, 7, 200, 50000, 35), *out.Goal)
}

func TestEvaluate_ZeroGoalIsNoGoal(t *testing.T) {
	s := Defaults()
	s.Goal = goal(0)

	out := s.Evaluate()
	assert.True(t, out.Validation.Valid)
	assert.Nil(t, out.Goal)
	assert.Empty(t, out.GoalMessage(fmtMoney))
}

func TestEvaluate_FallbackHorizon(t *testing.T) {
	s := Defaults()
	s.CurrentAge = 65
	s.TargetAge = 65
	s.FallbackYears = 8

	out := s.Evaluate()
	require.True(t, out.Validation.Valid)
	assert.True(t, out.UsedFallback)
	assert.Equal(t, 96, out.Projection.Months)
}

func TestEvaluate_FallbackYearsBounds(t *testing.T) {
	testCases := []struct {
		name     string
		fallback float64
		valid    bool
	}{
		{"blank", math.NaN(), true},
		{"zero", 0, true},
		{"upper bound", MaxFallbackYears, true},
		{"negative", -5, false},
		{"huge", 1e11, false},
		{"infinite", math.Inf(1), false},
		{"negative infinite", math.Inf(-1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			s.CurrentAge, s.TargetAge = 65, 65
			s.Goal = goal(1)
			s.FallbackYears = tc.fallback

			out := s.Evaluate()
			assert.Equal(t, tc.valid, out.Validation.Valid)
			if tc.valid {
				assert.GreaterOrEqual(t, out.Projection.Months, 0)
				return
			}
			assert.Contains(t, out.Validation.Errors, FieldFallbackYears)
			assert.Nil(t, out.Goal)
			assert.Nil(t, out.Schedule())
			assert.Zero(t, out.Projection.Months)
		})
	}
}

func TestValidate_CollectsFallbackWithFieldErrors(t *testing.T) {
	s := Defaults()
	s.AnnualRatePct = 45
	s.FallbackYears = -1

	res := s.Validate()
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, calc.FieldAnnualRatePct)
	assert.Contains(t, res.Errors, FieldFallbackYears)
}

func TestScenarioJSON_BlankFallback(t *testing.T) {
	s := Defaults()
	s.FallbackYears = math.NaN()

	data, err := json.Marshal(s.Evaluate())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fallback_years":null`)

	var back Scenario
	require.NoError(t, json.Unmarshal([]byte(`{"principal":5,"fallback_years":null}`), &back))
	assert.Equal(t, 5.0, back.Principal)
	assert.True(t, math.IsNaN(back.FallbackYears))

	require.NoError(t, json.Unmarshal([]byte(`{"principal":5,"fallback_years":8}`), &back))
	assert.Equal(t, 8.0, back.FallbackYears)
}

func fmtMoney(v float64) string { return fmt.Sprintf("%.2f", v) }

func TestGoalMessage(t *testing.T) {
	s := Defaults()
	s.Principal = 1000
	s.AnnualRatePct = 0
	s.MonthlyContribution = 100
	s.CurrentAge = 40
	s.TargetAge = 41
	s.Goal = goal(1500)

	out := s.Evaluate()
	assert.Equal(t, "You will reach 1500.00 in year 1, month 5 (month 5 of the horizon).", out.GoalMessage(fmtMoney))

	s.Goal = goal(5000)
	out = s.Evaluate()
	// 1000 + 12*100 = 2200 at the horizon
	assert.Equal(t, "At the end of the horizon you would be 2800.00 short of the goal.", out.GoalMessage(fmtMoney))
}

func TestBreakdown(t *testing.T) {
	s := Defaults()
	s.AnnualRatePct = 0
	s.CurrentAge = 30
	s.TargetAge = 40

	out := s.Evaluate()
	rows := out.Breakdown()
	require.Len(t, rows, 6)

	assert.Equal(t, 34000.0, rows[0].Amount)
	assert.InDelta(t, 1.0, *rows[0].Share, 1e-12)
	assert.Equal(t, 34000.0, rows[1].Amount)
	assert.Equal(t, 0.0, rows[2].Amount)
	assert.Equal(t, 10000.0, rows[3].Amount)
	assert.InDelta(t, 10000.0/34000, *rows[3].Share, 1e-12)
	assert.Equal(t, 24000.0, rows[4].Amount)

	assert.True(t, rows[5].IsYears)
	assert.Equal(t, 10.0, rows[5].Amount)
	assert.Nil(t, rows[5].Share)
}

func TestBreakdown_ZeroFinalCapital(t *testing.T) {
	s := Defaults()
	s.Principal = 0
	s.MonthlyContribution = 0

	rows := s.Evaluate().Breakdown()
	for _, r := range rows[:5] {
		require.NotNil(t, r.Share, r.Label)
		assert.Equal(t, 0.0, *r.Share, r.Label)
	}
}

func TestBreakdown_FinalCapitalBelowOne(t *testing.T) {
	s := Defaults()
	s.Principal = 0.5
	s.AnnualRatePct = 0
	s.MonthlyContribution = 0

	rows := s.Evaluate().Breakdown()
	assert.InDelta(t, 1.0, *rows[0].Share, 1e-12)
	assert.InDelta(t, 1.0, *rows[1].Share, 1e-12)
	// initial money and contributions are measured against at least 1
	assert.InDelta(t, 0.5, *rows[3].Share, 1e-12)
	assert.InDelta(t, 0.0, *rows[4].Share, 1e-12)
}

func TestSchedule(t *testing.T) {
	points := Schedule(10000, 7, 200, 2.5)
	require.Len(t, points, 3)

	assert.Equal(t, 1, points[0].Year)
	assert.Equal(t, 12, points[0].Months)
	assert.Equal(t, 24, points[1].Months)
	assert.Equal(t, 3, points[2].Year)
	assert.Equal(t, 30, points[2].Months)

	last := calc.ProjectFutureValue(10000, 7, 200, 2.5)
	assert.InDelta(t, last.FutureValue, points[2].Balance, 1e-9)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Balance, points[i-1].Balance)
	}
}

func TestSchedule_EmptyHorizon(t *testing.T) {
	assert.Nil(t, Schedule(1000, 5, 100, 0))
}

func TestSchedule_WholeYears(t *testing.T) {
	points := Schedule(0, 0, 100, 3)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{1200, 2400, 3600}, []float64{points[0].Balance, points[1].Balance, points[2].Balance})
}
