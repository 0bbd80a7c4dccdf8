package calc

import "math"

// Field keys used in ValidationResult.Errors.
const (
	FieldPrincipal           = "principal"
	FieldCurrentAge          = "currentAge"
	FieldAnnualRatePct       = "annualRatePct"
	FieldMonthlyContribution = "monthlyContribution"
	FieldTargetAge           = "targetAge"
	FieldGoal                = "goal"
)

// Domain bounds.
const (
	MaxAge        = 120
	MinTargetAge  = 1
	MaxAnnualRate = 30
)

// Fields are the parsed form values. Unparsable input should arrive as NaN.
// A nil Goal means no goal was entered.
type Fields struct {
	Principal           float64
	CurrentAge          float64
	AnnualRatePct       float64
	MonthlyContribution float64
	TargetAge           float64
	Goal                *float64
}

// ValidationResult maps each invalid field to a human-readable message.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Validate checks every field independently and collects all violations.
// It does not compare CurrentAge with TargetAge.
func Validate(f Fields) ValidationResult {
	errs := make(map[string]string)

	if math.IsNaN(f.Principal) || f.Principal < 0 {
		errs[FieldPrincipal] = "Current savings must be 0 or more."
	}
	if math.IsNaN(f.CurrentAge) || f.CurrentAge < 0 || f.CurrentAge > MaxAge {
		errs[FieldCurrentAge] = "Current age must be between 0 and 120."
	}
	if math.IsNaN(f.AnnualRatePct) || f.AnnualRatePct < 0 || f.AnnualRatePct > MaxAnnualRate {
		errs[FieldAnnualRatePct] = "Annual interest must be between 0% and 30%."
	}
	if math.IsNaN(f.MonthlyContribution) || f.MonthlyContribution < 0 {
		errs[FieldMonthlyContribution] = "Monthly contribution must be 0 or more."
	}
	if math.IsNaN(f.TargetAge) || f.TargetAge < MinTargetAge || f.TargetAge > MaxAge {
		errs[FieldTargetAge] = "Target age must be between 1 and 120."
	}
	if f.Goal != nil && (math.IsNaN(*f.Goal) || *f.Goal < 0) {
		errs[FieldGoal] = "Savings goal must be 0 or more."
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
