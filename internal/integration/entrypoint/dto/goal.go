package dto

import (
	"github.com/finanzas-dashboard/backend/internal/application/usecase/goal"
	"github.com/finanzas-dashboard/backend/internal/domain/valueobject"
)

// CalculateGoalRequest represents the request body for the savings goal
// calculator. Session identifies the submitting client so a newer query from
// the same client supersedes an in-flight one.
type CalculateGoalRequest struct {
	Query   string `json:"query" binding:"required"`
	Session string `json:"session,omitempty"`
}

// GoalPlanResponse represents a normalized savings plan. Display fields are
// always present; ProjectedDate is empty when the advisor gave no usable
// date.
type GoalPlanResponse struct {
	Name                 string   `json:"name"`
	TargetAmount         string   `json:"target_amount"`
	TargetAmountDisplay  string   `json:"target_amount_display"`
	MonthlySaving        string   `json:"monthly_saving"`
	MonthlySavingDisplay string   `json:"monthly_saving_display"`
	Months               int      `json:"months"`
	ProjectedDate        string   `json:"projected_date,omitempty"`
	Recommendations      []string `json:"recommendations"`
	Source               string   `json:"source"`
}

// ToGoalPlanResponse converts the calculator output to its response DTO.
func ToGoalPlanResponse(output *goal.CalculateGoalOutput) GoalPlanResponse {
	plan := GoalPlanResponse{
		Name:                 output.Goal.Name,
		TargetAmount:         output.Goal.TargetAmount.String(),
		TargetAmountDisplay:  valueobject.FormatCurrency(output.Goal.TargetAmount),
		MonthlySaving:        output.Goal.MonthlySavingAmount.String(),
		MonthlySavingDisplay: valueobject.FormatCurrency(output.Goal.MonthlySavingAmount),
		Months:               output.Months,
		Recommendations:      output.Goal.Recommendations,
		Source:               string(output.Source),
	}

	if output.Goal.Deadline != nil {
		plan.ProjectedDate = valueobject.FormatDate(*output.Goal.Deadline)
	}

	return plan
}
