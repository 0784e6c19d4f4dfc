// Package goal contains savings-goal calculator use cases.
package goal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// Caller fallback policy for fields the parser reports as not found. These
// are deliberately here and not inside the parser: absence and defaulting are
// separate decisions.
const (
	// DefaultMonths is assumed when the query names no duration.
	DefaultMonths = 12
	// DefaultPurpose labels goals whose query names no purpose.
	DefaultPurpose = "tu meta financiera"
)

// DefaultTargetAmount is assumed when the query names no amount.
var DefaultTargetAmount = decimal.NewFromInt(5_000_000)

// CalculateGoalInput represents one calculator submission.
type CalculateGoalInput struct {
	// Session keys the submission ordering guarantee; concurrent sessions
	// do not supersede each other.
	Session string
	Query   string
}

// CalculateGoalOutput represents the calculator result.
type CalculateGoalOutput struct {
	Goal     *entity.SavingsGoal
	Parsed   ParsedGoalQuery
	Months   int
	Source   RecommendationSource
	Sequence uint64
}

// CalculateGoalUseCase parses a free-text savings goal, forwards it to the
// advisor, and normalizes the reply.
type CalculateGoalUseCase struct {
	advisor adapter.AdvisorService
	tracker *SubmissionTracker
	timeout time.Duration
}

// NewCalculateGoalUseCase creates a new CalculateGoalUseCase instance.
func NewCalculateGoalUseCase(advisor adapter.AdvisorService, tracker *SubmissionTracker, timeout time.Duration) *CalculateGoalUseCase {
	return &CalculateGoalUseCase{
		advisor: advisor,
		tracker: tracker,
		timeout: timeout,
	}
}

// Execute runs one calculator submission end to end.
func (uc *CalculateGoalUseCase) Execute(ctx context.Context, input CalculateGoalInput) (*CalculateGoalOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalQuery,
			"query text is required",
			domainerror.ErrEmptyGoalQuery,
		)
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeAdvisorUnavailable,
			"no advisor backend is configured",
			domainerror.ErrAdvisorUnavailable,
		)
	}

	parsed := ParseGoalQuery(query)

	targetAmount := DefaultTargetAmount
	if parsed.Amount != nil {
		targetAmount = *parsed.Amount
	}

	months := DefaultMonths
	if parsed.Months != nil {
		months = *parsed.Months
	}

	purpose := DefaultPurpose
	if parsed.Purpose != nil {
		purpose = *parsed.Purpose
	}

	session := input.Session
	if session == "" {
		session = "default"
	}

	subCtx, cancel, seq := uc.tracker.Begin(ctx, session, uc.timeout)
	defer uc.tracker.Finish(session, seq)
	defer cancel()

	raw, err := uc.advisor.RequestPlan(subCtx, query)
	if err != nil {
		if !uc.tracker.IsCurrent(session, seq) {
			return nil, supersededError()
		}
		slog.Warn("Advisor call failed",
			"advisor", uc.advisor.Name(),
			"error", err,
		)
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeAdvisorUnreachable,
			"advisor call failed",
			domainerror.ErrAdvisorUnreachable,
		)
	}

	// A slow reply for a superseded submission is discarded, not displayed.
	if !uc.tracker.IsCurrent(session, seq) {
		return nil, supersededError()
	}

	result, source := NormalizeGoalResponse(raw, purpose, targetAmount)

	return &CalculateGoalOutput{
		Goal:     result,
		Parsed:   parsed,
		Months:   months,
		Source:   source,
		Sequence: seq,
	}, nil
}

func supersededError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeSupersededSubmission,
		"a newer query was submitted for this session",
		domainerror.ErrSupersededSubmission,
	)
}
