package goal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// stubAdvisor is a controllable AdvisorService for tests.
type stubAdvisor struct {
	mu        sync.Mutex
	available bool
	reply     map[string]any
	err       error
	block     chan struct{}
	prompts   []string
}

func (s *stubAdvisor) Name() string { return "stub" }

func (s *stubAdvisor) IsAvailable() bool { return s.available }

func (s *stubAdvisor) RequestPlan(ctx context.Context, prompt string) (map[string]any, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func TestCalculateGoal_EmptyQuery(t *testing.T) {
	uc := NewCalculateGoalUseCase(&stubAdvisor{available: true}, NewSubmissionTracker(), time.Minute)

	_, err := uc.Execute(context.Background(), CalculateGoalInput{Query: "   "})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != domainerror.ErrCodeEmptyGoalQuery {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyGoalQuery, goalErr.Code)
	}
}

func TestCalculateGoal_NoAdvisor(t *testing.T) {
	uc := NewCalculateGoalUseCase(nil, NewSubmissionTracker(), time.Minute)

	_, err := uc.Execute(context.Background(), CalculateGoalInput{Query: "ahorrar algo"})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != domainerror.ErrCodeAdvisorUnavailable {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeAdvisorUnavailable, goalErr.Code)
	}
}

func TestCalculateGoal_AdvisorError(t *testing.T) {
	advisor := &stubAdvisor{available: true, err: errors.New("connection refused")}
	uc := NewCalculateGoalUseCase(advisor, NewSubmissionTracker(), time.Minute)

	_, err := uc.Execute(context.Background(), CalculateGoalInput{Query: "ahorrar $100.000"})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != domainerror.ErrCodeAdvisorUnreachable {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeAdvisorUnreachable, goalErr.Code)
	}
}

func TestCalculateGoal_DefaultsApplied(t *testing.T) {
	advisor := &stubAdvisor{available: true, reply: map[string]any{}}
	uc := NewCalculateGoalUseCase(advisor, NewSubmissionTracker(), time.Minute)

	output, err := uc.Execute(context.Background(), CalculateGoalInput{Query: "quiero ahorrar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Goal.TargetAmount.Equal(DefaultTargetAmount) {
		t.Errorf("expected default target %s, got %s", DefaultTargetAmount, output.Goal.TargetAmount)
	}
	if output.Months != DefaultMonths {
		t.Errorf("expected default months %d, got %d", DefaultMonths, output.Months)
	}
	if output.Goal.Name != DefaultPurpose {
		t.Errorf("expected default purpose %q, got %q", DefaultPurpose, output.Goal.Name)
	}
	if output.Source != SourceFallback {
		t.Errorf("expected fallback source, got %s", output.Source)
	}
}

func TestCalculateGoal_ParsedValuesWin(t *testing.T) {
	advisor := &stubAdvisor{available: true, reply: map[string]any{}}
	uc := NewCalculateGoalUseCase(advisor, NewSubmissionTracker(), time.Minute)

	output, err := uc.Execute(context.Background(), CalculateGoalInput{
		Query: "Quiero ahorrar $5.000.000 para un viaje en 10 meses",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Goal.TargetAmount.Equal(decimal.NewFromInt(5_000_000)) {
		t.Errorf("expected target 5000000, got %s", output.Goal.TargetAmount)
	}
	if output.Months != 10 {
		t.Errorf("expected 10 months, got %d", output.Months)
	}
}

func TestCalculateGoal_SupersededSubmission(t *testing.T) {
	block := make(chan struct{})
	advisor := &stubAdvisor{available: true, reply: map[string]any{}, block: block}
	tracker := NewSubmissionTracker()
	uc := NewCalculateGoalUseCase(advisor, tracker, time.Minute)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), CalculateGoalInput{
			Session: "s",
			Query:   "primera consulta de ahorro",
		})
		firstDone <- err
	}()

	// Wait for the first submission to reach the advisor.
	waitFor(t, func() bool {
		advisor.mu.Lock()
		defer advisor.mu.Unlock()
		return len(advisor.prompts) == 1
	})

	// The second submission for the same session unblocks immediately.
	advisor.mu.Lock()
	advisor.block = nil
	advisor.mu.Unlock()

	output, err := uc.Execute(context.Background(), CalculateGoalInput{
		Session: "s",
		Query:   "segunda consulta de ahorro",
	})
	if err != nil {
		t.Fatalf("newest submission must succeed, got %v", err)
	}
	if output == nil {
		t.Fatal("expected output for newest submission")
	}

	// The first submission's context was cancelled; it must come back as
	// superseded, never as a displayed result.
	err = <-firstDone
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError for stale submission, got %v", err)
	}
	if goalErr.Code != domainerror.ErrCodeSupersededSubmission {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSupersededSubmission, goalErr.Code)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
