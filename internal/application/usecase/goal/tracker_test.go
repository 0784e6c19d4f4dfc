package goal

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSubmissionTracker_Sequencing(t *testing.T) {
	tracker := NewSubmissionTracker()

	t.Run("first submission is current", func(t *testing.T) {
		_, cancel, seq := tracker.Begin(context.Background(), "s1", time.Minute)
		defer cancel()

		if !tracker.IsCurrent("s1", seq) {
			t.Error("expected first submission to be current")
		}
	})

	t.Run("newer submission supersedes older", func(t *testing.T) {
		ctx1, cancel1, seq1 := tracker.Begin(context.Background(), "s2", time.Minute)
		defer cancel1()

		_, cancel2, seq2 := tracker.Begin(context.Background(), "s2", time.Minute)
		defer cancel2()

		if tracker.IsCurrent("s2", seq1) {
			t.Error("expected older submission to be superseded")
		}
		if !tracker.IsCurrent("s2", seq2) {
			t.Error("expected newer submission to be current")
		}

		select {
		case <-ctx1.Done():
		default:
			t.Error("expected older submission's context to be cancelled")
		}
	})

	t.Run("sessions are independent", func(t *testing.T) {
		_, cancelA, seqA := tracker.Begin(context.Background(), "a", time.Minute)
		defer cancelA()
		_, cancelB, seqB := tracker.Begin(context.Background(), "b", time.Minute)
		defer cancelB()

		if !tracker.IsCurrent("a", seqA) {
			t.Error("session a superseded by session b")
		}
		if !tracker.IsCurrent("b", seqB) {
			t.Error("session b not current")
		}
	})

	t.Run("finish keeps the submission current", func(t *testing.T) {
		_, cancel, seq := tracker.Begin(context.Background(), "s3", time.Minute)
		defer cancel()

		tracker.Finish("s3", seq)

		if !tracker.IsCurrent("s3", seq) {
			t.Error("expected finished submission to stay current until superseded")
		}
	})

	t.Run("stale finish does not release the newer submission", func(t *testing.T) {
		_, cancel1, seq1 := tracker.Begin(context.Background(), "s4", time.Minute)
		defer cancel1()
		ctx2, cancel2, seq2 := tracker.Begin(context.Background(), "s4", time.Minute)
		defer cancel2()

		tracker.Finish("s4", seq1)

		if !tracker.IsCurrent("s4", seq2) {
			t.Error("expected newer submission to stay current")
		}
		select {
		case <-ctx2.Done():
			t.Error("stale finish must not cancel the newer submission")
		default:
		}
	})
}

func TestSubmissionTracker_ThreadSafety(t *testing.T) {
	tracker := NewSubmissionTracker()
	sessions := []string{"a", "b", "c"}

	const goroutines = 50
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()

			session := sessions[id%len(sessions)]
			for j := 0; j < iterations; j++ {
				_, cancel, seq := tracker.Begin(context.Background(), session, time.Minute)
				tracker.IsCurrent(session, seq)
				tracker.Finish(session, seq)
				cancel()
			}
		}(i)
	}

	wg.Wait()
}
