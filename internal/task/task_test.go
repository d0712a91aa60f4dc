package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunCallsFnAfterDelay(t *testing.T) {
	tk := Run(context.Background(), 10*time.Millisecond, func(ctx context.Context) (string, error) {
		return "sent", nil
	})
	if !tk.Pending() {
		t.Fatalf("task finished before its delay")
	}

	got, err := tk.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if got != "sent" {
		t.Fatalf("Wait() = %q, want %q", got, "sent")
	}
	if tk.Pending() {
		t.Fatalf("task still pending after Wait")
	}
}

func TestCancelBeforeDelaySkipsFn(t *testing.T) {
	called := make(chan struct{}, 1)
	tk := Run(context.Background(), time.Hour, func(ctx context.Context) (int, error) {
		called <- struct{}{}
		return 1, nil
	})
	tk.Cancel()

	_, err := tk.Wait(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() error = %v, want context.Canceled", err)
	}
	select {
	case <-called:
		t.Fatalf("fn ran after Cancel")
	default:
	}
}

func TestFnErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	tk := Run(context.Background(), 0, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	if _, err := tk.Wait(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Wait() error = %v, want %v", err, boom)
	}
}

func TestWaitHonoursCallerContext(t *testing.T) {
	tk := Run(context.Background(), time.Hour, func(ctx context.Context) (int, error) {
		return 1, nil
	})
	defer tk.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := tk.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait() error = %v, want deadline exceeded", err)
	}
	if !tk.Pending() {
		t.Fatalf("caller timeout must not cancel the task")
	}
}

func TestGroupCancelAll(t *testing.T) {
	var g Group
	a := Go(&g, context.Background(), time.Hour, func(ctx context.Context) (int, error) { return 1, nil })
	b := Go(&g, context.Background(), time.Hour, func(ctx context.Context) (int, error) { return 2, nil })

	if n := g.CancelAll(); n != 2 {
		t.Fatalf("CancelAll() = %d, want 2", n)
	}
	for _, tk := range []*Task[int]{a, b} {
		if _, err := tk.Wait(context.Background()); !errors.Is(err, context.Canceled) {
			t.Fatalf("Wait() error = %v, want context.Canceled", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for g.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if g.Len() != 0 {
		t.Fatalf("Len() = %d after tasks finished, want 0", g.Len())
	}
}
