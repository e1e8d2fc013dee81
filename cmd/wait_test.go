package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/platform"
)

// sequence returns a check that yields results in order, repeating the last.
func sequence(results ...bool) (func() (bool, error), *int) {
	calls := 0
	return func() (bool, error) {
		i := calls
		if i >= len(results) {
			i = len(results) - 1
		}
		calls++
		return results[i], nil
	}, &calls
}

func TestPollUntil_Appears(t *testing.T) {
	check, calls := sequence(false, false, true)
	_, err := pollUntil(context.Background(), time.Second, time.Millisecond, false, check)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *calls != 3 {
		t.Errorf("got %d checks, want 3", *calls)
	}
}

func TestPollUntil_Gone(t *testing.T) {
	check, calls := sequence(true, false)
	_, err := pollUntil(context.Background(), time.Second, time.Millisecond, true, check)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *calls != 2 {
		t.Errorf("got %d checks, want 2", *calls)
	}
}

func TestPollUntil_Timeout(t *testing.T) {
	check, _ := sequence(false)
	_, err := pollUntil(context.Background(), 5*time.Millisecond, time.Millisecond, false, check)
	if !errors.Is(err, errWaitTimeout) {
		t.Errorf("got %v, want timeout", err)
	}
}

func TestPollUntil_RetriesErrorsUntilDeadline(t *testing.T) {
	boom := errors.New("_NET_CLIENT_LIST missing")
	calls := 0
	check := func() (bool, error) {
		calls++
		if calls < 3 {
			return false, boom
		}
		return true, nil
	}
	if _, err := pollUntil(context.Background(), time.Second, time.Millisecond, false, check); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls = 0
	always := func() (bool, error) { return false, boom }
	_, err := pollUntil(context.Background(), 5*time.Millisecond, time.Millisecond, false, always)
	if !errors.Is(err, errWaitTimeout) {
		t.Errorf("got %v, want timeout", err)
	}
}

func TestPollUntil_ConnectionErrorIsFatal(t *testing.T) {
	calls := 0
	check := func() (bool, error) {
		calls++
		return false, &platform.ConnectionError{Err: errors.New("EOF")}
	}
	_, err := pollUntil(context.Background(), time.Second, time.Millisecond, false, check)
	if !platform.IsConnectionError(err) {
		t.Errorf("got %v, want connection error", err)
	}
	if calls != 1 {
		t.Errorf("got %d checks, want 1", calls)
	}
}

func TestPollUntil_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	check, _ := sequence(false)
	_, err := pollUntil(ctx, time.Minute, time.Hour, false, check)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestDescribeWait(t *testing.T) {
	cond := condition.Eq(condition.Class, "Caprine")
	if got := describeWait(cond, false); got != `class = "Caprine"` {
		t.Errorf("got %q", got)
	}
	if got := describeWait(cond, true); got != `class = "Caprine" (gone)` {
		t.Errorf("got %q", got)
	}
}

func TestWaitCommand_Flags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
	}{
		{"gone", "bool"},
		{"timeout", "int"},
		{"interval", "int"},
		{"raise", "bool"},
	}
	for _, tt := range tests {
		f := waitCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}
