package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/model"
	"github.com/mj1618/xraise/internal/output"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/spf13/cobra"
)

// WaitResult is the output of a wait command.
type WaitResult struct {
	OK       bool          `yaml:"ok"                  json:"ok"`
	Action   string        `yaml:"action"              json:"action"`
	Elapsed  string        `yaml:"elapsed"             json:"elapsed"`
	Match    string        `yaml:"match"               json:"match"`
	Window   *model.Window `yaml:"window,omitempty"    json:"window,omitempty"`
	Raised   bool          `yaml:"raised,omitempty"    json:"raised,omitempty"`
	TimedOut bool          `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var errWaitTimeout = errors.New("timed out")

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a matching window to appear or disappear",
	Long: `Poll the window list until a window matches the query, or with --gone
until none does. With --raise the matching window is activated once found.`,
	Example: `  xraise wait --class Caprine --timeout 10 --raise
  xraise wait --name "Save As" --gone`,
	Args: cobra.NoArgs,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addQueryFlags(waitCmd)
	waitCmd.Flags().Bool("gone", false, "Invert: wait until no window matches")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
	waitCmd.Flags().Bool("raise", false, "Activate the window once it appears")
}

func runWait(cmd *cobra.Command, args []string) error {
	cond, err := conditionFromFlags(cmd, appConfig)
	if err != nil {
		return err
	}
	gone, _ := cmd.Flags().GetBool("gone")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")
	raise, _ := cmd.Flags().GetBool("raise")

	if gone && raise {
		return fmt.Errorf("--raise cannot be combined with --gone")
	}
	if intervalMs <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	provider, session, err := openSession()
	if err != nil {
		return err
	}
	defer provider.Close()

	var found platform.Window
	check := func() (bool, error) {
		windows, err := session.Windows(provider.Windows)
		if err != nil {
			return false, err
		}
		w, ok, err := session.FindFirst(windows, cond)
		if err != nil {
			return false, err
		}
		found = w
		return ok, nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := time.Duration(timeoutSec) * time.Second
	interval := time.Duration(intervalMs) * time.Millisecond

	elapsed, err := pollUntil(ctx, timeout, interval, gone, check)
	result := WaitResult{
		Action:  "wait",
		Elapsed: fmt.Sprintf("%.1fs", elapsed.Seconds()),
		Match:   describeWait(cond, gone),
	}
	if errors.Is(err, errWaitTimeout) {
		// Print the result, then return an error for non-zero exit code
		result.TimedOut = true
		_ = output.Print(result)
		return fmt.Errorf("timed out waiting for condition: %s", result.Match)
	}
	if err != nil {
		return err
	}

	result.OK = true
	if !gone {
		infos, err := session.Describe([]platform.Window{found})
		if err != nil {
			return err
		}
		result.Window = &infos[0]
		if raise {
			if err := session.Activate(provider.WindowManager, found); err != nil {
				return err
			}
			result.Raised = true
		}
	}
	return output.Print(result)
}

// pollUntil calls check every interval until it reports want (true, or false
// when gone is set), the timeout passes, or ctx is done. Errors from check are
// retried until the deadline, except connection failures which end the wait.
func pollUntil(ctx context.Context, timeout, interval time.Duration, gone bool, check func() (bool, error)) (time.Duration, error) {
	start := time.Now()
	deadline := start.Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		matched, err := check()
		switch {
		case err != nil && platform.IsConnectionError(err):
			return time.Since(start), err
		case err == nil && matched != gone:
			return time.Since(start), nil
		}

		if time.Now().After(deadline) {
			if err != nil {
				return time.Since(start), fmt.Errorf("%w (last error: %v)", errWaitTimeout, err)
			}
			return time.Since(start), errWaitTimeout
		}

		select {
		case <-ctx.Done():
			return time.Since(start), ctx.Err()
		case <-ticker.C:
		}
	}
}

// describeWait returns a human-readable description of what was waited for.
func describeWait(cond condition.Condition, gone bool) string {
	if gone {
		return cond.String() + " (gone)"
	}
	return cond.String()
}
