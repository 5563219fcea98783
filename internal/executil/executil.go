// internal/executil/executil.go
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// RunCMD executes the given command with inherited stdout/stderr.
func RunCMD(name string, args ...string) error {
	return runCore(context.Background(), "", false, name, args...)
}

// RunCMDWithDir executes the command in a specific directory.
func RunCMDWithDir(dir, name string, args ...string) error {
	return runCore(context.Background(), dir, false, name, args...)
}

// DryRunCMD logs the command that would be run without executing.
func DryRunCMD(name string, args ...string) error {
	return runCore(context.Background(), "", true, name, args...)
}

// RunCtx executes with a context (for timeouts/cancellation).
func RunCtx(ctx context.Context, name string, args ...string) error {
	return runCore(ctx, "", false, name, args...)
}

// RunWithTimeout bounds a single command invocation.
func RunWithTimeout(timeout time.Duration, dir, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return runCore(ctx, dir, false, name, args...)
}

// CaptureCMD runs a command and returns its trimmed stdout. Stderr is
// discarded; callers that need it should shell out via RunCMD instead.
func CaptureCMD(name string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run command: %s %s: %w", name, shellQuoteArgs(args), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// ----------------------------------------------------------------

func runCore(ctx context.Context, dir string, dry bool, name string, args ...string) error {
	fullCmd := name + " " + shellQuoteArgs(args)
	prefix := ""
	if dir != "" {
		prefix = " in " + dir
	}

	if dry {
		fmt.Printf("[DRY RUN%s] %s\n", prefix, fullCmd)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	fmt.Printf("Running%s: %s\n", prefix, fullCmd)
	if err := cmd.Run(); err != nil {
		// include exit status if available
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
				return fmt.Errorf("command failed (exit=%d): %s: %w", status.ExitStatus(), fullCmd, err)
			}
		}
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("command canceled: %s", fullCmd)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("command timed out: %s", fullCmd)
		}
		return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
	}
	return nil
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
