// Package scm queries source control for build metadata. Every lookup is
// best effort: failures produce a fixed fallback value instead of an error.
package scm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tacogips/fwversion/internal/debug"
)

// Fallback values used when a lookup fails.
const (
	FallbackBranch   = "unknown"
	FallbackDescribe = "unknown"
	hashFallbackRune = "0"
)

// DefaultShortHashLength is the number of characters kept from a commit hash.
const DefaultShortHashLength = 7

// ErrEmptyOutput is reported when a command succeeds but prints nothing.
var ErrEmptyOutput = errors.New("command produced no output")

// Result is the outcome of a source-control lookup.
type Result struct {
	// Value is the looked-up value, or the fallback when Fallback is true.
	Value string
	// Fallback is true when Value is a substitute for a failed lookup.
	Fallback bool
	// Err is the reason the lookup failed (nil on success).
	Err error
}

// Options configures a Git accessor.
type Options struct {
	// Runner executes git. Defaults to ExecRunner.
	Runner Runner
	// Command is the git executable name or path. Defaults to "git".
	Command string
	// Dir is the working tree to query. Empty means the current directory.
	Dir string
	// ShortHashLength is the short hash length (7 or 12 are common).
	ShortHashLength int
	// Timeout bounds each git invocation. Zero means no timeout.
	Timeout time.Duration
}

// Git reads branch and commit information from a git working tree.
type Git struct {
	runner   Runner
	command  string
	dir      string
	shortLen int
	timeout  time.Duration
}

// New creates a Git accessor.
func New(opts Options) *Git {
	if opts.Runner == nil {
		opts.Runner = NewExecRunner()
	}
	if opts.Command == "" {
		opts.Command = "git"
	}
	if opts.ShortHashLength <= 0 {
		opts.ShortHashLength = DefaultShortHashLength
	}
	return &Git{
		runner:   opts.Runner,
		command:  opts.Command,
		dir:      opts.Dir,
		shortLen: opts.ShortHashLength,
		timeout:  opts.Timeout,
	}
}

// FallbackHash returns the all-zero hash of the given length.
func FallbackHash(length int) string {
	if length <= 0 {
		length = DefaultShortHashLength
	}
	return strings.Repeat(hashFallbackRune, length)
}

// Branch returns the current branch name (git rev-parse --abbrev-ref HEAD).
func (g *Git) Branch(ctx context.Context) Result {
	return g.query(ctx, FallbackBranch, "rev-parse", "--abbrev-ref", "HEAD")
}

// ShortHash returns the current commit hash truncated to the configured length.
func (g *Git) ShortHash(ctx context.Context) Result {
	res := g.query(ctx, FallbackHash(g.shortLen), "rev-parse", "HEAD")
	if !res.Fallback && len(res.Value) > g.shortLen {
		res.Value = res.Value[:g.shortLen]
	}
	return res
}

// Describe returns git describe output for the current commit.
func (g *Git) Describe(ctx context.Context) Result {
	return g.query(ctx, FallbackDescribe, "describe", "--tags", "--always", "--dirty")
}

func (g *Git) query(ctx context.Context, fallback string, args ...string) Result {
	if _, err := g.runner.LookPath(g.command); err != nil {
		debug.Debug("[scm] %s not available: %v", g.command, err)
		return Result{Value: fallback, Fallback: true, Err: fmt.Errorf("%s not found: %w", g.command, err)}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := g.runner.Run(ctx, g.dir, g.command, args...)
	if err != nil {
		debug.Debug("[scm] %s %s failed, using %q: %v", g.command, strings.Join(args, " "), fallback, err)
		return Result{Value: fallback, Fallback: true, Err: err}
	}

	value := strings.TrimSpace(string(out))
	if value == "" {
		return Result{Value: fallback, Fallback: true, Err: ErrEmptyOutput}
	}

	debug.Debug("[scm] %s %s -> %s", g.command, strings.Join(args, " "), value)
	return Result{Value: value}
}
