// Package dfs defines the options and errors of the bounded route
// enumerator: cancellation, a hop cap and a result cap.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Defaults applied by DefaultOptions.
const (
	// DefaultMaxDepth bounds the number of hops a route may take.
	DefaultMaxDepth = 20

	// DefaultMaxPaths is how many routes AllPaths returns.
	DefaultMaxPaths = 5
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures AllPaths via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when AllPaths is invoked.
type Option func(*Options)

// Options holds the parameters of a single enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth is the largest number of hops a route may take. A branch that
	// would go deeper is abandoned. 0 admits only the single-node route.
	MaxDepth int

	// MaxPaths truncates the sorted result. 0 disables truncation.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - MaxDepth = DefaultMaxDepth (20 hops)
//   - MaxPaths = DefaultMaxPaths (5 routes)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: DefaultMaxDepth,
		MaxPaths: DefaultMaxPaths,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps route length in hops.
//
//	d >= 0: routes of at most d hops
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths sets how many routes to keep after sorting.
//
//	n > 0:  keep the n shortest by node count
//	n == 0: keep every route found
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
