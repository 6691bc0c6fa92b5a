// Package retry provides the retry execution engine
package retry

import (
	"context"
	"errors"
)

// Policy decides, given the failure history of the current call, whether
// to abandon or retry and after what delay. A non-nil error marks the
// policy itself as malfunctioning and terminates the retry loop.
type Policy interface {
	Evaluate(ctx context.Context, info *FailureInfo) (Decision, error)
}

// PolicyFunc adapts a plain function whose decision is immediately
// available to the Policy interface
type PolicyFunc func(info *FailureInfo) (Decision, error)

// Evaluate implements Policy
func (f PolicyFunc) Evaluate(_ context.Context, info *FailureInfo) (Decision, error) {
	return f(info)
}

// PolicyResult is the value delivered by a deferred policy
type PolicyResult struct {
	Decision Decision
	Err      error
}

// DeferredPolicyFunc adapts a policy that reports its decision through a
// channel. Evaluate waits for the first result or context cancellation,
// so the engine's control flow is the same for immediate and deferred
// policies.
type DeferredPolicyFunc func(ctx context.Context, info *FailureInfo) <-chan PolicyResult

// Evaluate implements Policy
func (f DeferredPolicyFunc) Evaluate(ctx context.Context, info *FailureInfo) (Decision, error) {
	select {
	case res, ok := <-f(ctx, info):
		if !ok {
			return Decision{}, errors.New("deferred policy closed its channel without a result")
		}
		return res.Decision, res.Err
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}

// Hook is invoked between a failure and the next attempt, typically for
// logging, metrics or cleanup. A non-nil error marks the hook as
// malfunctioning and terminates the retry loop.
type Hook interface {
	Invoke(ctx context.Context, info *FailureInfo) error
}

// HookFunc adapts a plain synchronous function to the Hook interface
type HookFunc func(info *FailureInfo) error

// Invoke implements Hook
func (f HookFunc) Invoke(_ context.Context, info *FailureInfo) error {
	return f(info)
}

// DeferredHookFunc adapts a hook that signals completion through a
// channel. Invoke waits for the first error or a channel close, or
// context cancellation.
type DeferredHookFunc func(ctx context.Context, info *FailureInfo) <-chan error

// Invoke implements Hook
func (f DeferredHookFunc) Invoke(ctx context.Context, info *FailureInfo) error {
	select {
	case err := <-f(ctx, info):
		// a closed channel reads as nil, meaning the hook completed
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
