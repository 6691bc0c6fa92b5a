package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jzx17/goretry/pkg/types"
)

// Logger is the warning sink for policy and hook malfunctions. It is
// observability only; the malfunction is propagated to the caller either
// way.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// slogLogger adapts a slog.Logger to the Logger interface
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger backed by the given slog.Logger
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// evaluator invokes resolved policies and hooks, normalizing their
// failures into the malfunction error types. Operation errors never pass
// through here; anything that fails inside the evaluator is a bug in
// caller-supplied logic.
type evaluator struct {
	resolver MethodResolver
	logger   Logger
}

func (ev *evaluator) resolvePolicy(ref PolicyRef, receiver any) (Policy, error) {
	if ref.name != "" {
		return ev.resolver.ResolvePolicy(receiver, ref.name)
	}
	if ref.policy == nil {
		return nil, types.NewConfigError(types.RolePolicy, "", "no policy supplied")
	}
	return ref.policy, nil
}

// resolveHook returns a nil Hook for the zero HookRef: the hook is
// optional.
func (ev *evaluator) resolveHook(ref HookRef, receiver any) (Hook, error) {
	if ref.name != "" {
		return ev.resolver.ResolveHook(receiver, ref.name)
	}
	return ref.hook, nil
}

// evaluatePolicy calls the policy with the current episode snapshot. A
// policy error or panic is reported to the warning sink and returned as
// a PolicyError; context cancellation passes through untouched.
func (ev *evaluator) evaluatePolicy(ctx context.Context, policy Policy, info *FailureInfo) (Decision, error) {
	decision, err := ev.callPolicy(ctx, policy, info)
	if err != nil {
		if isContextError(err) {
			return Decision{}, err
		}
		ev.warnf("retry policy failed on failure %d (operation error: %v): %v",
			info.Fails(), info.Err(), err)
		return Decision{}, types.NewPolicyError(info.Fails(), err)
	}

	if decision.Delay < 0 {
		decision.Delay = 0
	}
	return decision, nil
}

// invokeHook calls the before-retry hook with the current episode
// snapshot. Hook errors and panics are fatal, like policy malfunctions.
func (ev *evaluator) invokeHook(ctx context.Context, hook Hook, info *FailureInfo) error {
	if err := ev.callHook(ctx, hook, info); err != nil {
		if isContextError(err) {
			return err
		}
		ev.warnf("before-retry hook failed on failure %d (operation error: %v): %v",
			info.Fails(), info.Err(), err)
		return types.NewHookError(info.Fails(), err)
	}
	return nil
}

func (ev *evaluator) callPolicy(ctx context.Context, policy Policy, info *FailureInfo) (decision Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return policy.Evaluate(ctx, info)
}

func (ev *evaluator) callHook(ctx context.Context, hook Hook, info *FailureInfo) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return hook.Invoke(ctx, info)
}

func (ev *evaluator) warnf(format string, args ...interface{}) {
	if ev.logger != nil {
		ev.logger.Warnf(format, args...)
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
