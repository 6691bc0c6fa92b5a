package retry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

// Executor drives the retry loop: it invokes the operation, tracks the
// failure episode, applies policy decisions, runs the before-retry hook
// and performs inter-attempt delays.
//
// An Executor holds no per-call state; concurrent calls to Do on the
// same Executor are independent and each owns its own episode.
type Executor struct {
	policy    PolicyRef
	hook      HookRef
	eval      evaluator
	clock     types.Clock
	collector Collector
	stats     Stats
}

// Func is the operation type under retry. Arguments are captured by the
// closure, so every attempt runs with identical arguments.
type Func[T any] func(ctx context.Context) (T, error)

// Stats contains cumulative executor statistics
type Stats struct {
	TotalAttempts  int64         // operation invocations
	TotalSuccesses int64         // calls that returned a result
	TotalExhausted int64         // calls abandoned by the policy
	TotalAborted   int64         // calls terminated by a malfunction
	TotalDelay     time.Duration // accumulated inter-attempt delay
	mu             sync.RWMutex
}

// NewExecutor creates an executor for the given policy reference
func NewExecutor(policy PolicyRef, opts ...Option) *Executor {
	e := &Executor{
		policy: policy,
		eval: evaluator{
			resolver: ReflectResolver{},
			logger:   NewSlogLogger(slog.Default()),
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Do executes fn with retry, without a receiver for named resolution
func Do[T any](e *Executor, ctx context.Context, fn Func[T]) (T, error) {
	return DoOn(e, ctx, nil, fn)
}

// DoOn executes fn with retry. receiver is the object named policy and
// hook references are resolved against; it may be nil when both
// references are direct.
//
// The final error is the last operation error when the policy abandons,
// a ConfigError when resolution fails, a PolicyError or HookError when
// caller-supplied logic malfunctions, or the context error on
// cancellation.
func DoOn[T any](e *Executor, ctx context.Context, receiver any, fn Func[T]) (T, error) {
	var zero T

	// resolve references before the first attempt
	policy, err := e.eval.resolvePolicy(e.policy, receiver)
	if err != nil {
		return zero, err
	}
	hook, err := e.eval.resolveHook(e.hook, receiver)
	if err != nil {
		return zero, err
	}

	clock := e.clockFor(ctx)
	start := clock.Now()
	var info *FailureInfo

	for {
		// check if context is cancelled
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		e.updateStats(func(s *Stats) {
			s.TotalAttempts++
		})
		attempt := 1
		if info != nil {
			attempt = info.Fails() + 1
		}
		if e.collector != nil {
			e.collector.OnAttempt(attempt)
		}

		result, opErr := fn(ctx)

		if opErr == nil {
			e.updateStats(func(s *Stats) {
				s.TotalSuccesses++
			})
			if e.collector != nil {
				e.collector.OnSuccess(attempt, clock.Since(start))
			}
			return result, nil
		}

		// cancellation while awaiting the operation propagates without
		// consulting the policy or hook
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if info == nil {
			info = firstFailure(opErr, clock.Now())
		} else {
			info = info.next(opErr)
		}

		decision, evalErr := e.eval.evaluatePolicy(ctx, policy, info)
		if evalErr != nil {
			// cancellation while awaiting a deferred decision is not a
			// malfunction
			if !isContextError(evalErr) {
				e.abort()
			}
			return zero, evalErr
		}

		if decision.Abandon {
			e.updateStats(func(s *Stats) {
				s.TotalExhausted++
			})
			if e.collector != nil {
				e.collector.OnExhausted(info.Fails())
			}
			// surface the operation's own error, unchanged
			return zero, opErr
		}

		if hook != nil {
			if hookErr := e.eval.invokeHook(ctx, hook, info); hookErr != nil {
				if !isContextError(hookErr) {
					e.abort()
				}
				return zero, hookErr
			}
		}

		// a zero delay retries without suspending
		if decision.Delay > 0 {
			e.updateStats(func(s *Stats) {
				s.TotalDelay += decision.Delay
			})

			timer := clock.NewTimer(decision.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C():
			}
		}
	}
}

// Wrap returns fn with retry behavior attached
func Wrap[T any](e *Executor, fn Func[T]) Func[T] {
	return func(ctx context.Context) (T, error) {
		return Do(e, ctx, fn)
	}
}

// WrapOn returns fn with retry behavior attached, resolving named
// references against receiver on every call
func WrapOn[T any](e *Executor, receiver any, fn Func[T]) Func[T] {
	return func(ctx context.Context) (T, error) {
		return DoOn(e, ctx, receiver, fn)
	}
}

// clockFor returns the clock configured with WithClock, falling back to
// the clock carried by the context
func (e *Executor) clockFor(ctx context.Context) types.Clock {
	if e.clock != nil {
		return e.clock
	}
	return types.ClockFromContext(ctx)
}

func (e *Executor) abort() {
	e.updateStats(func(s *Stats) {
		s.TotalAborted++
	})
	if e.collector != nil {
		e.collector.OnAborted()
	}
}

// Stats returns a copy of the cumulative statistics
func (e *Executor) Stats() Stats {
	e.stats.mu.RLock()
	defer e.stats.mu.RUnlock()
	return Stats{
		TotalAttempts:  e.stats.TotalAttempts,
		TotalSuccesses: e.stats.TotalSuccesses,
		TotalExhausted: e.stats.TotalExhausted,
		TotalAborted:   e.stats.TotalAborted,
		TotalDelay:     e.stats.TotalDelay,
		// don't copy mutex
	}
}

// ResetStats resets statistics
func (e *Executor) ResetStats() {
	e.stats.mu.Lock()
	defer e.stats.mu.Unlock()

	e.stats.TotalAttempts = 0
	e.stats.TotalSuccesses = 0
	e.stats.TotalExhausted = 0
	e.stats.TotalAborted = 0
	e.stats.TotalDelay = 0
}

// updateStats updates statistics (thread-safe)
func (e *Executor) updateStats(fn func(*Stats)) {
	e.stats.mu.Lock()
	defer e.stats.mu.Unlock()
	fn(&e.stats)
}

// Option is a configuration option for the executor
type Option func(*Executor)

// WithHook sets the before-retry hook reference
func WithHook(hook HookRef) Option {
	return func(e *Executor) {
		e.hook = hook
	}
}

// WithClock sets the clock for time operations, taking precedence over
// a clock carried by the context
func WithClock(clock types.Clock) Option {
	return func(e *Executor) {
		e.clock = clock
	}
}

// WithLogger sets the warning sink. A nil logger silences warnings.
func WithLogger(logger Logger) Option {
	return func(e *Executor) {
		e.eval.logger = logger
	}
}

// WithResolver replaces the reflection-based method resolver
func WithResolver(resolver MethodResolver) Option {
	return func(e *Executor) {
		e.eval.resolver = resolver
	}
}

// WithCollector sets the metrics collector
func WithCollector(collector Collector) Option {
	return func(e *Executor) {
		e.collector = collector
	}
}
