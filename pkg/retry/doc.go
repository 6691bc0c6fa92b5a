// Package retry provides a generic retry execution engine: it invokes a
// fallible operation until it succeeds, the policy abandons, or a policy
// or hook malfunction terminates the call.
//
// Key features:
//
// 1. Pluggable policies:
//   - PolicyFunc: decision immediately available
//   - DeferredPolicyFunc: decision delivered through a channel
//   - NamedPolicy: method resolved on a receiver at call time
//
// 2. Failure episodes:
//   - FailureInfo snapshots carry the failure count, the last error and
//     the time of the first failure
//   - snapshots are immutable; one is derived per failure
//
// 3. Before-retry hooks:
//   - invoked between a failure and the next attempt
//   - synchronous (HookFunc), deferred (DeferredHookFunc) or named
//   - hook failures terminate the call, they are never swallowed
//
// 4. Retry executor:
//   - supports synchronous and asynchronous execution
//   - context cancellation support at every suspension point
//   - injectable clock for deterministic tests
//   - statistics and Prometheus metrics collection
//
// Basic usage example:
//
//	policy := retry.UsePolicyFunc(func(info *retry.FailureInfo) (retry.Decision, error) {
//		if info.Fails() > 3 {
//			return retry.Abandon(), nil
//		}
//		return retry.RetryAfter(time.Duration(info.Fails()) * 100 * time.Millisecond), nil
//	})
//
//	executor := retry.NewExecutor(policy)
//
//	result, err := retry.Do(executor, ctx, func(ctx context.Context) (string, error) {
//		return fetchSomething(ctx)
//	})
//
// Named policy example:
//
//	type client struct{ ... }
//
//	func (c *client) RetryPolicy(info *retry.FailureInfo) (retry.Decision, error) { ... }
//
//	executor := retry.NewExecutor(retry.NamedPolicy("RetryPolicy"))
//	result, err := retry.DoOn(executor, ctx, c, c.fetch)
//
// Error handling:
//
// The final error of a call identifies the root cause: an exhausted
// retry returns the last operation error unchanged, so callers can
// match on it directly. Malfunctions of caller-supplied logic surface
// as types.PolicyError and types.HookError, and unresolvable named
// references as types.ConfigError, all reported to the warning sink
// before being returned.
//
// The engine deliberately implements no backoff algorithms, circuit
// breaking or rate limiting; policies own the delay computation.
package retry
