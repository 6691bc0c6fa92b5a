// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Role names used in resolution and diagnostic messages.
const (
	RolePolicy = "retry_policy"
	RoleHook   = "before_retry"
)

// PolicyError reports that the retry policy itself failed while being
// evaluated. It is never retried and is distinct from the error returned
// by the operation under retry.
type PolicyError struct {
	// Fails is the failure count of the episode being evaluated
	Fails int

	// Cause is the error returned (or panic recovered) from the policy
	Cause error
}

// Error implements the error interface
func (e *PolicyError) Error() string {
	return fmt.Sprintf("retry policy failed on failure %d: %v", e.Fails, e.Cause)
}

// Unwrap returns the underlying error
func (e *PolicyError) Unwrap() error {
	return e.Cause
}

// NewPolicyError creates a new policy malfunction error
func NewPolicyError(fails int, cause error) *PolicyError {
	return &PolicyError{Fails: fails, Cause: cause}
}

// HookError reports that the before-retry hook failed. Like PolicyError
// it is fatal to the retry loop.
type HookError struct {
	// Fails is the failure count of the episode the hook was invoked for
	Fails int

	// Cause is the error returned (or panic recovered) from the hook
	Cause error
}

// Error implements the error interface
func (e *HookError) Error() string {
	return fmt.Sprintf("before-retry hook failed on failure %d: %v", e.Fails, e.Cause)
}

// Unwrap returns the underlying error
func (e *HookError) Unwrap() error {
	return e.Cause
}

// NewHookError creates a new hook malfunction error
func NewHookError(fails int, cause error) *HookError {
	return &HookError{Fails: fails, Cause: cause}
}

// ConfigError reports that a named policy or hook could not be resolved
// into a callable. It is returned before any attempt is made.
type ConfigError struct {
	// Role is the role of the unresolved reference, RolePolicy or RoleHook
	Role string

	// Name is the method name that failed to resolve
	Name string

	// Reason describes why resolution failed
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot resolve %s %q: %s", e.Role, e.Name, e.Reason)
}

// NewConfigError creates a new configuration error
func NewConfigError(role, name, reason string) *ConfigError {
	return &ConfigError{Role: role, Name: name, Reason: reason}
}

// IsPolicyError checks whether err is (or wraps) a policy malfunction
func IsPolicyError(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}

// IsHookError checks whether err is (or wraps) a hook malfunction
func IsHookError(err error) bool {
	var he *HookError
	return errors.As(err, &he)
}

// IsConfigError checks whether err is (or wraps) a configuration error
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
