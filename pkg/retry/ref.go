package retry

// PolicyRef references the retry policy of an executor: either a policy
// value supplied directly, or the name of a method to resolve against
// the receiver passed to DoOn/WrapOn.
type PolicyRef struct {
	policy Policy
	name   string
}

// UsePolicy references a policy value directly
func UsePolicy(p Policy) PolicyRef {
	return PolicyRef{policy: p}
}

// UsePolicyFunc references an immediate policy function directly
func UsePolicyFunc(fn func(info *FailureInfo) (Decision, error)) PolicyRef {
	return PolicyRef{policy: PolicyFunc(fn)}
}

// NamedPolicy references a policy by method name. The method is looked
// up on the receiver at call time and must have one of the supported
// policy signatures.
func NamedPolicy(name string) PolicyRef {
	return PolicyRef{name: name}
}

// HookRef references the before-retry hook of an executor, directly or
// by method name. The zero HookRef means no hook.
type HookRef struct {
	hook Hook
	name string
}

// UseHook references a hook value directly
func UseHook(h Hook) HookRef {
	return HookRef{hook: h}
}

// UseHookFunc references a synchronous hook function directly
func UseHookFunc(fn func(info *FailureInfo) error) HookRef {
	return HookRef{hook: HookFunc(fn)}
}

// NamedHook references a hook by method name
func NamedHook(name string) HookRef {
	return HookRef{name: name}
}
