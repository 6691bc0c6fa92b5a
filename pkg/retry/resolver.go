package retry

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jzx17/goretry/pkg/types"
)

// MethodResolver turns a receiver and a method name into a bound policy
// or hook. It is an injected capability so that callers can replace the
// reflection-based default with their own dispatch mechanism.
type MethodResolver interface {
	ResolvePolicy(receiver any, name string) (Policy, error)
	ResolveHook(receiver any, name string) (Hook, error)
}

// ReflectResolver resolves method names with the reflect package. A
// resolved method is bound to the receiver it was looked up on.
type ReflectResolver struct{}

// ResolvePolicy implements MethodResolver
func (ReflectResolver) ResolvePolicy(receiver any, name string) (Policy, error) {
	m, err := boundMethod(receiver, types.RolePolicy, name)
	if err != nil {
		return nil, err
	}

	switch fn := m.(type) {
	case func(info *FailureInfo) (Decision, error):
		return PolicyFunc(fn), nil
	case func(ctx context.Context, info *FailureInfo) <-chan PolicyResult:
		return DeferredPolicyFunc(fn), nil
	}

	return nil, types.NewConfigError(types.RolePolicy, name,
		fmt.Sprintf("method has unsupported signature %T", m))
}

// ResolveHook implements MethodResolver
func (ReflectResolver) ResolveHook(receiver any, name string) (Hook, error) {
	m, err := boundMethod(receiver, types.RoleHook, name)
	if err != nil {
		return nil, err
	}

	switch fn := m.(type) {
	case func(info *FailureInfo) error:
		return HookFunc(fn), nil
	case func(ctx context.Context, info *FailureInfo) <-chan error:
		return DeferredHookFunc(fn), nil
	}

	return nil, types.NewConfigError(types.RoleHook, name,
		fmt.Sprintf("method has unsupported signature %T", m))
}

// boundMethod looks name up in the method set of receiver and returns
// the bound method value.
func boundMethod(receiver any, role, name string) (any, error) {
	if receiver == nil {
		return nil, types.NewConfigError(role, name,
			"no receiver available; pass one with DoOn or WrapOn")
	}

	v := reflect.ValueOf(receiver)
	// a typed nil pointer would resolve but crash when invoked
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, types.NewConfigError(role, name, "receiver is a nil pointer")
	}

	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, types.NewConfigError(role, name,
			fmt.Sprintf("type %T has no such method", receiver))
	}

	return m.Interface(), nil
}
