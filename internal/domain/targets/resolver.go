package targets

import "github.com/okian/salesboard/internal/domain/model"

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithDefaults sets the organizational defaults used when no usable override exists.
func WithDefaults(d Set) Option {
	return func(r *Resolver) {
		r.defaults = normalize(d)
	}
}

// Resolver binds Resolve to one organization's configured defaults.
type Resolver struct {
	defaults Set
}

// NewResolver creates a resolver using the built-in defaults unless overridden.
func NewResolver(opts ...Option) Resolver {
	r := Resolver{defaults: Defaults()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Defaults returns the resolver's organizational defaults.
func (r Resolver) Defaults() Set {
	return r.defaults
}

// Resolve returns the effective targets for an optional override.
func (r Resolver) Resolve(override *Set) Set {
	return Resolve(override, r.defaults)
}

// ResolveRecord returns the effective targets for an optional override record.
func (r Resolver) ResolveRecord(o *model.TargetOverride) Set {
	return Resolve(FromOverride(o), r.defaults)
}
