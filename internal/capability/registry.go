// Package capability supplies pluggable services (logging, randomness,
// persistence, events) to effect execution through an explicit registry
// value instead of module-level singletons. Registries have copy-on-write
// value semantics: Register returns a new registry and never touches the
// receiver, so snapshots handed out earlier keep behaving as they did.
package capability

import "fmt"

// Well-known capability ids wired by the default registry.
const (
	CapLogger  = "logger"
	CapRandom  = "random"
	CapStorage = "storage"
	CapEvents  = "events"
)

// Factory lazily builds a capability instance. It runs at most once per
// registry value; the result is memoized.
type Factory func() any

// Registry maps capability ids to factories and memoized instances.
// Registrations are append-only per lineage: once an id is registered it
// stays visible on every descendant snapshot.
type Registry struct {
	factories map[string]Factory
	instances map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{},
		instances: map[string]any{},
	}
}

// Register returns a new registry carrying every factory and every
// already-instantiated service of the receiver, plus the new factory. The
// receiver is left unmodified.
func (r *Registry) Register(id string, factory Factory) *Registry {
	next := r.clone()
	next.factories[id] = factory
	return next
}

// Provide returns the instance for id, invoking and memoizing the factory on
// first use. An unregistered id is a configuration error, not a gameplay
// condition, and panics.
func (r *Registry) Provide(id string) any {
	if instance, ok := r.instances[id]; ok {
		return instance
	}
	factory, ok := r.factories[id]
	if !ok {
		panic(fmt.Sprintf("capability: no provider registered for %q", id))
	}
	instance := factory()
	r.instances[id] = instance
	return instance
}

// Has reports whether an instance or a factory exists for id.
func (r *Registry) Has(id string) bool {
	if _, ok := r.instances[id]; ok {
		return true
	}
	_, ok := r.factories[id]
	return ok
}

// Fork returns a snapshot copy of the current factories and cached
// instances. Subsequent registrations or instantiations on either side are
// invisible to the other.
func (r *Registry) Fork() *Registry {
	return r.clone()
}

func (r *Registry) clone() *Registry {
	next := &Registry{
		factories: make(map[string]Factory, len(r.factories)+1),
		instances: make(map[string]any, len(r.instances)),
	}
	for id, f := range r.factories {
		next.factories[id] = f
	}
	for id, inst := range r.instances {
		next.instances[id] = inst
	}
	return next
}

// Logger fetches the conventional logger capability.
func (r *Registry) Logger() *Logger {
	return r.Provide(CapLogger).(*Logger)
}

// RandomSource fetches the conventional randomness capability.
func (r *Registry) RandomSource() *Random {
	return r.Provide(CapRandom).(*Random)
}

// Storage fetches the conventional persistence capability.
func (r *Registry) Storage() Store {
	return r.Provide(CapStorage).(Store)
}

// Events fetches the conventional event-bus capability.
func (r *Registry) Events() *Bus {
	return r.Provide(CapEvents).(*Bus)
}
