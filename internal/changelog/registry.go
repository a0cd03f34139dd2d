package changelog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// Registry holds one TrackingSpec per tracked kind. Specs are registered at
// startup and read concurrently afterwards.
type Registry struct {
	mu    sync.RWMutex
	specs map[domain.TargetType]*domain.TrackingSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[domain.TargetType]*domain.TrackingSpec)}
}

// Register validates spec and stores a private copy of it. A kind can be
// registered only once.
func (r *Registry) Register(spec domain.TrackingSpec) (*domain.TrackingSpec, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("register tracking spec %q: %w", spec.Kind, err)
	}

	stored := &domain.TrackingSpec{
		Kind:      spec.Kind,
		Fields:    slices.Clone(spec.Fields),
		Relations: slices.Clone(spec.Relations),
		Store:     spec.Store,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Kind]; exists {
		return nil, fmt.Errorf("register tracking spec %q: %w", spec.Kind, domain.ErrAlreadyExists)
	}
	r.specs[spec.Kind] = stored
	return stored, nil
}

// MustRegister is Register that panics on configuration errors.
func (r *Registry) MustRegister(spec domain.TrackingSpec) *domain.TrackingSpec {
	stored, err := r.Register(spec)
	if err != nil {
		panic(err)
	}
	return stored
}

// Spec returns the spec of kind. Unknown kinds return an error wrapping both
// domain.ErrUnknownKind and domain.ErrNotFound.
func (r *Registry) Spec(kind domain.TargetType) (*domain.TrackingSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w: %w", kind, domain.ErrUnknownKind, domain.ErrNotFound)
	}
	return spec, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []domain.TargetType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.TargetType, 0, len(r.specs))
	for k := range r.specs {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
