package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xalexb/varde/importer"
)

// ErrAlreadyRegistered is returned when a module name is registered twice.
var ErrAlreadyRegistered = errors.New("module already registered")

// ErrEmptyName is returned when a module is registered under an empty name.
var ErrEmptyName = errors.New("module name must not be empty")

// Registry is a store of named modules. It implements importer.Loader.
// The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]any
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{modules: make(map[string]any)}
}

// Register adds a module under the given name.
// Returns ErrEmptyName or ErrAlreadyRegistered on misuse.
func (r *Registry) Register(name string, module any) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}

	r.modules[name] = module

	return nil
}

// MustRegister is like Register but panics on error. Intended for use from
// init functions, where a duplicate name is a programming error.
func (r *Registry) MustRegister(name string, module any) {
	err := r.Register(name, module)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Load returns the module registered under name.
// The returned error wraps importer.ErrNoSuchModule when the name is unknown,
// satisfying the importer.Loader contract.
func (r *Registry) Load(name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", importer.ErrNoSuchModule, name)
	}

	return module, nil
}

//nolint:gochecknoglobals // process-wide registry, mirroring database/sql.
var defaultRegistry = New()

// Default returns the process-wide registry used when no Loader is injected.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a module to the default registry.
func Register(name string, module any) error {
	return defaultRegistry.Register(name, module)
}

// MustRegister adds a module to the default registry, panicking on error.
func MustRegister(name string, module any) {
	defaultRegistry.MustRegister(name, module)
}
