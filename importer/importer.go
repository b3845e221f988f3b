package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchModule is wrapped by Loader implementations when no module is
// registered under the requested name.
var ErrNoSuchModule = errors.New("no such module")

// ErrNoSuchAttribute is wrapped by attribute-lookup failures during path
// resolution.
var ErrNoSuchAttribute = errors.New("no such attribute")

// ErrEmptyPath is returned when an empty string is given to Resolve.
var ErrEmptyPath = errors.New("import path must not be empty")

// Loader defines an interface for loading a named module.
//
// Load must return an error wrapping ErrNoSuchModule when the name is not
// known; any other error is treated as a genuine load failure and aborts
// resolution immediately.
type Loader interface {
	Load(name string) (any, error)
}

// Resolver resolves dotted-path strings against a Loader.
type Resolver struct {
	loader Loader
}

// NewResolver creates a Resolver backed by the given Loader.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{loader: loader}
}

// Resolve splits path on dots, finds the longest prefix the Loader can load,
// and walks the remaining segments as attributes of the loaded module.
func (r *Resolver) Resolve(path string) (any, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	moduleParts := strings.Split(path, ".")

	var attributeParts []string

	var module any

	found := false

	// Keep peeling segments off the end until something loads.
	for !found && len(moduleParts) > 0 {
		candidate := strings.Join(moduleParts, ".")

		loaded, err := r.loader.Load(candidate)
		if err == nil {
			module = loaded
			found = true

			break
		}

		if !errors.Is(err, ErrNoSuchModule) {
			return nil, fmt.Errorf("loading module %q: %w", candidate, err)
		}

		last := moduleParts[len(moduleParts)-1]
		moduleParts = moduleParts[:len(moduleParts)-1]
		attributeParts = append([]string{last}, attributeParts...)
	}

	// No prefix loaded. Load the full path once more so the caller gets the
	// loader's own error for the exact name they asked for, rather than an
	// error about the shortest prefix tried.
	if !found {
		loaded, err := r.loader.Load(path)
		if err != nil {
			return nil, err
		}

		return loaded, nil
	}

	current := module
	walked := strings.Join(moduleParts, ".")

	for _, name := range attributeParts {
		next, ok := attr(current, name)
		if !ok {
			return nil, &AttributeError{Path: walked, Name: name}
		}

		current = next
		walked = walked + "." + name
	}

	return current, nil
}
