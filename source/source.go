package source

// Source supplies a raw settings mapping.
type Source interface {
	Load() (map[string]any, error)
}

// Func adapts a function to the Source interface.
type Func func() (map[string]any, error)

// Load implements the Source interface.
func (f Func) Load() (map[string]any, error) {
	return f()
}

// Static returns a Source serving a fixed mapping. The mapping is returned
// as-is, not copied; callers must not mutate it after handing it over.
func Static(values map[string]any) Source {
	return Func(func() (map[string]any, error) {
		return values, nil
	})
}
