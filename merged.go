package varde

// MergedMap declares a setting that overlays the user-supplied mapping onto
// a set of declared defaults. Keys present in the raw value win; the
// defaults mapping is copied on every access and never mutated. The setting
// is always optional: with no raw value, the result is a copy of defaults.
func MergedMap(name string, defaults map[string]any) Declaration {
	return &mergedMap{
		base:     base{name: name, def: emptyMapDefault()},
		defaults: defaults,
	}
}

type mergedMap struct {
	base

	defaults map[string]any
}

func (m *mergedMap) resolve(owner *Object) (any, error) {
	raw, err := m.base.resolve(owner)
	if err != nil {
		return nil, err
	}

	overrides, ok := raw.(map[string]any)
	if !ok {
		return nil, &WrongTypeError{Path: owner.path(m.name), Want: "mapping", Got: raw}
	}

	merged := make(map[string]any, len(m.defaults)+len(overrides))

	for key, value := range m.defaults {
		merged[key] = value
	}

	for key, value := range overrides {
		merged[key] = value
	}

	return merged, nil
}
