package varde

// ImportString declares a setting whose raw value is a dotted path string,
// resolved through the object's module loader. Resolution errors from the
// loader (no such module, no such attribute) propagate unchanged; they
// already describe the problem accurately.
func ImportString(name string, opts ...SettingOption) Declaration {
	b := base{name: name}
	for _, apply := range opts {
		apply(&b)
	}

	return &importString{base: b}
}

type importString struct {
	base
}

func (s *importString) resolve(owner *Object) (any, error) {
	raw, err := s.base.resolve(owner)
	if err != nil {
		return nil, err
	}

	path, ok := raw.(string)
	if !ok {
		return nil, &WrongTypeError{Path: owner.path(s.name), Want: "dotted path string", Got: raw}
	}

	return owner.resolver.Resolve(path)
}
