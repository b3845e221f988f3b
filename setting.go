package varde

// Declaration describes one named setting within a Schema. Implementations
// live in this package; use the Setting, MergedMap, Nested, ImportString and
// ObjectFactory constructors to build them.
type Declaration interface {
	settingName() string
	resolve(owner *Object) (any, error)
}

type defaultKind int

const (
	// noDefault is the zero value on purpose: a bare Setting(name) is
	// required. The distinct kind keeps "no default" apart from an explicit
	// Default(nil).
	noDefault defaultKind = iota
	staticDefault
	computedDefault
)

type defaulter struct {
	kind    defaultKind
	static  any
	owned   func(*Object) any
	nullary func() any
}

// SettingOption configures a setting declaration.
type SettingOption func(*base)

// Default declares a static default value, returned when the raw mapping
// has no entry for the setting. An explicit nil is a valid default.
func Default(value any) SettingOption {
	return func(b *base) {
		b.def = defaulter{kind: staticDefault, static: value}
	}
}

// Computed declares a default computed at access time. fn must be either
// func(*Object) any, which receives the owning settings object, or
// func() any for computations that do not need it. Anything else panics.
func Computed(fn any) SettingOption {
	return func(b *base) {
		switch f := fn.(type) {
		case func(*Object) any:
			b.def = defaulter{kind: computedDefault, owned: f}
		case func() any:
			b.def = defaulter{kind: computedDefault, nullary: f}
		default:
			panic("varde: Computed requires func(*Object) any or func() any")
		}
	}
}

// Setting declares a plain setting: the raw value is returned verbatim.
// Without options the setting is required, and access fails with a
// RequiredSettingError when the raw mapping has no entry for it.
func Setting(name string, opts ...SettingOption) Declaration {
	b := &base{name: name}
	for _, apply := range opts {
		apply(b)
	}

	return b
}

type base struct {
	name string
	def  defaulter
}

func (b *base) settingName() string {
	return b.name
}

func (b *base) resolve(owner *Object) (any, error) {
	if raw, ok := owner.raw[b.name]; ok {
		return raw, nil
	}

	return b.defaultValue(owner)
}

func (b *base) defaultValue(owner *Object) (any, error) {
	switch b.def.kind {
	case staticDefault:
		return b.def.static, nil
	case computedDefault:
		if b.def.owned != nil {
			return b.def.owned(owner), nil
		}

		return b.def.nullary(), nil
	default:
		return nil, &RequiredSettingError{Paths: []string{owner.path(b.name)}}
	}
}

// emptyMapDefault returns a defaulter producing a fresh empty mapping per
// access, used by settings that are optional with mapping-shaped values.
func emptyMapDefault() defaulter {
	return defaulter{
		kind: computedDefault,
		nullary: func() any {
			return map[string]any{}
		},
	}
}
