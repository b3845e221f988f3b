package varde

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xalexb/varde/importer"
)

// Keys recognized in a factory specification mapping.
const (
	factoryKey = "FACTORY"
	paramsKey  = "PARAMS"
)

// ObjectFactory declares a setting whose raw value is a declarative factory
// specification, or an arbitrarily nested structure containing such
// specifications:
//
//	FACTORY: dotted.path.to.factory
//	PARAMS:
//	  PARAM1: value for param 1
//
// The FACTORY path must resolve to a factory function (see package doc).
// PARAMS keys are lower-cased to name the function's parameters; values may
// themselves be factory specifications and are constructed innermost-first.
// Mappings without a FACTORY key and sequences are traversed recursively,
// extending the error path by ".KEY" and "[index]" respectively; scalars
// pass through unchanged.
func ObjectFactory(name string, opts ...SettingOption) Declaration {
	b := base{name: name}
	for _, apply := range opts {
		apply(&b)
	}

	return &objectFactory{base: b}
}

type objectFactory struct {
	base
}

func (f *objectFactory) resolve(owner *Object) (any, error) {
	raw, err := f.base.resolve(owner)
	if err != nil {
		return nil, err
	}

	return processNode(owner.resolver, raw, owner.path(f.name))
}

// processNode walks the raw structure, building factory specs and copying
// mappings and sequences. prefix is the dotted error path of the node.
func processNode(resolver *importer.Resolver, node any, prefix string) (any, error) {
	switch value := node.(type) {
	case map[string]any:
		if _, isSpec := value[factoryKey]; isSpec {
			return buildFromSpec(resolver, value, prefix)
		}

		processed := make(map[string]any, len(value))

		for key, member := range value {
			built, err := processNode(resolver, member, prefix+"."+key)
			if err != nil {
				return nil, err
			}

			processed[key] = built
		}

		return processed, nil
	case []any:
		processed := make([]any, len(value))

		for i, member := range value {
			built, err := processNode(resolver, member, fmt.Sprintf("%s[%d]", prefix, i))
			if err != nil {
				return nil, err
			}

			processed[i] = built
		}

		return processed, nil
	default:
		return node, nil
	}
}

func buildFromSpec(resolver *importer.Resolver, spec map[string]any, prefix string) (any, error) {
	path, ok := spec[factoryKey].(string)
	if !ok {
		return nil, &WrongTypeError{
			Path: prefix + "." + factoryKey,
			Want: "dotted path string",
			Got:  spec[factoryKey],
		}
	}

	factory, err := resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	var params map[string]any

	if rawParams, present := spec[paramsKey]; present {
		params, ok = rawParams.(map[string]any)
		if !ok {
			return nil, &WrongTypeError{
				Path: prefix + "." + paramsKey,
				Want: "mapping",
				Got:  rawParams,
			}
		}
	}

	kwargs := make(map[string]any, len(params))

	for key, value := range params {
		built, err := processNode(resolver, value, paramPath(prefix, key))
		if err != nil {
			return nil, err
		}

		kwargs[strings.ToLower(key)] = built
	}

	return call(factory, kwargs, prefix)
}

// paramPath renders the error path for a factory parameter; names are
// upper-cased in paths for readability regardless of how the user spelled
// the key.
func paramPath(prefix, name string) string {
	return prefix + "." + paramsKey + "." + strings.ToUpper(name)
}

// sortedKeys returns the kwarg names in deterministic order, so error
// reporting does not depend on map iteration.
func sortedKeys(kwargs map[string]any) []string {
	keys := make([]string, 0, len(kwargs))
	for key := range kwargs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
