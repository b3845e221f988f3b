package varde

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// paramTag is the struct tag naming factory parameters. It is deliberately
// distinct from serialization tags so a params struct can also carry yaml
// or json tags without collision.
const paramTag = "param"

// CoercionError reports a factory parameter value that could not be coerced
// into the type the factory declares for it.
type CoercionError struct {
	From  reflect.Type
	To    reflect.Type
	Cause error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *CoercionError) Unwrap() error {
	return e.Cause
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// call invokes a factory with the given keyword arguments.
//
// Supported factory shapes: func() R, func() (R, error), func(P) R and
// func(P) (R, error), where P is a struct or pointer to struct describing
// the parameters. Unrecognized and missing-required parameters are detected
// by introspecting P before the call, so they surface as InvalidSettingError
// and RequiredSettingError rather than a generic invocation failure. An
// error returned by the factory itself propagates unchanged.
func call(factory any, kwargs map[string]any, prefix string) (any, error) {
	fn := reflect.ValueOf(factory)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s.%s (%T): %w", prefix, factoryKey, factory, ErrNotCallable)
	}

	fnType := fn.Type()

	if err := checkSignature(fnType); err != nil {
		return nil, fmt.Errorf("%s.%s: %w", prefix, factoryKey, err)
	}

	var args []reflect.Value

	if fnType.NumIn() == 1 {
		arg, err := bindParams(fnType.In(0), kwargs, prefix)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	} else if len(kwargs) > 0 {
		// The factory takes no parameters at all.
		return nil, &InvalidSettingError{Path: paramPath(prefix, sortedKeys(kwargs)[0])}
	}

	results := fn.Call(args)

	if len(results) == 2 {
		if errResult := results[1]; !errResult.IsNil() {
			return nil, errResult.Interface().(error)
		}
	}

	return results[0].Interface(), nil
}

func checkSignature(fnType reflect.Type) error {
	if fnType.IsVariadic() || fnType.NumIn() > 1 {
		return fmt.Errorf("%w: want at most one parameter struct argument", ErrNotCallable)
	}

	if fnType.NumIn() == 1 {
		paramType := fnType.In(0)
		if paramType.Kind() == reflect.Pointer {
			paramType = paramType.Elem()
		}

		if paramType.Kind() != reflect.Struct {
			return fmt.Errorf("%w: parameter argument must be a struct", ErrNotCallable)
		}
	}

	switch fnType.NumOut() {
	case 1:
		if fnType.Out(0) == errType {
			return fmt.Errorf("%w: must return a value", ErrNotCallable)
		}
	case 2:
		if fnType.Out(1) != errType {
			return fmt.Errorf("%w: second return value must be error", ErrNotCallable)
		}
	default:
		return fmt.Errorf("%w: must return (value) or (value, error)", ErrNotCallable)
	}

	return nil
}

type paramSpec struct {
	name     string
	required bool
}

// paramSpecs reads the parameter list off a params struct type. Names come
// from the param tag or the lower-cased field name; ",optional" marks a
// parameter optional. Unexported fields and fields tagged "-" are skipped.
func paramSpecs(structType reflect.Type) []paramSpec {
	specs := make([]paramSpec, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.ToLower(field.Name)
		required := true

		if tag, ok := field.Tag.Lookup(paramTag); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}

			if parts[0] != "" {
				name = parts[0]
			}

			for _, flag := range parts[1:] {
				if flag == "optional" {
					required = false
				}
			}
		}

		specs = append(specs, paramSpec{name: name, required: required})
	}

	return specs
}

// bindParams checks kwargs against the declared parameters of paramType and
// decodes them into a fresh instance of it.
func bindParams(paramType reflect.Type, kwargs map[string]any, prefix string) (reflect.Value, error) {
	isPointer := paramType.Kind() == reflect.Pointer

	structType := paramType
	if isPointer {
		structType = paramType.Elem()
	}

	specs := paramSpecs(structType)

	declared := make(map[string]bool, len(specs))
	for _, spec := range specs {
		declared[spec.name] = true
	}

	for _, key := range sortedKeys(kwargs) {
		if !declared[key] {
			return reflect.Value{}, &InvalidSettingError{Path: paramPath(prefix, key)}
		}
	}

	var missing []string

	for _, spec := range specs {
		if _, supplied := kwargs[spec.name]; spec.required && !supplied {
			missing = append(missing, paramPath(prefix, spec.name))
		}
	}

	if len(missing) > 0 {
		return reflect.Value{}, &RequiredSettingError{Paths: missing}
	}

	target := reflect.New(structType)

	// The first coercion failure is kept aside so it survives whatever
	// wrapping the decoder applies to hook errors.
	var coercionFailure *CoercionError

	keepFirst := func(failure *CoercionError) {
		if coercionFailure == nil {
			coercionFailure = failure
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: paramTag,
		Result:  target.Interface(),
		DecodeHook: composeDecodeHooks(keepFirst,
			assignableHook(),
			textUnmarshalerHook(),
			durationHook(),
		),
	})
	if err != nil {
		return reflect.Value{}, err
	}

	err = decoder.Decode(kwargs)
	if err != nil {
		if coercionFailure != nil {
			return reflect.Value{}, fmt.Errorf("%s.%s: %w", prefix, paramsKey, coercionFailure)
		}

		return reflect.Value{}, fmt.Errorf("%s.%s: %w", prefix, paramsKey, err)
	}

	if isPointer {
		return target, nil
	}

	return target.Elem(), nil
}

var errDecodeConditionNotMet = errors.New("decode condition not met")

// composeDecodeHooks tries each hook in order; the first whose condition is
// met decides the value. A hook that matched but failed aborts the decode
// with a CoercionError, also reported through onFailure. If nothing
// matches, the value falls through to mapstructure's own coercion.
func composeDecodeHooks(onFailure func(*CoercionError), hooks ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(from, to reflect.Value) (any, error) {
		for _, hook := range hooks {
			value, err := mapstructure.DecodeHookExec(hook, from, to)
			if err == nil {
				return value, nil
			}

			if errors.Is(err, errDecodeConditionNotMet) {
				continue
			}

			failure := &CoercionError{From: from.Type(), To: to.Type(), Cause: err}
			onFailure(failure)

			return nil, failure
		}

		return from.Interface(), nil
	}
}

// assignableHook passes already-constructed values straight through when
// they satisfy the target type, which is how nested factory products land
// in interface-typed or concrete parameter fields without re-decoding.
func assignableHook() mapstructure.DecodeHookFuncValue {
	return func(from, to reflect.Value) (any, error) {
		if !from.IsValid() || !to.IsValid() {
			return nil, errDecodeConditionNotMet
		}

		if from.Type() != to.Type() && from.Type().AssignableTo(to.Type()) {
			return from.Interface(), nil
		}

		return nil, errDecodeConditionNotMet
	}
}

func textUnmarshalerHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return nil, errDecodeConditionNotMet
		}

		result := reflect.New(to).Interface()

		unmarshaler, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errDecodeConditionNotMet
		}

		err := unmarshaler.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}

		return result, nil
	}
}

func durationHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return nil, errDecodeConditionNotMet
		}

		switch from.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		default:
			return nil, errDecodeConditionNotMet
		}
	}
}
