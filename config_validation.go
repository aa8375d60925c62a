package servicelocator

import (
	"fmt"
	"reflect"

	"github.com/golobby/cast"
)

const (
	// Struct tag keys
	tagDefault = "default"
	tagDesc    = "desc" // Used for documentation only
)

// ProcessConfigDefaults sets every zero-valued field of the struct cfg
// points to from its `default:"value"` tag. Nested structs are walked.
func ProcessConfigDefaults(cfg interface{}) error {
	if cfg == nil {
		return ErrConfigNil
	}

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrConfigNotPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrConfigNotStruct
	}

	return processStructDefaults(v)
}

func processStructDefaults(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := processStructDefaults(field); err != nil {
				return err
			}
			continue
		}

		defaultVal, hasDefault := fieldType.Tag.Lookup(tagDefault)
		if !hasDefault || !field.IsZero() {
			continue
		}

		if err := setDefaultValue(field, defaultVal); err != nil {
			return fmt.Errorf("failed to set default value for %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func setDefaultValue(field reflect.Value, defaultVal string) error {
	converted, err := cast.FromType(defaultVal, field.Type())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDefaultValueParseError, err)
	}

	value := reflect.ValueOf(converted)
	if !value.Type().ConvertibleTo(field.Type()) {
		return fmt.Errorf("%w: %s into %s", ErrDefaultValueParseError, value.Type(), field.Type())
	}
	field.Set(value.Convert(field.Type()))
	return nil
}

// ConfigFieldDescriptions returns the `desc` tag of every described field
// keyed by field name.
func ConfigFieldDescriptions(cfg interface{}) map[string]string {
	out := make(map[string]string)
	t := reflect.TypeOf(cfg)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if desc, ok := f.Tag.Lookup(tagDesc); ok {
			out[f.Name] = desc
		}
	}
	return out
}
