// Package feeders provides configuration feeders for reading settings from
// environment variables, YAML and TOML files.
package feeders

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// EnvFeeder reads environment variables named by `env` struct tags.
// With a Prefix of "LOCATOR" a field tagged `env:"LOG_LEVEL"` is read from
// LOCATOR_LOG_LEVEL.
type EnvFeeder struct {
	Prefix string
}

// NewEnvFeeder creates a new EnvFeeder with the given variable prefix
func NewEnvFeeder(prefix string) EnvFeeder {
	return EnvFeeder{Prefix: prefix}
}

// Feed reads environment variables and populates the provided structure.
// Unset or empty variables leave their field untouched.
func (f EnvFeeder) Feed(structure interface{}) error {
	inputType := reflect.TypeOf(structure)
	if inputType == nil || inputType.Kind() != reflect.Ptr || inputType.Elem().Kind() != reflect.Struct {
		return ErrEnvInvalidStructure
	}
	return f.processStructFields(reflect.ValueOf(structure).Elem())
}

func (f EnvFeeder) processStructFields(rv reflect.Value) error {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rv.Type().Field(i)

		if err := f.processField(field, &fieldType); err != nil {
			return fmt.Errorf("error in field '%s': %w", fieldType.Name, err)
		}
	}
	return nil
}

func (f EnvFeeder) processField(field reflect.Value, fieldType *reflect.StructField) error {
	switch field.Kind() {
	case reflect.Struct:
		return f.processStructFields(field)
	case reflect.Pointer:
		if !field.IsZero() && field.Elem().Kind() == reflect.Struct {
			return f.processStructFields(field.Elem())
		}
	default:
	}

	envTag, exists := fieldType.Tag.Lookup("env")
	if !exists {
		return nil
	}
	return f.setFieldFromEnv(field, envTag)
}

func (f EnvFeeder) setFieldFromEnv(field reflect.Value, envTag string) error {
	envName := strings.ToUpper(envTag)
	if f.Prefix != "" {
		envName = strings.ToUpper(f.Prefix) + "_" + envName
	}

	envValue := os.Getenv(envName)
	if envValue == "" {
		return nil
	}

	convertedValue, err := cast.FromType(envValue, field.Type())
	if err != nil {
		return wrapEnvConvertError(envName, err)
	}
	if !field.CanSet() {
		return ErrEnvFieldCannotBeSet
	}

	field.Set(reflect.ValueOf(convertedValue).Convert(field.Type()))
	return nil
}
