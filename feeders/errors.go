package feeders

import (
	"errors"
	"fmt"
)

// Env feeder errors
var (
	ErrEnvInvalidStructure = errors.New("env: expected pointer to struct")
	ErrEnvFieldCannotBeSet = errors.New("env: field cannot be set")
)

// File feeder errors
var (
	ErrYamlRead  = errors.New("failed to read YAML")
	ErrTomlRead  = errors.New("failed to read toml")
	ErrNoSection = errors.New("section is not a table")
)

func wrapEnvConvertError(envName string, err error) error {
	return fmt.Errorf("env: cannot convert %s: %w", envName, err)
}

func wrapSectionError(section string, got interface{}) error {
	return fmt.Errorf("%w: %s, got %T", ErrNoSection, section, got)
}
