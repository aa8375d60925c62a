package feeders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YamlFeeder is a feeder that reads YAML files
type YamlFeeder struct {
	Path string
}

// NewYamlFeeder creates a new YamlFeeder that reads from the specified YAML file
func NewYamlFeeder(filePath string) YamlFeeder {
	return YamlFeeder{Path: filePath}
}

// Feed decodes the whole file into structure. Fields absent from the file
// keep their current values.
func (y YamlFeeder) Feed(structure interface{}) error {
	content, err := os.ReadFile(y.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrYamlRead, err)
	}
	if err := yaml.Unmarshal(content, structure); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrYamlRead, y.Path, err)
	}
	return nil
}

// FeedKey decodes only the top-level section named key into target.
// A missing section leaves target untouched.
func (y YamlFeeder) FeedKey(key string, target interface{}) error {
	var allData map[string]interface{}
	if err := y.Feed(&allData); err != nil {
		return err
	}

	value, exists := allData[key]
	if !exists {
		return nil
	}
	if _, ok := value.(map[string]interface{}); !ok {
		return wrapSectionError(key, value)
	}

	// Remarshal and unmarshal to handle type conversions
	valueBytes, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err = yaml.Unmarshal(valueBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal value to target: %w", err)
	}

	return nil
}
