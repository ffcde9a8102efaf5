package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the declaration schema version.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*DeclarationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	df, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return df, nil
}

// Parse parses YAML data into a DeclarationFile.
func Parse(data []byte) (*DeclarationFile, error) {
	var df DeclarationFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	// Apply defaults
	if df.Version == "" {
		df.Version = CurrentVersion
	}

	if df.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported declaration file version %q", df.Version)
	}

	return &df, nil
}

// Marshal serializes a DeclarationFile to YAML.
func Marshal(df *DeclarationFile) ([]byte, error) {
	return yaml.Marshal(df)
}

// WriteFile writes a DeclarationFile to the given path.
func WriteFile(df *DeclarationFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
