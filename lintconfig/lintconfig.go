package lintconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"go.jacobcolvin.com/jsdoc/rules"
)

var (
	// ErrReadConfig indicates an I/O error reading a configuration file.
	ErrReadConfig = errors.New("read config")
	// ErrParseConfig indicates a configuration file that is not valid YAML
	// or JSON, or whose rule section is not an object.
	ErrParseConfig = errors.New("parse config")
	// ErrNotFound indicates that [Find] found no configuration file.
	ErrNotFound = errors.New("config not found")
)

// Names are the configuration file names [Find] looks for, in order.
var Names = []string{".jsdoclint.yaml", ".jsdoclint.yml", ".jscsrc", "package.json"}

// Load reads the rule settings from the file at path.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	raw, err := decode(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	err = Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return raw, nil
}

// decode extracts the rule settings from a file's contents.
func decode(name string, data []byte) (map[string]any, error) {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		var raw map[string]any

		err := yaml.Unmarshal(data, &raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
		}

		if raw == nil {
			raw = map[string]any{}
		}

		return raw, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrParseConfig)
	}

	path := "jsDoc"
	if name == "package.json" {
		path = "jscsConfig.jsDoc"
	}

	section := gjson.GetBytes(data, path)
	if !section.Exists() {
		return map[string]any{}, nil
	}

	if !section.IsObject() {
		return nil, fmt.Errorf("%w: %s must be an object", ErrParseConfig, path)
	}

	raw, ok := section.Value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrParseConfig, path)
	}

	return raw, nil
}

// Validate checks raw rule settings against [Schema].
func Validate(raw map[string]any) error {
	// Round-trip through JSON so YAML integers and typed maps take the
	// shapes the validator expects.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	var instance any

	err = json.Unmarshal(b, &instance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	resolved, err := resolvedSchema()
	if err != nil {
		return err
	}

	err = resolved.Validate(instance)
	if err != nil {
		return fmt.Errorf("%w: %w", rules.ErrInvalidConfig, err)
	}

	return nil
}

// Find returns the path of the first configuration file in dir or one of
// its parents.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)

			ok, err := hasConfig(path, name)
			if err != nil {
				return "", err
			}

			if ok {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}

		dir = parent
	}
}

func hasConfig(path, name string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	if info.IsDir() {
		return false, nil
	}

	if name != "package.json" {
		return true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return gjson.GetBytes(data, "jscsConfig.jsDoc").Exists(), nil
}
