package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/goccy/go-yaml"
)

// ParseFile loads a Config from a file. The file extension is used to
// determine the configuration format (JSON or YAML).
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ParseYAML loads a Config from YAML. Unknown top-level keys are rejected.
func ParseYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseJSON loads a Config from JSON
func ParseJSON(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseToolsFile loads tool descriptors from a JSON or YAML file. The file
// may hold a bare list of descriptors or a Config with a tools section.
func ParseToolsFile(path string) ([]llm.ToolDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if _, ok := raw.([]any); ok {
			return llm.ParseToolDescriptors(data)
		}
		config, err := ParseJSON(data)
		if err != nil {
			return nil, err
		}
		return config.Tools, nil
	case ".yml", ".yaml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if _, ok := raw.([]any); ok {
			var tools []llm.ToolDescriptor
			if err := yaml.Unmarshal(data, &tools); err != nil {
				return nil, err
			}
			return tools, nil
		}
		config, err := ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return config.Tools, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}
