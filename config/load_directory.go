package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/deepnoodle-ai/betaheaders/llm"
)

// LoadDirectory loads all YAML and JSON files from a directory and combines
// them into a single Config. Files are loaded in lexicographical order.
// Later files can override values from earlier files.
func LoadDirectory(dirPath string) (*Config, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var configFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && isConfigFile(entry.Name()) {
			configFiles = append(configFiles, filepath.Join(dirPath, entry.Name()))
		}
	}
	sort.Strings(configFiles)

	// Consider an empty directory an error
	if len(configFiles) == 0 {
		return nil, fmt.Errorf("no yaml or json files found in directory: %s", dirPath)
	}

	var merged *Config
	for _, file := range configFiles {
		config, err := ParseFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %s: %w", file, err)
		}
		if merged == nil {
			merged = config
		} else {
			merged = Merge(merged, config)
		}
	}
	return merged, nil
}

// Load reads a configuration file or directory. An empty path yields an
// empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDirectory(path)
	}
	config, err := ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return config, nil
}

// ExpandToolPatterns expands doublestar glob patterns into a sorted list of
// JSON and YAML files. A pattern without glob characters is taken as a path
// and must exist.
func ExpandToolPatterns(patterns ...string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if _, err := os.Stat(pattern); err != nil {
				return nil, err
			}
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			if !isConfigFile(match) || seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadTools loads and concatenates tool descriptors from every file matched
// by the patterns, in lexicographical file order.
func LoadTools(patterns ...string) ([]llm.ToolDescriptor, error) {
	files, err := ExpandToolPatterns(patterns...)
	if err != nil {
		return nil, err
	}
	var tools []llm.ToolDescriptor
	for _, file := range files {
		fileTools, err := ParseToolsFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %s: %w", file, err)
		}
		tools = append(tools, fileTools...)
	}
	return tools, nil
}

func isConfigFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml", ".json":
		return true
	default:
		return false
	}
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
