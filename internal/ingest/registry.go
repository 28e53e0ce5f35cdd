package ingest

import (
	"embed"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// SourceConfig ranks the data origins for one dataset kind: published sheet
// first, local file second. The built-in fallback table always exists and is
// not configurable.
type SourceConfig struct {
	SheetURL  string `yaml:"sheet_url,omitempty"`
	LocalPath string `yaml:"local_path"`
}

// Registry holds the source ranking for both dataset kinds.
type Registry struct {
	Grants  SourceConfig `yaml:"grants"`
	Clients SourceConfig `yaml:"clients"`
}

// remoteConfigured reports whether the sheet URL is usable; anything that is
// not an absolute http(s) URL causes immediate fallthrough to the local file.
func (c SourceConfig) remoteConfigured() bool {
	return strings.HasPrefix(c.SheetURL, "http://") || strings.HasPrefix(c.SheetURL, "https://")
}

// LoadRegistry reads the embedded sources.yaml and returns a Registry.
// The path parameter overrides the embedded copy for local development.
func LoadRegistry(path string) (*Registry, error) {
	data, err := sourcesYAML.ReadFile("config/sources.yaml")
	if path != "" {
		if fileData, fileErr := os.ReadFile(path); fileErr == nil {
			data, err = fileData, nil
		}
	}
	if err != nil {
		return nil, err
	}

	// Expand environment variables within the YAML content (e.g. ${GRANT_SHEET_URL})
	expanded := os.ExpandEnv(string(data))

	var reg Registry
	if err := yaml.Unmarshal([]byte(expanded), &reg); err != nil {
		return nil, err
	}

	return &reg, nil
}
