package croissant

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DatasetInfo carries operator-supplied dataset properties loaded from a YAML
// overlay file. Every field is optional; a set field overrides the default
// the builder would otherwise derive from the source file.
type DatasetInfo struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Version       string `yaml:"version"`
	Language      string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
	DatePublished string `yaml:"date_published" validate:"omitempty,datetime=2006-01-02"`
	License       string `yaml:"license"`
	URL           string `yaml:"url" validate:"omitempty,url"`
	CiteAs        string `yaml:"cite_as"`
}

// LoadDatasetInfo reads, parses, and validates a dataset info overlay.
func LoadDatasetInfo(path string) (*DatasetInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset info file: %w", err)
	}

	var info DatasetInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing dataset info file %s: %w", path, err)
	}

	validate := validator.New()
	if err := validate.Struct(info); err != nil {
		return nil, fmt.Errorf("dataset info validation failed: %w", err)
	}

	return &info, nil
}

// Apply overlays the set fields of info onto opts and returns the result.
// Unset fields leave opts untouched.
func (i *DatasetInfo) Apply(opts BuildOptions) BuildOptions {
	if i == nil {
		return opts
	}
	if i.Name != "" {
		opts.Name = i.Name
	}
	if i.Description != "" {
		opts.Description = i.Description
	}
	if i.Version != "" {
		opts.Version = i.Version
	}
	if i.Language != "" {
		opts.Language = i.Language
	}
	if i.DatePublished != "" {
		opts.DatePublished = i.DatePublished
	}
	if i.License != "" {
		opts.License = i.License
	}
	if i.URL != "" {
		opts.URL = i.URL
	}
	if i.CiteAs != "" {
		opts.CiteAs = i.CiteAs
	}
	return opts
}
