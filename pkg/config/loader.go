package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// Load parses YAML options on top of the defaults and validates the result.
// Keys absent from the document keep their default values.
func Load(data []byte) (*Options, error) {
	opts := New()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("%w: cannot parse options YAML: %v", utils.ErrValidation, err)
	}
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = "xml"
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadFile reads an options file from disk and parses it with Load.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read options file %s: %v", utils.ErrValidation, path, err)
	}
	return Load(data)
}
