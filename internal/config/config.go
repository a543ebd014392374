package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/sprout/internal/output"
)

// Config is the parsed user configuration. It is loaded once per invocation
// and treated as read-only afterwards.
type Config struct {
	Git       GitPolicy  `yaml:"git,omitempty"       json:"git"`
	Templates []Template `yaml:"templates"           json:"templates"`
}

// GitPolicy controls version-control setup for a new project.
// A nil field means "not defined at this level".
type GitPolicy struct {
	Init *bool `yaml:"init,omitempty" json:"init,omitempty"`
	Add  *bool `yaml:"add,omitempty"  json:"add,omitempty"`
}

// Template is a node of the template menu. Exactly one of URL and Children
// must be set.
type Template struct {
	Name        string     `yaml:"name"                  json:"name"`
	Color       string     `yaml:"color,omitempty"       json:"color,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string     `yaml:"url,omitempty"         json:"url,omitempty"`
	Children    []Template `yaml:"children,omitempty"    json:"children,omitempty"`
	Git         GitPolicy  `yaml:"git,omitempty"         json:"git"`
}

// IsLeaf reports whether t is a fetchable template.
func (t *Template) IsLeaf() bool {
	return t.URL != "" && t.Children == nil
}

// IsGroup reports whether t is an internal menu node.
func (t *Template) IsGroup() bool {
	return t.URL == "" && len(t.Children) > 0
}

// Check returns a *BadTemplateError unless t is exactly a leaf or a group.
func (t *Template) Check() error {
	if t.IsLeaf() || t.IsGroup() {
		return nil
	}
	reason := "neither url nor children set"
	switch {
	case t.URL != "" && t.Children != nil:
		reason = "both url and children set"
	case t.Children != nil:
		reason = "children list is empty"
	}
	return &BadTemplateError{Name: t.Name, Reason: reason}
}

// Result is returned by Get.
type Result struct {
	Config *Config
	// Init is true when the file did not exist and the default was written.
	Init bool
	File string
}

// Get loads the user configuration from Path, writing the built-in default
// first if the file does not exist yet.
func Get() (*Result, error) {
	file := Path()
	if file == "" {
		return nil, output.NewSystemError("cannot resolve config directory: set SPROUT_CONFIG_HOME")
	}
	return GetFile(file)
}

// GetFile is Get for an explicit file path.
func GetFile(file string) (*Result, error) {
	_, err := os.Stat(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg, initErr := writeDefault(file)
		if initErr != nil {
			return nil, initErr
		}
		return &Result{Config: cfg, Init: true, File: file}, nil
	case err != nil:
		return nil, output.NewSystemErrorWithCause("reading config "+file, err)
	}

	cfg, err := Load(file)
	if err != nil {
		return nil, err
	}
	return &Result{Config: cfg, File: file}, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading config "+path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.File = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration data. Invalid YAML yields a *ParseError.
// The template tree is not validated here; see Validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Cause: err}
	}
	return &cfg, nil
}

// Validate walks the template tree and returns the first problem found:
// a malformed node or duplicate names among siblings.
func (c *Config) Validate() error {
	if len(c.Templates) == 0 {
		return &BadTemplateError{Name: "templates", Reason: "no templates defined"}
	}
	return validateLevel(c.Templates, "")
}

func validateLevel(level []Template, parent string) error {
	seen := make(map[string]bool, len(level))
	for i := range level {
		tmpl := &level[i]
		if err := tmpl.Check(); err != nil {
			var bad *BadTemplateError
			if errors.As(err, &bad) {
				bad.Path = joinPath(parent, tmpl.Name)
			}
			return err
		}
		if seen[tmpl.Name] {
			return &BadTemplateError{
				Name:   tmpl.Name,
				Path:   joinPath(parent, tmpl.Name),
				Reason: "duplicate name among siblings",
			}
		}
		seen[tmpl.Name] = true
		if tmpl.IsGroup() {
			if err := validateLevel(tmpl.Children, joinPath(parent, tmpl.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// writeDefault creates the config directory and writes the built-in default.
func writeDefault(file string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, fmt.Errorf("parsing built-in config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("creating config directory", err)
	}
	if err := os.WriteFile(file, defaultConfig, 0o644); err != nil {
		return nil, output.NewSystemErrorWithCause("writing default config", err)
	}
	return cfg, nil
}
