package config

import "fmt"

// ParseError reports a configuration file that exists but is not valid YAML.
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid config: %v", e.Cause)
	}
	return fmt.Sprintf("invalid config %s: %v", e.File, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// BadTemplateError reports a template node that is not exactly one of a leaf
// (url) or a group (children).
type BadTemplateError struct {
	Name   string
	Path   string
	Reason string
}

func (e *BadTemplateError) Error() string {
	where := e.Path
	if where == "" {
		where = e.Name
	}
	return fmt.Sprintf("bad template %q: %s", where, e.Reason)
}
