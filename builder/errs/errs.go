// Package errs defines the fatal error kinds a build can stop on.
//
// Every kind is a plain struct so callers can use errors.As to pull out
// the offending path or setting and report it.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups errors for CLI reporting.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryContent  Category = "content"
	CategoryTemplate Category = "template"
)

// Categorized is implemented by every error in this package.
type Categorized interface {
	error
	Category() Category
}

// ConfigurationError reports a setting or front-matter value that cannot be used.
type ConfigurationError struct {
	Path   string
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error      { return e.Err }
func (e *ConfigurationError) Category() Category { return CategoryConfig }

// MissingSiteConfigError is returned when a site directory has no config file.
type MissingSiteConfigError struct {
	Dir string
}

func (e *MissingSiteConfigError) Error() string {
	return fmt.Sprintf("no site configuration found in %s (expected config.yaml)", e.Dir)
}

func (e *MissingSiteConfigError) Category() Category { return CategoryConfig }

// UnknownTextProcessorError names a processor, or a file whose extension
// maps to no processor.
type UnknownTextProcessorError struct {
	Name string
	Path string
}

func (e *UnknownTextProcessorError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no text processor for %s (extension %q)", e.Path, e.Name)
	}
	return fmt.Sprintf("unknown text processor %q", e.Name)
}

func (e *UnknownTextProcessorError) Category() Category { return CategoryContent }

// UnsupportedTemplateBackendError is returned for a `templates` value with no backend.
type UnsupportedTemplateBackendError struct {
	Name string
}

func (e *UnsupportedTemplateBackendError) Error() string {
	return fmt.Sprintf("unsupported template backend %q (want go, django or jinja2)", e.Name)
}

func (e *UnsupportedTemplateBackendError) Category() Category { return CategoryTemplate }

// MissingRendererDependencyError is returned when an external tool a
// processor relies on is not installed.
type MissingRendererDependencyError struct {
	Backend string
	Hint    string
}

func (e *MissingRendererDependencyError) Error() string {
	msg := fmt.Sprintf("%s support is not available", e.Backend)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *MissingRendererDependencyError) Category() Category { return CategoryContent }

// PageNotFoundError is returned when a page declared in the config has no source file.
type PageNotFoundError struct {
	Name string
	Dir  string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %q not found in %s", e.Name, e.Dir)
}

func (e *PageNotFoundError) Category() Category { return CategoryContent }

// CategoryOf returns the category of the first Categorized error in err's chain.
func CategoryOf(err error) (Category, bool) {
	var c Categorized
	if errors.As(err, &c) {
		return c.Category(), true
	}
	return "", false
}

// Field builds a ConfigurationError for a single bad value in a file.
func Field(path, field, reason string) *ConfigurationError {
	return &ConfigurationError{Path: path, Field: field, Reason: reason}
}

// Wrap builds a ConfigurationError around a decoding or read failure.
func Wrap(path, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Path: path, Reason: reason, Err: err}
}
