package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a brand or config file decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures brand package and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProjectionError reports a failure while writing one token group to a style target.
type ProjectionError struct {
	Group string
	Mode  string
	Err   error
}

// NewProjectionError constructs a ProjectionError for the given group.
func NewProjectionError(group, mode string, err error) error {
	return &ProjectionError{Group: group, Mode: mode, Err: err}
}

func (e *ProjectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Mode != "" {
		return fmt.Sprintf("projection error [%s/%s]: %v", e.Group, e.Mode, e.Err)
	}
	return fmt.Sprintf("projection error [%s]: %v", e.Group, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ProjectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequiredTokensError lists runtime tokens that were missing or empty after a build.
type RequiredTokensError struct {
	Mode    string
	Missing []string
	Empty   []string
}

// NewRequiredTokensError constructs a RequiredTokensError.
func NewRequiredTokensError(mode string, missing, empty []string) error {
	return &RequiredTokensError{Mode: mode, Missing: missing, Empty: empty}
}

func (e *RequiredTokensError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "required theme tokens incomplete for mode %s", e.Mode)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Empty) > 0 {
		fmt.Fprintf(&b, "; empty: %s", strings.Join(e.Empty, ", "))
	}
	return b.String()
}

// BrandLoadError indicates a brand package could not be fetched or decoded.
type BrandLoadError struct {
	BrandID string
	Err     error
}

// NewBrandLoadError constructs a BrandLoadError.
func NewBrandLoadError(brandID string, err error) error {
	return &BrandLoadError{BrandID: brandID, Err: err}
}

func (e *BrandLoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("brand load error [%s]: %v", e.BrandID, e.Err)
}

// Unwrap exposes the underlying error.
func (e *BrandLoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError wraps a persistence backend failure for a single key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError constructs a StorageError.
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("storage error: %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
