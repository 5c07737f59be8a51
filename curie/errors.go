package curie

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeReservedPrefix indicates an attempt to register the reserved "_" prefix.
	ErrCodeReservedPrefix ErrorCode = "RESERVED_PREFIX"
	// ErrCodeInvalidPrefix indicates expansion through a prefix with no registered mapping.
	ErrCodeInvalidPrefix ErrorCode = "INVALID_PREFIX"
	// ErrCodeMissingDefault indicates a bare reference was expanded with no default base set.
	ErrCodeMissingDefault ErrorCode = "MISSING_DEFAULT"
	// ErrCodeNoMapping indicates contraction found no base matching the identifier.
	ErrCodeNoMapping ErrorCode = "NO_MAPPING"
	// ErrCodeUnsupportedFormat indicates an unsupported prefix-document format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeParseError indicates a syntax error in a prefix document.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

var (
	// ErrReservedPrefix indicates an attempt to register the "_" prefix, which
	// is reserved for blank node identifiers by the CURIE syntax.
	ErrReservedPrefix = errors.New(`curie: prefix "_" is reserved`)
	// ErrInvalidPrefix indicates expansion through a prefix, the empty prefix
	// of forms like ":Person" included, that has no registered mapping.
	ErrInvalidPrefix = errors.New("curie: prefix has no registered mapping")
	// ErrMissingDefault indicates expansion of a bare reference while no
	// default base has been set.
	ErrMissingDefault = errors.New("curie: no default base set")
	// ErrNoMapping indicates contraction found neither the default base nor
	// any registered base at the start of the identifier.
	ErrNoMapping = errors.New("curie: no mapping found")
	// ErrUnsupportedFormat indicates an unsupported prefix-document format.
	ErrUnsupportedFormat = errors.New("unsupported prefix document format")
)

// Code returns the error code for an error. Returns empty string for nil
// errors and for errors that did not originate in this package.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrReservedPrefix):
		return ErrCodeReservedPrefix
	case errors.Is(err, ErrInvalidPrefix):
		return ErrCodeInvalidPrefix
	case errors.Is(err, ErrMissingDefault):
		return ErrCodeMissingDefault
	case errors.Is(err, ErrNoMapping):
		return ErrCodeNoMapping
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	}

	// Check for ParseError
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		// Check underlying error for more specific codes
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	return ""
}

// PrefixError carries the offending prefix alongside the sentinel. AddPrefix
// and the expansion operations return it so callers can report which prefix
// failed while still matching the sentinel with errors.Is.
type PrefixError struct {
	Prefix string // offending prefix name
	Err    error  // underlying sentinel
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("prefix %q: %v", e.Prefix, e.Err)
}

func (e *PrefixError) Unwrap() error { return e.Err }

// ParseError provides structured context for prefix-document parse failures.
type ParseError struct {
	Format Format // document format being parsed
	Line   int    // 1-based line number (0 if unknown)
	Err    error  // underlying error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds format and line context to a parse error. Errors that
// already carry parse context are returned unchanged.
func wrapParseError(format Format, line int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{Format: format, Line: line, Err: err}
}
