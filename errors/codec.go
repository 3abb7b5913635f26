// Package errors defines the typed failure taxonomy of the OpenDRIVE codec.
//
// Every failure produced while reading or writing a document is an *Error
// carrying a Code, the dotted path of the element being processed
// (for example "OpenDRIVE.road.planView.geometry"), and enough context to
// report the offending attribute or child.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a codec error.
type Code string

const (
	// CodeXML indicates the underlying XML stream is malformed.
	CodeXML Code = "xml-error"
	// CodeAttributeMissing indicates a required attribute is absent.
	CodeAttributeMissing Code = "attribute-missing"
	// CodeElementMissing indicates a required child element is absent.
	CodeElementMissing Code = "element-missing"
	// CodeChildMissing indicates a required choice produced no variant.
	CodeChildMissing Code = "child-missing"
	// CodeInvalidEnumValue indicates an attribute value outside an enumeration.
	CodeInvalidEnumValue Code = "invalid-enum-value"
	// CodeParse indicates an attribute value failed lexical parsing.
	CodeParse Code = "parse-error"
	// CodeInvalidValue indicates a value that is lexically valid but not
	// acceptable in its position, such as an unexpected absorbed element.
	CodeInvalidValue Code = "invalid-value"
	// CodeIO indicates a failure of the underlying reader or writer.
	CodeIO Code = "io-error"
	// CodeUTF8 indicates produced output that is not valid UTF-8.
	CodeUTF8 Code = "utf8-error"
)

// ParseKind narrows CodeParse to the lexical space that was expected.
type ParseKind string

const (
	ParseInt   ParseKind = "int"
	ParseFloat ParseKind = "float"
	ParseBool  ParseKind = "bool"
)

// Error is a codec failure with a code and element-path context.
type Error struct {
	Code  Code
	Path  string    // dotted element path, empty at the document root
	Field string    // attribute or child element name, when applicable
	Type  string    // expected type or enumeration name, when applicable
	Value string    // offending value, when applicable
	Kind  ParseKind // set for CodeParse
	Err   error     // wrapped cause, when applicable
}

// Error formats the failure for display, including code, path and context.
func (e *Error) Error() string {
	if e == nil {
		return "opendrive <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))
	switch e.Code {
	case CodeAttributeMissing:
		b.WriteString(fmt.Sprintf(" required attribute %q", e.Field))
	case CodeElementMissing:
		b.WriteString(fmt.Sprintf(" required element %q", e.Field))
	case CodeChildMissing:
		b.WriteString(fmt.Sprintf(" required child of type %s", e.Type))
	case CodeInvalidEnumValue:
		b.WriteString(fmt.Sprintf(" value %q is not a valid %s", e.Value, e.Type))
	case CodeParse:
		b.WriteString(fmt.Sprintf(" attribute %q: invalid %s value %q", e.Field, e.Kind, e.Value))
	case CodeInvalidValue:
		b.WriteString(fmt.Sprintf(" invalid value for %q", e.Field))
	default:
		if e.Err != nil {
			b.WriteString(" " + e.Err.Error())
		}
	}
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.Err != nil && e.Code != CodeXML && e.Code != CodeIO && e.Code != CodeUTF8 {
		b.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return b.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// XML wraps a malformed-stream failure.
func XML(path string, err error) *Error {
	return &Error{Code: CodeXML, Path: path, Err: err}
}

// AttributeMissing reports a required attribute that is absent.
func AttributeMissing(path, name, typ string) *Error {
	return &Error{Code: CodeAttributeMissing, Path: path, Field: name, Type: typ}
}

// ElementMissing reports a required child element that is absent. For a
// required choice, name lists the accepted alternatives separated by "|".
func ElementMissing(path, name, typ string) *Error {
	return &Error{Code: CodeElementMissing, Path: path, Field: name, Type: typ}
}

// ChildMissing reports a required choice that produced no variant.
func ChildMissing(path, typ string) *Error {
	return &Error{Code: CodeChildMissing, Path: path, Type: typ}
}

// InvalidEnumValue reports an attribute value outside its enumeration.
func InvalidEnumValue(typ, value string) *Error {
	return &Error{Code: CodeInvalidEnumValue, Type: typ, Value: value}
}

// Parse reports an attribute value that failed lexical parsing.
func Parse(path, name string, kind ParseKind, value string, err error) *Error {
	return &Error{Code: CodeParse, Path: path, Field: name, Kind: kind, Value: value, Err: err}
}

// InvalidValueFor reports a value that is not acceptable in its position.
func InvalidValueFor(path, name string) *Error {
	return &Error{Code: CodeInvalidValue, Path: path, Field: name}
}

// IO wraps a reader or writer failure.
func IO(err error) *Error {
	return &Error{Code: CodeIO, Err: err}
}

// UTF8 reports produced output that is not valid UTF-8.
func UTF8() *Error {
	return &Error{Code: CodeUTF8}
}

// IsCode reports whether err is or wraps a codec *Error with the given code.
func IsCode(err error, code Code) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}

// AsError extracts a codec *Error from err.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
