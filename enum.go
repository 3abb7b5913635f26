package opendrive

import (
	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
)

// enumeration maps an enum type to and from its canonical attribute
// spellings. Parsing is case-sensitive: only the canonical spelling is
// accepted, so "Driving" is not a lane type even though "driving" is.
type enumeration[T comparable] struct {
	name   string
	names  map[T]string
	values map[string]T
}

func newEnumeration[T comparable](name string, names map[T]string) *enumeration[T] {
	values := make(map[string]T, len(names))
	for v, s := range names {
		values[s] = v
	}
	return &enumeration[T]{name: name, names: names, values: values}
}

func (e *enumeration[T]) parse(s string) (T, error) {
	v, ok := e.values[s]
	if !ok {
		var zero T
		return zero, errors.InvalidEnumValue(e.name, s)
	}
	return v, nil
}

func (e *enumeration[T]) format(v T) string {
	return e.names[v]
}

// enumAttr reads a required enum attribute.
func enumAttr[T comparable](c *parser.Context, name string, e *enumeration[T]) (T, error) {
	v := c.StringOpt(name)
	if v == nil {
		var zero T
		return zero, errors.AttributeMissing(c.Path(), name, e.name)
	}
	return e.parse(*v)
}

// enumAttrOpt reads an optional enum attribute, nil when absent.
func enumAttrOpt[T comparable](c *parser.Context, name string, e *enumeration[T]) (*T, error) {
	v := c.StringOpt(name)
	if v == nil {
		return nil, nil
	}
	t, err := e.parse(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
