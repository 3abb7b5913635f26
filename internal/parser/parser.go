// Package parser drives the pull tokenizer for the OpenDRIVE codec. A
// Context is the read state of one open element: it captures the start tag's
// attributes and character data, dispatches child elements by name, tracks
// the dotted element path for error reporting, and guarantees the token
// stream is left balanced whether or not a handler consumes its children.
package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/muktihari/xmltokenizer"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/unit"
)

// Options are parse-time tolerances threaded through every Context.
type Options struct {
	// AllowMissingRoadMarkColor accepts `<roadMark>` elements without the
	// required color attribute, defaulting the color to "standard". Some
	// exporters (notably SUMO's netconvert) omit it.
	AllowMissingRoadMarkColor bool

	// RejectUnknownAdditionalData fails the parse when an element that
	// permits extension data carries a child that is none of dataQuality,
	// include or userData. The default is to preserve such children.
	RejectUnknownAdditionalData bool
}

// Attr is one decoded attribute of the current element.
type Attr struct {
	Name  string
	Value string
}

// Context is the read state of one open element.
type Context struct {
	tok         *xmltokenizer.Tokenizer
	opts        Options
	name        string
	path        string
	attrs       []Attr
	data        string
	selfClosing bool
	document    bool // pseudo-element wrapping the whole token stream
	consumed    bool // children fully read
}

// NewDocument returns a Context for the document itself. Its children are
// the top-level elements of the stream, and they end at EOF rather than at a
// closing tag.
func NewDocument(tok *xmltokenizer.Tokenizer, opts Options) *Context {
	return &Context{tok: tok, opts: opts, document: true}
}

// Name returns the local name of the current element.
func (c *Context) Name() string { return c.name }

// Path returns the dotted element path from the document root, such as
// "OpenDRIVE.road.planView". It is empty for the document pseudo-element.
func (c *Context) Path() string { return c.path }

// Data returns the character data captured with the start tag, including
// CDATA content.
func (c *Context) Data() string { return c.data }

// Options returns the parse options in effect.
func (c *Context) Options() Options { return c.opts }

// Attrs returns the attributes of the current element in document order.
func (c *Context) Attrs() []Attr { return c.attrs }

func (c *Context) child(token *xmltokenizer.Token) *Context {
	cc := &Context{
		tok:         c.tok,
		opts:        c.opts,
		name:        string(token.Name.Local),
		data:        string(token.Data),
		selfClosing: token.SelfClosing,
	}
	if c.document {
		cc.path = cc.name
	} else {
		cc.path = c.path + "." + cc.name
	}
	if len(token.Attrs) > 0 {
		cc.attrs = make([]Attr, 0, len(token.Attrs))
		for i := range token.Attrs {
			a := &token.Attrs[i]
			cc.attrs = append(cc.attrs, Attr{Name: string(a.Name.Local), Value: string(a.Value)})
		}
	}
	return cc
}

// Tokens for processing instructions, comments and doctype declarations, and
// tokens carrying only character data, are not elements.
func notElement(t *xmltokenizer.Token) bool {
	if len(t.Name.Local) == 0 {
		return true
	}
	switch t.Name.Local[0] {
	case '?', '!':
		return true
	}
	if len(t.Name.Full) > 0 {
		switch t.Name.Full[0] {
		case '?', '!':
			return true
		}
	}
	return false
}

// Children reads the child elements of the current element, invoking fn once
// per child. The child Context passed to fn is only valid during the call;
// any children fn does not read are skipped with depth balancing before the
// next sibling is delivered. Children is a no-op the second time around.
func (c *Context) Children(fn func(name string, child *Context) error) error {
	if c.consumed {
		return nil
	}
	c.consumed = true
	if c.selfClosing {
		return nil
	}

	for {
		token, err := c.tok.Token()
		if err != nil {
			if c.document && err == io.EOF {
				return nil
			}
			return errors.XML(c.path, err)
		}
		if notElement(&token) {
			continue
		}
		if token.IsEndElement {
			// Children drain their own subtrees, so the first end tag
			// seen at this level closes the current element.
			return nil
		}

		child := c.child(&token)
		if err := fn(child.name, child); err != nil {
			return err
		}
		if err := child.drain(); err != nil {
			return err
		}
	}
}

// drain skips the remainder of the element's subtree.
func (c *Context) drain() error {
	if c.consumed {
		return nil
	}
	c.consumed = true
	if c.selfClosing {
		return nil
	}

	depth := 1
	for depth > 0 {
		token, err := c.tok.Token()
		if err != nil {
			return errors.XML(c.path, err)
		}
		if notElement(&token) {
			continue
		}
		if token.IsEndElement {
			depth--
			continue
		}
		if !token.SelfClosing {
			depth++
		}
	}
	return nil
}

// Arm routes one child element name to its parse function. Element-name
// matching is case-insensitive.
type Arm struct {
	Name     string
	Required bool
	Fn       func(*Context) error
}

// Child builds an optional dispatch arm.
func Child(name string, fn func(*Context) error) Arm {
	return Arm{Name: name, Fn: fn}
}

// RequiredChild builds a dispatch arm whose absence fails the parse with an
// element-missing error.
func RequiredChild(name string, fn func(*Context) error) Arm {
	return Arm{Name: name, Required: true, Fn: fn}
}

// Match dispatches the children of the current element across the given
// arms. A child matching no arm is passed to wildcard when one is given and
// skipped otherwise. After the element closes, any required arm that never
// fired fails with an element-missing error carrying the element path.
func (c *Context) Match(wildcard func(name string, child *Context) error, arms ...Arm) error {
	seen := make([]bool, len(arms))
	err := c.Children(func(name string, child *Context) error {
		for i := range arms {
			if strings.EqualFold(name, arms[i].Name) {
				seen[i] = true
				return arms[i].Fn(child)
			}
		}
		if wildcard != nil {
			return wildcard(name, child)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i := range arms {
		if arms[i].Required && !seen[i] {
			return errors.ElementMissing(c.path, arms[i].Name, "")
		}
	}
	return nil
}

// lookup finds an attribute by name, case-insensitively.
func (c *Context) lookup(name string) (string, bool) {
	for i := range c.attrs {
		if strings.EqualFold(c.attrs[i].Name, name) {
			return c.attrs[i].Value, true
		}
	}
	return "", false
}

// String returns a required string attribute.
func (c *Context) String(name string) (string, error) {
	v, ok := c.lookup(name)
	if !ok {
		return "", errors.AttributeMissing(c.path, name, "string")
	}
	return v, nil
}

// StringOpt returns an optional string attribute, nil when absent.
func (c *Context) StringOpt(name string) *string {
	v, ok := c.lookup(name)
	if !ok {
		return nil
	}
	return &v
}

// Float returns a required float64 attribute.
func (c *Context) Float(name string) (float64, error) {
	v, ok := c.lookup(name)
	if !ok {
		return 0, errors.AttributeMissing(c.path, name, "float64")
	}
	return c.parseFloat(name, v)
}

// FloatOpt returns an optional float64 attribute, nil when absent.
func (c *Context) FloatOpt(name string) (*float64, error) {
	v, ok := c.lookup(name)
	if !ok {
		return nil, nil
	}
	f, err := c.parseFloat(name, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Context) parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Parse(c.path, name, errors.ParseFloat, v, err)
	}
	return f, nil
}

// Bool returns a required boolean attribute.
func (c *Context) Bool(name string) (bool, error) {
	v, ok := c.lookup(name)
	if !ok {
		return false, errors.AttributeMissing(c.path, name, "bool")
	}
	return c.parseBool(name, v)
}

// BoolOpt returns an optional boolean attribute, nil when absent.
func (c *Context) BoolOpt(name string) (*bool, error) {
	v, ok := c.lookup(name)
	if !ok {
		return nil, nil
	}
	b, err := c.parseBool(name, v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Context) parseBool(name, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Parse(c.path, name, errors.ParseBool, v, err)
	}
	return b, nil
}

// YesNo returns a required yes/no attribute as a bool. The comparison with
// "yes" is case-insensitive; any other value reads as false.
func (c *Context) YesNo(name string) (bool, error) {
	v, ok := c.lookup(name)
	if !ok {
		return false, errors.AttributeMissing(c.path, name, "yes/no")
	}
	return strings.EqualFold(v, "yes"), nil
}

// YesNoOpt returns an optional yes/no attribute, nil when absent.
func (c *Context) YesNoOpt(name string) *bool {
	v, ok := c.lookup(name)
	if !ok {
		return nil
	}
	b := strings.EqualFold(v, "yes")
	return &b
}

// Int64 returns a required int64 attribute.
func (c *Context) Int64(name string) (int64, error) {
	v, ok := c.lookup(name)
	if !ok {
		return 0, errors.AttributeMissing(c.path, name, "int64")
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.Parse(c.path, name, errors.ParseInt, v, err)
	}
	return n, nil
}

// Uint64 returns a required uint64 attribute.
func (c *Context) Uint64(name string) (uint64, error) {
	v, ok := c.lookup(name)
	if !ok {
		return 0, errors.AttributeMissing(c.path, name, "uint64")
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Parse(c.path, name, errors.ParseInt, v, err)
	}
	return n, nil
}

// Uint64Opt returns an optional uint64 attribute, nil when absent.
func (c *Context) Uint64Opt(name string) (*uint64, error) {
	v, ok := c.lookup(name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, errors.Parse(c.path, name, errors.ParseInt, v, err)
	}
	return &n, nil
}

// Uint16 returns a required uint16 attribute.
func (c *Context) Uint16(name string) (uint16, error) {
	v, ok := c.lookup(name)
	if !ok {
		return 0, errors.AttributeMissing(c.path, name, "uint16")
	}
	n, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return 0, errors.Parse(c.path, name, errors.ParseInt, v, err)
	}
	return uint16(n), nil
}

// Length returns a required length attribute in metres.
func (c *Context) Length(name string) (unit.Length, error) {
	f, err := c.Float(name)
	if err != nil {
		return 0, err
	}
	return unit.Metres(f), nil
}

// LengthOpt returns an optional length attribute, nil when absent.
func (c *Context) LengthOpt(name string) (*unit.Length, error) {
	f, err := c.FloatOpt(name)
	if err != nil || f == nil {
		return nil, err
	}
	l := unit.Metres(*f)
	return &l, nil
}

// Angle returns a required angle attribute in radians.
func (c *Context) Angle(name string) (unit.Angle, error) {
	f, err := c.Float(name)
	if err != nil {
		return 0, err
	}
	return unit.Radians(f), nil
}

// AngleOpt returns an optional angle attribute, nil when absent.
func (c *Context) AngleOpt(name string) (*unit.Angle, error) {
	f, err := c.FloatOpt(name)
	if err != nil || f == nil {
		return nil, err
	}
	a := unit.Radians(*f)
	return &a, nil
}

// Curvature returns a required curvature attribute in 1/metres.
func (c *Context) Curvature(name string) (unit.Curvature, error) {
	f, err := c.Float(name)
	if err != nil {
		return 0, err
	}
	return unit.PerMetre(f), nil
}
