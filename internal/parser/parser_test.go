package parser

import (
	"strings"
	"testing"

	"github.com/muktihari/xmltokenizer"

	"github.com/jacoelho/opendrive/errors"
)

func openElement(t *testing.T, doc string) *Context {
	t.Helper()

	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	var elem *Context
	err := root.Children(func(name string, child *Context) error {
		if elem == nil {
			elem = child
			// Consume here so the child survives past the callback.
			return child.Children(func(string, *Context) error { return nil })
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}
	if elem == nil {
		t.Fatalf("no element found in %q", doc)
	}
	return elem
}

func TestAttributeLookup(t *testing.T) {
	c := openElement(t, `<road id="12" length="1.5e+01" junction="-1"/>`)

	id, err := c.String("id")
	if err != nil {
		t.Fatalf("String(id) error = %v", err)
	}
	if id != "12" {
		t.Errorf("String(id) = %q, want %q", id, "12")
	}

	length, err := c.Float("length")
	if err != nil {
		t.Fatalf("Float(length) error = %v", err)
	}
	if length != 15 {
		t.Errorf("Float(length) = %v, want 15", length)
	}

	if got := c.StringOpt("name"); got != nil {
		t.Errorf("StringOpt(name) = %q, want nil", *got)
	}
}

func TestAttributeNameCaseInsensitive(t *testing.T) {
	c := openElement(t, `<road Id="12"/>`)

	id, err := c.String("id")
	if err != nil {
		t.Fatalf("String(id) error = %v", err)
	}
	if id != "12" {
		t.Errorf("String(id) = %q, want %q", id, "12")
	}
}

func TestAttributeMissing(t *testing.T) {
	c := openElement(t, `<road id="12"/>`)

	_, err := c.Float("length")
	if !errors.IsCode(err, errors.CodeAttributeMissing) {
		t.Fatalf("Float(length) error = %v, want attribute-missing", err)
	}
	e, _ := errors.AsError(err)
	if e.Path != "road" {
		t.Errorf("Path = %q, want %q", e.Path, "road")
	}
	if e.Field != "length" {
		t.Errorf("Field = %q, want %q", e.Field, "length")
	}
}

func TestAttributeParseFailure(t *testing.T) {
	c := openElement(t, `<road length="abc" id="x" flag="maybe"/>`)

	_, err := c.Float("length")
	if !errors.IsCode(err, errors.CodeParse) {
		t.Fatalf("Float(length) error = %v, want parse-error", err)
	}
	e, _ := errors.AsError(err)
	if e.Kind != errors.ParseFloat {
		t.Errorf("Kind = %q, want %q", e.Kind, errors.ParseFloat)
	}

	_, err = c.Int64("id")
	if !errors.IsCode(err, errors.CodeParse) {
		t.Fatalf("Int64(id) error = %v, want parse-error", err)
	}

	_, err = c.Bool("flag")
	if !errors.IsCode(err, errors.CodeParse) {
		t.Fatalf("Bool(flag) error = %v, want parse-error", err)
	}
}

func TestYesNo(t *testing.T) {
	c := openElement(t, `<object dynamic="YES" frozen="no"/>`)

	v, err := c.YesNo("dynamic")
	if err != nil {
		t.Fatalf("YesNo(dynamic) error = %v", err)
	}
	if !v {
		t.Errorf("YesNo(dynamic) = false, want true")
	}

	f := c.YesNoOpt("frozen")
	if f == nil || *f {
		t.Errorf("YesNoOpt(frozen) = %v, want false", f)
	}
	if got := c.YesNoOpt("absent"); got != nil {
		t.Errorf("YesNoOpt(absent) = %v, want nil", *got)
	}
}

func TestChildrenDispatchAndPath(t *testing.T) {
	doc := `<a><b/><c x="1"><d/></c><b/></a>`
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	var names []string
	var paths []string
	err := root.Children(func(name string, a *Context) error {
		return a.Children(func(name string, child *Context) error {
			names = append(names, name)
			paths = append(paths, child.Path())
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}

	wantNames := []string{"b", "c", "b"}
	wantPaths := []string{"a.b", "a.c", "a.b"}
	if strings.Join(names, ",") != strings.Join(wantNames, ",") {
		t.Errorf("names = %v, want %v", names, wantNames)
	}
	if strings.Join(paths, ",") != strings.Join(wantPaths, ",") {
		t.Errorf("paths = %v, want %v", paths, wantPaths)
	}
}

func TestUnreadChildrenAreSkipped(t *testing.T) {
	// The handler for <skip> ignores its deeply nested children, including
	// a nested element of the same name; the next sibling must still be
	// delivered.
	doc := `<a><skip><skip><x/></skip><y/></skip><after/></a>`
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	var names []string
	err := root.Children(func(name string, a *Context) error {
		return a.Children(func(name string, child *Context) error {
			names = append(names, name)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}

	want := "skip,after"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("names = %q, want %q", got, want)
	}
}

func TestMatchRequiredChild(t *testing.T) {
	doc := `<road><planView/></road>`
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	err := root.Children(func(name string, road *Context) error {
		return road.Match(nil,
			RequiredChild("planView", func(*Context) error { return nil }),
			RequiredChild("lanes", func(*Context) error { return nil }),
		)
	})
	if !errors.IsCode(err, errors.CodeElementMissing) {
		t.Fatalf("Match() error = %v, want element-missing", err)
	}
	e, _ := errors.AsError(err)
	if e.Path != "road" {
		t.Errorf("Path = %q, want %q", e.Path, "road")
	}
	if e.Field != "lanes" {
		t.Errorf("Field = %q, want %q", e.Field, "lanes")
	}
}

func TestMatchElementNameCaseInsensitive(t *testing.T) {
	doc := `<junction><Connection id="0"/></junction>`
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	matched := false
	err := root.Children(func(name string, junction *Context) error {
		return junction.Match(nil,
			RequiredChild("connection", func(*Context) error {
				matched = true
				return nil
			}),
		)
	})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if !matched {
		t.Errorf("connection arm did not fire for <Connection>")
	}
}

func TestCharacterDataCapture(t *testing.T) {
	doc := `<header><geoReference><![CDATA[+proj=utm +zone=32]]></geoReference></header>`
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	var data string
	err := root.Children(func(name string, header *Context) error {
		return header.Children(func(name string, child *Context) error {
			data = child.Data()
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}
	if want := "+proj=utm +zone=32"; data != want {
		t.Errorf("Data() = %q, want %q", data, want)
	}
}

func TestDeclarationAndCommentsIgnored(t *testing.T) {
	doc := "<?xml version=\"1.0\" standalone=\"yes\"?>\n<!-- note -->\n<a><b/></a>"
	tok := xmltokenizer.New(strings.NewReader(doc))
	root := NewDocument(tok, Options{})

	var top []string
	err := root.Children(func(name string, child *Context) error {
		top = append(top, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}
	if want := "a"; strings.Join(top, ",") != want {
		t.Errorf("top-level elements = %v, want [%s]", top, want)
	}
}
