// Package opendrive reads and writes ASAM OpenDRIVE 1.7 road network
// descriptions. Documents parse into a typed value tree and emit back to
// XML that round-trips within the format's floating point representation.
package opendrive

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muktihari/xmltokenizer"
	pkgerrors "github.com/pkg/errors"
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
)

// Options are parse-time tolerances.
type Options struct {
	// AllowMissingRoadMarkColor accepts `<roadMark>` elements without the
	// required color attribute, defaulting the color to "standard". Some
	// exporters (notably SUMO's netconvert) omit it.
	AllowMissingRoadMarkColor bool

	// RejectUnknownAdditionalData fails the parse when an element that
	// permits extension data carries a child element that is none of
	// dataQuality, include or userData. The default is to preserve such
	// children and write them back out unchanged.
	RejectUnknownAdditionalData bool
}

func (o Options) parser() parser.Options {
	return parser.Options{
		AllowMissingRoadMarkColor:   o.AllowMissingRoadMarkColor,
		RejectUnknownAdditionalData: o.RejectUnknownAdditionalData,
	}
}

// OpenDrive is a complete OpenDRIVE document.
type OpenDrive struct {
	Header         Header
	Roads          []Road
	Controllers    []Controller
	Junctions      []Junction
	JunctionGroups []JunctionGroup
	Stations       []Station

	AdditionalData AdditionalData
}

// FromXMLString parses an OpenDRIVE document from a string.
func FromXMLString(s string) (*OpenDrive, error) {
	return FromXMLStringWithOptions(s, Options{})
}

// FromXMLStringWithOptions parses an OpenDRIVE document from a string with
// the given tolerances.
func FromXMLStringWithOptions(s string, opts Options) (*OpenDrive, error) {
	return FromReaderWithOptions(strings.NewReader(strings.TrimSpace(s)), opts)
}

// FromReader parses an OpenDRIVE document from r.
func FromReader(r io.Reader) (*OpenDrive, error) {
	return FromReaderWithOptions(r, Options{})
}

// FromReaderWithOptions parses an OpenDRIVE document from r with the given
// tolerances.
func FromReaderWithOptions(r io.Reader, opts Options) (*OpenDrive, error) {
	tok := xmltokenizer.New(r)
	doc := parser.NewDocument(tok, opts.parser())

	var drive *OpenDrive
	err := doc.Match(nil,
		parser.RequiredChild("OpenDRIVE", func(cc *parser.Context) error {
			d, err := parseOpenDrive(cc)
			if err != nil {
				return err
			}
			drive = &d
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return drive, nil
}

func parseOpenDrive(c *parser.Context) (OpenDrive, error) {
	var d OpenDrive
	err := c.Match(d.AdditionalData.absorb,
		parser.RequiredChild("header", func(cc *parser.Context) error {
			h, err := parseHeader(cc)
			if err != nil {
				return err
			}
			d.Header = h
			return nil
		}),
		parser.Child("road", func(cc *parser.Context) error {
			v, err := parseRoad(cc)
			if err != nil {
				return err
			}
			d.Roads = append(d.Roads, v)
			return nil
		}),
		parser.Child("controller", func(cc *parser.Context) error {
			v, err := parseController(cc)
			if err != nil {
				return err
			}
			d.Controllers = append(d.Controllers, v)
			return nil
		}),
		parser.Child("junction", func(cc *parser.Context) error {
			v, err := parseJunction(cc)
			if err != nil {
				return err
			}
			d.Junctions = append(d.Junctions, v)
			return nil
		}),
		parser.Child("junctionGroup", func(cc *parser.Context) error {
			v, err := parseJunctionGroup(cc)
			if err != nil {
				return err
			}
			d.JunctionGroups = append(d.JunctionGroups, v)
			return nil
		}),
		parser.Child("station", func(cc *parser.Context) error {
			v, err := parseStation(cc)
			if err != nil {
				return err
			}
			d.Stations = append(d.Stations, v)
			return nil
		}),
	)
	if err != nil {
		return OpenDrive{}, err
	}
	return d, nil
}

func (d *OpenDrive) xmlAttrs() []xw.Attr { return nil }

func (d *OpenDrive) xmlChildren(w *xw.Writer) error {
	if err := writeElement(w, "header", &d.Header); err != nil {
		return err
	}
	for i := range d.Roads {
		if err := writeElement(w, "road", &d.Roads[i]); err != nil {
			return err
		}
	}
	for i := range d.Controllers {
		if err := writeElement(w, "controller", &d.Controllers[i]); err != nil {
			return err
		}
	}
	for i := range d.Junctions {
		if err := writeElement(w, "junction", &d.Junctions[i]); err != nil {
			return err
		}
	}
	for i := range d.JunctionGroups {
		if err := writeElement(w, "junctionGroup", &d.JunctionGroups[i]); err != nil {
			return err
		}
	}
	for i := range d.Stations {
		if err := writeElement(w, "station", &d.Stations[i]); err != nil {
			return err
		}
	}
	return d.AdditionalData.write(w)
}

// WriteXML writes the document to w as an XML file with a standalone
// declaration.
func (d *OpenDrive) WriteXML(w io.Writer) error {
	xwr := xw.Open(w)
	if err := xwr.Write(xw.Raw(`<?xml version="1.0" standalone="yes"?>` + "\n")); err != nil {
		return pkgerrors.Wrap(err, "write declaration")
	}
	if err := writeElement(xwr, "OpenDRIVE", d); err != nil {
		return err
	}
	if err := xwr.Flush(); err != nil {
		return pkgerrors.Wrap(err, "flush document")
	}
	return nil
}

// ToXMLString renders the document as an XML string.
func (d *OpenDrive) ToXMLString() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteXML(&buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errors.UTF8()
	}
	return buf.String(), nil
}
