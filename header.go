package opendrive

import (
	"time"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/unit"
)

// Header is the `<header>` element, the first child of every document. The
// date attribute is kept verbatim so documents round-trip regardless of the
// format their exporter used; DateParsed interprets the common formats.
type Header struct {
	RevMajor uint16
	RevMinor uint16
	Name     *string
	Version  *string
	Date     *string
	North    *unit.Length
	South    *unit.Length
	East     *unit.Length
	West     *unit.Length
	Vendor   *string

	GeoReference *GeoReference
	Offset       *Offset

	AdditionalData AdditionalData
}

// NewHeader returns a header for the schema revision this codec implements.
func NewHeader() Header {
	return Header{RevMajor: 1, RevMinor: 7}
}

// DateParsed interprets the date attribute, accepting the asctime-style
// format used throughout the ASAM examples ("Thu Feb  8 14:24:06 2007") and
// RFC 3339. It returns false when the date is absent or in neither format.
func (h *Header) DateParsed() (time.Time, bool) {
	if h.Date == nil {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.ANSIC, *h.Date); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, *h.Date); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func parseHeader(c *parser.Context) (Header, error) {
	var h Header
	err := c.Match(h.AdditionalData.absorb,
		parser.Child("geoReference", func(cc *parser.Context) error {
			g, err := parseGeoReference(cc)
			if err != nil {
				return err
			}
			h.GeoReference = &g
			return nil
		}),
		parser.Child("offset", func(cc *parser.Context) error {
			o, err := parseOffset(cc)
			if err != nil {
				return err
			}
			h.Offset = &o
			return nil
		}),
	)
	if err != nil {
		return Header{}, err
	}

	if h.RevMajor, err = c.Uint16("revMajor"); err != nil {
		return Header{}, err
	}
	if h.RevMinor, err = c.Uint16("revMinor"); err != nil {
		return Header{}, err
	}
	h.Name = c.StringOpt("name")
	h.Version = c.StringOpt("version")
	h.Date = c.StringOpt("date")
	if h.North, err = c.LengthOpt("north"); err != nil {
		return Header{}, err
	}
	if h.South, err = c.LengthOpt("south"); err != nil {
		return Header{}, err
	}
	if h.East, err = c.LengthOpt("east"); err != nil {
		return Header{}, err
	}
	if h.West, err = c.LengthOpt("west"); err != nil {
		return Header{}, err
	}
	h.Vendor = c.StringOpt("vendor")
	return h, nil
}

func (h *Header) xmlAttrs() []xw.Attr {
	var a attrs
	a.uint16("revMajor", h.RevMajor)
	a.uint16("revMinor", h.RevMinor)
	a.strOpt("name", h.Name)
	a.strOpt("version", h.Version)
	a.strOpt("date", h.Date)
	a.lengthOpt("north", h.North)
	a.lengthOpt("south", h.South)
	a.lengthOpt("east", h.East)
	a.lengthOpt("west", h.West)
	a.strOpt("vendor", h.Vendor)
	return a
}

func (h *Header) xmlChildren(w *xw.Writer) error {
	if h.GeoReference != nil {
		if err := writeElement(w, "geoReference", h.GeoReference); err != nil {
			return err
		}
	}
	if h.Offset != nil {
		if err := writeElement(w, "offset", h.Offset); err != nil {
			return err
		}
	}
	return h.AdditionalData.write(w)
}

// GeoReference holds the PROJ projection string that places the inertial
// coordinate system on the earth. The payload is kept verbatim and re-emitted
// as CDATA, since projection strings may contain characters that would need
// escaping in attribute or element context.
type GeoReference struct {
	Projection string

	AdditionalData AdditionalData
}

func parseGeoReference(c *parser.Context) (GeoReference, error) {
	g := GeoReference{Projection: c.Data()}
	if err := c.Children(g.AdditionalData.absorb); err != nil {
		return GeoReference{}, err
	}
	return g, nil
}

func (g *GeoReference) xmlAttrs() []xw.Attr { return nil }

func (g *GeoReference) xmlChildren(w *xw.Writer) error {
	if g.Projection != "" {
		if err := w.Write(xw.CData{Content: g.Projection}); err != nil {
			return err
		}
	}
	return g.AdditionalData.write(w)
}

// Offset shifts the whole dataset relative to the inertial origin.
type Offset struct {
	Hdg unit.Angle
	X   unit.Length
	Y   unit.Length
	Z   unit.Length

	AdditionalData AdditionalData
}

func parseOffset(c *parser.Context) (Offset, error) {
	var o Offset
	err := c.Children(o.AdditionalData.absorb)
	if err != nil {
		return Offset{}, err
	}

	if o.Hdg, err = c.Angle("hdg"); err != nil {
		return Offset{}, err
	}
	if o.X, err = c.Length("x"); err != nil {
		return Offset{}, err
	}
	if o.Y, err = c.Length("y"); err != nil {
		return Offset{}, err
	}
	if o.Z, err = c.Length("z"); err != nil {
		return Offset{}, err
	}
	return o, nil
}

func (o *Offset) xmlAttrs() []xw.Attr {
	var a attrs
	a.angle("hdg", o.Hdg)
	a.length("x", o.X)
	a.length("y", o.Y)
	a.length("z", o.Z)
	return a
}

func (o *Offset) xmlChildren(w *xw.Writer) error {
	return o.AdditionalData.write(w)
}
