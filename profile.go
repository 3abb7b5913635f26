package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/parser"
)

// ElevationProfile describes the road elevation along the reference line.
type ElevationProfile struct {
	Elevations []Elevation

	AdditionalData AdditionalData
}

func parseElevationProfile(c *parser.Context) (ElevationProfile, error) {
	var p ElevationProfile
	err := c.Match(p.AdditionalData.absorb,
		parser.Child("elevation", func(cc *parser.Context) error {
			e, err := parseElevation(cc)
			if err != nil {
				return err
			}
			p.Elevations = append(p.Elevations, e)
			return nil
		}),
	)
	if err != nil {
		return ElevationProfile{}, err
	}
	return p, nil
}

func (p *ElevationProfile) xmlAttrs() []xw.Attr { return nil }

func (p *ElevationProfile) xmlChildren(w *xw.Writer) error {
	for i := range p.Elevations {
		if err := writeElement(w, "elevation", &p.Elevations[i]); err != nil {
			return err
		}
	}
	return p.AdditionalData.write(w)
}

// Elevation is the cubic elev(ds) = a + b*ds + c*ds^2 + d*ds^3 that applies
// from s until the next elevation entry.
type Elevation struct {
	A float64
	B float64
	C float64
	D float64
	S float64
}

func parseElevation(c *parser.Context) (Elevation, error) {
	var (
		e   Elevation
		err error
	)
	if e.A, err = c.Float("a"); err != nil {
		return Elevation{}, err
	}
	if e.B, err = c.Float("b"); err != nil {
		return Elevation{}, err
	}
	if e.C, err = c.Float("c"); err != nil {
		return Elevation{}, err
	}
	if e.D, err = c.Float("d"); err != nil {
		return Elevation{}, err
	}
	if e.S, err = c.Float("s"); err != nil {
		return Elevation{}, err
	}
	return e, nil
}

func (e *Elevation) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", e.A)
	a.float("b", e.B)
	a.float("c", e.C)
	a.float("d", e.D)
	a.float("s", e.S)
	return a
}

func (e *Elevation) xmlChildren(*xw.Writer) error { return nil }

// LateralProfile describes the road banking and surface shape along the
// reference line.
type LateralProfile struct {
	SuperElevations []SuperElevation
	Shapes          []Shape

	AdditionalData AdditionalData
}

func parseLateralProfile(c *parser.Context) (LateralProfile, error) {
	var p LateralProfile
	err := c.Match(p.AdditionalData.absorb,
		parser.Child("superelevation", func(cc *parser.Context) error {
			s, err := parseSuperElevation(cc)
			if err != nil {
				return err
			}
			p.SuperElevations = append(p.SuperElevations, s)
			return nil
		}),
		parser.Child("shape", func(cc *parser.Context) error {
			s, err := parseShape(cc)
			if err != nil {
				return err
			}
			p.Shapes = append(p.Shapes, s)
			return nil
		}),
	)
	if err != nil {
		return LateralProfile{}, err
	}
	return p, nil
}

func (p *LateralProfile) xmlAttrs() []xw.Attr { return nil }

func (p *LateralProfile) xmlChildren(w *xw.Writer) error {
	for i := range p.SuperElevations {
		if err := writeElement(w, "superelevation", &p.SuperElevations[i]); err != nil {
			return err
		}
	}
	for i := range p.Shapes {
		if err := writeElement(w, "shape", &p.Shapes[i]); err != nil {
			return err
		}
	}
	return p.AdditionalData.write(w)
}

// SuperElevation is the banking angle polynomial that applies from s until
// the next superelevation entry.
type SuperElevation struct {
	A float64
	B float64
	C float64
	D float64
	S float64
}

func parseSuperElevation(c *parser.Context) (SuperElevation, error) {
	var (
		e   SuperElevation
		err error
	)
	if e.A, err = c.Float("a"); err != nil {
		return SuperElevation{}, err
	}
	if e.B, err = c.Float("b"); err != nil {
		return SuperElevation{}, err
	}
	if e.C, err = c.Float("c"); err != nil {
		return SuperElevation{}, err
	}
	if e.D, err = c.Float("d"); err != nil {
		return SuperElevation{}, err
	}
	if e.S, err = c.Float("s"); err != nil {
		return SuperElevation{}, err
	}
	return e, nil
}

func (e *SuperElevation) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", e.A)
	a.float("b", e.B)
	a.float("c", e.C)
	a.float("d", e.D)
	a.float("s", e.S)
	return a
}

func (e *SuperElevation) xmlChildren(*xw.Writer) error { return nil }

// Shape is a lateral surface polynomial at reference-line position s and
// lateral position t.
type Shape struct {
	A float64
	B float64
	C float64
	D float64
	S float64
	T float64
}

func parseShape(c *parser.Context) (Shape, error) {
	var (
		sh  Shape
		err error
	)
	if sh.A, err = c.Float("a"); err != nil {
		return Shape{}, err
	}
	if sh.B, err = c.Float("b"); err != nil {
		return Shape{}, err
	}
	if sh.C, err = c.Float("c"); err != nil {
		return Shape{}, err
	}
	if sh.D, err = c.Float("d"); err != nil {
		return Shape{}, err
	}
	if sh.S, err = c.Float("s"); err != nil {
		return Shape{}, err
	}
	if sh.T, err = c.Float("t"); err != nil {
		return Shape{}, err
	}
	return sh, nil
}

func (sh *Shape) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", sh.A)
	a.float("b", sh.B)
	a.float("c", sh.C)
	a.float("d", sh.D)
	a.float("s", sh.S)
	a.float("t", sh.T)
	return a
}

func (sh *Shape) xmlChildren(*xw.Writer) error { return nil }
