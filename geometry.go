package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
	"github.com/jacoelho/opendrive/unit"
)

// PlanView carries the geometries that define the road reference line in
// the xy plane. A road has at least one geometry.
type PlanView struct {
	Geometries nonempty.Sequence[Geometry]

	AdditionalData AdditionalData
}

func parsePlanView(c *parser.Context) (PlanView, error) {
	var (
		p          PlanView
		geometries []Geometry
	)
	err := c.Match(p.AdditionalData.absorb,
		parser.Child("geometry", func(cc *parser.Context) error {
			g, err := parseGeometry(cc)
			if err != nil {
				return err
			}
			geometries = append(geometries, g)
			return nil
		}),
	)
	if err != nil {
		return PlanView{}, err
	}

	if p.Geometries, err = nonempty.From(geometries); err != nil {
		return PlanView{}, errors.ElementMissing(c.Path(), "geometry", "PlanView")
	}
	return p, nil
}

func (p *PlanView) xmlAttrs() []xw.Attr { return nil }

func (p *PlanView) xmlChildren(w *xw.Writer) error {
	for i := range p.Geometries.Slice() {
		if err := writeElement(w, "geometry", &p.Geometries.Slice()[i]); err != nil {
			return err
		}
	}
	return p.AdditionalData.write(w)
}

// GeometryKind is the curve type of a geometry: exactly one of Line,
// Spiral, Arc, Poly3 or ParamPoly3.
type GeometryKind interface {
	isGeometryKind()
}

// Geometry places one curve segment of the reference line, starting at
// (x, y) with heading hdg at reference-line position s.
type Geometry struct {
	Hdg    unit.Angle
	Length unit.Length
	S      unit.Length
	X      unit.Length
	Y      unit.Length
	Kind   GeometryKind

	AdditionalData AdditionalData
}

func parseGeometry(c *parser.Context) (Geometry, error) {
	var g Geometry
	err := c.Match(g.AdditionalData.absorb,
		parser.Child("line", func(cc *parser.Context) error {
			v, err := parseLine(cc)
			if err != nil {
				return err
			}
			g.Kind = v
			return nil
		}),
		parser.Child("spiral", func(cc *parser.Context) error {
			v, err := parseSpiral(cc)
			if err != nil {
				return err
			}
			g.Kind = v
			return nil
		}),
		parser.Child("arc", func(cc *parser.Context) error {
			v, err := parseArc(cc)
			if err != nil {
				return err
			}
			g.Kind = v
			return nil
		}),
		parser.Child("poly3", func(cc *parser.Context) error {
			v, err := parsePoly3(cc)
			if err != nil {
				return err
			}
			g.Kind = v
			return nil
		}),
		parser.Child("paramPoly3", func(cc *parser.Context) error {
			v, err := parseParamPoly3(cc)
			if err != nil {
				return err
			}
			g.Kind = v
			return nil
		}),
	)
	if err != nil {
		return Geometry{}, err
	}
	if g.Kind == nil {
		return Geometry{}, errors.ElementMissing(c.Path(), "line|spiral|arc|poly3|paramPoly3", "GeometryKind")
	}

	if g.Hdg, err = c.Angle("hdg"); err != nil {
		return Geometry{}, err
	}
	if g.Length, err = c.Length("length"); err != nil {
		return Geometry{}, err
	}
	if g.S, err = c.Length("s"); err != nil {
		return Geometry{}, err
	}
	if g.X, err = c.Length("x"); err != nil {
		return Geometry{}, err
	}
	if g.Y, err = c.Length("y"); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

func (g *Geometry) xmlAttrs() []xw.Attr {
	var a attrs
	a.angle("hdg", g.Hdg)
	a.length("length", g.Length)
	a.length("s", g.S)
	a.length("x", g.X)
	a.length("y", g.Y)
	return a
}

func (g *Geometry) xmlChildren(w *xw.Writer) error {
	var err error
	switch k := g.Kind.(type) {
	case Line:
		err = writeElement(w, "line", k)
	case Spiral:
		err = writeElement(w, "spiral", k)
	case Arc:
		err = writeElement(w, "arc", k)
	case Poly3:
		err = writeElement(w, "poly3", k)
	case ParamPoly3:
		err = writeElement(w, "paramPoly3", k)
	}
	if err != nil {
		return err
	}
	return g.AdditionalData.write(w)
}

// Line is a straight segment.
type Line struct{}

func (Line) isGeometryKind() {}

func parseLine(*parser.Context) (Line, error) { return Line{}, nil }

func (Line) xmlAttrs() []xw.Attr          { return nil }
func (Line) xmlChildren(*xw.Writer) error { return nil }

// Spiral is a clothoid whose curvature changes linearly from CurvStart to
// CurvEnd over the segment length.
type Spiral struct {
	CurvStart unit.Curvature
	CurvEnd   unit.Curvature
}

func (Spiral) isGeometryKind() {}

func parseSpiral(c *parser.Context) (Spiral, error) {
	var (
		s   Spiral
		err error
	)
	if s.CurvStart, err = c.Curvature("curvStart"); err != nil {
		return Spiral{}, err
	}
	if s.CurvEnd, err = c.Curvature("curvEnd"); err != nil {
		return Spiral{}, err
	}
	return s, nil
}

func (s Spiral) xmlAttrs() []xw.Attr {
	var a attrs
	a.curvature("curvStart", s.CurvStart)
	a.curvature("curvEnd", s.CurvEnd)
	return a
}

func (Spiral) xmlChildren(*xw.Writer) error { return nil }

// Arc is a segment of constant curvature.
type Arc struct {
	Curvature unit.Curvature
}

func (Arc) isGeometryKind() {}

func parseArc(c *parser.Context) (Arc, error) {
	var (
		a   Arc
		err error
	)
	if a.Curvature, err = c.Curvature("curvature"); err != nil {
		return Arc{}, err
	}
	return a, nil
}

func (a Arc) xmlAttrs() []xw.Attr {
	var as attrs
	as.curvature("curvature", a.Curvature)
	return as
}

func (Arc) xmlChildren(*xw.Writer) error { return nil }

// Poly3 is a cubic polynomial v = a + b*u + c*u^2 + d*u^3 in the local
// u/v frame of the segment.
type Poly3 struct {
	A float64
	B float64
	C float64
	D float64
}

func (Poly3) isGeometryKind() {}

func parsePoly3(c *parser.Context) (Poly3, error) {
	var (
		p   Poly3
		err error
	)
	if p.A, err = c.Float("a"); err != nil {
		return Poly3{}, err
	}
	if p.B, err = c.Float("b"); err != nil {
		return Poly3{}, err
	}
	if p.C, err = c.Float("c"); err != nil {
		return Poly3{}, err
	}
	if p.D, err = c.Float("d"); err != nil {
		return Poly3{}, err
	}
	return p, nil
}

func (p Poly3) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", p.A)
	a.float("b", p.B)
	a.float("c", p.C)
	a.float("d", p.D)
	return a
}

func (Poly3) xmlChildren(*xw.Writer) error { return nil }

// PRange gives the interpretation of the p parameter of a ParamPoly3.
type PRange int

const (
	PRangeArcLength PRange = iota
	PRangeNormalized
)

var pRanges = newEnumeration("PRange", map[PRange]string{
	PRangeArcLength:  "arcLength",
	PRangeNormalized: "normalized",
})

func (p PRange) String() string { return pRanges.format(p) }

// ParsePRange parses the canonical spelling of a PRange.
func ParsePRange(s string) (PRange, error) { return pRanges.parse(s) }

// ParamPoly3 is a parametric cubic, u and v each a cubic polynomial over
// the parameter p.
type ParamPoly3 struct {
	AU     float64
	AV     float64
	BU     float64
	BV     float64
	CU     float64
	CV     float64
	DU     float64
	DV     float64
	PRange PRange
}

func (ParamPoly3) isGeometryKind() {}

func parseParamPoly3(c *parser.Context) (ParamPoly3, error) {
	var (
		p   ParamPoly3
		err error
	)
	if p.AU, err = c.Float("aU"); err != nil {
		return ParamPoly3{}, err
	}
	if p.AV, err = c.Float("aV"); err != nil {
		return ParamPoly3{}, err
	}
	if p.BU, err = c.Float("bU"); err != nil {
		return ParamPoly3{}, err
	}
	if p.BV, err = c.Float("bV"); err != nil {
		return ParamPoly3{}, err
	}
	if p.CU, err = c.Float("cU"); err != nil {
		return ParamPoly3{}, err
	}
	if p.CV, err = c.Float("cV"); err != nil {
		return ParamPoly3{}, err
	}
	if p.DU, err = c.Float("dU"); err != nil {
		return ParamPoly3{}, err
	}
	if p.DV, err = c.Float("dV"); err != nil {
		return ParamPoly3{}, err
	}
	if p.PRange, err = enumAttr(c, "pRange", pRanges); err != nil {
		return ParamPoly3{}, err
	}
	return p, nil
}

func (p ParamPoly3) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("aU", p.AU)
	a.float("aV", p.AV)
	a.float("bU", p.BU)
	a.float("bV", p.BV)
	a.float("cU", p.CU)
	a.float("cV", p.CV)
	a.float("dU", p.DU)
	a.float("dV", p.DV)
	a.str("pRange", p.PRange.String())
	return a
}

func (ParamPoly3) xmlChildren(*xw.Writer) error { return nil }
