package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/unit"
)

// CrgMode selects how an OpenCRG file is attached to a road.
type CrgMode int

const (
	CrgModeGlobal CrgMode = iota
)

var crgModes = newEnumeration("CrgMode", map[CrgMode]string{
	CrgModeGlobal: "global",
})

func (m CrgMode) String() string { return crgModes.format(m) }

// ParseCrgMode parses the canonical spelling of a CrgMode.
func ParseCrgMode(s string) (CrgMode, error) { return crgModes.parse(s) }

// CrgPurpose is the physical purpose of the data in an OpenCRG file.
type CrgPurpose int

const (
	CrgPurposeElevation CrgPurpose = iota
	CrgPurposeFriction
)

var crgPurposes = newEnumeration("CrgPurpose", map[CrgPurpose]string{
	CrgPurposeElevation: "elevation",
	CrgPurposeFriction:  "friction",
})

func (p CrgPurpose) String() string { return crgPurposes.format(p) }

// ParseCrgPurpose parses the canonical spelling of a CrgPurpose.
func ParseCrgPurpose(s string) (CrgPurpose, error) { return crgPurposes.parse(s) }

// RoadSurface lists the OpenCRG files describing the road surface. The
// codec records the references; it does not read CRG data.
type RoadSurface struct {
	Crgs []RoadCrg

	AdditionalData AdditionalData
}

func parseRoadSurface(c *parser.Context) (RoadSurface, error) {
	var s RoadSurface
	err := c.Match(s.AdditionalData.absorb,
		parser.Child("CRG", func(cc *parser.Context) error {
			crg, err := parseRoadCrg(cc)
			if err != nil {
				return err
			}
			s.Crgs = append(s.Crgs, crg)
			return nil
		}),
	)
	if err != nil {
		return RoadSurface{}, err
	}
	return s, nil
}

func (s *RoadSurface) xmlAttrs() []xw.Attr { return nil }

func (s *RoadSurface) xmlChildren(w *xw.Writer) error {
	for i := range s.Crgs {
		if err := writeElement(w, "CRG", &s.Crgs[i]); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// RoadCrg references one OpenCRG file over a range of the reference line.
type RoadCrg struct {
	File        string
	HOffset     *unit.Angle
	Mode        CrgMode
	Orientation Orientation
	Purpose     *CrgPurpose
	SEnd        unit.Length
	SOffset     *unit.Length
	SStart      unit.Length
	TOffset     *unit.Length
	ZOffset     *unit.Length
	ZScale      *float64
}

func parseRoadCrg(c *parser.Context) (RoadCrg, error) {
	var (
		g   RoadCrg
		err error
	)
	if g.File, err = c.String("file"); err != nil {
		return RoadCrg{}, err
	}
	if g.HOffset, err = c.AngleOpt("hOffset"); err != nil {
		return RoadCrg{}, err
	}
	if g.Mode, err = enumAttr(c, "mode", crgModes); err != nil {
		return RoadCrg{}, err
	}
	if g.Orientation, err = enumAttr(c, "orientation", orientations); err != nil {
		return RoadCrg{}, err
	}
	if g.Purpose, err = enumAttrOpt(c, "purpose", crgPurposes); err != nil {
		return RoadCrg{}, err
	}
	if g.SEnd, err = c.Length("sEnd"); err != nil {
		return RoadCrg{}, err
	}
	if g.SOffset, err = c.LengthOpt("sOffset"); err != nil {
		return RoadCrg{}, err
	}
	if g.SStart, err = c.Length("sStart"); err != nil {
		return RoadCrg{}, err
	}
	if g.TOffset, err = c.LengthOpt("tOffset"); err != nil {
		return RoadCrg{}, err
	}
	if g.ZOffset, err = c.LengthOpt("zOffset"); err != nil {
		return RoadCrg{}, err
	}
	if g.ZScale, err = c.FloatOpt("zScale"); err != nil {
		return RoadCrg{}, err
	}
	return g, nil
}

func (g *RoadCrg) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("file", g.File)
	a.angleOpt("hOffset", g.HOffset)
	a.str("mode", g.Mode.String())
	a.str("orientation", g.Orientation.String())
	if g.Purpose != nil {
		a.str("purpose", g.Purpose.String())
	}
	a.length("sEnd", g.SEnd)
	a.lengthOpt("sOffset", g.SOffset)
	a.length("sStart", g.SStart)
	a.lengthOpt("tOffset", g.TOffset)
	a.lengthOpt("zOffset", g.ZOffset)
	a.floatOpt("zScale", g.ZScale)
	return a
}

func (g *RoadCrg) xmlChildren(*xw.Writer) error { return nil }
