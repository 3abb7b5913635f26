package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
	"github.com/jacoelho/opendrive/unit"
)

// Color is the colour of a road mark.
type Color int

const (
	ColorStandard Color = iota
	ColorBlue
	ColorGreen
	ColorRed
	ColorWhite
	ColorYellow
	ColorOrange
	ColorViolet
)

var colors = newEnumeration("Color", map[Color]string{
	ColorStandard: "standard",
	ColorBlue:     "blue",
	ColorGreen:    "green",
	ColorRed:      "red",
	ColorWhite:    "white",
	ColorYellow:   "yellow",
	ColorOrange:   "orange",
	ColorViolet:   "violet",
})

func (c Color) String() string { return colors.format(c) }

// ParseColor parses the canonical spelling of a Color.
func ParseColor(s string) (Color, error) { return colors.parse(s) }

// Weight is the weight of a road mark.
type Weight int

const (
	WeightStandard Weight = iota
	WeightBold
)

var weights = newEnumeration("Weight", map[Weight]string{
	WeightStandard: "standard",
	WeightBold:     "bold",
})

func (w Weight) String() string { return weights.format(w) }

// ParseWeight parses the canonical spelling of a Weight.
func ParseWeight(s string) (Weight, error) { return weights.parse(s) }

// LaneChange states in which direction a road mark may be crossed.
type LaneChange int

const (
	LaneChangeIncrease LaneChange = iota
	LaneChangeDecrease
	LaneChangeBoth
	LaneChangeNone
)

var laneChanges = newEnumeration("LaneChange", map[LaneChange]string{
	LaneChangeIncrease: "increase",
	LaneChangeDecrease: "decrease",
	LaneChangeBoth:     "both",
	LaneChangeNone:     "none",
})

func (l LaneChange) String() string { return laneChanges.format(l) }

// ParseLaneChange parses the canonical spelling of a LaneChange.
func ParseLaneChange(s string) (LaneChange, error) { return laneChanges.parse(s) }

// RoadMarkRule is the passing rule attached to a single road mark line.
type RoadMarkRule int

const (
	RoadMarkRuleNoPassing RoadMarkRule = iota
	RoadMarkRuleCaution
	RoadMarkRuleNone
)

var roadMarkRules = newEnumeration("RoadMarkRule", map[RoadMarkRule]string{
	RoadMarkRuleNoPassing: "no passing",
	RoadMarkRuleCaution:   "caution",
	RoadMarkRuleNone:      "none",
})

func (r RoadMarkRule) String() string { return roadMarkRules.format(r) }

// ParseRoadMarkRule parses the canonical spelling of a RoadMarkRule.
func ParseRoadMarkRule(s string) (RoadMarkRule, error) { return roadMarkRules.parse(s) }

// RoadMarkKind is the overall appearance of a road mark as named by its
// type attribute.
type RoadMarkKind int

const (
	RoadMarkKindNone RoadMarkKind = iota
	RoadMarkKindSolid
	RoadMarkKindBroken
	RoadMarkKindSolidSolid
	RoadMarkKindSolidBroken
	RoadMarkKindBrokenSolid
	RoadMarkKindBrokenBroken
	RoadMarkKindBottsDots
	RoadMarkKindGrass
	RoadMarkKindCurb
	RoadMarkKindCustom
	RoadMarkKindEdge
)

var roadMarkKinds = newEnumeration("RoadMarkKind", map[RoadMarkKind]string{
	RoadMarkKindNone:         "none",
	RoadMarkKindSolid:        "solid",
	RoadMarkKindBroken:       "broken",
	RoadMarkKindSolidSolid:   "solid solid",
	RoadMarkKindSolidBroken:  "solid broken",
	RoadMarkKindBrokenSolid:  "broken solid",
	RoadMarkKindBrokenBroken: "broken broken",
	RoadMarkKindBottsDots:    "botts dots",
	RoadMarkKindGrass:        "grass",
	RoadMarkKindCurb:         "curb",
	RoadMarkKindCustom:       "custom",
	RoadMarkKindEdge:         "edge",
})

func (k RoadMarkKind) String() string { return roadMarkKinds.format(k) }

// ParseRoadMarkKind parses the canonical spelling of a RoadMarkKind.
func ParseRoadMarkKind(s string) (RoadMarkKind, error) { return roadMarkKinds.parse(s) }

// RoadMark is the appearance of one lane border from sOffset onwards.
//
// The color attribute is required by the schema, but a known emitter
// leaves it out. With Options.AllowMissingRoadMarkColor the missing
// attribute parses as the standard colour instead of failing.
type RoadMark struct {
	Sways    []Sway
	Type     *RoadMarkType
	Explicit *Explicit

	Color      Color
	Height     *unit.Length
	LaneChange *LaneChange
	Material   *string
	SOffset    unit.Length
	Kind       RoadMarkKind
	Weight     *Weight
	Width      *unit.Length

	AdditionalData AdditionalData
}

func parseRoadMark(c *parser.Context) (RoadMark, error) {
	var m RoadMark
	err := c.Match(m.AdditionalData.absorb,
		parser.Child("sway", func(cc *parser.Context) error {
			s, err := parseSway(cc)
			if err != nil {
				return err
			}
			m.Sways = append(m.Sways, s)
			return nil
		}),
		parser.Child("type", func(cc *parser.Context) error {
			t, err := parseRoadMarkType(cc)
			if err != nil {
				return err
			}
			m.Type = &t
			return nil
		}),
		parser.Child("explicit", func(cc *parser.Context) error {
			e, err := parseExplicit(cc)
			if err != nil {
				return err
			}
			m.Explicit = &e
			return nil
		}),
	)
	if err != nil {
		return RoadMark{}, err
	}

	if c.Options().AllowMissingRoadMarkColor {
		color, err := enumAttrOpt(c, "color", colors)
		if err != nil {
			return RoadMark{}, err
		}
		if color != nil {
			m.Color = *color
		} else {
			m.Color = ColorStandard
		}
	} else {
		if m.Color, err = enumAttr(c, "color", colors); err != nil {
			return RoadMark{}, err
		}
	}
	if m.Height, err = c.LengthOpt("height"); err != nil {
		return RoadMark{}, err
	}
	if m.LaneChange, err = enumAttrOpt(c, "laneChange", laneChanges); err != nil {
		return RoadMark{}, err
	}
	m.Material = c.StringOpt("material")
	if m.SOffset, err = c.Length("sOffset"); err != nil {
		return RoadMark{}, err
	}
	if m.Kind, err = enumAttr(c, "type", roadMarkKinds); err != nil {
		return RoadMark{}, err
	}
	if m.Weight, err = enumAttrOpt(c, "weight", weights); err != nil {
		return RoadMark{}, err
	}
	if m.Width, err = c.LengthOpt("width"); err != nil {
		return RoadMark{}, err
	}
	return m, nil
}

func (m *RoadMark) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("color", m.Color.String())
	a.lengthOpt("height", m.Height)
	if m.LaneChange != nil {
		a.str("laneChange", m.LaneChange.String())
	}
	a.strOpt("material", m.Material)
	a.length("sOffset", m.SOffset)
	a.str("type", m.Kind.String())
	if m.Weight != nil {
		a.str("weight", m.Weight.String())
	}
	a.lengthOpt("width", m.Width)
	return a
}

func (m *RoadMark) xmlChildren(w *xw.Writer) error {
	for i := range m.Sways {
		if err := writeElement(w, "sway", &m.Sways[i]); err != nil {
			return err
		}
	}
	if m.Type != nil {
		if err := writeElement(w, "type", m.Type); err != nil {
			return err
		}
	}
	if m.Explicit != nil {
		if err := writeElement(w, "explicit", m.Explicit); err != nil {
			return err
		}
	}
	return m.AdditionalData.write(w)
}

// Sway moves a road mark laterally against the lane border by the cubic
// t(ds) = a + b*ds + c*ds^2 + d*ds^3 from ds onwards.
type Sway struct {
	A  float64
	B  float64
	C  float64
	D  float64
	DS float64
}

func parseSway(c *parser.Context) (Sway, error) {
	var (
		s   Sway
		err error
	)
	if s.A, err = c.Float("a"); err != nil {
		return Sway{}, err
	}
	if s.B, err = c.Float("b"); err != nil {
		return Sway{}, err
	}
	if s.C, err = c.Float("c"); err != nil {
		return Sway{}, err
	}
	if s.D, err = c.Float("d"); err != nil {
		return Sway{}, err
	}
	if s.DS, err = c.Float("d_s"); err != nil {
		return Sway{}, err
	}
	return s, nil
}

func (s *Sway) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", s.A)
	a.float("b", s.B)
	a.float("c", s.C)
	a.float("d", s.D)
	a.float("d_s", s.DS)
	return a
}

func (s *Sway) xmlChildren(*xw.Writer) error { return nil }

// RoadMarkType refines a road mark into individual lines.
type RoadMarkType struct {
	Lines nonempty.Sequence[TypeLine]
	Name  string
	Width unit.Length

	AdditionalData AdditionalData
}

func parseRoadMarkType(c *parser.Context) (RoadMarkType, error) {
	var (
		t     RoadMarkType
		lines []TypeLine
	)
	err := c.Match(t.AdditionalData.absorb,
		parser.RequiredChild("line", func(cc *parser.Context) error {
			l, err := parseTypeLine(cc)
			if err != nil {
				return err
			}
			lines = append(lines, l)
			return nil
		}),
	)
	if err != nil {
		return RoadMarkType{}, err
	}

	if t.Lines, err = nonempty.From(lines); err != nil {
		return RoadMarkType{}, errors.ElementMissing(c.Path(), "line", "RoadMarkType")
	}
	if t.Name, err = c.String("name"); err != nil {
		return RoadMarkType{}, err
	}
	if t.Width, err = c.Length("width"); err != nil {
		return RoadMarkType{}, err
	}
	return t, nil
}

func (t *RoadMarkType) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("name", t.Name)
	a.length("width", t.Width)
	return a
}

func (t *RoadMarkType) xmlChildren(w *xw.Writer) error {
	for i := range t.Lines.Slice() {
		if err := writeElement(w, "line", &t.Lines.Slice()[i]); err != nil {
			return err
		}
	}
	return t.AdditionalData.write(w)
}

// TypeLine is one line of a detailed road mark type.
type TypeLine struct {
	Color   *Color
	Length  unit.Length
	Rule    *RoadMarkRule
	SOffset unit.Length
	Space   unit.Length
	TOffset unit.Length
	Width   *unit.Length
}

func parseTypeLine(c *parser.Context) (TypeLine, error) {
	var (
		l   TypeLine
		err error
	)
	if l.Color, err = enumAttrOpt(c, "color", colors); err != nil {
		return TypeLine{}, err
	}
	if l.Length, err = c.Length("length"); err != nil {
		return TypeLine{}, err
	}
	if l.Rule, err = enumAttrOpt(c, "rule", roadMarkRules); err != nil {
		return TypeLine{}, err
	}
	if l.SOffset, err = c.Length("sOffset"); err != nil {
		return TypeLine{}, err
	}
	if l.Space, err = c.Length("space"); err != nil {
		return TypeLine{}, err
	}
	if l.TOffset, err = c.Length("tOffset"); err != nil {
		return TypeLine{}, err
	}
	if l.Width, err = c.LengthOpt("width"); err != nil {
		return TypeLine{}, err
	}
	return l, nil
}

func (l *TypeLine) xmlAttrs() []xw.Attr {
	var a attrs
	if l.Color != nil {
		a.str("color", l.Color.String())
	}
	a.length("length", l.Length)
	if l.Rule != nil {
		a.str("rule", l.Rule.String())
	}
	a.length("sOffset", l.SOffset)
	a.length("space", l.Space)
	a.length("tOffset", l.TOffset)
	a.lengthOpt("width", l.Width)
	return a
}

func (l *TypeLine) xmlChildren(*xw.Writer) error { return nil }

// Explicit details irregular road marks as individual line segments.
type Explicit struct {
	Lines nonempty.Sequence[ExplicitLine]

	AdditionalData AdditionalData
}

func parseExplicit(c *parser.Context) (Explicit, error) {
	var (
		e     Explicit
		lines []ExplicitLine
	)
	err := c.Match(e.AdditionalData.absorb,
		parser.RequiredChild("line", func(cc *parser.Context) error {
			l, err := parseExplicitLine(cc)
			if err != nil {
				return err
			}
			lines = append(lines, l)
			return nil
		}),
	)
	if err != nil {
		return Explicit{}, err
	}

	if e.Lines, err = nonempty.From(lines); err != nil {
		return Explicit{}, errors.ElementMissing(c.Path(), "line", "Explicit")
	}
	return e, nil
}

func (e *Explicit) xmlAttrs() []xw.Attr { return nil }

func (e *Explicit) xmlChildren(w *xw.Writer) error {
	for i := range e.Lines.Slice() {
		if err := writeElement(w, "line", &e.Lines.Slice()[i]); err != nil {
			return err
		}
	}
	return e.AdditionalData.write(w)
}

// ExplicitLine is one segment of an explicit road mark.
type ExplicitLine struct {
	Length  unit.Length
	Rule    *RoadMarkRule
	SOffset unit.Length
	TOffset unit.Length
	Width   *unit.Length
}

func parseExplicitLine(c *parser.Context) (ExplicitLine, error) {
	var (
		l   ExplicitLine
		err error
	)
	if l.Length, err = c.Length("length"); err != nil {
		return ExplicitLine{}, err
	}
	if l.Rule, err = enumAttrOpt(c, "rule", roadMarkRules); err != nil {
		return ExplicitLine{}, err
	}
	if l.SOffset, err = c.Length("sOffset"); err != nil {
		return ExplicitLine{}, err
	}
	if l.TOffset, err = c.Length("tOffset"); err != nil {
		return ExplicitLine{}, err
	}
	if l.Width, err = c.LengthOpt("width"); err != nil {
		return ExplicitLine{}, err
	}
	return l, nil
}

func (l *ExplicitLine) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("length", l.Length)
	if l.Rule != nil {
		a.str("rule", l.Rule.String())
	}
	a.length("sOffset", l.SOffset)
	a.length("tOffset", l.TOffset)
	a.lengthOpt("width", l.Width)
	return a
}

func (l *ExplicitLine) xmlChildren(*xw.Writer) error { return nil }
