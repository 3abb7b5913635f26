package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/internal/scientific"
	"github.com/jacoelho/opendrive/unit"
)

// Signals carries the signals placed along a road.
type Signals struct {
	Signals          []Signal
	SignalReferences []SignalReference

	AdditionalData AdditionalData
}

func parseSignals(c *parser.Context) (Signals, error) {
	var s Signals
	err := c.Match(s.AdditionalData.absorb,
		parser.Child("signal", func(cc *parser.Context) error {
			v, err := parseSignal(cc)
			if err != nil {
				return err
			}
			s.Signals = append(s.Signals, v)
			return nil
		}),
		parser.Child("signalReference", func(cc *parser.Context) error {
			v, err := parseSignalReference(cc)
			if err != nil {
				return err
			}
			s.SignalReferences = append(s.SignalReferences, v)
			return nil
		}),
	)
	if err != nil {
		return Signals{}, err
	}
	return s, nil
}

func (s *Signals) xmlAttrs() []xw.Attr { return nil }

func (s *Signals) xmlChildren(w *xw.Writer) error {
	for i := range s.Signals {
		if err := writeElement(w, "signal", &s.Signals[i]); err != nil {
			return err
		}
	}
	for i := range s.SignalReferences {
		if err := writeElement(w, "signalReference", &s.SignalReferences[i]); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// Position overrides the computed pose of a signal: either inertial
// coordinates or coordinates on another road.
type Position interface {
	isPosition()
}

// Signal is a traffic sign, traffic light or similar along the road.
type Signal struct {
	Validities   []LaneValidity
	Dependencies []Dependency
	References   []Reference
	Position     Position

	Country         CountryCode
	CountryRevision *string
	Dynamic         bool
	Height          *unit.Length
	HOffset         *unit.Length
	ID              string
	Name            *string
	Orientation     Orientation
	Pitch           *unit.Angle
	Roll            *unit.Angle
	S               unit.Length
	Subtype         string
	T               unit.Length
	Text            *string
	Type            string
	Unit            Unit
	Value           *float64
	Width           *unit.Length
	ZOffset         unit.Length

	AdditionalData AdditionalData
}

func parseSignal(c *parser.Context) (Signal, error) {
	var s Signal
	err := c.Match(s.AdditionalData.absorb,
		parser.Child("validity", func(cc *parser.Context) error {
			v, err := parseLaneValidity(cc)
			if err != nil {
				return err
			}
			s.Validities = append(s.Validities, v)
			return nil
		}),
		parser.Child("dependency", func(cc *parser.Context) error {
			v, err := parseDependency(cc)
			if err != nil {
				return err
			}
			s.Dependencies = append(s.Dependencies, v)
			return nil
		}),
		parser.Child("reference", func(cc *parser.Context) error {
			v, err := parseReference(cc)
			if err != nil {
				return err
			}
			s.References = append(s.References, v)
			return nil
		}),
		parser.Child("positionInertial", func(cc *parser.Context) error {
			v, err := parsePositionInertial(cc)
			if err != nil {
				return err
			}
			s.Position = v
			return nil
		}),
		parser.Child("positionRoad", func(cc *parser.Context) error {
			v, err := parsePositionRoad(cc)
			if err != nil {
				return err
			}
			s.Position = v
			return nil
		}),
	)
	if err != nil {
		return Signal{}, err
	}

	if country := c.StringOpt("country"); country != nil {
		if s.Country, err = ParseCountryCode(*country); err != nil {
			return Signal{}, err
		}
	}
	s.CountryRevision = c.StringOpt("countryRevision")
	if s.Dynamic, err = c.YesNo("dynamic"); err != nil {
		return Signal{}, err
	}
	if s.Height, err = c.LengthOpt("height"); err != nil {
		return Signal{}, err
	}
	if s.HOffset, err = c.LengthOpt("hOffset"); err != nil {
		return Signal{}, err
	}
	if s.ID, err = c.String("id"); err != nil {
		return Signal{}, err
	}
	s.Name = c.StringOpt("name")
	if s.Orientation, err = enumAttr(c, "orientation", orientations); err != nil {
		return Signal{}, err
	}
	if s.Pitch, err = c.AngleOpt("pitch"); err != nil {
		return Signal{}, err
	}
	if s.Roll, err = c.AngleOpt("roll"); err != nil {
		return Signal{}, err
	}
	if s.S, err = c.Length("s"); err != nil {
		return Signal{}, err
	}
	if s.Subtype, err = c.String("subtype"); err != nil {
		return Signal{}, err
	}
	if s.T, err = c.Length("t"); err != nil {
		return Signal{}, err
	}
	s.Text = c.StringOpt("text")
	if s.Type, err = c.String("type"); err != nil {
		return Signal{}, err
	}
	if u := c.StringOpt("unit"); u != nil {
		if s.Unit, err = ParseUnit(*u); err != nil {
			return Signal{}, err
		}
	}
	if s.Value, err = c.FloatOpt("value"); err != nil {
		return Signal{}, err
	}
	if s.Width, err = c.LengthOpt("width"); err != nil {
		return Signal{}, err
	}
	if s.ZOffset, err = c.Length("zOffset"); err != nil {
		return Signal{}, err
	}
	return s, nil
}

func (s *Signal) xmlAttrs() []xw.Attr {
	var a attrs
	if s.Country != nil {
		a.str("country", s.Country.String())
	}
	a.strOpt("countryRevision", s.CountryRevision)
	a.yesNo("dynamic", s.Dynamic)
	a.lengthOpt("height", s.Height)
	a.lengthOpt("hOffset", s.HOffset)
	a.str("id", s.ID)
	a.strOpt("name", s.Name)
	a.str("orientation", s.Orientation.String())
	a.angleOpt("pitch", s.Pitch)
	a.angleOpt("roll", s.Roll)
	a.length("s", s.S)
	a.str("subtype", s.Subtype)
	a.length("t", s.T)
	a.strOpt("text", s.Text)
	a.str("type", s.Type)
	if s.Unit != nil {
		a.str("unit", s.Unit.String())
	}
	if s.Value != nil {
		a.str("value", scientific.Format(*s.Value))
	}
	a.lengthOpt("width", s.Width)
	a.length("zOffset", s.ZOffset)
	return a
}

func (s *Signal) xmlChildren(w *xw.Writer) error {
	for i := range s.Validities {
		if err := writeElement(w, "validity", &s.Validities[i]); err != nil {
			return err
		}
	}
	for i := range s.Dependencies {
		if err := writeElement(w, "dependency", &s.Dependencies[i]); err != nil {
			return err
		}
	}
	for i := range s.References {
		if err := writeElement(w, "reference", &s.References[i]); err != nil {
			return err
		}
	}
	switch p := s.Position.(type) {
	case PositionInertial:
		if err := writeElement(w, "positionInertial", &p); err != nil {
			return err
		}
	case PositionRoad:
		if err := writeElement(w, "positionRoad", &p); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// Dependency makes one signal depend on another, such as a lane light
// overridden by a variable sign.
type Dependency struct {
	ID   string
	Type *string
}

func parseDependency(c *parser.Context) (Dependency, error) {
	var (
		d   Dependency
		err error
	)
	if d.ID, err = c.String("id"); err != nil {
		return Dependency{}, err
	}
	d.Type = c.StringOpt("type")
	return d, nil
}

func (d *Dependency) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", d.ID)
	a.strOpt("type", d.Type)
	return a
}

func (d *Dependency) xmlChildren(*xw.Writer) error { return nil }

// SignalElementType names the kind of element a signal reference points
// at.
type SignalElementType int

const (
	SignalElementTypeObject SignalElementType = iota
	SignalElementTypeSignal
)

var signalElementTypes = newEnumeration("SignalElementType", map[SignalElementType]string{
	SignalElementTypeObject: "object",
	SignalElementTypeSignal: "signal",
})

func (t SignalElementType) String() string { return signalElementTypes.format(t) }

// ParseSignalElementType parses the canonical spelling of a
// SignalElementType.
func ParseSignalElementType(s string) (SignalElementType, error) {
	return signalElementTypes.parse(s)
}

// Reference links a signal to another element, such as the object it is
// mounted on.
type Reference struct {
	ElementID   string
	ElementType SignalElementType
	Type        *string
}

func parseReference(c *parser.Context) (Reference, error) {
	var (
		r   Reference
		err error
	)
	if r.ElementID, err = c.String("elementId"); err != nil {
		return Reference{}, err
	}
	if r.ElementType, err = enumAttr(c, "elementType", signalElementTypes); err != nil {
		return Reference{}, err
	}
	r.Type = c.StringOpt("type")
	return r, nil
}

func (r *Reference) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("elementId", r.ElementID)
	a.str("elementType", r.ElementType.String())
	a.strOpt("type", r.Type)
	return a
}

func (r *Reference) xmlChildren(*xw.Writer) error { return nil }

// PositionInertial places a signal at fixed inertial coordinates.
type PositionInertial struct {
	Hdg   unit.Angle
	Pitch *unit.Angle
	Roll  *unit.Angle
	X     unit.Length
	Y     unit.Length
	Z     unit.Length
}

func (PositionInertial) isPosition() {}

func parsePositionInertial(c *parser.Context) (PositionInertial, error) {
	var (
		p   PositionInertial
		err error
	)
	if p.Hdg, err = c.Angle("hdg"); err != nil {
		return PositionInertial{}, err
	}
	if p.Pitch, err = c.AngleOpt("pitch"); err != nil {
		return PositionInertial{}, err
	}
	if p.Roll, err = c.AngleOpt("roll"); err != nil {
		return PositionInertial{}, err
	}
	if p.X, err = c.Length("x"); err != nil {
		return PositionInertial{}, err
	}
	if p.Y, err = c.Length("y"); err != nil {
		return PositionInertial{}, err
	}
	if p.Z, err = c.Length("z"); err != nil {
		return PositionInertial{}, err
	}
	return p, nil
}

func (p *PositionInertial) xmlAttrs() []xw.Attr {
	var a attrs
	a.angle("hdg", p.Hdg)
	a.angleOpt("pitch", p.Pitch)
	a.angleOpt("roll", p.Roll)
	a.length("x", p.X)
	a.length("y", p.Y)
	a.length("z", p.Z)
	return a
}

func (p *PositionInertial) xmlChildren(*xw.Writer) error { return nil }

// PositionRoad places a signal relative to another road.
type PositionRoad struct {
	HOffset unit.Angle
	Pitch   *unit.Angle
	RoadID  string
	Roll    *unit.Angle
	S       unit.Length
	T       unit.Length
	ZOffset unit.Length
}

func (PositionRoad) isPosition() {}

func parsePositionRoad(c *parser.Context) (PositionRoad, error) {
	var (
		p   PositionRoad
		err error
	)
	if p.HOffset, err = c.Angle("hOffset"); err != nil {
		return PositionRoad{}, err
	}
	if p.Pitch, err = c.AngleOpt("pitch"); err != nil {
		return PositionRoad{}, err
	}
	if p.RoadID, err = c.String("roadId"); err != nil {
		return PositionRoad{}, err
	}
	if p.Roll, err = c.AngleOpt("roll"); err != nil {
		return PositionRoad{}, err
	}
	if p.S, err = c.Length("s"); err != nil {
		return PositionRoad{}, err
	}
	if p.T, err = c.Length("t"); err != nil {
		return PositionRoad{}, err
	}
	if p.ZOffset, err = c.Length("zOffset"); err != nil {
		return PositionRoad{}, err
	}
	return p, nil
}

func (p *PositionRoad) xmlAttrs() []xw.Attr {
	var a attrs
	a.angle("hOffset", p.HOffset)
	a.angleOpt("pitch", p.Pitch)
	a.str("roadId", p.RoadID)
	a.angleOpt("roll", p.Roll)
	a.length("s", p.S)
	a.length("t", p.T)
	a.length("zOffset", p.ZOffset)
	return a
}

func (p *PositionRoad) xmlChildren(*xw.Writer) error { return nil }

// SignalReference reuses a signal defined elsewhere at another position
// along the road.
type SignalReference struct {
	Validities []LaneValidity

	ID          string
	Orientation Orientation
	S           unit.Length
	T           unit.Length

	AdditionalData AdditionalData
}

func parseSignalReference(c *parser.Context) (SignalReference, error) {
	var r SignalReference
	err := c.Match(r.AdditionalData.absorb,
		parser.Child("validity", func(cc *parser.Context) error {
			v, err := parseLaneValidity(cc)
			if err != nil {
				return err
			}
			r.Validities = append(r.Validities, v)
			return nil
		}),
	)
	if err != nil {
		return SignalReference{}, err
	}

	if r.ID, err = c.String("id"); err != nil {
		return SignalReference{}, err
	}
	if r.Orientation, err = enumAttr(c, "orientation", orientations); err != nil {
		return SignalReference{}, err
	}
	if r.S, err = c.Length("s"); err != nil {
		return SignalReference{}, err
	}
	if r.T, err = c.Length("t"); err != nil {
		return SignalReference{}, err
	}
	return r, nil
}

func (r *SignalReference) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", r.ID)
	a.str("orientation", r.Orientation.String())
	a.length("s", r.S)
	a.length("t", r.T)
	return a
}

func (r *SignalReference) xmlChildren(w *xw.Writer) error {
	for i := range r.Validities {
		if err := writeElement(w, "validity", &r.Validities[i]); err != nil {
			return err
		}
	}
	return r.AdditionalData.write(w)
}
