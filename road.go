package opendrive

import (
	"strconv"
	"strings"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/internal/scientific"
	"github.com/jacoelho/opendrive/unit"
)

// TrafficRule selects the driving side of a road.
type TrafficRule int

const (
	RightHandTraffic TrafficRule = iota
	LeftHandTraffic
)

var trafficRules = newEnumeration("TrafficRule", map[TrafficRule]string{
	RightHandTraffic: "RHT",
	LeftHandTraffic:  "LHT",
})

func (r TrafficRule) String() string { return trafficRules.format(r) }

// ParseTrafficRule parses the canonical spelling of a TrafficRule.
func ParseTrafficRule(s string) (TrafficRule, error) { return trafficRules.parse(s) }

// ElementType tells whether a road link target is a road or a junction.
type ElementType int

const (
	ElementTypeRoad ElementType = iota
	ElementTypeJunction
)

var elementTypes = newEnumeration("ElementType", map[ElementType]string{
	ElementTypeRoad:     "road",
	ElementTypeJunction: "junction",
})

func (t ElementType) String() string { return elementTypes.format(t) }

// ParseElementType parses the canonical spelling of an ElementType.
func ParseElementType(s string) (ElementType, error) { return elementTypes.parse(s) }

// Road is one `<road>` element: a reference line with lanes and the
// features along it. Cross-references to other roads and junctions are
// string identifiers, never pointers; a junction value of "-1" means the
// road is not part of a junction.
type Road struct {
	ID       string
	Junction string
	Length   unit.Length
	Name     *string
	Rule     *TrafficRule

	Link             *RoadLink
	Types            []RoadType
	PlanView         PlanView
	ElevationProfile *ElevationProfile
	LateralProfile   *LateralProfile
	Lanes            Lanes
	Objects          *Objects
	Signals          *Signals
	Surface          *RoadSurface
	Railroad         *Railroad

	AdditionalData AdditionalData
}

func parseRoad(c *parser.Context) (Road, error) {
	var r Road
	err := c.Match(r.AdditionalData.absorb,
		parser.Child("link", func(cc *parser.Context) error {
			l, err := parseRoadLink(cc)
			if err != nil {
				return err
			}
			r.Link = &l
			return nil
		}),
		parser.Child("type", func(cc *parser.Context) error {
			t, err := parseRoadType(cc)
			if err != nil {
				return err
			}
			r.Types = append(r.Types, t)
			return nil
		}),
		parser.RequiredChild("planView", func(cc *parser.Context) error {
			p, err := parsePlanView(cc)
			if err != nil {
				return err
			}
			r.PlanView = p
			return nil
		}),
		parser.Child("elevationProfile", func(cc *parser.Context) error {
			p, err := parseElevationProfile(cc)
			if err != nil {
				return err
			}
			r.ElevationProfile = &p
			return nil
		}),
		parser.Child("lateralProfile", func(cc *parser.Context) error {
			p, err := parseLateralProfile(cc)
			if err != nil {
				return err
			}
			r.LateralProfile = &p
			return nil
		}),
		parser.RequiredChild("lanes", func(cc *parser.Context) error {
			l, err := parseLanes(cc)
			if err != nil {
				return err
			}
			r.Lanes = l
			return nil
		}),
		parser.Child("objects", func(cc *parser.Context) error {
			o, err := parseObjects(cc)
			if err != nil {
				return err
			}
			r.Objects = &o
			return nil
		}),
		parser.Child("signals", func(cc *parser.Context) error {
			s, err := parseSignals(cc)
			if err != nil {
				return err
			}
			r.Signals = &s
			return nil
		}),
		parser.Child("surface", func(cc *parser.Context) error {
			s, err := parseRoadSurface(cc)
			if err != nil {
				return err
			}
			r.Surface = &s
			return nil
		}),
		parser.Child("railroad", func(cc *parser.Context) error {
			rr, err := parseRailroad(cc)
			if err != nil {
				return err
			}
			r.Railroad = &rr
			return nil
		}),
	)
	if err != nil {
		return Road{}, err
	}

	if r.ID, err = c.String("id"); err != nil {
		return Road{}, err
	}
	if r.Junction, err = c.String("junction"); err != nil {
		return Road{}, err
	}
	if r.Length, err = c.Length("length"); err != nil {
		return Road{}, err
	}
	r.Name = c.StringOpt("name")
	if r.Rule, err = enumAttrOpt(c, "rule", trafficRules); err != nil {
		return Road{}, err
	}
	return r, nil
}

func (r *Road) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", r.ID)
	a.str("junction", r.Junction)
	a.length("length", r.Length)
	a.strOpt("name", r.Name)
	if r.Rule != nil {
		a.str("rule", r.Rule.String())
	}
	return a
}

func (r *Road) xmlChildren(w *xw.Writer) error {
	if r.Link != nil {
		if err := writeElement(w, "link", r.Link); err != nil {
			return err
		}
	}
	for i := range r.Types {
		if err := writeElement(w, "type", &r.Types[i]); err != nil {
			return err
		}
	}
	if err := writeElement(w, "planView", &r.PlanView); err != nil {
		return err
	}
	if r.ElevationProfile != nil {
		if err := writeElement(w, "elevationProfile", r.ElevationProfile); err != nil {
			return err
		}
	}
	if r.LateralProfile != nil {
		if err := writeElement(w, "lateralProfile", r.LateralProfile); err != nil {
			return err
		}
	}
	if err := writeElement(w, "lanes", &r.Lanes); err != nil {
		return err
	}
	if r.Objects != nil {
		if err := writeElement(w, "objects", r.Objects); err != nil {
			return err
		}
	}
	if r.Signals != nil {
		if err := writeElement(w, "signals", r.Signals); err != nil {
			return err
		}
	}
	if r.Surface != nil {
		if err := writeElement(w, "surface", r.Surface); err != nil {
			return err
		}
	}
	if r.Railroad != nil {
		if err := writeElement(w, "railroad", r.Railroad); err != nil {
			return err
		}
	}
	return r.AdditionalData.write(w)
}

// RoadLink connects a road to its predecessor and successor.
type RoadLink struct {
	Predecessor *RoadLinkTarget
	Successor   *RoadLinkTarget
}

func parseRoadLink(c *parser.Context) (RoadLink, error) {
	var l RoadLink
	err := c.Match(nil,
		parser.Child("predecessor", func(cc *parser.Context) error {
			t, err := parseRoadLinkTarget(cc)
			if err != nil {
				return err
			}
			l.Predecessor = &t
			return nil
		}),
		parser.Child("successor", func(cc *parser.Context) error {
			t, err := parseRoadLinkTarget(cc)
			if err != nil {
				return err
			}
			l.Successor = &t
			return nil
		}),
	)
	if err != nil {
		return RoadLink{}, err
	}
	return l, nil
}

func (l *RoadLink) xmlAttrs() []xw.Attr { return nil }

func (l *RoadLink) xmlChildren(w *xw.Writer) error {
	if l.Predecessor != nil {
		if err := writeElement(w, "predecessor", l.Predecessor); err != nil {
			return err
		}
	}
	if l.Successor != nil {
		if err := writeElement(w, "successor", l.Successor); err != nil {
			return err
		}
	}
	return nil
}

// RoadLinkTarget names the road or junction a link points at. Linked roads
// take contactPoint, linked junctions elementS and elementDir.
type RoadLinkTarget struct {
	ContactPoint *ContactPoint
	ElementDir   *ElementDir
	ElementID    string
	ElementS     *unit.Length
	ElementType  *ElementType
}

func parseRoadLinkTarget(c *parser.Context) (RoadLinkTarget, error) {
	var (
		t   RoadLinkTarget
		err error
	)
	if t.ContactPoint, err = enumAttrOpt(c, "contactPoint", contactPoints); err != nil {
		return RoadLinkTarget{}, err
	}
	if t.ElementDir, err = enumAttrOpt(c, "elementDir", elementDirs); err != nil {
		return RoadLinkTarget{}, err
	}
	if t.ElementID, err = c.String("elementId"); err != nil {
		return RoadLinkTarget{}, err
	}
	if t.ElementS, err = c.LengthOpt("elementS"); err != nil {
		return RoadLinkTarget{}, err
	}
	if t.ElementType, err = enumAttrOpt(c, "elementType", elementTypes); err != nil {
		return RoadLinkTarget{}, err
	}
	return t, nil
}

func (t *RoadLinkTarget) xmlAttrs() []xw.Attr {
	var a attrs
	if t.ContactPoint != nil {
		a.str("contactPoint", t.ContactPoint.String())
	}
	if t.ElementDir != nil {
		a.str("elementDir", t.ElementDir.String())
	}
	a.str("elementId", t.ElementID)
	a.lengthOpt("elementS", t.ElementS)
	if t.ElementType != nil {
		a.str("elementType", t.ElementType.String())
	}
	return a
}

func (t *RoadLinkTarget) xmlChildren(*xw.Writer) error { return nil }

// RoadClass is the main purpose of a road, given on a `<type>` element.
type RoadClass int

const (
	RoadClassUnknown RoadClass = iota
	RoadClassRural
	RoadClassMotorway
	RoadClassTown
	RoadClassLowSpeed
	RoadClassPedestrian
	RoadClassBicycle
	RoadClassTownExpressway
	RoadClassTownCollector
	RoadClassTownArterial
	RoadClassTownPrivate
	RoadClassTownLocal
	RoadClassTownPlayStreet
)

var roadClasses = newEnumeration("RoadClass", map[RoadClass]string{
	RoadClassUnknown:        "unknown",
	RoadClassRural:          "rural",
	RoadClassMotorway:       "motorway",
	RoadClassTown:           "town",
	RoadClassLowSpeed:       "lowSpeed",
	RoadClassPedestrian:     "pedestrian",
	RoadClassBicycle:        "bicycle",
	RoadClassTownExpressway: "townExpressway",
	RoadClassTownCollector:  "townCollector",
	RoadClassTownArterial:   "townArterial",
	RoadClassTownPrivate:    "townPrivate",
	RoadClassTownLocal:      "townLocal",
	RoadClassTownPlayStreet: "townPlayStreet",
})

func (r RoadClass) String() string { return roadClasses.format(r) }

// ParseRoadClass parses the canonical spelling of a RoadClass.
func ParseRoadClass(s string) (RoadClass, error) { return roadClasses.parse(s) }

// RoadType marks that from s on the road has the given class, until the
// next `<type>` entry or the end of the road.
type RoadType struct {
	S       unit.Length
	Class   RoadClass
	Country *CountryCode
	Speed   *RoadSpeed
}

func parseRoadType(c *parser.Context) (RoadType, error) {
	var t RoadType
	err := c.Match(nil,
		parser.Child("speed", func(cc *parser.Context) error {
			s, err := parseRoadSpeed(cc)
			if err != nil {
				return err
			}
			t.Speed = &s
			return nil
		}),
	)
	if err != nil {
		return RoadType{}, err
	}

	if t.S, err = c.Length("s"); err != nil {
		return RoadType{}, err
	}
	if t.Class, err = enumAttr(c, "type", roadClasses); err != nil {
		return RoadType{}, err
	}
	if v := c.StringOpt("country"); v != nil {
		cc, err := ParseCountryCode(*v)
		if err != nil {
			return RoadType{}, err
		}
		t.Country = &cc
	}
	return t, nil
}

func (t *RoadType) xmlAttrs() []xw.Attr {
	var a attrs
	if t.Country != nil {
		a.str("country", (*t.Country).String())
	}
	a.length("s", t.S)
	a.str("type", t.Class.String())
	return a
}

func (t *RoadType) xmlChildren(w *xw.Writer) error {
	if t.Speed != nil {
		return writeElement(w, "speed", t.Speed)
	}
	return nil
}

// RoadSpeed is the speed limit that applies while a road class is in
// effect. Without a unit, max is in m/s.
type RoadSpeed struct {
	Max  MaxSpeed
	Unit *SpeedUnit
}

func parseRoadSpeed(c *parser.Context) (RoadSpeed, error) {
	var s RoadSpeed
	max, err := c.String("max")
	if err != nil {
		return RoadSpeed{}, err
	}
	if s.Max, err = ParseMaxSpeed(max); err != nil {
		return RoadSpeed{}, err
	}
	if s.Unit, err = enumAttrOpt(c, "unit", speedUnits); err != nil {
		return RoadSpeed{}, err
	}
	return s, nil
}

func (s *RoadSpeed) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("max", formatMaxSpeed(s.Max))
	if s.Unit != nil {
		a.str("unit", s.Unit.String())
	}
	return a
}

func (s *RoadSpeed) xmlChildren(*xw.Writer) error { return nil }

// MaxSpeed is either a numeric limit, the literal "no limit", or the
// literal "undefined". The keywords parse case-insensitively.
type MaxSpeed interface {
	isMaxSpeed()
}

// SpeedLimit is a numeric speed limit.
type SpeedLimit float64

// NoSpeedLimit marks a road without a speed limit.
type NoSpeedLimit struct{}

// UndefinedSpeedLimit marks a road whose limit is not defined.
type UndefinedSpeedLimit struct{}

func (SpeedLimit) isMaxSpeed()          {}
func (NoSpeedLimit) isMaxSpeed()        {}
func (UndefinedSpeedLimit) isMaxSpeed() {}

// ParseMaxSpeed parses a max attribute value.
func ParseMaxSpeed(s string) (MaxSpeed, error) {
	switch {
	case strings.EqualFold(s, "no limit"):
		return NoSpeedLimit{}, nil
	case strings.EqualFold(s, "undefined"):
		return UndefinedSpeedLimit{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.InvalidEnumValue("MaxSpeed", s)
	}
	return SpeedLimit(v), nil
}

func formatMaxSpeed(v MaxSpeed) string {
	switch m := v.(type) {
	case SpeedLimit:
		return scientific.Format(float64(m))
	case NoSpeedLimit:
		return "no limit"
	case UndefinedSpeedLimit:
		return "undefined"
	default:
		return ""
	}
}

// CountryCode is an ISO 3166-1 country, as a current alpha-2 code, a
// deprecated alpha-3 code, or one of the deprecated spelled-out names older
// documents carry.
type CountryCode interface {
	isCountryCode()
	String() string
}

// CountryAlpha2 is an ISO 3166-1 alpha-2 country code.
type CountryAlpha2 string

// CountryAlpha3 is an ISO 3166-1 alpha-3 country code. Deprecated in the
// schema but still accepted.
type CountryAlpha3 string

// CountryDeprecated is one of the spelled-out country names used before
// ISO 3166 codes were adopted.
type CountryDeprecated int

const (
	CountryDeprecatedOpenDRIVE CountryDeprecated = iota
	CountryDeprecatedAustria
	CountryDeprecatedBrazil
	CountryDeprecatedChina
	CountryDeprecatedFrance
	CountryDeprecatedGermany
	CountryDeprecatedItaly
	CountryDeprecatedSwitzerland
)

var countryDeprecateds = newEnumeration("CountryDeprecated", map[CountryDeprecated]string{
	CountryDeprecatedOpenDRIVE:   "OpenDRIVE",
	CountryDeprecatedAustria:     "Austria",
	CountryDeprecatedBrazil:      "Brazil",
	CountryDeprecatedChina:       "China",
	CountryDeprecatedFrance:      "France",
	CountryDeprecatedGermany:     "Germany",
	CountryDeprecatedItaly:       "Italy",
	CountryDeprecatedSwitzerland: "Switzerland",
})

func (CountryAlpha2) isCountryCode()     {}
func (CountryAlpha3) isCountryCode()     {}
func (CountryDeprecated) isCountryCode() {}

func (c CountryAlpha2) String() string     { return string(c) }
func (c CountryAlpha3) String() string     { return string(c) }
func (c CountryDeprecated) String() string { return countryDeprecateds.format(c) }

func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}

// ParseCountryCode parses a country attribute value.
func ParseCountryCode(s string) (CountryCode, error) {
	switch {
	case len(s) == 2 && isASCIIAlpha(s):
		return CountryAlpha2(s), nil
	case len(s) == 3 && isASCIIAlpha(s):
		return CountryAlpha3(s), nil
	}
	if v, err := countryDeprecateds.parse(s); err == nil {
		return v, nil
	}
	return nil, errors.InvalidEnumValue("CountryCode", s)
}
