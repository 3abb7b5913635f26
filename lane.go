package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/unit"
)

// LaneType classifies the purpose of a lane.
type LaneType int

const (
	LaneTypeShoulder LaneType = iota
	LaneTypeBorder
	LaneTypeDriving
	LaneTypeStop
	LaneTypeNone
	LaneTypeRestricted
	LaneTypeParking
	LaneTypeMedian
	LaneTypeBiking
	LaneTypeSidewalk
	LaneTypeCurb
	LaneTypeExit
	LaneTypeEntry
	LaneTypeOnRamp
	LaneTypeOffRamp
	LaneTypeConnectingRamp
	LaneTypeBidirectional
	LaneTypeSpecial1
	LaneTypeSpecial2
	LaneTypeSpecial3
	LaneTypeRoadWorks
	LaneTypeTram
	LaneTypeRail
	LaneTypeBus
	LaneTypeTaxi
	LaneTypeHOV
)

var laneTypes = newEnumeration("LaneType", map[LaneType]string{
	LaneTypeShoulder:       "shoulder",
	LaneTypeBorder:         "border",
	LaneTypeDriving:        "driving",
	LaneTypeStop:           "stop",
	LaneTypeNone:           "none",
	LaneTypeRestricted:     "restricted",
	LaneTypeParking:        "parking",
	LaneTypeMedian:         "median",
	LaneTypeBiking:         "biking",
	LaneTypeSidewalk:       "sidewalk",
	LaneTypeCurb:           "curb",
	LaneTypeExit:           "exit",
	LaneTypeEntry:          "entry",
	LaneTypeOnRamp:         "onRamp",
	LaneTypeOffRamp:        "offRamp",
	LaneTypeConnectingRamp: "connectingRamp",
	LaneTypeBidirectional:  "bidirectional",
	LaneTypeSpecial1:       "special1",
	LaneTypeSpecial2:       "special2",
	LaneTypeSpecial3:       "special3",
	LaneTypeRoadWorks:      "roadWorks",
	LaneTypeTram:           "tram",
	LaneTypeRail:           "rail",
	LaneTypeBus:            "bus",
	LaneTypeTaxi:           "taxi",
	LaneTypeHOV:            "HOV",
})

func (t LaneType) String() string { return laneTypes.format(t) }

// ParseLaneType parses the canonical spelling of a LaneType.
func ParseLaneType(s string) (LaneType, error) { return laneTypes.parse(s) }

// LaneChoice is one entry of a lane's ordered width/border sequence:
// either a LaneWidth or a LaneBorder.
type LaneChoice interface {
	isLaneChoice()
}

// Lane is the common payload of left, centre and right lanes.
type Lane struct {
	Link      *LaneLink
	Choices   []LaneChoice
	RoadMarks []RoadMark
	Materials []LaneMaterial
	Speeds    []LaneSpeed
	Accesses  []LaneAccess
	Heights   []LaneHeight
	Rules     []LaneRule
	Level     *bool
	Type      LaneType

	AdditionalData AdditionalData
}

func parseLane(c *parser.Context) (Lane, error) {
	var l Lane
	err := c.Match(l.AdditionalData.absorb,
		parser.Child("link", func(cc *parser.Context) error {
			v, err := parseLaneLink(cc)
			if err != nil {
				return err
			}
			l.Link = &v
			return nil
		}),
		parser.Child("border", func(cc *parser.Context) error {
			v, err := parseLaneBorder(cc)
			if err != nil {
				return err
			}
			l.Choices = append(l.Choices, v)
			return nil
		}),
		parser.Child("width", func(cc *parser.Context) error {
			v, err := parseLaneWidth(cc)
			if err != nil {
				return err
			}
			l.Choices = append(l.Choices, v)
			return nil
		}),
		parser.Child("roadMark", func(cc *parser.Context) error {
			v, err := parseRoadMark(cc)
			if err != nil {
				return err
			}
			l.RoadMarks = append(l.RoadMarks, v)
			return nil
		}),
		parser.Child("material", func(cc *parser.Context) error {
			v, err := parseLaneMaterial(cc)
			if err != nil {
				return err
			}
			l.Materials = append(l.Materials, v)
			return nil
		}),
		parser.Child("speed", func(cc *parser.Context) error {
			v, err := parseLaneSpeed(cc)
			if err != nil {
				return err
			}
			l.Speeds = append(l.Speeds, v)
			return nil
		}),
		parser.Child("access", func(cc *parser.Context) error {
			v, err := parseLaneAccess(cc)
			if err != nil {
				return err
			}
			l.Accesses = append(l.Accesses, v)
			return nil
		}),
		parser.Child("height", func(cc *parser.Context) error {
			v, err := parseLaneHeight(cc)
			if err != nil {
				return err
			}
			l.Heights = append(l.Heights, v)
			return nil
		}),
		parser.Child("rule", func(cc *parser.Context) error {
			v, err := parseLaneRule(cc)
			if err != nil {
				return err
			}
			l.Rules = append(l.Rules, v)
			return nil
		}),
	)
	if err != nil {
		return Lane{}, err
	}

	if l.Level, err = c.BoolOpt("level"); err != nil {
		return Lane{}, err
	}
	if l.Type, err = enumAttr(c, "type", laneTypes); err != nil {
		return Lane{}, err
	}
	return l, nil
}

func (l *Lane) xmlAttrs() []xw.Attr {
	var a attrs
	a.booleanOpt("level", l.Level)
	a.str("type", l.Type.String())
	return a
}

func (l *Lane) xmlChildren(w *xw.Writer) error {
	if l.Link != nil {
		if err := writeElement(w, "link", l.Link); err != nil {
			return err
		}
	}
	for _, choice := range l.Choices {
		var err error
		switch v := choice.(type) {
		case LaneBorder:
			err = writeElement(w, "border", &v)
		case LaneWidth:
			err = writeElement(w, "width", &v)
		}
		if err != nil {
			return err
		}
	}
	for i := range l.RoadMarks {
		if err := writeElement(w, "roadMark", &l.RoadMarks[i]); err != nil {
			return err
		}
	}
	for i := range l.Materials {
		if err := writeElement(w, "material", &l.Materials[i]); err != nil {
			return err
		}
	}
	for i := range l.Speeds {
		if err := writeElement(w, "speed", &l.Speeds[i]); err != nil {
			return err
		}
	}
	for i := range l.Accesses {
		if err := writeElement(w, "access", &l.Accesses[i]); err != nil {
			return err
		}
	}
	for i := range l.Heights {
		if err := writeElement(w, "height", &l.Heights[i]); err != nil {
			return err
		}
	}
	for i := range l.Rules {
		if err := writeElement(w, "rule", &l.Rules[i]); err != nil {
			return err
		}
	}
	return l.AdditionalData.write(w)
}

// LaneWidth is the cubic width(ds) = a + b*ds + c*ds^2 + d*ds^3 valid from
// sOffset relative to the lane section start.
type LaneWidth struct {
	A       float64
	B       float64
	C       float64
	D       float64
	SOffset unit.Length
}

func (LaneWidth) isLaneChoice() {}

func parseLaneWidth(c *parser.Context) (LaneWidth, error) {
	var (
		v   LaneWidth
		err error
	)
	if v.A, err = c.Float("a"); err != nil {
		return LaneWidth{}, err
	}
	if v.B, err = c.Float("b"); err != nil {
		return LaneWidth{}, err
	}
	if v.C, err = c.Float("c"); err != nil {
		return LaneWidth{}, err
	}
	if v.D, err = c.Float("d"); err != nil {
		return LaneWidth{}, err
	}
	if v.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneWidth{}, err
	}
	return v, nil
}

func (v *LaneWidth) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", v.A)
	a.float("b", v.B)
	a.float("c", v.C)
	a.float("d", v.D)
	a.length("sOffset", v.SOffset)
	return a
}

func (v *LaneWidth) xmlChildren(*xw.Writer) error { return nil }

// LaneBorder describes the outer lane border as a cubic polynomial,
// as an alternative to per-lane widths.
type LaneBorder struct {
	A       float64
	B       float64
	C       float64
	D       float64
	SOffset unit.Length
}

func (LaneBorder) isLaneChoice() {}

func parseLaneBorder(c *parser.Context) (LaneBorder, error) {
	var (
		v   LaneBorder
		err error
	)
	if v.A, err = c.Float("a"); err != nil {
		return LaneBorder{}, err
	}
	if v.B, err = c.Float("b"); err != nil {
		return LaneBorder{}, err
	}
	if v.C, err = c.Float("c"); err != nil {
		return LaneBorder{}, err
	}
	if v.D, err = c.Float("d"); err != nil {
		return LaneBorder{}, err
	}
	if v.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneBorder{}, err
	}
	return v, nil
}

func (v *LaneBorder) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", v.A)
	a.float("b", v.B)
	a.float("c", v.C)
	a.float("d", v.D)
	a.length("sOffset", v.SOffset)
	return a
}

func (v *LaneBorder) xmlChildren(*xw.Writer) error { return nil }

// LaneMaterial overrides the road surface material for a lane from
// sOffset onwards.
type LaneMaterial struct {
	Friction  float64
	Roughness *float64
	SOffset   unit.Length
	Surface   *string
}

func parseLaneMaterial(c *parser.Context) (LaneMaterial, error) {
	var (
		m   LaneMaterial
		err error
	)
	if m.Friction, err = c.Float("friction"); err != nil {
		return LaneMaterial{}, err
	}
	if m.Roughness, err = c.FloatOpt("roughness"); err != nil {
		return LaneMaterial{}, err
	}
	if m.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneMaterial{}, err
	}
	m.Surface = c.StringOpt("surface")
	return m, nil
}

func (m *LaneMaterial) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("friction", m.Friction)
	a.floatOpt("roughness", m.Roughness)
	a.length("sOffset", m.SOffset)
	a.strOpt("surface", m.Surface)
	return a
}

func (m *LaneMaterial) xmlChildren(*xw.Writer) error { return nil }

// LaneSpeed limits the speed on a lane from sOffset onwards. Without a
// unit the maximum is in m/s.
type LaneSpeed struct {
	Max     float64
	SOffset unit.Length
	Unit    *SpeedUnit
}

func parseLaneSpeed(c *parser.Context) (LaneSpeed, error) {
	var (
		s   LaneSpeed
		err error
	)
	if s.Max, err = c.Float("max"); err != nil {
		return LaneSpeed{}, err
	}
	if s.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneSpeed{}, err
	}
	if s.Unit, err = enumAttrOpt(c, "unit", speedUnits); err != nil {
		return LaneSpeed{}, err
	}
	return s, nil
}

func (s *LaneSpeed) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("max", s.Max)
	a.length("sOffset", s.SOffset)
	if s.Unit != nil {
		a.str("unit", s.Unit.String())
	}
	return a
}

func (s *LaneSpeed) xmlChildren(*xw.Writer) error { return nil }

// AccessRestriction names the traffic participant an access entry refers
// to.
type AccessRestriction int

const (
	AccessRestrictionSimulator AccessRestriction = iota
	AccessRestrictionAutonomousTraffic
	AccessRestrictionPedestrian
	AccessRestrictionPassengerCar
	AccessRestrictionBus
	AccessRestrictionDelivery
	AccessRestrictionEmergency
	AccessRestrictionTaxi
	AccessRestrictionThroughTraffic
	AccessRestrictionTruck
	AccessRestrictionBicycle
	AccessRestrictionMotorcycle
	AccessRestrictionNone
	AccessRestrictionTrucks
)

var accessRestrictions = newEnumeration("AccessRestriction", map[AccessRestriction]string{
	AccessRestrictionSimulator:         "simulator",
	AccessRestrictionAutonomousTraffic: "autonomousTraffic",
	AccessRestrictionPedestrian:        "pedestrian",
	AccessRestrictionPassengerCar:      "passengerCar",
	AccessRestrictionBus:               "bus",
	AccessRestrictionDelivery:          "delivery",
	AccessRestrictionEmergency:         "emergency",
	AccessRestrictionTaxi:              "taxi",
	AccessRestrictionThroughTraffic:    "throughTraffic",
	AccessRestrictionTruck:             "truck",
	AccessRestrictionBicycle:           "bicycle",
	AccessRestrictionMotorcycle:        "motorcycle",
	AccessRestrictionNone:              "none",
	AccessRestrictionTrucks:            "trucks",
})

func (r AccessRestriction) String() string { return accessRestrictions.format(r) }

// ParseAccessRestriction parses the canonical spelling of an
// AccessRestriction.
func ParseAccessRestriction(s string) (AccessRestriction, error) {
	return accessRestrictions.parse(s)
}

// AccessRule states whether the restricted participant is allowed or
// denied.
type AccessRule int

const (
	AccessRuleAllow AccessRule = iota
	AccessRuleDeny
)

var accessRules = newEnumeration("AccessRule", map[AccessRule]string{
	AccessRuleAllow: "allow",
	AccessRuleDeny:  "deny",
})

func (r AccessRule) String() string { return accessRules.format(r) }

// ParseAccessRule parses the canonical spelling of an AccessRule.
func ParseAccessRule(s string) (AccessRule, error) { return accessRules.parse(s) }

// LaneAccess grants or refuses a lane to a traffic participant from
// sOffset onwards.
type LaneAccess struct {
	Restriction AccessRestriction
	Rule        *AccessRule
	SOffset     unit.Length
}

func parseLaneAccess(c *parser.Context) (LaneAccess, error) {
	var (
		v   LaneAccess
		err error
	)
	if v.Restriction, err = enumAttr(c, "restriction", accessRestrictions); err != nil {
		return LaneAccess{}, err
	}
	if v.Rule, err = enumAttrOpt(c, "rule", accessRules); err != nil {
		return LaneAccess{}, err
	}
	if v.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneAccess{}, err
	}
	return v, nil
}

func (v *LaneAccess) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("restriction", v.Restriction.String())
	if v.Rule != nil {
		a.str("rule", v.Rule.String())
	}
	a.length("sOffset", v.SOffset)
	return a
}

func (v *LaneAccess) xmlChildren(*xw.Writer) error { return nil }

// LaneHeight offsets the lane surface vertically at its inner and outer
// border from sOffset onwards.
type LaneHeight struct {
	Inner   unit.Length
	Outer   unit.Length
	SOffset unit.Length
}

func parseLaneHeight(c *parser.Context) (LaneHeight, error) {
	var (
		h   LaneHeight
		err error
	)
	if h.Inner, err = c.Length("inner"); err != nil {
		return LaneHeight{}, err
	}
	if h.Outer, err = c.Length("outer"); err != nil {
		return LaneHeight{}, err
	}
	if h.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneHeight{}, err
	}
	return h, nil
}

func (h *LaneHeight) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("inner", h.Inner)
	a.length("outer", h.Outer)
	a.length("sOffset", h.SOffset)
	return a
}

func (h *LaneHeight) xmlChildren(*xw.Writer) error { return nil }

// LaneRule is a free-text traffic rule for a lane from sOffset onwards,
// such as "no stopping at any time".
type LaneRule struct {
	SOffset unit.Length
	Value   string
}

func parseLaneRule(c *parser.Context) (LaneRule, error) {
	var (
		r   LaneRule
		err error
	)
	if r.SOffset, err = c.Length("sOffset"); err != nil {
		return LaneRule{}, err
	}
	if r.Value, err = c.String("value"); err != nil {
		return LaneRule{}, err
	}
	return r, nil
}

func (r *LaneRule) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("sOffset", r.SOffset)
	a.str("value", r.Value)
	return a
}

func (r *LaneRule) xmlChildren(*xw.Writer) error { return nil }
