package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
	"github.com/jacoelho/opendrive/unit"
)

// SwitchPosition is the setting of a railroad switch.
type SwitchPosition int

const (
	SwitchPositionDynamic SwitchPosition = iota
	SwitchPositionStraight
	SwitchPositionTurn
)

var switchPositions = newEnumeration("SwitchPosition", map[SwitchPosition]string{
	SwitchPositionDynamic:  "dynamic",
	SwitchPositionStraight: "straight",
	SwitchPositionTurn:     "turn",
})

func (p SwitchPosition) String() string { return switchPositions.format(p) }

// ParseSwitchPosition parses the canonical spelling of a SwitchPosition.
func ParseSwitchPosition(s string) (SwitchPosition, error) { return switchPositions.parse(s) }

// Railroad carries the railroad elements of a road, currently switches.
type Railroad struct {
	Switches []Switch

	AdditionalData AdditionalData
}

func parseRailroad(c *parser.Context) (Railroad, error) {
	var r Railroad
	err := c.Match(r.AdditionalData.absorb,
		parser.Child("switch", func(cc *parser.Context) error {
			v, err := parseSwitch(cc)
			if err != nil {
				return err
			}
			r.Switches = append(r.Switches, v)
			return nil
		}),
	)
	if err != nil {
		return Railroad{}, err
	}
	return r, nil
}

func (r *Railroad) xmlAttrs() []xw.Attr { return nil }

func (r *Railroad) xmlChildren(w *xw.Writer) error {
	for i := range r.Switches {
		if err := writeElement(w, "switch", &r.Switches[i]); err != nil {
			return err
		}
	}
	return r.AdditionalData.write(w)
}

// Switch links a main track to a side track.
type Switch struct {
	MainTrack MainTrack
	SideTrack SideTrack
	Partner   *Partner

	ID       string
	Name     string
	Position SwitchPosition

	AdditionalData AdditionalData
}

func parseSwitch(c *parser.Context) (Switch, error) {
	var s Switch
	err := c.Match(s.AdditionalData.absorb,
		parser.RequiredChild("mainTrack", func(cc *parser.Context) error {
			v, err := parseMainTrack(cc)
			if err != nil {
				return err
			}
			s.MainTrack = v
			return nil
		}),
		parser.RequiredChild("sideTrack", func(cc *parser.Context) error {
			v, err := parseSideTrack(cc)
			if err != nil {
				return err
			}
			s.SideTrack = v
			return nil
		}),
		parser.Child("partner", func(cc *parser.Context) error {
			v, err := parsePartner(cc)
			if err != nil {
				return err
			}
			s.Partner = &v
			return nil
		}),
	)
	if err != nil {
		return Switch{}, err
	}

	if s.ID, err = c.String("id"); err != nil {
		return Switch{}, err
	}
	if s.Name, err = c.String("name"); err != nil {
		return Switch{}, err
	}
	if s.Position, err = enumAttr(c, "position", switchPositions); err != nil {
		return Switch{}, err
	}
	return s, nil
}

func (s *Switch) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", s.ID)
	a.str("name", s.Name)
	a.str("position", s.Position.String())
	return a
}

func (s *Switch) xmlChildren(w *xw.Writer) error {
	if err := writeElement(w, "mainTrack", &s.MainTrack); err != nil {
		return err
	}
	if err := writeElement(w, "sideTrack", &s.SideTrack); err != nil {
		return err
	}
	if s.Partner != nil {
		if err := writeElement(w, "partner", s.Partner); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// MainTrack is the continuing track of a switch.
type MainTrack struct {
	Dir ElementDir
	ID  string
	S   unit.Length
}

func parseMainTrack(c *parser.Context) (MainTrack, error) {
	var (
		t   MainTrack
		err error
	)
	if t.Dir, err = enumAttr(c, "dir", elementDirs); err != nil {
		return MainTrack{}, err
	}
	if t.ID, err = c.String("id"); err != nil {
		return MainTrack{}, err
	}
	if t.S, err = c.Length("s"); err != nil {
		return MainTrack{}, err
	}
	return t, nil
}

func (t *MainTrack) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("dir", t.Dir.String())
	a.str("id", t.ID)
	a.length("s", t.S)
	return a
}

func (t *MainTrack) xmlChildren(*xw.Writer) error { return nil }

// SideTrack is the branching track of a switch.
type SideTrack struct {
	Dir ElementDir
	ID  string
	S   unit.Length
}

func parseSideTrack(c *parser.Context) (SideTrack, error) {
	var (
		t   SideTrack
		err error
	)
	if t.Dir, err = enumAttr(c, "dir", elementDirs); err != nil {
		return SideTrack{}, err
	}
	if t.ID, err = c.String("id"); err != nil {
		return SideTrack{}, err
	}
	if t.S, err = c.Length("s"); err != nil {
		return SideTrack{}, err
	}
	return t, nil
}

func (t *SideTrack) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("dir", t.Dir.String())
	a.str("id", t.ID)
	a.length("s", t.S)
	return a
}

func (t *SideTrack) xmlChildren(*xw.Writer) error { return nil }

// Partner names the switch at the other end of the side track.
type Partner struct {
	ID   string
	Name *string
}

func parsePartner(c *parser.Context) (Partner, error) {
	var (
		p   Partner
		err error
	)
	if p.ID, err = c.String("id"); err != nil {
		return Partner{}, err
	}
	p.Name = c.StringOpt("name")
	return p, nil
}

func (p *Partner) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", p.ID)
	a.strOpt("name", p.Name)
	return a
}

func (p *Partner) xmlChildren(*xw.Writer) error { return nil }

// StationType classifies a station by size.
type StationType int

const (
	StationTypeSmall StationType = iota
	StationTypeMedium
	StationTypeLarge
)

var stationTypes = newEnumeration("StationType", map[StationType]string{
	StationTypeSmall:  "small",
	StationTypeMedium: "medium",
	StationTypeLarge:  "large",
})

func (t StationType) String() string { return stationTypes.format(t) }

// ParseStationType parses the canonical spelling of a StationType.
func ParseStationType(s string) (StationType, error) { return stationTypes.parse(s) }

// Station is a tram or railroad stop with at least one platform.
type Station struct {
	Platforms nonempty.Sequence[Platform]

	ID   string
	Name string
	Type *StationType

	AdditionalData AdditionalData
}

func parseStation(c *parser.Context) (Station, error) {
	var (
		s         Station
		platforms []Platform
	)
	err := c.Match(s.AdditionalData.absorb,
		parser.RequiredChild("platform", func(cc *parser.Context) error {
			v, err := parsePlatform(cc)
			if err != nil {
				return err
			}
			platforms = append(platforms, v)
			return nil
		}),
	)
	if err != nil {
		return Station{}, err
	}

	if s.Platforms, err = nonempty.From(platforms); err != nil {
		return Station{}, errors.ElementMissing(c.Path(), "platform", "Station")
	}
	if s.ID, err = c.String("id"); err != nil {
		return Station{}, err
	}
	if s.Name, err = c.String("name"); err != nil {
		return Station{}, err
	}
	if s.Type, err = enumAttrOpt(c, "type", stationTypes); err != nil {
		return Station{}, err
	}
	return s, nil
}

func (s *Station) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", s.ID)
	a.str("name", s.Name)
	if s.Type != nil {
		a.str("type", s.Type.String())
	}
	return a
}

func (s *Station) xmlChildren(w *xw.Writer) error {
	for i := range s.Platforms.Slice() {
		if err := writeElement(w, "platform", &s.Platforms.Slice()[i]); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// Platform is one platform of a station, covering segments of one or more
// roads.
type Platform struct {
	Segments nonempty.Sequence[Segment]

	ID   string
	Name *string

	AdditionalData AdditionalData
}

func parsePlatform(c *parser.Context) (Platform, error) {
	var (
		p        Platform
		segments []Segment
	)
	err := c.Match(p.AdditionalData.absorb,
		parser.RequiredChild("segment", func(cc *parser.Context) error {
			v, err := parseSegment(cc)
			if err != nil {
				return err
			}
			segments = append(segments, v)
			return nil
		}),
	)
	if err != nil {
		return Platform{}, err
	}

	if p.Segments, err = nonempty.From(segments); err != nil {
		return Platform{}, errors.ElementMissing(c.Path(), "segment", "Platform")
	}
	if p.ID, err = c.String("id"); err != nil {
		return Platform{}, err
	}
	p.Name = c.StringOpt("name")
	return p, nil
}

func (p *Platform) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", p.ID)
	a.strOpt("name", p.Name)
	return a
}

func (p *Platform) xmlChildren(w *xw.Writer) error {
	for i := range p.Segments.Slice() {
		if err := writeElement(w, "segment", &p.Segments.Slice()[i]); err != nil {
			return err
		}
	}
	return p.AdditionalData.write(w)
}

// SegmentSide names the side of the track a platform segment lies on.
type SegmentSide int

const (
	SegmentSideLeft SegmentSide = iota
	SegmentSideRight
)

var segmentSides = newEnumeration("SegmentSide", map[SegmentSide]string{
	SegmentSideLeft:  "left",
	SegmentSideRight: "right",
})

func (s SegmentSide) String() string { return segmentSides.format(s) }

// ParseSegmentSide parses the canonical spelling of a SegmentSide.
func ParseSegmentSide(s string) (SegmentSide, error) { return segmentSides.parse(s) }

// Segment is the stretch of one road a platform runs along.
type Segment struct {
	RoadID string
	SEnd   unit.Length
	SStart unit.Length
	Side   SegmentSide
}

func parseSegment(c *parser.Context) (Segment, error) {
	var (
		s   Segment
		err error
	)
	if s.RoadID, err = c.String("roadId"); err != nil {
		return Segment{}, err
	}
	if s.SEnd, err = c.Length("sEnd"); err != nil {
		return Segment{}, err
	}
	if s.SStart, err = c.Length("sStart"); err != nil {
		return Segment{}, err
	}
	if s.Side, err = enumAttr(c, "side", segmentSides); err != nil {
		return Segment{}, err
	}
	return s, nil
}

func (s *Segment) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("roadId", s.RoadID)
	a.length("sEnd", s.SEnd)
	a.length("sStart", s.SStart)
	a.str("side", s.Side.String())
	return a
}

func (s *Segment) xmlChildren(*xw.Writer) error { return nil }
