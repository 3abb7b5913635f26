package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
	"github.com/jacoelho/opendrive/unit"
)

// ContactPoint names the end of a road element a link attaches to.
type ContactPoint int

const (
	ContactPointStart ContactPoint = iota
	ContactPointEnd
)

var contactPoints = newEnumeration("ContactPoint", map[ContactPoint]string{
	ContactPointStart: "start",
	ContactPointEnd:   "end",
})

func (p ContactPoint) String() string { return contactPoints.format(p) }

// ParseContactPoint parses the canonical spelling of a ContactPoint.
func ParseContactPoint(s string) (ContactPoint, error) { return contactPoints.parse(s) }

// ElementDir is the direction relative to the s-axis of a linked element.
type ElementDir int

const (
	ElementDirPlus ElementDir = iota
	ElementDirMinus
)

var elementDirs = newEnumeration("ElementDir", map[ElementDir]string{
	ElementDirPlus:  "+",
	ElementDirMinus: "-",
})

func (d ElementDir) String() string { return elementDirs.format(d) }

// ParseElementDir parses the canonical spelling of an ElementDir.
func ParseElementDir(s string) (ElementDir, error) { return elementDirs.parse(s) }

// JunctionType distinguishes common, virtual and direct junctions.
type JunctionType int

const (
	JunctionTypeDefault JunctionType = iota
	JunctionTypeVirtual
	JunctionTypeDirect
)

var junctionTypes = newEnumeration("JunctionType", map[JunctionType]string{
	JunctionTypeDefault: "default",
	JunctionTypeVirtual: "virtual",
	JunctionTypeDirect:  "direct",
})

func (t JunctionType) String() string { return junctionTypes.format(t) }

// ParseJunctionType parses the canonical spelling of a JunctionType.
func ParseJunctionType(s string) (JunctionType, error) { return junctionTypes.parse(s) }

// ConnectionType distinguishes common and virtual connections.
type ConnectionType int

const (
	ConnectionTypeDefault ConnectionType = iota
	ConnectionTypeVirtual
)

var connectionTypes = newEnumeration("ConnectionType", map[ConnectionType]string{
	ConnectionTypeDefault: "default",
	ConnectionTypeVirtual: "virtual",
})

func (t ConnectionType) String() string { return connectionTypes.format(t) }

// ParseConnectionType parses the canonical spelling of a ConnectionType.
func ParseConnectionType(s string) (ConnectionType, error) { return connectionTypes.parse(s) }

// Junction connects incoming roads to connecting roads. A junction has at
// least one connection.
type Junction struct {
	Connections nonempty.Sequence[Connection]
	Priorities  []Priority
	Controllers []JunctionController
	Surface     *JunctionSurface

	ID          string
	MainRoad    *string
	Name        *string
	Orientation *Orientation
	SEnd        *unit.Length
	SStart      *unit.Length
	Type        *JunctionType
}

func parseJunction(c *parser.Context) (Junction, error) {
	var (
		j           Junction
		connections []Connection
	)
	err := c.Match(nil,
		parser.RequiredChild("connection", func(cc *parser.Context) error {
			v, err := parseConnection(cc)
			if err != nil {
				return err
			}
			connections = append(connections, v)
			return nil
		}),
		parser.Child("priority", func(cc *parser.Context) error {
			v, err := parsePriority(cc)
			if err != nil {
				return err
			}
			j.Priorities = append(j.Priorities, v)
			return nil
		}),
		parser.Child("controller", func(cc *parser.Context) error {
			v, err := parseJunctionController(cc)
			if err != nil {
				return err
			}
			j.Controllers = append(j.Controllers, v)
			return nil
		}),
		parser.Child("surface", func(cc *parser.Context) error {
			v, err := parseJunctionSurface(cc)
			if err != nil {
				return err
			}
			j.Surface = &v
			return nil
		}),
	)
	if err != nil {
		return Junction{}, err
	}

	if j.Connections, err = nonempty.From(connections); err != nil {
		return Junction{}, errors.ElementMissing(c.Path(), "connection", "Junction")
	}
	if j.ID, err = c.String("id"); err != nil {
		return Junction{}, err
	}
	j.MainRoad = c.StringOpt("mainRoad")
	j.Name = c.StringOpt("name")
	if j.Orientation, err = enumAttrOpt(c, "orientation", orientations); err != nil {
		return Junction{}, err
	}
	if j.SEnd, err = c.LengthOpt("sEnd"); err != nil {
		return Junction{}, err
	}
	if j.SStart, err = c.LengthOpt("sStart"); err != nil {
		return Junction{}, err
	}
	if j.Type, err = enumAttrOpt(c, "type", junctionTypes); err != nil {
		return Junction{}, err
	}
	return j, nil
}

func (j *Junction) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", j.ID)
	a.strOpt("mainRoad", j.MainRoad)
	a.strOpt("name", j.Name)
	if j.Orientation != nil {
		a.str("orientation", j.Orientation.String())
	}
	a.lengthOpt("sEnd", j.SEnd)
	a.lengthOpt("sStart", j.SStart)
	if j.Type != nil {
		a.str("type", j.Type.String())
	}
	return a
}

func (j *Junction) xmlChildren(w *xw.Writer) error {
	for i := range j.Connections.Slice() {
		if err := writeElement(w, "connection", &j.Connections.Slice()[i]); err != nil {
			return err
		}
	}
	for i := range j.Priorities {
		if err := writeElement(w, "priority", &j.Priorities[i]); err != nil {
			return err
		}
	}
	for i := range j.Controllers {
		if err := writeElement(w, "controller", &j.Controllers[i]); err != nil {
			return err
		}
	}
	if j.Surface != nil {
		if err := writeElement(w, "surface", j.Surface); err != nil {
			return err
		}
	}
	return nil
}

// Connection maps the lanes of an incoming road onto a connecting road.
type Connection struct {
	Predecessor *ConnectionTarget
	Successor   *ConnectionTarget
	LaneLinks   []JunctionLaneLink

	ConnectingRoad *string
	ContactPoint   *ContactPoint
	ID             string
	IncomingRoad   *string
	LinkedRoad     *string
	Type           *ConnectionType
}

func parseConnection(c *parser.Context) (Connection, error) {
	var conn Connection
	err := c.Match(nil,
		parser.Child("predecessor", func(cc *parser.Context) error {
			v, err := parseConnectionTarget(cc)
			if err != nil {
				return err
			}
			conn.Predecessor = &v
			return nil
		}),
		parser.Child("successor", func(cc *parser.Context) error {
			v, err := parseConnectionTarget(cc)
			if err != nil {
				return err
			}
			conn.Successor = &v
			return nil
		}),
		parser.Child("laneLink", func(cc *parser.Context) error {
			v, err := parseJunctionLaneLink(cc)
			if err != nil {
				return err
			}
			conn.LaneLinks = append(conn.LaneLinks, v)
			return nil
		}),
	)
	if err != nil {
		return Connection{}, err
	}

	conn.ConnectingRoad = c.StringOpt("connectingRoad")
	if conn.ContactPoint, err = enumAttrOpt(c, "contactPoint", contactPoints); err != nil {
		return Connection{}, err
	}
	if conn.ID, err = c.String("id"); err != nil {
		return Connection{}, err
	}
	conn.IncomingRoad = c.StringOpt("incomingRoad")
	conn.LinkedRoad = c.StringOpt("linkedRoad")
	if conn.Type, err = enumAttrOpt(c, "type", connectionTypes); err != nil {
		return Connection{}, err
	}
	return conn, nil
}

func (conn *Connection) xmlAttrs() []xw.Attr {
	var a attrs
	a.strOpt("connectingRoad", conn.ConnectingRoad)
	if conn.ContactPoint != nil {
		a.str("contactPoint", conn.ContactPoint.String())
	}
	a.str("id", conn.ID)
	a.strOpt("incomingRoad", conn.IncomingRoad)
	a.strOpt("linkedRoad", conn.LinkedRoad)
	if conn.Type != nil {
		a.str("type", conn.Type.String())
	}
	return a
}

func (conn *Connection) xmlChildren(w *xw.Writer) error {
	if conn.Predecessor != nil {
		if err := writeElement(w, "predecessor", conn.Predecessor); err != nil {
			return err
		}
	}
	if conn.Successor != nil {
		if err := writeElement(w, "successor", conn.Successor); err != nil {
			return err
		}
	}
	for i := range conn.LaneLinks {
		if err := writeElement(w, "laneLink", &conn.LaneLinks[i]); err != nil {
			return err
		}
	}
	return nil
}

// ConnectionTarget overrides the linked element of a virtual connection.
type ConnectionTarget struct {
	ElementDir  ElementDir
	ElementID   string
	ElementS    unit.Length
	ElementType string
}

func parseConnectionTarget(c *parser.Context) (ConnectionTarget, error) {
	var (
		t   ConnectionTarget
		err error
	)
	if t.ElementDir, err = enumAttr(c, "elementDir", elementDirs); err != nil {
		return ConnectionTarget{}, err
	}
	if t.ElementID, err = c.String("elementId"); err != nil {
		return ConnectionTarget{}, err
	}
	if t.ElementS, err = c.Length("elementS"); err != nil {
		return ConnectionTarget{}, err
	}
	if t.ElementType, err = c.String("elementType"); err != nil {
		return ConnectionTarget{}, err
	}
	return t, nil
}

func (t *ConnectionTarget) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("elementDir", t.ElementDir.String())
	a.str("elementId", t.ElementID)
	a.length("elementS", t.ElementS)
	a.str("elementType", t.ElementType)
	return a
}

func (t *ConnectionTarget) xmlChildren(*xw.Writer) error { return nil }

// JunctionLaneLink maps one incoming lane onto one connecting lane.
type JunctionLaneLink struct {
	From int64
	To   int64
}

func parseJunctionLaneLink(c *parser.Context) (JunctionLaneLink, error) {
	var (
		l   JunctionLaneLink
		err error
	)
	if l.From, err = c.Int64("from"); err != nil {
		return JunctionLaneLink{}, err
	}
	if l.To, err = c.Int64("to"); err != nil {
		return JunctionLaneLink{}, err
	}
	return l, nil
}

func (l *JunctionLaneLink) xmlAttrs() []xw.Attr {
	var a attrs
	a.int64("from", l.From)
	a.int64("to", l.To)
	return a
}

func (l *JunctionLaneLink) xmlChildren(*xw.Writer) error { return nil }

// Priority ranks one connecting road over another inside a junction.
type Priority struct {
	High *string
	Low  *string
}

func parsePriority(c *parser.Context) (Priority, error) {
	var p Priority
	p.High = c.StringOpt("high")
	p.Low = c.StringOpt("low")
	return p, nil
}

func (p *Priority) xmlAttrs() []xw.Attr {
	var a attrs
	a.strOpt("high", p.High)
	a.strOpt("low", p.Low)
	return a
}

func (p *Priority) xmlChildren(*xw.Writer) error { return nil }

// JunctionController references a signal controller acting on the
// junction.
type JunctionController struct {
	ID       string
	Sequence *uint64
	Type     *string
}

func parseJunctionController(c *parser.Context) (JunctionController, error) {
	var (
		jc  JunctionController
		err error
	)
	if jc.ID, err = c.String("id"); err != nil {
		return JunctionController{}, err
	}
	if jc.Sequence, err = c.Uint64Opt("sequence"); err != nil {
		return JunctionController{}, err
	}
	jc.Type = c.StringOpt("type")
	return jc, nil
}

func (jc *JunctionController) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", jc.ID)
	a.uint64Opt("sequence", jc.Sequence)
	a.strOpt("type", jc.Type)
	return a
}

func (jc *JunctionController) xmlChildren(*xw.Writer) error { return nil }

// JunctionSurface lists OpenCRG files overriding the surface of the
// junction area.
type JunctionSurface struct {
	Crgs []JunctionCrg
}

func parseJunctionSurface(c *parser.Context) (JunctionSurface, error) {
	var s JunctionSurface
	err := c.Match(nil,
		parser.Child("CRG", func(cc *parser.Context) error {
			crg, err := parseJunctionCrg(cc)
			if err != nil {
				return err
			}
			s.Crgs = append(s.Crgs, crg)
			return nil
		}),
	)
	if err != nil {
		return JunctionSurface{}, err
	}
	return s, nil
}

func (s *JunctionSurface) xmlAttrs() []xw.Attr { return nil }

func (s *JunctionSurface) xmlChildren(w *xw.Writer) error {
	for i := range s.Crgs {
		if err := writeElement(w, "CRG", &s.Crgs[i]); err != nil {
			return err
		}
	}
	return nil
}

// JunctionCrg references one OpenCRG file covering the junction area.
type JunctionCrg struct {
	File    string
	Mode    CrgMode
	Purpose *CrgPurpose
	ZOffset *unit.Length
	ZScale  *float64
}

func parseJunctionCrg(c *parser.Context) (JunctionCrg, error) {
	var (
		g   JunctionCrg
		err error
	)
	if g.File, err = c.String("file"); err != nil {
		return JunctionCrg{}, err
	}
	if g.Mode, err = enumAttr(c, "mode", crgModes); err != nil {
		return JunctionCrg{}, err
	}
	if g.Purpose, err = enumAttrOpt(c, "purpose", crgPurposes); err != nil {
		return JunctionCrg{}, err
	}
	if g.ZOffset, err = c.LengthOpt("zOffset"); err != nil {
		return JunctionCrg{}, err
	}
	if g.ZScale, err = c.FloatOpt("zScale"); err != nil {
		return JunctionCrg{}, err
	}
	return g, nil
}

func (g *JunctionCrg) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("file", g.File)
	a.str("mode", g.Mode.String())
	if g.Purpose != nil {
		a.str("purpose", g.Purpose.String())
	}
	a.lengthOpt("zOffset", g.ZOffset)
	a.floatOpt("zScale", g.ZScale)
	return a
}

func (g *JunctionCrg) xmlChildren(*xw.Writer) error { return nil }
