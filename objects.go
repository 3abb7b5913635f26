package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
	"github.com/jacoelho/opendrive/unit"
)

// Orientation gives the validity of an entity relative to the s-direction:
// along it, against it, or both.
type Orientation int

const (
	OrientationPlus Orientation = iota
	OrientationMinus
	OrientationNone
)

var orientations = newEnumeration("Orientation", map[Orientation]string{
	OrientationPlus:  "+",
	OrientationMinus: "-",
	OrientationNone:  "none",
})

func (o Orientation) String() string { return orientations.format(o) }

// ParseOrientation parses the canonical spelling of an Orientation.
func ParseOrientation(s string) (Orientation, error) { return orientations.parse(s) }

// ObjectType classifies a road object.
type ObjectType int

const (
	ObjectTypeNone ObjectType = iota
	ObjectTypeObstacle
	ObjectTypeCar
	ObjectTypePole
	ObjectTypeTree
	ObjectTypeVegetation
	ObjectTypeBarrier
	ObjectTypeBuilding
	ObjectTypeParkingSpace
	ObjectTypePatch
	ObjectTypeRailing
	ObjectTypeTrafficIsland
	ObjectTypeCrosswalk
	ObjectTypeStreetLamp
	ObjectTypeGantry
	ObjectTypeSoundBarrier
	ObjectTypeVan
	ObjectTypeBus
	ObjectTypeTrailer
	ObjectTypeBike
	ObjectTypeMotorbike
	ObjectTypeTram
	ObjectTypeTrain
	ObjectTypePedestrian
	ObjectTypeWind
	ObjectTypeRoadMark
)

var objectTypes = newEnumeration("ObjectType", map[ObjectType]string{
	ObjectTypeNone:          "none",
	ObjectTypeObstacle:      "obstacle",
	ObjectTypeCar:           "car",
	ObjectTypePole:          "pole",
	ObjectTypeTree:          "tree",
	ObjectTypeVegetation:    "vegetation",
	ObjectTypeBarrier:       "barrier",
	ObjectTypeBuilding:      "building",
	ObjectTypeParkingSpace:  "parkingSpace",
	ObjectTypePatch:         "patch",
	ObjectTypeRailing:       "railing",
	ObjectTypeTrafficIsland: "trafficIsland",
	ObjectTypeCrosswalk:     "crosswalk",
	ObjectTypeStreetLamp:    "streetLamp",
	ObjectTypeGantry:        "gantry",
	ObjectTypeSoundBarrier:  "soundBarrier",
	ObjectTypeVan:           "van",
	ObjectTypeBus:           "bus",
	ObjectTypeTrailer:       "trailer",
	ObjectTypeBike:          "bike",
	ObjectTypeMotorbike:     "motorbike",
	ObjectTypeTram:          "tram",
	ObjectTypeTrain:         "train",
	ObjectTypePedestrian:    "pedestrian",
	ObjectTypeWind:          "wind",
	ObjectTypeRoadMark:      "roadMark",
})

func (t ObjectType) String() string { return objectTypes.format(t) }

// ParseObjectType parses the canonical spelling of an ObjectType.
func ParseObjectType(s string) (ObjectType, error) { return objectTypes.parse(s) }

// Objects carries the objects placed along a road.
type Objects struct {
	Objects          []Object
	ObjectReferences []ObjectReference
	Tunnels          []Tunnel
	Bridges          []Bridge

	AdditionalData AdditionalData
}

func parseObjects(c *parser.Context) (Objects, error) {
	var o Objects
	err := c.Match(o.AdditionalData.absorb,
		parser.Child("object", func(cc *parser.Context) error {
			v, err := parseObject(cc)
			if err != nil {
				return err
			}
			o.Objects = append(o.Objects, v)
			return nil
		}),
		parser.Child("objectReference", func(cc *parser.Context) error {
			v, err := parseObjectReference(cc)
			if err != nil {
				return err
			}
			o.ObjectReferences = append(o.ObjectReferences, v)
			return nil
		}),
		parser.Child("tunnel", func(cc *parser.Context) error {
			v, err := parseTunnel(cc)
			if err != nil {
				return err
			}
			o.Tunnels = append(o.Tunnels, v)
			return nil
		}),
		parser.Child("bridge", func(cc *parser.Context) error {
			v, err := parseBridge(cc)
			if err != nil {
				return err
			}
			o.Bridges = append(o.Bridges, v)
			return nil
		}),
	)
	if err != nil {
		return Objects{}, err
	}
	return o, nil
}

func (o *Objects) xmlAttrs() []xw.Attr { return nil }

func (o *Objects) xmlChildren(w *xw.Writer) error {
	for i := range o.Objects {
		if err := writeElement(w, "object", &o.Objects[i]); err != nil {
			return err
		}
	}
	for i := range o.ObjectReferences {
		if err := writeElement(w, "objectReference", &o.ObjectReferences[i]); err != nil {
			return err
		}
	}
	for i := range o.Tunnels {
		if err := writeElement(w, "tunnel", &o.Tunnels[i]); err != nil {
			return err
		}
	}
	for i := range o.Bridges {
		if err := writeElement(w, "bridge", &o.Bridges[i]); err != nil {
			return err
		}
	}
	return o.AdditionalData.write(w)
}

// Object is anything that influences a road by expanding, delimiting or
// supplementing it, placed at (s, t) relative to the reference line.
type Object struct {
	Dynamic     *bool
	Hdg         *unit.Angle
	Height      *unit.Length
	ID          string
	Length      *unit.Length
	Name        *string
	Orientation *Orientation
	PerpToRoad  *bool
	Pitch       *unit.Angle
	Radius      *unit.Length
	Roll        *unit.Angle
	S           unit.Length
	Subtype     *string
	T           unit.Length
	Type        *ObjectType
	ValidLength *unit.Length
	Width       *unit.Length
	ZOffset     unit.Length

	Repeats      []Repeat
	Outline      *Outline
	Outlines     *Outlines
	Materials    []ObjectMaterial
	Validities   []LaneValidity
	ParkingSpace *ParkingSpace
	Markings     *Markings
	Borders      *Borders
	Surface      *ObjectSurface

	AdditionalData AdditionalData
}

func parseObject(c *parser.Context) (Object, error) {
	var o Object
	err := c.Match(o.AdditionalData.absorb,
		parser.Child("repeat", func(cc *parser.Context) error {
			v, err := parseRepeat(cc)
			if err != nil {
				return err
			}
			o.Repeats = append(o.Repeats, v)
			return nil
		}),
		parser.Child("outline", func(cc *parser.Context) error {
			v, err := parseOutline(cc)
			if err != nil {
				return err
			}
			o.Outline = &v
			return nil
		}),
		parser.Child("outlines", func(cc *parser.Context) error {
			v, err := parseOutlines(cc)
			if err != nil {
				return err
			}
			o.Outlines = &v
			return nil
		}),
		parser.Child("material", func(cc *parser.Context) error {
			v, err := parseObjectMaterial(cc)
			if err != nil {
				return err
			}
			o.Materials = append(o.Materials, v)
			return nil
		}),
		parser.Child("validity", func(cc *parser.Context) error {
			v, err := parseLaneValidity(cc)
			if err != nil {
				return err
			}
			o.Validities = append(o.Validities, v)
			return nil
		}),
		parser.Child("parkingSpace", func(cc *parser.Context) error {
			v, err := parseParkingSpace(cc)
			if err != nil {
				return err
			}
			o.ParkingSpace = &v
			return nil
		}),
		parser.Child("markings", func(cc *parser.Context) error {
			v, err := parseMarkings(cc)
			if err != nil {
				return err
			}
			o.Markings = &v
			return nil
		}),
		parser.Child("borders", func(cc *parser.Context) error {
			v, err := parseBorders(cc)
			if err != nil {
				return err
			}
			o.Borders = &v
			return nil
		}),
		parser.Child("surface", func(cc *parser.Context) error {
			v, err := parseObjectSurface(cc)
			if err != nil {
				return err
			}
			o.Surface = &v
			return nil
		}),
	)
	if err != nil {
		return Object{}, err
	}

	o.Dynamic = c.YesNoOpt("dynamic")
	if o.Hdg, err = c.AngleOpt("hdg"); err != nil {
		return Object{}, err
	}
	if o.Height, err = c.LengthOpt("height"); err != nil {
		return Object{}, err
	}
	if o.ID, err = c.String("id"); err != nil {
		return Object{}, err
	}
	if o.Length, err = c.LengthOpt("length"); err != nil {
		return Object{}, err
	}
	o.Name = c.StringOpt("name")
	if o.Orientation, err = enumAttrOpt(c, "orientation", orientations); err != nil {
		return Object{}, err
	}
	if o.PerpToRoad, err = c.BoolOpt("perpToRoad"); err != nil {
		return Object{}, err
	}
	if o.Pitch, err = c.AngleOpt("pitch"); err != nil {
		return Object{}, err
	}
	if o.Radius, err = c.LengthOpt("radius"); err != nil {
		return Object{}, err
	}
	if o.Roll, err = c.AngleOpt("roll"); err != nil {
		return Object{}, err
	}
	if o.S, err = c.Length("s"); err != nil {
		return Object{}, err
	}
	o.Subtype = c.StringOpt("subtype")
	if o.T, err = c.Length("t"); err != nil {
		return Object{}, err
	}
	if o.Type, err = enumAttrOpt(c, "type", objectTypes); err != nil {
		return Object{}, err
	}
	if o.ValidLength, err = c.LengthOpt("validLength"); err != nil {
		return Object{}, err
	}
	if o.Width, err = c.LengthOpt("width"); err != nil {
		return Object{}, err
	}
	if o.ZOffset, err = c.Length("zOffset"); err != nil {
		return Object{}, err
	}
	return o, nil
}

func (o *Object) xmlAttrs() []xw.Attr {
	var a attrs
	a.yesNoOpt("dynamic", o.Dynamic)
	a.angleOpt("hdg", o.Hdg)
	a.lengthOpt("height", o.Height)
	a.str("id", o.ID)
	a.lengthOpt("length", o.Length)
	a.strOpt("name", o.Name)
	if o.Orientation != nil {
		a.str("orientation", o.Orientation.String())
	}
	a.booleanOpt("perpToRoad", o.PerpToRoad)
	a.angleOpt("pitch", o.Pitch)
	a.lengthOpt("radius", o.Radius)
	a.angleOpt("roll", o.Roll)
	a.length("s", o.S)
	a.strOpt("subtype", o.Subtype)
	a.length("t", o.T)
	if o.Type != nil {
		a.str("type", o.Type.String())
	}
	a.lengthOpt("validLength", o.ValidLength)
	a.lengthOpt("width", o.Width)
	a.length("zOffset", o.ZOffset)
	return a
}

func (o *Object) xmlChildren(w *xw.Writer) error {
	for i := range o.Repeats {
		if err := writeElement(w, "repeat", &o.Repeats[i]); err != nil {
			return err
		}
	}
	if o.Outline != nil {
		if err := writeElement(w, "outline", o.Outline); err != nil {
			return err
		}
	}
	if o.Outlines != nil {
		if err := writeElement(w, "outlines", o.Outlines); err != nil {
			return err
		}
	}
	for i := range o.Materials {
		if err := writeElement(w, "material", &o.Materials[i]); err != nil {
			return err
		}
	}
	for i := range o.Validities {
		if err := writeElement(w, "validity", &o.Validities[i]); err != nil {
			return err
		}
	}
	if o.ParkingSpace != nil {
		if err := writeElement(w, "parkingSpace", o.ParkingSpace); err != nil {
			return err
		}
	}
	if o.Markings != nil {
		if err := writeElement(w, "markings", o.Markings); err != nil {
			return err
		}
	}
	if o.Borders != nil {
		if err := writeElement(w, "borders", o.Borders); err != nil {
			return err
		}
	}
	if o.Surface != nil {
		if err := writeElement(w, "surface", o.Surface); err != nil {
			return err
		}
	}
	return o.AdditionalData.write(w)
}

// Repeat places copies of an object along the road at a fixed interval,
// interpolating its pose and extent between start and end values.
type Repeat struct {
	Distance     unit.Length
	HeightEnd    unit.Length
	HeightStart  unit.Length
	Length       unit.Length
	LengthEnd    *unit.Length
	LengthStart  *unit.Length
	RadiusEnd    *unit.Length
	RadiusStart  *unit.Length
	S            unit.Length
	TEnd         unit.Length
	TStart       unit.Length
	WidthEnd     *unit.Length
	WidthStart   *unit.Length
	ZOffsetEnd   unit.Length
	ZOffsetStart unit.Length
}

func parseRepeat(c *parser.Context) (Repeat, error) {
	var (
		r   Repeat
		err error
	)
	if r.Distance, err = c.Length("distance"); err != nil {
		return Repeat{}, err
	}
	if r.HeightEnd, err = c.Length("heightEnd"); err != nil {
		return Repeat{}, err
	}
	if r.HeightStart, err = c.Length("heightStart"); err != nil {
		return Repeat{}, err
	}
	if r.Length, err = c.Length("length"); err != nil {
		return Repeat{}, err
	}
	if r.LengthEnd, err = c.LengthOpt("lengthEnd"); err != nil {
		return Repeat{}, err
	}
	if r.LengthStart, err = c.LengthOpt("lengthStart"); err != nil {
		return Repeat{}, err
	}
	if r.RadiusEnd, err = c.LengthOpt("radiusEnd"); err != nil {
		return Repeat{}, err
	}
	if r.RadiusStart, err = c.LengthOpt("radiusStart"); err != nil {
		return Repeat{}, err
	}
	if r.S, err = c.Length("s"); err != nil {
		return Repeat{}, err
	}
	if r.TEnd, err = c.Length("tEnd"); err != nil {
		return Repeat{}, err
	}
	if r.TStart, err = c.Length("tStart"); err != nil {
		return Repeat{}, err
	}
	if r.WidthEnd, err = c.LengthOpt("widthEnd"); err != nil {
		return Repeat{}, err
	}
	if r.WidthStart, err = c.LengthOpt("widthStart"); err != nil {
		return Repeat{}, err
	}
	if r.ZOffsetEnd, err = c.Length("zOffsetEnd"); err != nil {
		return Repeat{}, err
	}
	if r.ZOffsetStart, err = c.Length("zOffsetStart"); err != nil {
		return Repeat{}, err
	}
	return r, nil
}

func (r *Repeat) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("distance", r.Distance)
	a.length("heightEnd", r.HeightEnd)
	a.length("heightStart", r.HeightStart)
	a.length("length", r.Length)
	a.lengthOpt("lengthEnd", r.LengthEnd)
	a.lengthOpt("lengthStart", r.LengthStart)
	a.lengthOpt("radiusEnd", r.RadiusEnd)
	a.lengthOpt("radiusStart", r.RadiusStart)
	a.length("s", r.S)
	a.length("tEnd", r.TEnd)
	a.length("tStart", r.TStart)
	a.lengthOpt("widthEnd", r.WidthEnd)
	a.lengthOpt("widthStart", r.WidthStart)
	a.length("zOffsetEnd", r.ZOffsetEnd)
	a.length("zOffsetStart", r.ZOffsetStart)
	return a
}

func (r *Repeat) xmlChildren(*xw.Writer) error { return nil }

// OutlineFillType is the material filling an outline.
type OutlineFillType int

const (
	OutlineFillTypeGrass OutlineFillType = iota
	OutlineFillTypeConcrete
	OutlineFillTypeCobble
	OutlineFillTypeAsphalt
	OutlineFillTypePavement
	OutlineFillTypeGravel
	OutlineFillTypeSoil
)

var outlineFillTypes = newEnumeration("OutlineFillType", map[OutlineFillType]string{
	OutlineFillTypeGrass:    "grass",
	OutlineFillTypeConcrete: "concrete",
	OutlineFillTypeCobble:   "cobble",
	OutlineFillTypeAsphalt:  "asphalt",
	OutlineFillTypePavement: "pavement",
	OutlineFillTypeGravel:   "gravel",
	OutlineFillTypeSoil:     "soil",
})

func (t OutlineFillType) String() string { return outlineFillTypes.format(t) }

// ParseOutlineFillType parses the canonical spelling of an
// OutlineFillType.
func ParseOutlineFillType(s string) (OutlineFillType, error) {
	return outlineFillTypes.parse(s)
}

// Corner is one corner of an outline: either a CornerRoad given in road
// coordinates or a CornerLocal given in the object frame.
type Corner interface {
	isCorner()
}

// Outline is a polygonal boundary of an object, built from corners of one
// kind.
type Outline struct {
	Closed   *bool
	FillType *OutlineFillType
	ID       *uint64
	LaneType *LaneType
	Outer    *bool
	Corners  nonempty.Sequence[Corner]

	AdditionalData AdditionalData
}

func parseOutline(c *parser.Context) (Outline, error) {
	var (
		o       Outline
		corners []Corner
	)
	err := c.Match(o.AdditionalData.absorb,
		parser.Child("cornerRoad", func(cc *parser.Context) error {
			v, err := parseCornerRoad(cc)
			if err != nil {
				return err
			}
			corners = append(corners, v)
			return nil
		}),
		parser.Child("cornerLocal", func(cc *parser.Context) error {
			v, err := parseCornerLocal(cc)
			if err != nil {
				return err
			}
			corners = append(corners, v)
			return nil
		}),
	)
	if err != nil {
		return Outline{}, err
	}

	if o.Corners, err = nonempty.From(corners); err != nil {
		return Outline{}, errors.ElementMissing(c.Path(), "cornerRoad|cornerLocal", "Outline")
	}
	if o.Closed, err = c.BoolOpt("closed"); err != nil {
		return Outline{}, err
	}
	if o.FillType, err = enumAttrOpt(c, "fillType", outlineFillTypes); err != nil {
		return Outline{}, err
	}
	if o.ID, err = c.Uint64Opt("id"); err != nil {
		return Outline{}, err
	}
	if o.LaneType, err = enumAttrOpt(c, "laneType", laneTypes); err != nil {
		return Outline{}, err
	}
	if o.Outer, err = c.BoolOpt("outer"); err != nil {
		return Outline{}, err
	}
	return o, nil
}

func (o *Outline) xmlAttrs() []xw.Attr {
	var a attrs
	a.booleanOpt("closed", o.Closed)
	if o.FillType != nil {
		a.str("fillType", o.FillType.String())
	}
	a.uint64Opt("id", o.ID)
	if o.LaneType != nil {
		a.str("laneType", o.LaneType.String())
	}
	a.booleanOpt("outer", o.Outer)
	return a
}

func (o *Outline) xmlChildren(w *xw.Writer) error {
	for _, corner := range o.Corners.Slice() {
		var err error
		switch v := corner.(type) {
		case CornerRoad:
			err = writeElement(w, "cornerRoad", &v)
		case CornerLocal:
			err = writeElement(w, "cornerLocal", &v)
		}
		if err != nil {
			return err
		}
	}
	return o.AdditionalData.write(w)
}

// Outlines groups multiple outlines of one object.
type Outlines struct {
	Outlines nonempty.Sequence[Outline]

	AdditionalData AdditionalData
}

func parseOutlines(c *parser.Context) (Outlines, error) {
	var (
		os       Outlines
		outlines []Outline
	)
	err := c.Match(os.AdditionalData.absorb,
		parser.RequiredChild("outline", func(cc *parser.Context) error {
			v, err := parseOutline(cc)
			if err != nil {
				return err
			}
			outlines = append(outlines, v)
			return nil
		}),
	)
	if err != nil {
		return Outlines{}, err
	}

	if os.Outlines, err = nonempty.From(outlines); err != nil {
		return Outlines{}, errors.ElementMissing(c.Path(), "outline", "Outlines")
	}
	return os, nil
}

func (os *Outlines) xmlAttrs() []xw.Attr { return nil }

func (os *Outlines) xmlChildren(w *xw.Writer) error {
	for i := range os.Outlines.Slice() {
		if err := writeElement(w, "outline", &os.Outlines.Slice()[i]); err != nil {
			return err
		}
	}
	return os.AdditionalData.write(w)
}

// CornerRoad is an outline corner in road coordinates.
type CornerRoad struct {
	Dz     unit.Length
	Height unit.Length
	ID     *uint64
	S      unit.Length
	T      unit.Length
}

func (CornerRoad) isCorner() {}

func parseCornerRoad(c *parser.Context) (CornerRoad, error) {
	var (
		r   CornerRoad
		err error
	)
	if r.Dz, err = c.Length("dz"); err != nil {
		return CornerRoad{}, err
	}
	if r.Height, err = c.Length("height"); err != nil {
		return CornerRoad{}, err
	}
	if r.ID, err = c.Uint64Opt("id"); err != nil {
		return CornerRoad{}, err
	}
	if r.S, err = c.Length("s"); err != nil {
		return CornerRoad{}, err
	}
	if r.T, err = c.Length("t"); err != nil {
		return CornerRoad{}, err
	}
	return r, nil
}

func (r *CornerRoad) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("dz", r.Dz)
	a.length("height", r.Height)
	a.uint64Opt("id", r.ID)
	a.length("s", r.S)
	a.length("t", r.T)
	return a
}

func (r *CornerRoad) xmlChildren(*xw.Writer) error { return nil }

// CornerLocal is an outline corner in the local u/v/z frame of the object.
type CornerLocal struct {
	Height unit.Length
	ID     *uint64
	U      unit.Length
	V      unit.Length
	Z      unit.Length
}

func (CornerLocal) isCorner() {}

func parseCornerLocal(c *parser.Context) (CornerLocal, error) {
	var (
		l   CornerLocal
		err error
	)
	if l.Height, err = c.Length("height"); err != nil {
		return CornerLocal{}, err
	}
	if l.ID, err = c.Uint64Opt("id"); err != nil {
		return CornerLocal{}, err
	}
	if l.U, err = c.Length("u"); err != nil {
		return CornerLocal{}, err
	}
	if l.V, err = c.Length("v"); err != nil {
		return CornerLocal{}, err
	}
	if l.Z, err = c.Length("z"); err != nil {
		return CornerLocal{}, err
	}
	return l, nil
}

func (l *CornerLocal) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("height", l.Height)
	a.uint64Opt("id", l.ID)
	a.length("u", l.U)
	a.length("v", l.V)
	a.length("z", l.Z)
	return a
}

func (l *CornerLocal) xmlChildren(*xw.Writer) error { return nil }

// ObjectMaterial overrides the surface material of an object.
type ObjectMaterial struct {
	Friction  *float64
	Roughness *float64
	Surface   *string
}

func parseObjectMaterial(c *parser.Context) (ObjectMaterial, error) {
	var (
		m   ObjectMaterial
		err error
	)
	if m.Friction, err = c.FloatOpt("friction"); err != nil {
		return ObjectMaterial{}, err
	}
	if m.Roughness, err = c.FloatOpt("roughness"); err != nil {
		return ObjectMaterial{}, err
	}
	m.Surface = c.StringOpt("surface")
	return m, nil
}

func (m *ObjectMaterial) xmlAttrs() []xw.Attr {
	var a attrs
	a.floatOpt("friction", m.Friction)
	a.floatOpt("roughness", m.Roughness)
	a.strOpt("surface", m.Surface)
	return a
}

func (m *ObjectMaterial) xmlChildren(*xw.Writer) error { return nil }

// LaneValidity restricts an entity to a range of lanes.
type LaneValidity struct {
	FromLane int64
	ToLane   int64
}

func parseLaneValidity(c *parser.Context) (LaneValidity, error) {
	var (
		v   LaneValidity
		err error
	)
	if v.FromLane, err = c.Int64("fromLane"); err != nil {
		return LaneValidity{}, err
	}
	if v.ToLane, err = c.Int64("toLane"); err != nil {
		return LaneValidity{}, err
	}
	return v, nil
}

func (v *LaneValidity) xmlAttrs() []xw.Attr {
	var a attrs
	a.int64("fromLane", v.FromLane)
	a.int64("toLane", v.ToLane)
	return a
}

func (v *LaneValidity) xmlChildren(*xw.Writer) error { return nil }

// ParkingAccess names who may use a parking space.
type ParkingAccess int

const (
	ParkingAccessAll ParkingAccess = iota
	ParkingAccessCar
	ParkingAccessWomen
	ParkingAccessHandicapped
	ParkingAccessBus
	ParkingAccessTruck
	ParkingAccessElectric
	ParkingAccessResidents
)

var parkingAccesses = newEnumeration("ParkingAccess", map[ParkingAccess]string{
	ParkingAccessAll:         "all",
	ParkingAccessCar:         "car",
	ParkingAccessWomen:       "women",
	ParkingAccessHandicapped: "handicapped",
	ParkingAccessBus:         "bus",
	ParkingAccessTruck:       "truck",
	ParkingAccessElectric:    "electric",
	ParkingAccessResidents:   "residents",
})

func (p ParkingAccess) String() string { return parkingAccesses.format(p) }

// ParseParkingAccess parses the canonical spelling of a ParkingAccess.
func ParseParkingAccess(s string) (ParkingAccess, error) { return parkingAccesses.parse(s) }

// ParkingSpace details an object of type parkingSpace.
type ParkingSpace struct {
	Access       ParkingAccess
	Restrictions *string
}

func parseParkingSpace(c *parser.Context) (ParkingSpace, error) {
	var (
		p   ParkingSpace
		err error
	)
	if p.Access, err = enumAttr(c, "access", parkingAccesses); err != nil {
		return ParkingSpace{}, err
	}
	p.Restrictions = c.StringOpt("restrictions")
	return p, nil
}

func (p *ParkingSpace) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("access", p.Access.String())
	a.strOpt("restrictions", p.Restrictions)
	return a
}

func (p *ParkingSpace) xmlChildren(*xw.Writer) error { return nil }

// SideType names the side of an object a marking applies to.
type SideType int

const (
	SideTypeLeft SideType = iota
	SideTypeRight
	SideTypeFront
	SideTypeRear
)

var sideTypes = newEnumeration("SideType", map[SideType]string{
	SideTypeLeft:  "left",
	SideTypeRight: "right",
	SideTypeFront: "front",
	SideTypeRear:  "rear",
})

func (t SideType) String() string { return sideTypes.format(t) }

// ParseSideType parses the canonical spelling of a SideType.
func ParseSideType(s string) (SideType, error) { return sideTypes.parse(s) }

// Markings groups the road-mark style markings painted on an object.
type Markings struct {
	Markings nonempty.Sequence[Marking]

	AdditionalData AdditionalData
}

func parseMarkings(c *parser.Context) (Markings, error) {
	var (
		ms       Markings
		markings []Marking
	)
	err := c.Match(ms.AdditionalData.absorb,
		parser.RequiredChild("marking", func(cc *parser.Context) error {
			v, err := parseMarking(cc)
			if err != nil {
				return err
			}
			markings = append(markings, v)
			return nil
		}),
	)
	if err != nil {
		return Markings{}, err
	}

	if ms.Markings, err = nonempty.From(markings); err != nil {
		return Markings{}, errors.ElementMissing(c.Path(), "marking", "Markings")
	}
	return ms, nil
}

func (ms *Markings) xmlAttrs() []xw.Attr { return nil }

func (ms *Markings) xmlChildren(w *xw.Writer) error {
	for i := range ms.Markings.Slice() {
		if err := writeElement(w, "marking", &ms.Markings.Slice()[i]); err != nil {
			return err
		}
	}
	return ms.AdditionalData.write(w)
}

// Marking is one marking on an object, optionally pinned to outline
// corners.
type Marking struct {
	CornerReferences []CornerReference

	Color       Color
	LineLength  unit.Length
	Side        *SideType
	SpaceLength unit.Length
	StartOffset unit.Length
	StopOffset  unit.Length
	Weight      *Weight
	Width       *unit.Length
	ZOffset     *unit.Length

	AdditionalData AdditionalData
}

func parseMarking(c *parser.Context) (Marking, error) {
	var m Marking
	err := c.Match(m.AdditionalData.absorb,
		parser.Child("cornerReference", func(cc *parser.Context) error {
			v, err := parseCornerReference(cc)
			if err != nil {
				return err
			}
			m.CornerReferences = append(m.CornerReferences, v)
			return nil
		}),
	)
	if err != nil {
		return Marking{}, err
	}

	if m.Color, err = enumAttr(c, "color", colors); err != nil {
		return Marking{}, err
	}
	if m.LineLength, err = c.Length("lineLength"); err != nil {
		return Marking{}, err
	}
	if m.Side, err = enumAttrOpt(c, "side", sideTypes); err != nil {
		return Marking{}, err
	}
	if m.SpaceLength, err = c.Length("spaceLength"); err != nil {
		return Marking{}, err
	}
	if m.StartOffset, err = c.Length("startOffset"); err != nil {
		return Marking{}, err
	}
	if m.StopOffset, err = c.Length("stopOffset"); err != nil {
		return Marking{}, err
	}
	if m.Weight, err = enumAttrOpt(c, "weight", weights); err != nil {
		return Marking{}, err
	}
	if m.Width, err = c.LengthOpt("width"); err != nil {
		return Marking{}, err
	}
	if m.ZOffset, err = c.LengthOpt("zOffset"); err != nil {
		return Marking{}, err
	}
	return m, nil
}

func (m *Marking) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("color", m.Color.String())
	a.length("lineLength", m.LineLength)
	if m.Side != nil {
		a.str("side", m.Side.String())
	}
	a.length("spaceLength", m.SpaceLength)
	a.length("startOffset", m.StartOffset)
	a.length("stopOffset", m.StopOffset)
	if m.Weight != nil {
		a.str("weight", m.Weight.String())
	}
	a.lengthOpt("width", m.Width)
	a.lengthOpt("zOffset", m.ZOffset)
	return a
}

func (m *Marking) xmlChildren(w *xw.Writer) error {
	for i := range m.CornerReferences {
		if err := writeElement(w, "cornerReference", &m.CornerReferences[i]); err != nil {
			return err
		}
	}
	return m.AdditionalData.write(w)
}

// CornerReference points a marking or border at one outline corner by ID.
type CornerReference struct {
	ID uint64
}

func parseCornerReference(c *parser.Context) (CornerReference, error) {
	var (
		r   CornerReference
		err error
	)
	if r.ID, err = c.Uint64("id"); err != nil {
		return CornerReference{}, err
	}
	return r, nil
}

func (r *CornerReference) xmlAttrs() []xw.Attr {
	var a attrs
	a.uint64("id", r.ID)
	return a
}

func (r *CornerReference) xmlChildren(*xw.Writer) error { return nil }

// BorderType is the material of an object border.
type BorderType int

const (
	BorderTypeConcrete BorderType = iota
	BorderTypeCurb
)

var borderTypes = newEnumeration("BorderType", map[BorderType]string{
	BorderTypeConcrete: "concrete",
	BorderTypeCurb:     "curb",
})

func (t BorderType) String() string { return borderTypes.format(t) }

// ParseBorderType parses the canonical spelling of a BorderType.
func ParseBorderType(s string) (BorderType, error) { return borderTypes.parse(s) }

// Borders groups the borders of an object.
type Borders struct {
	Borders nonempty.Sequence[ObjectBorder]

	AdditionalData AdditionalData
}

func parseBorders(c *parser.Context) (Borders, error) {
	var (
		bs      Borders
		borders []ObjectBorder
	)
	err := c.Match(bs.AdditionalData.absorb,
		parser.RequiredChild("border", func(cc *parser.Context) error {
			v, err := parseObjectBorder(cc)
			if err != nil {
				return err
			}
			borders = append(borders, v)
			return nil
		}),
	)
	if err != nil {
		return Borders{}, err
	}

	if bs.Borders, err = nonempty.From(borders); err != nil {
		return Borders{}, errors.ElementMissing(c.Path(), "border", "Borders")
	}
	return bs, nil
}

func (bs *Borders) xmlAttrs() []xw.Attr { return nil }

func (bs *Borders) xmlChildren(w *xw.Writer) error {
	for i := range bs.Borders.Slice() {
		if err := writeElement(w, "border", &bs.Borders.Slice()[i]); err != nil {
			return err
		}
	}
	return bs.AdditionalData.write(w)
}

// ObjectBorder runs along one outline of an object.
type ObjectBorder struct {
	CornerReferences []CornerReference

	OutlineID          uint64
	Type               BorderType
	UseCompleteOutline *bool
	Width              unit.Length

	AdditionalData AdditionalData
}

func parseObjectBorder(c *parser.Context) (ObjectBorder, error) {
	var b ObjectBorder
	err := c.Match(b.AdditionalData.absorb,
		parser.Child("cornerReference", func(cc *parser.Context) error {
			v, err := parseCornerReference(cc)
			if err != nil {
				return err
			}
			b.CornerReferences = append(b.CornerReferences, v)
			return nil
		}),
	)
	if err != nil {
		return ObjectBorder{}, err
	}

	if b.OutlineID, err = c.Uint64("outlineId"); err != nil {
		return ObjectBorder{}, err
	}
	if b.Type, err = enumAttr(c, "type", borderTypes); err != nil {
		return ObjectBorder{}, err
	}
	if b.UseCompleteOutline, err = c.BoolOpt("useCompleteOutline"); err != nil {
		return ObjectBorder{}, err
	}
	if b.Width, err = c.Length("width"); err != nil {
		return ObjectBorder{}, err
	}
	return b, nil
}

func (b *ObjectBorder) xmlAttrs() []xw.Attr {
	var a attrs
	a.uint64("outlineId", b.OutlineID)
	a.str("type", b.Type.String())
	a.booleanOpt("useCompleteOutline", b.UseCompleteOutline)
	a.length("width", b.Width)
	return a
}

func (b *ObjectBorder) xmlChildren(w *xw.Writer) error {
	for i := range b.CornerReferences {
		if err := writeElement(w, "cornerReference", &b.CornerReferences[i]); err != nil {
			return err
		}
	}
	return b.AdditionalData.write(w)
}

// ObjectSurface overrides the road surface underneath an object.
type ObjectSurface struct {
	Crg *ObjectCrg

	AdditionalData AdditionalData
}

func parseObjectSurface(c *parser.Context) (ObjectSurface, error) {
	var s ObjectSurface
	err := c.Match(s.AdditionalData.absorb,
		parser.Child("CRG", func(cc *parser.Context) error {
			v, err := parseObjectCrg(cc)
			if err != nil {
				return err
			}
			s.Crg = &v
			return nil
		}),
	)
	if err != nil {
		return ObjectSurface{}, err
	}
	return s, nil
}

func (s *ObjectSurface) xmlAttrs() []xw.Attr { return nil }

func (s *ObjectSurface) xmlChildren(w *xw.Writer) error {
	if s.Crg != nil {
		if err := writeElement(w, "CRG", s.Crg); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// ObjectCrg references an OpenCRG file describing the object surface.
type ObjectCrg struct {
	File               *string
	HideRoadSurfaceCRG *bool
	ZScale             *float64
}

func parseObjectCrg(c *parser.Context) (ObjectCrg, error) {
	var (
		g   ObjectCrg
		err error
	)
	g.File = c.StringOpt("file")
	if g.HideRoadSurfaceCRG, err = c.BoolOpt("hideRoadSurfaceCRG"); err != nil {
		return ObjectCrg{}, err
	}
	if g.ZScale, err = c.FloatOpt("zScale"); err != nil {
		return ObjectCrg{}, err
	}
	return g, nil
}

func (g *ObjectCrg) xmlAttrs() []xw.Attr {
	var a attrs
	a.strOpt("file", g.File)
	a.booleanOpt("hideRoadSurfaceCRG", g.HideRoadSurfaceCRG)
	a.floatOpt("zScale", g.ZScale)
	return a
}

func (g *ObjectCrg) xmlChildren(*xw.Writer) error { return nil }

// TunnelType distinguishes ordinary tunnels from underpasses.
type TunnelType int

const (
	TunnelTypeStandard TunnelType = iota
	TunnelTypeUnderpass
)

var tunnelTypes = newEnumeration("TunnelType", map[TunnelType]string{
	TunnelTypeStandard:  "standard",
	TunnelTypeUnderpass: "underpass",
})

func (t TunnelType) String() string { return tunnelTypes.format(t) }

// ParseTunnelType parses the canonical spelling of a TunnelType.
func ParseTunnelType(s string) (TunnelType, error) { return tunnelTypes.parse(s) }

// Tunnel covers a stretch of the road.
type Tunnel struct {
	Validities []LaneValidity

	Daylight *float64
	ID       string
	Length   unit.Length
	Lighting *float64
	Name     *string
	S        unit.Length
	Type     TunnelType

	AdditionalData AdditionalData
}

func parseTunnel(c *parser.Context) (Tunnel, error) {
	var t Tunnel
	err := c.Match(t.AdditionalData.absorb,
		parser.Child("validity", func(cc *parser.Context) error {
			v, err := parseLaneValidity(cc)
			if err != nil {
				return err
			}
			t.Validities = append(t.Validities, v)
			return nil
		}),
	)
	if err != nil {
		return Tunnel{}, err
	}

	if t.Daylight, err = c.FloatOpt("daylight"); err != nil {
		return Tunnel{}, err
	}
	if t.ID, err = c.String("id"); err != nil {
		return Tunnel{}, err
	}
	if t.Length, err = c.Length("length"); err != nil {
		return Tunnel{}, err
	}
	if t.Lighting, err = c.FloatOpt("lighting"); err != nil {
		return Tunnel{}, err
	}
	t.Name = c.StringOpt("name")
	if t.S, err = c.Length("s"); err != nil {
		return Tunnel{}, err
	}
	if t.Type, err = enumAttr(c, "type", tunnelTypes); err != nil {
		return Tunnel{}, err
	}
	return t, nil
}

func (t *Tunnel) xmlAttrs() []xw.Attr {
	var a attrs
	a.floatOpt("daylight", t.Daylight)
	a.str("id", t.ID)
	a.length("length", t.Length)
	a.floatOpt("lighting", t.Lighting)
	a.strOpt("name", t.Name)
	a.length("s", t.S)
	a.str("type", t.Type.String())
	return a
}

func (t *Tunnel) xmlChildren(w *xw.Writer) error {
	for i := range t.Validities {
		if err := writeElement(w, "validity", &t.Validities[i]); err != nil {
			return err
		}
	}
	return t.AdditionalData.write(w)
}

// BridgeType is the construction material of a bridge.
type BridgeType int

const (
	BridgeTypeConcrete BridgeType = iota
	BridgeTypeSteel
	BridgeTypeBrick
	BridgeTypeWood
)

var bridgeTypes = newEnumeration("BridgeType", map[BridgeType]string{
	BridgeTypeConcrete: "concrete",
	BridgeTypeSteel:    "steel",
	BridgeTypeBrick:    "brick",
	BridgeTypeWood:     "wood",
})

func (t BridgeType) String() string { return bridgeTypes.format(t) }

// ParseBridgeType parses the canonical spelling of a BridgeType.
func ParseBridgeType(s string) (BridgeType, error) { return bridgeTypes.parse(s) }

// Bridge carries the road over a stretch.
type Bridge struct {
	Validities []LaneValidity

	ID     string
	Length unit.Length
	Name   *string
	S      unit.Length
	Type   BridgeType

	AdditionalData AdditionalData
}

func parseBridge(c *parser.Context) (Bridge, error) {
	var b Bridge
	err := c.Match(b.AdditionalData.absorb,
		parser.Child("validity", func(cc *parser.Context) error {
			v, err := parseLaneValidity(cc)
			if err != nil {
				return err
			}
			b.Validities = append(b.Validities, v)
			return nil
		}),
	)
	if err != nil {
		return Bridge{}, err
	}

	if b.ID, err = c.String("id"); err != nil {
		return Bridge{}, err
	}
	if b.Length, err = c.Length("length"); err != nil {
		return Bridge{}, err
	}
	b.Name = c.StringOpt("name")
	if b.S, err = c.Length("s"); err != nil {
		return Bridge{}, err
	}
	if b.Type, err = enumAttr(c, "type", bridgeTypes); err != nil {
		return Bridge{}, err
	}
	return b, nil
}

func (b *Bridge) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", b.ID)
	a.length("length", b.Length)
	a.strOpt("name", b.Name)
	a.length("s", b.S)
	a.str("type", b.Type.String())
	return a
}

func (b *Bridge) xmlChildren(w *xw.Writer) error {
	for i := range b.Validities {
		if err := writeElement(w, "validity", &b.Validities[i]); err != nil {
			return err
		}
	}
	return b.AdditionalData.write(w)
}

// ObjectReference reuses an object defined on another road.
type ObjectReference struct {
	Validities []LaneValidity

	ID          string
	Orientation Orientation
	S           unit.Length
	T           unit.Length
	ValidLength *unit.Length
	ZOffset     *unit.Length

	AdditionalData AdditionalData
}

func parseObjectReference(c *parser.Context) (ObjectReference, error) {
	var r ObjectReference
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
		return ObjectReference{}, err
	}

	if r.ID, err = c.String("id"); err != nil {
		return ObjectReference{}, err
	}
	if r.Orientation, err = enumAttr(c, "orientation", orientations); err != nil {
		return ObjectReference{}, err
	}
	if r.S, err = c.Length("s"); err != nil {
		return ObjectReference{}, err
	}
	if r.T, err = c.Length("t"); err != nil {
		return ObjectReference{}, err
	}
	if r.ValidLength, err = c.LengthOpt("validLength"); err != nil {
		return ObjectReference{}, err
	}
	if r.ZOffset, err = c.LengthOpt("zOffset"); err != nil {
		return ObjectReference{}, err
	}
	return r, nil
}

func (r *ObjectReference) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", r.ID)
	a.str("orientation", r.Orientation.String())
	a.length("s", r.S)
	a.length("t", r.T)
	a.lengthOpt("validLength", r.ValidLength)
	a.lengthOpt("zOffset", r.ZOffset)
	return a
}

func (r *ObjectReference) xmlChildren(w *xw.Writer) error {
	for i := range r.Validities {
		if err := writeElement(w, "validity", &r.Validities[i]); err != nil {
			return err
		}
	}
	return r.AdditionalData.write(w)
}
