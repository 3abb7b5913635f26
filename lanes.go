package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
)

// Lanes carries the lane offsets and lane sections of a road. A road has
// at least one lane section.
type Lanes struct {
	LaneOffsets  []LaneOffset
	LaneSections nonempty.Sequence[LaneSection]

	AdditionalData AdditionalData
}

func parseLanes(c *parser.Context) (Lanes, error) {
	var (
		l        Lanes
		sections []LaneSection
	)
	err := c.Match(l.AdditionalData.absorb,
		parser.Child("laneOffset", func(cc *parser.Context) error {
			o, err := parseLaneOffset(cc)
			if err != nil {
				return err
			}
			l.LaneOffsets = append(l.LaneOffsets, o)
			return nil
		}),
		parser.RequiredChild("laneSection", func(cc *parser.Context) error {
			s, err := parseLaneSection(cc)
			if err != nil {
				return err
			}
			sections = append(sections, s)
			return nil
		}),
	)
	if err != nil {
		return Lanes{}, err
	}

	if l.LaneSections, err = nonempty.From(sections); err != nil {
		return Lanes{}, errors.ElementMissing(c.Path(), "laneSection", "Lanes")
	}
	return l, nil
}

func (l *Lanes) xmlAttrs() []xw.Attr { return nil }

func (l *Lanes) xmlChildren(w *xw.Writer) error {
	for i := range l.LaneOffsets {
		if err := writeElement(w, "laneOffset", &l.LaneOffsets[i]); err != nil {
			return err
		}
	}
	for i := range l.LaneSections.Slice() {
		if err := writeElement(w, "laneSection", &l.LaneSections.Slice()[i]); err != nil {
			return err
		}
	}
	return l.AdditionalData.write(w)
}

// LaneOffset shifts the centre lane away from the reference line by the
// cubic offset(ds) = a + b*ds + c*ds^2 + d*ds^3 from s onwards.
type LaneOffset struct {
	A float64
	B float64
	C float64
	D float64
	S float64
}

func parseLaneOffset(c *parser.Context) (LaneOffset, error) {
	var (
		o   LaneOffset
		err error
	)
	if o.A, err = c.Float("a"); err != nil {
		return LaneOffset{}, err
	}
	if o.B, err = c.Float("b"); err != nil {
		return LaneOffset{}, err
	}
	if o.C, err = c.Float("c"); err != nil {
		return LaneOffset{}, err
	}
	if o.D, err = c.Float("d"); err != nil {
		return LaneOffset{}, err
	}
	if o.S, err = c.Float("s"); err != nil {
		return LaneOffset{}, err
	}
	return o, nil
}

func (o *LaneOffset) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("a", o.A)
	a.float("b", o.B)
	a.float("c", o.C)
	a.float("d", o.D)
	a.float("s", o.S)
	return a
}

func (o *LaneOffset) xmlChildren(*xw.Writer) error { return nil }

// LaneSection is a stretch of the road with a fixed lane arrangement,
// from s until the next lane section. The centre lane group is always
// present; left and right groups are optional.
type LaneSection struct {
	S          float64
	SingleSide *bool
	Left       *Left
	Center     Center
	Right      *Right

	AdditionalData AdditionalData
}

func parseLaneSection(c *parser.Context) (LaneSection, error) {
	var s LaneSection
	err := c.Match(s.AdditionalData.absorb,
		parser.Child("left", func(cc *parser.Context) error {
			l, err := parseLeft(cc)
			if err != nil {
				return err
			}
			s.Left = &l
			return nil
		}),
		parser.RequiredChild("center", func(cc *parser.Context) error {
			ce, err := parseCenter(cc)
			if err != nil {
				return err
			}
			s.Center = ce
			return nil
		}),
		parser.Child("right", func(cc *parser.Context) error {
			r, err := parseRight(cc)
			if err != nil {
				return err
			}
			s.Right = &r
			return nil
		}),
	)
	if err != nil {
		return LaneSection{}, err
	}

	if s.S, err = c.Float("s"); err != nil {
		return LaneSection{}, err
	}
	if s.SingleSide, err = c.BoolOpt("singleSide"); err != nil {
		return LaneSection{}, err
	}
	return s, nil
}

func (s *LaneSection) xmlAttrs() []xw.Attr {
	var a attrs
	a.float("s", s.S)
	a.booleanOpt("singleSide", s.SingleSide)
	return a
}

func (s *LaneSection) xmlChildren(w *xw.Writer) error {
	if s.Left != nil {
		if err := writeElement(w, "left", s.Left); err != nil {
			return err
		}
	}
	if err := writeElement(w, "center", &s.Center); err != nil {
		return err
	}
	if s.Right != nil {
		if err := writeElement(w, "right", s.Right); err != nil {
			return err
		}
	}
	return s.AdditionalData.write(w)
}

// Left holds the lanes left of the reference line, in descending ID order.
type Left struct {
	Lanes nonempty.Sequence[LeftLane]

	AdditionalData AdditionalData
}

func parseLeft(c *parser.Context) (Left, error) {
	var (
		l     Left
		lanes []LeftLane
	)
	err := c.Match(l.AdditionalData.absorb,
		parser.RequiredChild("lane", func(cc *parser.Context) error {
			v, err := parseLeftLane(cc)
			if err != nil {
				return err
			}
			lanes = append(lanes, v)
			return nil
		}),
	)
	if err != nil {
		return Left{}, err
	}

	if l.Lanes, err = nonempty.From(lanes); err != nil {
		return Left{}, errors.ElementMissing(c.Path(), "lane", "Left")
	}
	return l, nil
}

func (l *Left) xmlAttrs() []xw.Attr { return nil }

func (l *Left) xmlChildren(w *xw.Writer) error {
	for i := range l.Lanes.Slice() {
		if err := writeElement(w, "lane", &l.Lanes.Slice()[i]); err != nil {
			return err
		}
	}
	return l.AdditionalData.write(w)
}

// Center holds the centre lanes. The centre lane separates left from right
// and has no width of its own.
type Center struct {
	Lanes nonempty.Sequence[CenterLane]

	AdditionalData AdditionalData
}

func parseCenter(c *parser.Context) (Center, error) {
	var (
		ce    Center
		lanes []CenterLane
	)
	err := c.Match(ce.AdditionalData.absorb,
		parser.RequiredChild("lane", func(cc *parser.Context) error {
			v, err := parseCenterLane(cc)
			if err != nil {
				return err
			}
			lanes = append(lanes, v)
			return nil
		}),
	)
	if err != nil {
		return Center{}, err
	}

	if ce.Lanes, err = nonempty.From(lanes); err != nil {
		return Center{}, errors.ElementMissing(c.Path(), "lane", "Center")
	}
	return ce, nil
}

func (ce *Center) xmlAttrs() []xw.Attr { return nil }

func (ce *Center) xmlChildren(w *xw.Writer) error {
	for i := range ce.Lanes.Slice() {
		if err := writeElement(w, "lane", &ce.Lanes.Slice()[i]); err != nil {
			return err
		}
	}
	return ce.AdditionalData.write(w)
}

// Right holds the lanes right of the reference line, in descending ID
// order.
type Right struct {
	Lanes nonempty.Sequence[RightLane]

	AdditionalData AdditionalData
}

func parseRight(c *parser.Context) (Right, error) {
	var (
		r     Right
		lanes []RightLane
	)
	err := c.Match(r.AdditionalData.absorb,
		parser.RequiredChild("lane", func(cc *parser.Context) error {
			v, err := parseRightLane(cc)
			if err != nil {
				return err
			}
			lanes = append(lanes, v)
			return nil
		}),
	)
	if err != nil {
		return Right{}, err
	}

	if r.Lanes, err = nonempty.From(lanes); err != nil {
		return Right{}, errors.ElementMissing(c.Path(), "lane", "Right")
	}
	return r, nil
}

func (r *Right) xmlAttrs() []xw.Attr { return nil }

func (r *Right) xmlChildren(w *xw.Writer) error {
	for i := range r.Lanes.Slice() {
		if err := writeElement(w, "lane", &r.Lanes.Slice()[i]); err != nil {
			return err
		}
	}
	return r.AdditionalData.write(w)
}

// LeftLane is a lane left of the reference line. IDs are positive.
type LeftLane struct {
	ID int64
	Lane
}

func parseLeftLane(c *parser.Context) (LeftLane, error) {
	var (
		l   LeftLane
		err error
	)
	if l.Lane, err = parseLane(c); err != nil {
		return LeftLane{}, err
	}
	if l.ID, err = c.Int64("id"); err != nil {
		return LeftLane{}, err
	}
	return l, nil
}

func (l *LeftLane) xmlAttrs() []xw.Attr {
	a := attrs(l.Lane.xmlAttrs())
	a.int64("id", l.ID)
	return a
}

// CenterLane is the centre lane of a lane section. Its ID is zero.
type CenterLane struct {
	ID int64
	Lane
}

func parseCenterLane(c *parser.Context) (CenterLane, error) {
	var (
		l   CenterLane
		err error
	)
	if l.Lane, err = parseLane(c); err != nil {
		return CenterLane{}, err
	}
	if l.ID, err = c.Int64("id"); err != nil {
		return CenterLane{}, err
	}
	return l, nil
}

func (l *CenterLane) xmlAttrs() []xw.Attr {
	a := attrs(l.Lane.xmlAttrs())
	a.int64("id", l.ID)
	return a
}

// RightLane is a lane right of the reference line. IDs are negative.
type RightLane struct {
	ID int64
	Lane
}

func parseRightLane(c *parser.Context) (RightLane, error) {
	var (
		l   RightLane
		err error
	)
	if l.Lane, err = parseLane(c); err != nil {
		return RightLane{}, err
	}
	if l.ID, err = c.Int64("id"); err != nil {
		return RightLane{}, err
	}
	return l, nil
}

func (l *RightLane) xmlAttrs() []xw.Attr {
	a := attrs(l.Lane.xmlAttrs())
	a.int64("id", l.ID)
	return a
}

// LaneLink connects a lane to its predecessors and successors in the
// neighbouring lane sections.
type LaneLink struct {
	Predecessors []LaneLinkTarget
	Successors   []LaneLinkTarget

	AdditionalData AdditionalData
}

func parseLaneLink(c *parser.Context) (LaneLink, error) {
	var l LaneLink
	err := c.Match(l.AdditionalData.absorb,
		parser.Child("predecessor", func(cc *parser.Context) error {
			t, err := parseLaneLinkTarget(cc)
			if err != nil {
				return err
			}
			l.Predecessors = append(l.Predecessors, t)
			return nil
		}),
		parser.Child("successor", func(cc *parser.Context) error {
			t, err := parseLaneLinkTarget(cc)
			if err != nil {
				return err
			}
			l.Successors = append(l.Successors, t)
			return nil
		}),
	)
	if err != nil {
		return LaneLink{}, err
	}
	return l, nil
}

func (l *LaneLink) xmlAttrs() []xw.Attr { return nil }

func (l *LaneLink) xmlChildren(w *xw.Writer) error {
	for i := range l.Predecessors {
		if err := writeElement(w, "predecessor", &l.Predecessors[i]); err != nil {
			return err
		}
	}
	for i := range l.Successors {
		if err := writeElement(w, "successor", &l.Successors[i]); err != nil {
			return err
		}
	}
	return l.AdditionalData.write(w)
}

// LaneLinkTarget names a linked lane by its ID.
type LaneLinkTarget struct {
	ID int64
}

func parseLaneLinkTarget(c *parser.Context) (LaneLinkTarget, error) {
	var (
		t   LaneLinkTarget
		err error
	)
	if t.ID, err = c.Int64("id"); err != nil {
		return LaneLinkTarget{}, err
	}
	return t, nil
}

func (t *LaneLinkTarget) xmlAttrs() []xw.Attr {
	var a attrs
	a.int64("id", t.ID)
	return a
}

func (t *LaneLinkTarget) xmlChildren(*xw.Writer) error { return nil }
