package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
)

// JunctionGroupType classifies a junction group.
type JunctionGroupType int

const (
	JunctionGroupTypeRoundabout JunctionGroupType = iota
	JunctionGroupTypeUnknown
)

var junctionGroupTypes = newEnumeration("JunctionGroupType", map[JunctionGroupType]string{
	JunctionGroupTypeRoundabout: "roundabout",
	JunctionGroupTypeUnknown:    "unknown",
})

func (t JunctionGroupType) String() string { return junctionGroupTypes.format(t) }

// ParseJunctionGroupType parses the canonical spelling of a
// JunctionGroupType.
func ParseJunctionGroupType(s string) (JunctionGroupType, error) {
	return junctionGroupTypes.parse(s)
}

// JunctionGroup bundles junctions that form a logical unit, such as the
// junctions of a roundabout.
type JunctionGroup struct {
	JunctionReferences nonempty.Sequence[JunctionReference]

	ID   string
	Name *string
	Type JunctionGroupType

	AdditionalData AdditionalData
}

func parseJunctionGroup(c *parser.Context) (JunctionGroup, error) {
	var (
		g    JunctionGroup
		refs []JunctionReference
	)
	err := c.Match(g.AdditionalData.absorb,
		parser.RequiredChild("junctionReference", func(cc *parser.Context) error {
			r, err := parseJunctionReference(cc)
			if err != nil {
				return err
			}
			refs = append(refs, r)
			return nil
		}),
	)
	if err != nil {
		return JunctionGroup{}, err
	}

	if g.JunctionReferences, err = nonempty.From(refs); err != nil {
		return JunctionGroup{}, errors.ElementMissing(c.Path(), "junctionReference", "JunctionGroup")
	}
	if g.ID, err = c.String("id"); err != nil {
		return JunctionGroup{}, err
	}
	g.Name = c.StringOpt("name")
	if g.Type, err = enumAttr(c, "type", junctionGroupTypes); err != nil {
		return JunctionGroup{}, err
	}
	return g, nil
}

func (g *JunctionGroup) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", g.ID)
	a.strOpt("name", g.Name)
	a.str("type", g.Type.String())
	return a
}

func (g *JunctionGroup) xmlChildren(w *xw.Writer) error {
	for i := range g.JunctionReferences.Slice() {
		if err := writeElement(w, "junctionReference", &g.JunctionReferences.Slice()[i]); err != nil {
			return err
		}
	}
	return g.AdditionalData.write(w)
}

// JunctionReference names one junction belonging to the group.
type JunctionReference struct {
	Junction string
}

func parseJunctionReference(c *parser.Context) (JunctionReference, error) {
	var (
		r   JunctionReference
		err error
	)
	if r.Junction, err = c.String("junction"); err != nil {
		return JunctionReference{}, err
	}
	return r, nil
}

func (r *JunctionReference) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("junction", r.Junction)
	return a
}

func (r *JunctionReference) xmlChildren(*xw.Writer) error { return nil }
