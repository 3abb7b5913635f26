package opendrive

import (
	"strconv"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/internal/scientific"
	"github.com/jacoelho/opendrive/unit"
)

// node is the emit contract shared by every element type: the attributes of
// the start tag (present optionals only, canonical spellings) and the child
// elements in schema order followed by any additional data.
type node interface {
	xmlAttrs() []xw.Attr
	xmlChildren(w *xw.Writer) error
}

func writeElement(w *xw.Writer, name string, n node) error {
	if err := w.StartElem(xw.Elem{Name: name}); err != nil {
		return err
	}
	for _, a := range n.xmlAttrs() {
		if err := w.WriteAttr(a); err != nil {
			return err
		}
	}
	if err := n.xmlChildren(w); err != nil {
		return err
	}
	return w.EndElem()
}

// attrs accumulates start-tag attributes. Optional helpers append nothing
// for nil, so absent optionals never reach the document.
type attrs []xw.Attr

func (a *attrs) str(name, value string) {
	*a = append(*a, xw.Attr{Name: name, Value: value})
}

func (a *attrs) strOpt(name string, v *string) {
	if v != nil {
		a.str(name, *v)
	}
}

func (a *attrs) float(name string, v float64) {
	a.str(name, scientific.Format(v))
}

func (a *attrs) floatOpt(name string, v *float64) {
	if v != nil {
		a.float(name, *v)
	}
}

func (a *attrs) length(name string, v unit.Length) {
	a.float(name, v.Metres())
}

func (a *attrs) lengthOpt(name string, v *unit.Length) {
	if v != nil {
		a.length(name, *v)
	}
}

func (a *attrs) angle(name string, v unit.Angle) {
	a.float(name, v.Radians())
}

func (a *attrs) angleOpt(name string, v *unit.Angle) {
	if v != nil {
		a.angle(name, *v)
	}
}

func (a *attrs) curvature(name string, v unit.Curvature) {
	a.float(name, v.PerMetre())
}

func (a *attrs) boolean(name string, v bool) {
	a.str(name, strconv.FormatBool(v))
}

func (a *attrs) booleanOpt(name string, v *bool) {
	if v != nil {
		a.boolean(name, *v)
	}
}

func (a *attrs) yesNo(name string, v bool) {
	if v {
		a.str(name, "yes")
	} else {
		a.str(name, "no")
	}
}

func (a *attrs) yesNoOpt(name string, v *bool) {
	if v != nil {
		a.yesNo(name, *v)
	}
}

func (a *attrs) int64(name string, v int64) {
	a.str(name, strconv.FormatInt(v, 10))
}

func (a *attrs) uint64(name string, v uint64) {
	a.str(name, strconv.FormatUint(v, 10))
}

func (a *attrs) uint64Opt(name string, v *uint64) {
	if v != nil {
		a.uint64(name, *v)
	}
}

func (a *attrs) uint16(name string, v uint16) {
	a.str(name, strconv.FormatUint(uint64(v), 10))
}
