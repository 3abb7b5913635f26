package opendrive

import (
	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/pkg/nonempty"
)

// Controller groups dynamic signals that are switched together, such as
// the signals of one traffic light phase. A controller has at least one
// control entry.
type Controller struct {
	Controls nonempty.Sequence[Control]

	ID       string
	Name     *string
	Sequence *uint64

	AdditionalData AdditionalData
}

func parseController(c *parser.Context) (Controller, error) {
	var (
		ctrl     Controller
		controls []Control
	)
	err := c.Match(ctrl.AdditionalData.absorb,
		parser.RequiredChild("control", func(cc *parser.Context) error {
			v, err := parseControl(cc)
			if err != nil {
				return err
			}
			controls = append(controls, v)
			return nil
		}),
	)
	if err != nil {
		return Controller{}, err
	}

	if ctrl.Controls, err = nonempty.From(controls); err != nil {
		return Controller{}, errors.ElementMissing(c.Path(), "control", "Controller")
	}
	if ctrl.ID, err = c.String("id"); err != nil {
		return Controller{}, err
	}
	ctrl.Name = c.StringOpt("name")
	if ctrl.Sequence, err = c.Uint64Opt("sequence"); err != nil {
		return Controller{}, err
	}
	return ctrl, nil
}

func (ctrl *Controller) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("id", ctrl.ID)
	a.strOpt("name", ctrl.Name)
	a.uint64Opt("sequence", ctrl.Sequence)
	return a
}

func (ctrl *Controller) xmlChildren(w *xw.Writer) error {
	for i := range ctrl.Controls.Slice() {
		if err := writeElement(w, "control", &ctrl.Controls.Slice()[i]); err != nil {
			return err
		}
	}
	return ctrl.AdditionalData.write(w)
}

// Control assigns one signal to a controller.
type Control struct {
	SignalID string
	Type     *string
}

func parseControl(c *parser.Context) (Control, error) {
	var (
		ct  Control
		err error
	)
	if ct.SignalID, err = c.String("signalId"); err != nil {
		return Control{}, err
	}
	ct.Type = c.StringOpt("type")
	return ct, nil
}

func (ct *Control) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("signalId", ct.SignalID)
	a.strOpt("type", ct.Type)
	return a
}

func (ct *Control) xmlChildren(*xw.Writer) error { return nil }
