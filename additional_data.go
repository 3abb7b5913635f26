package opendrive

import (
	"maps"
	"slices"
	"strings"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/jacoelho/opendrive/errors"
	"github.com/jacoelho/opendrive/internal/parser"
	"github.com/jacoelho/opendrive/unit"
)

// AdditionalData is the extension bucket attached to every element that may
// carry user data. Child elements that match no statically-known name of the
// enclosing element are routed here: `<dataQuality>`, `<include>` and
// `<userData>` are decoded into their types, anything else is preserved as a
// raw Element tree (or rejected, under Options.RejectUnknownAdditionalData).
// On emit the bucket is appended after the statically-known children.
type AdditionalData struct {
	DataQuality *DataQuality
	Includes    []Include
	UserData    []UserData
	Unknown     []Element
}

func (d *AdditionalData) absorb(name string, c *parser.Context) error {
	switch {
	case strings.EqualFold(name, "dataQuality"):
		q, err := parseDataQuality(c)
		if err != nil {
			return err
		}
		d.DataQuality = &q
	case strings.EqualFold(name, "include"):
		in, err := parseInclude(c)
		if err != nil {
			return err
		}
		d.Includes = append(d.Includes, in)
	case strings.EqualFold(name, "userData"):
		u, err := parseUserData(c)
		if err != nil {
			return err
		}
		d.UserData = append(d.UserData, u)
	default:
		if c.Options().RejectUnknownAdditionalData {
			return errors.InvalidValueFor(c.Path(), name)
		}
		el, err := parseElement(c)
		if err != nil {
			return err
		}
		d.Unknown = append(d.Unknown, el)
	}
	return nil
}

func (d *AdditionalData) write(w *xw.Writer) error {
	if d.DataQuality != nil {
		if err := writeElement(w, "dataQuality", d.DataQuality); err != nil {
			return err
		}
	}
	for i := range d.Includes {
		if err := writeElement(w, "include", &d.Includes[i]); err != nil {
			return err
		}
	}
	for i := range d.UserData {
		if err := writeElement(w, "userData", &d.UserData[i]); err != nil {
			return err
		}
	}
	for i := range d.Unknown {
		if err := d.Unknown[i].write(w); err != nil {
			return err
		}
	}
	return nil
}

// Element is a generic XML element tree used for user data payloads and for
// preserved unknown children. Attribute order is not retained; text content
// outside CDATA is not captured.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []Element
}

func parseElement(c *parser.Context) (Element, error) {
	el := Element{Name: c.Name()}
	if as := c.Attrs(); len(as) > 0 {
		el.Attributes = make(map[string]string, len(as))
		for _, a := range as {
			el.Attributes[a.Name] = a.Value
		}
	}
	err := c.Children(func(name string, cc *parser.Context) error {
		child, err := parseElement(cc)
		if err != nil {
			return err
		}
		el.Children = append(el.Children, child)
		return nil
	})
	return el, err
}

func (el *Element) write(w *xw.Writer) error {
	if err := w.StartElem(xw.Elem{Name: el.Name}); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(el.Attributes)) {
		if err := w.WriteAttr(xw.Attr{Name: name, Value: el.Attributes[name]}); err != nil {
			return err
		}
	}
	for i := range el.Children {
		if err := el.Children[i].write(w); err != nil {
			return err
		}
	}
	return w.EndElem()
}

// Include references an external file to be merged into the document.
type Include struct {
	File string
}

func parseInclude(c *parser.Context) (Include, error) {
	var (
		in  Include
		err error
	)
	if in.File, err = c.String("file"); err != nil {
		return Include{}, err
	}
	return in, nil
}

func (in *Include) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("file", in.File)
	return a
}

func (in *Include) xmlChildren(*xw.Writer) error { return nil }

// UserData carries an application-defined key/value pair along with any
// nested XML payload.
type UserData struct {
	Code     string
	Value    *string
	Elements []Element
}

func parseUserData(c *parser.Context) (UserData, error) {
	var u UserData
	err := c.Children(func(name string, cc *parser.Context) error {
		el, err := parseElement(cc)
		if err != nil {
			return err
		}
		u.Elements = append(u.Elements, el)
		return nil
	})
	if err != nil {
		return UserData{}, err
	}

	if u.Code, err = c.String("code"); err != nil {
		return UserData{}, err
	}
	u.Value = c.StringOpt("value")
	return u, nil
}

func (u *UserData) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("code", u.Code)
	a.strOpt("value", u.Value)
	return a
}

func (u *UserData) xmlChildren(w *xw.Writer) error {
	for i := range u.Elements {
		if err := u.Elements[i].write(w); err != nil {
			return err
		}
	}
	return nil
}

// DataQuality describes the quality and accuracy of the data an element was
// derived from.
type DataQuality struct {
	Error   *DataQualityError
	RawData *RawData
}

func parseDataQuality(c *parser.Context) (DataQuality, error) {
	var q DataQuality
	err := c.Match(nil,
		parser.Child("error", func(cc *parser.Context) error {
			e, err := parseDataQualityError(cc)
			if err != nil {
				return err
			}
			q.Error = &e
			return nil
		}),
		parser.Child("rawData", func(cc *parser.Context) error {
			r, err := parseRawData(cc)
			if err != nil {
				return err
			}
			q.RawData = &r
			return nil
		}),
	)
	if err != nil {
		return DataQuality{}, err
	}
	return q, nil
}

func (q *DataQuality) xmlAttrs() []xw.Attr { return nil }

func (q *DataQuality) xmlChildren(w *xw.Writer) error {
	if q.Error != nil {
		if err := writeElement(w, "error", q.Error); err != nil {
			return err
		}
	}
	if q.RawData != nil {
		if err := writeElement(w, "rawData", q.RawData); err != nil {
			return err
		}
	}
	return nil
}

// DataQualityError gives absolute and relative accuracy bounds in the
// xy plane and along z.
type DataQualityError struct {
	XYAbsolute unit.Length
	XYRelative unit.Length
	ZAbsolute  unit.Length
	ZRelative  unit.Length
}

func parseDataQualityError(c *parser.Context) (DataQualityError, error) {
	var (
		e   DataQualityError
		err error
	)
	if e.XYAbsolute, err = c.Length("xyAbsolute"); err != nil {
		return DataQualityError{}, err
	}
	if e.XYRelative, err = c.Length("xyRelative"); err != nil {
		return DataQualityError{}, err
	}
	if e.ZAbsolute, err = c.Length("zAbsolute"); err != nil {
		return DataQualityError{}, err
	}
	if e.ZRelative, err = c.Length("zRelative"); err != nil {
		return DataQualityError{}, err
	}
	return e, nil
}

func (e *DataQualityError) xmlAttrs() []xw.Attr {
	var a attrs
	a.length("xyAbsolute", e.XYAbsolute)
	a.length("xyRelative", e.XYRelative)
	a.length("zAbsolute", e.ZAbsolute)
	a.length("zRelative", e.ZRelative)
	return a
}

func (e *DataQualityError) xmlChildren(*xw.Writer) error { return nil }

// PostProcessing classifies how raw data was refined.
type PostProcessing int

const (
	PostProcessingRaw PostProcessing = iota
	PostProcessingCleaned
	PostProcessingProcessed
	PostProcessingFused
)

var postProcessings = newEnumeration("PostProcessing", map[PostProcessing]string{
	PostProcessingRaw:       "raw",
	PostProcessingCleaned:   "cleaned",
	PostProcessingProcessed: "processed",
	PostProcessingFused:     "fused",
})

func (p PostProcessing) String() string { return postProcessings.format(p) }

// ParsePostProcessing parses the canonical spelling of a PostProcessing.
func ParsePostProcessing(s string) (PostProcessing, error) { return postProcessings.parse(s) }

// RawDataSource classifies where raw data came from.
type RawDataSource int

const (
	RawDataSourceSensor RawDataSource = iota
	RawDataSourceCadaster
	RawDataSourceCustom
)

var rawDataSources = newEnumeration("RawDataSource", map[RawDataSource]string{
	RawDataSourceSensor:   "sensor",
	RawDataSourceCadaster: "cadaster",
	RawDataSourceCustom:   "custom",
})

func (s RawDataSource) String() string { return rawDataSources.format(s) }

// ParseRawDataSource parses the canonical spelling of a RawDataSource.
func ParseRawDataSource(s string) (RawDataSource, error) { return rawDataSources.parse(s) }

// RawData records the provenance of the data an element was derived from.
type RawData struct {
	Date                  string
	PostProcessing        PostProcessing
	PostProcessingComment *string
	Source                RawDataSource
	SourceComment         *string
}

func parseRawData(c *parser.Context) (RawData, error) {
	var (
		r   RawData
		err error
	)
	if r.Date, err = c.String("date"); err != nil {
		return RawData{}, err
	}
	if r.PostProcessing, err = enumAttr(c, "postProcessing", postProcessings); err != nil {
		return RawData{}, err
	}
	r.PostProcessingComment = c.StringOpt("postProcessingComment")
	if r.Source, err = enumAttr(c, "source", rawDataSources); err != nil {
		return RawData{}, err
	}
	r.SourceComment = c.StringOpt("sourceComment")
	return r, nil
}

func (r *RawData) xmlAttrs() []xw.Attr {
	var a attrs
	a.str("date", r.Date)
	a.str("postProcessing", r.PostProcessing.String())
	a.strOpt("postProcessingComment", r.PostProcessingComment)
	a.str("source", r.Source.String())
	a.strOpt("sourceComment", r.SourceComment)
	return a
}

func (r *RawData) xmlChildren(*xw.Writer) error { return nil }
