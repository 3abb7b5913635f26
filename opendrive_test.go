package opendrive

import (
	"reflect"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/jacoelho/opendrive/errors"
)

const minimalDocument = `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7" name="" version="1.00" date="Tue Feb 25 13:02:27 2020" north="0.0000000000000000e+00" south="0.0000000000000000e+00" east="0.0000000000000000e+00" west="0.0000000000000000e+00">
    </header>
</OpenDRIVE>`

const roadDocument = `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7" name="" version="1.00" date="Tue Feb 25 13:02:27 2020" north="0.0000000000000000e+00" south="0.0000000000000000e+00" east="0.0000000000000000e+00" west="0.0000000000000000e+00">
    </header>
    <road rule="RHT" name="" length="1.0000000000000000e+02" id="1" junction="-1">
        <link>
        </link>
        <planView>
            <geometry s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="1.0000000000000000e+02">
                <line/>
            </geometry>
        </planView>
        <lateralProfile>
        </lateralProfile>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="1337" type="driving" level="false">
                        <border sOffset="0.0000000000000000e+00" a="3.5699999999999998e+00" b="0.0000000000000000e+00" c="0.0000000000000000e+00" d="0.0000000000000000e+00"/>
                    </lane>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`

func TestMinimalDocument(t *testing.T) {
	drive, err := FromXMLString(minimalDocument)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	if got, want := drive.Header.RevMajor, uint16(1); got != want {
		t.Errorf("Header.RevMajor = %d, want %d", got, want)
	}
	if got, want := drive.Header.RevMinor, uint16(7); got != want {
		t.Errorf("Header.RevMinor = %d, want %d", got, want)
	}
	if drive.Header.North == nil || *drive.Header.North != 0 {
		t.Errorf("Header.North = %v, want 0", drive.Header.North)
	}
	if drive.Header.Date == nil || *drive.Header.Date != "Tue Feb 25 13:02:27 2020" {
		t.Errorf("Header.Date = %v, want verbatim date", drive.Header.Date)
	}
	if _, ok := drive.Header.DateParsed(); !ok {
		t.Error("Header.DateParsed() not recognised")
	}
}

func TestRoadWithCenterLaneBorder(t *testing.T) {
	drive, err := FromXMLString(roadDocument)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	if got, want := len(drive.Roads), 1; got != want {
		t.Fatalf("len(Roads) = %d, want %d", got, want)
	}
	road := drive.Roads[0]
	if road.Rule == nil || *road.Rule != RightHandTraffic {
		t.Errorf("Road.Rule = %v, want RHT", road.Rule)
	}
	sections := road.Lanes.LaneSections.Slice()
	if got, want := len(sections), 1; got != want {
		t.Fatalf("len(LaneSections) = %d, want %d", got, want)
	}
	center := sections[0].Center.Lanes.Slice()
	if got, want := len(center), 1; got != want {
		t.Fatalf("len(center lanes) = %d, want %d", got, want)
	}
	lane := center[0]
	if got, want := lane.ID, int64(1337); got != want {
		t.Errorf("lane.ID = %d, want %d", got, want)
	}
	if got, want := lane.Type, LaneTypeDriving; got != want {
		t.Errorf("lane.Type = %v, want %v", got, want)
	}
	if lane.Level == nil || *lane.Level {
		t.Errorf("lane.Level = %v, want false", lane.Level)
	}
	if got, want := len(lane.Choices), 1; got != want {
		t.Fatalf("len(lane.Choices) = %d, want %d", got, want)
	}
	border, ok := lane.Choices[0].(LaneBorder)
	if !ok {
		t.Fatalf("lane.Choices[0] = %T, want LaneBorder", lane.Choices[0])
	}
	if got, want := border.A, 3.5699999999999998; got != want {
		t.Errorf("border.A = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for name, source := range map[string]string{
		"minimal": minimalDocument,
		"road":    roadDocument,
	} {
		t.Run(name, func(t *testing.T) {
			first, err := FromXMLString(source)
			if err != nil {
				t.Fatalf("first parse error = %v", err)
			}
			emitted, err := first.ToXMLString()
			if err != nil {
				t.Fatalf("ToXMLString() error = %v", err)
			}
			second, err := FromXMLString(emitted)
			if err != nil {
				t.Fatalf("second parse error = %v\nemitted:\n%s", err, emitted)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip changed the document\nemitted:\n%s", emitted)
			}
		})
	}
}

func TestFloatsEmitScientific(t *testing.T) {
	drive, err := FromXMLString(roadDocument)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	emitted, err := drive.ToXMLString()
	if err != nil {
		t.Fatalf("ToXMLString() error = %v", err)
	}
	for _, token := range []string{
		`a="3.5699999999999998e+00"`,
		`length="1.0000000000000000e+02"`,
	} {
		if !strings.Contains(emitted, token) {
			t.Errorf("emitted output missing %s\nemitted:\n%s", token, emitted)
		}
	}
}

func TestAttributesEmitAlphabetically(t *testing.T) {
	drive, err := FromXMLString(roadDocument)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	emitted, err := drive.ToXMLString()
	if err != nil {
		t.Fatalf("ToXMLString() error = %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(emitted); err != nil {
		t.Fatalf("etree parse error = %v", err)
	}
	geometry := doc.FindElement("//planView/geometry")
	if geometry == nil {
		t.Fatal("emitted output has no geometry element")
	}
	var names []string
	for _, a := range geometry.Attr {
		names = append(names, a.Key)
	}
	want := []string{"hdg", "length", "s", "x", "y"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("geometry attribute order = %v, want %v", names, want)
	}
}

func TestUnknownChildrenPreserved(t *testing.T) {
	source := strings.Replace(minimalDocument,
		"</header>",
		`<vendorExtension name="test"><payload value="42"/></vendorExtension></header>`, 1)

	drive, err := FromXMLString(source)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	unknown := drive.Header.AdditionalData.Unknown
	if got, want := len(unknown), 1; got != want {
		t.Fatalf("len(Unknown) = %d, want %d", got, want)
	}
	if got, want := unknown[0].Name, "vendorExtension"; got != want {
		t.Errorf("Unknown[0].Name = %q, want %q", got, want)
	}
	if got, want := unknown[0].Attributes["name"], "test"; got != want {
		t.Errorf(`Unknown[0].Attributes["name"] = %q, want %q`, got, want)
	}
	if got, want := len(unknown[0].Children), 1; got != want {
		t.Fatalf("len(Unknown[0].Children) = %d, want %d", got, want)
	}

	emitted, err := drive.ToXMLString()
	if err != nil {
		t.Fatalf("ToXMLString() error = %v", err)
	}
	if !strings.Contains(emitted, "<vendorExtension") || !strings.Contains(emitted, "<payload") {
		t.Errorf("unknown children not re-emitted\nemitted:\n%s", emitted)
	}

	if _, err := FromXMLStringWithOptions(source, Options{RejectUnknownAdditionalData: true}); !errors.IsCode(err, errors.CodeInvalidValue) {
		t.Errorf("strict parse error = %v, want %s", err, errors.CodeInvalidValue)
	}
}

func TestRoadMarkMissingColor(t *testing.T) {
	source := strings.Replace(roadDocument,
		`<border sOffset="0.0000000000000000e+00" a="3.5699999999999998e+00" b="0.0000000000000000e+00" c="0.0000000000000000e+00" d="0.0000000000000000e+00"/>`,
		`<border sOffset="0.0000000000000000e+00" a="3.5699999999999998e+00" b="0.0000000000000000e+00" c="0.0000000000000000e+00" d="0.0000000000000000e+00"/>
                        <roadMark sOffset="0.0000000000000000e+00" type="solid" weight="standard"/>`, 1)

	_, err := FromXMLString(source)
	if !errors.IsCode(err, errors.CodeAttributeMissing) {
		t.Fatalf("default parse error = %v, want %s", err, errors.CodeAttributeMissing)
	}
	codecErr, ok := errors.AsError(err)
	if !ok || codecErr.Field != "color" {
		t.Errorf("missing attribute = %+v, want field color", codecErr)
	}

	drive, err := FromXMLStringWithOptions(source, Options{AllowMissingRoadMarkColor: true})
	if err != nil {
		t.Fatalf("tolerant parse error = %v", err)
	}
	lane := drive.Roads[0].Lanes.LaneSections.Head().Center.Lanes.Head()
	if got, want := len(lane.RoadMarks), 1; got != want {
		t.Fatalf("len(RoadMarks) = %d, want %d", got, want)
	}
	if got, want := lane.RoadMarks[0].Color, ColorStandard; got != want {
		t.Errorf("RoadMark.Color = %v, want %v", got, want)
	}
}

func TestEnumValuesAreCaseSensitive(t *testing.T) {
	source := strings.Replace(roadDocument, `type="driving"`, `type="Driving"`, 1)
	_, err := FromXMLString(source)
	if !errors.IsCode(err, errors.CodeInvalidEnumValue) {
		t.Fatalf("parse error = %v, want %s", err, errors.CodeInvalidEnumValue)
	}
	codecErr, _ := errors.AsError(err)
	if got, want := codecErr.Value, "Driving"; got != want {
		t.Errorf("error value = %q, want %q", got, want)
	}
}

func TestAttributeNamesAreCaseInsensitive(t *testing.T) {
	source := strings.Replace(minimalDocument, `revMajor="1"`, `REVMAJOR="1"`, 1)
	drive, err := FromXMLString(source)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	if got, want := drive.Header.RevMajor, uint16(1); got != want {
		t.Errorf("Header.RevMajor = %d, want %d", got, want)
	}
}

func TestRequiredChildren(t *testing.T) {
	tests := map[string]struct {
		mangle func(string) string
		field  string
	}{
		"lanes without laneSection": {
			mangle: func(s string) string {
				start := strings.Index(s, "<laneSection")
				end := strings.Index(s, "</laneSection>") + len("</laneSection>")
				return s[:start] + s[end:]
			},
			field: "laneSection",
		},
		"laneSection without center": {
			mangle: func(s string) string {
				start := strings.Index(s, "<center>")
				end := strings.Index(s, "</center>") + len("</center>")
				return s[:start] + s[end:]
			},
			field: "center",
		},
		"document without header": {
			mangle: func(s string) string {
				start := strings.Index(s, "<header")
				end := strings.Index(s, "</header>") + len("</header>")
				return s[:start] + s[end:]
			},
			field: "header",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromXMLString(tt.mangle(roadDocument))
			if !errors.IsCode(err, errors.CodeElementMissing) {
				t.Fatalf("parse error = %v, want %s", err, errors.CodeElementMissing)
			}
			codecErr, _ := errors.AsError(err)
			if got, want := codecErr.Field, tt.field; got != want {
				t.Errorf("missing element = %q, want %q", got, want)
			}
		})
	}
}

func TestGeoReferenceCData(t *testing.T) {
	const projection = "+proj=tmerc +lat_0=0 +lon_0=9 +datum=WGS84"
	source := strings.Replace(minimalDocument,
		"</header>",
		"<geoReference><![CDATA["+projection+"]]></geoReference></header>", 1)

	drive, err := FromXMLString(source)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	if drive.Header.GeoReference == nil {
		t.Fatal("Header.GeoReference = nil")
	}
	if got, want := drive.Header.GeoReference.Projection, projection; got != want {
		t.Errorf("Projection = %q, want %q", got, want)
	}

	emitted, err := drive.ToXMLString()
	if err != nil {
		t.Fatalf("ToXMLString() error = %v", err)
	}
	if !strings.Contains(emitted, "<![CDATA["+projection+"]]>") {
		t.Errorf("projection not re-emitted as CDATA\nemitted:\n%s", emitted)
	}
}

func TestUserData(t *testing.T) {
	source := strings.Replace(minimalDocument,
		"</header>",
		`<userData code="origin" value="survey"><sensor id="7"/></userData></header>`, 1)

	drive, err := FromXMLString(source)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	data := drive.Header.AdditionalData.UserData
	if got, want := len(data), 1; got != want {
		t.Fatalf("len(UserData) = %d, want %d", got, want)
	}
	if got, want := data[0].Code, "origin"; got != want {
		t.Errorf("UserData.Code = %q, want %q", got, want)
	}
	if data[0].Value == nil || *data[0].Value != "survey" {
		t.Errorf("UserData.Value = %v, want survey", data[0].Value)
	}
	if got, want := len(data[0].Elements), 1; got != want {
		t.Fatalf("len(UserData.Elements) = %d, want %d", got, want)
	}
	if got, want := data[0].Elements[0].Name, "sensor"; got != want {
		t.Errorf("UserData element = %q, want %q", got, want)
	}
}

func TestElementNamesAreCaseInsensitive(t *testing.T) {
	source := strings.Replace(minimalDocument, "<header", "<HEADER", 1)
	source = strings.Replace(source, "</header>", "</HEADER>", 1)
	drive, err := FromXMLString(source)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	if got, want := drive.Header.RevMinor, uint16(7); got != want {
		t.Errorf("Header.RevMinor = %d, want %d", got, want)
	}
}

func TestEmittedStructureMatchesInput(t *testing.T) {
	drive, err := FromXMLString(roadDocument)
	if err != nil {
		t.Fatalf("FromXMLString() error = %v", err)
	}
	emitted, err := drive.ToXMLString()
	if err != nil {
		t.Fatalf("ToXMLString() error = %v", err)
	}

	want := etree.NewDocument()
	if err := want.ReadFromString(roadDocument); err != nil {
		t.Fatalf("etree parse input error = %v", err)
	}
	got := etree.NewDocument()
	if err := got.ReadFromString(emitted); err != nil {
		t.Fatalf("etree parse output error = %v", err)
	}
	compareElements(t, "/OpenDRIVE", want.Root(), got.Root())
}

func compareElements(t *testing.T, path string, want, got *etree.Element) {
	t.Helper()
	if want.Tag != got.Tag {
		t.Errorf("%s: tag = %q, want %q", path, got.Tag, want.Tag)
		return
	}
	wantAttrs := make(map[string]string, len(want.Attr))
	for _, a := range want.Attr {
		wantAttrs[a.Key] = a.Value
	}
	gotAttrs := make(map[string]string, len(got.Attr))
	for _, a := range got.Attr {
		gotAttrs[a.Key] = a.Value
	}
	if !reflect.DeepEqual(wantAttrs, gotAttrs) {
		t.Errorf("%s: attrs = %v, want %v", path, gotAttrs, wantAttrs)
	}
	wantChildren := want.ChildElements()
	gotChildren := got.ChildElements()
	if len(wantChildren) != len(gotChildren) {
		t.Errorf("%s: %d children, want %d", path, len(gotChildren), len(wantChildren))
		return
	}
	for i := range wantChildren {
		compareElements(t, path+"/"+wantChildren[i].Tag, wantChildren[i], gotChildren[i])
	}
}
