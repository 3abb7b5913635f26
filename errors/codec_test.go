package errors

import (
	"fmt"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "attribute missing",
			err:  AttributeMissing("OpenDRIVE.header", "revMajor", "uint16"),
			want: `[attribute-missing] required attribute "revMajor" at OpenDRIVE.header`,
		},
		{
			name: "element missing at root",
			err:  ElementMissing("", "OpenDRIVE", "OpenDrive"),
			want: `[element-missing] required element "OpenDRIVE"`,
		},
		{
			name: "element missing choice",
			err:  ElementMissing("OpenDRIVE.road.planView.geometry", "line|spiral|arc|poly3|paramPoly3", "GeometryKind"),
			want: `[element-missing] required element "line|spiral|arc|poly3|paramPoly3" at OpenDRIVE.road.planView.geometry`,
		},
		{
			name: "invalid enum value",
			err:  InvalidEnumValue("LaneType", "Driving"),
			want: `[invalid-enum-value] value "Driving" is not a valid LaneType`,
		},
		{
			name: "parse float",
			err:  Parse("OpenDRIVE.road", "length", ParseFloat, "abc", fmt.Errorf("bad syntax")),
			want: `[parse-error] attribute "length": invalid float value "abc" at OpenDRIVE.road: bad syntax`,
		},
		{
			name: "invalid value",
			err:  InvalidValueFor("OpenDRIVE.header", "vendorExtension"),
			want: `[invalid-value] invalid value for "vendorExtension" at OpenDRIVE.header`,
		},
		{
			name: "io",
			err:  IO(io.ErrUnexpectedEOF),
			want: "[io-error] unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := AttributeMissing("OpenDRIVE.header", "revMajor", "uint16")

	if !IsCode(err, CodeAttributeMissing) {
		t.Errorf("IsCode(err, CodeAttributeMissing) = false, want true")
	}
	if IsCode(err, CodeElementMissing) {
		t.Errorf("IsCode(err, CodeElementMissing) = true, want false")
	}
	if IsCode(nil, CodeAttributeMissing) {
		t.Errorf("IsCode(nil, _) = true, want false")
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	err := pkgerrors.Wrap(IO(io.ErrUnexpectedEOF), "read document")

	if !IsCode(err, CodeIO) {
		t.Fatalf("IsCode through pkg/errors wrap = false, want true")
	}

	e, ok := AsError(err)
	if !ok {
		t.Fatalf("AsError through pkg/errors wrap = false, want true")
	}
	if e.Code != CodeIO {
		t.Errorf("Code = %q, want %q", e.Code, CodeIO)
	}
}

func TestUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := XML("OpenDRIVE", cause)

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}
