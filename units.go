package opendrive

import "github.com/jacoelho/opendrive/errors"

// DistanceUnit is a unit of length used by attribute values.
type DistanceUnit int

const (
	DistanceUnitMetre DistanceUnit = iota
	DistanceUnitKilometre
	DistanceUnitFoot
	DistanceUnitMile
)

var distanceUnits = newEnumeration("DistanceUnit", map[DistanceUnit]string{
	DistanceUnitMetre:     "m",
	DistanceUnitKilometre: "km",
	DistanceUnitFoot:      "ft",
	DistanceUnitMile:      "mile",
})

func (u DistanceUnit) String() string { return distanceUnits.format(u) }

// ParseDistanceUnit parses the canonical spelling of a DistanceUnit.
func ParseDistanceUnit(s string) (DistanceUnit, error) { return distanceUnits.parse(s) }

// SpeedUnit is a unit of speed used by speed limit attributes.
type SpeedUnit int

const (
	SpeedUnitKilometresPerHour SpeedUnit = iota
	SpeedUnitMetresPerSecond
	SpeedUnitMilesPerHour
)

var speedUnits = newEnumeration("SpeedUnit", map[SpeedUnit]string{
	SpeedUnitKilometresPerHour: "km/h",
	SpeedUnitMetresPerSecond:   "m/s",
	SpeedUnitMilesPerHour:      "mph",
})

func (u SpeedUnit) String() string { return speedUnits.format(u) }

// ParseSpeedUnit parses the canonical spelling of a SpeedUnit.
func ParseSpeedUnit(s string) (SpeedUnit, error) { return speedUnits.parse(s) }

// MassUnit is a unit of mass used by attribute values.
type MassUnit int

const (
	MassUnitKilogram MassUnit = iota
	MassUnitTon
)

var massUnits = newEnumeration("MassUnit", map[MassUnit]string{
	MassUnitKilogram: "kg",
	MassUnitTon:      "t",
})

func (u MassUnit) String() string { return massUnits.format(u) }

// ParseMassUnit parses the canonical spelling of a MassUnit.
func ParseMassUnit(s string) (MassUnit, error) { return massUnits.parse(s) }

// SlopeUnit is a unit of slope used by attribute values.
type SlopeUnit int

const (
	SlopeUnitPercent SlopeUnit = iota
)

var slopeUnits = newEnumeration("SlopeUnit", map[SlopeUnit]string{
	SlopeUnitPercent: "%",
})

func (u SlopeUnit) String() string { return slopeUnits.format(u) }

// ParseSlopeUnit parses the canonical spelling of a SlopeUnit.
func ParseSlopeUnit(s string) (SlopeUnit, error) { return slopeUnits.parse(s) }

// Unit is any of the unit enumerations, for attributes such as a signal's
// unit that may name a unit of any dimension.
type Unit interface {
	isUnit()
	String() string
}

func (DistanceUnit) isUnit() {}
func (SpeedUnit) isUnit()    {}
func (MassUnit) isUnit()     {}
func (SlopeUnit) isUnit()    {}

// ParseUnit parses a unit attribute value of any dimension.
func ParseUnit(s string) (Unit, error) {
	if v, err := distanceUnits.parse(s); err == nil {
		return v, nil
	}
	if v, err := speedUnits.parse(s); err == nil {
		return v, nil
	}
	if v, err := massUnits.parse(s); err == nil {
		return v, nil
	}
	if v, err := slopeUnits.parse(s); err == nil {
		return v, nil
	}
	return nil, errors.InvalidEnumValue("Unit", s)
}
