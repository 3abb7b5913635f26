// Package unit provides the dimensioned quantities used by OpenDRIVE
// attributes. Values are stored in canonical SI units (metres, radians,
// 1/metres); construction and access go through explicit functions so a
// metre count is never confused for a radian count.
package unit

// Length is a distance in metres.
type Length float64

// Metres builds a Length from a metre count.
func Metres(v float64) Length { return Length(v) }

// Metres returns the length as a metre count.
func (l Length) Metres() float64 { return float64(l) }

// Angle is an angle in radians.
type Angle float64

// Radians builds an Angle from a radian count.
func Radians(v float64) Angle { return Angle(v) }

// Radians returns the angle as a radian count.
func (a Angle) Radians() float64 { return float64(a) }

// Curvature is a reciprocal radius in 1/metres.
type Curvature float64

// PerMetre builds a Curvature from a 1/metre count.
func PerMetre(v float64) Curvature { return Curvature(v) }

// PerMetre returns the curvature as a 1/metre count.
func (c Curvature) PerMetre() float64 { return float64(c) }
