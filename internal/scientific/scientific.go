// Package scientific formats float64 attribute values in the scientific
// notation OpenDRIVE writers conventionally use, such as
// "1.0000000000000000e+02".
package scientific

import "strconv"

// Format renders v with an explicit decimal point, sixteen fractional
// digits and a signed two-digit exponent. Seventeen significant digits are
// enough for every finite float64 to survive a parse round trip bit for bit.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'e', 16, 64)
}
