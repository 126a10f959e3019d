package common

import "math"

// Exponent correction and mantissa multiplier tables for IEEEToIBM, indexed by
// the two low bits of the IEEE exponent.
var (
	ibmExpCorrection = [4]uint32{0x21200000, 0x21400000, 0x21800000, 0x22100000}
	ibmMantShift     = [4]uint32{2, 4, 8, 1}
)

// IBMToIEEE converts an IBM System/360 single precision float
// (sign, 7-bit base-16 exponent biased by 64, 24-bit fraction) to IEEE-754.
//
// Values beyond the float32 range saturate to ±Inf, tiny values flush to
// zero or a subnormal. This is a property of the formats, not an error.
func IBMToIEEE(ibm uint32) float32 {
	frac := ibm & 0x00FFFFFF
	exp := int((ibm >> 24) & 0x7F)

	// value = 0.frac * 16^(exp-64) = frac * 2^(4*(exp-64) - 24)
	v := math.Ldexp(float64(frac), 4*(exp-64)-24)
	if ibm&0x80000000 != 0 {
		v = -v
	}
	return float32(v)
}

// IEEEToIBM converts an IEEE-754 single precision float to IBM format.
//
// The conversion truncates the low fraction bits lost to hexadecimal
// normalization, so the round trip is exact only for values whose mantissa
// fits in the remaining bits (1.5, 0.25, 100 ...). Zero and negative zero
// map to 0. NaN, Inf and subnormal inputs have no IBM equivalent and
// produce an undefined but deterministic bit pattern.
func IEEEToIBM(f float32) uint32 {
	ieee := math.Float32bits(f)
	if ieee == 0 {
		return 0
	}

	ix := (ieee & 0x01800000) >> 23
	exp := (ieee&0x7E000000)>>1 + ibmExpCorrection[ix]
	mant := (ibmMantShift[ix] * (ieee & 0x007FFFFF)) >> 3
	ibm := (mant + exp) | (ieee & 0x80000000)

	if ieee&0x7FFFFFFF == 0 {
		return 0
	}
	return ibm
}
