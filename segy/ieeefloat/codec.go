package ieeefloat

import (
	"math"

	"github.com/cocosip/go-segy-amptune/codec"
)

// FormatCode is the SEG-Y data sample format code for 4-byte IEEE floating point
const FormatCode = 5

var _ codec.SampleCodec = (*Codec)(nil)

// Codec implements the codec.SampleCodec interface for IEEE-754 floats.
// Samples are stored bit-for-bit, so the round trip is lossless.
type Codec struct{}

// NewCodec creates a new IEEE float codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode returns the IEEE bit pattern of v
func (c *Codec) Encode(v float32) uint32 {
	return math.Float32bits(v)
}

// Decode reinterprets word as an IEEE float
func (c *Codec) Decode(word uint32) float32 {
	return math.Float32frombits(word)
}

// FormatCode returns 5
func (c *Codec) FormatCode() uint16 {
	return FormatCode
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "ieee-float"
}

func init() {
	codec.Register(NewCodec())
}
