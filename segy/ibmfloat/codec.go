package ibmfloat

import (
	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy/common"
)

// FormatCode is the SEG-Y data sample format code for 4-byte IBM floating point
const FormatCode = 1

var _ codec.SampleCodec = (*Codec)(nil)

// Codec implements the codec.SampleCodec interface for IBM System/360 floats
type Codec struct{}

// NewCodec creates a new IBM float codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode converts an IEEE sample to IBM format
func (c *Codec) Encode(v float32) uint32 {
	return common.IEEEToIBM(v)
}

// Decode converts an IBM word to an IEEE sample
func (c *Codec) Decode(word uint32) float32 {
	return common.IBMToIEEE(word)
}

// FormatCode returns 1
func (c *Codec) FormatCode() uint16 {
	return FormatCode
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "ibm-float"
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
