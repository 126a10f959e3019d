package segy

import (
	"github.com/sirupsen/logrus"

	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy/ibmfloat"
)

// Option configures the reader and writer
type Option func(*options)

type options struct {
	codec         codec.SampleCodec
	explicitCodec bool
	detectFormat  bool
}

// WithSampleCodec selects the sample encoding instead of the default IBM float.
// When writing, the binary header format code is set to the codec's code.
func WithSampleCodec(c codec.SampleCodec) Option {
	return func(o *options) {
		o.codec = c
		o.explicitCodec = true
	}
}

// WithFormatDetection picks the sample codec registered for the binary
// header's format code. Unknown codes fall back to IBM float. An explicit
// WithSampleCodec takes precedence.
func WithFormatDetection() Option {
	return func(o *options) {
		o.detectFormat = true
	}
}

func applyOptions(opts []Option) options {
	o := options{codec: ibmfloat.NewCodec()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sampleCodec returns the codec for a file with binary header bh. A codec
// that does not match the header's format code is used anyway, with a
// warning.
func (o *options) sampleCodec(function string, bh *BinaryHeader) codec.SampleCodec {
	code := bh.FormatCode()
	c := o.codec
	if o.detectFormat && !o.explicitCodec {
		if detected, err := codec.ForFormatCode(code); err == nil {
			c = detected
		}
	}
	if c.FormatCode() != code {
		logrus.WithFields(logrus.Fields{
			"function":    function,
			"format_code": code,
			"codec":       c.Name(),
		}).Warn("binary header format code does not match the sample codec")
	}
	return c
}
