package codec

// SampleCodec is the interface for trace sample encodings.
// A codec maps one in-memory float32 sample to its 4-byte on-disk word and back.
// Byte order is handled by the caller; codecs work on host-order words.
type SampleCodec interface {
	// Encode converts an IEEE-754 sample to its on-disk 32-bit representation
	Encode(v float32) uint32

	// Decode converts an on-disk 32-bit word to an IEEE-754 sample
	Decode(word uint32) float32

	// FormatCode returns the SEG-Y data sample format code (binary header bytes 3225-3226)
	FormatCode() uint16

	// Name returns a human-readable name
	Name() string
}

// EncodeTrace encodes samples into dst using c. dst must hold len(samples) words.
func EncodeTrace(c SampleCodec, samples []float32, dst []uint32) {
	for i, v := range samples {
		dst[i] = c.Encode(v)
	}
}

// DecodeTrace decodes words into dst using c. dst must hold len(words) samples.
func DecodeTrace(c SampleCodec, words []uint32, dst []float32) {
	for i, w := range words {
		dst[i] = c.Decode(w)
	}
}
