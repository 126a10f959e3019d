package segy

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/cocosip/go-segy-amptune/segy/common"
)

// Volume is a memory-resident seismic section: Traces[trace][sample].
// All traces have the same length.
type Volume struct {
	Traces [][]float32
	DT     float64 // sample interval in seconds
}

// NumTraces returns the number of traces
func (v *Volume) NumTraces() int {
	return len(v.Traces)
}

// NumSamples returns the number of samples per trace (0 for an empty volume)
func (v *Volume) NumSamples() int {
	if len(v.Traces) == 0 {
		return 0
	}
	return len(v.Traces[0])
}

// DTMillis returns the sample interval in milliseconds
func (v *Volume) DTMillis() float32 {
	return float32(v.DT * 1000)
}

// Validate checks that every trace has the same number of samples
func (v *Volume) Validate() error {
	n := v.NumSamples()
	for i, tr := range v.Traces {
		if len(tr) != n {
			return newTraceError("validate", "", i, -1, ErrInconsistentTraceLength, nil)
		}
	}
	return nil
}

// Clone returns a deep copy of the volume
func (v *Volume) Clone() *Volume {
	out := &Volume{
		Traces: make([][]float32, len(v.Traces)),
		DT:     v.DT,
	}
	for i, tr := range v.Traces {
		out.Traces[i] = append([]float32(nil), tr...)
	}
	return out
}

// TextHeader is the 3200-byte textual file header, carried through unchanged
type TextHeader [common.TextHeaderSize]byte

const (
	textLines     = 40
	textLineWidth = 80
	ebcdicC       = 0xC3 // 'C' of the first "C 1" card in EBCDIC
)

// IsEBCDIC reports whether the header looks EBCDIC encoded
func (h *TextHeader) IsEBCDIC() bool {
	return h[0] == ebcdicC
}

// Lines decodes the header into its 40 card images of 80 columns.
// Trailing blanks and NULs are trimmed.
func (h *TextHeader) Lines() ([]string, error) {
	raw := h[:]
	if h.IsEBCDIC() {
		decoded, err := charmap.CodePage037.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, err
		}
		raw = decoded
	}

	text := string(raw)
	lines := make([]string, 0, textLines)
	for i := 0; i < textLines; i++ {
		start := i * textLineWidth
		end := start + textLineWidth
		if end > len(text) {
			break
		}
		lines = append(lines, strings.TrimRight(text[start:end], " \x00"))
	}
	return lines, nil
}

// BinaryHeader is the 400-byte binary file header. Only the sample interval,
// samples per trace and format code are interpreted.
type BinaryHeader [common.BinaryHeaderSize]byte

// SampleIntervalMicros returns the sample interval in microseconds
func (h *BinaryHeader) SampleIntervalMicros() uint16 {
	return binary.BigEndian.Uint16(h[common.OffsetSampleInterval:])
}

// SamplesPerTrace returns the number of samples per data trace
func (h *BinaryHeader) SamplesPerTrace() uint16 {
	return binary.BigEndian.Uint16(h[common.OffsetSamplesPerTrace:])
}

// FormatCode returns the data sample format code
func (h *BinaryHeader) FormatCode() uint16 {
	return binary.BigEndian.Uint16(h[common.OffsetFormatCode:])
}

// Patched returns a copy with the sample interval and samples per trace replaced
func (h BinaryHeader) Patched(intervalMicros, samples uint16) BinaryHeader {
	binary.BigEndian.PutUint16(h[common.OffsetSampleInterval:], intervalMicros)
	binary.BigEndian.PutUint16(h[common.OffsetSamplesPerTrace:], samples)
	return h
}

// WithFormatCode returns a copy with the data sample format code replaced
func (h BinaryHeader) WithFormatCode(code uint16) BinaryHeader {
	binary.BigEndian.PutUint16(h[common.OffsetFormatCode:], code)
	return h
}

// TraceHeader is an opaque 240-byte trace header copied from a reference file
type TraceHeader []byte

// File is the full content of a SEG-Y file
type File struct {
	Volume       *Volume
	TextHeader   TextHeader
	BinaryHeader BinaryHeader
	TraceHeaders []TraceHeader
}
