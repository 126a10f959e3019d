package common

// SEG-Y rev1 file layout constants. All multi-byte fields are big-endian on disk.
const (
	// TextHeaderSize is the size of the textual (card image) file header
	TextHeaderSize = 3200

	// BinaryHeaderSize is the size of the binary file header
	BinaryHeaderSize = 400

	// PrologueSize is the number of bytes preceding the first trace record
	PrologueSize = TextHeaderSize + BinaryHeaderSize

	// TraceHeaderSize is the size of each trace header
	TraceHeaderSize = 240

	// SampleSize is the on-disk size of one 4-byte data sample
	SampleSize = 4
)

// Binary header field offsets (relative to the start of the binary header)
const (
	OffsetSampleInterval  = 16 // sample interval in microseconds, uint16
	OffsetSamplesPerTrace = 20 // samples per data trace, uint16
	OffsetFormatCode      = 24 // data sample format code, uint16
)

// TraceRecordSize returns the size of one trace record (header + samples)
func TraceRecordSize(samplesPerTrace int) int {
	return TraceHeaderSize + samplesPerTrace*SampleSize
}
