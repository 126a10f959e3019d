package segy

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy/common"
)

// Writer emits SEG-Y files that reuse the textual, binary and trace headers
// of a reference file.
type Writer struct {
	referencePath string
	textHeader    TextHeader
	binaryHeader  BinaryHeader
	traceHeaders  []TraceHeader
	opts          options
	codec         codec.SampleCodec
}

// NewWriter loads the headers of the reference file
func NewWriter(referencePath string, opts ...Option) (*Writer, error) {
	w := &Writer{
		referencePath: referencePath,
		opts:          applyOptions(opts),
	}
	if err := w.readReference(); err != nil {
		return nil, err
	}
	return w, nil
}

// ReferenceTraceHeaders returns the trace headers read from the reference file
func (w *Writer) ReferenceTraceHeaders() []TraceHeader {
	return w.traceHeaders
}

// readReference reads the text and binary headers and as many trace headers
// as the reference file holds complete trace records.
func (w *Writer) readReference() error {
	path := w.referencePath
	f, err := os.Open(path)
	if err != nil {
		return newFileError("read reference", path, ErrUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return newFileError("read reference", path, ErrUnreadable, err)
	}

	r := bufio.NewReaderSize(f, 1<<16)
	for _, dst := range [][]byte{w.textHeader[:], w.binaryHeader[:]} {
		if err := readHeader(r, dst); err != nil {
			fe := err.(*FileError)
			fe.Op, fe.Path = "read reference", path
			return fe
		}
	}

	ns := int(w.binaryHeader.SamplesPerTrace())
	if ns == 0 {
		return newFileError("read reference", path, ErrZeroSamples, nil)
	}
	w.codec = w.opts.codec
	if !w.opts.explicitCodec {
		w.codec = w.opts.sampleCodec("Writer.readReference", &w.binaryHeader)
	}

	recSize := int64(common.TraceRecordSize(ns))
	count := int((info.Size() - common.PrologueSize) / recSize)
	dataSize := ns * common.SampleSize

	w.traceHeaders = make([]TraceHeader, count)
	for i := range w.traceHeaders {
		h := make(TraceHeader, common.TraceHeaderSize)
		if _, err := io.ReadFull(r, h); err != nil {
			return newTraceError("read reference", path, i, -1, ErrTruncatedTrace, err)
		}
		if _, err := r.Discard(dataSize); err != nil {
			return newTraceError("read reference", path, i, -1, ErrTruncatedTrace, err)
		}
		w.traceHeaders[i] = h
	}

	logrus.WithFields(logrus.Fields{
		"function": "Writer.readReference",
		"path":     path,
		"traces":   count,
		"samples":  ns,
	}).Debug("Loaded reference headers")

	return nil
}

// WriteFile writes traces using the reference file's trace headers.
// dt is the sample interval in seconds.
func (w *Writer) WriteFile(target string, traces [][]float32, dt float64) error {
	return w.WriteFileWithHeaders(target, traces, dt, w.traceHeaders)
}

// WriteFileWithHeaders writes traces with caller supplied trace headers.
// All inputs are validated before the target is touched. The data is written
// to a temporary file next to the target and renamed into place, so a failed
// write leaves the target unchanged.
func (w *Writer) WriteFileWithHeaders(target string, traces [][]float32, dt float64, headers []TraceHeader) error {
	const op = "write"

	if len(traces) == 0 {
		return newFileError(op, target, ErrNoTraces, nil)
	}
	ns := len(traces[0])
	for i, tr := range traces {
		if len(tr) != ns {
			return newTraceError(op, target, i, -1, ErrInconsistentTraceLength, nil)
		}
	}
	if len(headers) != len(traces) {
		return newFileError(op, target, ErrHeaderCountMismatch, nil)
	}
	for i, h := range headers {
		if len(h) != common.TraceHeaderSize {
			return newTraceError(op, target, i, -1, ErrMalformedHeader, nil)
		}
	}

	dtMicros := math.Round(dt * 1e6)
	if ns > math.MaxUint16 || !(dtMicros >= 0 && dtMicros <= math.MaxUint16) {
		return newFileError(op, target, ErrFieldOverflow, nil)
	}

	bh := w.binaryHeader.Patched(uint16(dtMicros), uint16(ns))
	if w.opts.explicitCodec {
		bh = bh.WithFormatCode(w.codec.FormatCode())
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return newFileError(op, target, ErrWriteFailed, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return newFileError(op, target, ErrWriteFailed, err)
	}

	if err := w.writeAll(tmp, target, bh, traces, headers); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return newFileError(op, target, ErrWriteFailed, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return newFileError(op, target, ErrWriteFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Writer.WriteFileWithHeaders",
		"path":     target,
		"traces":   len(traces),
		"samples":  ns,
		"dt_us":    uint16(dtMicros),
	}).Debug("Wrote SEG-Y file")

	return nil
}

func (w *Writer) writeAll(out io.Writer, target string, bh BinaryHeader, traces [][]float32, headers []TraceHeader) error {
	const op = "write"

	if n, err := out.Write(w.textHeader[:]); err != nil || n != len(w.textHeader) {
		return newFileError(op, target, ErrWriteFailed, shortWrite(err))
	}
	if n, err := out.Write(bh[:]); err != nil || n != len(bh) {
		return newFileError(op, target, ErrWriteFailed, shortWrite(err))
	}

	rec := make([]byte, common.TraceRecordSize(len(traces[0])))
	words := make([]uint32, len(traces[0]))
	for i, tr := range traces {
		copy(rec, headers[i])
		data := rec[common.TraceHeaderSize:]
		codec.EncodeTrace(w.codec, tr, words)
		for j, word := range words {
			binary.BigEndian.PutUint32(data[j*common.SampleSize:], word)
		}

		n, err := out.Write(rec)
		if err != nil || n != len(rec) {
			sample := -1
			if n >= common.TraceHeaderSize {
				sample = (n - common.TraceHeaderSize) / common.SampleSize
			}
			return newTraceError(op, target, i, sample, ErrWriteFailed, shortWrite(err))
		}
	}
	return nil
}

func shortWrite(err error) error {
	if err == nil {
		return io.ErrShortWrite
	}
	return err
}

// WriteVolume writes vol to target reusing the headers of referencePath
func WriteVolume(target, referencePath string, vol *Volume, opts ...Option) error {
	w, err := NewWriter(referencePath, opts...)
	if err != nil {
		return err
	}
	return w.WriteFile(target, vol.Traces, vol.DT)
}
