package segy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy/common"
)

// ReadFile reads a whole SEG-Y file into memory.
// No partial result is returned on failure.
func ReadFile(path string, opts ...Option) (*File, error) {
	o := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, newFileError("read", path, ErrUnreadable, err)
	}
	defer f.Close()

	var sizeHint int64
	if info, err := f.Stat(); err == nil {
		sizeHint = info.Size()
	}

	out, err := decode(bufio.NewReaderSize(f, 1<<16), sizeHint, o)
	if err != nil {
		var fe *FileError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "ReadFile",
		"path":     path,
		"traces":   out.Volume.NumTraces(),
		"samples":  out.Volume.NumSamples(),
		"dt":       out.Volume.DT,
		"format":   out.BinaryHeader.FormatCode(),
	}).Debug("Loaded SEG-Y file")

	return out, nil
}

// Read decodes a SEG-Y stream
func Read(r io.Reader, opts ...Option) (*File, error) {
	return decode(r, 0, applyOptions(opts))
}

func decode(r io.Reader, sizeHint int64, o options) (*File, error) {
	out := &File{}

	if err := readHeader(r, out.TextHeader[:]); err != nil {
		return nil, err
	}
	if err := readHeader(r, out.BinaryHeader[:]); err != nil {
		return nil, err
	}

	ns := int(out.BinaryHeader.SamplesPerTrace())
	if ns == 0 {
		return nil, newFileError("read", "", ErrZeroSamples, nil)
	}

	sc := o.sampleCodec("Read", &out.BinaryHeader)
	recSize := common.TraceRecordSize(ns)
	var capHint int
	if sizeHint > common.PrologueSize {
		capHint = int((sizeHint - common.PrologueSize) / int64(recSize))
	}

	vol := &Volume{
		Traces: make([][]float32, 0, capHint),
		DT:     float64(out.BinaryHeader.SampleIntervalMicros()) / 1e6,
	}
	headers := make([]TraceHeader, 0, capHint)

	rec := make([]byte, recSize)
	words := make([]uint32, ns)
	for trace := 0; ; trace++ {
		n, err := io.ReadFull(r, rec)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			sample := -1
			if n >= common.TraceHeaderSize {
				sample = (n - common.TraceHeaderSize) / common.SampleSize
			}
			return nil, newTraceError("read", "", trace, sample, ErrTruncatedTrace, err)
		}
		if err != nil {
			return nil, newTraceError("read", "", trace, -1, ErrUnreadable, err)
		}

		headers = append(headers, TraceHeader(append([]byte(nil), rec[:common.TraceHeaderSize]...)))

		samples := make([]float32, ns)
		data := rec[common.TraceHeaderSize:]
		for j := range words {
			words[j] = binary.BigEndian.Uint32(data[j*common.SampleSize:])
		}
		codec.DecodeTrace(sc, words, samples)
		vol.Traces = append(vol.Traces, samples)
	}

	out.Volume = vol
	out.TraceHeaders = headers
	return out, nil
}

func readHeader(r io.Reader, dst []byte) error {
	_, err := io.ReadFull(r, dst)
	switch {
	case err == nil:
		return nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return newFileError("read", "", ErrTruncatedHeader, err)
	default:
		return newFileError("read", "", ErrUnreadable, err)
	}
}
