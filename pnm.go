// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package pnm decodes the Netpbm image formats: PBM, PGM, PPM (P1 through P6)
// and PAM (P7), into flat 8 or 16 bit sample buffers.
package pnm

import (
	"io"
)

// Options contains the options for NewDecoder and Decode.
type Options struct {
	// The Reader to read the image from.
	// If it is a *bufio.Reader it is used as is.
	R io.Reader

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// LimitSamples is the maximum number of samples (width * height * components)
	// in an image. Larger images fail with an InvalidFormatError.
	// Default value is 1 << 28.
	LimitSamples uint64

	// LimitCommentSize is the maximum size in bytes of a header comment.
	// Larger comments are skipped and reported through Warnf.
	// Default value is 10000.
	LimitCommentSize uint32

	// LimitHeaderLine is the maximum size in bytes of a PAM header line.
	// Default value is 4096.
	LimitHeaderLine uint32
}

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	Header    Header
	ColorType ColorType
	Samples   Samples
}

// Decode reads a complete image from opts.R.
func Decode(opts Options) (DecodeResult, error) {
	d, err := NewDecoder(opts)
	if err != nil {
		return DecodeResult{}, err
	}
	samples, err := d.Decode()
	if err != nil {
		return DecodeResult{}, err
	}
	return DecodeResult{Header: d.header, ColorType: d.ColorType(), Samples: samples}, nil
}

// Decoder decodes a single PNM image.
// It is not safe for concurrent use.
type Decoder struct {
	sr      *streamReader
	header  Header
	tuple   tupleType
	samples uint64
	decoded bool
}

// NewDecoder reads the magic constant and the header from opts.R.
// The samples are not read until Decode is called.
func NewDecoder(opts Options) (*Decoder, error) {
	if opts.R == nil {
		return nil, ErrNoReader
	}

	const (
		defaultLimitSamples     = 1 << 28
		defaultLimitCommentSize = 10000
		defaultLimitHeaderLine  = 4096
	)

	if opts.LimitSamples == 0 {
		opts.LimitSamples = defaultLimitSamples
	}
	if opts.LimitCommentSize == 0 {
		opts.LimitCommentSize = defaultLimitCommentSize
	}
	if opts.LimitHeaderLine == 0 {
		opts.LimitHeaderLine = defaultLimitHeaderLine
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	sr := newStreamReader(opts.R, opts)

	header, err := sr.readHeader()
	if err != nil {
		return nil, err
	}

	tuple, err := header.Record.tupleType()
	if err != nil {
		return nil, err
	}

	width, height := header.Record.Dimensions()
	n, err := sampleCount(uint64(width), uint64(height), tuple.components(), opts.LimitSamples)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		sr:      sr,
		header:  header,
		tuple:   tuple,
		samples: n,
	}, nil
}

// Dimensions returns the image width and height in pixels.
func (d *Decoder) Dimensions() (width, height uint32) {
	return d.header.Record.Dimensions()
}

// ColorType returns the color type of the decoded samples.
func (d *Decoder) ColorType() ColorType {
	return d.tuple.colorType()
}

// Subtype returns the PNM sub format.
func (d *Decoder) Subtype() Subtype {
	return d.header.Subtype
}

// Header returns the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// RowLen returns the size in bytes of one row in the binary encoding.
func (d *Decoder) RowLen() int {
	width, _ := d.Dimensions()
	return int(d.tuple.codec().byteLen(uint64(width), 1, d.tuple.components()))
}

// Decode reads all samples. It can only be called once.
func (d *Decoder) Decode() (Samples, error) {
	if d.decoded {
		return Samples{}, ErrAlreadyDecoded
	}
	d.decoded = true

	codec := d.tuple.codec()

	var (
		samples Samples
		err     error
	)

	switch d.header.Subtype.Encoding() {
	case ASCII:
		samples, err = d.sr.readASCIISamples(codec, d.samples)
	default:
		width, height := d.Dimensions()
		samples, err = d.sr.readBinarySamples(codec, uint64(width), uint64(height), d.tuple.components())
	}
	if err != nil {
		return Samples{}, err
	}

	return samples, nil
}

// DecodeRow is not supported, images are decoded in one pass with Decode.
// It always returns ErrUnsupportedOperation.
func (d *Decoder) DecodeRow(buf []byte) error {
	return ErrUnsupportedOperation
}

// Release returns the reader, positioned right after the image samples,
// and the parsed header.
// Any bytes buffered but not consumed by the decoder are read first
// from the returned reader.
func (d *Decoder) Release() (io.Reader, Header) {
	return d.sr.r, d.header
}
