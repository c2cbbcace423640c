// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"fmt"
	"io"
	"strings"
)

const (
	// BitmapASCII is a PBM image with ASCII samples, magic P1.
	BitmapASCII Subtype = iota + 1
	// GraymapASCII is a PGM image with ASCII samples, magic P2.
	GraymapASCII
	// PixmapASCII is a PPM image with ASCII samples, magic P3.
	PixmapASCII
	// BitmapBinary is a PBM image with packed binary samples, magic P4.
	BitmapBinary
	// GraymapBinary is a PGM image with binary samples, magic P5.
	GraymapBinary
	// PixmapBinary is a PPM image with binary samples, magic P6.
	PixmapBinary
	// ArbitraryMap is a PAM image, magic P7.
	ArbitraryMap
)

// Subtype is the PNM sub format given by the magic constant.
//
//go:generate stringer -type=Subtype
type Subtype int

// Magic returns the two byte magic constant, e.g. "P6".
func (s Subtype) Magic() string {
	return "P" + string(rune('0'+s))
}

// Encoding returns the sample encoding used by the sub format.
func (s Subtype) Encoding() SampleEncoding {
	switch s {
	case BitmapASCII, GraymapASCII, PixmapASCII:
		return ASCII
	default:
		return Binary
	}
}

func subtypeFromMagic(magic [2]byte) (Subtype, error) {
	if magic[0] != 'P' || magic[1] < '1' || magic[1] > '7' {
		return 0, newInvalidFormatErrorf("expected magic constant P1 through P7, got %q", magic[:])
	}
	return Subtype(magic[1] - '0'), nil
}

const (
	// Binary samples are stored as raw bytes.
	Binary SampleEncoding = iota
	// ASCII samples are stored as whitespace separated decimal numbers.
	ASCII
)

// SampleEncoding is the encoding of the image samples.
type SampleEncoding int

func (e SampleEncoding) String() string {
	if e == ASCII {
		return "ASCII"
	}
	return "Binary"
}

// HeaderRecord is implemented by the four header types:
// *BitmapHeader, *GraymapHeader, *PixmapHeader and *ArbitraryHeader.
type HeaderRecord interface {
	// Dimensions returns the image width and height in pixels.
	Dimensions() (width, height uint32)
	// MaxValue returns the largest sample value allowed by the header.
	MaxValue() uint32

	tupleType() (tupleType, error)
}

var (
	_ HeaderRecord = (*BitmapHeader)(nil)
	_ HeaderRecord = (*GraymapHeader)(nil)
	_ HeaderRecord = (*PixmapHeader)(nil)
	_ HeaderRecord = (*ArbitraryHeader)(nil)
)

// BitmapHeader is the header of a PBM image.
type BitmapHeader struct {
	Encoding SampleEncoding
	Width    uint32
	Height   uint32
}

func (h *BitmapHeader) Dimensions() (width, height uint32) { return h.Width, h.Height }
func (h *BitmapHeader) MaxValue() uint32 { return 1 }

// GraymapHeader is the header of a PGM image.
type GraymapHeader struct {
	Encoding SampleEncoding
	Width    uint32
	Height   uint32
	// MaxWhite is the sample value of white.
	MaxWhite uint32
}

func (h *GraymapHeader) Dimensions() (width, height uint32) { return h.Width, h.Height }
func (h *GraymapHeader) MaxValue() uint32 { return h.MaxWhite }

// PixmapHeader is the header of a PPM image.
type PixmapHeader struct {
	Encoding SampleEncoding
	Width    uint32
	Height   uint32
	MaxVal   uint32
}

func (h *PixmapHeader) Dimensions() (width, height uint32) { return h.Width, h.Height }
func (h *PixmapHeader) MaxValue() uint32 { return h.MaxVal }

// ArbitraryHeader is the header of a PAM image.
type ArbitraryHeader struct {
	Height uint32
	Width  uint32
	Depth  uint32
	MaxVal uint32
	// TupleType is nil if the header had no TUPLTYPE line.
	TupleType *ArbitraryTupleType
}

func (h *ArbitraryHeader) Dimensions() (width, height uint32) { return h.Width, h.Height }
func (h *ArbitraryHeader) MaxValue() uint32 { return h.MaxVal }

const (
	// TupleCustom is any tuple type not listed below.
	TupleCustom             TupleKind = iota // CUSTOM
	TupleBlackAndWhite                       // BLACKANDWHITE
	TupleBlackAndWhiteAlpha                  // BLACKANDWHITE_ALPHA
	TupleGrayscale                           // GRAYSCALE
	TupleGrayscaleAlpha                      // GRAYSCALE_ALPHA
	TupleRGB                                 // RGB
	TupleRGBAlpha                            // RGB_ALPHA
)

// TupleKind is the semantic tag of a PAM TUPLTYPE.
//
//go:generate stringer -type=TupleKind -linecomment
type TupleKind int

var tupleKindNames = map[string]TupleKind{
	"BLACKANDWHITE":       TupleBlackAndWhite,
	"BLACKANDWHITE_ALPHA": TupleBlackAndWhiteAlpha,
	"GRAYSCALE":           TupleGrayscale,
	"GRAYSCALE_ALPHA":     TupleGrayscaleAlpha,
	"RGB":                 TupleRGB,
	"RGB_ALPHA":           TupleRGBAlpha,
}

// ArbitraryTupleType is the TUPLTYPE of a PAM header.
type ArbitraryTupleType struct {
	Kind TupleKind
	// Name is the TUPLTYPE value as written in the header.
	Name string
}

func newArbitraryTupleType(name string) *ArbitraryTupleType {
	// Matching is case sensitive. Unknown names map to TupleCustom.
	return &ArbitraryTupleType{Kind: tupleKindNames[name], Name: name}
}

func (t ArbitraryTupleType) String() string {
	return t.Name
}

// Header is the parsed header of a PNM image.
type Header struct {
	Subtype Subtype
	Record  HeaderRecord
	// Comments holds the header comments, without the leading '#'.
	Comments []string
}

// Width returns the image width in pixels.
func (h Header) Width() uint32 {
	w, _ := h.Record.Dimensions()
	return w
}

// Height returns the image height in pixels.
func (h Header) Height() uint32 {
	_, ht := h.Record.Dimensions()
	return ht
}

func (e *streamReader) readHeader() (Header, error) {
	magic, err := e.readMagic()
	if err != nil {
		return Header{}, err
	}
	subtype, err := subtypeFromMagic(magic)
	if err != nil {
		return Header{}, err
	}

	e.collectComments = true
	defer func() {
		e.collectComments = false
	}()

	var record HeaderRecord
	switch subtype {
	case BitmapASCII, BitmapBinary:
		record, err = e.readBitmapHeader(subtype.Encoding())
	case GraymapASCII, GraymapBinary:
		record, err = e.readGraymapHeader(subtype.Encoding())
	case PixmapASCII, PixmapBinary:
		record, err = e.readPixmapHeader(subtype.Encoding())
	case ArbitraryMap:
		record, err = e.readArbitraryHeader()
	}
	if err != nil {
		return Header{}, err
	}

	if subtype != BitmapASCII && subtype != BitmapBinary && record.MaxValue() == 0 {
		e.warnf("pnm: %s image has maxval 0", subtype.Magic())
	}

	return Header{Subtype: subtype, Record: record, Comments: e.comments}, nil
}

func (e *streamReader) readBitmapHeader(encoding SampleEncoding) (*BitmapHeader, error) {
	width, err := e.readUintToken()
	if err != nil {
		return nil, err
	}
	height, err := e.readUintToken()
	if err != nil {
		return nil, err
	}
	return &BitmapHeader{Encoding: encoding, Width: width, Height: height}, nil
}

func (e *streamReader) readGraymapHeader(encoding SampleEncoding) (*GraymapHeader, error) {
	h, err := e.readPixmapHeader(encoding)
	if err != nil {
		return nil, err
	}
	return &GraymapHeader{Encoding: h.Encoding, Width: h.Width, Height: h.Height, MaxWhite: h.MaxVal}, nil
}

func (e *streamReader) readPixmapHeader(encoding SampleEncoding) (*PixmapHeader, error) {
	var fields [3]uint32
	for i := range fields {
		v, err := e.readUintToken()
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	return &PixmapHeader{Encoding: encoding, Width: fields[0], Height: fields[1], MaxVal: fields[2]}, nil
}

// headerField is a PAM header value that may be set at most once.
type headerField struct {
	name  string
	value uint32
	isSet bool
}

func (f *headerField) set(s string) error {
	if f.isSet {
		return newInvalidFormatErrorf("duplicate %s line", f.name)
	}
	v, err := parseUint32(s)
	if err != nil {
		return newInvalidFormatErrorf("invalid %s value %q", f.name, s)
	}
	f.value, f.isSet = v, true
	return nil
}

func (e *streamReader) readArbitraryHeader() (*ArbitraryHeader, error) {
	b, err := e.r.ReadByte()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("pnm: reading header: %w", err)
	}
	if err != nil || b != '\n' {
		return nil, newInvalidFormatErrorf("expected newline after P7")
	}

	var (
		height    = headerField{name: "HEIGHT"}
		width     = headerField{name: "WIDTH"}
		depth     = headerField{name: "DEPTH"}
		maxval    = headerField{name: "MAXVAL"}
		tupltypes []string
	)

loop:
	for {
		c, ok, err := e.peekByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newInvalidFormatErrorf("missing ENDHDR")
		}
		if c == '#' {
			if err := e.skipCommentLine(); err != nil {
				return nil, err
			}
			continue
		}

		line, err := e.readLine()
		if err != nil {
			return nil, err
		}
		if !isASCII([]byte(line)) {
			return nil, newInvalidFormatErrorf("only ASCII characters allowed in PAM header")
		}

		keyword, value := splitHeaderLine(line)
		switch keyword {
		case "ENDHDR":
			break loop
		case "HEIGHT":
			err = height.set(value)
		case "WIDTH":
			err = width.set(value)
		case "DEPTH":
			err = depth.set(value)
		case "MAXVAL":
			err = maxval.set(value)
		case "TUPLTYPE":
			tupltypes = append(tupltypes, value)
		default:
			err = newInvalidFormatErrorf("unknown header line %q", keyword)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, f := range []headerField{height, width, depth, maxval} {
		if !f.isSet {
			return nil, newInvalidFormatErrorf("expected one %s line", f.name)
		}
	}

	h := &ArbitraryHeader{
		Height: height.value,
		Width:  width.value,
		Depth:  depth.value,
		MaxVal: maxval.value,
	}

	if len(tupltypes) > 0 {
		if len(tupltypes) > 1 {
			e.warnf("pnm: joined %d TUPLTYPE lines", len(tupltypes))
		}
		h.TupleType = newArbitraryTupleType(strings.Join(tupltypes, " "))
	}

	return h, nil
}

// splitHeaderLine splits a PAM header line into its keyword and the
// trimmed remainder.
func splitHeaderLine(line string) (keyword, value string) {
	const whitespace = " \t\v\f\r\n"
	line = strings.TrimLeft(line, whitespace)
	i := strings.IndexAny(line, whitespace)
	if i == -1 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}
