// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Samples holds decoded samples in row major order with the components of
// a pixel interleaved, e.g. R,G,B,R,G,B for color images.
// Exactly one of U8 and U16 is set.
type Samples struct {
	U8  []uint8
	U16 []uint16
}

// Len returns the number of samples.
func (s Samples) Len() int {
	if s.U16 != nil {
		return len(s.U16)
	}
	return len(s.U8)
}

// Is16Bit reports whether the samples are stored in U16.
func (s Samples) Is16Bit() bool {
	return s.U16 != nil
}

// sampleCodec describes how one tupleType is stored in both encodings.
type sampleCodec struct {
	// byteLen returns the size of the binary payload.
	byteLen func(width, height, components uint64) uint64

	// fromBytes decodes a binary payload of exactly byteLen bytes.
	fromBytes func(b []byte, width, height, components uint64) (Samples, error)

	// fromUint validates and maps one ASCII sample.
	fromUint func(v uint32) (uint16, error)

	wide bool

	// Set if fromBytes keeps a reference to b.
	retainsBytes bool
}

var sampleCodecs = [...]sampleCodec{
	tuplePackedBilevelInverted: {
		byteLen:   packedByteLen,
		fromBytes: unpackInvertedBits,
		fromUint:  invertedBitFromUint,
	},
	tupleValidatedBilevel: {
		byteLen:      u8ByteLen,
		fromBytes:    validatedBitsFromBytes,
		fromUint:     bitFromUint,
		retainsBytes: true,
	},
	tupleGray8: {
		byteLen:      u8ByteLen,
		fromBytes:    u8FromBytes,
		fromUint:     u8FromUint,
		retainsBytes: true,
	},
	tupleGray16: {
		byteLen:   u16ByteLen,
		fromBytes: u16FromBytes,
		fromUint:  u16FromUint,
		wide:      true,
	},
	tupleRGB8: {
		byteLen:      u8ByteLen,
		fromBytes:    u8FromBytes,
		fromUint:     u8FromUint,
		retainsBytes: true,
	},
	tupleRGB16: {
		byteLen:   u16ByteLen,
		fromBytes: u16FromBytes,
		fromUint:  u16FromUint,
		wide:      true,
	},
}

func (t tupleType) codec() sampleCodec {
	return sampleCodecs[t]
}

// sampleCount returns width*height*components, failing if that overflows
// or exceeds limit.
func sampleCount(width, height, components, limit uint64) (uint64, error) {
	hi, n := bits.Mul64(width, height)
	if hi == 0 {
		hi, n = bits.Mul64(n, components)
	}
	if hi != 0 || n > limit {
		return 0, newInvalidFormatErrorf("image size %dx%dx%d exceeds limit of %d samples", width, height, components, limit)
	}
	return n, nil
}

func errSampleOutOfBounds(v uint32) error {
	return newInvalidFormatErrorf("sample value %d outside of bounds", v)
}

func u8ByteLen(width, height, components uint64) uint64 {
	return width * height * components
}

func u16ByteLen(width, height, components uint64) uint64 {
	return width * height * components * 2
}

// Rows are padded to a whole byte, each row on its own.
func packedByteLen(width, height, components uint64) uint64 {
	return ceilDiv(width*components, 8) * height
}

func u8FromBytes(b []byte, _, _, _ uint64) (Samples, error) {
	return Samples{U8: b}, nil
}

func u16FromBytes(b []byte, width, height, components uint64) (Samples, error) {
	out := make([]uint16, width*height*components)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return Samples{U16: out}, nil
}

// The PBM payload holds rows of bits, most significant bit first. Bits
// past the end of a row are ignored. A set bit is black, so the bits are
// inverted to get 1 for white.
func unpackInvertedBits(b []byte, width, height, components uint64) (Samples, error) {
	rowLen := width * components
	stride := ceilDiv(rowLen, 8)
	out := make([]uint8, rowLen*height)
	if rowLen == 0 {
		// LimitSamples does not bound height when rows are empty.
		return Samples{U8: out}, nil
	}
	for y := range height {
		row := b[y*stride : (y+1)*stride]
		dst := out[y*rowLen : (y+1)*rowLen]
		for x := range dst {
			dst[x] = (row[x/8]>>(7-x%8))&1 ^ 1
		}
	}
	return Samples{U8: out}, nil
}

func validatedBitsFromBytes(b []byte, width, height, components uint64) (Samples, error) {
	for _, v := range b {
		if v > 1 {
			return Samples{}, errSampleOutOfBounds(uint32(v))
		}
	}
	return u8FromBytes(b, width, height, components)
}

func u8FromUint(v uint32) (uint16, error) {
	if v > 0xFF {
		return 0, errSampleOutOfBounds(v)
	}
	return uint16(v), nil
}

func u16FromUint(v uint32) (uint16, error) {
	if v > 0xFFFF {
		return 0, errSampleOutOfBounds(v)
	}
	return uint16(v), nil
}

// PAM BLACKANDWHITE, 0 is black.
func bitFromUint(v uint32) (uint16, error) {
	if v > 1 {
		return 0, errSampleOutOfBounds(v)
	}
	return uint16(v), nil
}

// ASCII PBM, 1 is black. Inverted like the binary payload.
func invertedBitFromUint(v uint32) (uint16, error) {
	if v > 1 {
		return 0, errSampleOutOfBounds(v)
	}
	return uint16(v ^ 1), nil
}

func (e *streamReader) readBinarySamples(codec sampleCodec, width, height, components uint64) (Samples, error) {
	var buf *bytes.Buffer
	if codec.retainsBytes {
		buf = &bytes.Buffer{}
	} else {
		buf = getPayloadBuffer()
		defer putPayloadBuffer(buf)
	}

	if err := e.readBytes(buf, codec.byteLen(width, height, components)); err != nil {
		return Samples{}, err
	}

	return codec.fromBytes(buf.Bytes(), width, height, components)
}

func (e *streamReader) readASCIISamples(codec sampleCodec, count uint64) (Samples, error) {
	if codec.wide {
		s, err := readASCIISamples[uint16](e, codec, count)
		return Samples{U16: s}, err
	}
	s, err := readASCIISamples[uint8](e, codec, count)
	return Samples{U8: s}, err
}

func readASCIISamples[T uint8 | uint16](e *streamReader, codec sampleCodec, count uint64) ([]T, error) {
	// Grow as we go, count may be much larger than the input.
	out := make([]T, 0, min(count, initialPayloadBufSize))
	for range count {
		v, err := e.readUintToken()
		if err != nil {
			return nil, err
		}
		s, err := codec.fromUint(v)
		if err != nil {
			return nil, err
		}
		out = append(out, T(s))
	}
	return out, nil
}
