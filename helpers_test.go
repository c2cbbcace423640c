// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestStringer(t *testing.T) {
	c := qt.New(t)

	var subtype Subtype
	var subtype42 Subtype = 42
	c.Assert(BitmapASCII.String(), qt.Equals, "BitmapASCII")
	c.Assert(PixmapBinary.String(), qt.Equals, "PixmapBinary")
	c.Assert(ArbitraryMap.String(), qt.Equals, "ArbitraryMap")
	c.Assert(subtype.String(), qt.Equals, "Subtype(0)")
	c.Assert(subtype42.String(), qt.Equals, "Subtype(42)")

	var colorType ColorType
	c.Assert(Gray1.String(), qt.Equals, "Gray1")
	c.Assert(Gray16.String(), qt.Equals, "Gray16")
	c.Assert(RGB16.String(), qt.Equals, "RGB16")
	c.Assert(GrayAlpha1.String(), qt.Equals, "GrayAlpha1")
	c.Assert(RGBA8.String(), qt.Equals, "RGBA8")
	c.Assert(colorType.String(), qt.Equals, "ColorType(0)")

	c.Assert(Binary.String(), qt.Equals, "Binary")
	c.Assert(ASCII.String(), qt.Equals, "ASCII")

	c.Assert(TupleRGBAlpha.String(), qt.Equals, "RGB_ALPHA")
	c.Assert(TupleCustom.String(), qt.Equals, "CUSTOM")
	c.Assert(TupleGrayscale.String(), qt.Equals, "GRAYSCALE")
	c.Assert(TupleKind(42).String(), qt.Equals, "TupleKind(42)")
	for name, kind := range tupleKindNames {
		c.Assert(kind.String(), qt.Equals, name)
	}
	c.Assert(ArbitraryTupleType{Kind: TupleCustom, Name: "CMYK"}.String(), qt.Equals, "CMYK")
}

func TestSubtype(t *testing.T) {
	c := qt.New(t)

	for i, magic := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"} {
		subtype, err := subtypeFromMagic([2]byte{magic[0], magic[1]})
		c.Assert(err, qt.IsNil)
		c.Assert(subtype, qt.Equals, Subtype(i+1))
		c.Assert(subtype.Magic(), qt.Equals, magic)
	}

	c.Assert(BitmapASCII.Encoding(), qt.Equals, ASCII)
	c.Assert(PixmapASCII.Encoding(), qt.Equals, ASCII)
	c.Assert(BitmapBinary.Encoding(), qt.Equals, Binary)
	c.Assert(ArbitraryMap.Encoding(), qt.Equals, Binary)

	for _, magic := range [][2]byte{{'P', '0'}, {'P', '8'}, {'p', '1'}, {'1', 'P'}} {
		_, err := subtypeFromMagic(magic)
		c.Assert(IsInvalidFormat(err), qt.IsTrue)
	}
}

func TestDecodeComment(t *testing.T) {
	c := qt.New(t)

	c.Assert(decodeComment([]byte(" CREATOR: GIMP PNM Filter Version 1.1 ")), qt.Equals, "CREATOR: GIMP PNM Filter Version 1.1")
	c.Assert(decodeComment([]byte("Benalmádena")), qt.Equals, "Benalmádena")
	c.Assert(decodeComment([]byte("Benalm\xe1dena")), qt.Equals, "Benalmádena")
	c.Assert(decodeComment([]byte("a\x00b\r")), qt.Equals, "ab")
	c.Assert(decodeComment(nil), qt.Equals, "")
}

func TestCeilDiv(t *testing.T) {
	c := qt.New(t)

	c.Assert(ceilDiv(0, 8), qt.Equals, uint64(0))
	c.Assert(ceilDiv(1, 8), qt.Equals, uint64(1))
	c.Assert(ceilDiv(8, 8), qt.Equals, uint64(1))
	c.Assert(ceilDiv(9, 8), qt.Equals, uint64(2))
}

func BenchmarkPrintableString(b *testing.B) {
	runBench := func(b *testing.B, name, s string) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = printableString(s)
			}
		})
	}

	runBench(b, "ASCII", "Hello, World!")
	runBench(b, "ASCII with whitespace", "   Hello, World!   ")
	runBench(b, "UTF-8", "Hello, 世界!")
	runBench(b, "Unprintable", "Hello, \x00World!")
}

func BenchmarkDecodeComment(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = decodeComment([]byte("Benalm\xe1dena"))
	}
}
