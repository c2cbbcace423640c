// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import "image/color"

const (
	// Gray1 is a bilevel image, one sample per pixel with values 0 and 1.
	Gray1 ColorType = iota + 1
	// Gray8 is a grayscale image with 8 bit samples.
	Gray8
	// Gray16 is a grayscale image with 16 bit samples.
	Gray16
	// RGB8 is a color image with 3 8 bit samples per pixel.
	RGB8
	// RGB16 is a color image with 3 16 bit samples per pixel.
	RGB16

	// The alpha variants are only used in UnsupportedColorError.

	// GrayAlpha1 is a bilevel image with alpha.
	GrayAlpha1
	// GrayAlpha8 is a grayscale image with alpha.
	GrayAlpha8
	// RGBA8 is a color image with alpha.
	RGBA8
)

// ColorType classifies the decoded samples.
//
//go:generate stringer -type=ColorType
type ColorType int

// ColorModel returns the color model of images returned by DecodeImage.
func (c ColorType) ColorModel() color.Model {
	switch c {
	case Gray16:
		return color.Gray16Model
	case RGB8:
		return color.RGBAModel
	case RGB16:
		return color.RGBA64Model
	default:
		return color.GrayModel
	}
}

// tupleType is the resolved sample representation, one per header.
type tupleType int

const (
	// PBM bits, packed and with 1 meaning black.
	tuplePackedBilevelInverted tupleType = iota
	// PAM BLACKANDWHITE, one byte per sample.
	tupleValidatedBilevel
	tupleGray8
	tupleGray16
	tupleRGB8
	tupleRGB16
)

func (t tupleType) colorType() ColorType {
	switch t {
	case tuplePackedBilevelInverted, tupleValidatedBilevel:
		return Gray1
	case tupleGray8:
		return Gray8
	case tupleGray16:
		return Gray16
	case tupleRGB8:
		return RGB8
	default:
		return RGB16
	}
}

func (t tupleType) components() uint64 {
	if t == tupleRGB8 || t == tupleRGB16 {
		return 3
	}
	return 1
}

func tupleTypeForMaxVal(maxval uint32, narrow, wide tupleType) (tupleType, error) {
	switch {
	case maxval <= 0xFF:
		return narrow, nil
	case maxval <= 0xFFFF:
		return wide, nil
	default:
		return 0, newInvalidFormatErrorf("maxval %d exceeds 65535", maxval)
	}
}

func (h *BitmapHeader) tupleType() (tupleType, error) {
	return tuplePackedBilevelInverted, nil
}

func (h *GraymapHeader) tupleType() (tupleType, error) {
	return tupleTypeForMaxVal(h.MaxWhite, tupleGray8, tupleGray16)
}

func (h *PixmapHeader) tupleType() (tupleType, error) {
	return tupleTypeForMaxVal(h.MaxVal, tupleRGB8, tupleRGB16)
}

func (h *ArbitraryHeader) tupleType() (tupleType, error) {
	if h.TupleType == nil {
		switch h.Depth {
		case 1:
			return tupleGray8, nil
		case 2:
			return 0, &UnsupportedColorError{ColorType: GrayAlpha8}
		case 3:
			return tupleRGB8, nil
		case 4:
			return 0, &UnsupportedColorError{ColorType: RGBA8}
		default:
			return 0, newInvalidFormatErrorf("unsupported depth %d without TUPLTYPE", h.Depth)
		}
	}

	switch h.TupleType.Kind {
	case TupleBlackAndWhite:
		if h.Depth != 1 || h.MaxVal != 1 {
			return 0, newInvalidFormatErrorf("invalid depth %d or maxval %d for tuple type BLACKANDWHITE", h.Depth, h.MaxVal)
		}
		return tupleValidatedBilevel, nil
	case TupleGrayscale:
		if h.Depth != 1 || h.MaxVal > 0xFFFF {
			return 0, newInvalidFormatErrorf("invalid depth %d or maxval %d for tuple type GRAYSCALE", h.Depth, h.MaxVal)
		}
		return tupleTypeForMaxVal(h.MaxVal, tupleGray8, tupleGray16)
	case TupleRGB:
		if h.Depth != 3 || h.MaxVal > 0xFFFF {
			return 0, newInvalidFormatErrorf("invalid depth %d or maxval %d for tuple type RGB", h.Depth, h.MaxVal)
		}
		return tupleTypeForMaxVal(h.MaxVal, tupleRGB8, tupleRGB16)
	case TupleBlackAndWhiteAlpha:
		return 0, &UnsupportedColorError{ColorType: GrayAlpha1}
	case TupleGrayscaleAlpha:
		return 0, &UnsupportedColorError{ColorType: GrayAlpha8}
	case TupleRGBAlpha:
		return 0, &UnsupportedColorError{ColorType: RGBA8}
	default:
		return 0, newInvalidFormatErrorf("tuple type %q not recognized", h.TupleType.Name)
	}
}
