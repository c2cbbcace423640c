// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"encoding/binary"
	"image"
	"io"
)

func init() {
	for _, f := range []struct {
		name  string
		magic string
	}{
		{"pbm", "P1"}, {"pbm", "P4"},
		{"pgm", "P2"}, {"pgm", "P5"},
		{"ppm", "P3"}, {"ppm", "P6"},
		{"pam", "P7"},
	} {
		image.RegisterFormat(f.name, f.magic, DecodeImage, DecodeConfig)
	}
}

// DecodeConfig returns the color model and dimensions of a PNM image
// without decoding the samples.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d, err := NewDecoder(Options{R: r})
	if err != nil {
		return image.Config{}, err
	}
	width, height := d.Dimensions()
	return image.Config{
		ColorModel: d.ColorType().ColorModel(),
		Width:      int(width),
		Height:     int(height),
	}, nil
}

// DecodeImage reads a PNM image from r and returns it as an image.Image.
// Bilevel and 8 bit grayscale images are returned as *image.Gray,
// 16 bit grayscale as *image.Gray16, 8 bit color as *image.RGBA and
// 16 bit color as *image.RGBA64.
// Sample values are scaled from the header's maxval to the full range.
func DecodeImage(r io.Reader) (image.Image, error) {
	d, err := NewDecoder(Options{R: r})
	if err != nil {
		return nil, err
	}
	samples, err := d.Decode()
	if err != nil {
		return nil, err
	}
	return d.toImage(samples), nil
}

func (d *Decoder) toImage(samples Samples) image.Image {
	width, height := d.Dimensions()
	rect := image.Rect(0, 0, int(width), int(height))

	maxval := d.header.Record.MaxValue()
	if d.tuple == tuplePackedBilevelInverted || d.tuple == tupleValidatedBilevel {
		maxval = 1
	}

	switch d.ColorType() {
	case Gray16:
		img := image.NewGray16(rect)
		for i, v := range samples.U16 {
			binary.BigEndian.PutUint16(img.Pix[2*i:], scale(v, maxval, 0xFFFF))
		}
		return img
	case RGB8:
		img := image.NewRGBA(rect)
		for i := 0; i < len(samples.U8)/3; i++ {
			for c := range 3 {
				img.Pix[4*i+c] = uint8(scale(uint16(samples.U8[3*i+c]), maxval, 0xFF))
			}
			img.Pix[4*i+3] = 0xFF
		}
		return img
	case RGB16:
		img := image.NewRGBA64(rect)
		for i := 0; i < len(samples.U16)/3; i++ {
			for c := range 3 {
				binary.BigEndian.PutUint16(img.Pix[8*i+2*c:], scale(samples.U16[3*i+c], maxval, 0xFFFF))
			}
			binary.BigEndian.PutUint16(img.Pix[8*i+6:], 0xFFFF)
		}
		return img
	default:
		img := image.NewGray(rect)
		for i, v := range samples.U8 {
			img.Pix[i] = uint8(scale(uint16(v), maxval, 0xFF))
		}
		return img
	}
}

// scale maps v in [0, maxval] to [0, full]. Values above maxval map to full.
func scale(v uint16, maxval uint32, full uint32) uint16 {
	if maxval == 0 || maxval == full {
		return v
	}
	if uint32(v) >= maxval {
		return uint16(full)
	}
	return uint16((uint32(v)*full + maxval/2) / maxval)
}
