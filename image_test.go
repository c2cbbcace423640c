// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm_test

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/bep/pnm"
	"github.com/lmittmann/ppm"
	"golang.org/x/image/draw"

	qt "github.com/frankban/quicktest"
)

func TestImageDecodeRegistered(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		filename   string
		format     string
		colorModel color.Model
		width      int
		height     int
	}{
		{"pbm/binary_6x2.pbm", "pbm", color.GrayModel, 6, 2},
		{"pbm/ascii_6x2.pbm", "pbm", color.GrayModel, 6, 2},
		{"pgm/binary16_2x2.pgm", "pgm", color.Gray16Model, 2, 2},
		{"pgm/ascii_4x4.pgm", "pgm", color.GrayModel, 4, 4},
		{"ppm/ascii_2x2.ppm", "ppm", color.RGBAModel, 2, 2},
		{"pam/rgb_2x2.pam", "pam", color.RGBAModel, 2, 2},
	} {
		c.Run(test.filename, func(c *qt.C) {
			config, format, err := image.DecodeConfig(openTestDataFile(c, "images", test.filename))
			c.Assert(err, qt.IsNil)
			c.Assert(format, qt.Equals, test.format)
			c.Assert(config.ColorModel, qt.Equals, test.colorModel)
			c.Assert(config.Width, qt.Equals, test.width)
			c.Assert(config.Height, qt.Equals, test.height)

			img, format, err := image.Decode(openTestDataFile(c, "images", test.filename))
			c.Assert(err, qt.IsNil)
			c.Assert(format, qt.Equals, test.format)
			c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, test.width, test.height))
		})
	}
}

func TestDecodeImage(t *testing.T) {
	c := qt.New(t)

	decode := func(s string) image.Image {
		c.Helper()
		img, err := pnm.DecodeImage(strings.NewReader(s))
		c.Assert(err, qt.IsNil)
		return img
	}

	c.Run("Bitmap", func(c *qt.C) {
		img := decode("P4 8 1\n\x6c").(*image.Gray)
		c.Assert(img.Pix, qt.DeepEquals, []uint8{255, 0, 0, 255, 0, 0, 255, 255})
	})

	c.Run("PAM BLACKANDWHITE", func(c *qt.C) {
		img := decode("P7\nWIDTH 2\nHEIGHT 1\nDEPTH 1\nMAXVAL 1\nTUPLTYPE BLACKANDWHITE\nENDHDR\n\x00\x01").(*image.Gray)
		c.Assert(img.Pix, qt.DeepEquals, []uint8{0, 255})
	})

	c.Run("Gray scaled", func(c *qt.C) {
		img := decode("P2 4 1 15\n0 1 8 15\n").(*image.Gray)
		c.Assert(img.Pix, qt.DeepEquals, []uint8{0, 17, 136, 255})
	})

	c.Run("Gray16", func(c *qt.C) {
		img := decode("P5 2 1 65535\n\x12\x34\xff\xff").(*image.Gray16)
		c.Assert(img.Gray16At(0, 0), qt.Equals, color.Gray16{Y: 0x1234})
		c.Assert(img.Gray16At(1, 0), qt.Equals, color.Gray16{Y: 0xffff})
	})

	c.Run("RGB16 scaled", func(c *qt.C) {
		img := decode("P6 1 1 1023\n\x03\xff\x00\x00\x02\x00").(*image.RGBA64)
		c.Assert(img.RGBA64At(0, 0), qt.Equals, color.RGBA64{R: 0xffff, G: 0, B: 0x8020, A: 0xffff})
	})

	c.Run("Errors", func(c *qt.C) {
		_, err := pnm.DecodeImage(strings.NewReader("P5 2 2 255\nab"))
		c.Assert(err, qt.ErrorIs, pnm.ErrTruncatedInput)
		_, err = pnm.DecodeConfig(strings.NewReader("P7\nWIDTH 1\nHEIGHT 1\nDEPTH 4\nMAXVAL 255\nENDHDR\n"))
		c.Assert(pnm.IsUnsupportedColor(err), qt.IsTrue)
	})
}

// Images written by another PPM encoder must decode to the same pixels.
func TestDecodeImageCrossCheck(t *testing.T) {
	c := qt.New(t)
	rnd := rand.New(rand.NewSource(64))

	for range 5 {
		src := image.NewRGBA(image.Rect(0, 0, 1+rnd.Intn(40), 1+rnd.Intn(30)))
		rnd.Read(src.Pix)
		for i := 3; i < len(src.Pix); i += 4 {
			src.Pix[i] = 0xff
		}

		var buf bytes.Buffer
		c.Assert(ppm.Encode(&buf, src), qt.IsNil)

		img, err := pnm.DecodeImage(bytes.NewReader(buf.Bytes()))
		c.Assert(err, qt.IsNil)
		got := img.(*image.RGBA)
		c.Assert(got.Pix, qt.DeepEquals, src.Pix)

		theirs, err := ppm.Decode(bytes.NewReader(buf.Bytes()))
		c.Assert(err, qt.IsNil)
		want := image.NewRGBA(theirs.Bounds())
		draw.Draw(want, want.Bounds(), theirs, theirs.Bounds().Min, draw.Src)
		c.Assert(got.Pix, qt.DeepEquals, want.Pix)
	}
}

func TestDecodeImageScale(t *testing.T) {
	c := qt.New(t)

	img, err := pnm.DecodeImage(openTestDataFile(c, "images", "ppm/binary_2x2.ppm"))
	c.Assert(err, qt.IsNil)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	c.Assert(dst.RGBAAt(0, 0), qt.Equals, color.RGBA{R: 255, A: 255})
	c.Assert(dst.RGBAAt(3, 0), qt.Equals, color.RGBA{G: 255, A: 255})
	c.Assert(dst.RGBAAt(0, 3), qt.Equals, color.RGBA{B: 255, A: 255})
	c.Assert(dst.RGBAAt(3, 3), qt.Equals, color.RGBA{R: 10, G: 20, B: 30, A: 255})
}
