// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bep/pnm"
)

func FuzzDecode(f *testing.F) {
	filenames := []string{
		"images/pbm/binary_6x2.pbm", "images/pbm/ascii_6x2.pbm",
		"images/pgm/binary16_2x2.pgm", "images/pgm/ascii_4x4.pgm",
		"images/ppm/binary_2x2.ppm", "images/ppm/ascii_2x2.ppm",
		"images/pam/blackandwhite_4x4.pam", "images/pam/rgb_2x2.pam",
		"unsupported/rgb_alpha_1x1.pam",
		"corrupt/truncated.pbm", "corrupt/dup_height.pam",
	}
	for _, filename := range filenames {
		f.Add(readTestDataFileAll(f, filename))
	}

	f.Fuzz(func(t *testing.T, imageBytes []byte) {
		fuzzDecodeBytes(t, imageBytes)
	})
}

func FuzzDecodeImage(f *testing.F) {
	filenames := []string{"images/pgm/binary_4x4.pgm", "images/ppm/binary16_1x1.ppm", "images/pam/grayscale_4x4.pam"}
	for _, filename := range filenames {
		f.Add(readTestDataFileAll(f, filename))
	}

	f.Fuzz(func(t *testing.T, imageBytes []byte) {
		img, err := pnm.DecodeImage(bytes.NewReader(imageBytes))
		if err != nil {
			checkFuzzError(t, err)
			return
		}
		_ = img.Bounds()
	})
}

func fuzzDecodeBytes(t *testing.T, imageBytes []byte) {
	// Keep the fuzzer from spending its time allocating.
	res, err := pnm.Decode(pnm.Options{R: bytes.NewReader(imageBytes), LimitSamples: 1 << 20})
	if err != nil {
		checkFuzzError(t, err)
		return
	}
	width, height := res.Header.Width(), res.Header.Height()
	components := uint64(1)
	if res.ColorType == pnm.RGB8 || res.ColorType == pnm.RGB16 {
		components = 3
	}
	if want := uint64(width) * uint64(height) * components; uint64(res.Samples.Len()) != want {
		t.Fatalf("got %d samples for a %dx%dx%d image", res.Samples.Len(), width, height, components)
	}
}

func checkFuzzError(t *testing.T, err error) {
	if !pnm.IsInvalidFormat(err) && !pnm.IsUnsupportedColor(err) && !errors.Is(err, pnm.ErrTruncatedInput) {
		t.Fatalf("unknown error in Decode: %v %T", err, err)
	}
}
